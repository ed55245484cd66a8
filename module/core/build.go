package core

import (
	"database/sql"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/catalog"
	handler "github.com/Santhosh132-ops/Geo-Fence/module/core/internal/handler/http"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/internal/handler/subscriber"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/internal/repository/cache"
	cacheredis "github.com/Santhosh132-ops/Geo-Fence/module/core/internal/repository/cache/redis"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/internal/repository/database"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/internal/repository/database/memory"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/internal/repository/database/postgres"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/internal/repository/publisher"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/internal/repository/publisher/rabbitmq"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/metrics"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/service"
)

// Deps carries the external connections and tuning knobs the module is
// built from. Optional backends may be nil: a nil DB keeps vehicle
// statuses in memory, a nil AMQP connection disables transition
// publishing, a nil MQTT client disables the location subscriber, a nil
// Redis client disables the route cache and a nil Router disables
// external routing.
type Deps struct {
	Catalog     *catalog.Catalog
	DB          *sql.DB
	AMQPConn    *amqp.Connection
	MQTTClient  mqtt.Client
	RedisClient *goredis.Client
	Router      service.Router

	RouteCacheTTL         time.Duration
	ExitDebounceThreshold int
	RouteProximityMeters  float64
}

type Module struct {
	GeofenceSvc *service.GeofenceService
	RouteSvc    *service.RouteService
	DriveSvc    *service.DriveService
	Metrics     *metrics.Collector

	vehicleHandler *handler.VehicleHandler
	zoneHandler    *handler.ZoneHandler
	routeHandler   *handler.RouteHandler
	driveHandler   *handler.DriveHandler
	subscriber     *subscriber.LocationSubscriber
}

func Build(deps Deps) (*Module, error) {
	if deps.Catalog == nil {
		return nil, fmt.Errorf("a zone catalog is required")
	}
	if deps.ExitDebounceThreshold <= 0 {
		deps.ExitDebounceThreshold = service.DefaultExitThreshold
	}

	zones := service.NewZoneIndex(deps.Catalog.Zones)
	graph := service.NewRouteGraph(deps.Catalog.Segments)
	collector := metrics.NewCollector(len(deps.Catalog.Zones), deps.ExitDebounceThreshold)

	var statusRepo database.StatusRepository
	if deps.DB != nil {
		statusRepo = postgres.NewStatusRepo(deps.DB)
	} else {
		statusRepo = memory.NewStatusRepo()
	}

	var transitionPub publisher.TransitionPublisher
	if deps.AMQPConn != nil {
		pub, err := rabbitmq.NewTransitionPublisher(deps.AMQPConn)
		if err != nil {
			return nil, fmt.Errorf("transition publisher: %w", err)
		}
		transitionPub = pub
	}

	var routeCache cache.RouteCache
	if deps.RedisClient != nil {
		routeCache = cacheredis.NewRouteCache(deps.RedisClient, deps.RouteCacheTTL)
	}

	geofenceSvc := service.NewGeofenceService(zones, statusRepo, transitionPub, collector)
	routeSvc := service.NewRouteService(zones, graph, deps.Router, routeCache, deps.RouteProximityMeters, collector)
	driveSvc := service.NewDriveService(zones, routeSvc, service.NewDebounceFilter(deps.ExitDebounceThreshold), collector)

	m := &Module{
		GeofenceSvc: geofenceSvc,
		RouteSvc:    routeSvc,
		DriveSvc:    driveSvc,
		Metrics:     collector,

		vehicleHandler: handler.NewVehicleHandler(geofenceSvc, driveSvc),
		zoneHandler:    handler.NewZoneHandler(geofenceSvc),
		routeHandler:   handler.NewRouteHandler(routeSvc),
		driveHandler:   handler.NewDriveHandler(driveSvc),
	}

	if deps.MQTTClient != nil {
		m.subscriber = subscriber.NewLocationSubscriber(deps.MQTTClient, geofenceSvc, driveSvc)
	}

	return m, nil
}

func (m *Module) RegisterRoutes(r *gin.RouterGroup) {
	m.vehicleHandler.Register(r)
	m.zoneHandler.Register(r)
	m.routeHandler.Register(r)
	m.driveHandler.Register(r)
}

func (m *Module) StartSubscribers() error {
	if m.subscriber == nil {
		return nil
	}
	return m.subscriber.Start()
}

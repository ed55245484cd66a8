package main

import (
	"database/sql"
	"log"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Santhosh132-ops/Geo-Fence/config"
	"github.com/Santhosh132-ops/Geo-Fence/module/core"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/catalog"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/service"
	"github.com/Santhosh132-ops/Geo-Fence/pkg/routing"
)

func main() {
	cfg := config.Load()

	cat, err := catalog.Load(cfg.ZonesFile)
	if err != nil {
		log.Fatalf("zone catalog: %v", err)
	}
	log.Printf("loaded %d zones and %d path segments", len(cat.Zones), len(cat.Segments))

	var db *sql.DB
	if cfg.StatusStore == "postgres" {
		db, err = config.NewPostgres(cfg)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer func() { _ = db.Close() }()
	}

	amqpConn, err := config.NewRabbitMQ(cfg)
	if err != nil {
		log.Fatalf("rabbitmq: %v", err)
	}
	defer func() { _ = amqpConn.Close() }()

	mqttClient, err := config.NewMQTT(cfg)
	if err != nil {
		log.Fatalf("mqtt: %v", err)
	}
	defer mqttClient.Disconnect(250)

	var redisClient *goredis.Client
	if cfg.RedisEnabled {
		redisClient, err = config.NewRedis(cfg)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer func() { _ = redisClient.Close() }()
	}

	var router service.Router
	if cfg.RoutingURL != "" {
		router = routing.New(cfg.RoutingURL, cfg.RoutingTimeout)
	}

	coreModule, err := core.Build(core.Deps{
		Catalog:     cat,
		DB:          db,
		AMQPConn:    amqpConn,
		MQTTClient:  mqttClient,
		RedisClient: redisClient,
		Router:      router,

		RouteCacheTTL:         cfg.RouteCacheTTL,
		ExitDebounceThreshold: cfg.ExitDebounceThreshold,
		RouteProximityMeters:  cfg.RouteProximityMeters,
	})
	if err != nil {
		log.Fatalf("core module: %v", err)
	}

	if err := coreModule.StartSubscribers(); err != nil {
		log.Fatalf("start subscribers: %v", err)
	}

	if cfg.MetricsAddr != "" {
		coreModule.Metrics.Serve(cfg.MetricsAddr)
	}

	r := gin.Default()

	health := config.NewHealthChecker(db, amqpConn, mqttClient, redisClient)
	health.Register(r)

	coreModule.RegisterRoutes(&r.RouterGroup)

	log.Printf("listening on :%s", cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("server: %v", err)
	}
}

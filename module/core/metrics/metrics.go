package metrics

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reg *prometheus.Registry

	EventsProcessed prometheus.Counter
	VehiclesTracked prometheus.Gauge

	Transitions *prometheus.CounterVec // event label: zone_entered|zone_exited
	PublishErrs prometheus.Counter

	RoutesComputed  *prometheus.CounterVec // source label: graph|external|interpolated
	RouteCacheHits  prometheus.Counter
	RouteCacheMiss  prometheus.Counter
	ProcessDuration prometheus.Histogram

	DrivesStarted  prometheus.Counter
	DrivesFinished prometheus.Counter

	ZonesLoaded   prometheus.Gauge
	ExitThreshold prometheus.Gauge
}

func NewCollector(zoneCount, exitThreshold int) *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		EventsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "geofence_events_processed_total",
			Help: "Total vehicle location events processed.",
		}),
		VehiclesTracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "geofence_vehicles_tracked",
			Help: "Number of distinct vehicles with a stored status.",
		}),
		Transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "geofence_transitions_total",
			Help: "Total zone transitions detected.",
		}, []string{"event"}),
		PublishErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "geofence_publish_errors_total",
			Help: "Total transition publish failures.",
		}),
		RoutesComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "geofence_routes_computed_total",
			Help: "Total route computations by polyline source.",
		}, []string{"source"}),
		RouteCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "geofence_route_cache_hits_total",
			Help: "Total route cache hits.",
		}),
		RouteCacheMiss: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "geofence_route_cache_misses_total",
			Help: "Total route cache misses.",
		}),
		ProcessDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "geofence_event_duration_seconds",
			Help:    "Duration of event processing including the store swap.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 15),
		}),
		DrivesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "geofence_drives_started_total",
			Help: "Total drive sessions started.",
		}),
		DrivesFinished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "geofence_drives_finished_total",
			Help: "Total drive sessions that reached the final zone.",
		}),
		ZonesLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "geofence_zones_loaded",
			Help: "Number of zones in the active catalog.",
		}),
		ExitThreshold: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "geofence_exit_debounce_threshold",
			Help: "Consecutive outside observations required to confirm an exit.",
		}),
	}

	reg.MustRegister(
		c.EventsProcessed, c.VehiclesTracked,
		c.Transitions, c.PublishErrs,
		c.RoutesComputed, c.RouteCacheHits, c.RouteCacheMiss, c.ProcessDuration,
		c.DrivesStarted, c.DrivesFinished,
		c.ZonesLoaded, c.ExitThreshold,
	)

	c.ZonesLoaded.Set(float64(zoneCount))
	c.ExitThreshold.Set(float64(exitThreshold))

	return c
}

func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }

// Serve starts an HTTP server exposing /metrics on the given address.
func (c *Collector) Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics server error: %v", err)
		}
	}()
	log.Printf("metrics listening on %s", addr)
	return srv
}

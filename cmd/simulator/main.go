package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/catalog"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
	"github.com/Santhosh132-ops/Geo-Fence/module/core/service"
)

type locationMessage struct {
	VehicleID string  `json:"vehicle_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

// tourZoneIDs is the loop the simulated vehicles drive, zone by zone.
var tourZoneIDs = []string{"palace", "westminster", "trafalgar", "st_pauls", "tower"}

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomVehicleID() string {
	letter := string(charset[rand.Intn(26)])
	digits := fmt.Sprintf("%04d", rand.Intn(10000))
	suffix := string([]byte{charset[rand.Intn(26)], charset[rand.Intn(26)], charset[rand.Intn(26)]})
	return letter + digits + suffix
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <interval_seconds>\n", os.Args[0])
		os.Exit(1)
	}

	intervalSec, err := strconv.Atoi(os.Args[1])
	if err != nil || intervalSec <= 0 {
		fmt.Fprintf(os.Stderr, "error: interval must be a positive integer\n")
		os.Exit(1)
	}

	broker := "tcp://localhost:1883"
	if v := os.Getenv("MQTT_BROKER"); v != "" {
		broker = v
	}

	cat, err := catalog.Load(os.Getenv("ZONES_FILE"))
	if err != nil {
		log.Fatalf("zone catalog: %v", err)
	}

	zones := service.NewZoneIndex(cat.Zones)
	routes := service.NewRouteService(zones, service.NewRouteGraph(cat.Segments), nil, nil, 0, nil)

	waypoints := make([]domain.Coordinate, 0, len(tourZoneIDs))
	for _, id := range tourZoneIDs {
		z, ok := zones.ZoneByID(id)
		if !ok {
			log.Fatalf("zone %q is not in the catalog", id)
		}
		waypoints = append(waypoints, z.Polygon.Centroid())
	}

	plan, err := routes.ComputeRoute(context.Background(), waypoints)
	if err != nil {
		log.Fatalf("compute route: %v", err)
	}

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("geofence-simulator")

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("mqtt connect: %v", token.Error())
	}
	defer client.Disconnect(250)

	vehicles := make([]string, 3)
	positions := make([]int, len(vehicles))
	for i := range vehicles {
		vehicles[i] = randomVehicleID()
		positions[i] = i * len(plan.Polyline) / len(vehicles)
	}

	log.Printf("connected to %s, driving %d vehicles along a %d-point route every %ds",
		broker, len(vehicles), len(plan.Polyline), intervalSec)
	log.Printf("vehicles: %v", vehicles)

	ticker := time.NewTicker(time.Duration(intervalSec) * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		for i, vid := range vehicles {
			pt := plan.Polyline[positions[i]]

			msg := locationMessage{
				VehicleID: vid,
				Latitude:  pt.Lat + (rand.Float64()-0.5)*0.0001, // ~10m GPS jitter
				Longitude: pt.Lng + (rand.Float64()-0.5)*0.0001,
				Timestamp: time.Now().Unix(),
			}

			payload, _ := json.Marshal(msg)
			topic := fmt.Sprintf("/fleet/vehicle/%s/location", vid)

			token := client.Publish(topic, 1, false, payload)
			token.Wait()

			log.Printf("published to %s: %s", topic, payload)

			positions[i] = (positions[i] + 1) % len(plan.Polyline)
		}
	}
}

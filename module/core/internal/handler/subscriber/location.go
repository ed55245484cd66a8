package subscriber

import (
	"context"
	"encoding/json"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
)

const topicPattern = "/fleet/vehicle/+/location"

type eventProcessor interface {
	ProcessEvent(ctx context.Context, ev *domain.VehicleEvent) (*domain.VehicleStatus, *domain.Transition, error)
}

type driveObserver interface {
	ObserveVehicle(vehicleID, rawZoneID string)
}

type locationMessage struct {
	VehicleID string  `json:"vehicle_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

type LocationSubscriber struct {
	client      mqtt.Client
	geofenceSvc eventProcessor
	drives      driveObserver
}

func NewLocationSubscriber(client mqtt.Client, geofenceSvc eventProcessor, drives driveObserver) *LocationSubscriber {
	return &LocationSubscriber{
		client:      client,
		geofenceSvc: geofenceSvc,
		drives:      drives,
	}
}

func (s *LocationSubscriber) Start() error {
	token := s.client.Subscribe(topicPattern, 1, s.handleMessage)
	token.Wait()
	return token.Error()
}

func (s *LocationSubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var raw locationMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		log.Printf("invalid location message: %v", err)
		return
	}
	if raw.VehicleID == "" {
		log.Printf("location message missing vehicle_id")
		return
	}

	// Out-of-range coordinates are not rejected here; they resolve to no
	// zone and the vehicle is tracked as outside.
	ev := &domain.VehicleEvent{
		VehicleID: raw.VehicleID,
		Location:  domain.Coordinate{Lat: raw.Latitude, Lng: raw.Longitude},
	}
	if raw.Timestamp != 0 {
		ev.Timestamp = time.Unix(raw.Timestamp, 0)
	}

	status, _, err := s.geofenceSvc.ProcessEvent(context.Background(), ev)
	if err != nil {
		log.Printf("process event error: %v", err)
		return
	}

	s.drives.ObserveVehicle(ev.VehicleID, status.CurrentZoneID)
}

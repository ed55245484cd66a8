package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
)

type geofenceService interface {
	ProcessEvent(ctx context.Context, ev *domain.VehicleEvent) (*domain.VehicleStatus, *domain.Transition, error)
	GetStatus(ctx context.Context, vehicleID string) (*domain.VehicleStatus, error)
	ListVehicles(ctx context.Context) ([]domain.VehicleStatus, error)
}

type driveObserver interface {
	ObserveVehicle(vehicleID, rawZoneID string)
}

type eventRequest struct {
	VehicleID string   `json:"vehicle_id" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Timestamp int64    `json:"timestamp"`
}

type eventResponse struct {
	Status     statusResponse `json:"status"`
	Transition *string        `json:"transition"`
}

type VehicleHandler struct {
	geofenceSvc geofenceService
	drives      driveObserver
}

func NewVehicleHandler(geofenceSvc geofenceService, drives driveObserver) *VehicleHandler {
	return &VehicleHandler{geofenceSvc: geofenceSvc, drives: drives}
}

func (h *VehicleHandler) Register(r *gin.RouterGroup) {
	r.POST("/events", h.PostEvent)
	r.GET("/vehicles", h.ListVehicles)
	r.GET("/vehicles/:vehicle_id/status", h.GetStatus)
}

func (h *VehicleHandler) PostEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event payload"})
		return
	}

	ev := &domain.VehicleEvent{
		VehicleID: req.VehicleID,
		Location:  domain.Coordinate{Lat: *req.Latitude, Lng: *req.Longitude},
	}
	if req.Timestamp != 0 {
		ev.Timestamp = time.Unix(req.Timestamp, 0)
	}

	status, transition, err := h.geofenceSvc.ProcessEvent(c.Request.Context(), ev)
	if err != nil {
		writeError(c, err)
		return
	}
	h.drives.ObserveVehicle(ev.VehicleID, status.CurrentZoneID)

	resp := eventResponse{Status: toStatusResponse(status)}
	if transition != nil {
		desc := transition.Describe()
		resp.Transition = &desc
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	statuses, err := h.geofenceSvc.ListVehicles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch vehicles"})
		return
	}

	results := make([]statusResponse, len(statuses))
	for i := range statuses {
		results[i] = toStatusResponse(&statuses[i])
	}
	c.JSON(http.StatusOK, results)
}

func (h *VehicleHandler) GetStatus(c *gin.Context) {
	status, err := h.geofenceSvc.GetStatus(c.Request.Context(), c.Param("vehicle_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toStatusResponse(status))
}

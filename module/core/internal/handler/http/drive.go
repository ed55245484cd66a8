package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
)

type driveService interface {
	StartDrive(ctx context.Context, vehicleID string, zoneIDs []string) (*domain.DriveSnapshot, error)
	GetDrive(vehicleID string) (*domain.DriveSnapshot, error)
	EndDrive(vehicleID string) error
}

type driveRequest struct {
	VehicleID string   `json:"vehicle_id" binding:"required"`
	ZoneIDs   []string `json:"zone_ids" binding:"required,min=2"`
}

type DriveHandler struct {
	driveSvc driveService
}

func NewDriveHandler(driveSvc driveService) *DriveHandler {
	return &DriveHandler{driveSvc: driveSvc}
}

func (h *DriveHandler) Register(r *gin.RouterGroup) {
	r.POST("/drives", h.StartDrive)
	r.GET("/drives/:vehicle_id", h.GetDrive)
	r.DELETE("/drives/:vehicle_id", h.EndDrive)
}

func (h *DriveHandler) StartDrive(c *gin.Context) {
	var req driveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid drive payload"})
		return
	}

	snap, err := h.driveSvc.StartDrive(c.Request.Context(), req.VehicleID, req.ZoneIDs)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, snap)
}

func (h *DriveHandler) GetDrive(c *gin.Context) {
	snap, err := h.driveSvc.GetDrive(c.Param("vehicle_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}

func (h *DriveHandler) EndDrive(c *gin.Context) {
	if err := h.driveSvc.EndDrive(c.Param("vehicle_id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

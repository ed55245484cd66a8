package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
)

type statusResponse struct {
	VehicleID     string  `json:"vehicle_id"`
	CurrentZoneID string  `json:"current_zone_id,omitempty"`
	State         string  `json:"state"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	LastSeen      int64   `json:"last_seen"`
}

func toStatusResponse(st *domain.VehicleStatus) statusResponse {
	return statusResponse{
		VehicleID:     st.VehicleID,
		CurrentZoneID: st.CurrentZoneID,
		State:         string(st.State),
		Latitude:      st.Location.Lat,
		Longitude:     st.Location.Lng,
		LastSeen:      st.LastSeen.Unix(),
	}
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrRoutingUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
)

type routeService interface {
	ComputeRoute(ctx context.Context, waypoints []domain.Coordinate) (*domain.RoutePlan, error)
}

type waypointBody struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

type routeRequest struct {
	Waypoints []waypointBody `json:"waypoints" binding:"required,min=2,dive"`
}

type RouteHandler struct {
	routeSvc routeService
}

func NewRouteHandler(routeSvc routeService) *RouteHandler {
	return &RouteHandler{routeSvc: routeSvc}
}

func (h *RouteHandler) Register(r *gin.RouterGroup) {
	r.POST("/routes", h.ComputeRoute)
}

func (h *RouteHandler) ComputeRoute(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid route payload"})
		return
	}

	waypoints := make([]domain.Coordinate, len(req.Waypoints))
	for i, w := range req.Waypoints {
		waypoints[i] = domain.Coordinate{Lat: *w.Lat, Lng: *w.Lng}
	}

	plan, err := h.routeSvc.ComputeRoute(c.Request.Context(), waypoints)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

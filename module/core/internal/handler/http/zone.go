package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Santhosh132-ops/Geo-Fence/module/core/domain"
)

type zoneLister interface {
	ListZones() []domain.Zone
}

type ZoneHandler struct {
	zones zoneLister
}

func NewZoneHandler(zones zoneLister) *ZoneHandler {
	return &ZoneHandler{zones: zones}
}

func (h *ZoneHandler) Register(r *gin.RouterGroup) {
	r.GET("/zones", h.ListZones)
}

func (h *ZoneHandler) ListZones(c *gin.Context) {
	c.JSON(http.StatusOK, h.zones.ListZones())
}

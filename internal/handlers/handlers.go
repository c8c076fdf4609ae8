package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/cellarhub/winestore/internal/services"
)

type Handler struct {
	bottleSrv *services.BottleService
	statsSrv  *services.StatisticsService
	exportSrv *services.Export
}

func New(bottleSrv *services.BottleService, statsSrv *services.StatisticsService, exportSrv *services.Export) *Handler {
	return &Handler{
		bottleSrv: bottleSrv,
		statsSrv:  statsSrv,
		exportSrv: exportSrv,
	}
}

// Register wires every route under the given group.
func (h *Handler) Register(r *gin.RouterGroup) {
	r.GET("/bottles", h.ListBottles)
	r.POST("/bottles", h.CreateBottle)
	r.PUT("/bottles/:id", h.UpdateBottle)
	r.DELETE("/bottles/:id", h.DeleteBottle)

	r.GET("/statistics", h.GetStatistics)

	r.POST("/exports", h.StartExport)
	r.GET("/exports", h.ListExports)
	r.GET("/exports/:id", h.GetExport)
	r.DELETE("/exports/:id", h.StopExport)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/cellarhub/winestore/api/v1"
)

// GetStatistics returns the dashboard aggregates. The response is
// always 200; an unreachable store yields the empty shape.
// (GET /statistics)
func (h *Handler) GetStatistics(c *gin.Context) {
	stats := h.statsSrv.Dashboard(c.Request.Context())
	c.JSON(http.StatusOK, v1.NewStatisticsResponse(stats))
}

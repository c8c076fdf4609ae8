package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/cellarhub/winestore/api/v1"
	srvErrors "github.com/cellarhub/winestore/pkg/errors"
)

// StartExport dispatches a new report generation job
// (POST /exports)
func (h *Handler) StartExport(c *gin.Context) {
	var req v1.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "kind is required"})
		return
	}
	kind, ok := v1.ParseExportKind(req.Kind)
	if !ok {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "unknown export kind"})
		return
	}

	job, err := h.exportSrv.Start(kind)
	if err != nil {
		zap.S().Named("export_handler").Errorw("failed to start export", "kind", kind, "error", err)
		c.JSON(http.StatusInternalServerError, v1.ErrorResponse{Error: "failed to start export"})
		return
	}
	c.JSON(http.StatusAccepted, v1.NewExportJob(job))
}

// ListExports returns every known export job
// (GET /exports)
func (h *Handler) ListExports(c *gin.Context) {
	jobs := h.exportSrv.List()
	apiJobs := make([]v1.ExportJob, 0, len(jobs))
	for _, job := range jobs {
		apiJobs = append(apiJobs, v1.NewExportJob(job))
	}
	c.JSON(http.StatusOK, v1.ExportJobListResponse{Jobs: apiJobs})
}

// GetExport returns the current state of one export job
// (GET /exports/{id})
func (h *Handler) GetExport(c *gin.Context) {
	job, ok := h.exportSrv.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, v1.ErrorResponse{Error: "export job not found"})
		return
	}
	c.JSON(http.StatusOK, v1.NewExportJob(job))
}

// StopExport cancels a pending or running export job
// (DELETE /exports/{id})
func (h *Handler) StopExport(c *gin.Context) {
	if err := h.exportSrv.Stop(c.Param("id")); err != nil {
		if srvErrors.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, v1.ErrorResponse{Error: "export job not found"})
			return
		}
		zap.S().Named("export_handler").Errorw("failed to stop export", "error", err)
		c.JSON(http.StatusInternalServerError, v1.ErrorResponse{Error: "failed to stop export"})
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/cellarhub/winestore/api/v1"
	"github.com/cellarhub/winestore/internal/models"
	"github.com/cellarhub/winestore/internal/services"
	"github.com/cellarhub/winestore/internal/store"
	srvErrors "github.com/cellarhub/winestore/pkg/errors"
)

// ListBottles returns the collection, filtered by the optional query
// parameters term, region, min_year, max_year and order
// (GET /bottles)
func (h *Handler) ListBottles(c *gin.Context) {
	params := services.BottleListParams{
		Term:   c.Query("term"),
		Region: c.Query("region"),
		Order:  store.OrderNewestFirst,
	}
	switch c.Query("order") {
	case "", "newest":
	case "vintage_price":
		params.Order = store.OrderVintagePriceDesc
	default:
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "order must be 'newest' or 'vintage_price'"})
		return
	}
	if v := c.Query("min_year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "min_year must be a number"})
			return
		}
		params.MinYear = year
	}
	if v := c.Query("max_year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "max_year must be a number"})
			return
		}
		params.MaxYear = year
	}

	rows, err := h.bottleSrv.List(c.Request.Context(), params)
	if err != nil {
		zap.S().Named("bottle_handler").Errorw("failed to list bottles", "error", err)
		status := http.StatusInternalServerError
		if srvErrors.IsConnectionError(err) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, v1.ErrorResponse{Error: "failed to list bottles"})
		return
	}

	apiBottles := make([]v1.Bottle, 0, len(rows))
	for _, row := range rows {
		apiBottles = append(apiBottles, v1.NewBottleFromModel(row))
	}
	c.JSON(http.StatusOK, v1.BottleListResponse{
		Total:   len(apiBottles),
		Bottles: apiBottles,
	})
}

// CreateBottle stores a new bottle and its optional location
// (POST /bottles)
func (h *Handler) CreateBottle(c *gin.Context) {
	var fields models.BottleFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "invalid bottle payload"})
		return
	}

	id, err := h.bottleSrv.Insert(c.Request.Context(), fields)
	if err != nil {
		zap.S().Named("bottle_handler").Errorw("failed to create bottle", "error", err)
		c.JSON(http.StatusInternalServerError, v1.ErrorResponse{Error: "failed to create bottle"})
		return
	}
	c.JSON(http.StatusCreated, v1.CreatedResponse{Id: id})
}

// UpdateBottle replaces every field of an existing bottle, location
// included
// (PUT /bottles/{id})
func (h *Handler) UpdateBottle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "id must be a number"})
		return
	}

	var fields models.BottleFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "invalid bottle payload"})
		return
	}

	if err := h.bottleSrv.Update(c.Request.Context(), id, fields); err != nil {
		if srvErrors.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, v1.ErrorResponse{Error: "bottle not found"})
			return
		}
		zap.S().Named("bottle_handler").Errorw("failed to update bottle", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, v1.ErrorResponse{Error: "failed to update bottle"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteBottle removes a bottle and its location
// (DELETE /bottles/{id})
func (h *Handler) DeleteBottle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "id must be a number"})
		return
	}

	if err := h.bottleSrv.Delete(c.Request.Context(), id); err != nil {
		if srvErrors.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, v1.ErrorResponse{Error: "bottle not found"})
			return
		}
		zap.S().Named("bottle_handler").Errorw("failed to delete bottle", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, v1.ErrorResponse{Error: "failed to delete bottle"})
		return
	}
	c.Status(http.StatusNoContent)
}

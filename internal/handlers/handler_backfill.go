package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/business_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/business_ledger/internal/core/ports/services"
	"github.com/SscSPs/business_ledger/internal/dto"
	"github.com/SscSPs/business_ledger/internal/middleware"
)

// backfillHandler handles HTTP requests for ledger backfill runs
type backfillHandler struct {
	backfillService portssvc.BackfillSvcFacade
}

// newBackfillHandler creates a new backfillHandler
func newBackfillHandler(bs portssvc.BackfillSvcFacade) *backfillHandler {
	return &backfillHandler{backfillService: bs}
}

// RegisterBackfillRoutes registers the backfill routes. runLimit guards the
// endpoint that writes to the ledger.
func RegisterBackfillRoutes(rg *gin.RouterGroup, backfillService portssvc.BackfillSvcFacade, runLimit gin.HandlerFunc) {
	h := newBackfillHandler(backfillService)

	ledger := rg.Group("/ledger")
	{
		if runLimit != nil {
			ledger.POST("/backfill", runLimit, h.runBackfill)
		} else {
			ledger.POST("/backfill", h.runBackfill)
		}
		ledger.GET("/backfill/:batchID/logs", h.listBackfillLogs)
	}
}

// runBackfill godoc
// @Summary Backfill ledger entries
// @Description Posts ledger entries for completed sales, paid installments and expenditures that have none yet
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body dto.BackfillRequest false "Backfill options"
// @Success 200 {object} dto.BackfillResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Backfill failed"
// @Security BearerAuth
// @Router /ledger/backfill [post]
func (h *backfillHandler) runBackfill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BackfillRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Failed to bind backfill request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	result, err := h.backfillService.RunBackfill(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Backfill request rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Backfill failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Backfill failed: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBackfillResponse(result))
}

// listBackfillLogs godoc
// @Summary List backfill logs
// @Description Returns the per-record audit log written by one backfill batch
// @Tags ledger
// @Produce json
// @Param batchID path string true "Batch ID"
// @Success 200 {object} dto.ListBackfillLogsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Batch not found"
// @Failure 500 {object} map[string]string "Failed to list logs"
// @Security BearerAuth
// @Router /ledger/backfill/{batchID}/logs [get]
func (h *backfillHandler) listBackfillLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	batchID := c.Param("batchID")

	records, err := h.backfillService.ListBackfillLogs(c.Request.Context(), batchID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Backfill batch not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to list backfill logs", slog.String("batch_id", batchID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list backfill logs"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListBackfillLogsResponse(batchID, records))
}

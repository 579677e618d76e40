package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sothea-dev/rielsum/internal/apperrors"
	portssvc "github.com/sothea-dev/rielsum/internal/core/ports/services"
	"github.com/sothea-dev/rielsum/internal/middleware"
)

// shiftHandler handles the shift lifecycle endpoints.
type shiftHandler struct {
	shiftSvc     portssvc.ShiftSvcFacade
	reportingSvc portssvc.ReportingSvcFacade
}

// newShiftHandler creates a new shiftHandler.
func newShiftHandler(shiftSvc portssvc.ShiftSvcFacade, reportingSvc portssvc.ReportingSvcFacade) *shiftHandler {
	return &shiftHandler{shiftSvc: shiftSvc, reportingSvc: reportingSvc}
}

// currentShift godoc
// @Summary Get the channel's open shift with its running totals
// @Tags shifts
// @Produce json
// @Param channelID path int true "Channel ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string "No open shift"
// @Router /channels/{channelID}/shifts/current [get]
func (h *shiftHandler) currentShift(c *gin.Context) {
	channelID, ok := channelIDParam(c)
	if !ok {
		return
	}

	shift, err := h.shiftSvc.CurrentShift(c.Request.Context(), channelID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No open shift"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get current shift", slog.Int64("channel_id", channelID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get current shift"})
		return
	}

	summary, err := h.reportingSvc.ShiftSummary(c.Request.Context(), shift.ShiftID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to summarize shift", slog.Int64("shift_id", shift.ShiftID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize shift"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"shift": shift, "summary": summary})
}

// closeShift godoc
// @Summary Close the channel's open shift
// @Description Closes the open shift and returns its final per-currency totals. The next recorded entry opens a new shift.
// @Tags shifts
// @Produce json
// @Param channelID path int true "Channel ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string "No open shift"
// @Router /channels/{channelID}/shifts/close [post]
func (h *shiftHandler) closeShift(c *gin.Context) {
	channelID, ok := channelIDParam(c)
	if !ok {
		return
	}

	shift, err := h.shiftSvc.CloseShift(c.Request.Context(), channelID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No open shift"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to close shift", slog.Int64("channel_id", channelID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close shift"})
		return
	}

	summary, err := h.reportingSvc.ShiftSummary(c.Request.Context(), shift.ShiftID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to summarize shift", slog.Int64("shift_id", shift.ShiftID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize shift"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"shift": shift, "summary": summary})
}

// lastShift godoc
// @Summary Get the channel's most recent shift with its totals
// @Tags shifts
// @Produce json
// @Param channelID path int true "Channel ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string "Channel has no shifts"
// @Router /channels/{channelID}/shifts/last [get]
func (h *shiftHandler) lastShift(c *gin.Context) {
	channelID, ok := channelIDParam(c)
	if !ok {
		return
	}

	shift, err := h.shiftSvc.LastShift(c.Request.Context(), channelID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Channel has no shifts"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get last shift", slog.Int64("channel_id", channelID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get last shift"})
		return
	}

	summary, err := h.reportingSvc.ShiftSummary(c.Request.Context(), shift.ShiftID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to summarize shift", slog.Int64("shift_id", shift.ShiftID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize shift"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"shift": shift, "summary": summary})
}

// registerShiftRoutes registers shift lifecycle routes.
func registerShiftRoutes(group *gin.RouterGroup, shiftSvc portssvc.ShiftSvcFacade, reportingSvc portssvc.ReportingSvcFacade) {
	handler := newShiftHandler(shiftSvc, reportingSvc)
	shifts := group.Group("/channels/:channelID/shifts")
	{
		shifts.GET("/current", handler.currentShift)
		shifts.GET("/last", handler.lastShift)
		shifts.POST("/close", handler.closeShift)
	}
}

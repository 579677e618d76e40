package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sothea-dev/rielsum/internal/apperrors"
	portssvc "github.com/sothea-dev/rielsum/internal/core/ports/services"
	"github.com/sothea-dev/rielsum/internal/dto"
	"github.com/sothea-dev/rielsum/internal/middleware"
)

// channelHandler handles channel registration and administration.
type channelHandler struct {
	channelSvc portssvc.ChannelSvcFacade
}

// newChannelHandler creates a new channelHandler.
func newChannelHandler(channelSvc portssvc.ChannelSvcFacade) *channelHandler {
	return &channelHandler{channelSvc: channelSvc}
}

// registerChannel godoc
// @Summary Register a channel for income tracking
// @Description Registers a chat channel; messages older than the registration timestamp are never recorded.
// @Tags channels
// @Accept json
// @Produce json
// @Param channel body dto.RegisterChannelRequest true "Channel registration"
// @Success 201 {object} domain.Channel
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 409 {object} map[string]string "Channel already registered"
// @Router /channels [post]
func (h *channelHandler) registerChannel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for registerChannel", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	channel, err := h.channelSvc.RegisterChannel(c.Request.Context(), req.ChannelID, req.Title)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Channel already registered"})
			return
		}
		logger.Error("Failed to register channel", slog.Int64("channel_id", req.ChannelID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register channel"})
		return
	}

	c.JSON(http.StatusCreated, channel)
}

// getChannel godoc
// @Summary Get channel registration metadata
// @Tags channels
// @Produce json
// @Param channelID path int true "Channel ID"
// @Success 200 {object} domain.Channel
// @Failure 404 {object} map[string]string "Channel not found"
// @Router /channels/{channelID} [get]
func (h *channelHandler) getChannel(c *gin.Context) {
	channelID, ok := channelIDParam(c)
	if !ok {
		return
	}

	channel, err := h.channelSvc.GetChannel(c.Request.Context(), channelID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Channel not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get channel", slog.Int64("channel_id", channelID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get channel"})
		return
	}

	c.JSON(http.StatusOK, channel)
}

// setShiftTracking godoc
// @Summary Enable or disable shift tracking for a channel
// @Description Enabling opens a shift immediately when none is open.
// @Tags channels
// @Accept json
// @Produce json
// @Param channelID path int true "Channel ID"
// @Param request body dto.SetShiftTrackingRequest true "Shift tracking flag"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Channel not found"
// @Router /channels/{channelID}/shift-tracking [put]
func (h *channelHandler) setShiftTracking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	channelID, ok := channelIDParam(c)
	if !ok {
		return
	}

	var req dto.SetShiftTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for setShiftTracking", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.channelSvc.SetShiftTracking(c.Request.Context(), channelID, *req.Enabled); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Channel not found"})
			return
		}
		logger.Error("Failed to set shift tracking", slog.Int64("channel_id", channelID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set shift tracking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// setActive godoc
// @Summary Activate or deactivate a channel
// @Tags channels
// @Accept json
// @Produce json
// @Param channelID path int true "Channel ID"
// @Param request body dto.SetActiveRequest true "Active flag"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Channel not found"
// @Router /channels/{channelID}/active [put]
func (h *channelHandler) setActive(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	channelID, ok := channelIDParam(c)
	if !ok {
		return
	}

	var req dto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for setActive", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.channelSvc.SetActive(c.Request.Context(), channelID, *req.Active); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Channel not found"})
			return
		}
		logger.Error("Failed to set active flag", slog.Int64("channel_id", channelID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set active flag"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// migrateChannel godoc
// @Summary Move a channel's data to a new channel identifier
// @Description Rewrites the channel id on the registration, its shifts and its ledger entries atomically.
// @Tags channels
// @Accept json
// @Produce json
// @Param request body dto.MigrateChannelRequest true "Migration request"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Source channel not found"
// @Failure 409 {object} map[string]string "Target channel already registered"
// @Router /channels/migrate [post]
func (h *channelHandler) migrateChannel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.MigrateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for migrateChannel", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.channelSvc.MigrateChannel(c.Request.Context(), req.FromChannelID, req.ToChannelID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Source channel not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Target channel already registered"})
		default:
			logger.Error("Failed to migrate channel", slog.Int64("from", req.FromChannelID), slog.Int64("to", req.ToChannelID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to migrate channel"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "migrated"})
}

// channelIDParam parses the :channelID path parameter, writing the error
// response itself on failure.
func channelIDParam(c *gin.Context) (int64, bool) {
	channelID, err := strconv.ParseInt(c.Param("channelID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid channel ID"})
		return 0, false
	}
	return channelID, true
}

// registerChannelRoutes registers channel administration routes.
func registerChannelRoutes(group *gin.RouterGroup, channelSvc portssvc.ChannelSvcFacade) {
	handler := newChannelHandler(channelSvc)
	channels := group.Group("/channels")
	{
		channels.POST("", handler.registerChannel)
		channels.POST("/migrate", handler.migrateChannel)
		channels.GET("/:channelID", handler.getChannel)
		channels.PUT("/:channelID/shift-tracking", handler.setShiftTracking)
		channels.PUT("/:channelID/active", handler.setActive)
	}
}

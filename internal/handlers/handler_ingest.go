package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sothea-dev/rielsum/internal/core/domain"
	portssvc "github.com/sothea-dev/rielsum/internal/core/ports/services"
	"github.com/sothea-dev/rielsum/internal/dto"
	"github.com/sothea-dev/rielsum/internal/middleware"
)

// ingestHandler handles inbound message events from the chat transport.
type ingestHandler struct {
	recorderSvc portssvc.RecorderSvcFacade
}

// newIngestHandler creates a new ingestHandler.
func newIngestHandler(recorderSvc portssvc.RecorderSvcFacade) *ingestHandler {
	return &ingestHandler{recorderSvc: recorderSvc}
}

// ingestMessage godoc
// @Summary Process one inbound chat message
// @Description Runs extraction and, when a payment notification is recognized, records it into the channel's ledger exactly once.
// @Tags ingest
// @Accept json
// @Produce json
// @Param event body dto.InboundMessageEvent true "Inbound message event"
// @Success 200 {object} domain.RecordResult "Outcome; rejections are reported here, not as errors"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 502 {object} map[string]string "Ledger store unavailable"
// @Router /ingest [post]
func (h *ingestHandler) ingestMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var event dto.InboundMessageEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		logger.Error("Failed to bind JSON for ingestMessage", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.recorderSvc.Process(c.Request.Context(), event)
	if err != nil {
		logger.Error("Failed to process inbound message",
			slog.Int64("channel_id", event.ChannelID),
			slog.Int64("message_id", event.MessageID),
			slog.String("error", err.Error()),
		)
		// The transport retries on 5xx; the duplicate guard keeps that safe.
		c.JSON(http.StatusBadGateway, gin.H{"status": domain.StatusError, "error": "Failed to record transaction"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// registerIngestRoutes registers the transport-facing ingest route.
func registerIngestRoutes(group *gin.RouterGroup, recorderSvc portssvc.RecorderSvcFacade, limiter gin.HandlerFunc) {
	handler := newIngestHandler(recorderSvc)
	ingest := group.Group("/ingest")
	if limiter != nil {
		ingest.Use(limiter)
	}
	ingest.POST("", handler.ingestMessage)
}

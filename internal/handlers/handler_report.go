package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sothea-dev/rielsum/internal/core/ports/services"
	"github.com/sothea-dev/rielsum/internal/dto"
	"github.com/sothea-dev/rielsum/internal/middleware"
)

// reportHandler serves per-channel income summaries.
type reportHandler struct {
	reportingSvc portssvc.ReportingSvcFacade
}

// newReportHandler creates a new reportHandler.
func newReportHandler(reportingSvc portssvc.ReportingSvcFacade) *reportHandler {
	return &reportHandler{reportingSvc: reportingSvc}
}

// dailyReport godoc
// @Summary Daily income summary for a channel
// @Description Summarizes the calendar day in the report timezone. Defaults to today; pass date=YYYY-MM-DD for another day.
// @Tags reports
// @Produce json
// @Param channelID path int true "Channel ID"
// @Param date query string false "Day to summarize (YYYY-MM-DD)"
// @Success 200 {object} dto.IncomeSummary
// @Failure 400 {object} map[string]string "Invalid date"
// @Router /channels/{channelID}/reports/daily [get]
func (h *reportHandler) dailyReport(c *gin.Context) {
	channelID, ok := channelIDParam(c)
	if !ok {
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	summary, err := h.reportingSvc.DailySummary(c.Request.Context(), channelID, date)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to build daily summary", slog.Int64("channel_id", channelID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build daily summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// weeklyReport godoc
// @Summary Income summary for the current week (Monday through today)
// @Tags reports
// @Produce json
// @Param channelID path int true "Channel ID"
// @Success 200 {object} dto.IncomeSummary
// @Router /channels/{channelID}/reports/weekly [get]
func (h *reportHandler) weeklyReport(c *gin.Context) {
	channelID, ok := channelIDParam(c)
	if !ok {
		return
	}

	summary, err := h.reportingSvc.WeeklySummary(c.Request.Context(), channelID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to build weekly summary", slog.Int64("channel_id", channelID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build weekly summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// monthlyReport godoc
// @Summary Income summary for the current calendar month
// @Tags reports
// @Produce json
// @Param channelID path int true "Channel ID"
// @Success 200 {object} dto.IncomeSummary
// @Router /channels/{channelID}/reports/monthly [get]
func (h *reportHandler) monthlyReport(c *gin.Context) {
	channelID, ok := channelIDParam(c)
	if !ok {
		return
	}

	summary, err := h.reportingSvc.MonthlySummary(c.Request.Context(), channelID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to build monthly summary", slog.Int64("channel_id", channelID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build monthly summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// rangeReport godoc
// @Summary Income summary for an explicit date range
// @Description Both bounds are YYYY-MM-DD; the end date is inclusive.
// @Tags reports
// @Produce json
// @Param channelID path int true "Channel ID"
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date, inclusive (YYYY-MM-DD)"
// @Success 200 {object} dto.IncomeSummary
// @Failure 400 {object} map[string]string "Invalid range"
// @Router /channels/{channelID}/reports/range [get]
func (h *reportHandler) rangeReport(c *gin.Context) {
	channelID, ok := channelIDParam(c)
	if !ok {
		return
	}

	var req dto.RangeSummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid range, expected from and to as YYYY-MM-DD"})
		return
	}

	from, _ := time.Parse("2006-01-02", req.From)
	to, _ := time.Parse("2006-01-02", req.To)
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date precedes start date"})
		return
	}

	summary, err := h.reportingSvc.RangeSummary(c.Request.Context(), channelID, from, to)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to build range summary", slog.Int64("channel_id", channelID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build range summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// registerReportRoutes registers report generation routes.
func registerReportRoutes(group *gin.RouterGroup, reportingSvc portssvc.ReportingSvcFacade) {
	handler := newReportHandler(reportingSvc)
	reports := group.Group("/channels/:channelID/reports")
	{
		reports.GET("/daily", handler.dailyReport)
		reports.GET("/weekly", handler.weeklyReport)
		reports.GET("/monthly", handler.monthlyReport)
		reports.GET("/range", handler.rangeReport)
	}
}

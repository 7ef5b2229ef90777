package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/casa_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/casa_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the summaries behind the dashboard pages
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.getDashboard)
		reports.GET("/expenses", h.getExpenseSummary)
		reports.GET("/investments", h.getInvestmentSummary)
		reports.GET("/trading", h.getTradingSummary)
	}
}

// bindPeriod reads ?year=&month= and writes a 400 on invalid values.
func bindPeriod(c *gin.Context) (int, time.Month, bool) {
	var params dto.ReportPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return 0, 0, false
	}
	return params.Year, time.Month(params.Month), true
}

// getDashboard godoc
// @Summary Dashboard summary
// @Description Totals, net worth with its USD-based status and the latest expenses of the month
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	d, err := h.reportingService.Dashboard(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "build dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(d))
}

// getExpenseSummary godoc
// @Summary Monthly expense summary
// @Tags reports
// @Produce json
// @Param year query int false "Year, defaults to the current one"
// @Param month query int false "Month 1-12, defaults to the current one"
// @Success 200 {object} dto.ExpenseSummaryResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build expense summary"
// @Security BearerAuth
// @Router /reports/expenses [get]
func (h *reportingHandler) getExpenseSummary(c *gin.Context) {
	year, month, ok := bindPeriod(c)
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	summary, err := h.reportingService.ExpenseSummary(c.Request.Context(), userID, year, month)
	if err != nil {
		respondServiceError(c, err, "build expense summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseSummaryResponse(summary))
}

// getInvestmentSummary godoc
// @Summary Investment summary
// @Tags reports
// @Produce json
// @Success 200 {object} dto.InvestmentSummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build investment summary"
// @Security BearerAuth
// @Router /reports/investments [get]
func (h *reportingHandler) getInvestmentSummary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	summary, err := h.reportingService.InvestmentSummary(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "build investment summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvestmentSummaryResponse(summary))
}

// getTradingSummary godoc
// @Summary Trading journal summary
// @Description Win rate and total P&L over all closed trades plus the calendar of the requested month
// @Tags reports
// @Produce json
// @Param year query int false "Year, defaults to the current one"
// @Param month query int false "Month 1-12, defaults to the current one"
// @Success 200 {object} dto.TradingSummaryResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build trading summary"
// @Security BearerAuth
// @Router /reports/trading [get]
func (h *reportingHandler) getTradingSummary(c *gin.Context) {
	year, month, ok := bindPeriod(c)
	if !ok {
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	summary, err := h.reportingService.TradingSummary(c.Request.Context(), userID, year, month)
	if err != nil {
		respondServiceError(c, err, "build trading summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToTradingSummaryResponse(summary))
}

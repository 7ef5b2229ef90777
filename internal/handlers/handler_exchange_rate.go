package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/casa_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/casa_ledger_app/internal/dto"
	"github.com/SscSPs/casa_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvc
}

func newExchangeRateHandler(ers portssvc.ExchangeRateSvc) *exchangeRateHandler {
	return &exchangeRateHandler{exchangeRateService: ers}
}

// RegisterExchangeRateRoutes registers routes related to exchange rates.
func RegisterExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvc) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("/:from/:to", h.getExchangeRate)
	}
}

// getExchangeRate godoc
// @Summary Get a spot exchange rate
// @Description Units of {to} per one unit of {from}. Provider trouble is reported through status "unavailable", not as an error.
// @Tags exchange rates
// @Produce json
// @Param from path string true "From Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param to   path string true "To Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid currency code format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /exchange-rates/{from}/{to} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from := domain.NormalizeCurrencyCode(c.Param("from"))
	to := domain.NormalizeCurrencyCode(c.Param("to"))

	if !from.IsWellFormed() || !to.IsWellFormed() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency codes must be 3 letters"})
		return
	}

	quote := h.exchangeRateService.GetRate(c.Request.Context(), from, to)
	logger.Debug("Exchange rate served",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.String("status", string(quote.Status)))
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(quote))
}

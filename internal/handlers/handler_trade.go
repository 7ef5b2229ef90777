package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/casa_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/casa_ledger_app/internal/dto"
	"github.com/SscSPs/casa_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tradeHandler handles HTTP requests related to the trading journal.
type tradeHandler struct {
	tradeService   portssvc.TradeSvcFacade
	profileService portssvc.ProfileReaderSvc
}

func newTradeHandler(ts portssvc.TradeSvcFacade, ps portssvc.ProfileReaderSvc) *tradeHandler {
	return &tradeHandler{tradeService: ts, profileService: ps}
}

// RegisterTradeRoutes registers routes related to trades.
func RegisterTradeRoutes(rg *gin.RouterGroup, tradeService portssvc.TradeSvcFacade, profileService portssvc.ProfileReaderSvc) {
	h := newTradeHandler(tradeService, profileService)

	trades := rg.Group("/trades")
	{
		trades.POST("", h.logTrade)
		trades.GET("", h.listTrades)
		trades.GET("/:tradeID", h.getTrade)
		trades.DELETE("/:tradeID", h.deleteTrade)
	}
}

// logTrade godoc
// @Summary Log a trade
// @Description Stores a trade. With an exit price and no explicit profitLoss, the P&L is computed
// @Description in USD and converted into the user's base currency.
// @Tags trades
// @Accept json
// @Produce json
// @Param trade body dto.LogTradeRequest true "Trade details"
// @Success 201 {object} dto.TradeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Exchange rate unavailable"
// @Failure 500 {object} map[string]string "Failed to log trade"
// @Security BearerAuth
// @Router /trades [post]
func (h *tradeHandler) logTrade(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LogTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for LogTrade", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	trade, err := h.tradeService.LogTrade(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "log trade")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTradeResponse(trade, currencyFor(c, h.profileService, userID)))
}

// listTrades godoc
// @Summary List trades
// @Description Newest first, paginated with an opaque nextToken
// @Tags trades
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTradesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list trades"
// @Security BearerAuth
// @Router /trades [get]
func (h *tradeHandler) listTrades(c *gin.Context) {
	var params dto.ListTradesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	resp, err := h.tradeService.ListTrades(c.Request.Context(), userID, params)
	if err != nil {
		respondServiceError(c, err, "list trades")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTrade godoc
// @Summary Get a trade
// @Tags trades
// @Produce json
// @Param tradeID path string true "Trade ID"
// @Success 200 {object} dto.TradeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trade not found"
// @Failure 500 {object} map[string]string "Failed to get trade"
// @Security BearerAuth
// @Router /trades/{tradeID} [get]
func (h *tradeHandler) getTrade(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	trade, err := h.tradeService.GetTrade(c.Request.Context(), userID, c.Param("tradeID"))
	if err != nil {
		respondServiceError(c, err, "get trade")
		return
	}
	c.JSON(http.StatusOK, dto.ToTradeResponse(trade, currencyFor(c, h.profileService, userID)))
}

// deleteTrade godoc
// @Summary Delete a trade
// @Tags trades
// @Param tradeID path string true "Trade ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trade not found"
// @Failure 500 {object} map[string]string "Failed to delete trade"
// @Security BearerAuth
// @Router /trades/{tradeID} [delete]
func (h *tradeHandler) deleteTrade(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.tradeService.DeleteTrade(c.Request.Context(), userID, c.Param("tradeID")); err != nil {
		respondServiceError(c, err, "delete trade")
		return
	}
	c.Status(http.StatusNoContent)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/casa_ledger_app/internal/apperrors"
	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/casa_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/casa_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/casa_ledger_app/internal/dto"
	"github.com/SscSPs/casa_ledger_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultTradePageSize = 20

// tradeService implements the TradeSvcFacade interface
type tradeService struct {
	BaseService
	tradeRepo   portsrepo.TradeRepositoryFacade
	profileRepo portsrepo.ProfileReader
	rates       portssvc.ExchangeRateSvc
	fallback    domain.RateFallback
}

// TradeServiceOption is a functional option for configuring the trade service
type TradeServiceOption func(*tradeService)

// WithTradeRateFallback sets what an unknown USD conversion rate resolves to.
func WithTradeRateFallback(policy domain.RateFallback) TradeServiceOption {
	return func(s *tradeService) {
		s.fallback = policy
	}
}

// WithTradeClock overrides the clock used for default trade dates and audit fields.
func WithTradeClock(now func() time.Time) TradeServiceOption {
	return func(s *tradeService) {
		s.Now = now
	}
}

// NewTradeService creates a new trade service with the provided options
func NewTradeService(tradeRepo portsrepo.TradeRepositoryFacade, profileRepo portsrepo.ProfileReader, rates portssvc.ExchangeRateSvc, options ...TradeServiceOption) portssvc.TradeSvcFacade {
	svc := &tradeService{
		tradeRepo:   tradeRepo,
		profileRepo: profileRepo,
		rates:       rates,
		fallback:    domain.FallbackZero,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TradeSvcFacade = (*tradeService)(nil)

func validateTradeRequest(req dto.LogTradeRequest) (domain.TradeSide, error) {
	if strings.TrimSpace(req.Symbol) == "" {
		return "", fmt.Errorf("%w: symbol is required", apperrors.ErrValidation)
	}
	side, err := domain.ParseTradeSide(req.Side)
	if err != nil {
		return "", err
	}
	if !req.Quantity.IsPositive() {
		return "", fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if !req.EntryPrice.IsPositive() {
		return "", fmt.Errorf("%w: entry price must be positive", apperrors.ErrValidation)
	}
	if req.ExitPrice != nil && !req.ExitPrice.IsPositive() {
		return "", fmt.Errorf("%w: exit price must be positive", apperrors.ErrValidation)
	}
	if req.Leverage != nil && !req.Leverage.IsPositive() {
		return "", fmt.Errorf("%w: leverage must be positive", apperrors.ErrValidation)
	}
	return side, nil
}

// LogTrade stores a trade. A manual profit/loss wins over the computed one; without either an
// exit price or a manual value the trade is stored open.
func (s *tradeService) LogTrade(ctx context.Context, userID string, req dto.LogTradeRequest) (*domain.Trade, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	side, err := validateTradeRequest(req)
	if err != nil {
		s.LogDebug(ctx, "Rejected trade request", slog.String("error", err.Error()))
		return nil, err
	}

	now := s.now()
	trade := domain.Trade{
		TradeID:     uuid.NewString(),
		UserID:      userID,
		Symbol:      strings.ToUpper(strings.TrimSpace(req.Symbol)),
		Side:        side,
		Quantity:    req.Quantity,
		EntryPrice:  req.EntryPrice,
		ExitPrice:   req.ExitPrice,
		Leverage:    req.Leverage,
		Notes:       req.Notes,
		TradeDate:   now,
		AuditFields: domain.NewAuditFields(userID, now),
	}
	if req.TradeDate != nil && !req.TradeDate.IsZero() {
		trade.TradeDate = req.TradeDate.UTC()
	}

	switch {
	case req.ProfitLoss != nil:
		pnl := *req.ProfitLoss
		trade.ProfitLoss = &pnl
	case req.ExitPrice != nil:
		pnl, err := s.convertedProfitLoss(ctx, userID, trade)
		if err != nil {
			return nil, err
		}
		trade.ProfitLoss = &pnl
	}

	if err := s.tradeRepo.SaveTrade(ctx, trade); err != nil {
		s.LogError(ctx, err, "Failed to save trade", slog.String("trade_id", trade.TradeID))
		return nil, fmt.Errorf("failed to log trade: %w", err)
	}

	s.LogInfo(ctx, "Trade logged",
		slog.String("trade_id", trade.TradeID),
		slog.String("symbol", trade.Symbol),
		slog.Bool("closed", trade.IsClosed()))
	return &trade, nil
}

// convertedProfitLoss prices the trade in USD and converts it into the user's base currency.
func (s *tradeService) convertedProfitLoss(ctx context.Context, userID string, trade domain.Trade) (decimal.Decimal, error) {
	currency, err := profileCurrency(ctx, s.profileRepo, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load profile currency for trade")
		return decimal.Zero, err
	}

	raw := domain.RawProfitLoss(trade.Symbol, trade.Side, trade.Quantity, trade.EntryPrice, *trade.ExitPrice)

	quote := s.rates.GetRate(ctx, domain.DefaultCurrency, currency)
	rate, err := quote.Resolve(s.fallback)
	if err != nil {
		s.LogWarn(ctx, "No exchange rate for trade, rejecting", slog.String("currency", currency.String()))
		return decimal.Zero, err
	}
	if !quote.IsKnown() {
		s.LogWarn(ctx, "Exchange rate unavailable, applying fallback to trade P&L",
			slog.String("currency", currency.String()),
			slog.String("fallback", string(s.fallback)),
			slog.String("reason", quote.Reason))
	}
	return raw.Mul(rate), nil
}

func (s *tradeService) GetTrade(ctx context.Context, userID string, tradeID string) (*domain.Trade, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	trade, err := s.tradeRepo.FindTradeByID(ctx, userID, tradeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trade %s: %w", tradeID, err)
	}
	return trade, nil
}

// ListTrades returns one page of trades. NextToken is set only when another page exists.
func (s *tradeService) ListTrades(ctx context.Context, userID string, params dto.ListTradesParams) (*dto.ListTradesResponse, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultTradePageSize
	}

	var cursor *portsrepo.TradeCursor
	if params.NextToken != "" {
		tradeDate, createdAt, tradeID, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = &portsrepo.TradeCursor{TradeDate: tradeDate, CreatedAt: createdAt, TradeID: tradeID}
	}

	currency, err := profileCurrency(ctx, s.profileRepo, userID)
	if err != nil {
		return nil, err
	}

	trades, err := s.tradeRepo.ListTrades(ctx, userID, limit+1, cursor)
	if err != nil {
		s.LogError(ctx, err, "Failed to list trades")
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}

	resp := &dto.ListTradesResponse{}
	if len(trades) > limit {
		trades = trades[:limit]
		last := trades[limit-1]
		token := pagination.EncodeToken(last.TradeDate, last.CreatedAt, last.TradeID)
		resp.NextToken = &token
	}
	resp.Trades = dto.ToListTradeResponse(trades, currency)
	return resp, nil
}

func (s *tradeService) DeleteTrade(ctx context.Context, userID string, tradeID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if err := s.tradeRepo.DeleteTrade(ctx, userID, tradeID); err != nil {
		return fmt.Errorf("failed to delete trade %s: %w", tradeID, err)
	}
	s.LogInfo(ctx, "Trade deleted", slog.String("trade_id", tradeID))
	return nil
}

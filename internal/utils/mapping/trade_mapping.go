package mapping

import (
	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	"github.com/SscSPs/casa_ledger_app/internal/models"
	"github.com/shopspring/decimal"
)

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func fromNullDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	v := n.Decimal
	return &v
}

// ToModelTrade converts a domain Trade to a model Trade
func ToModelTrade(d domain.Trade) models.Trade {
	return models.Trade{
		TradeID:     d.TradeID,
		UserID:      d.UserID,
		Symbol:      d.Symbol,
		Side:        string(d.Side),
		Quantity:    d.Quantity,
		EntryPrice:  d.EntryPrice,
		ExitPrice:   toNullDecimal(d.ExitPrice),
		Leverage:    toNullDecimal(d.Leverage),
		ProfitLoss:  toNullDecimal(d.ProfitLoss),
		Notes:       d.Notes,
		TradeDate:   d.TradeDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTrade converts a model Trade to a domain Trade
func ToDomainTrade(m models.Trade) domain.Trade {
	return domain.Trade{
		TradeID:     m.TradeID,
		UserID:      m.UserID,
		Symbol:      m.Symbol,
		Side:        domain.TradeSide(m.Side),
		Quantity:    m.Quantity,
		EntryPrice:  m.EntryPrice,
		ExitPrice:   fromNullDecimal(m.ExitPrice),
		Leverage:    fromNullDecimal(m.Leverage),
		ProfitLoss:  fromNullDecimal(m.ProfitLoss),
		Notes:       m.Notes,
		TradeDate:   m.TradeDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTradeSlice converts a slice of model Trades to a slice of domain Trades
func ToDomainTradeSlice(ms []models.Trade) []domain.Trade {
	ds := make([]domain.Trade, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTrade(m)
	}
	return ds
}

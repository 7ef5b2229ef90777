package mapping

import (
	"database/sql"

	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	"github.com/SscSPs/casa_ledger_app/internal/models"
)

// ToModelAsset converts a domain Asset to a model Asset
func ToModelAsset(d domain.Asset) models.Asset {
	return models.Asset{
		AssetID:     d.AssetID,
		UserID:      d.UserID,
		Name:        d.Name,
		Type:        d.Type,
		Value:       d.Value,
		Description: sql.NullString{String: d.Description, Valid: d.Description != ""},
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAsset converts a model Asset to a domain Asset
func ToDomainAsset(m models.Asset) domain.Asset {
	return domain.Asset{
		AssetID:     m.AssetID,
		UserID:      m.UserID,
		Name:        m.Name,
		Type:        m.Type,
		Value:       m.Value,
		Description: m.Description.String,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAssetSlice converts a slice of model Assets to a slice of domain Assets
func ToDomainAssetSlice(ms []models.Asset) []domain.Asset {
	ds := make([]domain.Asset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAsset(m)
	}
	return ds
}

func ToModelLiability(d domain.Liability) models.Liability {
	return models.Liability{
		LiabilityID: d.LiabilityID,
		UserID:      d.UserID,
		Name:        d.Name,
		Type:        d.Type,
		Amount:      d.Amount,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainLiability(m models.Liability) domain.Liability {
	return domain.Liability{
		LiabilityID: m.LiabilityID,
		UserID:      m.UserID,
		Name:        m.Name,
		Type:        m.Type,
		Amount:      m.Amount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainLiabilitySlice(ms []models.Liability) []domain.Liability {
	ds := make([]domain.Liability, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLiability(m)
	}
	return ds
}

func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		UserID:      d.UserID,
		Description: d.Description,
		Amount:      d.Amount,
		Category:    d.Category,
		Date:        d.Date,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		UserID:      m.UserID,
		Description: m.Description,
		Amount:      m.Amount,
		Category:    m.Category,
		Date:        m.Date,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}

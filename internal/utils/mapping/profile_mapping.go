package mapping

import (
	"github.com/SscSPs/casa_ledger_app/internal/core/domain"
	"github.com/SscSPs/casa_ledger_app/internal/models"
)

// ToModelUserProfile converts a domain UserProfile to a model UserProfile
func ToModelUserProfile(d domain.UserProfile) models.UserProfile {
	return models.UserProfile{
		UserID:      d.UserID,
		FullName:    d.FullName,
		Currency:    d.Currency.String(),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUserProfile converts a model UserProfile to a domain UserProfile
func ToDomainUserProfile(m models.UserProfile) domain.UserProfile {
	return domain.UserProfile{
		UserID:      m.UserID,
		FullName:    m.FullName,
		Currency:    domain.NormalizeCurrencyCode(m.Currency),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

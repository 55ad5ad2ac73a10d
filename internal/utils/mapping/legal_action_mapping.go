package mapping

import (
	"github.com/misuhub/receivables_app/internal/core/domain"
	"github.com/misuhub/receivables_app/internal/models"
)

// ToModelLegalAction converts a domain LegalAction to a model LegalAction
func ToModelLegalAction(d domain.LegalAction) models.LegalAction {
	return models.LegalAction{
		LegalActionID: d.LegalActionID,
		CustomerID:    d.CustomerID,
		Type:          d.Type,
		Description:   d.Description,
		Status:        string(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLegalAction converts a model LegalAction to a domain LegalAction
func ToDomainLegalAction(m models.LegalAction) domain.LegalAction {
	return domain.LegalAction{
		LegalActionID: m.LegalActionID,
		CustomerID:    m.CustomerID,
		Type:          m.Type,
		Description:   m.Description,
		Status:        domain.LegalActionStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLegalActionSlice converts a slice of model LegalActions to domain LegalActions
func ToDomainLegalActionSlice(ms []models.LegalAction) []domain.LegalAction {
	ds := make([]domain.LegalAction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLegalAction(m)
	}
	return ds
}

package mapping

import (
	"github.com/misuhub/receivables_app/internal/core/domain"
	"github.com/misuhub/receivables_app/internal/models"
)

// ToModelFile converts a domain File to a model File
func ToModelFile(d domain.File) models.File {
	return models.File{
		FileID:      d.FileID,
		CustomerID:  d.CustomerID,
		Name:        d.Name,
		Type:        d.Type,
		URL:         d.URL,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFile converts a model File to a domain File
func ToDomainFile(m models.File) domain.File {
	return domain.File{
		FileID:      m.FileID,
		CustomerID:  m.CustomerID,
		Name:        m.Name,
		Type:        m.Type,
		URL:         m.URL,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFileSlice converts a slice of model Files to domain Files
func ToDomainFileSlice(ms []models.File) []domain.File {
	ds := make([]domain.File, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFile(m)
	}
	return ds
}

package dto

import (
	"time"

	"github.com/misuhub/receivables_app/internal/core/domain"
)

// CreateLegalActionRequest defines the data needed to record a legal action.
type CreateLegalActionRequest struct {
	CustomerID  string `json:"customerID" binding:"required,uuid"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
}

// UpdateLegalActionRequest defines the data allowed for updating a legal action.
type UpdateLegalActionRequest struct {
	Type        *string `json:"type"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=in_progress completed"`
}

// LegalActionResponse defines the data returned for a legal action.
type LegalActionResponse struct {
	LegalActionID string                   `json:"legalActionID"`
	CustomerID    string                   `json:"customerID"`
	Type          string                   `json:"type"`
	Description   string                   `json:"description"`
	Status        domain.LegalActionStatus `json:"status"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

// ToLegalActionResponse converts a domain.LegalAction to LegalActionResponse DTO
func ToLegalActionResponse(a *domain.LegalAction) LegalActionResponse {
	return LegalActionResponse{
		LegalActionID: a.LegalActionID,
		CustomerID:    a.CustomerID,
		Type:          a.Type,
		Description:   a.Description,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// ToListLegalActionResponse converts a slice of domain.LegalAction to response DTOs
func ToListLegalActionResponse(actions []domain.LegalAction) []LegalActionResponse {
	res := make([]LegalActionResponse, len(actions))
	for i, a := range actions {
		res[i] = ToLegalActionResponse(&a)
	}
	return res
}

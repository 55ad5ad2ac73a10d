package dto

import (
	"time"

	"github.com/misuhub/receivables_app/internal/core/domain"
)

// CreateFileRequest defines the data needed to attach a file record to a customer.
// The blob is uploaded to external storage by the client; only the URL lands here.
type CreateFileRequest struct {
	CustomerID string `json:"customerID" binding:"required,uuid"`
	Name       string `json:"name" binding:"required"`
	Type       string `json:"type"`
	URL        string `json:"url" binding:"required,url"`
}

// FileResponse defines the data returned for a file record.
type FileResponse struct {
	FileID     string    `json:"fileID"`
	CustomerID string    `json:"customerID"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	URL        string    `json:"url"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToFileResponse converts a domain.File to FileResponse DTO
func ToFileResponse(f *domain.File) FileResponse {
	return FileResponse{
		FileID:     f.FileID,
		CustomerID: f.CustomerID,
		Name:       f.Name,
		Type:       f.Type,
		URL:        f.URL,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}

// ToListFileResponse converts a slice of domain.File to response DTOs
func ToListFileResponse(files []domain.File) []FileResponse {
	res := make([]FileResponse, len(files))
	for i, f := range files {
		res[i] = ToFileResponse(&f)
	}
	return res
}

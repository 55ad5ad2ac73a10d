package services

import (
	"context"

	"github.com/misuhub/receivables_app/internal/core/domain"
	"github.com/misuhub/receivables_app/internal/dto"
)

// FileSvcFacade defines operations for customer file attachments.
// Only metadata is managed here; the blobs live in external storage.
type FileSvcFacade interface {
	// GetFileByID retrieves a specific file record by its unique identifier.
	GetFileByID(ctx context.Context, fileID string) (*domain.File, error)

	// ListFilesByCustomer retrieves every file attached to one customer.
	ListFilesByCustomer(ctx context.Context, customerID string) ([]domain.File, error)

	// CreateFile persists a new file record.
	CreateFile(ctx context.Context, req dto.CreateFileRequest) (*domain.File, error)

	// DeleteFile removes a file record.
	DeleteFile(ctx context.Context, fileID string) error
}

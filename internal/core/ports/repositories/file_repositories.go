package repositories

import (
	"context"

	"github.com/misuhub/receivables_app/internal/core/domain"
)

// FileReader defines read operations for file metadata
type FileReader interface {
	// FindFileByID retrieves a specific file record by its unique identifier.
	FindFileByID(ctx context.Context, fileID string) (*domain.File, error)

	// ListFilesByCustomer retrieves every file attached to one customer, newest first.
	ListFilesByCustomer(ctx context.Context, customerID string) ([]domain.File, error)
}

// FileWriter defines write operations for file metadata
type FileWriter interface {
	// SaveFile persists a new file record.
	SaveFile(ctx context.Context, file domain.File) error

	// DeleteFile removes a file record.
	DeleteFile(ctx context.Context, fileID string) error
}

// FileRepositoryFacade combines all file-related repository interfaces
type FileRepositoryFacade interface {
	FileReader
	FileWriter
}

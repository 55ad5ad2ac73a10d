package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/misuhub/receivables_app/internal/apperrors"
	"github.com/misuhub/receivables_app/internal/core/domain"
	portsrepo "github.com/misuhub/receivables_app/internal/core/ports/repositories"
	portssvc "github.com/misuhub/receivables_app/internal/core/ports/services"
	"github.com/misuhub/receivables_app/internal/dto"
)

// fileService implements the FileSvcFacade interface
type fileService struct {
	BaseService
	fileRepo     portsrepo.FileRepositoryFacade
	customerRepo portsrepo.CustomerReader
}

// NewFileService creates a new file metadata service.
func NewFileService(repo portsrepo.FileRepositoryFacade, customerRepo portsrepo.CustomerReader) portssvc.FileSvcFacade {
	return &fileService{fileRepo: repo, customerRepo: customerRepo}
}

// Ensure fileService implements the FileSvcFacade interface
var _ portssvc.FileSvcFacade = (*fileService)(nil)

func (s *fileService) CreateFile(ctx context.Context, req dto.CreateFileRequest) (*domain.File, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, req.CustomerID)
		}
		return nil, err
	}

	now := time.Now().UTC()
	file := domain.File{
		FileID:     uuid.NewString(),
		CustomerID: req.CustomerID,
		Name:       req.Name,
		Type:       req.Type,
		URL:        req.URL,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.fileRepo.SaveFile(ctx, file); err != nil {
		s.LogError(ctx, err, "Failed to save file record", slog.String("file_id", file.FileID))
		return nil, err
	}

	return &file, nil
}

func (s *fileService) GetFileByID(ctx context.Context, fileID string) (*domain.File, error) {
	return s.fileRepo.FindFileByID(ctx, fileID)
}

func (s *fileService) ListFilesByCustomer(ctx context.Context, customerID string) ([]domain.File, error) {
	files, err := s.fileRepo.ListFilesByCustomer(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list files", slog.String("customer_id", customerID))
		return nil, err
	}
	return files, nil
}

func (s *fileService) DeleteFile(ctx context.Context, fileID string) error {
	if err := s.fileRepo.DeleteFile(ctx, fileID); err != nil {
		s.LogError(ctx, err, "Failed to delete file record", slog.String("file_id", fileID))
		return err
	}
	return nil
}

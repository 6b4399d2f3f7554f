package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/caexinspect/internal/core/fault"
	"github.com/example/caexinspect/internal/ports/primary"
	"github.com/example/caexinspect/internal/ports/secondary"
)

// PhotoServiceImpl implements the PhotoService interface.
type PhotoServiceImpl struct {
	photoRepo  secondary.PhotoRepository
	photoStore secondary.PhotoStore
	logger     *slog.Logger
}

// NewPhotoService creates a new PhotoService with injected dependencies.
func NewPhotoService(
	photoRepo secondary.PhotoRepository,
	photoStore secondary.PhotoStore,
	logger *slog.Logger,
) *PhotoServiceImpl {
	return &PhotoServiceImpl{
		photoRepo:  photoRepo,
		photoStore: photoStore,
		logger:     logger,
	}
}

// AttachPhoto copies an image into managed storage and links it to an answer.
func (s *PhotoServiceImpl) AttachPhoto(ctx context.Context, req primary.AttachPhotoRequest) (*primary.AttachPhotoResponse, error) {
	exists, err := s.photoRepo.AnswerExists(ctx, req.AnswerID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate answer: %w", err)
	}
	if !exists {
		return nil, fault.NotFoundf("answer %s not found", req.AnswerID)
	}

	storedPath, err := s.photoStore.Import(ctx, req.SourcePath)
	if err != nil {
		return nil, fault.Validationf("cannot import photo: %v", err)
	}

	nextID, err := s.photoRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate photo ID: %w", err)
	}

	record := &secondary.PhotoRecord{
		ID:          nextID,
		AnswerID:    req.AnswerID,
		FilePath:    storedPath,
		Description: req.Description,
	}
	if err := s.photoRepo.Create(ctx, record); err != nil {
		// The row failed, so the imported copy is orphaned
		if rmErr := s.photoStore.Remove(ctx, storedPath); rmErr != nil {
			s.logger.Warn("failed to remove orphaned photo file", "path", storedPath, "error", rmErr)
		}
		return nil, fmt.Errorf("failed to create photo: %w", err)
	}

	created, err := s.photoRepo.GetByID(ctx, nextID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created photo: %w", err)
	}

	return &primary.AttachPhotoResponse{
		PhotoID: created.ID,
		Photo:   s.recordToPhoto(ctx, created),
	}, nil
}

// GetPhoto retrieves a photo by ID.
func (s *PhotoServiceImpl) GetPhoto(ctx context.Context, photoID string) (*primary.Photo, error) {
	record, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return nil, fault.NotFoundf("photo %s not found", photoID)
	}
	return s.recordToPhoto(ctx, record), nil
}

// ListPhotos lists the photos attached to an answer.
func (s *PhotoServiceImpl) ListPhotos(ctx context.Context, answerID string) ([]*primary.Photo, error) {
	exists, err := s.photoRepo.AnswerExists(ctx, answerID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate answer: %w", err)
	}
	if !exists {
		return nil, fault.NotFoundf("answer %s not found", answerID)
	}

	records, err := s.photoRepo.ListByAnswer(ctx, answerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}

	photos := make([]*primary.Photo, len(records))
	for i, r := range records {
		photos[i] = s.recordToPhoto(ctx, r)
	}
	return photos, nil
}

// DetachPhoto removes a photo row and its stored file.
func (s *PhotoServiceImpl) DetachPhoto(ctx context.Context, photoID string) error {
	record, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return fault.NotFoundf("photo %s not found", photoID)
	}

	if err := s.photoRepo.Delete(ctx, photoID); err != nil {
		return err
	}

	if err := s.photoStore.Remove(ctx, record.FilePath); err != nil {
		s.logger.Warn("failed to remove photo file", "path", record.FilePath, "error", err)
	}

	return nil
}

// recordToPhoto maps a photo row and flags files that have gone missing on disk.
func (s *PhotoServiceImpl) recordToPhoto(ctx context.Context, r *secondary.PhotoRecord) *primary.Photo {
	present, err := s.photoStore.Exists(ctx, r.FilePath)
	if err != nil {
		s.logger.Warn("failed to check photo file", "path", r.FilePath, "error", err)
	}

	return &primary.Photo{
		ID:          r.ID,
		AnswerID:    r.AnswerID,
		FilePath:    r.FilePath,
		Description: r.Description,
		Missing:     err == nil && !present,
		CreatedAt:   r.CreatedAt,
	}
}

// Ensure PhotoServiceImpl implements the interface
var _ primary.PhotoService = (*PhotoServiceImpl)(nil)

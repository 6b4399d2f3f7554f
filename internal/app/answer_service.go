package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/caexinspect/internal/core/answer"
	"github.com/example/caexinspect/internal/core/fault"
	"github.com/example/caexinspect/internal/core/inspection"
	"github.com/example/caexinspect/internal/ports/primary"
	"github.com/example/caexinspect/internal/ports/secondary"
)

// AnswerServiceImpl implements the AnswerService interface.
type AnswerServiceImpl struct {
	answerRepo     secondary.AnswerRepository
	inspectionRepo secondary.InspectionRepository
	equipmentRepo  secondary.EquipmentRepository
	catalogRepo    secondary.CatalogRepository
	photoRepo      secondary.PhotoRepository
	photoStore     secondary.PhotoStore
	logger         *slog.Logger
}

// NewAnswerService creates a new AnswerService with injected dependencies.
func NewAnswerService(
	answerRepo secondary.AnswerRepository,
	inspectionRepo secondary.InspectionRepository,
	equipmentRepo secondary.EquipmentRepository,
	catalogRepo secondary.CatalogRepository,
	photoRepo secondary.PhotoRepository,
	photoStore secondary.PhotoStore,
	logger *slog.Logger,
) *AnswerServiceImpl {
	return &AnswerServiceImpl{
		answerRepo:     answerRepo,
		inspectionRepo: inspectionRepo,
		equipmentRepo:  equipmentRepo,
		catalogRepo:    catalogRepo,
		photoRepo:      photoRepo,
		photoStore:     photoStore,
		logger:         logger,
	}
}

// RecordPass records a conforming answer, overwriting any previous answer for
// the same question.
func (s *AnswerServiceImpl) RecordPass(ctx context.Context, req primary.RecordPassRequest) (*primary.RecordAnswerResponse, error) {
	if err := s.validateTarget(ctx, req.InspectionID, req.QuestionID); err != nil {
		return nil, err
	}

	return s.upsert(ctx, &secondary.AnswerRecord{
		InspectionID: req.InspectionID,
		QuestionID:   req.QuestionID,
		Status:       string(answer.StatusPass),
		Comments:     req.Comments,
	})
}

// RecordFail records a non-conforming answer with its finding details,
// overwriting any previous answer for the same question.
func (s *AnswerServiceImpl) RecordFail(ctx context.Context, req primary.RecordFailRequest) (*primary.RecordAnswerResponse, error) {
	if err := s.validateTarget(ctx, req.InspectionID, req.QuestionID); err != nil {
		return nil, err
	}

	guard := answer.CanRecordFail(answer.FailContext{
		Comments:    req.Comments,
		Remediation: answer.RemediationKind(req.Remediation),
		TicketRef:   req.TicketRef,
	})
	if !guard.Allowed {
		return nil, fault.Validationf("%s", guard.Reason)
	}

	return s.upsert(ctx, &secondary.AnswerRecord{
		InspectionID: req.InspectionID,
		QuestionID:   req.QuestionID,
		Status:       string(answer.StatusFail),
		Comments:     req.Comments,
		Remediation:  req.Remediation,
		TicketRef:    req.TicketRef,
	})
}

// validateTarget checks that the inspection exists and is open, and that the
// question exists and applies to the inspected unit's model.
func (s *AnswerServiceImpl) validateTarget(ctx context.Context, inspectionID, questionID string) error {
	record, err := s.inspectionRepo.GetByID(ctx, inspectionID)
	if err != nil {
		return fault.NotFoundf("inspection %s not found", inspectionID)
	}

	if inspection.Status(record.Status) != inspection.StatusOpen {
		return fault.Statef("inspection %s is already closed", inspectionID)
	}

	question, err := s.catalogRepo.GetQuestion(ctx, questionID)
	if err != nil {
		return fault.NotFoundf("question %s not found", questionID)
	}

	unit, err := s.equipmentRepo.GetByID(ctx, record.EquipmentID)
	if err != nil {
		return fmt.Errorf("failed to get inspection equipment: %w", err)
	}

	if question.ModelScope != "TODOS" && question.ModelScope != unit.Model {
		return fault.Validationf("question %s does not apply to model %s", questionID, unit.Model)
	}

	// The category's scope gates the question too, matching the applicable count
	categories, err := s.catalogRepo.CategoriesForModel(ctx, unit.Model)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	for _, c := range categories {
		if c.ID == question.CategoryID {
			return nil
		}
	}
	return fault.Validationf("question %s does not apply to model %s", questionID, unit.Model)
}

func (s *AnswerServiceImpl) upsert(ctx context.Context, record *secondary.AnswerRecord) (*primary.RecordAnswerResponse, error) {
	nextID, err := s.answerRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate answer ID: %w", err)
	}
	record.ID = nextID

	survivingID, err := s.answerRepo.Upsert(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to record answer: %w", err)
	}

	stored, err := s.answerRepo.GetByID(ctx, survivingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recorded answer: %w", err)
	}

	return &primary.RecordAnswerResponse{
		AnswerID: stored.ID,
		Answer:   recordToAnswer(stored),
	}, nil
}

// GetAnswer retrieves an answer by ID.
func (s *AnswerServiceImpl) GetAnswer(ctx context.Context, answerID string) (*primary.Answer, error) {
	record, err := s.answerRepo.GetByID(ctx, answerID)
	if err != nil {
		return nil, fault.NotFoundf("answer %s not found", answerID)
	}
	return recordToAnswer(record), nil
}

// ListAnswers lists an inspection's answers in catalog order.
func (s *AnswerServiceImpl) ListAnswers(ctx context.Context, req primary.ListAnswersRequest) ([]*primary.AnswerDetail, error) {
	if req.Status != "" && !answer.KnownStatus(answer.Status(req.Status)) {
		return nil, fault.Validationf("unknown answer status %q (expected %s or %s)",
			req.Status, answer.StatusPass, answer.StatusFail)
	}

	exists, err := s.answerRepo.InspectionExists(ctx, req.InspectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate inspection: %w", err)
	}
	if !exists {
		return nil, fault.NotFoundf("inspection %s not found", req.InspectionID)
	}

	records, err := s.answerRepo.ListDetailed(ctx, req.InspectionID, req.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}

	details := make([]*primary.AnswerDetail, len(records))
	for i, r := range records {
		details[i] = &primary.AnswerDetail{
			Answer:       recordToAnswer(&r.Answer),
			QuestionText: r.QuestionText,
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
			PhotoCount:   r.PhotoCount,
		}
	}
	return details, nil
}

// DeleteAnswer removes an answer and its photos, reopening the question.
// Stored photo files are removed best effort after the database rows.
func (s *AnswerServiceImpl) DeleteAnswer(ctx context.Context, answerID string) error {
	if _, err := s.answerRepo.GetByID(ctx, answerID); err != nil {
		return fault.NotFoundf("answer %s not found", answerID)
	}

	photos, err := s.photoRepo.ListByAnswer(ctx, answerID)
	if err != nil {
		return fmt.Errorf("failed to list photos: %w", err)
	}

	if err := s.answerRepo.Delete(ctx, answerID); err != nil {
		return err
	}

	for _, p := range photos {
		if err := s.photoStore.Remove(ctx, p.FilePath); err != nil {
			s.logger.Warn("failed to remove photo file", "path", p.FilePath, "error", err)
		}
	}

	return nil
}

func recordToAnswer(r *secondary.AnswerRecord) *primary.Answer {
	return &primary.Answer{
		ID:           r.ID,
		InspectionID: r.InspectionID,
		QuestionID:   r.QuestionID,
		Status:       r.Status,
		Comments:     r.Comments,
		Remediation:  r.Remediation,
		TicketRef:    r.TicketRef,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Ensure AnswerServiceImpl implements the interface
var _ primary.AnswerService = (*AnswerServiceImpl)(nil)

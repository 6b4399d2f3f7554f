package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/caexinspect/internal/core/fault"
	"github.com/example/caexinspect/internal/core/inspection"
	"github.com/example/caexinspect/internal/ports/primary"
	"github.com/example/caexinspect/internal/ports/secondary"
)

// InspectionServiceImpl implements the InspectionService interface.
type InspectionServiceImpl struct {
	inspectionRepo secondary.InspectionRepository
	equipmentRepo  secondary.EquipmentRepository
	catalogRepo    secondary.CatalogRepository
	answerRepo     secondary.AnswerRepository
	photoRepo      secondary.PhotoRepository
	photoStore     secondary.PhotoStore
	logger         *slog.Logger
	now            func() time.Time
}

// NewInspectionService creates a new InspectionService with injected dependencies.
func NewInspectionService(
	inspectionRepo secondary.InspectionRepository,
	equipmentRepo secondary.EquipmentRepository,
	catalogRepo secondary.CatalogRepository,
	answerRepo secondary.AnswerRepository,
	photoRepo secondary.PhotoRepository,
	photoStore secondary.PhotoStore,
	logger *slog.Logger,
) *InspectionServiceImpl {
	return &InspectionServiceImpl{
		inspectionRepo: inspectionRepo,
		equipmentRepo:  equipmentRepo,
		catalogRepo:    catalogRepo,
		answerRepo:     answerRepo,
		photoRepo:      photoRepo,
		photoStore:     photoStore,
		logger:         logger,
		now:            time.Now,
	}
}

// CreateIntake opens a workshop intake inspection for a unit.
func (s *InspectionServiceImpl) CreateIntake(ctx context.Context, req primary.CreateIntakeRequest) (*primary.CreateInspectionResponse, error) {
	if req.Inspector == "" {
		return nil, fault.Validationf("inspector name is required")
	}
	if req.Supervisor == "" {
		return nil, fault.Validationf("supervisor name is required")
	}

	exists, err := s.inspectionRepo.EquipmentExists(ctx, req.EquipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate equipment: %w", err)
	}
	if !exists {
		return nil, fault.NotFoundf("equipment %s not found", req.EquipmentID)
	}

	return s.create(ctx, &secondary.InspectionRecord{
		EquipmentID: req.EquipmentID,
		Kind:        string(inspection.KindIntake),
		Status:      string(inspection.InitialStatus()),
		Inspector:   req.Inspector,
		Supervisor:  req.Supervisor,
	})
}

// CreateRelease opens a workshop release inspection linked to a prior intake.
func (s *InspectionServiceImpl) CreateRelease(ctx context.Context, req primary.CreateReleaseRequest) (*primary.CreateInspectionResponse, error) {
	if req.Inspector == "" {
		return nil, fault.Validationf("inspector name is required")
	}
	if req.Supervisor == "" {
		return nil, fault.Validationf("supervisor name is required")
	}

	guardCtx := inspection.CreateReleaseContext{PriorID: req.IntakeID}
	prior, err := s.inspectionRepo.GetByID(ctx, req.IntakeID)
	if err == nil {
		guardCtx.PriorExists = true
		guardCtx.PriorKind = inspection.Kind(prior.Kind)
	}

	guard := inspection.CanCreateRelease(guardCtx)
	if !guard.Allowed {
		if !guardCtx.PriorExists {
			return nil, fault.NotFoundf("%s", guard.Reason)
		}
		return nil, fault.Validationf("%s", guard.Reason)
	}

	return s.create(ctx, &secondary.InspectionRecord{
		EquipmentID: prior.EquipmentID,
		Kind:        string(inspection.KindRelease),
		Status:      string(inspection.InitialStatus()),
		Inspector:   req.Inspector,
		Supervisor:  req.Supervisor,
		IntakeID:    prior.ID,
	})
}

func (s *InspectionServiceImpl) create(ctx context.Context, record *secondary.InspectionRecord) (*primary.CreateInspectionResponse, error) {
	nextID, err := s.inspectionRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate inspection ID: %w", err)
	}
	record.ID = nextID

	if err := s.inspectionRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create inspection: %w", err)
	}

	created, err := s.GetInspection(ctx, nextID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created inspection: %w", err)
	}

	return &primary.CreateInspectionResponse{
		InspectionID: nextID,
		Inspection:   created,
	}, nil
}

// GetInspection retrieves an inspection by ID.
func (s *InspectionServiceImpl) GetInspection(ctx context.Context, inspectionID string) (*primary.Inspection, error) {
	record, err := s.inspectionRepo.GetByID(ctx, inspectionID)
	if err != nil {
		return nil, fault.NotFoundf("inspection %s not found", inspectionID)
	}

	unit, err := s.equipmentRepo.GetByID(ctx, record.EquipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inspection equipment: %w", err)
	}

	result := recordToInspection(record)
	result.EquipmentNumber = unit.Number
	result.EquipmentModel = unit.Model
	return result, nil
}

// ListInspections lists inspections with optional filters, newest first.
func (s *InspectionServiceImpl) ListInspections(ctx context.Context, filters primary.InspectionFilters) ([]*primary.Inspection, error) {
	records, err := s.inspectionRepo.ListWithEquipment(ctx, secondary.InspectionFilters{
		Status:      filters.Status,
		Kind:        filters.Kind,
		EquipmentID: filters.EquipmentID,
		Model:       filters.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}

	inspections := make([]*primary.Inspection, len(records))
	for i, r := range records {
		result := recordToInspection(&r.Inspection)
		result.EquipmentNumber = r.EquipmentNumber
		result.EquipmentModel = r.EquipmentModel
		inspections[i] = result
	}
	return inspections, nil
}

// GetProgress reports how far along an inspection is.
func (s *InspectionServiceImpl) GetProgress(ctx context.Context, inspectionID string) (*primary.InspectionProgress, error) {
	record, err := s.inspectionRepo.GetByID(ctx, inspectionID)
	if err != nil {
		return nil, fault.NotFoundf("inspection %s not found", inspectionID)
	}

	unit, err := s.equipmentRepo.GetByID(ctx, record.EquipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inspection equipment: %w", err)
	}

	applicable, err := s.catalogRepo.CountQuestionsForModel(ctx, unit.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to count applicable questions: %w", err)
	}

	answered, err := s.answerRepo.CountByInspection(ctx, inspectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count answers: %w", err)
	}

	passes, err := s.answerRepo.CountByInspectionAndStatus(ctx, inspectionID, "CONFORME")
	if err != nil {
		return nil, fmt.Errorf("failed to count passes: %w", err)
	}

	fails, err := s.answerRepo.CountByInspectionAndStatus(ctx, inspectionID, "NO_CONFORME")
	if err != nil {
		return nil, fmt.Errorf("failed to count fails: %w", err)
	}

	pending, err := s.pendingQuestions(ctx, inspectionID, unit.Model)
	if err != nil {
		return nil, err
	}

	return &primary.InspectionProgress{
		InspectionID:     inspectionID,
		Answered:         answered,
		Applicable:       applicable,
		PassCount:        passes,
		FailCount:        fails,
		PendingQuestions: pending,
	}, nil
}

// pendingQuestions returns the applicable question IDs without an answer,
// in catalog order.
func (s *InspectionServiceImpl) pendingQuestions(ctx context.Context, inspectionID, model string) ([]string, error) {
	answers, err := s.answerRepo.ListByInspection(ctx, inspectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}
	answered := make(map[string]bool, len(answers))
	for _, a := range answers {
		answered[a.QuestionID] = true
	}

	categories, err := s.catalogRepo.CategoriesForModel(ctx, model)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	var pending []string
	for _, c := range categories {
		questions, err := s.catalogRepo.QuestionsForCategory(ctx, c.ID, model)
		if err != nil {
			return nil, fmt.Errorf("failed to list questions: %w", err)
		}
		for _, q := range questions {
			if !answered[q.ID] {
				pending = append(pending, q.ID)
			}
		}
	}
	return pending, nil
}

// CloseInspection attempts to close an inspection. An incomplete checklist is
// not an error: the response reports Closed=false with the pending questions.
func (s *InspectionServiceImpl) CloseInspection(ctx context.Context, req primary.CloseInspectionRequest) (*primary.CloseInspectionResponse, error) {
	record, err := s.inspectionRepo.GetByID(ctx, req.InspectionID)
	if err != nil {
		return nil, fault.NotFoundf("inspection %s not found", req.InspectionID)
	}

	guard := inspection.CanClose(inspection.CloseContext{
		InspectionID: record.ID,
		Status:       inspection.Status(record.Status),
	})
	if !guard.Allowed {
		return nil, fault.Statef("%s", guard.Reason)
	}

	unit, err := s.equipmentRepo.GetByID(ctx, record.EquipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inspection equipment: %w", err)
	}

	applicable, err := s.catalogRepo.CountQuestionsForModel(ctx, unit.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to count applicable questions: %w", err)
	}

	answered, err := s.answerRepo.CountByInspection(ctx, req.InspectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count answers: %w", err)
	}

	decision := inspection.DecideClose(answered, applicable, s.now())
	if !decision.Complete {
		pending, err := s.pendingQuestions(ctx, req.InspectionID, unit.Model)
		if err != nil {
			return nil, err
		}
		return &primary.CloseInspectionResponse{
			Closed:     false,
			Answered:   answered,
			Applicable: applicable,
			Pending:    pending,
		}, nil
	}

	// Stored fail answers may have been written without their remediation
	// details; they block closure the same way unanswered questions do.
	incomplete, err := s.answerRepo.ListIncompleteFails(ctx, req.InspectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate fail answers: %w", err)
	}
	if len(incomplete) > 0 {
		return &primary.CloseInspectionResponse{
			Closed:     false,
			Answered:   answered,
			Applicable: applicable,
			Pending:    incomplete,
		}, nil
	}

	closedAt := decision.ClosedAt.Format(time.RFC3339)
	if err := s.inspectionRepo.Close(ctx, req.InspectionID, closedAt, req.Remarks); err != nil {
		return nil, fmt.Errorf("failed to close inspection: %w", err)
	}

	return &primary.CloseInspectionResponse{
		Closed:     true,
		ClosedAt:   closedAt,
		Answered:   answered,
		Applicable: applicable,
	}, nil
}

// DeleteInspection removes an inspection, its answers and its photos.
// Stored photo files are removed best effort after the database rows.
func (s *InspectionServiceImpl) DeleteInspection(ctx context.Context, inspectionID string) error {
	if _, err := s.inspectionRepo.GetByID(ctx, inspectionID); err != nil {
		return fault.NotFoundf("inspection %s not found", inspectionID)
	}

	photos, err := s.photoRepo.ListByInspection(ctx, inspectionID)
	if err != nil {
		return fmt.Errorf("failed to list photos: %w", err)
	}

	if err := s.inspectionRepo.Delete(ctx, inspectionID); err != nil {
		return err
	}

	for _, p := range photos {
		if err := s.photoStore.Remove(ctx, p.FilePath); err != nil {
			s.logger.Warn("failed to remove photo file", "path", p.FilePath, "error", err)
		}
	}

	return nil
}

func recordToInspection(r *secondary.InspectionRecord) *primary.Inspection {
	return &primary.Inspection{
		ID:          r.ID,
		EquipmentID: r.EquipmentID,
		Kind:        r.Kind,
		Status:      r.Status,
		Inspector:   r.Inspector,
		Supervisor:  r.Supervisor,
		IntakeID:    r.IntakeID,
		Remarks:     r.Remarks,
		CreatedAt:   r.CreatedAt,
		ClosedAt:    r.ClosedAt,
	}
}

// Ensure InspectionServiceImpl implements the interface
var _ primary.InspectionService = (*InspectionServiceImpl)(nil)

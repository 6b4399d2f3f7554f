package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/caexinspect/internal/core/fault"
	"github.com/example/caexinspect/internal/ports/primary"
	"github.com/example/caexinspect/internal/ports/secondary"
)

// ReportServiceImpl implements the ReportService interface.
type ReportServiceImpl struct {
	equipmentRepo  secondary.EquipmentRepository
	inspectionRepo secondary.InspectionRepository
	answerRepo     secondary.AnswerRepository
	catalogRepo    secondary.CatalogRepository
	renderer       secondary.ReportRenderer
	now            func() time.Time
}

// NewReportService creates a new ReportService with injected dependencies.
func NewReportService(
	equipmentRepo secondary.EquipmentRepository,
	inspectionRepo secondary.InspectionRepository,
	answerRepo secondary.AnswerRepository,
	catalogRepo secondary.CatalogRepository,
	renderer secondary.ReportRenderer,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		equipmentRepo:  equipmentRepo,
		inspectionRepo: inspectionRepo,
		answerRepo:     answerRepo,
		catalogRepo:    catalogRepo,
		renderer:       renderer,
		now:            time.Now,
	}
}

// GenerateHistory renders the inspection history of one unit to PDF.
func (s *ReportServiceImpl) GenerateHistory(ctx context.Context, req primary.GenerateHistoryRequest) (*primary.GenerateReportResponse, error) {
	if req.OutputPath == "" {
		return nil, fault.Validationf("output path is required")
	}

	unit, err := s.equipmentRepo.GetByID(ctx, req.EquipmentID)
	if err != nil {
		return nil, fault.NotFoundf("equipment %s not found", req.EquipmentID)
	}

	inspections, err := s.inspectionRepo.List(ctx, secondary.InspectionFilters{EquipmentID: req.EquipmentID})
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}

	doc := &secondary.HistoryDocument{
		EquipmentNumber: unit.Number,
		EquipmentModel:  unit.Model,
		GeneratedAt:     s.now().Format("2006-01-02 15:04"),
		TotalCount:      len(inspections),
	}
	for _, insp := range inspections {
		if insp.Status == "ABIERTA" {
			doc.OpenCount++
		} else {
			doc.ClosedCount++
		}
		doc.Rows = append(doc.Rows, secondary.HistoryRow{
			InspectionID: insp.ID,
			Kind:         insp.Kind,
			Status:       insp.Status,
			Inspector:    insp.Inspector,
			CreatedAt:    insp.CreatedAt,
			ClosedAt:     insp.ClosedAt,
		})
	}

	if err := s.renderer.RenderHistory(doc, req.OutputPath); err != nil {
		return nil, fmt.Errorf("failed to render history report: %w", err)
	}

	return &primary.GenerateReportResponse{OutputPath: req.OutputPath}, nil
}

// GenerateFindings renders one inspection's non-conforming findings to PDF.
func (s *ReportServiceImpl) GenerateFindings(ctx context.Context, req primary.GenerateFindingsRequest) (*primary.GenerateReportResponse, error) {
	if req.OutputPath == "" {
		return nil, fault.Validationf("output path is required")
	}

	record, err := s.inspectionRepo.GetByID(ctx, req.InspectionID)
	if err != nil {
		return nil, fault.NotFoundf("inspection %s not found", req.InspectionID)
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

	fails, err := s.answerRepo.ListDetailed(ctx, req.InspectionID, "NO_CONFORME")
	if err != nil {
		return nil, fmt.Errorf("failed to list findings: %w", err)
	}

	doc := &secondary.FindingsDocument{
		InspectionID:    record.ID,
		Kind:            record.Kind,
		Status:          record.Status,
		Inspector:       record.Inspector,
		Supervisor:      record.Supervisor,
		EquipmentNumber: unit.Number,
		EquipmentModel:  unit.Model,
		CreatedAt:       record.CreatedAt,
		ClosedAt:        record.ClosedAt,
		Remarks:         record.Remarks,
		GeneratedAt:     s.now().Format("2006-01-02 15:04"),
		AnsweredCount:   answered,
		ApplicableCount: applicable,
		FailCount:       len(fails),
		Sections:        groupFindings(fails),
	}

	if err := s.renderer.RenderFindings(doc, req.OutputPath); err != nil {
		return nil, fmt.Errorf("failed to render findings report: %w", err)
	}

	return &primary.GenerateReportResponse{OutputPath: req.OutputPath}, nil
}

// groupFindings folds fail answers into per-category sections, preserving
// catalog order.
func groupFindings(fails []*secondary.AnswerDetail) []secondary.FindingsSection {
	var sections []secondary.FindingsSection
	for _, f := range fails {
		finding := secondary.Finding{
			QuestionText: f.QuestionText,
			Comments:     f.Answer.Comments,
			Remediation:  f.Answer.Remediation,
			TicketRef:    f.Answer.TicketRef,
			PhotoCount:   f.PhotoCount,
		}

		if len(sections) > 0 && sections[len(sections)-1].CategoryName == f.CategoryName {
			last := &sections[len(sections)-1]
			last.Findings = append(last.Findings, finding)
			continue
		}

		sections = append(sections, secondary.FindingsSection{
			CategoryName: f.CategoryName,
			Findings:     []secondary.Finding{finding},
		})
	}
	return sections
}

// Ensure ReportServiceImpl implements the interface
var _ primary.ReportService = (*ReportServiceImpl)(nil)

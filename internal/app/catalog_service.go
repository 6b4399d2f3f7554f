package app

import (
	"context"
	"fmt"

	"github.com/example/caexinspect/internal/core/equipment"
	"github.com/example/caexinspect/internal/core/fault"
	"github.com/example/caexinspect/internal/ports/primary"
	"github.com/example/caexinspect/internal/ports/secondary"
)

// CatalogServiceImpl implements the CatalogService interface.
type CatalogServiceImpl struct {
	catalogRepo secondary.CatalogRepository
}

// NewCatalogService creates a new CatalogService with injected dependencies.
func NewCatalogService(catalogRepo secondary.CatalogRepository) *CatalogServiceImpl {
	return &CatalogServiceImpl{catalogRepo: catalogRepo}
}

// ListCategories lists the categories applicable to a model.
func (s *CatalogServiceImpl) ListCategories(ctx context.Context, model string) ([]*primary.Category, error) {
	if !equipment.KnownModel(equipment.Model(model)) {
		return nil, fault.Validationf("unknown model %q (expected 797F or 798AC)", model)
	}

	records, err := s.catalogRepo.CategoriesForModel(ctx, model)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*primary.Category, len(records))
	for i, r := range records {
		categories[i] = &primary.Category{
			ID:         r.ID,
			Name:       r.Name,
			Order:      r.Order,
			ModelScope: r.ModelScope,
		}
	}
	return categories, nil
}

// ListQuestions lists one category's questions applicable to a model.
func (s *CatalogServiceImpl) ListQuestions(ctx context.Context, req primary.ListQuestionsRequest) ([]*primary.Question, error) {
	if !equipment.KnownModel(equipment.Model(req.Model)) {
		return nil, fault.Validationf("unknown model %q (expected 797F or 798AC)", req.Model)
	}

	records, err := s.catalogRepo.QuestionsForCategory(ctx, req.CategoryID, req.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	questions := make([]*primary.Question, len(records))
	for i, r := range records {
		questions[i] = recordToCatalogQuestion(r)
	}
	return questions, nil
}

// GetQuestion retrieves a question by ID.
func (s *CatalogServiceImpl) GetQuestion(ctx context.Context, questionID string) (*primary.Question, error) {
	record, err := s.catalogRepo.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	return recordToCatalogQuestion(record), nil
}

// CountQuestions returns the total applicable question count for a model.
func (s *CatalogServiceImpl) CountQuestions(ctx context.Context, model string) (int, error) {
	if !equipment.KnownModel(equipment.Model(model)) {
		return 0, fault.Validationf("unknown model %q (expected 797F or 798AC)", model)
	}
	return s.catalogRepo.CountQuestionsForModel(ctx, model)
}

func recordToCatalogQuestion(r *secondary.QuestionRecord) *primary.Question {
	return &primary.Question{
		ID:         r.ID,
		CategoryID: r.CategoryID,
		Text:       r.Text,
		Order:      r.Order,
		ModelScope: r.ModelScope,
	}
}

// Ensure CatalogServiceImpl implements the interface
var _ primary.CatalogService = (*CatalogServiceImpl)(nil)

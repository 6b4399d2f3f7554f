package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/caexinspect/internal/ports/secondary"
)

// CatalogRepository implements secondary.CatalogRepository with SQLite.
// The catalog is read-only reference data seeded at first startup.
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new SQLite catalog repository.
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// CategoriesForModel retrieves categories applicable to a model in display order.
func (r *CatalogRepository) CategoriesForModel(ctx context.Context, model string) ([]*secondary.CategoryRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, display_order, model_scope FROM categories
		WHERE model_scope IN ('TODOS', ?)
		ORDER BY display_order`,
		model,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var records []*secondary.CategoryRecord
	for rows.Next() {
		record := &secondary.CategoryRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.Order, &record.ModelScope); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}

// QuestionsForCategory retrieves a category's questions applicable to a model
// in display order.
func (r *CatalogRepository) QuestionsForCategory(ctx context.Context, categoryID, model string) ([]*secondary.QuestionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, category_id, text, display_order, model_scope FROM questions
		WHERE category_id = ? AND model_scope IN ('TODOS', ?)
		ORDER BY display_order`,
		categoryID, model,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	var records []*secondary.QuestionRecord
	for rows.Next() {
		record := &secondary.QuestionRecord{}
		if err := rows.Scan(&record.ID, &record.CategoryID, &record.Text, &record.Order, &record.ModelScope); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}

// CountQuestionsForModel returns the total applicable question count for a model.
// Both the question and its category must be in scope.
func (r *CatalogRepository) CountQuestionsForModel(ctx context.Context, model string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM questions q
		JOIN categories c ON q.category_id = c.id
		WHERE q.model_scope IN ('TODOS', ?) AND c.model_scope IN ('TODOS', ?)`,
		model, model,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

// GetQuestion retrieves a question by its ID.
func (r *CatalogRepository) GetQuestion(ctx context.Context, id string) (*secondary.QuestionRecord, error) {
	record := &secondary.QuestionRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, category_id, text, display_order, model_scope FROM questions WHERE id = ?",
		id,
	).Scan(&record.ID, &record.CategoryID, &record.Text, &record.Order, &record.ModelScope)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("question %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	return record, nil
}

// QuestionExists checks if a question exists.
func (r *CatalogRepository) QuestionExists(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM questions WHERE id = ?", id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check question existence: %w", err)
	}
	return count > 0, nil
}

// Ensure CatalogRepository implements the interface
var _ secondary.CatalogRepository = (*CatalogRepository)(nil)

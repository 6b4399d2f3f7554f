package primary

import "context"

// CatalogService defines the primary port for browsing the question catalog.
type CatalogService interface {
	// ListCategories lists the categories applicable to a model, in display order.
	ListCategories(ctx context.Context, model string) ([]*Category, error)

	// ListQuestions lists one category's questions applicable to a model,
	// in display order.
	ListQuestions(ctx context.Context, req ListQuestionsRequest) ([]*Question, error)

	// GetQuestion retrieves a question by ID.
	GetQuestion(ctx context.Context, questionID string) (*Question, error)

	// CountQuestions returns the total applicable question count for a model.
	CountQuestions(ctx context.Context, model string) (int, error)
}

// Category represents a question category at the port boundary.
type Category struct {
	ID         string
	Name       string
	Order      int
	ModelScope string
}

// ListQuestionsRequest contains parameters for listing questions.
type ListQuestionsRequest struct {
	CategoryID string
	Model      string
}

// Question represents a checklist question at the port boundary.
type Question struct {
	ID         string
	CategoryID string
	Text       string
	Order      int
	ModelScope string
}

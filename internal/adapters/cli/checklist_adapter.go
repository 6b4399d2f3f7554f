package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/caexinspect/internal/ports/primary"
)

// ChecklistAdapter is a thin adapter that translates CLI operations to
// CatalogService calls.
type ChecklistAdapter struct {
	service primary.CatalogService
	out     io.Writer
}

// NewChecklistAdapter creates a new ChecklistAdapter with the given service.
func NewChecklistAdapter(service primary.CatalogService, out io.Writer) *ChecklistAdapter {
	return &ChecklistAdapter{
		service: service,
		out:     out,
	}
}

// Categories lists the checklist categories applicable to a model.
func (a *ChecklistAdapter) Categories(ctx context.Context, model string) error {
	categories, err := a.service.ListCategories(ctx, model)
	if err != nil {
		return err
	}

	count, err := a.service.CountQuestions(ctx, model)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nChecklist for model %s (%d questions)\n\n", model, count)
	for _, c := range categories {
		fmt.Fprintf(a.out, "%-9s %s\n", c.ID, c.Name)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Questions lists one category's questions applicable to a model.
func (a *ChecklistAdapter) Questions(ctx context.Context, categoryID, model string) error {
	questions, err := a.service.ListQuestions(ctx, primary.ListQuestionsRequest{
		CategoryID: categoryID,
		Model:      model,
	})
	if err != nil {
		return err
	}

	if len(questions) == 0 {
		fmt.Fprintln(a.out, "No questions in this category for the given model")
		return nil
	}

	fmt.Fprintln(a.out)
	for _, q := range questions {
		fmt.Fprintf(a.out, "%-7s %s\n", q.ID, q.Text)
	}
	fmt.Fprintln(a.out)

	return nil
}

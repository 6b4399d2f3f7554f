package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/caexinspect/internal/ports/primary"
)

// AnswerAdapter is a thin adapter that translates CLI operations to
// AnswerService calls.
type AnswerAdapter struct {
	service primary.AnswerService
	out     io.Writer
}

// NewAnswerAdapter creates a new AnswerAdapter with the given service.
func NewAnswerAdapter(service primary.AnswerService, out io.Writer) *AnswerAdapter {
	return &AnswerAdapter{
		service: service,
		out:     out,
	}
}

// Pass records a conforming answer.
func (a *AnswerAdapter) Pass(ctx context.Context, inspectionID, questionID, comments string) error {
	resp, err := a.service.RecordPass(ctx, primary.RecordPassRequest{
		InspectionID: inspectionID,
		QuestionID:   questionID,
		Comments:     comments,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Recorded %s as CONFORME (%s)\n", questionID, resp.AnswerID)
	return nil
}

// Fail records a non-conforming answer with its finding details.
func (a *AnswerAdapter) Fail(ctx context.Context, inspectionID, questionID, comments, remediation, ticketRef string) error {
	resp, err := a.service.RecordFail(ctx, primary.RecordFailRequest{
		InspectionID: inspectionID,
		QuestionID:   questionID,
		Comments:     comments,
		Remediation:  remediation,
		TicketRef:    ticketRef,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Recorded %s as NO_CONFORME (%s, ticket %s)\n",
		questionID, resp.AnswerID, resp.Answer.TicketRef)
	return nil
}

// List lists an inspection's answers grouped by category, in checklist order.
func (a *AnswerAdapter) List(ctx context.Context, inspectionID, status string) error {
	answers, err := a.service.ListAnswers(ctx, primary.ListAnswersRequest{
		InspectionID: inspectionID,
		Status:       status,
	})
	if err != nil {
		return err
	}

	if len(answers) == 0 {
		fmt.Fprintln(a.out, "No answers recorded")
		return nil
	}

	fmt.Fprintln(a.out)
	lastCategory := ""
	for _, d := range answers {
		if d.CategoryName != lastCategory {
			fmt.Fprintf(a.out, "%s\n", d.CategoryName)
			lastCategory = d.CategoryName
		}
		fmt.Fprintf(a.out, "  %-9s %-8s %s  %s\n",
			d.Answer.ID, d.Answer.QuestionID, statusMark(d.Answer.Status), d.QuestionText)
		if d.Answer.Status == "NO_CONFORME" {
			fmt.Fprintf(a.out, "            → %s [%s, ticket %s]\n",
				d.Answer.Comments, d.Answer.Remediation, d.Answer.TicketRef)
		}
		if d.PhotoCount > 0 {
			fmt.Fprintf(a.out, "            %d photo(s) attached\n", d.PhotoCount)
		}
	}
	fmt.Fprintln(a.out)

	return nil
}

// Delete removes an answer, reopening its question.
func (a *AnswerAdapter) Delete(ctx context.Context, answerID string) error {
	answer, err := a.service.GetAnswer(ctx, answerID)
	if err != nil {
		return err
	}

	if err := a.service.DeleteAnswer(ctx, answerID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Deleted answer %s (question %s reopened)\n", answer.ID, answer.QuestionID)
	return nil
}

func statusMark(status string) string {
	if status == "NO_CONFORME" {
		return color.New(color.FgRed).Sprint("NO_CONFORME")
	}
	return color.New(color.FgHiGreen).Sprint("CONFORME")
}

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/caexinspect/internal/ports/secondary"
)

// AnswerRepository implements secondary.AnswerRepository with SQLite.
type AnswerRepository struct {
	db *sql.DB
}

// NewAnswerRepository creates a new SQLite answer repository.
func NewAnswerRepository(db *sql.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

// Upsert inserts the record or overwrites the existing answer for the same
// (inspection, question) pair. Returns the ID of the surviving row.
func (r *AnswerRepository) Upsert(ctx context.Context, record *secondary.AnswerRecord) (string, error) {
	var existingID string
	err := r.db.QueryRowContext(ctx,
		"SELECT id FROM answers WHERE inspection_id = ? AND question_id = ?",
		record.InspectionID, record.QuestionID,
	).Scan(&existingID)

	if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("failed to look up answer: %w", err)
	}

	comments := nullable(record.Comments)
	remediation := nullable(record.Remediation)
	ticketRef := nullable(record.TicketRef)

	if err == sql.ErrNoRows {
		_, err := r.db.ExecContext(ctx,
			"INSERT INTO answers (id, inspection_id, question_id, status, comments, remediation, ticket_ref) VALUES (?, ?, ?, ?, ?, ?, ?)",
			record.ID, record.InspectionID, record.QuestionID, record.Status, comments, remediation, ticketRef,
		)
		if err != nil {
			return "", fmt.Errorf("failed to create answer: %w", err)
		}
		return record.ID, nil
	}

	_, err = r.db.ExecContext(ctx,
		"UPDATE answers SET status = ?, comments = ?, remediation = ?, ticket_ref = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		record.Status, comments, remediation, ticketRef, existingID,
	)
	if err != nil {
		return "", fmt.Errorf("failed to update answer: %w", err)
	}

	return existingID, nil
}

// GetByID retrieves an answer by its ID.
func (r *AnswerRepository) GetByID(ctx context.Context, id string) (*secondary.AnswerRecord, error) {
	var (
		comments    sql.NullString
		remediation sql.NullString
		ticketRef   sql.NullString
		createdAt   time.Time
		updatedAt   time.Time
	)

	record := &secondary.AnswerRecord{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, inspection_id, question_id, status, comments, remediation, ticket_ref, created_at, updated_at
		FROM answers WHERE id = ?`,
		id,
	).Scan(&record.ID, &record.InspectionID, &record.QuestionID, &record.Status,
		&comments, &remediation, &ticketRef, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("answer %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get answer: %w", err)
	}

	record.Comments = comments.String
	record.Remediation = remediation.String
	record.TicketRef = ticketRef.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// GetByInspectionAndQuestion retrieves the answer for a pair.
// Returns (nil, nil) when the question is unanswered.
func (r *AnswerRepository) GetByInspectionAndQuestion(ctx context.Context, inspectionID, questionID string) (*secondary.AnswerRecord, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		"SELECT id FROM answers WHERE inspection_id = ? AND question_id = ?",
		inspectionID, questionID,
	).Scan(&id)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up answer: %w", err)
	}

	return r.GetByID(ctx, id)
}

// ListByInspection retrieves all answers of an inspection.
func (r *AnswerRepository) ListByInspection(ctx context.Context, inspectionID string) ([]*secondary.AnswerRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, inspection_id, question_id, status, comments, remediation, ticket_ref, created_at, updated_at
		FROM answers WHERE inspection_id = ?`,
		inspectionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}
	defer rows.Close()

	var records []*secondary.AnswerRecord
	for rows.Next() {
		var (
			comments    sql.NullString
			remediation sql.NullString
			ticketRef   sql.NullString
			createdAt   time.Time
			updatedAt   time.Time
		)

		record := &secondary.AnswerRecord{}
		err := rows.Scan(&record.ID, &record.InspectionID, &record.QuestionID, &record.Status,
			&comments, &remediation, &ticketRef, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}

		record.Comments = comments.String
		record.Remediation = remediation.String
		record.TicketRef = ticketRef.String
		record.CreatedAt = createdAt.Format(time.RFC3339)
		record.UpdatedAt = updatedAt.Format(time.RFC3339)

		records = append(records, record)
	}

	return records, nil
}

// ListDetailed retrieves answers joined with question and category, in catalog
// order, each carrying its photo count. Status narrows the result when non-empty.
func (r *AnswerRepository) ListDetailed(ctx context.Context, inspectionID, status string) ([]*secondary.AnswerDetail, error) {
	query := `SELECT a.id, a.inspection_id, a.question_id, a.status, a.comments, a.remediation, a.ticket_ref,
			a.created_at, a.updated_at,
			q.text, q.display_order,
			c.id, c.name, c.display_order,
			(SELECT COUNT(*) FROM photos p WHERE p.answer_id = a.id)
		FROM answers a
		JOIN questions q ON a.question_id = q.id
		JOIN categories c ON q.category_id = c.id
		WHERE a.inspection_id = ?`
	args := []any{inspectionID}

	if status != "" {
		query += " AND a.status = ?"
		args = append(args, status)
	}

	query += " ORDER BY c.display_order, q.display_order"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list answer details: %w", err)
	}
	defer rows.Close()

	var details []*secondary.AnswerDetail
	for rows.Next() {
		var (
			comments    sql.NullString
			remediation sql.NullString
			ticketRef   sql.NullString
			createdAt   time.Time
			updatedAt   time.Time
		)

		detail := &secondary.AnswerDetail{}
		err := rows.Scan(&detail.Answer.ID, &detail.Answer.InspectionID, &detail.Answer.QuestionID, &detail.Answer.Status,
			&comments, &remediation, &ticketRef, &createdAt, &updatedAt,
			&detail.QuestionText, &detail.QuestionOrder,
			&detail.CategoryID, &detail.CategoryName, &detail.CategoryOrder,
			&detail.PhotoCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan answer detail: %w", err)
		}

		detail.Answer.Comments = comments.String
		detail.Answer.Remediation = remediation.String
		detail.Answer.TicketRef = ticketRef.String
		detail.Answer.CreatedAt = createdAt.Format(time.RFC3339)
		detail.Answer.UpdatedAt = updatedAt.Format(time.RFC3339)

		details = append(details, detail)
	}

	return details, nil
}

// CountByInspection returns the number of answers for an inspection.
func (r *AnswerRepository) CountByInspection(ctx context.Context, inspectionID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM answers WHERE inspection_id = ?", inspectionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count answers: %w", err)
	}
	return count, nil
}

// CountByInspectionAndStatus returns the number of answers with one status.
func (r *AnswerRepository) CountByInspectionAndStatus(ctx context.Context, inspectionID, status string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM answers WHERE inspection_id = ? AND status = ?",
		inspectionID, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count answers: %w", err)
	}
	return count, nil
}

// ListIncompleteFails returns the question IDs of stored fail answers missing
// comments, remediation kind, or a ticket reference.
func (r *AnswerRepository) ListIncompleteFails(ctx context.Context, inspectionID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT question_id FROM answers
		WHERE inspection_id = ? AND status = 'NO_CONFORME'
		AND (comments IS NULL OR TRIM(comments) = ''
			OR remediation IS NULL
			OR ticket_ref IS NULL OR TRIM(ticket_ref) = '')`,
		inspectionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomplete fails: %w", err)
	}
	defer rows.Close()

	var questionIDs []string
	for rows.Next() {
		var questionID string
		if err := rows.Scan(&questionID); err != nil {
			return nil, fmt.Errorf("failed to scan question id: %w", err)
		}
		questionIDs = append(questionIDs, questionID)
	}

	return questionIDs, nil
}

// Delete removes an answer.
func (r *AnswerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM answers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete answer: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("answer %s not found", id)
	}

	return nil
}

// GetNextID returns the next available answer ID.
func (r *AnswerRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM answers",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next answer ID: %w", err)
	}

	return fmt.Sprintf("ANS-%03d", maxID+1), nil
}

// InspectionExists checks if an inspection exists.
func (r *AnswerRepository) InspectionExists(ctx context.Context, inspectionID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM inspections WHERE id = ?", inspectionID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check inspection existence: %w", err)
	}
	return count > 0, nil
}

// QuestionExists checks if a question exists.
func (r *AnswerRepository) QuestionExists(ctx context.Context, questionID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM questions WHERE id = ?", questionID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check question existence: %w", err)
	}
	return count > 0, nil
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// Ensure AnswerRepository implements the interface
var _ secondary.AnswerRepository = (*AnswerRepository)(nil)

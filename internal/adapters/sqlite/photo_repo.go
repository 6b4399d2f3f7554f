package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/caexinspect/internal/ports/secondary"
)

// PhotoRepository implements secondary.PhotoRepository with SQLite.
type PhotoRepository struct {
	db *sql.DB
}

// NewPhotoRepository creates a new SQLite photo repository.
func NewPhotoRepository(db *sql.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// Create persists a new photo row.
func (r *PhotoRepository) Create(ctx context.Context, record *secondary.PhotoRecord) error {
	desc := nullable(record.Description)

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO photos (id, answer_id, file_path, description) VALUES (?, ?, ?, ?)",
		record.ID, record.AnswerID, record.FilePath, desc,
	)
	if err != nil {
		return fmt.Errorf("failed to create photo: %w", err)
	}

	return nil
}

// GetByID retrieves a photo by its ID.
func (r *PhotoRepository) GetByID(ctx context.Context, id string) (*secondary.PhotoRecord, error) {
	var (
		desc      sql.NullString
		createdAt time.Time
	)

	record := &secondary.PhotoRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, answer_id, file_path, description, created_at FROM photos WHERE id = ?",
		id,
	).Scan(&record.ID, &record.AnswerID, &record.FilePath, &desc, &createdAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("photo %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}

	record.Description = desc.String
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// ListByAnswer retrieves all photos attached to an answer.
func (r *PhotoRepository) ListByAnswer(ctx context.Context, answerID string) ([]*secondary.PhotoRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, answer_id, file_path, description, created_at FROM photos WHERE answer_id = ? ORDER BY created_at",
		answerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	defer rows.Close()

	return scanPhotos(rows)
}

// ListByInspection retrieves all photos across an inspection's answers.
func (r *PhotoRepository) ListByInspection(ctx context.Context, inspectionID string) ([]*secondary.PhotoRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT p.id, p.answer_id, p.file_path, p.description, p.created_at
		FROM photos p
		JOIN answers a ON p.answer_id = a.id
		WHERE a.inspection_id = ?
		ORDER BY p.created_at`,
		inspectionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	defer rows.Close()

	return scanPhotos(rows)
}

// CountByAnswer returns the number of photos attached to an answer.
func (r *PhotoRepository) CountByAnswer(ctx context.Context, answerID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM photos WHERE answer_id = ?", answerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count photos: %w", err)
	}
	return count, nil
}

// Delete removes a photo row.
func (r *PhotoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM photos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("photo %s not found", id)
	}

	return nil
}

// GetNextID returns the next available photo ID.
func (r *PhotoRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 6) AS INTEGER)), 0) FROM photos",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next photo ID: %w", err)
	}

	return fmt.Sprintf("FOTO-%03d", maxID+1), nil
}

// AnswerExists checks if an answer exists.
func (r *PhotoRepository) AnswerExists(ctx context.Context, answerID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM answers WHERE id = ?", answerID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check answer existence: %w", err)
	}
	return count > 0, nil
}

func scanPhotos(rows *sql.Rows) ([]*secondary.PhotoRecord, error) {
	var records []*secondary.PhotoRecord
	for rows.Next() {
		var (
			desc      sql.NullString
			createdAt time.Time
		)

		record := &secondary.PhotoRecord{}
		if err := rows.Scan(&record.ID, &record.AnswerID, &record.FilePath, &desc, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}

		record.Description = desc.String
		record.CreatedAt = createdAt.Format(time.RFC3339)

		records = append(records, record)
	}

	return records, nil
}

// Ensure PhotoRepository implements the interface
var _ secondary.PhotoRepository = (*PhotoRepository)(nil)

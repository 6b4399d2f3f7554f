// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/caexinspect/internal/ports/secondary"
)

// EquipmentRepository implements secondary.EquipmentRepository with SQLite.
type EquipmentRepository struct {
	db *sql.DB
}

// NewEquipmentRepository creates a new SQLite equipment repository.
func NewEquipmentRepository(db *sql.DB) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

// Create persists a new equipment record.
func (r *EquipmentRepository) Create(ctx context.Context, record *secondary.EquipmentRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO equipment (id, number, model) VALUES (?, ?, ?)",
		record.ID, record.Number, record.Model,
	)
	if err != nil {
		return fmt.Errorf("failed to create equipment: %w", err)
	}

	return nil
}

// GetByID retrieves an equipment record by its ID.
func (r *EquipmentRepository) GetByID(ctx context.Context, id string) (*secondary.EquipmentRecord, error) {
	var createdAt time.Time

	record := &secondary.EquipmentRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, number, model, created_at FROM equipment WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Number, &record.Model, &createdAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("equipment %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// GetByNumber retrieves an equipment record by fleet number.
// Returns (nil, nil) when no record holds the number.
func (r *EquipmentRepository) GetByNumber(ctx context.Context, number int) (*secondary.EquipmentRecord, error) {
	var createdAt time.Time

	record := &secondary.EquipmentRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, number, model, created_at FROM equipment WHERE number = ?",
		number,
	).Scan(&record.ID, &record.Number, &record.Model, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment by number: %w", err)
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// NumberExists checks if a fleet number is already registered.
func (r *EquipmentRepository) NumberExists(ctx context.Context, number int) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM equipment WHERE number = ?", number).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check number existence: %w", err)
	}
	return count > 0, nil
}

// List retrieves equipment matching the given filters.
func (r *EquipmentRepository) List(ctx context.Context, filters secondary.EquipmentFilters) ([]*secondary.EquipmentRecord, error) {
	query := "SELECT id, number, model, created_at FROM equipment WHERE 1=1"
	args := []any{}

	if filters.Model != "" {
		query += " AND model = ?"
		args = append(args, filters.Model)
	}

	query += " ORDER BY number"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	defer rows.Close()

	var records []*secondary.EquipmentRecord
	for rows.Next() {
		var createdAt time.Time

		record := &secondary.EquipmentRecord{}
		if err := rows.Scan(&record.ID, &record.Number, &record.Model, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan equipment: %w", err)
		}

		record.CreatedAt = createdAt.Format(time.RFC3339)
		records = append(records, record)
	}

	return records, nil
}

// Update corrects an equipment record. The record's ID is the current key;
// a new fleet number renames the row ID, which cascades to inspections.
func (r *EquipmentRepository) Update(ctx context.Context, record *secondary.EquipmentRecord) error {
	query := "UPDATE equipment SET model = ?"
	args := []any{record.Model}

	if record.Number != 0 {
		query += ", number = ?, id = ?"
		args = append(args, record.Number, fmt.Sprintf("CAEX-%d", record.Number))
	}

	query += " WHERE id = ?"
	args = append(args, record.ID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update equipment: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("equipment %s not found", record.ID)
	}

	return nil
}

// Delete removes an equipment record and its inspections.
func (r *EquipmentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM equipment WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete equipment: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("equipment %s not found", id)
	}

	return nil
}

// Ensure EquipmentRepository implements the interface
var _ secondary.EquipmentRepository = (*EquipmentRepository)(nil)

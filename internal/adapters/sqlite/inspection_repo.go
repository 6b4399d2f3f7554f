package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/caexinspect/internal/ports/secondary"
)

// InspectionRepository implements secondary.InspectionRepository with SQLite.
type InspectionRepository struct {
	db *sql.DB
}

// NewInspectionRepository creates a new SQLite inspection repository.
func NewInspectionRepository(db *sql.DB) *InspectionRepository {
	return &InspectionRepository{db: db}
}

// Create persists a new inspection.
func (r *InspectionRepository) Create(ctx context.Context, record *secondary.InspectionRecord) error {
	var intakeID sql.NullString
	if record.IntakeID != "" {
		intakeID = sql.NullString{String: record.IntakeID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO inspections (id, equipment_id, kind, status, inspector, supervisor, intake_id) VALUES (?, ?, ?, ?, ?, ?, ?)",
		record.ID, record.EquipmentID, record.Kind, record.Status, record.Inspector, record.Supervisor, intakeID,
	)
	if err != nil {
		return fmt.Errorf("failed to create inspection: %w", err)
	}

	return nil
}

// GetByID retrieves an inspection by its ID.
func (r *InspectionRepository) GetByID(ctx context.Context, id string) (*secondary.InspectionRecord, error) {
	var (
		intakeID  sql.NullString
		remarks   sql.NullString
		createdAt time.Time
		closedAt  sql.NullTime
	)

	record := &secondary.InspectionRecord{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, equipment_id, kind, status, inspector, supervisor, intake_id, remarks, created_at, closed_at
		FROM inspections WHERE id = ?`,
		id,
	).Scan(&record.ID, &record.EquipmentID, &record.Kind, &record.Status, &record.Inspector, &record.Supervisor,
		&intakeID, &remarks, &createdAt, &closedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("inspection %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inspection: %w", err)
	}

	record.IntakeID = intakeID.String
	record.Remarks = remarks.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	if closedAt.Valid {
		record.ClosedAt = closedAt.Time.Format(time.RFC3339)
	}

	return record, nil
}

// List retrieves inspections matching the given filters, newest first.
func (r *InspectionRepository) List(ctx context.Context, filters secondary.InspectionFilters) ([]*secondary.InspectionRecord, error) {
	query := `SELECT i.id, i.equipment_id, i.kind, i.status, i.inspector, i.supervisor, i.intake_id, i.remarks, i.created_at, i.closed_at
		FROM inspections i WHERE 1=1`
	args := []any{}

	if filters.Status != "" {
		query += " AND i.status = ?"
		args = append(args, filters.Status)
	}

	if filters.Kind != "" {
		query += " AND i.kind = ?"
		args = append(args, filters.Kind)
	}

	if filters.EquipmentID != "" {
		query += " AND i.equipment_id = ?"
		args = append(args, filters.EquipmentID)
	}

	if filters.Model != "" {
		query += " AND i.equipment_id IN (SELECT id FROM equipment WHERE model = ?)"
		args = append(args, filters.Model)
	}

	query += " ORDER BY i.created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}
	defer rows.Close()

	var records []*secondary.InspectionRecord
	for rows.Next() {
		record, err := scanInspection(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// ListWithEquipment retrieves inspections joined with their equipment, newest first.
func (r *InspectionRepository) ListWithEquipment(ctx context.Context, filters secondary.InspectionFilters) ([]*secondary.InspectionWithEquipment, error) {
	query := `SELECT i.id, i.equipment_id, i.kind, i.status, i.inspector, i.supervisor, i.intake_id, i.remarks, i.created_at, i.closed_at,
			e.number, e.model
		FROM inspections i
		JOIN equipment e ON i.equipment_id = e.id
		WHERE 1=1`
	args := []any{}

	if filters.Status != "" {
		query += " AND i.status = ?"
		args = append(args, filters.Status)
	}

	if filters.Kind != "" {
		query += " AND i.kind = ?"
		args = append(args, filters.Kind)
	}

	if filters.EquipmentID != "" {
		query += " AND i.equipment_id = ?"
		args = append(args, filters.EquipmentID)
	}

	if filters.Model != "" {
		query += " AND e.model = ?"
		args = append(args, filters.Model)
	}

	query += " ORDER BY i.created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}
	defer rows.Close()

	var records []*secondary.InspectionWithEquipment
	for rows.Next() {
		var (
			intakeID  sql.NullString
			remarks   sql.NullString
			createdAt time.Time
			closedAt  sql.NullTime
		)

		record := &secondary.InspectionWithEquipment{}
		err := rows.Scan(&record.Inspection.ID, &record.Inspection.EquipmentID, &record.Inspection.Kind,
			&record.Inspection.Status, &record.Inspection.Inspector, &record.Inspection.Supervisor,
			&intakeID, &remarks, &createdAt, &closedAt,
			&record.EquipmentNumber, &record.EquipmentModel)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inspection: %w", err)
		}

		record.Inspection.IntakeID = intakeID.String
		record.Inspection.Remarks = remarks.String
		record.Inspection.CreatedAt = createdAt.Format(time.RFC3339)
		if closedAt.Valid {
			record.Inspection.ClosedAt = closedAt.Time.Format(time.RFC3339)
		}

		records = append(records, record)
	}

	return records, nil
}

// Close marks an inspection closed, stamping closure time and remarks.
func (r *InspectionRepository) Close(ctx context.Context, id, closedAt, remarks string) error {
	var remarksVal sql.NullString
	if remarks != "" {
		remarksVal = sql.NullString{String: remarks, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE inspections SET status = 'CERRADA', closed_at = ?, remarks = ? WHERE id = ?",
		closedAt, remarksVal, id,
	)
	if err != nil {
		return fmt.Errorf("failed to close inspection: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("inspection %s not found", id)
	}

	return nil
}

// Delete removes an inspection and its answers.
func (r *InspectionRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM inspections WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete inspection: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("inspection %s not found", id)
	}

	return nil
}

// GetNextID returns the next available inspection ID.
func (r *InspectionRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 6) AS INTEGER)), 0) FROM inspections",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next inspection ID: %w", err)
	}

	return fmt.Sprintf("INSP-%03d", maxID+1), nil
}

// EquipmentExists checks if an equipment record exists.
func (r *InspectionRepository) EquipmentExists(ctx context.Context, equipmentID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM equipment WHERE id = ?", equipmentID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check equipment existence: %w", err)
	}
	return count > 0, nil
}

func scanInspection(rows *sql.Rows) (*secondary.InspectionRecord, error) {
	var (
		intakeID  sql.NullString
		remarks   sql.NullString
		createdAt time.Time
		closedAt  sql.NullTime
	)

	record := &secondary.InspectionRecord{}
	err := rows.Scan(&record.ID, &record.EquipmentID, &record.Kind, &record.Status, &record.Inspector,
		&record.Supervisor, &intakeID, &remarks, &createdAt, &closedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan inspection: %w", err)
	}

	record.IntakeID = intakeID.String
	record.Remarks = remarks.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	if closedAt.Valid {
		record.ClosedAt = closedAt.Time.Format(time.RFC3339)
	}

	return record, nil
}

// Ensure InspectionRepository implements the interface
var _ secondary.InspectionRepository = (*InspectionRepository)(nil)

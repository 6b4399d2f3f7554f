// Package app contains the application services that implement the primary
// ports. Services orchestrate repositories and the pure core logic.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/caexinspect/internal/core/equipment"
	"github.com/example/caexinspect/internal/core/fault"
	"github.com/example/caexinspect/internal/ports/primary"
	"github.com/example/caexinspect/internal/ports/secondary"
)

// EquipmentServiceImpl implements the EquipmentService interface.
type EquipmentServiceImpl struct {
	equipmentRepo  secondary.EquipmentRepository
	inspectionRepo secondary.InspectionRepository
	photoRepo      secondary.PhotoRepository
	photoStore     secondary.PhotoStore
	logger         *slog.Logger
}

// NewEquipmentService creates a new EquipmentService with injected dependencies.
func NewEquipmentService(
	equipmentRepo secondary.EquipmentRepository,
	inspectionRepo secondary.InspectionRepository,
	photoRepo secondary.PhotoRepository,
	photoStore secondary.PhotoStore,
	logger *slog.Logger,
) *EquipmentServiceImpl {
	return &EquipmentServiceImpl{
		equipmentRepo:  equipmentRepo,
		inspectionRepo: inspectionRepo,
		photoRepo:      photoRepo,
		photoStore:     photoStore,
		logger:         logger,
	}
}

// RegisterEquipment registers a new CAEX unit in the fleet.
func (s *EquipmentServiceImpl) RegisterEquipment(ctx context.Context, req primary.RegisterEquipmentRequest) (*primary.RegisterEquipmentResponse, error) {
	exists, err := s.equipmentRepo.NumberExists(ctx, req.Number)
	if err != nil {
		return nil, fmt.Errorf("failed to check fleet number: %w", err)
	}

	guard := equipment.CanRegister(equipment.RegisterContext{
		Model:        equipment.Model(req.Model),
		Number:       req.Number,
		NumberExists: exists,
	})
	if !guard.Allowed {
		// A conflict is a duplicate of an otherwise valid identifier
		if exists && equipment.ValidIdentifier(equipment.Model(req.Model), req.Number) {
			return nil, fault.Conflictf("%s", guard.Reason)
		}
		return nil, fault.Validationf("%s", guard.Reason)
	}

	record := &secondary.EquipmentRecord{
		ID:     equipment.FormatID(req.Number),
		Number: req.Number,
		Model:  req.Model,
	}
	if err := s.equipmentRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to register equipment: %w", err)
	}

	created, err := s.equipmentRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch registered equipment: %w", err)
	}

	return &primary.RegisterEquipmentResponse{
		EquipmentID: created.ID,
		Equipment:   recordToEquipment(created),
	}, nil
}

// GetEquipment retrieves a unit by ID.
func (s *EquipmentServiceImpl) GetEquipment(ctx context.Context, equipmentID string) (*primary.Equipment, error) {
	record, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, fault.NotFoundf("equipment %s not found", equipmentID)
	}
	return recordToEquipment(record), nil
}

// GetEquipmentByNumber retrieves a unit by fleet number.
func (s *EquipmentServiceImpl) GetEquipmentByNumber(ctx context.Context, number int) (*primary.Equipment, error) {
	record, err := s.equipmentRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	if record == nil {
		return nil, fault.NotFoundf("no CAEX registered with fleet number %d", number)
	}
	return recordToEquipment(record), nil
}

// ListEquipment lists units with optional filters.
func (s *EquipmentServiceImpl) ListEquipment(ctx context.Context, filters primary.EquipmentFilters) ([]*primary.Equipment, error) {
	if filters.Model != "" && !equipment.KnownModel(equipment.Model(filters.Model)) {
		return nil, fault.Validationf("unknown model %q (expected 797F or 798AC)", filters.Model)
	}

	records, err := s.equipmentRepo.List(ctx, secondary.EquipmentFilters{Model: filters.Model})
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	units := make([]*primary.Equipment, len(records))
	for i, r := range records {
		units[i] = recordToEquipment(r)
	}
	return units, nil
}

// UpdateEquipment corrects a unit's fleet number and/or model.
func (s *EquipmentServiceImpl) UpdateEquipment(ctx context.Context, req primary.UpdateEquipmentRequest) error {
	current, err := s.equipmentRepo.GetByID(ctx, req.EquipmentID)
	if err != nil {
		return fault.NotFoundf("equipment %s not found", req.EquipmentID)
	}

	model := current.Model
	if req.Model != "" {
		if !equipment.KnownModel(equipment.Model(req.Model)) {
			return fault.Validationf("unknown model %q (expected 797F or 798AC)", req.Model)
		}
		model = req.Model
	}

	number := current.Number
	if req.Number != 0 {
		number = req.Number
	}

	if !equipment.ValidIdentifier(equipment.Model(model), number) {
		return fault.Validationf("fleet number %d is not valid for model %s", number, model)
	}

	if number != current.Number {
		exists, err := s.equipmentRepo.NumberExists(ctx, number)
		if err != nil {
			return fmt.Errorf("failed to check fleet number: %w", err)
		}
		if exists {
			return fault.Conflictf("a CAEX with fleet number %d already exists", number)
		}
	}

	return s.equipmentRepo.Update(ctx, &secondary.EquipmentRecord{
		ID:     req.EquipmentID,
		Number: number,
		Model:  model,
	})
}

// DeleteEquipment removes a unit, its inspections, answers and photos.
// Stored photo files are removed best effort after the database rows.
func (s *EquipmentServiceImpl) DeleteEquipment(ctx context.Context, equipmentID string) error {
	if _, err := s.equipmentRepo.GetByID(ctx, equipmentID); err != nil {
		return fault.NotFoundf("equipment %s not found", equipmentID)
	}

	inspections, err := s.inspectionRepo.List(ctx, secondary.InspectionFilters{EquipmentID: equipmentID})
	if err != nil {
		return fmt.Errorf("failed to list inspections: %w", err)
	}

	var photoPaths []string
	for _, insp := range inspections {
		photos, err := s.photoRepo.ListByInspection(ctx, insp.ID)
		if err != nil {
			return fmt.Errorf("failed to list photos: %w", err)
		}
		for _, p := range photos {
			photoPaths = append(photoPaths, p.FilePath)
		}
	}

	if err := s.equipmentRepo.Delete(ctx, equipmentID); err != nil {
		return err
	}

	for _, path := range photoPaths {
		if err := s.photoStore.Remove(ctx, path); err != nil {
			s.logger.Warn("failed to remove photo file", "path", path, "error", err)
		}
	}

	return nil
}

func recordToEquipment(r *secondary.EquipmentRecord) *primary.Equipment {
	return &primary.Equipment{
		ID:        r.ID,
		Number:    r.Number,
		Model:     r.Model,
		CreatedAt: r.CreatedAt,
	}
}

// Ensure EquipmentServiceImpl implements the interface
var _ primary.EquipmentService = (*EquipmentServiceImpl)(nil)

// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import "context"

// EquipmentService defines the primary port for CAEX equipment operations.
type EquipmentService interface {
	// RegisterEquipment registers a new CAEX unit in the fleet.
	RegisterEquipment(ctx context.Context, req RegisterEquipmentRequest) (*RegisterEquipmentResponse, error)

	// GetEquipment retrieves a unit by ID.
	GetEquipment(ctx context.Context, equipmentID string) (*Equipment, error)

	// GetEquipmentByNumber retrieves a unit by fleet number.
	GetEquipmentByNumber(ctx context.Context, number int) (*Equipment, error)

	// ListEquipment lists units with optional filters.
	ListEquipment(ctx context.Context, filters EquipmentFilters) ([]*Equipment, error)

	// UpdateEquipment corrects a unit's fleet number and/or model.
	UpdateEquipment(ctx context.Context, req UpdateEquipmentRequest) error

	// DeleteEquipment removes a unit and all its inspections.
	DeleteEquipment(ctx context.Context, equipmentID string) error
}

// RegisterEquipmentRequest contains parameters for registering a unit.
type RegisterEquipmentRequest struct {
	Number int
	Model  string
}

// RegisterEquipmentResponse contains the result of registering a unit.
type RegisterEquipmentResponse struct {
	EquipmentID string
	Equipment   *Equipment
}

// Equipment represents a CAEX unit at the port boundary.
type Equipment struct {
	ID        string
	Number    int
	Model     string
	CreatedAt string
}

// EquipmentFilters contains filter options for listing equipment.
type EquipmentFilters struct {
	Model string
}

// UpdateEquipmentRequest contains parameters for correcting a unit.
// Zero values leave the corresponding field unchanged.
type UpdateEquipmentRequest struct {
	EquipmentID string
	Number      int
	Model       string
}

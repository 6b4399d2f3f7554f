package primary

import "context"

// InspectionService defines the primary port for inspection lifecycle operations.
type InspectionService interface {
	// CreateIntake opens a workshop intake inspection for a unit.
	CreateIntake(ctx context.Context, req CreateIntakeRequest) (*CreateInspectionResponse, error)

	// CreateRelease opens a workshop release inspection linked to a prior intake.
	CreateRelease(ctx context.Context, req CreateReleaseRequest) (*CreateInspectionResponse, error)

	// GetInspection retrieves an inspection by ID.
	GetInspection(ctx context.Context, inspectionID string) (*Inspection, error)

	// ListInspections lists inspections with optional filters, newest first.
	ListInspections(ctx context.Context, filters InspectionFilters) ([]*Inspection, error)

	// GetProgress reports how far along an inspection is.
	GetProgress(ctx context.Context, inspectionID string) (*InspectionProgress, error)

	// CloseInspection attempts to close an inspection. A false Closed flag in
	// the response means the checklist is not yet complete.
	CloseInspection(ctx context.Context, req CloseInspectionRequest) (*CloseInspectionResponse, error)

	// DeleteInspection removes an inspection, its answers and its photos.
	DeleteInspection(ctx context.Context, inspectionID string) error
}

// CreateIntakeRequest contains parameters for opening an intake inspection.
type CreateIntakeRequest struct {
	EquipmentID string
	Inspector   string
	Supervisor  string
}

// CreateReleaseRequest contains parameters for opening a release inspection.
type CreateReleaseRequest struct {
	IntakeID   string
	Inspector  string
	Supervisor string
}

// CreateInspectionResponse contains the result of opening an inspection.
type CreateInspectionResponse struct {
	InspectionID string
	Inspection   *Inspection
}

// Inspection represents an inspection at the port boundary.
type Inspection struct {
	ID              string
	EquipmentID     string
	EquipmentNumber int
	EquipmentModel  string
	Kind            string
	Status          string
	Inspector       string
	Supervisor      string
	IntakeID        string
	Remarks         string
	CreatedAt       string
	ClosedAt        string
}

// InspectionFilters contains filter options for listing inspections.
type InspectionFilters struct {
	Status      string
	Kind        string
	EquipmentID string
	Model       string
}

// InspectionProgress reports answered versus applicable question counts.
type InspectionProgress struct {
	InspectionID     string
	Answered         int
	Applicable       int
	PassCount        int
	FailCount        int
	PendingQuestions []string
}

// CloseInspectionRequest contains parameters for closing an inspection.
type CloseInspectionRequest struct {
	InspectionID string
	Remarks      string
}

// CloseInspectionResponse contains the result of a close attempt.
// When Closed is false, Pending lists the unanswered or incomplete questions.
type CloseInspectionResponse struct {
	Closed     bool
	ClosedAt   string
	Answered   int
	Applicable int
	Pending    []string
}

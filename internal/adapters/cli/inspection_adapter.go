package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/caexinspect/internal/ports/primary"
)

// InspectionAdapter is a thin adapter that translates CLI operations to
// InspectionService calls.
type InspectionAdapter struct {
	service primary.InspectionService
	out     io.Writer
}

// NewInspectionAdapter creates a new InspectionAdapter with the given service.
func NewInspectionAdapter(service primary.InspectionService, out io.Writer) *InspectionAdapter {
	return &InspectionAdapter{
		service: service,
		out:     out,
	}
}

// OpenIntake opens a workshop intake inspection.
func (a *InspectionAdapter) OpenIntake(ctx context.Context, equipmentID, inspector, supervisor string) error {
	resp, err := a.service.CreateIntake(ctx, primary.CreateIntakeRequest{
		EquipmentID: equipmentID,
		Inspector:   inspector,
		Supervisor:  supervisor,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Opened intake inspection %s for CAEX %d\n",
		resp.InspectionID, resp.Inspection.EquipmentNumber)
	return nil
}

// OpenRelease opens a workshop release inspection linked to a prior intake.
func (a *InspectionAdapter) OpenRelease(ctx context.Context, intakeID, inspector, supervisor string) error {
	resp, err := a.service.CreateRelease(ctx, primary.CreateReleaseRequest{
		IntakeID:   intakeID,
		Inspector:  inspector,
		Supervisor: supervisor,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Opened release inspection %s for CAEX %d (intake %s)\n",
		resp.InspectionID, resp.Inspection.EquipmentNumber, resp.Inspection.IntakeID)
	return nil
}

// List lists inspections with optional filters.
func (a *InspectionAdapter) List(ctx context.Context, status, kind, equipmentID, model string) error {
	inspections, err := a.service.ListInspections(ctx, primary.InspectionFilters{
		Status:      status,
		Kind:        kind,
		EquipmentID: equipmentID,
		Model:       model,
	})
	if err != nil {
		return err
	}

	if len(inspections) == 0 {
		fmt.Fprintln(a.out, "No inspections found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-10s %-10s %-10s %-9s %s\n", "ID", "KIND", "STATUS", "CAEX", "INSPECTOR")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────")
	for _, insp := range inspections {
		fmt.Fprintf(a.out, "%-10s %-10s %-10s %-9d %s\n",
			insp.ID, insp.Kind, insp.Status, insp.EquipmentNumber, insp.Inspector)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show displays one inspection with its checklist progress.
func (a *InspectionAdapter) Show(ctx context.Context, inspectionID string) error {
	insp, err := a.service.GetInspection(ctx, inspectionID)
	if err != nil {
		return fmt.Errorf("failed to get inspection: %w", err)
	}

	progress, err := a.service.GetProgress(ctx, inspectionID)
	if err != nil {
		return fmt.Errorf("failed to get progress: %w", err)
	}

	fmt.Fprintf(a.out, "\nInspection: %s\n", insp.ID)
	fmt.Fprintf(a.out, "Kind:       %s\n", insp.Kind)
	fmt.Fprintf(a.out, "Status:     %s\n", insp.Status)
	fmt.Fprintf(a.out, "Equipment:  CAEX %d (%s)\n", insp.EquipmentNumber, insp.EquipmentModel)
	fmt.Fprintf(a.out, "Inspector:  %s\n", insp.Inspector)
	fmt.Fprintf(a.out, "Supervisor: %s\n", insp.Supervisor)
	if insp.IntakeID != "" {
		fmt.Fprintf(a.out, "Intake:     %s\n", insp.IntakeID)
	}
	fmt.Fprintf(a.out, "Opened:     %s\n", insp.CreatedAt)
	if insp.ClosedAt != "" {
		fmt.Fprintf(a.out, "Closed:     %s\n", insp.ClosedAt)
	}
	if insp.Remarks != "" {
		fmt.Fprintf(a.out, "Remarks:    %s\n", insp.Remarks)
	}
	fmt.Fprintf(a.out, "\nProgress: %d/%d answered (%d pass, %d fail)\n",
		progress.Answered, progress.Applicable, progress.PassCount, progress.FailCount)
	if len(progress.PendingQuestions) > 0 {
		fmt.Fprintf(a.out, "Pending:  %d questions\n", len(progress.PendingQuestions))
	}
	fmt.Fprintln(a.out)

	return nil
}

// Close attempts to close an inspection. An incomplete checklist is reported
// with the pending questions instead of closing.
func (a *InspectionAdapter) Close(ctx context.Context, inspectionID, remarks string) error {
	resp, err := a.service.CloseInspection(ctx, primary.CloseInspectionRequest{
		InspectionID: inspectionID,
		Remarks:      remarks,
	})
	if err != nil {
		return err
	}

	if !resp.Closed {
		fmt.Fprintf(a.out, "Inspection %s cannot be closed yet: %d/%d answered\n",
			inspectionID, resp.Answered, resp.Applicable)
		fmt.Fprintln(a.out, "Pending questions:")
		for _, q := range resp.Pending {
			fmt.Fprintf(a.out, "  - %s\n", q)
		}
		return nil
	}

	fmt.Fprintf(a.out, "✓ Closed inspection %s at %s\n", inspectionID, resp.ClosedAt)
	return nil
}

// Delete deletes an inspection and its answers and photos.
func (a *InspectionAdapter) Delete(ctx context.Context, inspectionID string) error {
	if err := a.service.DeleteInspection(ctx, inspectionID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Deleted inspection %s\n", inspectionID)
	return nil
}

// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/caexinspect/internal/ports/primary"
)

// EquipmentAdapter is a thin adapter that translates CLI operations to
// EquipmentService calls. It depends only on the EquipmentService interface,
// enabling easy testing with mocks.
type EquipmentAdapter struct {
	service primary.EquipmentService
	out     io.Writer
}

// NewEquipmentAdapter creates a new EquipmentAdapter with the given service.
func NewEquipmentAdapter(service primary.EquipmentService, out io.Writer) *EquipmentAdapter {
	return &EquipmentAdapter{
		service: service,
		out:     out,
	}
}

// Register registers a new CAEX unit.
func (a *EquipmentAdapter) Register(ctx context.Context, number int, model string) error {
	resp, err := a.service.RegisterEquipment(ctx, primary.RegisterEquipmentRequest{
		Number: number,
		Model:  model,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Registered %s (model %s)\n", resp.EquipmentID, resp.Equipment.Model)
	return nil
}

// List lists registered units with an optional model filter.
func (a *EquipmentAdapter) List(ctx context.Context, model string) error {
	units, err := a.service.ListEquipment(ctx, primary.EquipmentFilters{
		Model: model,
	})
	if err != nil {
		return err
	}

	if len(units) == 0 {
		fmt.Fprintln(a.out, "No equipment registered")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-12s %-8s %-8s %s\n", "ID", "NUMBER", "MODEL", "REGISTERED")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────")
	for _, u := range units {
		fmt.Fprintf(a.out, "%-12s %-8d %-8s %s\n", u.ID, u.Number, u.Model, u.CreatedAt)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show displays details for a single unit, looked up by ID.
func (a *EquipmentAdapter) Show(ctx context.Context, equipmentID string) error {
	unit, err := a.service.GetEquipment(ctx, equipmentID)
	if err != nil {
		return fmt.Errorf("failed to get equipment: %w", err)
	}
	a.printUnit(unit)
	return nil
}

// ShowByNumber displays details for a single unit, looked up by fleet number.
func (a *EquipmentAdapter) ShowByNumber(ctx context.Context, number int) error {
	unit, err := a.service.GetEquipmentByNumber(ctx, number)
	if err != nil {
		return err
	}
	a.printUnit(unit)
	return nil
}

func (a *EquipmentAdapter) printUnit(unit *primary.Equipment) {
	fmt.Fprintf(a.out, "\nEquipment: %s\n", unit.ID)
	fmt.Fprintf(a.out, "Number:    %d\n", unit.Number)
	fmt.Fprintf(a.out, "Model:     %s\n", unit.Model)
	fmt.Fprintf(a.out, "Registered: %s\n", unit.CreatedAt)
	fmt.Fprintln(a.out)
}

// Update corrects a unit's fleet number and/or model.
func (a *EquipmentAdapter) Update(ctx context.Context, equipmentID string, number int, model string) error {
	if number == 0 && model == "" {
		return fmt.Errorf("must specify at least --number or --model")
	}

	err := a.service.UpdateEquipment(ctx, primary.UpdateEquipmentRequest{
		EquipmentID: equipmentID,
		Number:      number,
		Model:       model,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Equipment %s updated\n", equipmentID)
	return nil
}

// Delete deletes a unit and its entire inspection history.
func (a *EquipmentAdapter) Delete(ctx context.Context, equipmentID string) error {
	unit, err := a.service.GetEquipment(ctx, equipmentID)
	if err != nil {
		return fmt.Errorf("failed to get equipment: %w", err)
	}

	if err := a.service.DeleteEquipment(ctx, equipmentID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Deleted %s (model %s) and its inspection history\n", unit.ID, unit.Model)
	return nil
}

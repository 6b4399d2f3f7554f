package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/caexinspect/internal/ports/primary"
)

// ReportAdapter is a thin adapter that translates CLI operations to
// ReportService calls.
type ReportAdapter struct {
	service primary.ReportService
	out     io.Writer
}

// NewReportAdapter creates a new ReportAdapter with the given service.
func NewReportAdapter(service primary.ReportService, out io.Writer) *ReportAdapter {
	return &ReportAdapter{
		service: service,
		out:     out,
	}
}

// History generates the inspection history PDF for a unit.
func (a *ReportAdapter) History(ctx context.Context, equipmentID, outputPath string) error {
	resp, err := a.service.GenerateHistory(ctx, primary.GenerateHistoryRequest{
		EquipmentID: equipmentID,
		OutputPath:  outputPath,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ History report written to %s\n", resp.OutputPath)
	return nil
}

// Findings generates the non-conformity findings PDF for an inspection.
func (a *ReportAdapter) Findings(ctx context.Context, inspectionID, outputPath string) error {
	resp, err := a.service.GenerateFindings(ctx, primary.GenerateFindingsRequest{
		InspectionID: inspectionID,
		OutputPath:   outputPath,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Findings report written to %s\n", resp.OutputPath)
	return nil
}

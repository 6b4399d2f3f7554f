package primary

import "context"

// ReportService defines the primary port for PDF report generation.
type ReportService interface {
	// GenerateHistory renders the inspection history of one unit to PDF.
	GenerateHistory(ctx context.Context, req GenerateHistoryRequest) (*GenerateReportResponse, error)

	// GenerateFindings renders one inspection's non-conforming findings to PDF.
	GenerateFindings(ctx context.Context, req GenerateFindingsRequest) (*GenerateReportResponse, error)
}

// GenerateHistoryRequest contains parameters for a history report.
type GenerateHistoryRequest struct {
	EquipmentID string
	OutputPath  string
}

// GenerateFindingsRequest contains parameters for a findings report.
type GenerateFindingsRequest struct {
	InspectionID string
	OutputPath   string
}

// GenerateReportResponse contains the result of rendering a report.
type GenerateReportResponse struct {
	OutputPath string
}

package secondary

// ReportRenderer defines the secondary port for rendering PDF reports.
type ReportRenderer interface {
	// RenderHistory writes the equipment history report to outputPath.
	RenderHistory(doc *HistoryDocument, outputPath string) error

	// RenderFindings writes the inspection findings report to outputPath.
	RenderFindings(doc *FindingsDocument, outputPath string) error
}

// HistoryDocument carries everything the history report needs.
type HistoryDocument struct {
	EquipmentNumber int
	EquipmentModel  string
	GeneratedAt     string
	Rows            []HistoryRow
	TotalCount      int
	OpenCount       int
	ClosedCount     int
}

// HistoryRow is one inspection line in the history report.
type HistoryRow struct {
	InspectionID string
	Kind         string
	Status       string
	Inspector    string
	CreatedAt    string
	ClosedAt     string
}

// FindingsDocument carries everything the findings report needs.
type FindingsDocument struct {
	InspectionID    string
	Kind            string
	Status          string
	Inspector       string
	Supervisor      string
	EquipmentNumber int
	EquipmentModel  string
	CreatedAt       string
	ClosedAt        string
	Remarks         string
	GeneratedAt     string
	AnsweredCount   int
	ApplicableCount int
	FailCount       int
	Sections        []FindingsSection
}

// FindingsSection groups fail findings under one category.
type FindingsSection struct {
	CategoryName string
	Findings     []Finding
}

// Finding is one non-conforming answer in the findings report.
type Finding struct {
	QuestionText string
	Comments     string
	Remediation  string
	TicketRef    string
	PhotoCount   int
}

// Package pdf renders inspection reports with gofpdf.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/example/caexinspect/internal/ports/secondary"
)

// ReportWriter implements secondary.ReportRenderer with gofpdf.
// Documents use A4 portrait and the core Helvetica font; text goes through
// the cp1252 translator so Spanish accents render correctly.
type ReportWriter struct{}

// NewReportWriter creates a new PDF report writer.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// RenderHistory writes the equipment history report to outputPath.
func (w *ReportWriter) RenderHistory(doc *secondary.HistoryDocument, outputPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Historial de Inspecciones"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("CAEX %d - Modelo %s", doc.EquipmentNumber, doc.EquipmentModel)), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Generado: %s", doc.GeneratedAt)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Total: %d  |  Abiertas: %d  |  Cerradas: %d",
		doc.TotalCount, doc.OpenCount, doc.ClosedCount)), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// Table header
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(25, 7, tr("Inspección"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(28, 7, tr("Tipo"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(22, 7, tr("Estado"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, tr("Inspector"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, tr("Apertura"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, tr("Cierre"), "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range doc.Rows {
		closed := row.ClosedAt
		if closed == "" {
			closed = "-"
		}
		pdf.CellFormat(25, 7, tr(row.InspectionID), "1", 0, "L", false, 0, "")
		pdf.CellFormat(28, 7, tr(row.Kind), "1", 0, "L", false, 0, "")
		pdf.CellFormat(22, 7, tr(row.Status), "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, tr(row.Inspector), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, tr(row.CreatedAt), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, tr(closed), "1", 1, "L", false, 0, "")
	}

	if len(doc.Rows) == 0 {
		pdf.CellFormat(190, 7, tr("Sin inspecciones registradas"), "1", 1, "C", false, 0, "")
	}

	return writeOut(pdf, outputPath)
}

// RenderFindings writes the inspection findings report to outputPath.
func (w *ReportWriter) RenderFindings(doc *secondary.FindingsDocument, outputPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Informe de No Conformidades"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("CAEX %d - Modelo %s", doc.EquipmentNumber, doc.EquipmentModel)), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Generado: %s", doc.GeneratedAt)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Header block
	pdf.SetFont("Helvetica", "", 10)
	headerLine := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, tr(value), "", 1, "L", false, 0, "")
	}
	headerLine("Inspección:", doc.InspectionID)
	headerLine("Tipo:", doc.Kind)
	headerLine("Estado:", doc.Status)
	headerLine("Inspector:", doc.Inspector)
	headerLine("Supervisor:", doc.Supervisor)
	headerLine("Apertura:", doc.CreatedAt)
	if doc.ClosedAt != "" {
		headerLine("Cierre:", doc.ClosedAt)
	}
	if doc.Remarks != "" {
		headerLine("Observaciones:", doc.Remarks)
	}
	pdf.Ln(2)

	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Respondidas: %d de %d  |  No conformes: %d",
		doc.AnsweredCount, doc.ApplicableCount, doc.FailCount)), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	if len(doc.Sections) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.CellFormat(0, 8, tr("Sin hallazgos: todas las respuestas registradas son conformes."), "", 1, "L", false, 0, "")
		return writeOut(pdf, outputPath)
	}

	for _, section := range doc.Sections {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetFillColor(210, 210, 210)
		pdf.CellFormat(0, 8, tr(section.CategoryName), "1", 1, "L", true, 0, "")

		for _, finding := range section.Findings {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.MultiCell(0, 6, tr(finding.QuestionText), "LR", "L", false)

			pdf.SetFont("Helvetica", "", 9)
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("Comentario: %s", finding.Comments)), "LR", "L", false)

			remediation := finding.Remediation
			if finding.TicketRef != "" {
				remediation = fmt.Sprintf("%s (aviso %s)", remediation, finding.TicketRef)
			}
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("Resolución: %s", remediation)), "LR", "L", false)
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("Fotos adjuntas: %d", finding.PhotoCount)), "LRB", "L", false)
			pdf.Ln(1)
		}
		pdf.Ln(2)
	}

	return writeOut(pdf, outputPath)
}

func writeOut(pdf *gofpdf.Fpdf, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	return nil
}

// Ensure ReportWriter implements the interface
var _ secondary.ReportRenderer = (*ReportWriter)(nil)

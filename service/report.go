package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/saranya-m1904/contract-risk-bot/model"
)

// ReportFilename is the download name offered for generated reports.
const ReportFilename = "Contract_Risk_Report.pdf"

// ReportContentType is the MIME type of generated reports.
const ReportContentType = "application/pdf"

// RenderReport writes the PDF risk report for one analysis: a title, the
// contract overview, the extracted entities, then one block per clause.
// On error nothing partial is flushed; the caller discards the buffer.
//
// The core PDF fonts cover Latin text only; non-Latin runes (the Hindi risk
// keywords, the rupee sign) are transliterated by the codepage translator
// where possible.
func RenderReport(a *model.Analysis, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 9, tr("Contract Risk Assessment Report"), "", "C", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr("Contract Type: "+a.ContractType), "", "L", false)
	if a.ScoreApplicable {
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("Overall Risk Score: %.2f", a.CompositeScore)), "", "L", false)
	} else {
		pdf.MultiCell(0, 6, tr("Overall Risk Score: not applicable (no clauses extracted)"), "", "L", false)
	}
	pdf.MultiCell(0, 6, tr("Amounts: "+orNotDetected(a.Entities.Amounts)), "", "L", false)
	pdf.MultiCell(0, 6, tr("Dates: "+orNotDetected(a.Entities.Dates)), "", "L", false)
	pdf.MultiCell(0, 6, tr("Jurisdiction: "+orNotDetected(a.Entities.Jurisdiction)), "", "L", false)
	pdf.Ln(4)

	for _, r := range a.Clauses {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("Clause %d", r.Clause.Ordinal)), "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(r.Clause.Text), "", "L", false)
		pdf.MultiCell(0, 6, tr("Clause Type: "+r.Type), "", "L", false)
		pdf.MultiCell(0, 6, tr("Risk Level: "+r.Level), "", "L", false)
		pdf.MultiCell(0, 6, tr("Explanation: "+r.Explanation), "", "L", false)
		pdf.MultiCell(0, 6, tr("Mitigation Advice: "+r.Mitigation), "", "L", false)
		pdf.Ln(3)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

func orNotDetected(values []string) string {
	if len(values) == 0 {
		return "Not detected"
	}
	return strings.Join(values, ", ")
}

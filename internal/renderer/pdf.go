package renderer

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// pdfEngine turns a view into PDF bytes.
type pdfEngine interface {
	print(ctx context.Context, v view) ([]byte, error)
	close() error
}

const (
	pdfFont       = "Helvetica"
	pdfLineHeight = 6.0
	pdfMargin     = 12.0
)

// builtinEngine draws the report with fpdf. It needs no external process.
type builtinEngine struct{}

func newBuiltinEngine() *builtinEngine {
	return &builtinEngine{}
}

func (e *builtinEngine) print(_ context.Context, v view) ([]byte, error) {
	orientation := "P"
	if len(v.Columns) > 5 {
		orientation = "L"
	}
	pdf := fpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin+6)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(v.Title, true)
	pdf.SetCreator("report-srv", true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pdfMargin)
		pdf.SetFont(pdfFont, "I", 8)
		footer := fmt.Sprintf("%s %s | %s %d", v.Labels.GeneratedOn, v.GeneratedAt, v.Labels.Page, pdf.PageNo())
		pdf.CellFormat(0, 8, tr(footer), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 16)
	pdf.CellFormat(0, 10, tr(v.Title), "", 1, "L", false, 0, "")

	if len(v.Parameters) > 0 {
		pdf.SetFont(pdfFont, "", 10)
		for _, p := range v.Parameters {
			pdf.CellFormat(0, pdfLineHeight, tr(p.Label+": "+p.Value), "", 1, "L", false, 0, "")
		}
		pdf.Ln(2)
	}

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right
	colWidth := usable
	if len(v.Columns) > 0 {
		colWidth = usable / float64(len(v.Columns))
	}

	drawHeader := func() {
		pdf.SetFont(pdfFont, "B", 9)
		pdf.SetFillColor(235, 235, 235)
		for _, col := range v.Columns {
			pdf.CellFormat(colWidth, pdfLineHeight+1, tr(col.Label), "1", 0, pdfAlign(col.Align), true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(pdfFont, "", 9)
	}

	if len(v.Columns) > 0 {
		drawHeader()
	}

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, row := range v.Rows {
		if pdf.GetY()+pdfLineHeight > pageHeight-bottom {
			pdf.AddPage()
			drawHeader()
		}
		for _, cell := range row {
			pdf.CellFormat(colWidth, pdfLineHeight, tr(fit(pdf, cell.Value, colWidth)), "1", 0, pdfAlign(cell.Align), false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(v.Rows) == 0 {
		pdf.SetFont(pdfFont, "I", 9)
		pdf.CellFormat(usable, pdfLineHeight, tr(v.Labels.NoData), "1", 1, "C", false, 0, "")
	}

	if v.Total != "" {
		pdf.SetFont(pdfFont, "B", 10)
		pdf.CellFormat(usable, pdfLineHeight+1, tr(v.Labels.Total+": "+v.Total), "", 1, "R", false, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *builtinEngine) close() error {
	return nil
}

func pdfAlign(a string) string {
	if a == "right" {
		return "R"
	}
	return "L"
}

// fit truncates s so it prints inside width.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	const pad = 2.0
	if pdf.GetStringWidth(s) <= width-pad {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > width-pad {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/starford/fehu/internal/apperr"
	"github.com/starford/fehu/internal/itemservice"
)

const (
	pdfTitleWidth = 60
	pdfValueWidth = 95
	pdfTypeWidth  = 35
)

// PDF renders the item as an A4 document: title, board line, then one
// table section per group.
func PDF(itemName, boardName string, groups []itemservice.Group) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()
	// Core Helvetica is cp1252; translate decoded text so arrows and
	// stars do not come out as mojibake.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFont("Helvetica", "B", 16)
	doc.MultiCell(0, 8, tr(itemName), "", "L", false)
	if boardName != "" {
		doc.SetFont("Helvetica", "", 10)
		doc.SetTextColor(103, 104, 121)
		doc.CellFormat(0, 6, tr(fmt.Sprintf("Board: %s", boardName)), "", 1, "L", false, 0, "")
	}
	doc.Ln(4)

	for _, g := range groups {
		doc.SetTextColor(50, 51, 56)
		doc.SetFont("Helvetica", "B", 12)
		doc.CellFormat(0, 8, tr(g.Name), "", 1, "L", false, 0, "")

		doc.SetFont("Helvetica", "B", 9)
		doc.SetFillColor(245, 246, 248)
		doc.CellFormat(pdfTitleWidth, 7, "Field Name", "1", 0, "L", true, 0, "")
		doc.CellFormat(pdfValueWidth, 7, "Field Value", "1", 0, "L", true, 0, "")
		doc.CellFormat(pdfTypeWidth, 7, "Field Type", "1", 1, "L", true, 0, "")

		doc.SetFont("Helvetica", "", 9)
		for _, f := range g.Fields {
			doc.CellFormat(pdfTitleWidth, 7, tr(truncate(f.Title, 34)), "1", 0, "L", false, 0, "")
			doc.CellFormat(pdfValueWidth, 7, tr(truncate(f.Display.Text, 58)), "1", 0, "L", false, 0, "")
			doc.CellFormat(pdfTypeWidth, 7, string(f.Type), "1", 1, "L", false, 0, "")
		}
		doc.Ln(4)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: pdf render: %v", apperr.ErrExport, err)
	}
	return buf.Bytes(), nil
}

// truncate shortens cell text on rune boundaries so multi-byte
// characters never get split.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

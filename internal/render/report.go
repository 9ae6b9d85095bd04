package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const (
	reportTitle      = "GENERATED REPORT"
	reportCellWidth  = 200
	reportCellHeight = 10
)

type reportLine struct {
	text  string
	align string
}

// reportLines returns the report cells; unlike the image, values are not truncated
func reportLines(prompt, userID string) []reportLine {
	return []reportLine{
		{text: reportTitle, align: "C"},
		{text: "Prompt: " + prompt, align: "L"},
		{text: "User ID: " + userID, align: "L"},
	}
}

func renderReport(prompt, userID string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)

	for _, line := range reportLines(prompt, userID) {
		text, err := toCP1252(line.text)
		if err != nil {
			return nil, fmt.Errorf("failed to encode report text: %w", err)
		}
		pdf.CellFormat(reportCellWidth, reportCellHeight, text, "", 1, line.align, false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	return buf.Bytes(), nil
}

// toCP1252 converts UTF-8 text to the encoding of the PDF core fonts.
// Characters outside cp1252 become the substitute byte.
func toCP1252(s string) (string, error) {
	return encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()).String(s)
}

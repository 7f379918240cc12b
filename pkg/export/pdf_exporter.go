package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// BlockKind identifies how a document block is laid out.
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockSubheading
	BlockParagraph
	BlockBullet
	BlockTable
	BlockPageBreak
)

// Block is one element of a Document.
type Block struct {
	Kind  BlockKind
	Text  string
	Table *Dataset
}

// Document is a linear report: a cover, ordered blocks and a footer line.
type Document struct {
	Title    string
	Subtitle string
	Cover    []string
	Blocks   []Block
	Footer   string
}

// PDFExporter renders documents with gofpdf core fonts.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

var (
	navy      = [3]int{0x00, 0x33, 0x66}
	steelBlue = [3]int{0x00, 0x4d, 0x99}
)

// Render lays the document out on Letter pages.
func (e *PDFExporter) Render(doc Document) ([]byte, error) {
	if doc.Title == "" {
		return nil, fmt.Errorf("pdf requires a title")
	}
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(13, 19, 13)
	pdf.SetAutoPageBreak(true, 19)
	// core fonts are cp1252; accented text must be translated from UTF-8
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(navy[0], navy[1], navy[2])
	pdf.CellFormat(0, 14, tr(doc.Title), "", 1, "C", false, 0, "")
	if doc.Subtitle != "" {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.MultiCell(0, 8, tr(doc.Subtitle), "", "C", false)
	}
	pdf.Ln(6)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range doc.Cover {
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)

	for _, block := range doc.Blocks {
		switch block.Kind {
		case BlockHeading:
			pdf.Ln(3)
			pdf.SetFont("Helvetica", "B", 16)
			pdf.SetTextColor(navy[0], navy[1], navy[2])
			pdf.CellFormat(0, 9, tr(block.Text), "", 1, "L", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		case BlockSubheading:
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 13)
			pdf.SetTextColor(steelBlue[0], steelBlue[1], steelBlue[2])
			pdf.CellFormat(0, 8, tr(block.Text), "", 1, "L", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		case BlockParagraph:
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 5.5, tr(block.Text), "", "J", false)
			pdf.Ln(2)
		case BlockBullet:
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 5.5, tr("• "+block.Text), "", "L", false)
		case BlockTable:
			if block.Table == nil || len(block.Table.Headers) == 0 {
				return nil, fmt.Errorf("table block requires headers")
			}
			e.renderTable(pdf, tr, *block.Table)
		case BlockPageBreak:
			pdf.AddPage()
		default:
			return nil, fmt.Errorf("unknown block kind %d", block.Kind)
		}
	}

	if doc.Footer != "" {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 5, tr(doc.Footer), "", 1, "C", false, 0, "")
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *PDFExporter) renderTable(pdf *gofpdf.Fpdf, tr func(string) string, data Dataset) {
	width, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (width - left - right) / float64(len(data.Headers))

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(navy[0], navy[1], navy[2])
	pdf.SetTextColor(245, 245, 245)
	for _, header := range data.Headers {
		pdf.CellFormat(colWidth, 8, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetFillColor(245, 245, 220)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range data.Rows {
		for _, header := range data.Headers {
			pdf.CellFormat(colWidth, 7, tr(row[header]), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

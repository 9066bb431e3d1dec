// Package pdf renders a normalized invoice record as a paginated A4 tax
// invoice document, mirroring the on-screen template layout.
package pdf

import (
	"bytes"
	"fmt"
	"log"
	"math"

	"github.com/jung-kurt/gofpdf"

	"gstinvoice/domain/invoice"
	"gstinvoice/internal/config"
	"gstinvoice/internal/errors"
)

// Writer generates tax-invoice PDFs for download. The seller block comes
// from configuration; everything else comes from the record.
type Writer struct {
	seller config.SellerConfig
}

// NewWriter creates a PDF writer with the given seller letterhead.
func NewWriter(seller config.SellerConfig) *Writer {
	return &Writer{seller: seller}
}

// Render produces the PDF bytes for a record. A record with no line
// items is not exportable and returns an error instead of an empty page.
func (w *Writer) Render(rec invoice.Record) ([]byte, error) {
	if !rec.HasItems() {
		return nil, errors.EmptyInvoice()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	w.letterhead(pdf)
	w.metaBoxes(pdf, rec)
	w.customerBox(pdf, rec.Customer)
	w.itemTable(pdf, rec.Items)
	w.totalsBlock(pdf, rec.Totals)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to generate invoice PDF")
	}
	log.Printf("[PDFWriter] Rendered invoice %s (%d items, %d bytes)",
		rec.Header.Number, len(rec.Items), buf.Len())
	return buf.Bytes(), nil
}

func (w *Writer) letterhead(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(130, 7, w.seller.Name, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(60, 7, "TAX INVOICE", "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, line := range []string{
		w.seller.State,
		w.seller.Country,
		"GSTIN " + w.seller.GSTIN,
		w.seller.Phone,
		w.seller.Email,
	} {
		pdf.CellFormat(130, 4.5, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func (w *Writer) metaBoxes(pdf *gofpdf.Fpdf, rec invoice.Record) {
	h := rec.Header
	pdf.SetFont("Arial", "", 9)

	left := [][2]string{
		{"#", h.Number},
		{"Invoice Date", invoice.NormalizeDate(h.Date)},
		{"Terms", h.Terms},
		{"Due Date", invoice.NormalizeDate(h.DueDate)},
	}
	y := pdf.GetY()
	for _, kv := range left {
		pdf.CellFormat(30, 5, kv[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(60, 5, ": "+kv[1], "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
	}

	pdf.SetXY(105, y)
	pdf.CellFormat(35, 5, "Place Of Supply", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(55, 5, ": "+h.PlaceOfSupply, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.SetY(y + float64(len(left))*5 + 4)
}

func (w *Writer) customerBox(pdf *gofpdf.Fpdf, c invoice.Customer) {
	pdf.SetFillColor(243, 244, 246)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(190, 6, c.Name, "LTR", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(190, 5, c.Address, "LR", 1, "L", true, 0, "")
	pdf.CellFormat(190, 5, fmt.Sprintf("%s, %s - %s", c.City, c.State, c.Pincode), "LR", 1, "L", true, 0, "")
	pdf.CellFormat(190, 5, c.Country, "LBR", 1, "L", true, 0, "")
	pdf.Ln(4)
}

var itemCols = []struct {
	width float64
	title string
}{
	{8, "#"},
	{52, "Description"},
	{18, "HSN/SAC"},
	{14, "Qty"},
	{20, "Rate"},
	{15, "CGST %"},
	{17, "Amt"},
	{15, "SGST %"},
	{17, "Amt"},
	{24, "Amount"},
}

func (w *Writer) itemTable(pdf *gofpdf.Fpdf, items []invoice.LineItem) {
	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(229, 231, 235)
	for _, col := range itemCols {
		pdf.CellFormat(col.width, 6, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for i, li := range items {
		cells := []string{
			fmt.Sprintf("%d", i+1),
			li.Description,
			li.HSNSAC,
			invoice.FormatINR(li.Quantity),
			invoice.FormatINR(li.Rate),
			fmt.Sprintf("%g%%", li.CGSTPercent),
			invoice.FormatINR(li.CGSTAmount()),
			fmt.Sprintf("%g%%", li.SGSTPercent),
			invoice.FormatINR(li.SGSTAmount()),
			invoice.FormatINR(li.Amount),
		}
		for j, cell := range cells {
			align := "C"
			if j == 1 {
				align = "L"
			}
			pdf.CellFormat(itemCols[j].width, 6, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func (w *Writer) totalsBlock(pdf *gofpdf.Fpdf, t invoice.Totals) {
	y := pdf.GetY()

	// Left column: amounts in words plus the footer notes.
	for _, entry := range []struct {
		label  string
		amount float64
	}{
		{"Total in Words", t.TotalAmount},
		{"Payment Made in Words", t.PaymentMade},
		{"Balance Due in Words", t.BalanceDue},
	} {
		pdf.SetFont("Arial", "B", 8)
		pdf.CellFormat(110, 4.5, entry.label, "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "I", 8)
		pdf.MultiCell(110, 4.5,
			fmt.Sprintf("Indian Rupee %s Only", invoice.AmountInWords(int64(math.Floor(entry.amount)))),
			"", "L", false)
	}
	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(110, 4.5, "Thanks for your business.", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(110, 4.5, w.seller.Notes, "", 1, "L", false, 0, "")
	pdf.CellFormat(110, 4.5, "Issued by "+w.seller.Name, "", 1, "L", false, 0, "")

	// Right column: the money table.
	pdf.SetXY(120, y)
	rows := []struct {
		label, value string
		bold         bool
	}{
		{"Sub Total", invoice.FormatINR(t.SubTotal), false},
		{"CGST", invoice.FormatINR(t.CGSTTotal), false},
		{"SGST", invoice.FormatINR(t.SGSTTotal), false},
		{"Total", "Rs." + invoice.FormatINR(t.TotalAmount), true},
		{"Payment Made", "(-) " + invoice.FormatINR(t.PaymentMade), false},
		{"Balance Due", "Rs." + invoice.FormatINR(t.BalanceDue), true},
	}
	for _, row := range rows {
		style := ""
		if row.bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 9)
		pdf.SetX(120)
		pdf.CellFormat(40, 5.5, row.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 5.5, row.value, "", 1, "R", false, 0, "")
	}
}

package normalize

import (
	"log"
	"time"

	"gstinvoice/domain/invoice"
)

// Column offsets for the single-row layout: one data row carrying the
// header block, one line item and the customer block side by side.
const (
	srColNumber        = 0
	srColDate          = 1
	srColTerms         = 2
	srColDueDate       = 3
	srColPlaceOfSupply = 4
	srColDescription   = 5
	srColCustomerFirst = 6 // name..country occupy 6-11
	srColHSNSAC        = 12
	srColQuantity      = 13
	srColRate          = 14
	srColCGSTPercent   = 15
	srColPaymentMade   = 16
)

// BuildRecord normalizes a grid into an invoice record, defaulting the
// header dates to today. The record carries no identity or timestamp;
// the upload handler stamps those.
func BuildRecord(g Grid) invoice.Record {
	return BuildRecordAt(g, time.Now())
}

// BuildRecordAt is BuildRecord with an explicit clock so identical grids
// produce bit-identical records.
func BuildRecordAt(g Grid, now time.Time) invoice.Record {
	shape := Classify(g)
	log.Printf("[Normalize] Grid classified as %s (%d rows)", shape, len(g))

	var (
		header   invoice.Header
		customer invoice.Customer
		items    []invoice.LineItem
		payment  *float64
	)

	switch shape {
	case ShapeSingleRow:
		header = headerFromRow(g, 1, srColNumber, srColDate, srColDueDate, srColPlaceOfSupply, now)
		header.Terms = stringOr(g.Cell(1, srColTerms), invoice.DefaultTerms)
		customer = customerFromRow(g, 1, srColCustomerFirst)
		if li, ok := singleRowItem(g); ok {
			items = append(items, li)
		}
		payment = floatPtr(g.Cell(1, srColPaymentMade))

	case ShapeProductsOnly:
		header = headerFromRow(g, -1, 0, 0, 0, 0, now)
		header.Terms = invoice.DefaultTerms
		customer = customerFromRow(g, -1, 0)
		items = itemsFrom(g, 1)

	default: // ShapeFull
		header = headerFromRow(g, 1, 0, 1, 2, 3, now)
		header.Terms = invoice.DefaultTerms
		customer = customerFromRow(g, 2, 0)
		items = itemsFrom(g, 3)
		payment = floatPtr(g.Cell(1, 4))
	}

	rec := invoice.Record{
		Header:   header,
		Customer: customer,
		Items:    items,
		Totals:   invoice.ComputeTotals(items, payment),
	}
	log.Printf("[Normalize] Built record %s: %d items, total %.2f",
		rec.Header.Number, len(rec.Items), rec.Totals.TotalAmount)
	return rec
}

// headerFromRow reads the header block from row (or all defaults when
// row is negative, for grids with no metadata rows at all).
func headerFromRow(g Grid, row, colNumber, colDate, colDue, colPlace int, now time.Time) invoice.Header {
	today := now.Format("02/01/2006")
	if row < 0 {
		return invoice.Header{
			Number:        invoice.DefaultInvoiceNumber,
			Date:          today,
			DueDate:       today,
			PlaceOfSupply: invoice.DefaultPlaceOfSupply,
		}
	}
	return invoice.Header{
		Number:        stringOr(g.Cell(row, colNumber), invoice.DefaultInvoiceNumber),
		Date:          stringOr(g.Cell(row, colDate), today),
		DueDate:       stringOr(g.Cell(row, colDue), today),
		PlaceOfSupply: stringOr(g.Cell(row, colPlace), invoice.DefaultPlaceOfSupply),
	}
}

// customerFromRow reads the six customer fields starting at firstCol, or
// all defaults when row is negative.
func customerFromRow(g Grid, row, firstCol int) invoice.Customer {
	cell := func(off int) string {
		if row < 0 {
			return ""
		}
		return g.Cell(row, firstCol+off)
	}
	return invoice.Customer{
		Name:    stringOr(cell(0), invoice.DefaultCustomerName),
		Address: stringOr(cell(1), invoice.DefaultAddress),
		City:    stringOr(cell(2), invoice.DefaultCity),
		State:   stringOr(cell(3), invoice.DefaultState),
		Pincode: stringOr(cell(4), invoice.DefaultPincode),
		Country: stringOr(cell(5), invoice.DefaultCountry),
	}
}

// itemsFrom consumes line-item rows starting at offset. The loop runs
// while the row exists and its first cell is non-empty; a row only
// becomes an item when description and HSN/SAC are both present. The
// first blank-led row terminates the list.
func itemsFrom(g Grid, offset int) []invoice.LineItem {
	var items []invoice.LineItem
	for i := offset; i < len(g) && g.Cell(i, 0) != ""; i++ {
		if g.Cell(i, 1) == "" {
			continue
		}
		items = append(items, newItem(
			g.Cell(i, 0), g.Cell(i, 1),
			g.Cell(i, 2), g.Cell(i, 3), g.Cell(i, 4), g.Cell(i, 5),
		))
	}
	return items
}

// singleRowItem extracts the one line item packed into the single-row
// layout. The SGST column has no slot in that layout, so it defaults.
func singleRowItem(g Grid) (invoice.LineItem, bool) {
	desc := g.Cell(1, srColDescription)
	if desc == "" {
		return invoice.LineItem{}, false
	}
	return newItem(
		desc, g.Cell(1, srColHSNSAC),
		g.Cell(1, srColQuantity), g.Cell(1, srColRate), g.Cell(1, srColCGSTPercent), "",
	), true
}

func newItem(desc, hsn, qty, rate, cgst, sgst string) invoice.LineItem {
	li := invoice.LineItem{
		Description: desc,
		HSNSAC:      hsn,
		Quantity:    floatOr(qty, invoice.DefaultQuantity),
		Rate:        floatOr(rate, invoice.DefaultRate),
		CGSTPercent: floatOr(cgst, invoice.DefaultGSTPercent),
		SGSTPercent: floatOr(sgst, invoice.DefaultGSTPercent),
	}
	li.Amount = li.Quantity * li.Rate
	return li
}

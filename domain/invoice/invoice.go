package invoice

import (
	"time"

	"github.com/google/uuid"
)

// Default values applied when a header or customer cell is missing or blank.
// Malformed input is never rejected; it degrades to these.
const (
	DefaultInvoiceNumber = "INV-000001"
	DefaultTerms         = "Due on Receipt"
	DefaultPlaceOfSupply = "Gujarat (24)"
	DefaultCustomerName  = "Customer Name"
	DefaultAddress       = "Address Line 1"
	DefaultCity          = "City"
	DefaultState         = "State"
	DefaultPincode       = "000000"
	DefaultCountry       = "India"
)

// Numeric line-item defaults.
const (
	DefaultQuantity   = 1.0
	DefaultRate       = 0.0
	DefaultGSTPercent = 9.0
)

// Header holds the invoice-level metadata block. Dates are free-form
// strings; the render layer normalizes them to DD/MM/YYYY.
type Header struct {
	Number        string `json:"invoiceNumber"`
	Date          string `json:"invoiceDate"`
	Terms         string `json:"terms"`
	DueDate       string `json:"dueDate"`
	PlaceOfSupply string `json:"placeOfSupply"`
}

// Customer holds the bill-to block.
type Customer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
}

// LineItem is a single invoiced good or service. Amount is always
// Quantity*Rate; the CGST/SGST percentages apply to that amount.
type LineItem struct {
	Description string  `json:"description"`
	HSNSAC      string  `json:"hsnSac"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	CGSTPercent float64 `json:"cgstPercent"`
	SGSTPercent float64 `json:"sgstPercent"`
	Amount      float64 `json:"amount"`
}

// CGSTAmount returns the central GST charged on this line.
func (li LineItem) CGSTAmount() float64 {
	return li.Amount * li.CGSTPercent / 100
}

// SGSTAmount returns the state GST charged on this line.
func (li LineItem) SGSTAmount() float64 {
	return li.Amount * li.SGSTPercent / 100
}

// Totals is the rolled-up money block. All sums are plain float64
// arithmetic; no rounding step is applied.
type Totals struct {
	SubTotal    float64 `json:"subTotal"`
	CGSTTotal   float64 `json:"cgstTotal"`
	SGSTTotal   float64 `json:"sgstTotal"`
	TotalAmount float64 `json:"totalAmount"`
	PaymentMade float64 `json:"paymentMade"`
	BalanceDue  float64 `json:"balanceDue"`
}

// Record is one fully normalized invoice. Immutable once produced; a new
// upload builds a fresh Record that replaces the prior one wholesale.
type Record struct {
	ID         string     `json:"id"`
	Header     Header     `json:"header"`
	Customer   Customer   `json:"customer"`
	Items      []LineItem `json:"items"`
	Totals     Totals     `json:"totals"`
	UploadedAt time.Time  `json:"uploadedAt"`
}

// NewRecordID returns a fresh identifier for an invoice record.
func NewRecordID() string {
	return uuid.NewString()
}

// HasItems reports whether there is anything to print or export.
// Render collaborators disable export when this is false.
func (r Record) HasItems() bool {
	return len(r.Items) > 0
}

// ComputeTotals rolls up the line items into invoice totals.
//
// The canonical base amount for every line is Quantity*Rate. A nil
// paymentMade means "fully paid": PaymentMade defaults to TotalAmount so
// BalanceDue comes out zero. BalanceDue has no floor and goes negative
// when the payment exceeds the total.
func ComputeTotals(items []LineItem, paymentMade *float64) Totals {
	var t Totals
	for _, li := range items {
		t.SubTotal += li.Amount
		t.CGSTTotal += li.CGSTAmount()
		t.SGSTTotal += li.SGSTAmount()
	}
	t.TotalAmount = t.SubTotal + t.CGSTTotal + t.SGSTTotal

	if paymentMade != nil {
		t.PaymentMade = *paymentMade
	} else {
		t.PaymentMade = t.TotalAmount
	}
	t.BalanceDue = t.TotalAmount - t.PaymentMade
	return t
}

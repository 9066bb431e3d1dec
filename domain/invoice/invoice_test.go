package invoice

import "testing"

func item(desc string, qty, rate, cgst, sgst float64) LineItem {
	return LineItem{
		Description: desc,
		HSNSAC:      "998800",
		Quantity:    qty,
		Rate:        rate,
		CGSTPercent: cgst,
		SGSTPercent: sgst,
		Amount:      qty * rate,
	}
}

func TestComputeTotals_SumIdentity(t *testing.T) {
	items := []LineItem{
		item("Registration Fee", 1, 847.46, 9, 9),
		item("Additional Service", 2, 100, 9, 9),
	}

	paid := 500.0
	got := ComputeTotals(items, &paid)

	wantSub := 847.46 + 200.0
	if got.SubTotal != wantSub {
		t.Errorf("SubTotal = %v, want %v", got.SubTotal, wantSub)
	}
	// Totals identity holds exactly, no rounding anywhere.
	if got.TotalAmount != got.SubTotal+got.CGSTTotal+got.SGSTTotal {
		t.Errorf("TotalAmount %v != SubTotal+CGSTTotal+SGSTTotal %v",
			got.TotalAmount, got.SubTotal+got.CGSTTotal+got.SGSTTotal)
	}
	if got.PaymentMade != 500 {
		t.Errorf("PaymentMade = %v, want 500", got.PaymentMade)
	}
	if got.BalanceDue != got.TotalAmount-500 {
		t.Errorf("BalanceDue = %v, want %v", got.BalanceDue, got.TotalAmount-500)
	}
}

func TestComputeTotals_PerItemTax(t *testing.T) {
	li := item("Widget", 3, 50, 9, 6)
	if li.Amount != 150 {
		t.Fatalf("Amount = %v, want 150", li.Amount)
	}
	if li.CGSTAmount() != 150*9/100.0 {
		t.Errorf("CGSTAmount = %v", li.CGSTAmount())
	}
	if li.SGSTAmount() != 150*6/100.0 {
		t.Errorf("SGSTAmount = %v", li.SGSTAmount())
	}
}

func TestComputeTotals_NilPaymentMeansFullyPaid(t *testing.T) {
	items := []LineItem{item("Widget", 2, 100, 9, 9)}
	got := ComputeTotals(items, nil)

	if got.PaymentMade != got.TotalAmount {
		t.Errorf("PaymentMade = %v, want TotalAmount %v", got.PaymentMade, got.TotalAmount)
	}
	if got.BalanceDue != 0 {
		t.Errorf("BalanceDue = %v, want 0", got.BalanceDue)
	}
}

func TestComputeTotals_OverpaymentGoesNegative(t *testing.T) {
	items := []LineItem{item("Widget", 1, 100, 0, 0)}
	paid := 150.0
	got := ComputeTotals(items, &paid)
	if got.BalanceDue != -50 {
		t.Errorf("BalanceDue = %v, want -50", got.BalanceDue)
	}
}

func TestComputeTotals_NoItems(t *testing.T) {
	got := ComputeTotals(nil, nil)
	if got.TotalAmount != 0 || got.BalanceDue != 0 {
		t.Errorf("empty totals = %+v, want zeros", got)
	}
}

func TestRecord_HasItems(t *testing.T) {
	var r Record
	if r.HasItems() {
		t.Error("empty record reports items")
	}
	r.Items = []LineItem{item("Widget", 1, 1, 9, 9)}
	if !r.HasItems() {
		t.Error("populated record reports no items")
	}
}

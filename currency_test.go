package tripsplit

import (
	"slices"
	"testing"
)

func TestCurrencySet_Supports(t *testing.T) {
	set := DefaultCurrencies()

	for _, code := range []string{"EUR", "USD", "JPY"} {
		if !set.Supports(code) {
			t.Errorf("Supports(%q) = false, want true", code)
		}
	}
	for _, code := range []string{"XXX", "", "eur"} {
		if set.Supports(code) {
			t.Errorf("Supports(%q) = true, want false", code)
		}
	}
}

func TestCurrencySet_Validate(t *testing.T) {
	set := DefaultCurrencies()

	if err := set.Validate("EUR"); err != nil {
		t.Errorf("Validate(EUR) = %v, want nil", err)
	}
	if err := set.Validate("XXX"); err == nil {
		t.Errorf("Validate(XXX) = nil, want error")
	}
	if err := set.Validate(""); err == nil {
		t.Errorf("Validate(\"\") = nil, want error")
	}
}

func TestCurrencySet_CodesAreSorted(t *testing.T) {
	got := slices.Collect(DefaultCurrencies().Codes())
	if !slices.IsSorted(got) {
		t.Errorf("Codes() = %v, want sorted", got)
	}
	if len(got) != len(DefaultCurrencies()) {
		t.Errorf("Codes() yields %d codes, want %d", len(got), len(DefaultCurrencies()))
	}
}

func TestCurrencySet_CustomSet(t *testing.T) {
	// The currency table is configuration: a trip can restrict itself to a
	// single currency without touching the engine.
	set := CurrencySet{"EUR": DefaultCurrencies()["EUR"]}

	trip := newTestTrip(t)
	trip.Append(
		NewExpense(testDay, "hotel", M(100, "EUR"), "a", "a", "b"),
		NewExpense(testDay, "lunch", M(40, "USD"), "b", "a", "b"),
	)

	sheet := Aggregate(trip, set)
	if _, ok := sheet.TotalExpense["USD"]; ok {
		t.Errorf("restricted set must not account USD")
	}
	assertBalance(t, sheet, "a", "EUR", 50)
}

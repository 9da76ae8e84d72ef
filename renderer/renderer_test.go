package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/tripsplit"
)

var day = tripsplit.NewDate(2026, time.July, 10)

func newTrip(t *testing.T) *tripsplit.Trip {
	t.Helper()
	trip := tripsplit.NewTrip()
	trip.Append(
		tripsplit.NewTraveler(day, "a", "Alice"),
		tripsplit.NewTraveler(day, "b", "Bob"),
		tripsplit.NewExpense(day.Add(1), "hotel", tripsplit.M(100, "EUR"), "a", "a", "b"),
	)
	return trip
}

func TestRenderBalances(t *testing.T) {
	trip := newTrip(t)
	currencies := tripsplit.DefaultCurrencies()
	sheet := tripsplit.Aggregate(trip, currencies)

	got := RenderBalances(NewBalanceReport(trip, sheet, currencies))

	for _, want := range []string{
		"# Trip Balances",
		"From 2026-07-10 to 2026-07-11.",
		"## EUR",
		"| Alice |",
		"| Bob |",
		"Total spent:",
		"100.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderBalances() misses %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "## USD") {
		t.Errorf("RenderBalances() renders a section for an inactive currency:\n%s", got)
	}
}

func TestRenderSettlement(t *testing.T) {
	trip := newTrip(t)
	currencies := tripsplit.DefaultCurrencies()
	sheet := tripsplit.Aggregate(trip, currencies)
	plan := tripsplit.PlanSettlement(sheet, currencies)

	got := RenderSettlement(NewSettlementReport(trip, plan))

	for _, want := range []string{
		"# Settlement Plan",
		"## EUR",
		"Bob pays",
		"to Alice",
		"50.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderSettlement() misses %q in:\n%s", want, got)
		}
	}
}

func TestRenderSettlement_Empty(t *testing.T) {
	got := RenderSettlement(&SettlementReport{})
	if !strings.Contains(got, "Nothing to settle") {
		t.Errorf("RenderSettlement() on empty plan = %q", got)
	}
}

func TestLogMarkdown(t *testing.T) {
	trip := newTrip(t)

	got, err := LogMarkdown(trip)
	if err != nil {
		t.Fatalf("LogMarkdown() error = %v", err)
	}
	for _, want := range []string{
		"## Trip Log",
		"| Date | Transaction |",
		"2026-07-10",
		"Alice joins the trip",
		"split 2 ways",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("LogMarkdown() misses %q in:\n%s", want, got)
		}
	}
}

func TestLogMarkdown_Filtered(t *testing.T) {
	trip := newTrip(t)

	got, err := LogMarkdown(trip, tripsplit.ByCurrency("USD"))
	if err != nil {
		t.Fatalf("LogMarkdown() error = %v", err)
	}
	if !strings.Contains(got, "No transactions.") {
		t.Errorf("LogMarkdown() on empty filter = %q", got)
	}
}

package tripsplit

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeDecodeTrip_RoundTrip(t *testing.T) {
	trip := NewTrip()
	trip.Append(
		NewTraveler(testDay, "a", "Alice"),
		NewTraveler(testDay, "b", "Bob"),
		NewExpense(testDay.Add(1), "hotel", M(100, "EUR"), "a", "a", "b"),
		NewSettlement(testDay.Add(2), "cash", M(50, "EUR"), "b", "a"),
	)

	var buf bytes.Buffer
	if err := EncodeTrip(&buf, trip); err != nil {
		t.Fatalf("EncodeTrip() error = %v", err)
	}

	decoded, err := DecodeTrip(&buf)
	if err != nil {
		t.Fatalf("DecodeTrip() error = %v", err)
	}

	if len(decoded.transactions) != len(trip.transactions) {
		t.Fatalf("decoded %d transactions, want %d", len(decoded.transactions), len(trip.transactions))
	}
	for i, tx := range trip.transactions {
		if !tx.Equal(decoded.transactions[i]) {
			t.Errorf("transaction %d: got %v, want %v", i, decoded.transactions[i], tx)
		}
	}
	if decoded.Traveler("a") == nil || decoded.Traveler("b") == nil {
		t.Errorf("decoded trip lost the roster")
	}
}

func TestDecodeTrip_LegacyUntaggedLineIsExpense(t *testing.T) {
	// A record lacking a "command" tag is normalized to the expense variant
	// at the ingestion boundary.
	input := strings.Join([]string{
		`{"command":"traveler","date":"2026-07-10","id":"a","name":"Alice"}`,
		`{"command":"traveler","date":"2026-07-10","id":"b","name":"Bob"}`,
		`{"date":"2026-07-11","memo":"taxi","paidBy":"a","splitWith":["a","b"],"currency":"EUR","amount":20}`,
	}, "\n")

	trip, err := DecodeTrip(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeTrip() error = %v", err)
	}

	var expenses []Expense
	for _, tx := range trip.Transactions() {
		if e, ok := tx.(Expense); ok {
			expenses = append(expenses, e)
		}
	}
	if len(expenses) != 1 {
		t.Fatalf("decoded %d expenses, want 1", len(expenses))
	}
	e := expenses[0]
	if e.What() != CmdExpense {
		t.Errorf("What() = %q, want %q", e.What(), CmdExpense)
	}
	if !e.Amount.Equal(M(20, "EUR")) || e.PaidBy != "a" || len(e.SplitWith) != 2 {
		t.Errorf("legacy expense decoded as %+v", e)
	}
}

func TestDecodeTrip_UnknownCommand(t *testing.T) {
	_, err := DecodeTrip(strings.NewReader(`{"command":"refund","date":"2026-07-10"}`))
	if err == nil || !strings.Contains(err.Error(), "unknown transaction command") {
		t.Errorf("DecodeTrip() error = %v, want unknown command", err)
	}
}

func TestDecodeTrip_SortsChronologically(t *testing.T) {
	input := strings.Join([]string{
		`{"command":"traveler","date":"2026-07-10","id":"a","name":"Alice"}`,
		`{"command":"expense","date":"2026-07-20","memo":"late","paidBy":"a","splitWith":["a"],"currency":"EUR","amount":10}`,
		`{"command":"expense","date":"2026-07-12","memo":"early","paidBy":"a","splitWith":["a"],"currency":"EUR","amount":10}`,
	}, "\n")

	trip, err := DecodeTrip(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeTrip() error = %v", err)
	}

	var previous Date
	for _, tx := range trip.Transactions() {
		if tx.When().Before(previous) {
			t.Fatalf("transactions are not in chronological order")
		}
		previous = tx.When()
	}
}

func TestEncodeTransaction_StableFieldOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeTransaction(&buf, NewExpense(testDay, "hotel", M(100, "EUR"), "a", "a", "b")); err != nil {
		t.Fatalf("EncodeTransaction() error = %v", err)
	}
	want := `{"command":"expense","date":"2026-07-10","memo":"hotel","paidBy":"a","splitWith":["a","b"],"currency":"EUR","amount":100}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("EncodeTransaction() = %q, want %q", got, want)
	}
}

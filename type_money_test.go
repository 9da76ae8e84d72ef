package tripsplit

import (
	"encoding/json"
	"testing"
)

func TestMoney_Arithmetic(t *testing.T) {
	a := M(10.50, "EUR")
	b := M(4.25, "EUR")

	if got := a.Add(b); !got.Equal(M(14.75, "EUR")) {
		t.Errorf("Add = %v, want 14.75", got)
	}
	if got := a.Sub(b); !got.Equal(M(6.25, "EUR")) {
		t.Errorf("Sub = %v, want 6.25", got)
	}
	if got := a.Neg(); !got.Equal(M(-10.50, "EUR")) {
		t.Errorf("Neg = %v, want -10.50", got)
	}
	if got := M(-3, "EUR").Abs(); !got.Equal(M(3, "EUR")) {
		t.Errorf("Abs = %v, want 3", got)
	}
	if got := a.Min(b); !got.Equal(b) {
		t.Errorf("Min = %v, want %v", got, b)
	}
}

func TestMoney_WeakEmptyCurrency(t *testing.T) {
	// The "" currency is weak: it adopts the other operand's currency.
	got := Money{}.Add(M(5, "EUR"))
	if got.Currency() != "EUR" || !got.Equal(M(5, "EUR")) {
		t.Errorf("zero Money + 5 EUR = %v, want 5 EUR", got)
	}
}

func TestMoney_MismatchedCurrencyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("adding EUR and USD must panic")
		}
	}()
	M(1, "EUR").Add(M(1, "USD"))
}

func TestMoney_SplitBy(t *testing.T) {
	// Division is exact: three thirds add back to the whole.
	third := M(100, "EUR").SplitBy(3)
	sum := third.Add(third).Add(third)
	if !sum.Round().Equal(M(100, "EUR")) {
		t.Errorf("3 * (100/3) rounds to %v, want 100", sum.Round())
	}
	// But each third rounds to 33.33.
	if got := third.Round(); !got.Equal(M(33.33, "EUR")) {
		t.Errorf("(100/3).Round() = %v, want 33.33", got)
	}
}

func TestMoney_Round(t *testing.T) {
	testCases := []struct {
		in       float64
		currency string
		want     float64
	}{
		{in: 1.005, currency: "EUR", want: 1.01}, // half away from zero
		{in: -1.005, currency: "EUR", want: -1.01},
		{in: 1.004, currency: "EUR", want: 1.00},
		{in: 1.5, currency: "JPY", want: 2}, // JPY has no minor unit
	}
	for _, tc := range testCases {
		if got := M(tc.in, tc.currency).Round(); !got.Equal(M(tc.want, tc.currency)) {
			t.Errorf("M(%v, %s).Round() = %v, want %v", tc.in, tc.currency, got, tc.want)
		}
	}
}

func TestMoney_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(M(10.505, "EUR"))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `{"currency":"EUR","amount":10.51}`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := M(0, "EUR").SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want %q", got, "-")
	}
	if got := M(5, "EUR").SignedString(); got[0] != '+' {
		t.Errorf("SignedString(5) = %q, want leading '+'", got)
	}
}

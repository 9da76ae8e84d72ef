package tripsplit

import (
	"strings"
	"testing"
	"time"
)

const splitwiseExport = `{
  "expenses": [
    {
      "description": "Hotel",
      "cost": "120.50",
      "currency_code": "EUR",
      "date": "2026-07-10",
      "paid_by": "a",
      "shared_with": ["a", "b"]
    },
    {
      "description": "Taxi",
      "cost": 18,
      "currency_code": "EUR",
      "date": "2026-07-11",
      "paid_by": "b",
      "shared_with": ["a", "b", "c"]
    }
  ]
}`

func TestImport_Splitwise(t *testing.T) {
	txs, err := Import(strings.NewReader(splitwiseExport), SplitwiseMapping)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("Import() yields %d transactions, want 2", len(txs))
	}

	hotel, ok := txs[0].(Expense)
	if !ok {
		t.Fatalf("first transaction is %T, want Expense", txs[0])
	}
	if hotel.Description() != "Hotel" {
		t.Errorf("Description() = %q, want %q", hotel.Description(), "Hotel")
	}
	// "120.50" is a numeric string in the export; it must parse as a number.
	if !hotel.Amount.Equal(M(120.50, "EUR")) {
		t.Errorf("Amount = %v, want 120.50 EUR", hotel.Amount)
	}
	if hotel.When() != NewDate(2026, time.July, 10) {
		t.Errorf("When() = %v, want 2026-07-10", hotel.When())
	}
	if hotel.PaidBy != "a" || len(hotel.SplitWith) != 2 {
		t.Errorf("hotel decoded as %+v", hotel)
	}

	taxi := txs[1].(Expense)
	if !taxi.Amount.Equal(M(18, "EUR")) || len(taxi.SplitWith) != 3 {
		t.Errorf("taxi decoded as %+v", taxi)
	}
}

func TestImport_CommaDecimalSeparator(t *testing.T) {
	export := `{"expenses":[{"description":"Dinner","cost":"45,90","currency_code":"EUR","date":"2026-07-12","paid_by":"a","shared_with":["a"]}]}`
	txs, err := Import(strings.NewReader(export), SplitwiseMapping)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if got := txs[0].(Expense).Amount; !got.Equal(M(45.90, "EUR")) {
		t.Errorf("Amount = %v, want 45.90 EUR", got)
	}
}

func TestImport_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "not json", input: `hotel;120.50;EUR`},
		{name: "missing records", input: `{"groups":[]}`},
		{name: "bad amount", input: `{"expenses":[{"description":"x","cost":"abc","currency_code":"EUR","date":"2026-07-10","paid_by":"a","shared_with":["a"]}]}`},
		{name: "bad date", input: `{"expenses":[{"description":"x","cost":1,"currency_code":"EUR","date":"someday","paid_by":"a","shared_with":["a"]}]}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Import(strings.NewReader(tc.input), SplitwiseMapping); err == nil {
				t.Errorf("Import() = nil error, want error")
			}
		})
	}
}

func TestImport_CustomMapping(t *testing.T) {
	// A different export shape only needs a different mapping.
	export := `{"data":{"items":[{"what":"Museum","total":"30","ccy":"EUR","on":"2026-07-13","by":"c","among":["a","b","c"]}]}}`
	mapping := ImportMapping{
		Records:     "$.data.items[:]",
		Description: "$.what",
		Amount:      "$.total",
		Currency:    "$.ccy",
		Date:        "$.on",
		PaidBy:      "$.by",
		SplitWith:   "$.among[:]",
	}

	txs, err := Import(strings.NewReader(export), mapping)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("Import() yields %d transactions, want 1", len(txs))
	}
	museum := txs[0].(Expense)
	if museum.PaidBy != "c" || !museum.Amount.Equal(M(30, "EUR")) {
		t.Errorf("museum decoded as %+v", museum)
	}
}

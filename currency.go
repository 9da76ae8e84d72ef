package tripsplit

import (
	"fmt"
	"iter"
	"slices"

	"github.com/Rhymond/go-money"
)

// CurrencySet is the closed enumeration of currencies a trip accounts in.
//
// It is configuration, not algorithm: the aggregation engine consults it to
// decide which transactions participate and at which precision balances are
// reported. Transactions in a currency outside the set are silently excluded
// from aggregation; the data-entry path rejects them up front instead.
type CurrencySet map[string]*money.Currency

// DefaultCurrencies returns the set of currencies supported out of the box.
func DefaultCurrencies() CurrencySet {
	codes := []string{"EUR", "USD", "GBP", "CHF", "JPY", "CAD", "AUD", "SEK", "NOK", "DKK", "CZK", "PLN", "THB"}
	set := make(CurrencySet, len(codes))
	for _, code := range codes {
		set[code] = money.GetCurrency(code)
	}
	return set
}

// Supports reports whether the currency code belongs to the set.
func (s CurrencySet) Supports(code string) bool {
	_, ok := s[code]
	return ok
}

// Validate returns an error if the currency code is not in the set.
func (s CurrencySet) Validate(code string) error {
	if code == "" {
		return fmt.Errorf("currency is missing")
	}
	if !s.Supports(code) {
		return fmt.Errorf("unsupported currency %q, supported: %v", code, slices.Collect(s.Codes()))
	}
	return nil
}

// Codes iterates over the currency codes of the set in lexical order.
func (s CurrencySet) Codes() iter.Seq[string] {
	codes := make([]string, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return slices.Values(codes)
}

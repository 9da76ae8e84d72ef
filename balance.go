package tripsplit

// This file implements the balance aggregation engine: folding the trip's
// transaction list into a per-traveler, per-currency balance sheet.

// CurrencyBalance is the position of one traveler in one currency.
//
// Balance = Paid - Share, then adjusted by settlements. All three values are
// reported rounded to the currency's precision; accumulation is exact.
type CurrencyBalance struct {
	Paid    Money // total amount fronted by the traveler
	Share   Money // the traveler's fair share of all expenses
	Balance Money // net position: positive means the group owes the traveler
}

// BalanceSheet is the per-traveler, per-currency result of folding the
// trip's transactions. It is a derived, immutable snapshot: recomputed from
// scratch on every aggregation, never mutated incrementally.
type BalanceSheet struct {
	PerTraveler  map[ParticipantID]map[string]CurrencyBalance
	TotalExpense map[string]Money
}

// Balances returns the net balance of every traveler in the given currency.
// The returned map is a copy safe to hand to Simplify.
func (s *BalanceSheet) Balances(currency string) map[ParticipantID]Money {
	balances := make(map[ParticipantID]Money)
	for id, perCurrency := range s.PerTraveler {
		if cb, ok := perCurrency[currency]; ok {
			balances[id] = cb.Balance
		}
	}
	return balances
}

// Aggregate folds the trip's transactions into a balance sheet.
//
// For each expense in a supported currency, the full amount is credited to
// the payer's paid total and divided exactly by the size of the split set;
// each member's share grows by that exact fraction. Rounding happens only
// once, when balances are reported. Settlements then shift the net balances
// of payer and receiver without touching paid or share.
//
// Transactions in an unsupported currency, traveler references unknown to
// the roster, and malformed records (empty split set, non-positive amount)
// are silently skipped: aggregation is a best-effort read path that never
// fails on stale or partial data.
func Aggregate(trip *Trip, currencies CurrencySet) *BalanceSheet {
	type accumulator struct {
		paid, share Money
	}
	acc := make(map[ParticipantID]map[string]*accumulator)
	total := make(map[string]Money)

	for traveler := range trip.Travelers() {
		acc[traveler.ID] = make(map[string]*accumulator)
		for code := range currencies.Codes() {
			acc[traveler.ID][code] = &accumulator{paid: M(0, code), share: M(0, code)}
		}
	}
	for code := range currencies.Codes() {
		total[code] = M(0, code)
	}

	// First fold all expenses into paid and share.
	for _, tx := range trip.Transactions() {
		e, ok := tx.(Expense)
		if !ok {
			continue
		}
		code := e.Currency()
		if !currencies.Supports(code) {
			continue
		}
		// Malformed records (hand-edited or legacy files skip entry
		// validation) are excluded rather than faulted.
		if len(e.SplitWith) == 0 || !e.Amount.IsPositive() {
			continue
		}
		total[code] = total[code].Add(e.Amount)
		if payer, known := acc[e.PaidBy]; known {
			payer[code].paid = payer[code].paid.Add(e.Amount)
		}
		perHead := e.Amount.SplitBy(len(e.SplitWith))
		for _, id := range e.SplitWith {
			if member, known := acc[id]; known {
				member[code].share = member[code].share.Add(perHead)
			}
		}
	}

	// Net balances, still exact.
	balance := make(map[ParticipantID]map[string]Money, len(acc))
	for id, perCurrency := range acc {
		balance[id] = make(map[string]Money, len(perCurrency))
		for code, a := range perCurrency {
			balance[id][code] = a.paid.Sub(a.share)
		}
	}

	// Then apply settlements on the net balances.
	for _, tx := range trip.Transactions() {
		s, ok := tx.(Settlement)
		if !ok {
			continue
		}
		code := s.Currency()
		if !currencies.Supports(code) {
			continue
		}
		if !s.Amount.IsPositive() {
			continue
		}
		payer, payerKnown := balance[s.Payer]
		receiver, receiverKnown := balance[s.Receiver]
		if !payerKnown || !receiverKnown {
			continue
		}
		payer[code] = payer[code].Add(s.Amount)
		receiver[code] = receiver[code].Sub(s.Amount)
	}

	// Report, rounding once.
	sheet := &BalanceSheet{
		PerTraveler:  make(map[ParticipantID]map[string]CurrencyBalance, len(acc)),
		TotalExpense: make(map[string]Money, len(total)),
	}
	for id, perCurrency := range acc {
		sheet.PerTraveler[id] = make(map[string]CurrencyBalance, len(perCurrency))
		for code, a := range perCurrency {
			sheet.PerTraveler[id][code] = CurrencyBalance{
				Paid:    a.paid.Round(),
				Share:   a.share.Round(),
				Balance: balance[id][code].Round(),
			}
		}
	}
	for code, amount := range total {
		sheet.TotalExpense[code] = amount.Round()
	}
	return sheet
}

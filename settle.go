package tripsplit

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// This file implements the debt simplification engine: turning the net
// balances of one currency into a short list of traveler-to-traveler
// transfers that zeroes every balance.

// Transfer is a recommended payment from one traveler to another.
type Transfer struct {
	From   ParticipantID `json:"from"`
	To     ParticipantID `json:"to"`
	Amount Money         `json:"amount"`
}

// SettlementPlan maps a currency code to the ordered transfers that settle it.
type SettlementPlan map[string][]Transfer

// settleTolerance is the amount under which a balance is considered settled.
// It absorbs the floating residue left by the division-based share
// computation.
var settleTolerance = decimal.New(1, -2) // 0.01

// party is one side of the matching: a traveler and the amount they still
// owe (ower) or are owed (owee).
type party struct {
	id     ParticipantID
	amount decimal.Decimal
}

// Simplify computes an ordered list of transfers that zeroes the given net
// balances of a single currency. All balances are expected to share that one
// currency; the plan's currency is taken from any non-zero entry.
//
// Travelers owing money (balance below -0.01) and travelers owed money
// (balance above +0.01) are each sorted by amount descending, ties broken by
// ascending traveler id to keep the output reproducible. The matching is
// greedy: the largest ower pays the largest owee the smaller of the two
// amounts, and whoever drops under the tolerance is retired. The result is
// at most owers+owees-1 transfers; finding the true minimum number of
// transfers is a subset-partition search and is not attempted.
func Simplify(balances map[ParticipantID]Money) []Transfer {
	var owers, owees []party
	var currency string

	for id, balance := range balances {
		if balance.Currency() != "" {
			currency = balance.Currency()
		}
		v := balance.Round()
		switch {
		case v.value.LessThan(settleTolerance.Neg()):
			owers = append(owers, party{id: id, amount: v.value.Neg()})
		case v.value.GreaterThan(settleTolerance):
			owees = append(owees, party{id: id, amount: v.value})
		}
	}

	byOwed := func(a, b party) int {
		if c := b.amount.Cmp(a.amount); c != 0 {
			return c
		}
		return strings.Compare(string(a.id), string(b.id))
	}
	slices.SortFunc(owers, byOwed)
	slices.SortFunc(owees, byOwed)

	transfers := make([]Transfer, 0, len(owers)+len(owees))
	i, j := 0, 0
	for i < len(owers) && j < len(owees) {
		ower, owee := &owers[i], &owees[j]
		amount := decimal.Min(ower.amount, owee.amount)
		transfers = append(transfers, Transfer{
			From:   ower.id,
			To:     owee.id,
			Amount: M(amount, currency),
		})
		ower.amount = ower.amount.Sub(amount).Round(2)
		owee.amount = owee.amount.Sub(amount).Round(2)
		if ower.amount.LessThanOrEqual(settleTolerance) {
			i++
		}
		if owee.amount.LessThanOrEqual(settleTolerance) {
			j++
		}
	}
	return transfers
}

// PlanSettlement runs Simplify independently on every currency of the
// balance sheet and collects the per-currency transfer lists. Currencies
// with no unsettled balance yield no entry.
func PlanSettlement(sheet *BalanceSheet, currencies CurrencySet) SettlementPlan {
	plan := make(SettlementPlan)
	for code := range currencies.Codes() {
		transfers := Simplify(sheet.Balances(code))
		if len(transfers) > 0 {
			plan[code] = transfers
		}
	}
	return plan
}

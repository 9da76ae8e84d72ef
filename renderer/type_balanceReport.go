package renderer

import (
	"github.com/etnz/tripsplit"
)

// BalanceRow is the position of one traveler in one currency, ready for display.
type BalanceRow struct {
	Name    string
	Paid    tripsplit.Money
	Share   tripsplit.Money
	Balance tripsplit.Money
}

// BalanceSection groups the balance rows of a single currency.
type BalanceSection struct {
	Currency string
	Rows     []BalanceRow
	Total    tripsplit.Money
}

// BalanceReport is the view model for the balance report.
type BalanceReport struct {
	From     tripsplit.Date
	To       tripsplit.Date
	Sections []BalanceSection
}

// NewBalanceReport builds the balance report view from a trip and its
// aggregated balance sheet. Rows follow the roster's declaration order, and
// only currencies with activity get a section.
func NewBalanceReport(trip *tripsplit.Trip, sheet *tripsplit.BalanceSheet, currencies tripsplit.CurrencySet) *BalanceReport {
	report := &BalanceReport{
		From: trip.OldestTransactionDate(),
		To:   trip.NewestTransactionDate(),
	}

	for code := range currencies.Codes() {
		total, ok := sheet.TotalExpense[code]
		if !ok || total.IsZero() {
			continue
		}
		section := BalanceSection{Currency: code, Total: total}
		for traveler := range trip.Travelers() {
			cb := sheet.PerTraveler[traveler.ID][code]
			section.Rows = append(section.Rows, BalanceRow{
				Name:    traveler.Name,
				Paid:    cb.Paid,
				Share:   cb.Share,
				Balance: cb.Balance,
			})
		}
		report.Sections = append(report.Sections, section)
	}
	return report
}

package renderer

import (
	"sort"

	"github.com/etnz/tripsplit"
)

// TransferRow is one suggested reimbursement, with traveler names resolved.
type TransferRow struct {
	From   string
	To     string
	Amount tripsplit.Money
}

// SettlementSection groups the transfers of a single currency.
type SettlementSection struct {
	Currency  string
	Transfers []TransferRow
}

// SettlementReport is the view model for the settlement plan report.
type SettlementReport struct {
	Sections []SettlementSection
}

// NewSettlementReport builds the settlement report view from a plan,
// resolving traveler ids to display names against the trip's roster.
func NewSettlementReport(trip *tripsplit.Trip, plan tripsplit.SettlementPlan) *SettlementReport {
	name := func(id tripsplit.ParticipantID) string {
		if p := trip.Traveler(id); p != nil {
			return p.Name
		}
		return string(id)
	}

	report := &SettlementReport{}
	for _, code := range sortedCurrencies(plan) {
		section := SettlementSection{Currency: code}
		for _, transfer := range plan[code] {
			section.Transfers = append(section.Transfers, TransferRow{
				From:   name(transfer.From),
				To:     name(transfer.To),
				Amount: transfer.Amount,
			})
		}
		report.Sections = append(report.Sections, section)
	}
	return report
}

func sortedCurrencies(plan tripsplit.SettlementPlan) []string {
	codes := make([]string, 0, len(plan))
	for code := range plan {
		codes = append(codes, code)
	}
	// Deterministic report order regardless of map iteration.
	sort.Strings(codes)
	return codes
}

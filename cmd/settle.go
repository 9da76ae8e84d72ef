package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tripsplit"
	"github.com/etnz/tripsplit/renderer"
	"github.com/google/subcommands"
)

type settleCmd struct {
	record bool
	date   string
}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "compute the reimbursements that square everyone" }
func (*settleCmd) Usage() string {
	return `trip settle [-record] [-d <date>]

  Computes, per currency, a short list of traveler-to-traveler payments that
  zeroes every balance. With -record, the payments are also appended to the
  trip as settlements, so run it when the money has actually changed hands.
`
}

func (p *settleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.record, "record", false, "Append the computed payments to the trip as settlements.")
	f.StringVar(&p.date, "d", "0d", "Date for recorded settlements (defaults to today).")
}

func (p *settleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	trip, err := DecodeTrip()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	sheet := tripsplit.Aggregate(trip, Currencies())
	plan := tripsplit.PlanSettlement(sheet, Currencies())
	printMarkdown(renderer.RenderSettlement(renderer.NewSettlementReport(trip, plan)))

	if !p.record {
		return subcommands.ExitSuccess
	}

	day, err := tripsplit.ParseDate(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	for _, transfers := range plan {
		for _, t := range transfers {
			tx := tripsplit.NewSettlement(day, "settle up", t.Amount, t.From, t.To)
			if status := EncodeTransaction(tx); status != subcommands.ExitSuccess {
				return status
			}
		}
	}
	return subcommands.ExitSuccess
}

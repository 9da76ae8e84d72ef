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

type balancesCmd struct{}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "show what each traveler paid, owes and is owed" }
func (*balancesCmd) Usage() string {
	return `trip balances

  Computes, per currency, the amount each traveler fronted, their fair share
  of the expenses, and their net balance. A positive balance means the group
  owes the traveler.
`
}

func (*balancesCmd) SetFlags(f *flag.FlagSet) {}

func (p *balancesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	trip, err := DecodeTrip()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	sheet := tripsplit.Aggregate(trip, Currencies())
	printMarkdown(renderer.RenderBalances(renderer.NewBalanceReport(trip, sheet, Currencies())))

	return subcommands.ExitSuccess
}

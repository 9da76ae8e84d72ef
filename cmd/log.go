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

type logCmd struct {
	traveler string
	currency string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "display the chronological log of the trip" }
func (*logCmd) Usage() string {
	return `trip log [-t <traveler>] [-c <currency>]

  Lists every transaction of the trip in chronological order: traveler
  declarations, expenses and settlements. Filters restrict the log to one
  traveler or one currency.
`
}

func (p *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.traveler, "t", "", "Show only transactions involving this traveler id.")
	f.StringVar(&p.currency, "c", "", "Show only transactions in this currency.")
}

func (p *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	trip, err := DecodeTrip()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var filters []func(tripsplit.Transaction) bool
	if p.traveler != "" {
		filters = append(filters, tripsplit.ByTraveler(tripsplit.ParticipantID(p.traveler)))
	}
	if p.currency != "" {
		filters = append(filters, tripsplit.ByCurrency(p.currency))
	}

	output, err := renderer.LogMarkdown(trip, filters...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(output)

	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tripsplit"
	"github.com/google/subcommands"
)

type travelerCmd struct {
	date string
	id   string
	name string
}

func (*travelerCmd) Name() string     { return "traveler" }
func (*travelerCmd) Synopsis() string { return "declare a traveler taking part in the trip" }
func (*travelerCmd) Usage() string {
	return `trip traveler -id <id> -name <name> [-d <date>]

  Declares a traveler. The id is the short handle used in every other command;
  the name is for display in reports.

Usage Examples:
$ trip traveler -id alice -name "Alice Martin"
`
}

func (p *travelerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "0d", "Date of the declaration (defaults to today).")
	f.StringVar(&p.id, "id", "", "Short identifier for the traveler.")
	f.StringVar(&p.name, "name", "", "Display name of the traveler.")
}

func (p *travelerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := tripsplit.ParseDate(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	return EncodeTransaction(tripsplit.NewTraveler(day, tripsplit.ParticipantID(p.id), p.name))
}

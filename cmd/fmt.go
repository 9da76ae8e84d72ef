package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tripsplit"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the trip file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `trip fmt

  Validates and formats the trip file. This command reads all transactions,
  validates them, applies available quick-fixes (like resolving an empty split
  set to everyone), sorts them by date, and writes them back in a canonical
  JSONL format. Invalid transactions are kept as-is with a warning.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	trip, err := DecodeTrip()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	formatted := tripsplit.NewTrip()
	for _, tx := range trip.Transactions() {
		ntx, err := formatted.Validate(tx, Currencies())
		if err != nil {
			// Keep the original record: fmt cleans up, it never loses data.
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			ntx = tx
		}
		formatted.Append(ntx)
	}

	tmp := *tripFile + ".tmp"
	w, err := os.Create(tmp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", tmp, err)
		return subcommands.ExitFailure
	}
	if err := tripsplit.EncodeTrip(w, formatted); err != nil {
		w.Close()
		os.Remove(tmp)
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", tmp, err)
		return subcommands.ExitFailure
	}
	if err := w.Close(); err != nil {
		os.Remove(tmp)
		fmt.Fprintf(os.Stderr, "Error closing %q: %v\n", tmp, err)
		return subcommands.ExitFailure
	}
	if err := os.Rename(tmp, *tripFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error replacing %q: %v\n", *tripFile, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Successfully formatted %s\n", *tripFile)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tripsplit"
	"github.com/google/subcommands"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import expenses from another app's JSON export" }
func (*importCmd) Usage() string {
	return `trip import -f <export.json>

  Reads a Splitwise-style JSON export and appends its expenses to the trip.
  Imported expenses are validated like hand-entered ones: the payer and the
  sharers must be declared travelers.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "f", "", "Path to the JSON export to import.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f <export.json> is required.")
		return subcommands.ExitUsageError
	}

	r, err := os.Open(p.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", p.file, err)
		return subcommands.ExitFailure
	}
	defer r.Close()

	txs, err := tripsplit.Import(r, tripsplit.SplitwiseMapping)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", p.file, err)
		return subcommands.ExitFailure
	}

	for _, tx := range txs {
		if status := EncodeTransaction(tx); status != subcommands.ExitSuccess {
			return status
		}
	}

	fmt.Printf("Imported %d expenses from %s\n", len(txs), p.file)
	return subcommands.ExitSuccess
}

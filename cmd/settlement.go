package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tripsplit"
	"github.com/google/subcommands"
)

type settlementCmd struct {
	date     string
	memo     string
	amount   float64
	currency string
	payer    string
	receiver string
}

func (*settlementCmd) Name() string     { return "settlement" }
func (*settlementCmd) Synopsis() string { return "record a reimbursement between two travelers" }
func (*settlementCmd) Usage() string {
	return `trip settlement -a <amount> -from <traveler> -to <traveler> [-c <currency>] [-m <memo>] [-d <date>]

  Records that a traveler reimbursed another outside the shared expenses.
  It shifts both balances and leaves the expense history untouched.

Usage Examples:
$ trip settlement -a 50 -from bob -to alice -m "cash at the airport"
`
}

func (p *settlementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "0d", "Date of the reimbursement (defaults to today).")
	f.StringVar(&p.memo, "m", "", "Description of the reimbursement.")
	f.Float64Var(&p.amount, "a", 0, "Amount transferred.")
	f.StringVar(&p.currency, "c", "", "Currency of the amount (defaults to the app currency).")
	f.StringVar(&p.payer, "from", "", "Traveler id who paid.")
	f.StringVar(&p.receiver, "to", "", "Traveler id who received the payment.")
}

func (p *settlementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := tripsplit.ParseDate(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	currency := p.currency
	if currency == "" {
		currency = *defaultCurrency
	}

	tx := tripsplit.NewSettlement(day, p.memo, tripsplit.M(p.amount, currency),
		tripsplit.ParticipantID(p.payer), tripsplit.ParticipantID(p.receiver))
	return EncodeTransaction(tx)
}

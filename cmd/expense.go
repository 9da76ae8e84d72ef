package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/tripsplit"
	"github.com/google/subcommands"
)

type expenseCmd struct {
	date     string
	memo     string
	amount   float64
	currency string
	paidBy   string
	split    string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record a shared expense" }
func (*expenseCmd) Usage() string {
	return `trip expense -a <amount> -by <traveler> [-c <currency>] [-with <id,id,...>] [-m <memo>] [-d <date>]

  Records an expense fronted by one traveler. The amount is divided evenly
  across the travelers in -with; leave -with empty to split with everyone.

Usage Examples:
$ trip expense -a 120.50 -by alice -m "hotel"
$ trip expense -a 40 -c USD -by bob -with alice,bob -m "lunch"
`
}

func (p *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "0d", "Date of the expense (defaults to today).")
	f.StringVar(&p.memo, "m", "", "Description of the expense.")
	f.Float64Var(&p.amount, "a", 0, "Amount fronted by the payer.")
	f.StringVar(&p.currency, "c", "", "Currency of the amount (defaults to the app currency).")
	f.StringVar(&p.paidBy, "by", "", "Traveler id who fronted the amount.")
	f.StringVar(&p.split, "with", "", "Comma-separated traveler ids sharing the cost (defaults to everyone).")
}

func (p *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := tripsplit.ParseDate(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	currency := p.currency
	if currency == "" {
		currency = *defaultCurrency
	}

	var splitWith []tripsplit.ParticipantID
	for _, id := range strings.Split(p.split, ",") {
		if id = strings.TrimSpace(id); id != "" {
			splitWith = append(splitWith, tripsplit.ParticipantID(id))
		}
	}

	tx := tripsplit.NewExpense(day, p.memo, tripsplit.M(p.amount, currency), tripsplit.ParticipantID(p.paidBy), splitWith...)
	return EncodeTransaction(tx)
}

package renderer

import (
	"fmt"

	"github.com/etnz/tripsplit"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx tripsplit.Transaction) string {
	switch v := tx.(type) {
	case tripsplit.Traveler:
		return fmt.Sprintf("%s joins the trip as %q", v.Name, v.ID)
	case tripsplit.Expense:
		return fmt.Sprintf("%s paid %s for %s, split %d ways", v.PaidBy, v.Amount, v.Description(), len(v.SplitWith))
	case tripsplit.Settlement:
		return fmt.Sprintf("%s paid back %s to %s", v.Payer, v.Amount, v.Receiver)
	default:
		return string(tx.What())
	}
}

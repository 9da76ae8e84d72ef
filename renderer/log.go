package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/tripsplit"
)

// LogMarkdown generates a markdown log of the trip's transactions, optionally
// restricted by the given filters.
func LogMarkdown(trip *tripsplit.Trip, filters ...func(tripsplit.Transaction) bool) (string, error) {
	r := &logRenderer{Builder: &strings.Builder{}}

	r.Printf("## Trip Log\n\n")
	r.Printf("| Date | Transaction |\n")
	r.Printf("|:---|:---|\n")
	empty := true
	for _, tx := range trip.Transactions(filters...) {
		r.Printf("| %s | %s |\n", tx.When(), Transaction(tx))
		empty = false
	}
	if empty {
		return "## Trip Log\n\nNo transactions.\n", nil
	}
	return r.String(), nil
}

// logRenderer formats the output of the log generator into a markdown string.
type logRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *logRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

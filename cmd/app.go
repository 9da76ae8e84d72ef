// Package cmd implements the CLI application to manage a shared trip.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/tripsplit"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application.
// A main package ranges over Commands to register them, and Execute() runs the
// user-selected one.
var Commands = []subcommands.Command{
	&travelerCmd{},
	&expenseCmd{},
	&settlementCmd{},
	&balancesCmd{},
	&settleCmd{},
	&logCmd{},
	&fmtCmd{},
	&importCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var tripFile = flag.String("trip-file", envOr("TRIP_FILE", "trip.jsonl"), "Path to the trip file containing transactions (JSONL format)")
var defaultCurrency = flag.String("currency", envOr("TRIP_DEFAULT_CURRENCY", "EUR"), "Default currency for amounts given without one")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Currencies returns the currency set the application accounts in.
func Currencies() tripsplit.CurrencySet { return tripsplit.DefaultCurrencies() }

// DecodeTrip decodes the trip from the application's default trip file.
// If the file does not exist, it returns a new empty trip.
func DecodeTrip() (*tripsplit.Trip, error) {
	f, err := os.Open(*tripFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// If the file doesn't exist, it's an empty trip.
			return tripsplit.NewTrip(), nil
		}
		return nil, fmt.Errorf("could not open trip file %q: %w", *tripFile, err)
	}
	defer f.Close()

	trip, err := tripsplit.DecodeTrip(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode trip file %q: %w", *tripFile, err)
	}
	return trip, nil
}

// EncodeTransaction validates a transaction against the current trip and
// appends it to the app default trip file.
func EncodeTransaction(tx tripsplit.Transaction) subcommands.ExitStatus {
	trip, err := DecodeTrip()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx, err = trip.Validate(tx, Currencies())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(*tripFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening trip file %q: %v\n", *tripFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := tripsplit.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to trip file %q: %v\n", *tripFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended transaction to %s\n", *tripFile)
	return subcommands.ExitSuccess
}

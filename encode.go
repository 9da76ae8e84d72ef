package tripsplit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// amountCmd is a specialized struct to read a ledger amount in two fields.
type amountCmd struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountCmd) Money() Money {
	return M(a.Amount, a.Currency)
}

// DecodeTrip decodes transactions from a stream of JSONL data, decodes each
// line into the appropriate transaction struct, and returns a sorted Trip.
//
// A legacy line lacking a "command" tag is normalized to the expense variant
// here, at the ingestion boundary, so the engine only ever sees tagged
// transactions.
func DecodeTrip(r io.Reader) (*Trip, error) {
	trip := NewTrip()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Command CommandType `json:"command"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify command in line %q: %w", string(lineBytes), err)
		}
		if identifier.Command == "" {
			// legacy records default to expense.
			identifier.Command = CmdExpense
		}

		var decodedTx Transaction

		switch identifier.Command {
		case CmdTraveler:
			var tx Traveler
			if err := json.Unmarshal(lineBytes, &tx); err != nil {
				return nil, err
			}
			tx.Command = CmdTraveler
			decodedTx = tx
		case CmdExpense:
			var tx Expense
			if err := tx.UnmarshalJSON(lineBytes); err != nil {
				return nil, err
			}
			tx.Command = CmdExpense
			decodedTx = tx
		case CmdSettlement:
			var tx Settlement
			if err := tx.UnmarshalJSON(lineBytes); err != nil {
				return nil, err
			}
			tx.Command = CmdSettlement
			decodedTx = tx
		default:
			return nil, fmt.Errorf("unknown transaction command: %q", identifier.Command)
		}

		trip.Append(decodedTx)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	return trip, nil
}

// EncodeTransaction marshals a single transaction to JSON and writes it to
// the writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeTrip persists the trip's transactions to an io.Writer in JSONL
// format, in chronological order.
func EncodeTrip(w io.Writer, trip *Trip) error {
	trip.stableSort()
	for _, tx := range trip.transactions {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

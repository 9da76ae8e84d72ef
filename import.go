package tripsplit

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// This file maps third-party JSON exports (group-expense apps usually offer
// one) into trip transactions. The mapping is driven by jsonpath expressions
// so a new export shape is a new mapping, not new code.

// ImportMapping describes where to find expense fields inside a foreign JSON
// export. Records selects the list of expense objects; the other expressions
// are evaluated against each record.
type ImportMapping struct {
	Records     string // jsonpath to the list of expense records
	Description string // jsonpath to the expense description
	Amount      string // jsonpath to the amount (number or numeric string)
	Currency    string // jsonpath to the currency code
	Date        string // jsonpath to the date
	PaidBy      string // jsonpath to the payer id
	SplitWith   string // jsonpath to the list of sharer ids
}

// SplitwiseMapping extracts expenses from a Splitwise-style group export.
var SplitwiseMapping = ImportMapping{
	Records:     "$.expenses[:]",
	Description: "$.description",
	Amount:      "$.cost",
	Currency:    "$.currency_code",
	Date:        "$.date",
	PaidBy:      "$.paid_by",
	SplitWith:   "$.shared_with[:]",
}

// Import reads a foreign JSON export from 'r' and maps it into expense
// transactions using the given mapping. The returned transactions are not
// yet validated against a trip.
func Import(r io.Reader, m ImportMapping) ([]Transaction, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse import document: %w", err)
	}

	jrecords, err := jsonpath.Get(m.Records, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating records path %q: %w", m.Records, err)
	}
	records, ok := jrecords.([]any)
	if !ok {
		// jsonpath is never clear about whether it returns a list or a
		// single answer; normalize to a list.
		records = []any{jrecords}
	}

	txs := make([]Transaction, 0, len(records))
	for i, record := range records {
		description, err := jstring(record, m.Description)
		if err != nil {
			return nil, fmt.Errorf("record %d: description: %w", i, err)
		}
		amount, err := jnumber(record, m.Amount)
		if err != nil {
			return nil, fmt.Errorf("record %d: amount: %w", i, err)
		}
		currency, err := jstring(record, m.Currency)
		if err != nil {
			return nil, fmt.Errorf("record %d: currency: %w", i, err)
		}
		day, err := jstring(record, m.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d: date: %w", i, err)
		}
		on, err := ParseDate(day)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		paidBy, err := jstring(record, m.PaidBy)
		if err != nil {
			return nil, fmt.Errorf("record %d: paidBy: %w", i, err)
		}
		sharers, err := jstrings(record, m.SplitWith)
		if err != nil {
			return nil, fmt.Errorf("record %d: splitWith: %w", i, err)
		}

		splitWith := make([]ParticipantID, 0, len(sharers))
		for _, s := range sharers {
			splitWith = append(splitWith, ParticipantID(s))
		}
		txs = append(txs, NewExpense(on, description, M(amount, currency), ParticipantID(paidBy), splitWith...))
	}
	return txs, nil
}

// jstring evaluates a jsonpath expression expected to yield a string.
func jstring(doc any, path string) (string, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return "", fmt.Errorf("error evaluating %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("path %q: not a string: %v", path, jval)
	}
	return s, nil
}

// jnumber evaluates a jsonpath expression expected to yield a number.
// Some exports serialize amounts as strings, so both forms are accepted.
func jnumber(doc any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return 0, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		v = strings.ReplaceAll(v, ",", ".")
		val, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("path %q: invalid numeric string %q: %w", path, v, err)
		}
		return val, nil
	default:
		return 0, fmt.Errorf("path %q: neither a number nor a string: %v", path, jval)
	}
}

// jstrings evaluates a jsonpath expression expected to yield a list of strings.
func jstrings(doc any, path string) ([]string, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		jlist = []any{jval}
	}
	result := make([]string, 0, len(jlist))
	for _, item := range jlist {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("path %q: not a string: %v", path, item)
		}
		result = append(result, s)
	}
	return result, nil
}

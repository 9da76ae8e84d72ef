package tripsplit

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// ParticipantID uniquely identifies a traveler within a trip.
type ParticipantID string

// Participant is a traveler taking part in the trip.
type Participant struct {
	ID   ParticipantID `json:"id"`
	Name string        `json:"name"`
}

// CommandType is a typed string for identifying transaction commands.
type CommandType string

// Command types used for identifying transactions.
const (
	CmdTraveler   CommandType = "traveler"
	CmdExpense    CommandType = "expense"
	CmdSettlement CommandType = "settlement"
)

// Transaction defines the common interface for all events recorded in the
// trip ledger.
type Transaction interface {
	What() CommandType // What returns the command type of the transaction (e.g., "expense").
	When() Date        // When returns the date on which the transaction occurred.
	Equal(Transaction) bool
	Validate(trip *Trip, currencies CurrencySet) (Transaction, error)
}

type baseCmd struct {
	Command CommandType `json:"command"`        // Command specifies the type of transaction.
	Date    Date        `json:"date"`           // Date is the date when the transaction took place.
	Memo    string      `json:"memo,omitempty"` // Memo provides an optional description for the transaction.
}

// What returns the command name for the transaction.
func (t baseCmd) What() CommandType { return t.Command }

// When returns the date of the transaction.
func (t baseCmd) When() Date { return t.Date }

// MarshalJSON implements the json.Marshaler interface for baseCmd.
func (t baseCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.Command)
	w.Append("date", t.Date)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// Validate checks the base command fields. It sets the date to today if it's
// zero. It's meant to be embedded in other transaction validation methods.
func (t *baseCmd) Validate() {
	if t.Date == (Date{}) {
		t.Date = Today()
	}
}

// --- Traveler Command ---

// Traveler declares a participant of the trip.
// This maps a trip-internal identifier to a display name. Travelers are
// declared once and never deleted while referenced by a transaction.
type Traveler struct {
	baseCmd
	ID   ParticipantID `json:"id"`
	Name string        `json:"name"`
}

// NewTraveler creates a new Traveler declaration.
func NewTraveler(day Date, id ParticipantID, name string) Traveler {
	return Traveler{
		baseCmd: baseCmd{Command: CmdTraveler, Date: day},
		ID:      id,
		Name:    name,
	}
}

// MarshalJSON implements the json.Marshaler interface for Traveler.
func (t Traveler) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("id", t.ID)
	w.Append("name", t.Name)
	return w.MarshalJSON()
}

func (t Traveler) Equal(other Transaction) bool {
	o, ok := other.(Traveler)
	return ok && t.baseCmd == o.baseCmd && t.ID == o.ID && t.Name == o.Name
}

// Validate checks the Traveler declaration's fields.
// It ensures the identifier is not already declared.
func (t Traveler) Validate(trip *Trip, currencies CurrencySet) (Transaction, error) {
	t.baseCmd.Validate()
	if t.ID == "" {
		return t, errors.New("traveler id is missing")
	}
	if t.Name == "" {
		return t, errors.New("traveler name is missing")
	}
	if trip.Traveler(t.ID) != nil {
		return t, fmt.Errorf("traveler %q already declared in trip", t.ID)
	}
	return t, nil
}

// --- Expense Command ---

// Expense represents a shared cost: one traveler fronts the whole amount, and
// it is divided evenly across everyone in SplitWith (possibly including the
// payer).
type Expense struct {
	baseCmd
	Amount    Money           // Amount is the total cost fronted by the payer.
	PaidBy    ParticipantID   // PaidBy is the traveler who fronted the amount.
	SplitWith []ParticipantID // SplitWith are the travelers sharing the cost.
}

// NewExpense creates a new Expense transaction.
func NewExpense(day Date, memo string, amount Money, paidBy ParticipantID, splitWith ...ParticipantID) Expense {
	return Expense{
		baseCmd:   baseCmd{Command: CmdExpense, Date: day, Memo: memo},
		Amount:    amount,
		PaidBy:    paidBy,
		SplitWith: splitWith,
	}
}

// Description returns the free-text description of the expense.
func (t Expense) Description() string { return t.Memo }

func (t Expense) Currency() string { return t.Amount.Currency() }

// MarshalJSON implements the json.Marshaler interface for Expense.
func (t Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("paidBy", t.PaidBy)
	w.Append("splitWith", t.SplitWith)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Expense.
// It handles the custom structure where amount and currency are separate fields.
func (t *Expense) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseCmd
		amountCmd
		PaidBy    ParticipantID   `json:"paidBy"`
		SplitWith []ParticipantID `json:"splitWith"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.baseCmd = temp.baseCmd
	t.Amount = temp.Money()
	t.PaidBy = temp.PaidBy
	t.SplitWith = temp.SplitWith
	return nil
}

func (t Expense) Equal(other Transaction) bool {
	o, ok := other.(Expense)
	return ok && t.baseCmd == o.baseCmd && t.Amount.Equal(o.Amount) &&
		t.PaidBy == o.PaidBy && slices.Equal(t.SplitWith, o.SplitWith)
}

// Validate checks the Expense transaction's fields. It ensures the amount is
// positive, the currency is supported, and every referenced traveler is
// declared. An empty split set is a quick fix for "split with everyone";
// duplicate ids in the split set are removed.
func (t Expense) Validate(trip *Trip, currencies CurrencySet) (Transaction, error) {
	t.baseCmd.Validate()

	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("expense amount must be positive, got %v", t.Amount)
	}
	if err := currencies.Validate(t.Amount.Currency()); err != nil {
		return t, fmt.Errorf("invalid currency for expense: %w", err)
	}
	if trip.Traveler(t.PaidBy) == nil {
		return t, fmt.Errorf("payer %q not declared in trip", t.PaidBy)
	}

	if len(t.SplitWith) == 0 {
		// quick fix, split with everyone.
		for traveler := range trip.Travelers() {
			t.SplitWith = append(t.SplitWith, traveler.ID)
		}
	}
	if len(t.SplitWith) == 0 {
		return t, errors.New("expense split set is empty")
	}

	seen := make(map[ParticipantID]struct{}, len(t.SplitWith))
	distinct := make([]ParticipantID, 0, len(t.SplitWith))
	for _, id := range t.SplitWith {
		if trip.Traveler(id) == nil {
			return t, fmt.Errorf("traveler %q in split set not declared in trip", id)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}
	t.SplitWith = distinct

	return t, nil
}

// --- Settlement Command ---

// Settlement records that a traveler already reimbursed another outside the
// shared-cost accounting. It adjusts both balances directly and contributes
// no share.
type Settlement struct {
	baseCmd
	Amount   Money         // Amount is the quantity of cash transferred.
	Payer    ParticipantID // Payer is the traveler who paid.
	Receiver ParticipantID // Receiver is the traveler who received the payment.
}

// NewSettlement creates a new Settlement transaction.
func NewSettlement(day Date, memo string, amount Money, payer, receiver ParticipantID) Settlement {
	return Settlement{
		baseCmd:  baseCmd{Command: CmdSettlement, Date: day, Memo: memo},
		Amount:   amount,
		Payer:    payer,
		Receiver: receiver,
	}
}

func (t Settlement) Currency() string { return t.Amount.Currency() }

// MarshalJSON implements the json.Marshaler interface for Settlement.
func (t Settlement) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("payer", t.Payer)
	w.Append("receiver", t.Receiver)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Settlement.
func (t *Settlement) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseCmd
		amountCmd
		Payer    ParticipantID `json:"payer"`
		Receiver ParticipantID `json:"receiver"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.baseCmd = temp.baseCmd
	t.Amount = temp.Money()
	t.Payer = temp.Payer
	t.Receiver = temp.Receiver
	return nil
}

func (t Settlement) Equal(other Transaction) bool {
	o, ok := other.(Settlement)
	return ok && t.baseCmd == o.baseCmd && t.Amount.Equal(o.Amount) &&
		t.Payer == o.Payer && t.Receiver == o.Receiver
}

// Validate checks the Settlement transaction's fields. It ensures the amount
// is positive, the currency is supported, the payer and receiver are distinct
// and both declared.
func (t Settlement) Validate(trip *Trip, currencies CurrencySet) (Transaction, error) {
	t.baseCmd.Validate()

	if !t.Amount.IsPositive() {
		return t, fmt.Errorf("settlement amount must be positive, got %v", t.Amount)
	}
	if err := currencies.Validate(t.Amount.Currency()); err != nil {
		return t, fmt.Errorf("invalid currency for settlement: %w", err)
	}
	if t.Payer == t.Receiver {
		return t, fmt.Errorf("settlement payer and receiver are the same traveler %q", t.Payer)
	}
	if trip.Traveler(t.Payer) == nil {
		return t, fmt.Errorf("payer %q not declared in trip", t.Payer)
	}
	if trip.Traveler(t.Receiver) == nil {
		return t, fmt.Errorf("receiver %q not declared in trip", t.Receiver)
	}
	return t, nil
}

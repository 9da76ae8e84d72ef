package tripsplit

import (
	"fmt"
	"iter"
	"sort"
)

// Trip represents the full record of a shared trip: the roster of travelers
// and the list of transactions.
//
// In a Trip transactions are always in chronological order.
type Trip struct {
	travelers    []Participant
	index        map[ParticipantID]*Participant // index travelers by id
	transactions []Transaction
}

// NewTrip creates an empty trip.
func NewTrip() *Trip {
	return &Trip{
		travelers:    make([]Participant, 0),
		index:        make(map[ParticipantID]*Participant),
		transactions: make([]Transaction, 0),
	}
}

// Traveler returns the participant declared with this id, or nil if unknown.
func (t *Trip) Traveler(id ParticipantID) *Participant {
	return t.index[id]
}

// Travelers returns an iterator over the trip's participants in declaration order.
func (t *Trip) Travelers() iter.Seq[Participant] {
	return func(yield func(Participant) bool) {
		for _, p := range t.travelers {
			if !yield(p) {
				return
			}
		}
	}
}

// Append appends transactions to this trip and maintains the chronological
// order of transactions.
func (t *Trip) Append(txs ...Transaction) {
	t.transactions = append(t.transactions, txs...)
	// process traveler declarations into the roster.
	t.processTx(txs...)
	t.stableSort()
}

func (t *Trip) processTx(txs ...Transaction) {
	for _, tx := range txs {
		if v, ok := tx.(Traveler); ok {
			if _, exists := t.index[v.ID]; exists {
				continue
			}
			t.travelers = append(t.travelers, Participant{ID: v.ID, Name: v.Name})
		}
	}
	// appending may have moved the backing array, reindex.
	t.index = make(map[ParticipantID]*Participant, len(t.travelers))
	for i := range t.travelers {
		t.index[t.travelers[i].ID] = &t.travelers[i]
	}
}

// Transactions returns an iterator that yields each transaction in
// chronological order. Optional filters restrict the yielded transactions to
// those accepted by at least one filter.
func (t *Trip) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range t.transactions {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Validate checks a transaction for correctness and applies quick fixes where
// applicable (e.g., resolving an empty split set to "everyone"). It returns
// the validated (and potentially modified) transaction or an error detailing
// the validation failure.
func (t *Trip) Validate(tx Transaction, currencies CurrencySet) (Transaction, error) {
	ntx, err := tx.Validate(t, currencies)
	if err != nil {
		return ntx, fmt.Errorf("invalid %s transaction on %v: %w", tx.What(), tx.When(), err)
	}
	return ntx, nil
}

// stableSort sorts the trip by transaction date. The sort is stable, meaning
// transactions on the same day maintain their original relative order.
func (t *Trip) stableSort() {
	sort.SliceStable(t.transactions, func(i, j int) bool {
		return t.transactions[i].When().Before(t.transactions[j].When())
	})
}

// OldestTransactionDate returns the date of the earliest transaction in the
// trip, or the zero date if the trip has no transactions.
func (t *Trip) OldestTransactionDate() Date {
	if len(t.transactions) == 0 {
		return Date{}
	}
	return t.transactions[0].When()
}

// NewestTransactionDate returns the date of the latest transaction in the
// trip, or the zero date if the trip has no transactions.
func (t *Trip) NewestTransactionDate() Date {
	if len(t.transactions) == 0 {
		return Date{}
	}
	return t.transactions[len(t.transactions)-1].When()
}

// AllCurrencies iterates over all currencies that appear in the trip's
// transactions, in lexical order.
func (t *Trip) AllCurrencies() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		ordered := make([]string, 0)
		for _, tx := range t.transactions {
			var cur string
			switch v := tx.(type) {
			case Expense:
				cur = v.Currency()
			case Settlement:
				cur = v.Currency()
			default:
				continue
			}
			if _, ok := visited[cur]; !ok {
				visited[cur] = struct{}{}
				ordered = append(ordered, cur)
			}
		}
		sort.Strings(ordered)
		for _, cur := range ordered {
			if !yield(cur) {
				return
			}
		}
	}
}

// ByTraveler returns a predicate that filters transactions involving a given
// traveler, as payer, receiver, or member of an expense's split set.
func ByTraveler(id ParticipantID) func(Transaction) bool {
	return func(tx Transaction) bool {
		switch v := tx.(type) {
		case Expense:
			if v.PaidBy == id {
				return true
			}
			for _, s := range v.SplitWith {
				if s == id {
					return true
				}
			}
			return false
		case Settlement:
			return v.Payer == id || v.Receiver == id
		case Traveler:
			return v.ID == id
		default:
			return false
		}
	}
}

// ByCurrency returns a predicate that filters transactions by currency.
func ByCurrency(currency string) func(Transaction) bool {
	return func(tx Transaction) bool {
		switch v := tx.(type) {
		case Expense:
			return v.Currency() == currency
		case Settlement:
			return v.Currency() == currency
		default:
			return false
		}
	}
}

package tripsplit

import (
	"encoding/json"
	"testing"
)

func TestJSONObjectWriter_FieldOrder(t *testing.T) {
	var w jsonObjectWriter
	w.Append("b", 2).Append("a", 1)

	data, err := json.Marshal(&w)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	// Fields keep insertion order, not lexical order.
	if want := `{"b":2,"a":1}`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestJSONObjectWriter_Optional(t *testing.T) {
	var w jsonObjectWriter
	w.Append("id", "a").Optional("memo", "").Optional("name", "Alice")

	data, err := json.Marshal(&w)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `{"id":"a","name":"Alice"}`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestJSONObjectWriter_EmbedFrom(t *testing.T) {
	var w jsonObjectWriter
	w.EmbedFrom(struct {
		Command string `json:"command"`
	}{Command: "expense"}).Append("amount", 10)

	data, err := json.Marshal(&w)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `{"command":"expense","amount":10}`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestJSONObjectWriter_Empty(t *testing.T) {
	var w jsonObjectWriter
	data, err := json.Marshal(&w)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{}` {
		t.Errorf("Marshal() = %s, want {}", data)
	}
}

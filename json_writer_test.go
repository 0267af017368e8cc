package folio

import (
	"encoding/json"
	"testing"
)

func TestJSONObjectWriterKeepsOrder(t *testing.T) {
	var w jsonObjectWriter
	w.Append("b", 1)
	w.Append("a", "x")
	data, err := json.Marshal(&w)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if got := string(data); got != `{"b":1,"a":"x"}` {
		t.Errorf("got %s, want the keys in insertion order", got)
	}
}

func TestJSONObjectWriterOptional(t *testing.T) {
	var w jsonObjectWriter
	w.Optional("empty", "")
	w.Optional("zero", 0)
	w.Append("kept", 1)
	data, err := json.Marshal(&w)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if got := string(data); got != `{"kept":1}` {
		t.Errorf("got %s, want zero values omitted", got)
	}
}

func TestJSONObjectWriterEmpty(t *testing.T) {
	var w jsonObjectWriter
	data, err := json.Marshal(&w)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("got %s, want {}", data)
	}
}

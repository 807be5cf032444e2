package core

import (
	"encoding/json"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"-1", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Money{Cents: 1234})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "12.34" {
		t.Fatalf("expected 12.34, got %s", b)
	}

	var m Money
	if err := json.Unmarshal([]byte("12.345"), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.Cents != 1235 {
		t.Fatalf("expected rounding to 1235 cents, got %d", m.Cents)
	}

	// Balance can legitimately be negative on the wire.
	if err := json.Unmarshal([]byte("-50"), &m); err != nil {
		t.Fatalf("unmarshal negative: %v", err)
	}
	if m.Cents != -5000 {
		t.Fatalf("expected -5000 cents, got %d", m.Cents)
	}
}

func TestMoneyString(t *testing.T) {
	if got := (Money{Cents: 50}).String(); got != "0.50" {
		t.Fatalf("expected 0.50, got %s", got)
	}
	if got := (Money{Cents: -5000}).String(); got != "-50.00" {
		t.Fatalf("expected -50.00, got %s", got)
	}
}

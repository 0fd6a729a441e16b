package core

import "testing"

func TestQuote_IsValid(t *testing.T) {
	q := Quote{
		Symbol: "2330",
		Market: MarketListed,
		Price:  608.50,
		Volume: 25000000,
	}

	if !q.IsValid() {
		t.Error("expected valid quote")
	}

	invalid := Quote{Symbol: "", Price: 0}
	if invalid.IsValid() {
		t.Error("expected invalid quote")
	}
}

func TestConnectionState_Ready(t *testing.T) {
	tests := []struct {
		state    ConnectionState
		expected bool
	}{
		{StateDisconnected, false},
		{StateTesting, false},
		{StateConnected, true},
		{StateFailed, false},
		{StateManual, true},
	}

	for _, tc := range tests {
		if got := tc.state.Ready(); got != tc.expected {
			t.Errorf("%s.Ready() = %v, want %v", tc.state, got, tc.expected)
		}
	}
}

func TestSeriesPoint_IsValid(t *testing.T) {
	p := SeriesPoint{HistoryPoint: HistoryPoint{Date: "2026-08-28", Close: 605.0}}
	if !p.IsValid() {
		t.Error("expected valid point")
	}

	zero := SeriesPoint{HistoryPoint: HistoryPoint{Date: "2026-08-29"}}
	if zero.IsValid() {
		t.Error("point without price should be invalid")
	}
}

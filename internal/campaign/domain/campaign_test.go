package domain

import (
	"testing"
	"time"
)

func TestRate(t *testing.T) {
	cases := []struct {
		part, total, want int
	}{
		{13, 50, 26},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{5, 5, 100},
		{0, 10, 0},
		{3, 0, 0}, // never divides by zero
	}
	for _, tc := range cases {
		if got := Rate(tc.part, tc.total); got != tc.want {
			t.Fatalf("Rate(%d, %d) = %d, want %d", tc.part, tc.total, got, tc.want)
		}
	}
}

func TestRecalculateAndTouch(t *testing.T) {
	s := Statistics{
		ConnectionsSent:     8,
		ConnectionsAccepted: 3,
		MessagesSent:        4,
		MessagesReplied:     1,
	}
	s.Recalculate()
	if s.AcceptanceRate != 38 {
		t.Fatalf("expected acceptance rate 38, got %d", s.AcceptanceRate)
	}
	if s.ResponseRate != 25 {
		t.Fatalf("expected response rate 25, got %d", s.ResponseRate)
	}

	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s.Touch(at)
	if s.LastActivity == nil || !s.LastActivity.Equal(at) {
		t.Fatalf("expected last activity %v, got %v", at, s.LastActivity)
	}
}

package domain

import "testing"

func TestCanTransitionOnlyMovesForward(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusNew, StatusConnectionSent, true},
		{StatusNew, StatusMessageReplied, true}, // skipping stages is allowed
		{StatusConnectionSent, StatusConnected, true},
		{StatusConnected, StatusMessageSent, true},
		{StatusConnectionSent, StatusNew, false},
		{StatusConnected, StatusConnectionSent, false},
		{StatusMessageReplied, StatusMessageSent, false},
		{StatusConnected, StatusConnected, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Fatalf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestCanTransitionTerminalAndHoldStates(t *testing.T) {
	// Archived and paused are reachable from anywhere.
	for _, from := range []Status{StatusNew, StatusConnected, StatusMessageReplied, StatusConnectionFailed} {
		if !CanTransition(from, StatusArchived) {
			t.Fatalf("expected %s -> archived to be allowed", from)
		}
		if !CanTransition(from, StatusPaused) {
			t.Fatalf("expected %s -> paused to be allowed", from)
		}
	}

	// connection_failed only follows a pending request.
	if !CanTransition(StatusConnectionSent, StatusConnectionFailed) {
		t.Fatalf("expected connection_sent -> connection_failed to be allowed")
	}
	for _, from := range []Status{StatusNew, StatusConnected, StatusMessageSent} {
		if CanTransition(from, StatusConnectionFailed) {
			t.Fatalf("expected %s -> connection_failed to be rejected", from)
		}
	}

	// Nothing resumes from archived or paused through the lifecycle.
	if CanTransition(StatusArchived, StatusConnected) {
		t.Fatalf("expected archived -> connected to be rejected")
	}
	if CanTransition(StatusPaused, StatusConnectionSent) {
		t.Fatalf("expected paused -> connection_sent to be rejected")
	}
}

func TestAccepted(t *testing.T) {
	accepted := []Status{StatusConnected, StatusMessageSent, StatusMessageReplied}
	for _, s := range accepted {
		p := Prospect{Status: s}
		if !p.Accepted() {
			t.Fatalf("expected %s to imply acceptance", s)
		}
	}
	for _, s := range []Status{StatusNew, StatusConnectionSent, StatusConnectionFailed, StatusArchived} {
		p := Prospect{Status: s}
		if p.Accepted() {
			t.Fatalf("expected %s not to imply acceptance", s)
		}
	}
}

package campaign

import "testing"

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusActive, StatusPaused, StatusCompleted, StatusCancelled} {
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	for _, s := range []Status{"", "archived", "DRAFT", "Active"} {
		if s.Valid() {
			t.Fatalf("expected %s to be invalid", s)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	if !StatusCompleted.Terminal() {
		t.Fatal("expected completed to be terminal")
	}
	if !StatusCancelled.Terminal() {
		t.Fatal("expected cancelled to be terminal")
	}
	for _, s := range []Status{StatusDraft, StatusActive, StatusPaused} {
		if s.Terminal() {
			t.Fatalf("expected %s to be non-terminal", s)
		}
	}
	if Status("archived").Terminal() {
		t.Fatal("unknown status must not report terminal")
	}
}

func TestStatusTransitionTable(t *testing.T) {
	all := []Status{StatusDraft, StatusActive, StatusPaused, StatusCompleted, StatusCancelled}
	allowed := map[Status]map[Status]bool{
		StatusDraft:     {StatusActive: true, StatusCancelled: true},
		StatusActive:    {StatusPaused: true, StatusCompleted: true, StatusCancelled: true},
		StatusPaused:    {StatusActive: true, StatusCompleted: true, StatusCancelled: true},
		StatusCompleted: {},
		StatusCancelled: {},
	}

	for _, from := range all {
		for _, to := range all {
			got := from.CanTransitionTo(to)
			want := allowed[from][to]
			if got != want {
				t.Errorf("%s -> %s: got %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestStatusNoSelfTransitions(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusActive, StatusPaused, StatusCompleted, StatusCancelled} {
		if s.CanTransitionTo(s) {
			t.Fatalf("%s must not transition to itself", s)
		}
	}
}

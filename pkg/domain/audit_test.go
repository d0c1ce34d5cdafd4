package domain

import (
	"testing"
	"time"
)

func TestEventCalculateHashDeterminism(t *testing.T) {
	event := &Event{
		ID:        "e1",
		Action:    "program.snapshot",
		Actor:     ActorHuman,
		Timestamp: time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC),
		PrevHash:  "prev",
	}

	first := event.CalculateHash()
	second := event.CalculateHash()
	if first != second {
		t.Fatalf("expected deterministic hash: %s vs %s", first, second)
	}

	event.ID = "e2"
	if first == event.CalculateHash() {
		t.Fatalf("hash should change when ID changes")
	}
}

func TestEventCalculateHash_MetadataOrder(t *testing.T) {
	base := Event{
		ID:        "e1",
		Action:    "sample.add",
		Actor:     ActorHuman,
		Timestamp: time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC),
	}

	a := base
	a.Metadata = map[string]interface{}{"pv": 100.0, "ev": 95.0}
	b := base
	b.Metadata = map[string]interface{}{"ev": 95.0, "pv": 100.0}

	if a.CalculateHash() != b.CalculateHash() {
		t.Fatal("hash must not depend on metadata key order")
	}
}

func chainOf(t *testing.T, actions ...string) []Event {
	t.Helper()
	events := make([]Event, 0, len(actions))
	prevHash := ""
	for i, action := range actions {
		e := Event{
			ID:        "e" + string(rune('1'+i)),
			Action:    action,
			Actor:     ActorHuman,
			Timestamp: time.Date(2026, time.January, 1, 12, i, 0, 0, time.UTC),
			PrevHash:  prevHash,
		}
		e.Hash = e.CalculateHash()
		prevHash = e.Hash
		events = append(events, e)
	}
	return events
}

func TestVerifyChain(t *testing.T) {
	events := chainOf(t, "workspace.init", "sample.add", "program.snapshot")

	if got := VerifyChain(events); got != -1 {
		t.Errorf("VerifyChain(intact) = %d, want -1", got)
	}

	if got := VerifyChain(nil); got != -1 {
		t.Errorf("VerifyChain(empty) = %d, want -1", got)
	}
}

func TestVerifyChain_DetectsTampering(t *testing.T) {
	t.Run("mutated action", func(t *testing.T) {
		events := chainOf(t, "workspace.init", "sample.add", "program.snapshot")
		events[1].Action = "sample.remove"
		if got := VerifyChain(events); got != 1 {
			t.Errorf("VerifyChain = %d, want 1", got)
		}
	})

	t.Run("broken back link", func(t *testing.T) {
		events := chainOf(t, "workspace.init", "sample.add", "program.snapshot")
		events[2].PrevHash = "forged"
		if got := VerifyChain(events); got != 2 {
			t.Errorf("VerifyChain = %d, want 2", got)
		}
	})

	t.Run("removed event", func(t *testing.T) {
		events := chainOf(t, "workspace.init", "sample.add", "program.snapshot")
		truncated := append([]Event{events[0]}, events[2])
		if got := VerifyChain(truncated); got != 1 {
			t.Errorf("VerifyChain = %d, want 1", got)
		}
	})
}

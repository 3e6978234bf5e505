package event

import "testing"

func TestQueue_DrainInSubmissionOrder(t *testing.T) {
	q := NewQueue[int]()
	for i := 1; i <= 3; i++ {
		q.Push(i)
	}
	if q.Len() != 3 {
		t.Fatalf("expected 3 pending, got %d", q.Len())
	}
	got := q.Drain()
	for i, v := range got {
		if v != i+1 {
			t.Fatalf("item %d = %d, want %d", i, v, i+1)
		}
	}
	if q.Len() != 0 || q.Drain() != nil {
		t.Fatal("queue should be empty after drain")
	}
}

func TestQueue_PushDuringDrainWaitsForNextTick(t *testing.T) {
	q := NewQueue[string]()
	q.Push("a")
	for _, item := range q.Drain() {
		q.Push(item + "'")
	}
	if q.Len() != 1 {
		t.Fatalf("expected the re-queued item to wait, got %d pending", q.Len())
	}
	if got := q.Drain(); len(got) != 1 || got[0] != "a'" {
		t.Fatalf("unexpected second drain %v", got)
	}
}

func TestDispatcher_FansOutByType(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(TurnApplied, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(TurnApplied, ListenerFunc(func(Event) { order = append(order, "second") }))
	d.Subscribe(UnitDefeated, ListenerFunc(func(Event) { order = append(order, "defeat") }))

	d.Dispatch(Event{Type: TurnApplied})
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("unexpected dispatch order %v", order)
	}

	var nilDispatcher *Dispatcher
	nilDispatcher.Dispatch(Event{Type: TurnApplied})
}

func TestAction_String(t *testing.T) {
	if Wait().Kind.String() != "wait" || Attack(3).Kind.String() != "attack" {
		t.Fatal("unexpected action names")
	}
	if ActionKind(9).String() != "unknown" {
		t.Fatal("out of range kind should be unknown")
	}
}

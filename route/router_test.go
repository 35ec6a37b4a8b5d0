package route

import "testing"

func TestCommitNotifiesInOrder(t *testing.T) {
	r, err := NewRouter(Home)
	if err != nil {
		t.Fatalf("NewRouter failed: %v", err)
	}

	var calls []string
	r.Subscribe(func(from, to string) { calls = append(calls, "a:"+from+">"+to) })
	r.Subscribe(func(from, to string) { calls = append(calls, "b:"+from+">"+to) })

	if err := r.Commit(About); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	want := []string{"a:/>/about", "b:/>/about"}
	if len(calls) != 2 || calls[0] != want[0] || calls[1] != want[1] {
		t.Errorf("Expected %v, got %v", want, calls)
	}

	// Repeat commit is silent
	if err := r.Commit(About); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if len(calls) != 2 {
		t.Errorf("Expected no notification for same route, got %v", calls)
	}
}

func TestUnknownRoutesRejected(t *testing.T) {
	if _, err := NewRouter("/nowhere"); err == nil {
		t.Error("Expected error for unknown initial route")
	}
	r, _ := NewRouter(Home)
	if err := r.Commit("/nowhere"); err == nil {
		t.Error("Expected error for unknown route")
	}
	if r.Current() != Home {
		t.Errorf("Expected current unchanged, got %s", r.Current())
	}
}

func TestCycleAndIndex(t *testing.T) {
	r, _ := NewRouter(Projects)
	if r.Next() != Home {
		t.Errorf("Expected wrap to home, got %s", r.Next())
	}
	if p, ok := ByIndex(2); !ok || p != About {
		t.Errorf("Expected key 2 -> about, got %s %v", p, ok)
	}
	if _, ok := ByIndex(9); ok {
		t.Error("Expected out of range index to fail")
	}
}

func TestHistory(t *testing.T) {
	r, _ := NewRouter(Home)
	_ = r.Commit(About)
	_ = r.Commit(Projects)
	h := r.History()
	if len(h) != 3 || h[0] != Home || h[2] != Projects {
		t.Errorf("Unexpected history %v", h)
	}
	h[0] = "mutated"
	if r.History()[0] != Home {
		t.Error("History must return a copy")
	}
}

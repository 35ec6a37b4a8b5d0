package status

import (
	"sync"
	"testing"
)

func TestAtomicFloatZeroValue(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Errorf("Expected zero value 0.0, got %f", f.Get())
	}
	f.Set(4.34)
	if f.Get() != 4.34 {
		t.Errorf("Expected 4.34, got %f", f.Get())
	}
}

func TestMetricMapCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Floats.Get(KeyEnergy)
	b := r.Floats.Get(KeyEnergy)
	if a != b {
		t.Fatal("Expected same pointer for repeated Get")
	}
	a.Set(12)
	if b.Get() != 12 {
		t.Errorf("Expected shared value 12, got %f", b.Get())
	}
}

func TestSnapshotSorted(t *testing.T) {
	r := NewRegistry()
	r.Strings.Get(KeyRoute).Store("/about")
	r.Floats.Get(KeyEnergy).Set(3)
	r.Ints.Get(KeyTicks).Store(7)
	r.Bools.Get(KeyAudioActive).Store(true)

	snap := r.Snapshot()
	if len(snap) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(snap))
	}
	for i := 1; i < len(snap); i++ {
		if snap[i-1].Key > snap[i].Key {
			t.Errorf("Snapshot not sorted: %q before %q", snap[i-1].Key, snap[i].Key)
		}
	}
}

func TestConcurrentGetSet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				r.Floats.Get(KeyEnergy).Set(float64(n))
				_ = r.Floats.Get(KeyEnergy).Get()
			}
		}(i)
	}
	wg.Wait()
	if r.Floats.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", r.Floats.Count())
	}
}

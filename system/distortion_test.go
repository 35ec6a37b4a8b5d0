package system

import (
	"math"
	"testing"
	"time"

	"github.com/jagjit/cosmos-folio/status"
)

func TestDistortionScaleMapping(t *testing.T) {
	tests := []struct {
		energy float64
		want   float64
	}{
		{0, 0},
		{75, 25},
		{150, 50},
		{300, 50},
	}
	for _, tt := range tests {
		if got := DistortionScale(tt.energy); got != tt.want {
			t.Errorf("DistortionScale(%v): expected %v, got %v", tt.energy, tt.want, got)
		}
	}
	if got := DistortionSeed(12); got != 60 {
		t.Errorf("Expected seed 60, got %v", got)
	}
}

func TestDistortionAtRestIsZero(t *testing.T) {
	d := NewDistortionSystem("bg", 1, status.NewRegistry())
	d.OnTick(0, 16*time.Millisecond)
	for x := 0.0; x < 50; x += 7 {
		for y := 0.0; y < 50; y += 5 {
			if dx, dy := d.Displace(x, y); dx != 0 || dy != 0 {
				t.Fatalf("Expected zero displacement at rest, got (%v, %v)", dx, dy)
			}
		}
	}
	if dc, dr := d.DisplaceCells(10, 10); dc != 0 || dr != 0 {
		t.Errorf("Expected zero cell offset, got (%d, %d)", dc, dr)
	}
}

func TestDistortionBoundedByScale(t *testing.T) {
	reg := status.NewRegistry()
	d := NewDistortionSystem("bg", 1, reg)
	d.OnTick(90, 16*time.Millisecond)

	f := d.Frame()
	if f.Scale != 30 || f.Seed != 450 {
		t.Fatalf("Expected scale 30 seed 450, got %+v", f)
	}
	if got := reg.Floats.Get(status.KeyDistortion).Get(); got != 30 {
		t.Errorf("Expected published scale 30, got %v", got)
	}

	moved := false
	for x := 0.0; x < 80; x += 3 {
		dx, dy := d.Displace(x, x/2)
		if math.Abs(dx) > f.Scale || math.Abs(dy) > f.Scale {
			t.Fatalf("Displacement (%v, %v) exceeds scale %v", dx, dy, f.Scale)
		}
		if dx != 0 || dy != 0 {
			moved = true
		}
	}
	if !moved {
		t.Error("Expected nonzero displacement under energy")
	}
}

func TestDistortionDeterministicSeed(t *testing.T) {
	a := NewDistortionSystem("a", 99, status.NewRegistry())
	b := NewDistortionSystem("b", 99, status.NewRegistry())
	a.OnTick(40, 0)
	b.OnTick(40, 0)
	ax, ay := a.Displace(12.5, 3.25)
	bx, by := b.Displace(12.5, 3.25)
	if ax != bx || ay != by {
		t.Errorf("Expected identical fields, got (%v, %v) vs (%v, %v)", ax, ay, bx, by)
	}
}

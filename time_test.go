package montage

import (
	"errors"
	"math"
	"testing"
)

func TestNewRationalTimeRejectsBadRate(t *testing.T) {
	if _, err := NewRationalTime(10, 0); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("rate 0: err = %v, want ErrInvalidRate", err)
	}
	if _, err := NewRationalTime(10, -24); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("rate -24: err = %v, want ErrInvalidRate", err)
	}
	if _, err := NewRationalTime(10, math.NaN()); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("rate NaN: err = %v, want ErrInvalidRate", err)
	}
}

func TestFromSeconds(t *testing.T) {
	rt, err := FromSeconds(2, 24)
	if err != nil {
		t.Fatalf("FromSeconds failed: %v", err)
	}
	if rt.Value != 48 {
		t.Errorf("Value = %g, want 48", rt.Value)
	}
	if rt.Seconds() != 2 {
		t.Errorf("Seconds() = %g, want 2", rt.Seconds())
	}
}

func TestRescaledPreservesInstant(t *testing.T) {
	rt, _ := NewRationalTime(48, 24)
	scaled := rt.Rescaled(48)
	if scaled.Value != 96 || scaled.Rate != 48 {
		t.Errorf("Rescaled(48) = {%g, %g}, want {96, 48}", scaled.Value, scaled.Rate)
	}
	if scaled.Seconds() != rt.Seconds() {
		t.Errorf("Seconds changed: %g vs %g", scaled.Seconds(), rt.Seconds())
	}
}

func TestCrossRateArithmetic(t *testing.T) {
	a, _ := NewRationalTime(24, 24) // 1s
	b, _ := NewRationalTime(30, 30) // 1s

	sum := a.Add(b)
	if sum.Rate != 24 {
		t.Errorf("Add result rate = %g, want 24 (receiver's domain)", sum.Rate)
	}
	if sum.Value != 48 {
		t.Errorf("Add result value = %g, want 48", sum.Value)
	}

	diff := a.Sub(b)
	if diff.Value != 0 {
		t.Errorf("Sub result value = %g, want 0", diff.Value)
	}
	if a.Cmp(b) != 0 {
		t.Errorf("Cmp(1s, 1s) = %d, want 0", a.Cmp(b))
	}
}

func TestTimeRangeEndTimeExclusive(t *testing.T) {
	start, _ := NewRationalTime(10, 24)
	dur, _ := NewRationalTime(20, 24)
	r, err := NewTimeRange(start, dur)
	if err != nil {
		t.Fatalf("NewTimeRange failed: %v", err)
	}
	if r.EndTime().Value != 30 {
		t.Errorf("EndTime = %g, want 30", r.EndTime().Value)
	}
	if !r.Contains(start) {
		t.Error("range should contain its own start")
	}
	if r.Contains(r.EndTime()) {
		t.Error("range must not contain its exclusive end")
	}
}

func TestEmptyRangeOverlapsNothing(t *testing.T) {
	zero, _ := NewRationalTime(0, 24)
	ten, _ := NewRationalTime(10, 24)
	empty := TimeRange{StartTime: zero, Duration: zero}
	full := TimeRange{StartTime: zero, Duration: ten}

	if empty.Overlaps(full) {
		t.Error("empty range must not overlap anything")
	}
	if full.Overlaps(empty) {
		t.Error("nothing overlaps an empty range")
	}
	if !full.Overlaps(full) {
		t.Error("a nonempty range overlaps itself")
	}
}

func TestAlmostEqualAcrossRates(t *testing.T) {
	a, _ := NewRationalTime(1, 3)
	b := a.Rescaled(7).Rescaled(3)
	if !a.AlmostEqual(b) {
		t.Errorf("round-tripped rescale should compare almost equal: %v vs %v", a, b)
	}
}

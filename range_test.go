package montage

import (
	"errors"
	"testing"
)

func TestTrackSequentialLayout(t *testing.T) {
	track := NewVideoTrack("V1")
	appendAll(t, track,
		newTestClip(t, "A", 0, 48),
		newTestGap(t, 24),
		newTestClip(t, "B", 0, 72),
	)

	wantStarts := []float64{0, 48, 72}
	wantDurs := []float64{48, 24, 72}
	for i := range wantStarts {
		r, err := track.RangeOfChildAtIndex(i)
		if err != nil {
			t.Fatalf("RangeOfChildAtIndex(%d) failed: %v", i, err)
		}
		if r.StartTime.Value != wantStarts[i] {
			t.Errorf("child %d start = %g, want %g", i, r.StartTime.Value, wantStarts[i])
		}
		if r.Duration.Value != wantDurs[i] {
			t.Errorf("child %d duration = %g, want %g", i, r.Duration.Value, wantDurs[i])
		}
	}

	tr, err := track.TrimmedRange()
	if err != nil {
		t.Fatalf("TrimmedRange failed: %v", err)
	}
	if tr.StartTime.Value != 0 {
		t.Errorf("trimmed start = %g, want 0", tr.StartTime.Value)
	}
	if tr.Duration.Value != 144 {
		t.Errorf("trimmed duration = %g, want 144", tr.Duration.Value)
	}
}

func TestStackLayeredLayout(t *testing.T) {
	stack := NewStack("S")
	short := NewVideoTrack("short")
	appendAll(t, short, newTestClip(t, "A", 0, 48))
	long := NewVideoTrack("long")
	appendAll(t, long, newTestClip(t, "B", 0, 72))
	if err := stack.Append(short); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := stack.Append(long); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	tr, err := stack.TrimmedRange()
	if err != nil {
		t.Fatalf("TrimmedRange failed: %v", err)
	}
	if tr.Duration.Value != 72 {
		t.Errorf("stack duration = %g, want 72 (max, not sum)", tr.Duration.Value)
	}

	for i := 0; i < 2; i++ {
		r, err := stack.RangeOfChildAtIndex(i)
		if err != nil {
			t.Fatalf("RangeOfChildAtIndex(%d) failed: %v", i, err)
		}
		if r.StartTime.Value != 0 {
			t.Errorf("stack child %d start = %g, want 0", i, r.StartTime.Value)
		}
	}
}

func TestEmptyCompositionRanges(t *testing.T) {
	track := NewVideoTrack("V1")
	if _, err := track.TrimmedRange(); !errors.Is(err, ErrEmptyComposition) {
		t.Errorf("empty track TrimmedRange: err = %v, want ErrEmptyComposition", err)
	}
	stack := NewStack("S")
	if _, err := stack.TrimmedRange(); !errors.Is(err, ErrEmptyComposition) {
		t.Errorf("empty stack TrimmedRange: err = %v, want ErrEmptyComposition", err)
	}
	if _, err := track.RangeOfChildAtIndex(0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("RangeOfChildAtIndex(0) on empty: err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestTransitionOccupiesNoWidth(t *testing.T) {
	track := NewVideoTrack("V1")
	dissolve, err := NewDissolve("cut", frames(t, 6), frames(t, 6))
	if err != nil {
		t.Fatalf("NewDissolve failed: %v", err)
	}
	appendAll(t, track, newTestClip(t, "A", 0, 24), dissolve, newTestClip(t, "B", 0, 24))

	tr, err := track.TrimmedRange()
	if err != nil {
		t.Fatalf("TrimmedRange failed: %v", err)
	}
	if tr.Duration.Value != 48 {
		t.Errorf("duration with transition = %g, want 48", tr.Duration.Value)
	}

	// The clip after the transition starts where the first clip ends.
	r, err := track.RangeOfChildAtIndex(2)
	if err != nil {
		t.Fatalf("RangeOfChildAtIndex(2) failed: %v", err)
	}
	if r.StartTime.Value != 24 {
		t.Errorf("clip B start = %g, want 24", r.StartTime.Value)
	}

	// The transition itself sits zero-width at the cut.
	tw, err := dissolve.RangeInParent()
	if err != nil {
		t.Fatalf("transition RangeInParent failed: %v", err)
	}
	if tw.StartTime.Value != 24 || tw.Duration.Value != 0 {
		t.Errorf("transition range = (%g, %g), want (24, 0)", tw.StartTime.Value, tw.Duration.Value)
	}
}

func TestRangeInParent(t *testing.T) {
	track := NewVideoTrack("V1")
	clip := newTestClip(t, "A", 0, 48)
	gap := newTestGap(t, 24)
	appendAll(t, track, clip, gap)

	r, err := gap.RangeInParent()
	if err != nil {
		t.Fatalf("RangeInParent failed: %v", err)
	}
	if r.StartTime.Value != 48 || r.Duration.Value != 24 {
		t.Errorf("gap range = (%g, %g), want (48, 24)", r.StartTime.Value, r.Duration.Value)
	}

	detached := newTestClip(t, "loose", 0, 24)
	if _, err := detached.RangeInParent(); !errors.Is(err, ErrNoParent) {
		t.Errorf("detached RangeInParent: err = %v, want ErrNoParent", err)
	}
}

func TestMixedRateLayout(t *testing.T) {
	track := NewVideoTrack("V1")
	clip24 := newTestClip(t, "A", 0, 24) // 1s at 24fps

	start, _ := NewRationalTime(0, 48)
	dur, _ := NewRationalTime(48, 48) // 1s at 48fps
	sr, _ := NewTimeRange(start, dur)
	clip48, err := NewClip("B", sr)
	if err != nil {
		t.Fatalf("NewClip failed: %v", err)
	}
	appendAll(t, track, clip24, clip48)

	// Layout is computed in the first child's tick domain.
	tr, err := track.TrimmedRange()
	if err != nil {
		t.Fatalf("TrimmedRange failed: %v", err)
	}
	if tr.Duration.Rate != 24 {
		t.Errorf("layout rate = %g, want 24", tr.Duration.Rate)
	}
	if tr.Duration.Seconds() != 2 {
		t.Errorf("duration = %gs, want 2s", tr.Duration.Seconds())
	}

	r, err := track.RangeOfChildAtIndex(1)
	if err != nil {
		t.Fatalf("RangeOfChildAtIndex(1) failed: %v", err)
	}
	if r.StartTime.Value != 24 {
		t.Errorf("second clip start = %g ticks at 24fps, want 24", r.StartTime.Value)
	}
}

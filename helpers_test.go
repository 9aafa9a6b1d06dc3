package montage

import "testing"

// frames builds a RationalTime of n frames at 24fps.
func frames(t *testing.T, n float64) RationalTime {
	t.Helper()
	rt, err := NewRationalTime(n, 24)
	if err != nil {
		t.Fatalf("NewRationalTime(%g, 24) failed: %v", n, err)
	}
	return rt
}

// frameRange builds a TimeRange of [start, start+duration) frames at 24fps.
func frameRange(t *testing.T, start, duration float64) TimeRange {
	t.Helper()
	r, err := NewTimeRange(frames(t, start), frames(t, duration))
	if err != nil {
		t.Fatalf("NewTimeRange(%g, %g) failed: %v", start, duration, err)
	}
	return r
}

// newTestClip builds a detached clip over [start, start+duration) at 24fps.
func newTestClip(t *testing.T, name string, start, duration float64) *Clip {
	t.Helper()
	clip, err := NewClip(name, frameRange(t, start, duration))
	if err != nil {
		t.Fatalf("NewClip(%q) failed: %v", name, err)
	}
	return clip
}

// newTestGap builds a detached gap of the given frame count at 24fps.
func newTestGap(t *testing.T, duration float64) *Gap {
	t.Helper()
	gap, err := NewGap(frames(t, duration))
	if err != nil {
		t.Fatalf("NewGap(%g) failed: %v", duration, err)
	}
	return gap
}

// appendAll appends children to a track, failing the test on error.
func appendAll(t *testing.T, track *Track, kids ...Composable) {
	t.Helper()
	for _, k := range kids {
		if err := track.Append(k); err != nil {
			t.Fatalf("Append(%q) failed: %v", k.Name(), err)
		}
	}
}

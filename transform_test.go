package montage

import (
	"errors"
	"testing"
)

func TestTransformedTimeChildToParent(t *testing.T) {
	track := NewVideoTrack("V1")
	clipA := newTestClip(t, "A", 0, 48)
	clipB := newTestClip(t, "B", 10, 24) // source starts at frame 10
	appendAll(t, track, clipA, clipB)

	// Frame 10 of B's media is B's first frame, which sits at track frame 48.
	got, err := TransformedTime(frames(t, 10), clipB, track)
	if err != nil {
		t.Fatalf("TransformedTime failed: %v", err)
	}
	if got.Value != 48 {
		t.Errorf("B local 10 -> track %g, want 48", got.Value)
	}

	// And back down.
	back, err := TransformedTime(got, track, clipB)
	if err != nil {
		t.Fatalf("reverse TransformedTime failed: %v", err)
	}
	if back.Value != 10 {
		t.Errorf("track 48 -> B local %g, want 10", back.Value)
	}
}

func TestTransformedTimeBetweenSiblings(t *testing.T) {
	track := NewVideoTrack("V1")
	clipA := newTestClip(t, "A", 0, 48)
	clipB := newTestClip(t, "B", 0, 24)
	appendAll(t, track, clipA, clipB)

	// A's frame 48 is the cut point, which is B's frame 0.
	got, err := TransformedTime(frames(t, 48), clipA, clipB)
	if err != nil {
		t.Fatalf("TransformedTime failed: %v", err)
	}
	if got.Value != 0 {
		t.Errorf("A local 48 -> B local %g, want 0", got.Value)
	}
}

func TestTransformedTimeRoundTrip(t *testing.T) {
	stack := NewStack("S")
	trackA := NewVideoTrack("VA")
	appendAll(t, trackA, newTestGap(t, 12), newTestClip(t, "A", 5, 48))
	trackB := NewVideoTrack("VB")
	appendAll(t, trackB, newTestClip(t, "B", 0, 72))
	if err := stack.Append(trackA); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := stack.Append(trackB); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	clipA, _ := trackA.ChildAt(1)
	clipB, _ := trackB.ChildAt(0)

	orig := frames(t, 20)
	there, err := TransformedTime(orig, clipA, clipB)
	if err != nil {
		t.Fatalf("TransformedTime failed: %v", err)
	}
	back, err := TransformedTime(there, clipB, clipA)
	if err != nil {
		t.Fatalf("reverse TransformedTime failed: %v", err)
	}
	if !back.AlmostEqual(orig) {
		t.Errorf("round trip: got %v, want %v", back, orig)
	}
}

func TestTransformedTimeUnrelated(t *testing.T) {
	trackA := NewVideoTrack("VA")
	clipA := newTestClip(t, "A", 0, 24)
	appendAll(t, trackA, clipA)

	trackB := NewVideoTrack("VB")
	clipB := newTestClip(t, "B", 0, 24)
	appendAll(t, trackB, clipB)

	if _, err := TransformedTime(frames(t, 0), clipA, clipB); !errors.Is(err, ErrUnrelated) {
		t.Errorf("disjoint trees: err = %v, want ErrUnrelated", err)
	}
}

func TestTransformedTimeIdentity(t *testing.T) {
	clip := newTestClip(t, "A", 0, 24)
	got, err := TransformedTime(frames(t, 7), clip, clip)
	if err != nil {
		t.Fatalf("TransformedTime failed: %v", err)
	}
	if got.Value != 7 {
		t.Errorf("identity transform = %g, want 7", got.Value)
	}
}

func TestTransformedTimeRange(t *testing.T) {
	track := NewVideoTrack("V1")
	clipA := newTestClip(t, "A", 0, 48)
	clipB := newTestClip(t, "B", 0, 24)
	appendAll(t, track, clipA, clipB)

	got, err := TransformedTimeRange(frameRange(t, 0, 24), clipB, track)
	if err != nil {
		t.Fatalf("TransformedTimeRange failed: %v", err)
	}
	if got.StartTime.Value != 48 {
		t.Errorf("range start = %g, want 48", got.StartTime.Value)
	}
	if got.Duration.Value != 24 {
		t.Errorf("range duration = %g, want 24", got.Duration.Value)
	}
}

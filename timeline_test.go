package montage

import (
	"errors"
	"testing"
)

func TestTimelineTracks(t *testing.T) {
	tl := NewTimeline("cut-01")
	if tl.Name() != "cut-01" {
		t.Errorf("Name = %q, want %q", tl.Name(), "cut-01")
	}

	v1 := tl.AddVideoTrack("V1")
	v2 := tl.AddVideoTrack("V2")
	a1 := tl.AddAudioTrack("A1")

	if got := tl.Tracks().ChildrenCount(); got != 3 {
		t.Errorf("track count = %d, want 3", got)
	}
	videos := tl.VideoTracks()
	if len(videos) != 2 || videos[0] != v1 || videos[1] != v2 {
		t.Errorf("VideoTracks = %v, want [V1 V2] in order", videos)
	}
	audios := tl.AudioTracks()
	if len(audios) != 1 || audios[0] != a1 {
		t.Errorf("AudioTracks = %v, want [A1]", audios)
	}

	if v1.Parent() != Composition(tl.Tracks()) {
		t.Error("added track's parent should be the root stack")
	}
}

func TestTimelineDuration(t *testing.T) {
	tl := NewTimeline("test")
	if _, err := tl.Duration(); !errors.Is(err, ErrEmptyComposition) {
		t.Errorf("empty timeline Duration: err = %v, want ErrEmptyComposition", err)
	}

	v1 := tl.AddVideoTrack("V1")
	appendAll(t, v1, newTestClip(t, "a", 0, 48))
	v2 := tl.AddVideoTrack("V2")
	appendAll(t, v2, newTestClip(t, "b", 0, 72))

	d, err := tl.Duration()
	if err != nil {
		t.Fatalf("Duration failed: %v", err)
	}
	if d.Value != 72 {
		t.Errorf("Duration = %g, want 72 (longest track)", d.Value)
	}
}

func TestTimelineGlobalStartTime(t *testing.T) {
	tl := NewTimeline("test")
	if _, ok := tl.GlobalStartTime(); ok {
		t.Error("new timeline should have no global start time")
	}

	want := frames(t, 86400)
	if err := tl.SetGlobalStartTime(want); err != nil {
		t.Fatalf("SetGlobalStartTime failed: %v", err)
	}
	got, ok := tl.GlobalStartTime()
	if !ok {
		t.Fatal("global start time should be set")
	}
	if got != want {
		t.Errorf("GlobalStartTime = %v, want %v", got, want)
	}

	// A zero start time at 1 fps is a real value, not "unset".
	one, _ := NewRationalTime(0, 1)
	if err := tl.SetGlobalStartTime(one); err != nil {
		t.Fatalf("SetGlobalStartTime failed: %v", err)
	}
	if _, ok := tl.GlobalStartTime(); !ok {
		t.Error("zero at 1 fps must still read back as set")
	}

	tl.ClearGlobalStartTime()
	if _, ok := tl.GlobalStartTime(); ok {
		t.Error("global start time should be cleared")
	}

	bad := RationalTime{Value: 0, Rate: 0}
	if err := tl.SetGlobalStartTime(bad); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("invalid rate: err = %v, want ErrInvalidRate", err)
	}
}

func TestTimelineMetadata(t *testing.T) {
	tl := NewTimeline("test")
	tl.SetMetadata("editor", "pat")
	tl.SetMetadata("editor", "sam") // last write wins
	if v, ok := tl.GetMetadata("editor"); !ok || v != "sam" {
		t.Errorf("GetMetadata(editor) = %q, %v; want sam, true", v, ok)
	}
	if _, ok := tl.GetMetadata("missing"); ok {
		t.Error("missing key should report not found")
	}
}

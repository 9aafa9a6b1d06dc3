package montage

import (
	"errors"
	"testing"
)

func TestGeneratorReferenceKinds(t *testing.T) {
	black := NewBlackGenerator("slug")
	if black.GeneratorKind() != GeneratorKindBlack {
		t.Errorf("kind = %q, want %q", black.GeneratorKind(), GeneratorKindBlack)
	}
	bars := NewSMPTEBarsGenerator("bars")
	if bars.GeneratorKind() != GeneratorKindSMPTEBars {
		t.Errorf("kind = %q, want %q", bars.GeneratorKind(), GeneratorKindSMPTEBars)
	}
	if bars.Name() != "bars" {
		t.Errorf("name = %q, want bars", bars.Name())
	}
}

func TestImageSequenceFrameMath(t *testing.T) {
	seq, err := NewImageSequenceReference("file:///shots/sq01/", "plate.", ".exr", 1001, 1, 24, 4)
	if err != nil {
		t.Fatalf("NewImageSequenceReference failed: %v", err)
	}

	// Frame math needs a configured available range.
	if _, err := seq.NumberOfImages(); !errors.Is(err, ErrNoMediaReference) {
		t.Errorf("no range: err = %v, want ErrNoMediaReference", err)
	}

	if err := seq.SetAvailableRange(frameRange(t, 0, 48)); err != nil {
		t.Fatalf("SetAvailableRange failed: %v", err)
	}

	n, err := seq.NumberOfImages()
	if err != nil {
		t.Fatalf("NumberOfImages failed: %v", err)
	}
	if n != 48 {
		t.Errorf("NumberOfImages = %d, want 48", n)
	}
	last, err := seq.EndFrame()
	if err != nil {
		t.Fatalf("EndFrame failed: %v", err)
	}
	if last != 1048 {
		t.Errorf("EndFrame = %d, want 1048", last)
	}

	frame, err := seq.FrameForTime(frames(t, 10))
	if err != nil {
		t.Fatalf("FrameForTime failed: %v", err)
	}
	if frame != 1011 {
		t.Errorf("FrameForTime(10) = %d, want 1011", frame)
	}
	if _, err := seq.FrameForTime(frames(t, 100)); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("time outside range: err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestImageSequenceTargetURL(t *testing.T) {
	seq, err := NewImageSequenceReference("file:///shots/sq01", "plate.", ".exr", 1001, 2, 24, 6)
	if err != nil {
		t.Fatalf("NewImageSequenceReference failed: %v", err)
	}
	url, err := seq.TargetURLForImageNumber(3)
	if err != nil {
		t.Fatalf("TargetURLForImageNumber failed: %v", err)
	}
	if url != "file:///shots/sq01/plate.001007.exr" {
		t.Errorf("url = %q, want plate.001007 padded to 6", url)
	}
	if _, err := seq.TargetURLForImageNumber(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("negative image number: err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestImageSequenceRejectsBadRate(t *testing.T) {
	if _, err := NewImageSequenceReference("base", "p", ".exr", 1, 1, 0, 4); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("rate 0: err = %v, want ErrInvalidRate", err)
	}
}

func TestMissingReference(t *testing.T) {
	ref := NewMissingReference("offline")
	if _, ok := ref.AvailableRange(); ok {
		t.Error("missing reference should have no available range by default")
	}
	clip := newTestClip(t, "c", 0, 24)
	clip.SetMediaReference(ref)
	if _, err := clip.AvailableRange(); !errors.Is(err, ErrNoMediaReference) {
		t.Errorf("missing reference: err = %v, want ErrNoMediaReference", err)
	}
}

func TestMissingFramePolicyString(t *testing.T) {
	cases := []struct {
		policy MissingFramePolicy
		want   string
	}{
		{MissingFrameError, "error"},
		{MissingFrameHold, "hold"},
		{MissingFrameBlack, "black"},
	}
	for _, tc := range cases {
		if got := tc.policy.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

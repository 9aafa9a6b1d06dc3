package montage

import "testing"

func collectNames(it *ClipIter) []string {
	var names []string
	for {
		clip, ok := it.Next()
		if !ok {
			return names
		}
		names = append(names, clip.Name())
	}
}

func TestFindClipsRecursesDepthFirst(t *testing.T) {
	track := NewVideoTrack("V1")
	appendAll(t, track, newTestClip(t, "a", 0, 24), newTestGap(t, 12))

	nested := NewStack("nested")
	inner := NewVideoTrack("inner")
	appendAll(t, inner, newTestClip(t, "b", 0, 24))
	if err := nested.Append(inner); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := track.Append(nested); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	appendAll(t, track, newTestClip(t, "c", 0, 24))

	it := track.FindClips()
	names := collectNames(it)
	want := []string{"a", "b", "c"}
	if len(names) != len(want) {
		t.Fatalf("found %d clips %v, want %d", len(names), names, len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("clip %d = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestClipIterCountWithoutConsuming(t *testing.T) {
	track := NewVideoTrack("V1")
	appendAll(t, track, newTestClip(t, "a", 0, 24), newTestClip(t, "b", 0, 24))

	it := track.FindClips()
	if it.Count() != 2 {
		t.Errorf("Count = %d, want 2", it.Count())
	}
	// Count does not consume the iteration.
	if names := collectNames(it); len(names) != 2 {
		t.Errorf("iterated %d clips after Count, want 2", len(names))
	}
}

func TestClipIterReset(t *testing.T) {
	track := NewVideoTrack("V1")
	appendAll(t, track, newTestClip(t, "a", 0, 24), newTestClip(t, "b", 0, 24))

	it := track.FindClips()
	if _, ok := it.Next(); !ok {
		t.Fatal("first Next should succeed")
	}
	it.Reset()
	names := collectNames(it)
	if len(names) != 2 || names[0] != "a" {
		t.Errorf("after Reset iterated %v, want [a b]", names)
	}
}

func TestFindClipsEmpty(t *testing.T) {
	track := NewVideoTrack("V1")
	it := track.FindClips()
	if it.Count() != 0 {
		t.Errorf("Count = %d, want 0", it.Count())
	}
	if _, ok := it.Next(); ok {
		t.Error("Next on empty iterator should report done")
	}
}

func TestFindClipsOnTimeline(t *testing.T) {
	tl := NewTimeline("test")
	v1 := tl.AddVideoTrack("V1")
	appendAll(t, v1, newTestClip(t, "a", 0, 24))
	a1 := tl.AddAudioTrack("A1")
	appendAll(t, a1, newTestClip(t, "b", 0, 24))

	if got := tl.FindClips().Count(); got != 2 {
		t.Errorf("timeline clip count = %d, want 2", got)
	}
}

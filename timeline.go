package montage

// Timeline is the root of a composition. It owns a single root stack whose
// children are the timeline's tracks, plus an optional global start time
// anchoring the composition in presentation time.
type Timeline struct {
	name           string
	metadata       map[string]string
	tracks         *Stack
	globalStart    RationalTime
	hasGlobalStart bool
}

// NewTimeline creates an empty timeline.
func NewTimeline(name string) *Timeline {
	return &Timeline{name: name, tracks: NewStack("tracks")}
}

// Name returns the timeline's name.
func (tl *Timeline) Name() string { return tl.name }

// SetName sets the timeline's name.
func (tl *Timeline) SetName(name string) { tl.name = name }

// SetMetadata stores a key/value pair, replacing any prior value.
func (tl *Timeline) SetMetadata(key, value string) {
	if tl.metadata == nil {
		tl.metadata = make(map[string]string)
	}
	tl.metadata[key] = value
}

// GetMetadata returns the value stored under key.
func (tl *Timeline) GetMetadata(key string) (string, bool) {
	v, ok := tl.metadata[key]
	return v, ok
}

// Tracks returns the timeline's root stack.
func (tl *Timeline) Tracks() *Stack { return tl.tracks }

// GlobalStartTime returns the timeline's global start time, if one is set.
func (tl *Timeline) GlobalStartTime() (RationalTime, bool) {
	return tl.globalStart, tl.hasGlobalStart
}

// SetGlobalStartTime anchors the timeline at the given presentation time.
func (tl *Timeline) SetGlobalStartTime(t RationalTime) error {
	if err := t.Validate(); err != nil {
		return err
	}
	tl.globalStart = t
	tl.hasGlobalStart = true
	return nil
}

// ClearGlobalStartTime removes the global start time.
func (tl *Timeline) ClearGlobalStartTime() {
	tl.globalStart = RationalTime{}
	tl.hasGlobalStart = false
}

// AddTrack appends a track to the root stack.
func (tl *Timeline) AddTrack(t *Track) error {
	return tl.tracks.Append(t)
}

// AddVideoTrack creates a video track, appends it, and returns it.
func (tl *Timeline) AddVideoTrack(name string) *Track {
	t := NewVideoTrack(name)
	// The track is freshly created, attachment cannot fail.
	tl.tracks.Append(t)
	return t
}

// AddAudioTrack creates an audio track, appends it, and returns it.
func (tl *Timeline) AddAudioTrack(name string) *Track {
	t := NewAudioTrack(name)
	tl.tracks.Append(t)
	return t
}

// VideoTracks returns the timeline's video tracks in stack order.
func (tl *Timeline) VideoTracks() []*Track { return tl.tracksOfKind(TrackKindVideo) }

// AudioTracks returns the timeline's audio tracks in stack order.
func (tl *Timeline) AudioTracks() []*Track { return tl.tracksOfKind(TrackKindAudio) }

func (tl *Timeline) tracksOfKind(kind TrackKind) []*Track {
	var out []*Track
	for _, k := range tl.tracks.kids {
		if t, ok := k.(*Track); ok && t.kind == kind {
			out = append(out, t)
		}
	}
	return out
}

// Duration returns the timeline's total duration, the extent of the root
// stack. Fails with ErrEmptyComposition when the timeline has no tracks.
func (tl *Timeline) Duration() (RationalTime, error) {
	tr, err := tl.tracks.TrimmedRange()
	if err != nil {
		return RationalTime{}, err
	}
	return tr.Duration, nil
}

// FindClips returns an iterator over every clip in the timeline, in
// depth-first track order.
func (tl *Timeline) FindClips() *ClipIter { return newClipIter(tl.tracks) }

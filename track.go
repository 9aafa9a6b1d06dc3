package montage

// TrackKind labels what a track carries. It is descriptive only and has no
// effect on layout math.
type TrackKind string

const (
	// TrackKindVideo marks a video track.
	TrackKindVideo TrackKind = "Video"

	// TrackKindAudio marks an audio track.
	TrackKindAudio TrackKind = "Audio"
)

// Track is a sequential composition: children are laid out back to back
// along a single time axis, in child order. Transitions between children
// occupy no time of their own.
type Track struct {
	composition
	kind    TrackKind
	markers []*Marker
}

// NewTrack creates a detached track of the given kind.
func NewTrack(name string, kind TrackKind) *Track {
	return &Track{composition: composition{item: item{name: name}}, kind: kind}
}

// NewVideoTrack creates a detached video track.
func NewVideoTrack(name string) *Track { return NewTrack(name, TrackKindVideo) }

// NewAudioTrack creates a detached audio track.
func NewAudioTrack(name string) *Track { return NewTrack(name, TrackKindAudio) }

// Kind returns the track's kind.
func (t *Track) Kind() TrackKind { return t.kind }

// SetKind sets the track's kind.
func (t *Track) SetKind(kind TrackKind) { t.kind = kind }

// Append adds a child after all existing children.
func (t *Track) Append(child Composable) error {
	return t.appendChild(t, child)
}

// Insert adds a child at the given index.
func (t *Track) Insert(index int, child Composable) error {
	return t.insertChild(t, index, child)
}

// RemoveChild detaches and returns the child at the given index.
func (t *Track) RemoveChild(index int) (Composable, error) {
	return t.removeChild(index)
}

// ClearChildren detaches all children.
func (t *Track) ClearChildren() { t.clearChildren() }

// Children returns a snapshot-bounded iterator over the track's children.
func (t *Track) Children() *ChildIter { return newChildIter(t) }

// TrimmedRange returns the track's extent: start at zero, duration the sum
// of the children's occupied durations.
func (t *Track) TrimmedRange() (TimeRange, error) {
	return trackTrimmedRange(t)
}

// RangeOfChildAtIndex returns the range the child at index occupies in the
// track: its start is the summed duration of the children before it.
func (t *Track) RangeOfChildAtIndex(index int) (TimeRange, error) {
	return trackRangeOfChild(t, index)
}

// RangeInParent returns the range this track occupies in its parent stack.
func (t *Track) RangeInParent() (TimeRange, error) {
	return rangeInParent(t)
}

// FindClips returns an iterator over every clip in this track, including
// clips inside nested compositions, in depth-first child order.
func (t *Track) FindClips() *ClipIter { return newClipIter(t) }

// AddMarker appends a marker to the track.
func (t *Track) AddMarker(m *Marker) { t.markers = append(t.markers, m) }

// MarkersCount returns the number of attached markers.
func (t *Track) MarkersCount() int { return len(t.markers) }

// Markers returns the attached markers in attachment order.
func (t *Track) Markers() []*Marker { return t.markers }

func (t *Track) occupiedDuration(rate float64) (RationalTime, error) {
	tr, err := t.TrimmedRange()
	if err != nil {
		return RationalTime{}, err
	}
	return tr.Duration.Rescaled(rate), nil
}

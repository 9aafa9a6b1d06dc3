package montage

// Stack is a simultaneous composition: every child starts at local time
// zero and the children layer over each other. A stack's extent is the
// union of its children's extents.
type Stack struct {
	composition
	markers []*Marker
}

// NewStack creates a detached stack.
func NewStack(name string) *Stack {
	return &Stack{composition: composition{item: item{name: name}}}
}

// Append adds a child layer after all existing children.
func (s *Stack) Append(child Composable) error {
	return s.appendChild(s, child)
}

// Insert adds a child layer at the given index.
func (s *Stack) Insert(index int, child Composable) error {
	return s.insertChild(s, index, child)
}

// RemoveChild detaches and returns the child at the given index.
func (s *Stack) RemoveChild(index int) (Composable, error) {
	return s.removeChild(index)
}

// ClearChildren detaches all children.
func (s *Stack) ClearChildren() { s.clearChildren() }

// Children returns a snapshot-bounded iterator over the stack's children.
func (s *Stack) Children() *ChildIter { return newChildIter(s) }

// TrimmedRange returns the stack's extent: start at zero, duration the
// maximum of the children's durations.
func (s *Stack) TrimmedRange() (TimeRange, error) {
	return stackTrimmedRange(s)
}

// RangeOfChildAtIndex returns the range the child at index occupies in the
// stack. Every child of a stack starts at zero.
func (s *Stack) RangeOfChildAtIndex(index int) (TimeRange, error) {
	return stackRangeOfChild(s, index)
}

// RangeInParent returns the range this stack occupies in its parent.
func (s *Stack) RangeInParent() (TimeRange, error) {
	return rangeInParent(s)
}

// FindClips returns an iterator over every clip in this stack, recursing
// into nested tracks and stacks, in depth-first child order.
func (s *Stack) FindClips() *ClipIter { return newClipIter(s) }

// AddMarker appends a marker to the stack.
func (s *Stack) AddMarker(m *Marker) { s.markers = append(s.markers, m) }

// MarkersCount returns the number of attached markers.
func (s *Stack) MarkersCount() int { return len(s.markers) }

// Markers returns the attached markers in attachment order.
func (s *Stack) Markers() []*Marker { return s.markers }

func (s *Stack) occupiedDuration(rate float64) (RationalTime, error) {
	tr, err := s.TrimmedRange()
	if err != nil {
		return RationalTime{}, err
	}
	return tr.Duration.Rescaled(rate), nil
}

package montage

// Predefined transition types.
const (
	// TransitionTypeSMPTEDissolve is the standard SMPTE dissolve.
	TransitionTypeSMPTEDissolve = "SMPTE_Dissolve"

	// TransitionTypeCustom marks a custom transition.
	TransitionTypeCustom = "Custom_Transition"
)

// Transition is a zero-occupancy marker between two adjacent items. InOffset
// is how far the transition overlaps the outgoing neighbor; OutOffset how
// far it overlaps the incoming one. A transition contributes no width to
// sequential layout beyond this overlap bookkeeping.
type Transition struct {
	item
	transitionType string
	inOffset       RationalTime
	outOffset      RationalTime
}

// NewTransition creates a detached transition.
func NewTransition(name, transitionType string, inOffset, outOffset RationalTime) (*Transition, error) {
	if err := inOffset.Validate(); err != nil {
		return nil, err
	}
	if err := outOffset.Validate(); err != nil {
		return nil, err
	}
	return &Transition{
		item:           item{name: name},
		transitionType: transitionType,
		inOffset:       inOffset,
		outOffset:      outOffset,
	}, nil
}

// NewDissolve creates a standard SMPTE dissolve transition.
func NewDissolve(name string, inOffset, outOffset RationalTime) (*Transition, error) {
	return NewTransition(name, TransitionTypeSMPTEDissolve, inOffset, outOffset)
}

// TransitionType returns the transition type string.
func (t *Transition) TransitionType() string { return t.transitionType }

// SetTransitionType sets the transition type string.
func (t *Transition) SetTransitionType(transitionType string) {
	t.transitionType = transitionType
}

// InOffset returns the overlap into the outgoing neighbor.
func (t *Transition) InOffset() RationalTime { return t.inOffset }

// SetInOffset sets the overlap into the outgoing neighbor.
func (t *Transition) SetInOffset(offset RationalTime) error {
	if err := offset.Validate(); err != nil {
		return err
	}
	t.inOffset = offset
	return nil
}

// OutOffset returns the overlap into the incoming neighbor.
func (t *Transition) OutOffset() RationalTime { return t.outOffset }

// SetOutOffset sets the overlap into the incoming neighbor.
func (t *Transition) SetOutOffset(offset RationalTime) error {
	if err := offset.Validate(); err != nil {
		return err
	}
	t.outOffset = offset
	return nil
}

// Duration returns the transition's total overlap, in + out.
func (t *Transition) Duration() RationalTime {
	return t.inOffset.Add(t.outOffset)
}

func (t *Transition) occupiedDuration(rate float64) (RationalTime, error) {
	return zeroTime(rate), nil
}

// RangeInParent returns the zero-width range this transition occupies at
// its cut point in the parent. Fails with ErrNoParent when detached.
func (t *Transition) RangeInParent() (TimeRange, error) {
	return rangeInParent(t)
}

// overlapWindow is the interval of parent time the transition's blend
// covers, centered on the cut at the given position.
func (t *Transition) overlapWindow(cut RationalTime) TimeRange {
	start := cut.Sub(t.inOffset)
	return TimeRange{StartTime: start, Duration: t.Duration().Rescaled(start.Rate)}
}

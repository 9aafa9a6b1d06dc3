package montage

// Gap is an unreferenced placeholder occupying a fixed duration in its
// parent. In its own local space a gap always starts at zero.
type Gap struct {
	item
	duration RationalTime
}

// NewGap creates a detached gap with the given duration.
func NewGap(duration RationalTime) (*Gap, error) {
	if err := duration.Validate(); err != nil {
		return nil, err
	}
	return &Gap{duration: duration}, nil
}

// Duration returns the gap's duration.
func (g *Gap) Duration() RationalTime { return g.duration }

// SetDuration replaces the gap's duration.
func (g *Gap) SetDuration(duration RationalTime) error {
	if err := duration.Validate(); err != nil {
		return err
	}
	g.duration = duration
	return nil
}

func (g *Gap) occupiedDuration(rate float64) (RationalTime, error) {
	return g.duration.Rescaled(rate), nil
}

// RangeInParent returns the range this gap occupies in its parent's local
// space. Fails with ErrNoParent when detached.
func (g *Gap) RangeInParent() (TimeRange, error) {
	return rangeInParent(g)
}

func (g *Gap) clone() *Gap {
	return &Gap{
		item:     item{name: g.name, metadata: g.copyMetadata()},
		duration: g.duration,
	}
}

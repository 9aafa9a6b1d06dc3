package montage

import "sort"

// DefaultMediaKey is the key a clip's media reference lives under unless the
// caller chooses otherwise.
const DefaultMediaKey = "DEFAULT_MEDIA"

// Clip is a bounded reference to media. Its source range selects the portion
// of the referenced media used; its position in a track follows from the
// siblings before it. A clip may hold several media references keyed by
// name, with exactly one active at a time.
type Clip struct {
	item
	sourceRange TimeRange
	references  map[string]MediaReference
	activeKey   string
	markers     []*Marker
	effects     []Effect
}

// NewClip creates a detached clip using the given portion of its media.
func NewClip(name string, sourceRange TimeRange) (*Clip, error) {
	if err := sourceRange.Validate(); err != nil {
		return nil, err
	}
	return &Clip{
		item:        item{name: name},
		sourceRange: sourceRange,
		activeKey:   DefaultMediaKey,
	}, nil
}

// SourceRange returns the portion of the referenced media this clip uses.
func (c *Clip) SourceRange() TimeRange { return c.sourceRange }

// SetSourceRange replaces the clip's source range.
func (c *Clip) SetSourceRange(r TimeRange) error {
	if err := r.Validate(); err != nil {
		return err
	}
	c.sourceRange = r
	return nil
}

// Duration returns the clip's duration in its parent.
func (c *Clip) Duration() RationalTime { return c.sourceRange.Duration }

func (c *Clip) occupiedDuration(rate float64) (RationalTime, error) {
	return c.sourceRange.Duration.Rescaled(rate), nil
}

// SetMediaReference stores ref under the active key, replacing any
// reference already there.
func (c *Clip) SetMediaReference(ref MediaReference) {
	c.AddMediaReference(c.activeKey, ref)
}

// AddMediaReference stores ref under the given key without changing the
// active key.
func (c *Clip) AddMediaReference(key string, ref MediaReference) {
	if c.references == nil {
		c.references = make(map[string]MediaReference)
	}
	c.references[key] = ref
}

// ActiveMediaKey returns the key the active reference lives under.
func (c *Clip) ActiveMediaKey() string { return c.activeKey }

// SetActiveMediaKey switches which stored reference is active. The key must
// already hold a reference.
func (c *Clip) SetActiveMediaKey(key string) error {
	if _, ok := c.references[key]; !ok {
		return ErrNoMediaReference
	}
	c.activeKey = key
	return nil
}

// ActiveMediaReference returns the reference stored under the active key.
func (c *Clip) ActiveMediaReference() (MediaReference, bool) {
	ref, ok := c.references[c.activeKey]
	return ref, ok
}

// MediaReferenceKeys returns the keys of all stored references, sorted.
func (c *Clip) MediaReferenceKeys() []string {
	if len(c.references) == 0 {
		return nil
	}
	keys := make([]string, 0, len(c.references))
	for k := range c.references {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AvailableRange returns the available range of the active media reference.
// Fails with ErrNoMediaReference when no reference is active or the active
// reference has no configured range.
func (c *Clip) AvailableRange() (TimeRange, error) {
	ref, ok := c.ActiveMediaReference()
	if !ok {
		return TimeRange{}, ErrNoMediaReference
	}
	r, ok := ref.AvailableRange()
	if !ok {
		return TimeRange{}, ErrNoMediaReference
	}
	return r, nil
}

// AddMarker appends a marker to the clip.
func (c *Clip) AddMarker(m *Marker) { c.markers = append(c.markers, m) }

// MarkersCount returns the number of attached markers.
func (c *Clip) MarkersCount() int { return len(c.markers) }

// Markers returns the attached markers in attachment order.
func (c *Clip) Markers() []*Marker { return c.markers }

// AddEffect appends an effect to the clip.
func (c *Clip) AddEffect(e Effect) { c.effects = append(c.effects, e) }

// EffectsCount returns the number of attached effects.
func (c *Clip) EffectsCount() int { return len(c.effects) }

// Effects returns the attached effects in attachment order.
func (c *Clip) Effects() []Effect { return c.effects }

// RangeInParent returns the range this clip occupies in its parent's local
// space. Fails with ErrNoParent when detached.
func (c *Clip) RangeInParent() (TimeRange, error) {
	return rangeInParent(c)
}

// clone copies the clip's content without its parent attachment. The clone
// shares the underlying media reference objects with the original; markers
// and effects stay with the original.
func (c *Clip) clone() *Clip {
	out := &Clip{
		item:        item{name: c.name, metadata: c.copyMetadata()},
		sourceRange: c.sourceRange,
		activeKey:   c.activeKey,
	}
	if len(c.references) > 0 {
		out.references = make(map[string]MediaReference, len(c.references))
		for k, v := range c.references {
			out.references[k] = v
		}
	}
	return out
}

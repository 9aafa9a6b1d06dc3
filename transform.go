package montage

// contentStart is where an item's own content begins in its local space: a
// clip's local clock starts at its source start, everything else at zero.
func contentStart(c Composable) RationalTime {
	if clip, ok := c.(*Clip); ok {
		return clip.sourceRange.StartTime
	}
	return RationalTime{Value: 0, Rate: 1}
}

// nativeRate is the tick domain an item naturally speaks in.
func nativeRate(c Composable) (float64, bool) {
	switch v := c.(type) {
	case *Clip:
		return v.sourceRange.Duration.Rate, true
	case *Gap:
		return v.duration.Rate, true
	case *Track:
		return layoutRate(v.kids)
	case *Stack:
		return layoutRate(v.kids)
	case *Transition:
		return v.inOffset.Rate, true
	}
	return 0, false
}

// ancestorChain returns the item followed by each of its ancestors up to
// the root of its tree.
func ancestorChain(c Composable) []Composable {
	chain := []Composable{c}
	for p := c.Parent(); p != nil; p = p.Parent() {
		chain = append(chain, p)
	}
	return chain
}

// TransformedTime re-anchors a time expressed in from's local space into
// to's local space, walking the ownership chain up to the nearest common
// ancestor and back down. Fails with ErrUnrelated when the two items do not
// share an ancestor.
func TransformedTime(t RationalTime, from, to Composable) (RationalTime, error) {
	if err := t.Validate(); err != nil {
		return RationalTime{}, err
	}
	if from == to {
		return t, nil
	}

	fromChain := ancestorChain(from)
	seen := make(map[Composable]struct{}, len(fromChain))
	for _, a := range fromChain {
		seen[a] = struct{}{}
	}
	var ancestor Composable
	for _, a := range ancestorChain(to) {
		if _, ok := seen[a]; ok {
			ancestor = a
			break
		}
	}
	if ancestor == nil {
		return RationalTime{}, ErrUnrelated
	}

	// Up from the source item to the common ancestor.
	for cur := from; cur != ancestor; cur = cur.Parent() {
		rip, err := rangeInParent(cur)
		if err != nil {
			return RationalTime{}, err
		}
		t = t.Sub(contentStart(cur)).Add(rip.StartTime)
	}

	// Down from the common ancestor to the target item.
	var down []Composable
	for cur := to; cur != ancestor; cur = cur.Parent() {
		down = append(down, cur)
	}
	for i := len(down) - 1; i >= 0; i-- {
		rip, err := rangeInParent(down[i])
		if err != nil {
			return RationalTime{}, err
		}
		t = t.Sub(rip.StartTime).Add(contentStart(down[i]))
	}

	if rate, ok := nativeRate(to); ok {
		t = t.Rescaled(rate)
	}
	return t, nil
}

// TransformedTimeRange re-anchors a range from from's local space into
// to's local space. The duration is preserved, rescaled into the result's
// tick domain.
func TransformedTimeRange(r TimeRange, from, to Composable) (TimeRange, error) {
	if err := r.Validate(); err != nil {
		return TimeRange{}, err
	}
	start, err := TransformedTime(r.StartTime, from, to)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{StartTime: start, Duration: r.Duration.Rescaled(start.Rate)}, nil
}

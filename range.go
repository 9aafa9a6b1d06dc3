package montage

// layoutRate picks the tick domain a composition's layout is computed in:
// the rate of the first child that has one, searching nested compositions
// depth-first, with transition offsets as a last resort.
func layoutRate(kids []Composable) (float64, bool) {
	for _, k := range kids {
		switch c := k.(type) {
		case *Clip:
			return c.sourceRange.Duration.Rate, true
		case *Gap:
			return c.duration.Rate, true
		case *Track:
			if r, ok := layoutRate(c.kids); ok {
				return r, true
			}
		case *Stack:
			if r, ok := layoutRate(c.kids); ok {
				return r, true
			}
		}
	}
	for _, k := range kids {
		if tr, ok := k.(*Transition); ok {
			return tr.inOffset.Rate, true
		}
	}
	return 0, false
}

func trackTrimmedRange(t *Track) (TimeRange, error) {
	if len(t.kids) == 0 {
		return TimeRange{}, ErrEmptyComposition
	}
	rate, ok := layoutRate(t.kids)
	if !ok {
		rate = 1
	}
	sum := zeroTime(rate)
	for _, k := range t.kids {
		d, err := k.occupiedDuration(rate)
		if err != nil {
			return TimeRange{}, err
		}
		sum = sum.Add(d)
	}
	return TimeRange{StartTime: zeroTime(rate), Duration: sum}, nil
}

func trackRangeOfChild(t *Track, index int) (TimeRange, error) {
	if index < 0 || index >= len(t.kids) {
		return TimeRange{}, ErrIndexOutOfRange
	}
	rate, ok := layoutRate(t.kids)
	if !ok {
		rate = 1
	}
	start := zeroTime(rate)
	for _, k := range t.kids[:index] {
		d, err := k.occupiedDuration(rate)
		if err != nil {
			return TimeRange{}, err
		}
		start = start.Add(d)
	}
	width, err := t.kids[index].occupiedDuration(rate)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{StartTime: start, Duration: width}, nil
}

func stackTrimmedRange(s *Stack) (TimeRange, error) {
	if len(s.kids) == 0 {
		return TimeRange{}, ErrEmptyComposition
	}
	rate, ok := layoutRate(s.kids)
	if !ok {
		rate = 1
	}
	max := zeroTime(rate)
	for _, k := range s.kids {
		d, err := k.occupiedDuration(rate)
		if err != nil {
			return TimeRange{}, err
		}
		if d.Cmp(max) > 0 {
			max = d
		}
	}
	return TimeRange{StartTime: zeroTime(rate), Duration: max}, nil
}

func stackRangeOfChild(s *Stack, index int) (TimeRange, error) {
	if index < 0 || index >= len(s.kids) {
		return TimeRange{}, ErrIndexOutOfRange
	}
	rate, ok := layoutRate(s.kids)
	if !ok {
		rate = 1
	}
	width, err := s.kids[index].occupiedDuration(rate)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{StartTime: zeroTime(rate), Duration: width}, nil
}

// rangeInParent maps an item to the range it occupies in its parent's local
// space. Fails with ErrNoParent when the item is detached.
func rangeInParent(c Composable) (TimeRange, error) {
	p := c.Parent()
	if p == nil {
		return TimeRange{}, ErrNoParent
	}
	index, ok := indexOfChild(p, c)
	if !ok {
		return TimeRange{}, ErrNoParent
	}
	return p.RangeOfChildAtIndex(index)
}

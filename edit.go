package montage

// GapPolicy controls how NeighborsOf treats missing neighbors around
// transitions.
type GapPolicy int

const (
	// GapPolicyNever returns neighbors exactly as they appear in the
	// track; missing neighbors are nil.
	GapPolicyNever GapPolicy = iota

	// GapPolicyAroundTransitions synthesizes a detached zero-duration gap
	// for a transition's missing neighbor, so a transition at the head or
	// tail of a track still reports something to blend with.
	GapPolicyAroundTransitions
)

// spanEntry records where a child sits in its track's layout.
type spanEntry struct {
	child Composable
	start RationalTime
	width RationalTime
}

// trackSpans computes each child's occupied interval in the track's tick
// domain, in child order.
func trackSpans(t *Track) ([]spanEntry, float64, error) {
	rate, ok := layoutRate(t.kids)
	if !ok {
		rate = 1
	}
	spans := make([]spanEntry, 0, len(t.kids))
	cursor := zeroTime(rate)
	for _, k := range t.kids {
		w, err := k.occupiedDuration(rate)
		if err != nil {
			return nil, 0, err
		}
		spans = append(spans, spanEntry{child: k, start: cursor, width: w})
		cursor = cursor.Add(w)
	}
	return spans, rate, nil
}

// splitAt splits a child into two pieces at offset ticks into its occupied
// range. Only clips and gaps can split; both pieces are detached.
func splitAt(c Composable, offset RationalTime) (Composable, Composable, error) {
	switch v := c.(type) {
	case *Clip:
		local := offset.Rescaled(v.sourceRange.Duration.Rate)
		left := v.clone()
		left.sourceRange.Duration = local
		right := v.clone()
		right.sourceRange.StartTime = v.sourceRange.StartTime.Add(local)
		right.sourceRange.Duration = v.sourceRange.Duration.Sub(local)
		return left, right, nil
	case *Gap:
		local := offset.Rescaled(v.duration.Rate)
		left := v.clone()
		left.duration = local
		right := v.clone()
		right.duration = v.duration.Sub(local)
		return left, right, nil
	}
	return nil, nil, ErrCannotSplit
}

// conflictingTransitions finds the transitions whose blend window touches
// the given interval. When removal is not permitted the first hit fails
// with ErrTransitionConflict.
func conflictingTransitions(spans []spanEntry, target TimeRange, remove bool) (map[Composable]bool, error) {
	var marked map[Composable]bool
	for _, s := range spans {
		tr, ok := s.child.(*Transition)
		if !ok {
			continue
		}
		if !tr.overlapWindow(s.start).Overlaps(target) && !target.Contains(s.start) {
			continue
		}
		if !remove {
			return nil, ErrTransitionConflict
		}
		if marked == nil {
			marked = make(map[Composable]bool)
		}
		marked[s.child] = true
	}
	return marked, nil
}

// Overwrite places item at the absolute range within the track, replacing
// whatever previously occupied that interval. The item is resized to the
// range's duration; a clip keeps its source start. Fully covered children
// are removed; partially covered clips and gaps are split and truncated at
// the boundary. A range starting past the current track end is padded with
// a gap; a range starting before zero clamps to the track head. Transitions
// touching the range fail with ErrTransitionConflict unless
// removeTransitions is set, in which case they are deleted.
//
// On failure the track is unchanged.
func (t *Track) Overwrite(item Composable, r TimeRange, removeTransitions bool) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if r.Duration.Value < 0 {
		return ErrNegativeDuration
	}
	if item.Parent() != nil {
		return ErrAlreadyAttached
	}

	spans, rate, err := trackSpans(t)
	if err != nil {
		return err
	}
	start := r.StartTime.Rescaled(rate)
	if start.Value < 0 {
		start = zeroTime(rate)
	}
	target := TimeRange{StartTime: start, Duration: r.Duration.Rescaled(rate)}
	end := target.EndTime()

	marked, err := conflictingTransitions(spans, target, removeTransitions)
	if err != nil {
		return err
	}

	var head, tail, added, dropped []Composable
	for _, s := range spans {
		if marked[s.child] {
			dropped = append(dropped, s.child)
			continue
		}
		sEnd := s.start.Add(s.width)
		switch {
		case sEnd.Cmp(start) <= 0:
			head = append(head, s.child)
		case s.start.Cmp(end) >= 0:
			tail = append(tail, s.child)
		default:
			if s.start.Cmp(start) < 0 {
				left, _, err := splitAt(s.child, start.Sub(s.start))
				if err != nil {
					return err
				}
				head = append(head, left)
				added = append(added, left)
			}
			if sEnd.Cmp(end) > 0 {
				_, right, err := splitAt(s.child, end.Sub(s.start))
				if err != nil {
					return err
				}
				tail = append(tail, right)
				added = append(added, right)
			}
			dropped = append(dropped, s.child)
		}
	}

	// Pad the run-up when the range starts past everything we kept.
	trackEnd := zeroTime(rate)
	if n := len(spans); n > 0 {
		trackEnd = spans[n-1].start.Add(spans[n-1].width)
	}
	if start.Cmp(trackEnd) > 0 {
		pad := &Gap{duration: start.Sub(trackEnd)}
		head = append(head, pad)
		added = append(added, pad)
	}

	newKids := make([]Composable, 0, len(head)+1+len(tail))
	newKids = append(newKids, head...)
	newKids = append(newKids, item)
	newKids = append(newKids, tail...)

	for _, d := range dropped {
		d.release()
	}
	// The item must occupy exactly the requested interval.
	switch v := item.(type) {
	case *Clip:
		v.sourceRange.Duration = target.Duration.Rescaled(v.sourceRange.Duration.Rate)
	case *Gap:
		v.duration = target.Duration.Rescaled(v.duration.Rate)
	}
	if err := item.attach(t); err != nil {
		return err
	}
	for _, a := range added {
		if err := a.attach(t); err != nil {
			return err
		}
	}
	t.kids = newKids
	return nil
}

// InsertAtTime splits whichever child spans the given time and places item
// between the halves; everything after shifts later by item's duration. A
// time on an existing boundary inserts without splitting; times before zero
// clamp to the track head, times past the end append, padding with a gap
// when there is a run-up. Transition conflicts follow the Overwrite policy.
//
// On failure the track is unchanged.
func (t *Track) InsertAtTime(item Composable, at RationalTime, removeTransitions bool) error {
	if err := at.Validate(); err != nil {
		return err
	}
	if item.Parent() != nil {
		return ErrAlreadyAttached
	}

	spans, rate, err := trackSpans(t)
	if err != nil {
		return err
	}
	time := at.Rescaled(rate)
	if time.Value < 0 {
		time = zeroTime(rate)
	}

	var marked map[Composable]bool
	for _, s := range spans {
		tr, ok := s.child.(*Transition)
		if !ok {
			continue
		}
		if !tr.overlapWindow(s.start).Contains(time) {
			continue
		}
		if !removeTransitions {
			return ErrTransitionConflict
		}
		if marked == nil {
			marked = make(map[Composable]bool)
		}
		marked[s.child] = true
	}

	var newKids, added, dropped []Composable
	inserted := false
	for _, s := range spans {
		if marked[s.child] {
			dropped = append(dropped, s.child)
			continue
		}
		sEnd := s.start.Add(s.width)
		if !inserted && s.start.Cmp(time) >= 0 {
			newKids = append(newKids, item)
			inserted = true
		}
		if !inserted && s.start.Cmp(time) < 0 && sEnd.Cmp(time) > 0 {
			left, right, err := splitAt(s.child, time.Sub(s.start))
			if err != nil {
				return err
			}
			newKids = append(newKids, left, item, right)
			added = append(added, left, right)
			dropped = append(dropped, s.child)
			inserted = true
			continue
		}
		newKids = append(newKids, s.child)
	}
	if !inserted {
		trackEnd := zeroTime(rate)
		if n := len(spans); n > 0 {
			trackEnd = spans[n-1].start.Add(spans[n-1].width)
		}
		if time.Cmp(trackEnd) > 0 {
			pad := &Gap{duration: time.Sub(trackEnd)}
			newKids = append(newKids, pad)
			added = append(added, pad)
		}
		newKids = append(newKids, item)
	}

	for _, d := range dropped {
		d.release()
	}
	if err := item.attach(t); err != nil {
		return err
	}
	for _, a := range added {
		if err := a.attach(t); err != nil {
			return err
		}
	}
	t.kids = newKids
	return nil
}

// SliceAtTime splits the child spanning the given time into two children
// covering the same combined range and content, with no net duration
// change. Fails with ErrNothingToSlice when the time falls exactly on an
// existing boundary or outside all children.
//
// On failure the track is unchanged.
func (t *Track) SliceAtTime(at RationalTime, removeTransitions bool) error {
	if err := at.Validate(); err != nil {
		return err
	}
	spans, rate, err := trackSpans(t)
	if err != nil {
		return err
	}
	time := at.Rescaled(rate)

	victim := -1
	for i, s := range spans {
		if s.width.Value <= 0 {
			continue
		}
		sEnd := s.start.Add(s.width)
		if s.start.Cmp(time) < 0 && sEnd.Cmp(time) > 0 {
			victim = i
			break
		}
	}
	if victim < 0 {
		return ErrNothingToSlice
	}

	var marked map[Composable]bool
	for _, s := range spans {
		tr, ok := s.child.(*Transition)
		if !ok {
			continue
		}
		if !tr.overlapWindow(s.start).Contains(time) {
			continue
		}
		if !removeTransitions {
			return ErrTransitionConflict
		}
		if marked == nil {
			marked = make(map[Composable]bool)
		}
		marked[s.child] = true
	}

	left, right, err := splitAt(spans[victim].child, time.Sub(spans[victim].start))
	if err != nil {
		return err
	}

	var newKids, dropped []Composable
	for i, s := range spans {
		if marked[s.child] {
			dropped = append(dropped, s.child)
			continue
		}
		if i == victim {
			newKids = append(newKids, left, right)
			dropped = append(dropped, s.child)
			continue
		}
		newKids = append(newKids, s.child)
	}

	for _, d := range dropped {
		d.release()
	}
	if err := left.attach(t); err != nil {
		return err
	}
	if err := right.attach(t); err != nil {
		return err
	}
	t.kids = newKids
	return nil
}

// RemoveAtTime removes the child spanning the given time. With fillWithGap
// the vacated interval becomes a gap of equal duration and the track length
// is unchanged; otherwise subsequent children shift earlier. Fails with
// ErrIndexOutOfRange when no child spans the time.
//
// On failure the track is unchanged.
func (t *Track) RemoveAtTime(at RationalTime, fillWithGap bool) error {
	if err := at.Validate(); err != nil {
		return err
	}
	spans, rate, err := trackSpans(t)
	if err != nil {
		return err
	}
	time := at.Rescaled(rate)

	for i, s := range spans {
		if s.width.Value <= 0 {
			continue
		}
		if !(TimeRange{StartTime: s.start, Duration: s.width}).Contains(time) {
			continue
		}
		victim := s.child
		newKids := make([]Composable, 0, len(t.kids))
		newKids = append(newKids, t.kids[:i]...)
		if fillWithGap {
			fill := &Gap{duration: s.width}
			if err := fill.attach(t); err != nil {
				return err
			}
			newKids = append(newKids, fill)
		}
		newKids = append(newKids, t.kids[i+1:]...)
		victim.release()
		t.kids = newKids
		return nil
	}
	return ErrIndexOutOfRange
}

// NeighborsOf returns the children immediately before and after the given
// index. Missing neighbors are nil under GapPolicyNever; under
// GapPolicyAroundTransitions a transition's missing neighbor is reported as
// a detached zero-duration gap instead, so both sides of the blend always
// resolve to something.
func (t *Track) NeighborsOf(index int, policy GapPolicy) (Composable, Composable, error) {
	if index < 0 || index >= len(t.kids) {
		return nil, nil, ErrIndexOutOfRange
	}
	var prev, next Composable
	if index > 0 {
		prev = t.kids[index-1]
	}
	if index+1 < len(t.kids) {
		next = t.kids[index+1]
	}
	if policy == GapPolicyAroundTransitions {
		if tr, ok := t.kids[index].(*Transition); ok {
			if prev == nil {
				prev = &Gap{duration: zeroTime(tr.inOffset.Rate)}
			}
			if next == nil {
				next = &Gap{duration: zeroTime(tr.outOffset.Rate)}
			}
		}
	}
	return prev, next, nil
}

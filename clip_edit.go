package montage

// Slip shifts which portion of the media the clip samples by delta, without
// changing the clip's position or duration in its track. When the active
// media reference exposes an available range the new window is clamped to
// stay within it; otherwise the shift is unbounded.
func (c *Clip) Slip(delta RationalTime) error {
	if err := delta.Validate(); err != nil {
		return err
	}
	start := c.sourceRange.StartTime.Add(delta)
	if avail, err := c.AvailableRange(); err == nil {
		lo := avail.StartTime.Rescaled(start.Rate)
		hi := avail.EndTime().Sub(c.sourceRange.Duration).Rescaled(start.Rate)
		// Media shorter than the clip window: pin to the media start.
		if hi.Cmp(lo) < 0 {
			hi = lo
		}
		if start.Cmp(lo) < 0 {
			start = lo
		}
		if start.Cmp(hi) > 0 {
			start = hi
		}
	}
	c.sourceRange.StartTime = start
	return nil
}

// Slide shifts the clip's position in its track by delta, later when
// positive, by growing or shrinking the previous sibling by the same
// amount. Total track duration is unchanged. Fails with ErrIndexOutOfRange
// when the clip has no previous sibling and with ErrNegativeDuration when
// the adjustment would leave the sibling with negative duration.
func (c *Clip) Slide(delta RationalTime) error {
	if err := delta.Validate(); err != nil {
		return err
	}
	p := c.Parent()
	if p == nil {
		return ErrNoParent
	}
	index, ok := indexOfChild(p, c)
	if !ok {
		return ErrNoParent
	}
	if index == 0 {
		return ErrIndexOutOfRange
	}
	return adjustTail(p.childSlice()[index-1], delta)
}

// Trim adjusts the clip's source window boundaries independently. Positive
// deltaIn trims the head later; positive deltaOut extends the tail later.
// Duration freed in the track is backfilled with gaps so other siblings
// keep their positions. Fails with ErrNegativeDuration when the window
// would collapse below zero.
func (c *Clip) Trim(deltaIn, deltaOut RationalTime) error {
	p := c.Parent()
	if p == nil {
		return ErrNoParent
	}
	index, ok := indexOfChild(p, c)
	if !ok {
		return ErrNoParent
	}
	next, err := c.adjustedSource(deltaIn, deltaOut)
	if err != nil {
		return err
	}

	// Backfill whatever the window surrendered, head side then tail side.
	var headGap, tailGap *Gap
	if deltaIn.Value > 0 {
		headGap = &Gap{duration: deltaIn.Rescaled(next.Duration.Rate)}
	}
	if deltaOut.Value < 0 {
		tailGap = &Gap{duration: deltaOut.Neg().Rescaled(next.Duration.Rate)}
	}

	kids := p.childSlice()
	newKids := make([]Composable, 0, len(kids)+2)
	newKids = append(newKids, kids[:index]...)
	if headGap != nil {
		if err := headGap.attach(p); err != nil {
			return err
		}
		newKids = append(newKids, headGap)
	}
	newKids = append(newKids, c)
	if tailGap != nil {
		if err := tailGap.attach(p); err != nil {
			return err
		}
		newKids = append(newKids, tailGap)
	}
	newKids = append(newKids, kids[index+1:]...)

	c.sourceRange = next
	p.setChildSlice(newKids)
	return nil
}

// Ripple adjusts the clip's source window like Trim but propagates the net
// duration change to all subsequent siblings instead of backfilling with
// gaps: they shift because the track's layout is derived from durations.
// The track's total duration changes by deltaOut minus deltaIn.
func (c *Clip) Ripple(deltaIn, deltaOut RationalTime) error {
	next, err := c.adjustedSource(deltaIn, deltaOut)
	if err != nil {
		return err
	}
	c.sourceRange = next
	return nil
}

// Roll moves the edit point between this clip and its immediate neighbors:
// the previous sibling's tail absorbs deltaIn and the next sibling's head
// absorbs deltaOut, so the combined span of the affected children is
// unchanged. A zero delta leaves that side alone; a nonzero delta requires
// the corresponding neighbor.
func (c *Clip) Roll(deltaIn, deltaOut RationalTime) error {
	p := c.Parent()
	if p == nil {
		return ErrNoParent
	}
	index, ok := indexOfChild(p, c)
	if !ok {
		return ErrNoParent
	}
	next, err := c.adjustedSource(deltaIn, deltaOut)
	if err != nil {
		return err
	}

	kids := p.childSlice()
	var prevSib, nextSib Composable
	if deltaIn.Value != 0 {
		if index == 0 {
			return ErrIndexOutOfRange
		}
		prevSib = kids[index-1]
		if err := checkTailAdjust(prevSib, deltaIn); err != nil {
			return err
		}
	}
	if deltaOut.Value != 0 {
		if index+1 >= len(kids) {
			return ErrIndexOutOfRange
		}
		nextSib = kids[index+1]
		if err := checkHeadAdjust(nextSib, deltaOut); err != nil {
			return err
		}
	}

	if prevSib != nil {
		if err := adjustTail(prevSib, deltaIn); err != nil {
			return err
		}
	}
	if nextSib != nil {
		if err := adjustHead(nextSib, deltaOut); err != nil {
			return err
		}
	}
	c.sourceRange = next
	return nil
}

// adjustedSource computes the clip's source range after an in/out boundary
// adjustment, failing with ErrNegativeDuration when the window collapses.
func (c *Clip) adjustedSource(deltaIn, deltaOut RationalTime) (TimeRange, error) {
	if err := deltaIn.Validate(); err != nil {
		return TimeRange{}, err
	}
	if err := deltaOut.Validate(); err != nil {
		return TimeRange{}, err
	}
	next := c.sourceRange
	next.StartTime = next.StartTime.Add(deltaIn)
	next.Duration = next.Duration.Sub(deltaIn).Add(deltaOut)
	if next.Duration.Value < 0 {
		return TimeRange{}, ErrNegativeDuration
	}
	return next, nil
}

// checkTailAdjust reports whether a sibling's tail can move by delta.
func checkTailAdjust(c Composable, delta RationalTime) error {
	switch v := c.(type) {
	case *Clip:
		if v.sourceRange.Duration.Add(delta).Value < 0 {
			return ErrNegativeDuration
		}
		return nil
	case *Gap:
		if v.duration.Add(delta).Value < 0 {
			return ErrNegativeDuration
		}
		return nil
	case *Transition:
		return ErrTransitionConflict
	}
	return ErrCannotSplit
}

// checkHeadAdjust reports whether a sibling's head can move by delta.
func checkHeadAdjust(c Composable, delta RationalTime) error {
	switch v := c.(type) {
	case *Clip:
		if v.sourceRange.Duration.Sub(delta).Value < 0 {
			return ErrNegativeDuration
		}
		return nil
	case *Gap:
		if v.duration.Sub(delta).Value < 0 {
			return ErrNegativeDuration
		}
		return nil
	case *Transition:
		return ErrTransitionConflict
	}
	return ErrCannotSplit
}

// adjustTail moves a sibling's tail boundary by delta, growing when
// positive.
func adjustTail(c Composable, delta RationalTime) error {
	if err := checkTailAdjust(c, delta); err != nil {
		return err
	}
	switch v := c.(type) {
	case *Clip:
		v.sourceRange.Duration = v.sourceRange.Duration.Add(delta)
	case *Gap:
		v.duration = v.duration.Add(delta)
	}
	return nil
}

// adjustHead moves a sibling's head boundary by delta, consuming content
// from the head when positive. Clips keep their media alignment by moving
// the source start along with the boundary.
func adjustHead(c Composable, delta RationalTime) error {
	if err := checkHeadAdjust(c, delta); err != nil {
		return err
	}
	switch v := c.(type) {
	case *Clip:
		v.sourceRange.StartTime = v.sourceRange.StartTime.Add(delta)
		v.sourceRange.Duration = v.sourceRange.Duration.Sub(delta)
	case *Gap:
		v.duration = v.duration.Sub(delta)
	}
	return nil
}

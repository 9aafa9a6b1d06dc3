package montage

// ClipIter iterates over the clips of a subtree in depth-first child order.
// The result set is collected when the iterator is created: Count is O(1)
// and Reset replays the same clips even if the tree has changed since.
type ClipIter struct {
	clips []*Clip
	index int
}

func newClipIter(root Composition) *ClipIter {
	it := &ClipIter{}
	collectClips(root, &it.clips)
	return it
}

// collectClips walks the subtree in child order, recursing into nested
// tracks and stacks and skipping gaps and transitions.
func collectClips(c Composition, out *[]*Clip) {
	for _, k := range c.childSlice() {
		switch child := k.(type) {
		case *Clip:
			*out = append(*out, child)
		case *Track:
			collectClips(child, out)
		case *Stack:
			collectClips(child, out)
		}
	}
}

// Next returns the next clip, or false when the iteration is exhausted.
func (it *ClipIter) Next() (*Clip, bool) {
	if it.index >= len(it.clips) {
		return nil, false
	}
	clip := it.clips[it.index]
	it.index++
	return clip, true
}

// Reset rewinds the iterator to the first clip.
func (it *ClipIter) Reset() { it.index = 0 }

// Count returns the total number of clips found, without consuming the
// iteration.
func (it *ClipIter) Count() int { return len(it.clips) }

// Collect returns all remaining clips and exhausts the iterator.
func (it *ClipIter) Collect() []*Clip {
	out := make([]*Clip, 0, len(it.clips)-it.index)
	for {
		c, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}

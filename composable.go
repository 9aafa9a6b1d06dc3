package montage

// Composable is any entity that can occupy a slot in a Track or Stack.
// The set is closed: Clip, Gap, Transition, Track, and Stack implement it,
// and callers dispatch on the concrete type with a type switch.
type Composable interface {
	Name() string
	SetName(name string)
	SetMetadata(key, value string)
	GetMetadata(key string) (string, bool)

	// Parent returns the owning composition, or nil when the entity is
	// detached (or is a timeline's root stack).
	Parent() Composition

	// attach transfers ownership to the given parent. Fails with
	// ErrAlreadyAttached when the entity already has a parent.
	attach(parent Composition) error

	// release clears the weak parent pointer after removal.
	release()

	// occupiedDuration is the width the entity contributes to sequential
	// layout in the given tick domain. Transitions contribute zero.
	occupiedDuration(rate float64) (RationalTime, error)
}

// Composition is the container side of the tree: the operations shared by
// Track and Stack.
type Composition interface {
	Composable

	// ChildrenCount returns the number of attached children.
	ChildrenCount() int

	// ChildAt returns the child at the given index.
	ChildAt(index int) (Composable, error)

	// Children returns an iterator over the current children. The child
	// count is snapshotted when the iterator is created; children are
	// re-read live per step, so a shrinking container ends the iteration
	// early and children appended after creation are not visited.
	Children() *ChildIter

	// Append adds a child after all existing children, transferring
	// ownership to this composition.
	Append(child Composable) error

	// Insert adds a child at the given index (0..ChildrenCount inclusive),
	// transferring ownership to this composition.
	Insert(index int, child Composable) error

	// RemoveChild detaches and returns the child at the given index. The
	// caller decides whether the detached subtree is kept or discarded.
	RemoveChild(index int) (Composable, error)

	// ClearChildren detaches all children. It succeeds even when the
	// composition is already empty.
	ClearChildren()

	// TrimmedRange returns the composition's time extent derived from its
	// children. Fails with ErrEmptyComposition when there are none.
	TrimmedRange() (TimeRange, error)

	// RangeOfChildAtIndex returns the range the child at the given index
	// occupies in this composition's local space.
	RangeOfChildAtIndex(index int) (TimeRange, error)

	// FindClips returns an iterator over every clip in this subtree, in
	// depth-first child order.
	FindClips() *ClipIter

	// childSlice exposes the live child slice to the engine internals.
	childSlice() []Composable

	// setChildSlice replaces the child slice wholesale. Used by the edit
	// engine to commit a buffered mutation; attachment bookkeeping is the
	// caller's responsibility.
	setChildSlice(kids []Composable)
}

// composition holds the ordered child slice shared by Track and Stack.
type composition struct {
	item
	kids []Composable
}

func (c *composition) ChildrenCount() int { return len(c.kids) }

func (c *composition) ChildAt(index int) (Composable, error) {
	if index < 0 || index >= len(c.kids) {
		return nil, ErrIndexOutOfRange
	}
	return c.kids[index], nil
}

func (c *composition) childSlice() []Composable { return c.kids }

func (c *composition) setChildSlice(kids []Composable) { c.kids = kids }

// appendChild implements Append for a concrete parent.
func (c *composition) appendChild(parent Composition, child Composable) error {
	if err := child.attach(parent); err != nil {
		return err
	}
	c.kids = append(c.kids, child)
	return nil
}

// insertChild implements Insert for a concrete parent. index may equal the
// child count, in which case this is an append.
func (c *composition) insertChild(parent Composition, index int, child Composable) error {
	if index < 0 || index > len(c.kids) {
		return ErrIndexOutOfRange
	}
	if err := child.attach(parent); err != nil {
		return err
	}
	c.kids = append(c.kids, nil)
	copy(c.kids[index+1:], c.kids[index:])
	c.kids[index] = child
	return nil
}

func (c *composition) removeChild(index int) (Composable, error) {
	if index < 0 || index >= len(c.kids) {
		return nil, ErrIndexOutOfRange
	}
	child := c.kids[index]
	copy(c.kids[index:], c.kids[index+1:])
	c.kids[len(c.kids)-1] = nil
	c.kids = c.kids[:len(c.kids)-1]
	child.release()
	return child, nil
}

func (c *composition) clearChildren() {
	for _, child := range c.kids {
		child.release()
	}
	c.kids = nil
}

// indexOfChild locates a child by identity.
func indexOfChild(parent Composition, child Composable) (int, bool) {
	for i, k := range parent.childSlice() {
		if k == child {
			return i, true
		}
	}
	return 0, false
}

// ChildIter iterates over a composition's children. See
// Composition.Children for the snapshot policy.
type ChildIter struct {
	parent Composition
	index  int
	count  int
}

func newChildIter(parent Composition) *ChildIter {
	return &ChildIter{parent: parent, count: parent.ChildrenCount()}
}

// Next returns the next child, or false when the iteration is exhausted.
func (it *ChildIter) Next() (Composable, bool) {
	if it.index >= it.count {
		return nil, false
	}
	kids := it.parent.childSlice()
	if it.index >= len(kids) {
		it.index = it.count
		return nil, false
	}
	child := kids[it.index]
	it.index++
	return child, true
}

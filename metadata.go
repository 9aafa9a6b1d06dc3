package montage

// item is the state shared by every entity: a display name, a string
// metadata map, and (for composables) a weak back-reference to the owning
// composition. The parent pointer confers no ownership; the strong edges
// run parent to child through the composition's child slice.
type item struct {
	name     string
	metadata map[string]string
	parent   Composition
}

// Name returns the entity's display name.
func (it *item) Name() string { return it.name }

// SetName sets the entity's display name.
func (it *item) SetName(name string) { it.name = name }

// SetMetadata stores a key/value pair. Writing an existing key replaces its
// value. The engine attaches no meaning to any key.
func (it *item) SetMetadata(key, value string) {
	if it.metadata == nil {
		it.metadata = make(map[string]string)
	}
	it.metadata[key] = value
}

// GetMetadata looks up a metadata value by key.
func (it *item) GetMetadata(key string) (string, bool) {
	v, ok := it.metadata[key]
	return v, ok
}

// MetadataKeys returns the stored metadata keys in unspecified order.
func (it *item) MetadataKeys() []string {
	if len(it.metadata) == 0 {
		return nil
	}
	keys := make([]string, 0, len(it.metadata))
	for k := range it.metadata {
		keys = append(keys, k)
	}
	return keys
}

// Parent returns the owning Track or Stack, or nil when detached. Callers
// discriminate the parent kind with a type switch.
func (it *item) Parent() Composition { return it.parent }

func (it *item) attach(parent Composition) error {
	if it.parent != nil {
		return ErrAlreadyAttached
	}
	it.parent = parent
	return nil
}

func (it *item) release() { it.parent = nil }

func (it *item) copyMetadata() map[string]string {
	if len(it.metadata) == 0 {
		return nil
	}
	m := make(map[string]string, len(it.metadata))
	for k, v := range it.metadata {
		m[k] = v
	}
	return m
}

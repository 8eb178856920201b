package charset

// Registry is the ordered collection of registered sets. Order matters:
// the config menu cycles sets by index with wraparound.
type Registry struct {
	sets []*Set
}

// NewRegistry registers the given sets. At least one set is required.
func NewRegistry(sets ...*Set) *Registry {
	if len(sets) == 0 {
		panic("charset: registry needs at least one set")
	}
	return &Registry{sets: sets}
}

// Len returns the number of registered sets
func (r *Registry) Len() int {
	return len(r.sets)
}

// Set returns the set at index. An out-of-range index is a programmer
// error; all indices come from a wrapped Config.
func (r *Registry) Set(index int) *Set {
	return r.sets[index]
}

package ir

// TypeDef is the declaration unit handed to an emitter: a named root node
// plus its doc comments and export override.
type TypeDef struct {
	// Name is the declaration name.
	Name string

	// Comments are the doc-comment lines attached to the declaration.
	Comments []string

	// Export overrides the configuration's export-by-default policy for
	// this one type. nil means no override.
	Export *bool

	// Inner is the declaration's root node.
	Inner DataType
}

// Def returns a TypeDef for the given root node.
func Def(name string, inner DataType, comments ...string) *TypeDef {
	return &TypeDef{Name: name, Comments: comments, Inner: inner}
}

// Registry is an append-only collection of named type definitions with
// stable insertion order. Providers populate it while collecting types;
// export orchestration reads it to decide what to emit. Emitters never
// resolve references against it (references render by name), so recursive
// shapes cannot expand infinitely.
//
// A Registry is owned by a single export operation and is not safe for
// concurrent mutation.
type Registry struct {
	defs  map[string]*TypeDef
	order []string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*TypeDef)}
}

// Add registers a definition. The first definition of a name wins;
// re-registering an already-seen name is a no-op so cyclic collection
// passes terminate.
func (r *Registry) Add(def *TypeDef) {
	if def == nil || def.Name == "" {
		return
	}
	if _, ok := r.defs[def.Name]; ok {
		return
	}
	r.defs[def.Name] = def
	r.order = append(r.order, def.Name)
}

// Contains reports whether a name has been registered.
func (r *Registry) Contains(name string) bool {
	_, ok := r.defs[name]
	return ok
}

// Get returns the definition registered under name, or nil.
func (r *Registry) Get(name string) *TypeDef {
	return r.defs[name]
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int { return len(r.order) }

// Defs returns all definitions in insertion order.
func (r *Registry) Defs() []*TypeDef {
	out := make([]*TypeDef, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.defs[name])
	}
	return out
}

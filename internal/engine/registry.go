package engine

import (
	"fmt"
	"sort"
)

// Registry maps engine names to their capability bundles. It is the sole
// integration seam between the pipeline and engine-specific behavior:
// adding an engine means adding one entry, not a new subtype.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: map[string]Strategy{}}
}

// Register installs strategies under their names, replacing any existing
// entry with the same name.
func (r *Registry) Register(strats ...Strategy) *Registry {
	for _, s := range strats {
		r.strategies[s.Name] = s
	}
	return r
}

// Lookup resolves an engine name to its strategy. Empty or unknown names
// fail with a message naming the engine, wrapping ErrUnsupportedEngine.
func (r *Registry) Lookup(name string) (Strategy, error) {
	s, ok := r.strategies[name]
	if !ok {
		return Strategy{}, fmt.Errorf("%w: engine '%s' is not supported yet", ErrUnsupportedEngine, name)
	}
	return s, nil
}

// Names returns the registered engine names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

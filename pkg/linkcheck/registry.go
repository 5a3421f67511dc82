package linkcheck

import "sync"

// Registry holds the validation rules in their fixed pipeline order.
// Order only matters for readability of output: rules are
// column-disjoint and commute, so the final table is the same whatever
// order they run in.
type Registry struct {
	mu     sync.RWMutex
	order  []Rule
	byID   map[string]Rule
	byName map[string]Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]Rule),
		byName: make(map[string]Rule),
	}
}

// Register appends a rule. Registering an ID twice replaces the earlier
// rule but keeps its position.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rule.ID()]; exists {
		for i, existing := range r.order {
			if existing.ID() == rule.ID() {
				r.order[i] = rule
				break
			}
		}
	} else {
		r.order = append(r.order, rule)
	}
	r.byID[rule.ID()] = rule
	r.byName[rule.Name()] = rule
}

// Get retrieves a rule by ID or column name.
func (r *Registry) Get(key string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rule, ok := r.byID[key]; ok {
		return rule, true
	}
	if rule, ok := r.byName[key]; ok {
		return rule, true
	}
	return nil, false
}

// Rules returns the rules in registration order.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Rule, len(r.order))
	copy(out, r.order)
	return out
}

// Names returns the verdict column names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.order))
	for _, rule := range r.order {
		out = append(out, rule.Name())
	}
	return out
}

// DefaultRegistry holds the built-in rules, registered during init in
// pipeline order.
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()

package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/aretw0/testhooks/pkg/domain"
	"github.com/aretw0/testhooks/pkg/labels"
)

// Registry stores the run callback and the label callbacks.
// Records live in an append-only arena indexed by domain.Handle; nothing is
// removed until Reset.
type Registry struct {
	mu      sync.RWMutex
	run     domain.RunCallback
	records []domain.Record
	byLabel map[string][]domain.Handle
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byLabel: make(map[string][]domain.Handle),
	}
}

// RegisterRun stores the callback fired at run start and run end.
// Only one may be registered; the first one stays in place.
func (r *Registry) RegisterRun(body domain.RunCallback) error {
	if body == nil {
		return fmt.Errorf("register run callback: %w", domain.ErrNilCallback)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.run != nil {
		return fmt.Errorf("register run callback: %w", domain.ErrDuplicateRegistration)
	}
	r.run = body
	return nil
}

// RegisterLabel adds body under every label of expr.
// A single record is created, so the returned handle is shared by all labels.
// An expression without labels yields a record no test case can reach.
func (r *Registry) RegisterLabel(expr string, body domain.LabelCallback, shared bool) (domain.Handle, error) {
	if body == nil {
		return 0, fmt.Errorf("register callback for %q: %w", expr, domain.ErrNilCallback)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, domain.Record{Body: body, Shared: shared, Expr: expr})
	h := domain.Handle(len(r.records) - 1)

	for _, label := range labels.Split(expr) {
		r.byLabel[label] = append(r.byLabel[label], h)
	}
	return h, nil
}

// Run returns the run callback, or nil if none was registered.
func (r *Registry) Run() domain.RunCallback {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.run
}

// Lookup returns a copy of the handles registered under label.
func (r *Registry) Lookup(label string) []domain.Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.byLabel[label])
}

// Get returns the record for h. h must come from this registry.
func (r *Registry) Get(h domain.Handle) domain.Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.records[h]
}

// Len returns the number of label callbacks registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// Labels returns every known canonical label, sorted.
func (r *Registry) Labels() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.byLabel))
	for label := range r.byLabel {
		out = append(out, label)
	}
	slices.Sort(out)
	return out
}

// Reset discards every registration.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.run = nil
	r.records = nil
	r.byLabel = make(map[string][]domain.Handle)
}

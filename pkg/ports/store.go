package ports

import "github.com/aretw0/testhooks/pkg/domain"

// CallbackStore holds the registered run and label callbacks.
type CallbackStore interface {
	// RegisterRun stores the run callback.
	// Returns domain.ErrDuplicateRegistration if one is already stored.
	RegisterRun(body domain.RunCallback) error

	// RegisterLabel stores body under every label of expr and returns its handle.
	RegisterLabel(expr string, body domain.LabelCallback, shared bool) (domain.Handle, error)

	// Run returns the run callback, or nil.
	Run() domain.RunCallback

	// Lookup returns the handles registered under a canonical label, in
	// registration order. Unknown labels yield an empty slice.
	Lookup(label string) []domain.Handle

	// Get returns the record of a handle issued by this store.
	Get(h domain.Handle) domain.Record

	// Reset discards every registration.
	Reset()
}

package contracts

// MutationResult is the outcome of a create, update or delete against the
// backend. A failed call is reported once and otherwise dropped.
type MutationResult struct {
	OK      bool
	ID      *int64
	Message string
}

package reconcile

import "fmt"

// ValidationError reports a semantically invalid assigned item.
// It is surfaced before any adjustment is attempted.
type ValidationError struct {
	// Index is the position of the offending item in the submitted list.
	Index  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid item at index %d: %s %s", e.Index, e.Field, e.Reason)
}

// NotFoundError reports that no inventory record matches a normalized key.
type NotFoundError struct {
	Key ItemKey
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no inventory record for %s", e.Key)
}

// AmbiguousMatchError reports that more than one inventory record matches a
// normalized key. The lookup is never resolved by picking one arbitrarily;
// the ambiguity is surfaced so it can be repaired.
type AmbiguousMatchError struct {
	Key     ItemKey
	Matches int
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("%d inventory records match %s, refusing to pick one", e.Matches, e.Key)
}

// InsufficientStockError reports a deduction that would drive a record's
// quantity below zero. The deduction is rejected, not clamped.
type InsufficientStockError struct {
	Key       ItemKey
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.Key, e.Requested, e.Available)
}

// VerificationError reports a post-apply re-read that disagrees with the
// expected quantity. It indicates either a concurrent external mutation or
// an engine defect and must never be swallowed.
type VerificationError struct {
	Key      ItemKey
	Expected int
	Actual   int
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("verification mismatch on %s: expected quantity %d, read %d",
		e.Key, e.Expected, e.Actual)
}

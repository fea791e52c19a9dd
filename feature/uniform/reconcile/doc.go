// Package reconcile keeps the central inventory ledger consistent with what
// is recorded on each member's uniform record.
//
// Given a member's previous item list and a newly submitted one, the engine
// decides per item whether inventory must be deducted, restored, or left
// untouched, and applies each decision as an exact, idempotent adjustment
// against a single inventory record.
//
// # Plan / Apply split
//
// Plan produces the ordered adjustment list without touching storage; every
// adjustment is resolved to a unique inventory record up front, so an
// unresolvable or ambiguous target fails the batch before any mutation.
// Apply then executes each adjustment as one atomic counter increment,
// re-reads the record, and verifies the result.
//
// # Failure model
//
// The adjustment list for one request is not wrapped in a cross-record
// transaction. Each adjustment is independently atomic, but a failure
// partway through Apply leaves earlier adjustments in place; Apply returns
// the outcomes it did complete so the caller can report them. Concurrent
// deductions against the same record near zero stock are backstopped only
// by the guarded decrement, which rejects negative stock at the storage
// layer.
//
// # Events
//
// The engine emits typed events (AdjustmentPlanned, AdjustmentApplied,
// VerificationFailed) to an injected EventSink rather than logging text
// itself.
package reconcile

package reconcile

import "fmt"

// ItemKey identifies exactly one inventory record after normalization.
type ItemKey struct {
	Category       string
	Type           string
	NormalizedSize string
}

func (k ItemKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Category, k.Type, k.NormalizedSize)
}

// Action is the direction of a stock adjustment.
type Action string

const (
	ActionDeduct  Action = "deduct"
	ActionRestore Action = "restore"
)

// Adjustment is a signed quantity change targeted at exactly one inventory
// record. Amount < 0 deducts, > 0 restores. Adjustments are transient; they
// exist only for the duration of one update request.
type Adjustment struct {
	// Key is the normalized inventory key the adjustment resolved to.
	Key ItemKey

	// RecordID is the resolved inventory record, looked up at plan time so
	// that an unresolvable adjustment fails the batch before anything is
	// applied.
	RecordID uint

	// Size is the original (un-normalized) size label, kept for reporting.
	Size string

	// Amount is the signed quantity change.
	Amount int
}

// Action returns the direction implied by the adjustment's sign.
func (a Adjustment) Action() Action {
	if a.Amount < 0 {
		return ActionDeduct
	}
	return ActionRestore
}

// Plan is an ordered list of adjustments for one update request.
// Restores come before deductions so that a size swap near the stock limit
// returns the old unit before the new one is claimed.
type Plan struct {
	Adjustments []Adjustment
}

// Options controls apply behavior.
type Options struct {
	// DryRun plans without mutating any inventory record.
	DryRun bool
}

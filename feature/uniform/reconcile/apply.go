package reconcile

import (
	"context"
	"errors"

	"uniform-manager/feature/uniform/models"
)

// ErrStockConflict is returned by Store implementations when a guarded
// decrement matched no row, meaning the deduction would have driven the
// quantity negative.
var ErrStockConflict = errors.New("stock conflict: guarded update matched no row")

// Store is the storage contract the applier needs. The counter mutation
// must be a single atomic increment at the storage layer, not a
// read-modify-write in application code.
type Store interface {
	// QuantityByID reads the current quantity of an inventory record.
	QuantityByID(ctx context.Context, id uint) (int, error)

	// AdjustQuantity applies `quantity = quantity + delta` atomically.
	// A deduction that would drive the quantity below zero must not be
	// applied; implementations return ErrStockConflict in that case.
	AdjustQuantity(ctx context.Context, id uint, delta int) error
}

// Apply executes a plan's adjustments in order. Each adjustment mutates
// exactly one inventory record; after applying, the record is re-read and
// the resulting quantity verified against expectation.
//
// The batch is NOT atomic across records: a failure partway through leaves
// earlier adjustments applied. The outcomes accumulated so far are returned
// alongside the error so the caller can report exactly what changed.
func (e *Engine) Apply(ctx context.Context, store Store, plan *Plan, opts Options) ([]models.AdjustmentOutcome, error) {
	outcomes := make([]models.AdjustmentOutcome, 0, len(plan.Adjustments))

	for _, adj := range plan.Adjustments {
		before, err := store.QuantityByID(ctx, adj.RecordID)
		if err != nil {
			return outcomes, err
		}

		if adj.Amount < 0 && before+adj.Amount < 0 {
			return outcomes, &InsufficientStockError{
				Key:       adj.Key,
				Requested: -adj.Amount,
				Available: before,
			}
		}

		if opts.DryRun {
			outcomes = append(outcomes, outcome(adj, before+adj.Amount))
			continue
		}

		if err := store.AdjustQuantity(ctx, adj.RecordID, adj.Amount); err != nil {
			if errors.Is(err, ErrStockConflict) {
				// Lost a race between the pre-check and the guarded update.
				available, readErr := store.QuantityByID(ctx, adj.RecordID)
				if readErr != nil {
					available = before
				}
				return outcomes, &InsufficientStockError{
					Key:       adj.Key,
					Requested: -adj.Amount,
					Available: available,
				}
			}
			return outcomes, err
		}

		after, err := store.QuantityByID(ctx, adj.RecordID)
		if err != nil {
			return outcomes, err
		}

		if expected := before + adj.Amount; after != expected {
			e.sink.VerificationFailed(adj, expected, after)
			return outcomes, &VerificationError{Key: adj.Key, Expected: expected, Actual: after}
		}

		e.sink.AdjustmentApplied(adj, after)
		outcomes = append(outcomes, outcome(adj, after))
	}

	return outcomes, nil
}

func outcome(adj Adjustment, resulting int) models.AdjustmentOutcome {
	amount := adj.Amount
	if amount < 0 {
		amount = -amount
	}
	return models.AdjustmentOutcome{
		Category:          adj.Key.Category,
		Type:              adj.Key.Type,
		Size:              adj.Size,
		Action:            string(adj.Action()),
		Amount:            amount,
		ResultingQuantity: resulting,
	}
}

package reconcile

import (
	"uniform-manager/feature/uniform/catalog"
	"uniform-manager/feature/uniform/models"
)

// Engine plans and applies inventory adjustments for member uniform updates.
type Engine struct {
	sink EventSink
}

// NewEngine creates an engine emitting events to the given sink.
// A nil sink discards events.
func NewEngine(sink EventSink) *Engine {
	if sink == nil {
		sink = NopSink{}
	}
	return &Engine{sink: sink}
}

// ValidateItems performs the engine's semantic validation of a submitted
// item list: status values must be known, and a size is required exactly
// when the type is a main item and the item is Available. Structural
// validation (required fields, numeric well-formedness) is the caller's job.
func ValidateItems(items []models.AssignedItem) error {
	for i, item := range items {
		if !item.Status.Valid() {
			return &ValidationError{Index: i, Field: "status", Reason: "is not a known status"}
		}
		if item.Quantity < 1 {
			return &ValidationError{Index: i, Field: "quantity", Reason: "must be at least 1"}
		}

		normalized := catalog.NormalizeSize(item.Size, catalog.ClassOf(item.Type))
		required := catalog.RequiresSize(item.Type, item.EffectiveStatus())
		if required && normalized == catalog.NoSize {
			return &ValidationError{Index: i, Field: "size", Reason: "is required for this item"}
		}
	}
	return nil
}

// slot is one logical line of a member record, identified by the normalized
// (category, type, size) key. A size change therefore shows up as one slot
// disappearing and another appearing, which is exactly right: the old
// size's record is restored and the new size's record is deducted, as two
// independent adjustments.
type slot struct {
	old *models.AssignedItem
	new *models.AssignedItem
}

// Plan compares a member's previous item list against the newly submitted
// one and produces the ordered list of adjustments. Every adjustment is
// resolved to a unique inventory record through the index; an unresolvable
// or ambiguous target fails the whole plan before anything is applied.
//
// Restores are ordered before deductions so that a size swap returns the
// old unit to stock before the new one is claimed.
func (e *Engine) Plan(idx *Index, previous, next []models.AssignedItem) (*Plan, error) {
	if err := ValidateItems(next); err != nil {
		return nil, err
	}

	slots := make(map[ItemKey]*slot)
	var order []ItemKey

	track := func(key ItemKey) *slot {
		s, ok := slots[key]
		if !ok {
			s = &slot{}
			slots[key] = s
			order = append(order, key)
		}
		return s
	}

	for i := range next {
		item := next[i]
		track(Key(item.Category, item.Type, item.Size)).new = &next[i]
	}
	for i := range previous {
		item := previous[i]
		track(Key(item.Category, item.Type, item.Size)).old = &previous[i]
	}

	var restores, deducts []Adjustment

	for _, key := range order {
		s := slots[key]

		if amount := restoreAmount(s); amount > 0 {
			adj, err := e.resolve(idx, key, originalSize(s.old), amount)
			if err != nil {
				return nil, err
			}
			restores = append(restores, adj)
		}

		if amount := deductAmount(s); amount > 0 {
			adj, err := e.resolve(idx, key, originalSize(s.new), -amount)
			if err != nil {
				return nil, err
			}
			deducts = append(deducts, adj)
		}
	}

	plan := &Plan{Adjustments: append(restores, deducts...)}
	for _, adj := range plan.Adjustments {
		e.sink.AdjustmentPlanned(adj)
	}
	return plan, nil
}

// restoreAmount computes how much stock returns for a slot.
// Stock only ever comes back from a previously Available item: the member
// returns the full quantity when the line is removed or leaves Available,
// and the difference when the quantity shrinks while staying Available.
func restoreAmount(s *slot) int {
	if s.old == nil || s.old.EffectiveStatus() != models.StatusAvailable {
		return 0
	}
	if s.new == nil || s.new.EffectiveStatus() != models.StatusAvailable {
		// Leaving Available returns the entire previously-issued quantity,
		// not a delta.
		return s.old.Quantity
	}
	if s.new.Quantity < s.old.Quantity {
		return s.old.Quantity - s.new.Quantity
	}
	return 0
}

// deductAmount computes how much stock is issued for a slot.
// Nothing is ever deducted for a currently non-Available item, regardless
// of quantity changes. Entering Available (from absent or from a
// non-Available state) deducts the full new quantity; growing while
// Available deducts the net increase.
func deductAmount(s *slot) int {
	if s.new == nil || s.new.EffectiveStatus() != models.StatusAvailable {
		return 0
	}
	if s.old == nil || s.old.EffectiveStatus() != models.StatusAvailable {
		return s.new.Quantity
	}
	if s.new.Quantity > s.old.Quantity {
		return s.new.Quantity - s.old.Quantity
	}
	return 0
}

func originalSize(item *models.AssignedItem) string {
	if item == nil {
		return ""
	}
	return item.Size
}

func (e *Engine) resolve(idx *Index, key ItemKey, size string, amount int) (Adjustment, error) {
	rec, err := idx.locateKey(key)
	if err != nil {
		return Adjustment{}, err
	}
	return Adjustment{
		Key:      key,
		RecordID: rec.ID,
		Size:     size,
		Amount:   amount,
	}, nil
}

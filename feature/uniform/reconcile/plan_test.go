package reconcile

import (
	"testing"

	"uniform-manager/feature/uniform/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIndex() *Index {
	return NewIndex([]models.InventoryRecord{
		record(1, "Uniform No 4", "Boot", "UK 8"),
		record(2, "Uniform No 4", "Boot", "UK 7"),
		record(3, "Uniform No 1", "Beret", "6 3/4"),
		record(4, "Uniform No 1", "Beret", "6 5/8"),
		record(5, "Accessories No 3", "Beret Logo Pin", ""),
		record(6, "Uniform No 3", "Shirt", "XL"),
	})
}

func available(category, itemType, size string, qty int) models.AssignedItem {
	return models.AssignedItem{Category: category, Type: itemType, Size: size, Quantity: qty, Status: models.StatusAvailable}
}

func TestPlan_NewAssignmentDeducts(t *testing.T) {
	engine := NewEngine(nil)

	plan, err := engine.Plan(testIndex(), nil, []models.AssignedItem{
		available("Uniform No 4", "Boot", "UK 8", 1),
	})
	require.NoError(t, err)
	require.Len(t, plan.Adjustments, 1)

	adj := plan.Adjustments[0]
	assert.Equal(t, uint(1), adj.RecordID)
	assert.Equal(t, -1, adj.Amount)
	assert.Equal(t, ActionDeduct, adj.Action())
}

func TestPlan_SizeChangeIssuesExactlyTwoAdjustments(t *testing.T) {
	engine := NewEngine(nil)

	previous := []models.AssignedItem{available("Uniform No 4", "Boot", "UK 8", 1)}
	next := []models.AssignedItem{available("Uniform No 4", "Boot", "UK 7", 1)}

	plan, err := engine.Plan(testIndex(), previous, next)
	require.NoError(t, err)
	require.Len(t, plan.Adjustments, 2)

	// Restore against the old size's record comes first.
	restore := plan.Adjustments[0]
	assert.Equal(t, uint(1), restore.RecordID)
	assert.Equal(t, 1, restore.Amount)

	deduct := plan.Adjustments[1]
	assert.Equal(t, uint(2), deduct.RecordID)
	assert.Equal(t, -1, deduct.Amount)
}

func TestPlan_HeadwearSizeChangeTargetsExactRecords(t *testing.T) {
	engine := NewEngine(nil)

	previous := []models.AssignedItem{available("Uniform No 1", "Beret", "6 3/4", 1)}
	next := []models.AssignedItem{available("Uniform No 1", "Beret", "6 5/8", 1)}

	plan, err := engine.Plan(testIndex(), previous, next)
	require.NoError(t, err)
	require.Len(t, plan.Adjustments, 2)

	assert.Equal(t, uint(3), plan.Adjustments[0].RecordID) // restore "6 3/4"
	assert.Equal(t, 1, plan.Adjustments[0].Amount)
	assert.Equal(t, uint(4), plan.Adjustments[1].RecordID) // deduct "6 5/8"
	assert.Equal(t, -1, plan.Adjustments[1].Amount)
}

func TestPlan_NoDeductionForNonAvailableItems(t *testing.T) {
	engine := NewEngine(nil)

	for _, status := range []models.Status{models.StatusNotAvailable, models.StatusMissing} {
		t.Run(string(status), func(t *testing.T) {
			previous := []models.AssignedItem{
				{Category: "Uniform No 3", Type: "Shirt", Size: "XL", Quantity: 1, Status: status},
			}
			// Quantity grows, but the item is still not Available.
			next := []models.AssignedItem{
				{Category: "Uniform No 3", Type: "Shirt", Size: "XL", Quantity: 3, Status: status},
			}

			plan, err := engine.Plan(testIndex(), previous, next)
			require.NoError(t, err)
			assert.Empty(t, plan.Adjustments)
		})
	}
}

func TestPlan_LeavingAvailableRestoresFullQuantity(t *testing.T) {
	engine := NewEngine(nil)

	previous := []models.AssignedItem{available("Uniform No 3", "Shirt", "XL", 3)}
	next := []models.AssignedItem{
		// Quantity also drops, but the restore is the full prior quantity,
		// not the delta.
		{Category: "Uniform No 3", Type: "Shirt", Size: "XL", Quantity: 1, Status: models.StatusNotAvailable},
	}

	plan, err := engine.Plan(testIndex(), previous, next)
	require.NoError(t, err)
	require.Len(t, plan.Adjustments, 1)
	assert.Equal(t, 3, plan.Adjustments[0].Amount)
	assert.Equal(t, ActionRestore, plan.Adjustments[0].Action())
}

func TestPlan_QuantityDeltas(t *testing.T) {
	engine := NewEngine(nil)

	t.Run("increase deducts the net increase", func(t *testing.T) {
		plan, err := engine.Plan(testIndex(),
			[]models.AssignedItem{available("Uniform No 3", "Shirt", "XL", 1)},
			[]models.AssignedItem{available("Uniform No 3", "Shirt", "XL", 3)})
		require.NoError(t, err)
		require.Len(t, plan.Adjustments, 1)
		assert.Equal(t, -2, plan.Adjustments[0].Amount)
	})

	t.Run("decrease restores the difference", func(t *testing.T) {
		plan, err := engine.Plan(testIndex(),
			[]models.AssignedItem{available("Uniform No 3", "Shirt", "XL", 3)},
			[]models.AssignedItem{available("Uniform No 3", "Shirt", "XL", 1)})
		require.NoError(t, err)
		require.Len(t, plan.Adjustments, 1)
		assert.Equal(t, 2, plan.Adjustments[0].Amount)
	})

	t.Run("no change plans nothing", func(t *testing.T) {
		plan, err := engine.Plan(testIndex(),
			[]models.AssignedItem{available("Uniform No 3", "Shirt", "XL", 2)},
			[]models.AssignedItem{available("Uniform No 3", "Shirt", "XL", 2)})
		require.NoError(t, err)
		assert.Empty(t, plan.Adjustments)
	})
}

func TestPlan_RemovedItemRestores(t *testing.T) {
	engine := NewEngine(nil)

	plan, err := engine.Plan(testIndex(),
		[]models.AssignedItem{available("Uniform No 4", "Boot", "UK 8", 2)},
		nil)
	require.NoError(t, err)
	require.Len(t, plan.Adjustments, 1)
	assert.Equal(t, 2, plan.Adjustments[0].Amount)
	assert.Equal(t, uint(1), plan.Adjustments[0].RecordID)
}

func TestPlan_RemovedNonAvailableItemPlansNothing(t *testing.T) {
	engine := NewEngine(nil)

	// The item was never issued, so nothing comes back.
	previous := []models.AssignedItem{
		{Category: "Uniform No 4", Type: "Boot", Quantity: 1, Status: models.StatusMissing},
	}
	plan, err := engine.Plan(testIndex(), previous, nil)
	require.NoError(t, err)
	assert.Empty(t, plan.Adjustments)
}

func TestPlan_EnteringAvailableDeductsFullQuantity(t *testing.T) {
	engine := NewEngine(nil)

	previous := []models.AssignedItem{
		{Category: "Uniform No 3", Type: "Shirt", Size: "XL", Quantity: 2, Status: models.StatusMissing},
	}
	next := []models.AssignedItem{available("Uniform No 3", "Shirt", "XL", 2)}

	plan, err := engine.Plan(testIndex(), previous, next)
	require.NoError(t, err)
	require.Len(t, plan.Adjustments, 1)
	assert.Equal(t, -2, plan.Adjustments[0].Amount)
}

func TestPlan_DefaultStatusIsAvailable(t *testing.T) {
	engine := NewEngine(nil)

	next := []models.AssignedItem{
		{Category: "Accessories No 3", Type: "Beret Logo Pin", Quantity: 1},
	}
	plan, err := engine.Plan(testIndex(), nil, next)
	require.NoError(t, err)
	require.Len(t, plan.Adjustments, 1)
	assert.Equal(t, uint(5), plan.Adjustments[0].RecordID)
	assert.Equal(t, -1, plan.Adjustments[0].Amount)
}

func TestPlan_UnresolvableTargetFailsWholePlan(t *testing.T) {
	engine := NewEngine(nil)

	next := []models.AssignedItem{
		available("Uniform No 4", "Boot", "UK 8", 1),
		available("Uniform No 4", "Boot", "UK 12", 1), // no such record
	}
	plan, err := engine.Plan(testIndex(), nil, next)
	assert.Nil(t, plan)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestPlan_SizeRequiredValidation(t *testing.T) {
	engine := NewEngine(nil)

	t.Run("available main item without size is rejected", func(t *testing.T) {
		_, err := engine.Plan(testIndex(), nil, []models.AssignedItem{
			{Category: "Uniform No 1", Type: "Beret", Quantity: 1, Status: models.StatusAvailable},
		})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "size", vErr.Field)
	})

	t.Run("missing main item without size is fine", func(t *testing.T) {
		plan, err := engine.Plan(testIndex(), nil, []models.AssignedItem{
			{Category: "Uniform No 1", Type: "Beret", Quantity: 1, Status: models.StatusMissing},
		})
		require.NoError(t, err)
		assert.Empty(t, plan.Adjustments)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := engine.Plan(testIndex(), nil, []models.AssignedItem{
			{Category: "Uniform No 1", Type: "Beret", Size: "6 3/4", Quantity: 1, Status: "Lost"},
		})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "status", vErr.Field)
	})
}

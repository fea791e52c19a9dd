package reconcile

import (
	"testing"

	"uniform-manager/feature/uniform/catalog"
	"uniform-manager/feature/uniform/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id uint, category, itemType, size string) models.InventoryRecord {
	return models.InventoryRecord{
		ID:             id,
		Category:       category,
		ItemType:       itemType,
		Size:           size,
		NormalizedSize: catalog.NormalizeSize(size, catalog.ClassOf(itemType)),
		Quantity:       10,
	}
}

func TestLocate_LegacyLabels(t *testing.T) {
	idx := NewIndex([]models.InventoryRecord{
		record(1, "Uniform No 4", "Boot", "UK 8"),
		record(2, "Uniform No 4", "Boot", "UK 7"),
		record(3, "Accessories No 3", "Beret Logo Pin", ""),
	})

	// Legacy category label and folded size both resolve.
	rec, err := idx.Locate("Uniform-No-4", "Boots", "uk8")
	require.NoError(t, err)
	assert.Equal(t, uint(1), rec.ID)

	// Accessory lookups collapse any size to the sentinel.
	rec, err = idx.Locate("AccessoriesNo3", "BeretLogoPin", "N/A")
	require.NoError(t, err)
	assert.Equal(t, uint(3), rec.ID)
}

func TestLocate_NotFound(t *testing.T) {
	idx := NewIndex([]models.InventoryRecord{
		record(1, "Uniform No 4", "Boot", "UK 8"),
	})

	_, err := idx.Locate("Uniform No 4", "Boot", "UK 9")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "9", notFound.Key.NormalizedSize)
}

func TestLocate_HeadwearSizesNeverCrossMatch(t *testing.T) {
	idx := NewIndex([]models.InventoryRecord{
		record(1, "Uniform No 1", "Beret", "6 3/4"),
		record(2, "Uniform No 1", "Beret", "6 5/8"),
	})

	rec, err := idx.Locate("Uniform No 1", "Beret", "6 3/4")
	require.NoError(t, err)
	assert.Equal(t, uint(1), rec.ID)

	rec, err = idx.Locate("Uniform No 1", "Beret", "6 5/8")
	require.NoError(t, err)
	assert.Equal(t, uint(2), rec.ID)

	// A spacing variant is a different hat size, not a fuzzy match.
	_, err = idx.Locate("Uniform No 1", "Beret", "63/4")
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestLocate_AmbiguousMatch(t *testing.T) {
	// Two rows whose raw sizes differ but normalize to the same key.
	idx := NewIndex([]models.InventoryRecord{
		record(1, "Uniform No 4", "Boot", "UK 7"),
		record(2, "Uniform No 4", "Boot", "7"),
	})

	_, err := idx.Locate("Uniform No 4", "Boot", "uk7")
	var ambiguous *AmbiguousMatchError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, 2, ambiguous.Matches)
}

func TestNewIndex_FallsBackToRawSize(t *testing.T) {
	// Rows written before the normalized_size column existed.
	idx := NewIndex([]models.InventoryRecord{
		{ID: 7, Category: "Uniform No 4", ItemType: "Boot", Size: "UK 8"},
	})

	rec, err := idx.Locate("Uniform No 4", "Boot", "8")
	require.NoError(t, err)
	assert.Equal(t, uint(7), rec.ID)
}

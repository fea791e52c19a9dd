package reconcile

import (
	"uniform-manager/feature/uniform/catalog"
	"uniform-manager/feature/uniform/models"
)

// Index is an in-memory view of the inventory, keyed by normalized
// (category, type) pairs. It is built once per update request from a
// snapshot of the inventory table.
type Index struct {
	byPair map[pairKey][]indexed
}

type pairKey struct {
	category string
	itemType string
}

type indexed struct {
	record         models.InventoryRecord
	normalizedSize string
}

// NewIndex builds a locator index from inventory records. Each record's
// category, type and size are normalized up front so lookups are resilient
// to legacy labels stored on older rows.
func NewIndex(records []models.InventoryRecord) *Index {
	idx := &Index{byPair: make(map[pairKey][]indexed, len(records))}
	for _, rec := range records {
		category := catalog.NormalizeCategory(rec.Category)
		itemType := catalog.NormalizeType(rec.ItemType)

		// Prefer the stored normalized size; fall back to normalizing the
		// raw label for rows written before the column existed.
		size := rec.NormalizedSize
		if size == "" {
			size = catalog.NormalizeSize(rec.Size, catalog.ClassOf(rec.ItemType))
		}

		key := pairKey{category: category, itemType: itemType}
		idx.byPair[key] = append(idx.byPair[key], indexed{record: rec, normalizedSize: size})
	}
	return idx
}

// Locate resolves a raw (category, type, size) triple to the unique
// inventory record it refers to. Zero candidates is a NotFoundError; more
// than one is an AmbiguousMatchError. An ambiguity is never resolved by
// picking the first match, since restoring or deducting against the wrong
// record silently corrupts stock.
func (x *Index) Locate(category, itemType, size string) (*models.InventoryRecord, error) {
	key := ItemKey{
		Category:       catalog.NormalizeCategory(category),
		Type:           catalog.NormalizeType(itemType),
		NormalizedSize: catalog.NormalizeSize(size, catalog.ClassOf(itemType)),
	}
	return x.locateKey(key)
}

func (x *Index) locateKey(key ItemKey) (*models.InventoryRecord, error) {
	candidates := x.byPair[pairKey{category: key.Category, itemType: key.Type}]

	var found []models.InventoryRecord
	for _, cand := range candidates {
		if cand.normalizedSize == key.NormalizedSize {
			found = append(found, cand.record)
		}
	}

	switch len(found) {
	case 0:
		return nil, &NotFoundError{Key: key}
	case 1:
		rec := found[0]
		return &rec, nil
	default:
		return nil, &AmbiguousMatchError{Key: key, Matches: len(found)}
	}
}

// Key returns the normalized inventory key for a raw triple without
// resolving it to a record.
func Key(category, itemType, size string) ItemKey {
	return ItemKey{
		Category:       catalog.NormalizeCategory(category),
		Type:           catalog.NormalizeType(itemType),
		NormalizedSize: catalog.NormalizeSize(size, catalog.ClassOf(itemType)),
	}
}

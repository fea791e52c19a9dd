package catalog

import (
	"uniform-manager/feature/uniform/models"
)

// Kind classifies an item type as a main item or an accessory.
type Kind int

const (
	// KindUnknown means the type name matched neither closed set.
	KindUnknown Kind = iota
	// KindMainItem always carries a size when Available.
	KindMainItem
	// KindAccessory never carries a size.
	KindAccessory
)

// Class determines which size normalization rule applies to a type.
type Class int

const (
	// ClassNone applies to accessories and unknown types (no size).
	ClassNone Class = iota
	// ClassHeadwear sizes compare exactly, internal spaces preserved.
	ClassHeadwear
	// ClassFootwear sizes compare with a leading "UK" token stripped.
	ClassFootwear
	// ClassGarment sizes compare case- and whitespace-insensitively.
	ClassGarment
)

// mainItems is the closed set of main item types, keyed by canonical name.
// Membership here is checked before the accessory set, with exact comparison:
// "Beret" must classify as a main item even though the accessory set contains
// "Beret Logo Pin".
var mainItems = map[string]Class{
	"Beret":      ClassHeadwear,
	"Forage Cap": ClassHeadwear,
	"Boot":       ClassFootwear,
	"Shoe":       ClassFootwear,
	"Shirt":      ClassGarment,
	"Blouse":     ClassGarment,
	"Trousers":   ClassGarment,
	"Skirt":      ClassGarment,
	"Jersey":     ClassGarment,
	"Ceremonial Jacket": ClassGarment,
}

// accessories is the closed set of accessory types, keyed by canonical name.
var accessories = map[string]struct{}{
	"Beret Logo Pin": {},
	"Belt":           {},
	"Lanyard":        {},
	"Shoulder Flash": {},
	"Badge Tab":      {},
	"Tie":            {},
	"Tie Pin":        {},
	"Sock Tags":      {},
	"Name Tag":       {},
}

// Classify resolves a raw type name against the closed sets.
// The main-item set wins on exact canonical match; only when no main item
// matches is the accessory set consulted.
func Classify(itemType string) Kind {
	canonical := NormalizeType(itemType)
	if _, ok := mainItems[canonical]; ok {
		return KindMainItem
	}
	if _, ok := accessories[canonical]; ok {
		return KindAccessory
	}
	return KindUnknown
}

// ClassOf returns the size class for a raw type name.
// Accessories and unknown types have no size class.
func ClassOf(itemType string) Class {
	canonical := NormalizeType(itemType)
	if class, ok := mainItems[canonical]; ok {
		return class
	}
	return ClassNone
}

// RequiresSize reports whether an assignment of the given type and status
// must carry a size. Accessories never do. Main items do only while the
// item is Available; a Missing or Not Available main item may be recorded
// without a size pick.
func RequiresSize(itemType string, status models.Status) bool {
	if Classify(itemType) != KindMainItem {
		return false
	}
	return status.Issued()
}

package catalog

import (
	"strings"
)

// NoSize is the canonical normalized representation of "this item has no size".
// Null, empty, and "N/A" size values all collapse to it.
const NoSize = "NO_SIZE"

// categoryAliases maps folded legacy category labels to current names.
// The fold (see foldKey) drops case, spacing and punctuation, so
// "Uniform-No-4", "uniform no. 4" and "UniformNo4" all land on the same key.
var categoryAliases = map[string]string{
	"UNIFORMNO1":     "Uniform No 1",
	"UNIFORMNO3":     "Uniform No 3",
	"UNIFORMNO4":     "Uniform No 4",
	"ACCESSORIESNO1": "Accessories No 1",
	"ACCESSORIESNO3": "Accessories No 3",

	// Deprecated labels still present on older member records.
	"NO1UNIFORM":    "Uniform No 1",
	"NO3UNIFORM":    "Uniform No 3",
	"NO4UNIFORM":    "Uniform No 4",
	"NO1ACCESSORIES": "Accessories No 1",
	"NO3ACCESSORIES": "Accessories No 3",
}

// typeAliases maps folded type labels to current canonical type names.
// It covers both the canonical names themselves and renamed labels.
var typeAliases = map[string]string{
	"BERET":      "Beret",
	"FORAGECAP":  "Forage Cap",
	"FIELDCAP":   "Forage Cap", // renamed
	"BOOT":       "Boot",
	"BOOTS":      "Boot",
	"SHOE":       "Shoe",
	"SHOES":      "Shoe",
	"SHIRT":      "Shirt",
	"BLOUSE":     "Blouse",
	"TROUSERS":   "Trousers",
	"SKIRT":      "Skirt",
	"JERSEY":     "Jersey",
	"PULLOVER":   "Jersey", // renamed
	"CEREMONIALJACKET": "Ceremonial Jacket",

	"BERETLOGOPIN": "Beret Logo Pin",
	"BELT":         "Belt",
	"LANYARD":      "Lanyard",
	"SHOULDERFLASH": "Shoulder Flash",
	"BADGETAB":     "Badge Tab",
	"TIE":          "Tie",
	"TIEPIN":       "Tie Pin",
	"SOCKTAGS":     "Sock Tags",
	"NAMETAG":      "Name Tag",
}

// foldKey uppercases and strips everything that is not a letter or digit.
// Legacy labels differ only in case, spacing and punctuation.
func foldKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeCategory collapses deprecated category aliases into the current
// category name. Unrecognized categories pass through trimmed, so lookups
// against them still fail loudly rather than matching something else.
func NormalizeCategory(raw string) string {
	if canonical, ok := categoryAliases[foldKey(raw)]; ok {
		return canonical
	}
	return strings.TrimSpace(raw)
}

// NormalizeType collapses renamed and deprecated type labels into their
// current canonical name. Unrecognized types pass through trimmed.
func NormalizeType(raw string) string {
	if canonical, ok := typeAliases[foldKey(raw)]; ok {
		return canonical
	}
	return strings.TrimSpace(raw)
}

// NormalizeSize canonicalizes a raw size for the given class.
//
// Rules, in order:
//   - empty or "N/A" (any case) is NoSize regardless of class
//   - headwear preserves the string, internal spaces included, so that
//     "6 3/4" never collides with "63/4"
//   - footwear strips a leading "UK" token (any case, optional space)
//     before folding, so "UK 7", "uk7" and "7" share a key
//   - garments fold: trimmed, internal whitespace collapsed, uppercased
func NormalizeSize(raw string, class Class) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, "N/A") {
		return NoSize
	}

	switch class {
	case ClassNone:
		// A size recorded against a sizeless class carries no meaning.
		return NoSize
	case ClassHeadwear:
		return trimmed
	case ClassFootwear:
		stripped := trimmed
		if len(stripped) >= 2 && strings.EqualFold(stripped[:2], "UK") {
			stripped = strings.TrimSpace(stripped[2:])
		}
		if stripped == "" {
			return NoSize
		}
		return foldSize(stripped)
	default:
		return foldSize(trimmed)
	}
}

// foldSize collapses internal whitespace to single spaces and uppercases.
func foldSize(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}

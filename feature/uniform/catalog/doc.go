// Package catalog defines the closed sets of uniform item types and the
// normalization rules that make legacy labels comparable.
//
// # Classification
//
// Item types are split into two explicit finite sets: main items (which
// carry a size while Available) and accessories (which never do). Classify
// checks the main-item set first with exact canonical comparison, so a main
// item name is never shadowed by an accessory name that contains it as a
// substring ("Beret" vs "Beret Logo Pin").
//
// # Normalization
//
// Categories and types collapse deprecated aliases into current canonical
// names. Sizes normalize per item class:
//   - Headwear: exact, internal spaces preserved ("6 3/4" != "63/4")
//   - Footwear: leading "UK" token stripped ("UK 7" == "uk7" == "7")
//   - Garments: trimmed, whitespace collapsed, uppercased
//   - No size (empty, "N/A", accessories): the NoSize sentinel
//
// Every inventory lookup and every diff decision goes through these rules,
// which is what keeps adjustments from landing on the wrong stock record.
package catalog

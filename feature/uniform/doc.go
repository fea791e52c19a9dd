// Package uniform tracks uniform and accessory stock for an organization
// and keeps the central inventory ledger consistent with each member's
// personal uniform record.
//
// The reconciliation itself lives in the reconcile subpackage; this package
// provides the GORM store, the orchestrating service, and the HTTP surface.
// Item classification and label normalization live in the catalog
// subpackage, persistence models in models.
//
// An update request flows: handler -> service (structural validation, load
// previous snapshot, build inventory index) -> engine plan -> engine apply
// (atomic counter updates through the store) -> snapshot save.
package uniform

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the issue state of an assigned item.
// An absent status on the wire is resolved to StatusAvailable at ingestion,
// never re-derived ad hoc at check sites.
type Status string

const (
	StatusAvailable    Status = "Available"
	StatusNotAvailable Status = "Not Available"
	StatusMissing      Status = "Missing"
)

// Valid reports whether s is one of the known status values.
// The empty string is valid on the wire and defaults to Available.
func (s Status) Valid() bool {
	switch s {
	case "", StatusAvailable, StatusNotAvailable, StatusMissing:
		return true
	default:
		return false
	}
}

// Issued reports whether stock is held against this status.
// Only Available items have been issued from inventory.
func (s Status) Issued() bool {
	return s == StatusAvailable
}

// AssignedItem is one line of a member's uniform record.
type AssignedItem struct {
	Category string `json:"category" validate:"required"`
	Type     string `json:"type" validate:"required"`
	// Size may be empty or "N/A" for items that carry no size.
	Size     string `json:"size,omitempty"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
	// Status defaults to Available when absent.
	Status Status `json:"status,omitempty"`
}

// EffectiveStatus resolves an absent status to Available.
func (i AssignedItem) EffectiveStatus() Status {
	if i.Status == "" {
		return StatusAvailable
	}
	return i.Status
}

// AssignedItems is stored as a JSON column on the member record.
type AssignedItems []AssignedItem

// Value implements driver.Valuer for the JSON column.
func (items AssignedItems) Value() (driver.Value, error) {
	if items == nil {
		items = AssignedItems{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal assigned items: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for the JSON column.
func (items *AssignedItems) Scan(value any) error {
	if value == nil {
		*items = AssignedItems{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for assigned items column", value)
	}

	if len(data) == 0 {
		*items = AssignedItems{}
		return nil
	}
	if err := json.Unmarshal(data, items); err != nil {
		return fmt.Errorf("failed to unmarshal assigned items: %w", err)
	}
	return nil
}

// InventoryRecord is a stock-count row. At most one record exists per
// (category, item_type, normalized_size) triple; the unique index enforces it.
type InventoryRecord struct {
	ID             uint   `gorm:"column:id;primaryKey" json:"id"`
	Category       string `gorm:"column:category;size:64;uniqueIndex:idx_inventory_key,priority:1" json:"category"`
	ItemType       string `gorm:"column:item_type;size:64;uniqueIndex:idx_inventory_key,priority:2" json:"type"`
	Size           string `gorm:"column:size;size:32" json:"size"`
	NormalizedSize string `gorm:"column:normalized_size;size:32;uniqueIndex:idx_inventory_key,priority:3" json:"normalized_size"`
	Quantity       int    `gorm:"column:quantity" json:"quantity"`

	// Display metadata, irrelevant to reconciliation.
	Price        decimal.Decimal `gorm:"column:price;type:decimal(10,2)" json:"price"`
	ImageKey     string          `gorm:"column:image_key;size:255" json:"image_key,omitempty"`
	SizeChartKey string          `gorm:"column:size_chart_key;size:255" json:"size_chart_key,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (InventoryRecord) TableName() string {
	return "inventory_records"
}

// MemberUniformRecord holds the current uniform assignment for one member.
// The Items snapshot is replaced wholesale after a successful reconcile.
type MemberUniformRecord struct {
	ID        uint          `gorm:"column:id;primaryKey" json:"id"`
	MemberKey string        `gorm:"column:member_key;size:36;uniqueIndex" json:"member_key"`
	Items     AssignedItems `gorm:"column:items;type:json" json:"items"`
	CreatedAt time.Time     `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time     `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (MemberUniformRecord) TableName() string {
	return "member_uniform_records"
}

// AdjustmentOutcome describes one executed stock adjustment, suitable for
// audit logging and for the API response.
type AdjustmentOutcome struct {
	Category          string `json:"category"`
	Type              string `json:"type"`
	Size              string `json:"size"`
	Action            string `json:"action"` // "deduct" or "restore"
	Amount            int    `json:"amount"`
	ResultingQuantity int    `json:"resulting_quantity"`
}

// UpdateResult is the response for a member uniform update.
type UpdateResult struct {
	MemberKey   string              `json:"member_key"`
	Items       AssignedItems       `json:"items"`
	Adjustments []AdjustmentOutcome `json:"adjustments"`
}

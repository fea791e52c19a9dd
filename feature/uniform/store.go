package uniform

import (
	"context"
	"errors"
	"fmt"

	"uniform-manager/feature/uniform/catalog"
	"uniform-manager/feature/uniform/models"
	"uniform-manager/feature/uniform/reconcile"

	"gorm.io/gorm"
)

// Store is the GORM-backed persistence layer for inventory records and
// member uniform records. It implements reconcile.Store.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on top of an existing connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the uniform tables.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&models.InventoryRecord{}, &models.MemberUniformRecord{})
}

// ListInventory returns all inventory records, ordered for deterministic
// index building.
func (s *Store) ListInventory(ctx context.Context) ([]models.InventoryRecord, error) {
	var records []models.InventoryRecord
	err := s.db.WithContext(ctx).
		Order("category, item_type, normalized_size").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return records, nil
}

// GetInventory returns a single inventory record by ID.
func (s *Store) GetInventory(ctx context.Context, id uint) (*models.InventoryRecord, error) {
	var rec models.InventoryRecord
	if err := s.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindByKey returns the inventory records whose normalized triple matches
// the given key. Used for duplicate detection on stock entry.
func (s *Store) FindByKey(ctx context.Context, key reconcile.ItemKey) ([]models.InventoryRecord, error) {
	var records []models.InventoryRecord
	err := s.db.WithContext(ctx).
		Where("category = ? AND item_type = ? AND normalized_size = ?",
			key.Category, key.Type, key.NormalizedSize).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory key %s: %w", key, err)
	}
	return records, nil
}

// CreateInventory inserts a new inventory record. The category, type and
// size are canonicalized before insert so the unique index on the
// normalized triple holds.
func (s *Store) CreateInventory(ctx context.Context, rec *models.InventoryRecord) error {
	rec.Category = catalog.NormalizeCategory(rec.Category)
	rec.ItemType = catalog.NormalizeType(rec.ItemType)
	rec.NormalizedSize = catalog.NormalizeSize(rec.Size, catalog.ClassOf(rec.ItemType))

	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create inventory record: %w", err)
	}
	return nil
}

// SetQuantity overwrites a record's quantity (administrative edit).
// Negative quantities are rejected.
func (s *Store) SetQuantity(ctx context.Context, id uint, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	result := s.db.WithContext(ctx).
		Model(&models.InventoryRecord{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if result.Error != nil {
		return fmt.Errorf("failed to set quantity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// QuantityByID reads the current quantity of an inventory record.
func (s *Store) QuantityByID(ctx context.Context, id uint) (int, error) {
	var quantity int
	err := s.db.WithContext(ctx).
		Model(&models.InventoryRecord{}).
		Select("quantity").
		Where("id = ?", id).
		Take(&quantity).Error
	if err != nil {
		return 0, err
	}
	return quantity, nil
}

// AdjustQuantity applies `quantity = quantity + delta` as a single guarded
// update. The guard rejects any deduction that would drive the quantity
// negative; that case surfaces as reconcile.ErrStockConflict rather than
// being clamped.
func (s *Store) AdjustQuantity(ctx context.Context, id uint, delta int) error {
	result := s.db.WithContext(ctx).
		Model(&models.InventoryRecord{}).
		Where("id = ? AND quantity + ? >= 0", id, delta).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("failed to adjust quantity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing record from a rejected deduction.
		if _, err := s.QuantityByID(ctx, id); err != nil {
			return err
		}
		return reconcile.ErrStockConflict
	}
	return nil
}

// GetMemberRecord returns a member's uniform record. A member with no
// record yet gets an empty one; the distinction does not matter to the
// diff, which treats every slot as brand-new.
func (s *Store) GetMemberRecord(ctx context.Context, memberKey string) (*models.MemberUniformRecord, error) {
	var rec models.MemberUniformRecord
	err := s.db.WithContext(ctx).Where("member_key = ?", memberKey).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.MemberUniformRecord{MemberKey: memberKey, Items: models.AssignedItems{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load member record: %w", err)
	}
	return &rec, nil
}

// SaveMemberRecord replaces a member's snapshot wholesale.
func (s *Store) SaveMemberRecord(ctx context.Context, memberKey string, items models.AssignedItems) error {
	result := s.db.WithContext(ctx).
		Model(&models.MemberUniformRecord{}).
		Where("member_key = ?", memberKey).
		Update("items", items)
	if result.Error != nil {
		return fmt.Errorf("failed to save member record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		rec := models.MemberUniformRecord{MemberKey: memberKey, Items: items}
		if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
			return fmt.Errorf("failed to create member record: %w", err)
		}
	}
	return nil
}

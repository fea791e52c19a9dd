package uniform

import (
	"context"
	"errors"
	"fmt"
	"io"

	"uniform-manager/core/storage"
	"uniform-manager/feature/uniform/models"
	"uniform-manager/feature/uniform/reconcile"

	"github.com/go-playground/validator/v10"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// DuplicateRecordError reports a stock entry that would create a second
// inventory record for an already-occupied normalized triple.
type DuplicateRecordError struct {
	Key reconcile.ItemKey
}

func (e *DuplicateRecordError) Error() string {
	return fmt.Sprintf("an inventory record already exists for %s", e.Key)
}

// Service orchestrates uniform record updates and inventory administration.
type Service struct {
	store    *Store
	client   storage.Client
	bucket   string
	logger   *zap.Logger
	engine   *reconcile.Engine
	validate *validator.Validate
}

// NewService creates a new uniform service.
func NewService(store *Store, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		client:   client,
		bucket:   bucket,
		logger:   logger,
		engine:   reconcile.NewEngine(reconcile.NewZapSink(logger)),
		validate: validator.New(),
	}
}

// UpdateMemberUniform reconciles a member's newly submitted item list
// against their previous snapshot, applies the resulting adjustments, and
// persists the new snapshot.
//
// On an apply failure partway through, the returned result still carries
// the outcomes that were applied (the batch is not cross-record atomic) and
// the previous snapshot is kept, so the discrepancy is visible rather than
// papered over.
func (s *Service) UpdateMemberUniform(ctx context.Context, memberKey string, items models.AssignedItems) (*models.UpdateResult, error) {
	if err := s.validateItems(items); err != nil {
		return nil, err
	}

	prev, err := s.store.GetMemberRecord(ctx, memberKey)
	if err != nil {
		return nil, err
	}

	plan, err := s.plan(ctx, prev.Items, items)
	if err != nil {
		return nil, err
	}

	outcomes, err := s.engine.Apply(ctx, s.store, plan, reconcile.Options{})
	result := &models.UpdateResult{MemberKey: memberKey, Items: items, Adjustments: outcomes}
	if err != nil {
		return result, err
	}

	if err := s.store.SaveMemberRecord(ctx, memberKey, items); err != nil {
		return result, err
	}
	return result, nil
}

// PreviewUpdate plans a member uniform update without applying it.
func (s *Service) PreviewUpdate(ctx context.Context, memberKey string, items models.AssignedItems) (*models.UpdateResult, error) {
	if err := s.validateItems(items); err != nil {
		return nil, err
	}

	prev, err := s.store.GetMemberRecord(ctx, memberKey)
	if err != nil {
		return nil, err
	}

	plan, err := s.plan(ctx, prev.Items, items)
	if err != nil {
		return nil, err
	}

	outcomes, err := s.engine.Apply(ctx, s.store, plan, reconcile.Options{DryRun: true})
	if err != nil {
		return nil, err
	}
	return &models.UpdateResult{MemberKey: memberKey, Items: items, Adjustments: outcomes}, nil
}

func (s *Service) plan(ctx context.Context, previous, next models.AssignedItems) (*reconcile.Plan, error) {
	records, err := s.store.ListInventory(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Plan(reconcile.NewIndex(records), previous, next)
}

// validateItems covers structural validation (required fields, quantity
// bounds); semantic validation happens inside the engine.
func (s *Service) validateItems(items models.AssignedItems) error {
	for i := range items {
		if err := s.validate.Struct(items[i]); err != nil {
			var fieldErrs validator.ValidationErrors
			if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
				return &reconcile.ValidationError{
					Index:  i,
					Field:  fieldErrs[0].Field(),
					Reason: "failed " + fieldErrs[0].Tag() + " validation",
				}
			}
			return err
		}
	}
	return nil
}

// GetMemberUniform returns a member's current snapshot.
func (s *Service) GetMemberUniform(ctx context.Context, memberKey string) (*models.MemberUniformRecord, error) {
	return s.store.GetMemberRecord(ctx, memberKey)
}

// ListInventory returns all inventory records.
func (s *Service) ListInventory(ctx context.Context) ([]models.InventoryRecord, error) {
	return s.store.ListInventory(ctx)
}

// GetInventory returns a single inventory record.
func (s *Service) GetInventory(ctx context.Context, id uint) (*models.InventoryRecord, error) {
	return s.store.GetInventory(ctx, id)
}

// CreateInventory adds a stock record, rejecting a duplicate of an
// already-occupied (category, type, normalized size) triple. Letting the
// duplicate through would make every later lookup on that key ambiguous.
func (s *Service) CreateInventory(ctx context.Context, rec *models.InventoryRecord) error {
	key := reconcile.Key(rec.Category, rec.ItemType, rec.Size)

	existing, err := s.store.FindByKey(ctx, key)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return &DuplicateRecordError{Key: key}
	}

	// Attached display objects must already be uploaded; the key alone is
	// stored on the record.
	for _, objectKey := range []string{rec.ImageKey, rec.SizeChartKey} {
		if objectKey == "" || s.client == nil {
			continue
		}
		if _, err := s.client.StatObject(ctx, s.bucket, objectKey, minio.StatObjectOptions{}); err != nil {
			return fmt.Errorf("attached object %q not found in storage: %w", objectKey, err)
		}
	}

	if err := s.store.CreateInventory(ctx, rec); err != nil {
		return err
	}
	s.logger.Info("inventory record created",
		zap.Uint("id", rec.ID),
		zap.String("key", key.String()),
		zap.Int("quantity", rec.Quantity),
	)
	return nil
}

// SetQuantity performs an administrative quantity edit.
func (s *Service) SetQuantity(ctx context.Context, id uint, quantity int) error {
	return s.store.SetQuantity(ctx, id, quantity)
}

// SizeChart streams the size-chart object attached to an inventory record.
func (s *Service) SizeChart(ctx context.Context, id uint) (io.ReadCloser, error) {
	rec, err := s.store.GetInventory(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.SizeChartKey == "" {
		return nil, fmt.Errorf("record %d has no size chart", id)
	}
	return s.client.GetObject(ctx, s.bucket, rec.SizeChartKey, minio.GetObjectOptions{})
}

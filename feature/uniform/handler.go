package uniform

import (
	"errors"
	"strconv"

	"uniform-manager/core/logger"
	"uniform-manager/feature/uniform/models"
	"uniform-manager/feature/uniform/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for uniform records and inventory.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the uniform and inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	members := app.Group("/members")
	members.Get("/:memberKey/uniform", h.HandleGetMemberUniform)
	members.Put("/:memberKey/uniform", h.HandleUpdateMemberUniform)

	inventory := app.Group("/inventory")
	inventory.Get("/", h.HandleListInventory)
	inventory.Post("/", h.HandleCreateInventory)
	inventory.Get("/:id", h.HandleGetInventory)
	inventory.Patch("/:id/quantity", h.HandleSetQuantity)
	inventory.Get("/:id/sizechart", h.HandleGetSizeChart)
}

// UpdateUniformRequest is the payload for a member uniform update.
type UpdateUniformRequest struct {
	Items models.AssignedItems `json:"items"`
}

// CreateInventoryRequest is the payload for an administrative stock entry.
type CreateInventoryRequest struct {
	Category     string `json:"category" validate:"required"`
	Type         string `json:"type" validate:"required"`
	Size         string `json:"size"`
	Quantity     int    `json:"quantity" validate:"min=0"`
	Price        string `json:"price"`
	ImageKey     string `json:"image_key"`
	SizeChartKey string `json:"size_chart_key"`
}

// SetQuantityRequest is the payload for an administrative quantity edit.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// recordFromRequest builds the persistence model from a stock entry payload.
// The price travels as a string to avoid float rounding on the wire.
func recordFromRequest(req CreateInventoryRequest) (*models.InventoryRecord, error) {
	if req.Category == "" {
		return nil, &reconcile.ValidationError{Field: "category", Reason: "is required"}
	}
	if req.Type == "" {
		return nil, &reconcile.ValidationError{Field: "type", Reason: "is required"}
	}
	if req.Quantity < 0 {
		return nil, &reconcile.ValidationError{Field: "quantity", Reason: "must not be negative"}
	}

	price := decimal.Zero
	if req.Price != "" {
		parsed, err := decimal.NewFromString(req.Price)
		if err != nil {
			return nil, &reconcile.ValidationError{Field: "price", Reason: "must be a decimal number"}
		}
		price = parsed
	}

	return &models.InventoryRecord{
		Category:     req.Category,
		ItemType:     req.Type,
		Size:         req.Size,
		Quantity:     req.Quantity,
		Price:        price,
		ImageKey:     req.ImageKey,
		SizeChartKey: req.SizeChartKey,
	}, nil
}

// HandleUpdateMemberUniform reconciles and saves a member's uniform record.
// @Summary Update Member Uniform
// @Description Replaces a member's uniform record, deducting and restoring inventory per item.
// @Tags members
// @Accept json
// @Produce json
// @Param memberKey path string true "Member Key"
// @Param request body UpdateUniformRequest true "New item list"
// @Success 200 {object} models.UpdateResult "Update result with per-adjustment outcomes"
// @Failure 400 {object} map[string]string "Validation failure"
// @Failure 404 {object} map[string]string "Unknown inventory record"
// @Failure 409 {object} map[string]string "Ambiguous match or insufficient stock"
// @Router /members/{memberKey}/uniform [put]
func (h *Handler) HandleUpdateMemberUniform(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req UpdateUniformRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed request body",
			"kind":  "validation",
		})
	}

	memberKey := c.Params("memberKey")
	result, err := h.service.UpdateMemberUniform(c.Context(), memberKey, req.Items)
	if err != nil {
		l.Error("Uniform update failed",
			zap.String("member_key", memberKey),
			zap.Error(err),
		)
		body := fiber.Map{"error": err.Error(), "kind": errorKind(err)}
		if result != nil && len(result.Adjustments) > 0 {
			// The batch is not atomic; report what was applied before the
			// failure so the administrator can see the partial state.
			body["applied"] = result.Adjustments
		}
		return c.Status(statusForError(err)).JSON(body)
	}

	l.Info("Uniform updated",
		zap.String("member_key", memberKey),
		zap.Int("adjustments", len(result.Adjustments)),
	)
	return c.JSON(result)
}

// HandleGetMemberUniform returns a member's current uniform record.
// @Summary Get Member Uniform
// @Tags members
// @Produce json
// @Param memberKey path string true "Member Key"
// @Success 200 {object} models.MemberUniformRecord
// @Router /members/{memberKey}/uniform [get]
func (h *Handler) HandleGetMemberUniform(c *fiber.Ctx) error {
	rec, err := h.service.GetMemberUniform(c.Context(), c.Params("memberKey"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(rec)
}

// HandleListInventory lists all inventory records.
// @Summary List Inventory
// @Tags inventory
// @Produce json
// @Success 200 {array} models.InventoryRecord
// @Router /inventory [get]
func (h *Handler) HandleListInventory(c *fiber.Ctx) error {
	records, err := h.service.ListInventory(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(records)
}

// HandleGetInventory returns one inventory record.
// @Summary Get Inventory Record
// @Tags inventory
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} models.InventoryRecord
// @Failure 404 {object} map[string]string "Unknown record"
// @Router /inventory/{id} [get]
func (h *Handler) HandleGetInventory(c *fiber.Ctx) error {
	id, err := h.recordID(c)
	if err != nil {
		return h.fail(c, err)
	}
	rec, err := h.service.GetInventory(c.Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(rec)
}

// HandleCreateInventory adds a stock record.
// @Summary Create Inventory Record
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body CreateInventoryRequest true "Stock entry"
// @Success 201 {object} models.InventoryRecord
// @Failure 409 {object} map[string]string "Duplicate normalized key"
// @Router /inventory [post]
func (h *Handler) HandleCreateInventory(c *fiber.Ctx) error {
	var req CreateInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed request body",
			"kind":  "validation",
		})
	}

	rec, err := recordFromRequest(req)
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.service.CreateInventory(c.Context(), rec); err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// HandleSetQuantity performs an administrative quantity edit.
// @Summary Set Inventory Quantity
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Param request body SetQuantityRequest true "New quantity"
// @Success 200 {object} models.InventoryRecord
// @Failure 404 {object} map[string]string "Unknown record"
// @Router /inventory/{id}/quantity [patch]
func (h *Handler) HandleSetQuantity(c *fiber.Ctx) error {
	id, err := h.recordID(c)
	if err != nil {
		return h.fail(c, err)
	}

	var req SetQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed request body",
			"kind":  "validation",
		})
	}

	if err := h.service.SetQuantity(c.Context(), id, req.Quantity); err != nil {
		return h.fail(c, err)
	}
	rec, err := h.service.GetInventory(c.Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(rec)
}

// HandleGetSizeChart streams the size-chart object for a record.
// @Summary Get Size Chart
// @Tags inventory
// @Produce octet-stream
// @Param id path int true "Record ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Unknown record or no size chart"
// @Router /inventory/{id}/sizechart [get]
func (h *Handler) HandleGetSizeChart(c *fiber.Ctx) error {
	id, err := h.recordID(c)
	if err != nil {
		return h.fail(c, err)
	}
	reader, err := h.service.SizeChart(c.Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.SendStream(reader)
}

func (h *Handler) recordID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, &reconcile.ValidationError{Field: "id", Reason: "must be a positive integer"}
	}
	return uint(id), nil
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	status := statusForError(err)
	if status >= fiber.StatusInternalServerError {
		l.Error("Request failed", zap.Error(err))
	} else {
		l.Warn("Request rejected", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
		"kind":  errorKind(err),
	})
}

// statusForError maps the engine's typed failures to HTTP statuses. Each
// kind stays distinguishable so the administrative UI can explain why a
// save was rejected.
func statusForError(err error) int {
	var (
		validation   *reconcile.ValidationError
		notFound     *reconcile.NotFoundError
		ambiguous    *reconcile.AmbiguousMatchError
		insufficient *reconcile.InsufficientStockError
		duplicate    *DuplicateRecordError
	)
	switch {
	case errors.As(err, &validation):
		return fiber.StatusBadRequest
	case errors.As(err, &notFound), errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &ambiguous), errors.As(err, &insufficient), errors.As(err, &duplicate):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func errorKind(err error) string {
	var (
		validation   *reconcile.ValidationError
		notFound     *reconcile.NotFoundError
		ambiguous    *reconcile.AmbiguousMatchError
		insufficient *reconcile.InsufficientStockError
		verification *reconcile.VerificationError
		duplicate    *DuplicateRecordError
	)
	switch {
	case errors.As(err, &validation):
		return "validation"
	case errors.As(err, &notFound), errors.Is(err, gorm.ErrRecordNotFound):
		return "not_found"
	case errors.As(err, &ambiguous):
		return "ambiguous_match"
	case errors.As(err, &insufficient):
		return "insufficient_stock"
	case errors.As(err, &verification):
		return "verification_mismatch"
	case errors.As(err, &duplicate):
		return "duplicate_record"
	default:
		return "internal"
	}
}

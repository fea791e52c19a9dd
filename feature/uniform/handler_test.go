package uniform_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"uniform-manager/core/database"
	"uniform-manager/core/storage/mocks"
	"uniform-manager/feature/uniform"
	"uniform-manager/feature/uniform/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) (*fiber.App, *uniform.Store, *mocks.Client) {
	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	assert.NoError(t, err)

	store := uniform.NewStore(db)
	assert.NoError(t, store.Migrate())

	mockClient := new(mocks.Client)
	svc := uniform.NewService(store, mockClient, "uniform-assets", zap.NewNop())

	app := fiber.New()
	uniform.NewHandler(svc).RegisterRoutes(app)
	return app, store, mockClient
}

func TestHandleUpdateMemberUniform(t *testing.T) {
	app, store, _ := setupApp(t)

	assert.NoError(t, store.CreateInventory(context.Background(), &models.InventoryRecord{
		Category: "Uniform No 1", ItemType: "Shirt", Size: "M", Quantity: 10,
	}))

	body := map[string]any{
		"items": []map[string]any{
			{"category": "Uniform No 1", "type": "Shirt", "size": "M", "quantity": 2},
		},
	}
	data, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest("PUT", "/members/M-100/uniform", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result models.UpdateResult
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "M-100", result.MemberKey)
	assert.Len(t, result.Adjustments, 1)
	assert.Equal(t, "deduct", result.Adjustments[0].Action)
	assert.Equal(t, 8, result.Adjustments[0].ResultingQuantity)
}

func TestHandleUpdateMemberUniformInsufficientStock(t *testing.T) {
	app, store, _ := setupApp(t)

	assert.NoError(t, store.CreateInventory(context.Background(), &models.InventoryRecord{
		Category: "Uniform No 1", ItemType: "Shirt", Size: "M", Quantity: 1,
	}))

	body := `{"items":[{"category":"Uniform No 1","type":"Shirt","size":"M","quantity":5}]}`
	req := httptest.NewRequest("PUT", "/members/M-100/uniform", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var payload map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "insufficient_stock", payload["kind"])
}

func TestHandleUpdateMemberUniformBadPayload(t *testing.T) {
	app, _, _ := setupApp(t)

	req := httptest.NewRequest("PUT", "/members/M-100/uniform", bytes.NewReader([]byte("{not-json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleGetMemberUniform(t *testing.T) {
	app, store, _ := setupApp(t)

	items := models.AssignedItems{
		{Category: "Uniform No 1", Type: "Shirt", Size: "M", Quantity: 1},
	}
	assert.NoError(t, store.SaveMemberRecord(context.Background(), "M-200", items))

	req := httptest.NewRequest("GET", "/members/M-200/uniform", nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rec models.MemberUniformRecord
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	assert.Equal(t, "M-200", rec.MemberKey)
	assert.Len(t, rec.Items, 1)
}

func TestHandleCreateInventory(t *testing.T) {
	app, _, _ := setupApp(t)

	body := `{"category":"Uniform No 4","type":"Boot","size":"UK 8","quantity":12,"price":"39.90"}`
	req := httptest.NewRequest("POST", "/inventory/", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var rec models.InventoryRecord
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	assert.Equal(t, "Boot", rec.ItemType)
	assert.Equal(t, "8", rec.NormalizedSize)
	assert.Equal(t, "39.9", rec.Price.String())

	// Posting the same normalized triple again conflicts.
	req = httptest.NewRequest("POST", "/inventory/", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var payload map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "duplicate_record", payload["kind"])
}

func TestHandleCreateInventoryBadPrice(t *testing.T) {
	app, _, _ := setupApp(t)

	body := `{"category":"Uniform No 4","type":"Boot","size":"UK 8","quantity":12,"price":"cheap"}`
	req := httptest.NewRequest("POST", "/inventory/", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleSetQuantity(t *testing.T) {
	app, store, _ := setupApp(t)

	rec := &models.InventoryRecord{Category: "Uniform No 1", ItemType: "Shirt", Size: "M", Quantity: 5}
	assert.NoError(t, store.CreateInventory(context.Background(), rec))

	req := httptest.NewRequest("PATCH", "/inventory/1/quantity", bytes.NewReader([]byte(`{"quantity":17}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.InventoryRecord
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, 17, updated.Quantity)

	req = httptest.NewRequest("PATCH", "/inventory/9999/quantity", bytes.NewReader([]byte(`{"quantity":3}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleListInventory(t *testing.T) {
	app, store, _ := setupApp(t)

	assert.NoError(t, store.CreateInventory(context.Background(), &models.InventoryRecord{
		Category: "Uniform No 1", ItemType: "Shirt", Size: "M", Quantity: 5,
	}))
	assert.NoError(t, store.CreateInventory(context.Background(), &models.InventoryRecord{
		Category: "Accessories No 1", ItemType: "Belt", Quantity: 9,
	}))

	req := httptest.NewRequest("GET", "/inventory/", nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var records []models.InventoryRecord
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	assert.Len(t, records, 2)
}

func TestHandleGetSizeChart(t *testing.T) {
	app, store, mockClient := setupApp(t)

	rec := &models.InventoryRecord{
		Category: "Uniform No 1", ItemType: "Shirt", Size: "M", Quantity: 5,
		SizeChartKey: "charts/shirt.png",
	}
	assert.NoError(t, store.CreateInventory(context.Background(), rec))

	mockClient.On("GetObject", mock.Anything, "uniform-assets", "charts/shirt.png", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte("chart-bytes"))), nil)

	req := httptest.NewRequest("GET", "/inventory/1/sizechart", nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Equal(t, "chart-bytes", string(data))
}

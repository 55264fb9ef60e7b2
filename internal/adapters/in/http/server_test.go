package http_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	httpadapter "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/persistence"
	"storefront/internal/adapters/out/persistence/auditrepo"
	"storefront/internal/adapters/out/persistence/inventoryrepo"
	"storefront/internal/adapters/out/persistence/orderrepo"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testUserKey  = "user-key"
	testAdminKey = "admin-key"
)

type orderUoWFactoryFunc func() commands.OrderUoW

func (f orderUoWFactoryFunc) Create() commands.OrderUoW { return f() }

type inventoryUoWFactoryFunc func() commands.InventoryUoW

func (f inventoryUoWFactoryFunc) Create() commands.InventoryUoW { return f() }

// testApp is the storefront wired onto an embedded database, exposed the way
// the composition root exposes it.
type testApp struct {
	echo *echo.Echo
	db   *gorm.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "storefront.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderDetailDTO{},
		&inventoryrepo.InventoryDTO{},
		&auditrepo.AuditEntryDTO{},
	))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	factory := persistence.NewGormUnitOfWorkFactory(db, log)

	var orderUoWFactory commands.OrderUoWFactory = orderUoWFactoryFunc(func() commands.OrderUoW {
		return factory.Create()
	})
	var inventoryUoWFactory commands.InventoryUoWFactory = inventoryUoWFactoryFunc(func() commands.InventoryUoW {
		return factory.Create()
	})

	srv := httpadapter.NewServer(
		commands.NewCreateOrderCommandHandler(orderUoWFactory),
		commands.NewCancelOrderCommandHandler(orderUoWFactory),
		commands.NewRestockProductCommandHandler(inventoryUoWFactory),
		queries.NewGetOrderQueryHandler(db),
		queries.NewGetInventoryQueryHandler(db),
		queries.NewGetOrderAuditTrailQueryHandler(db),
	)

	e := echo.New()
	e.Validator = httpadapter.NewCustomValidator()
	api := e.Group("/api/v1", httpadapter.APIKeyAuth(testUserKey, testAdminKey))
	servers.RegisterHandlers(api, srv)

	return &testApp{echo: e, db: db}
}

// request drives one HTTP round trip through the full echo stack.
func (a *testApp) request(t *testing.T, method, target, apiKey, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if apiKey != "" {
		req.Header.Set("X-Api-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) seedInventory(t *testing.T, productID int64, stock int) {
	t.Helper()

	item, err := inventory.NewInventory(productID, stock)
	require.NoError(t, err)
	repo := inventoryrepo.NewGormInventoryRepository(persistence.NewSession(a.db))
	require.NoError(t, repo.Add(t.Context(), item))
}

func (a *testApp) seedOrder(t *testing.T, id, customerID int64) {
	t.Helper()

	detail, err := order.NewDetail(1, 1, 500)
	require.NoError(t, err)
	aggregate, err := order.NewOrder(customerID, []order.Detail{detail})
	require.NoError(t, err)
	require.NoError(t, aggregate.AssignID(id))
	repo := orderrepo.NewGormOrderRepository(persistence.NewSession(a.db))
	require.NoError(t, repo.Add(t.Context(), aggregate))
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var payload T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestCreateOrder_Created(t *testing.T) {
	app := newTestApp(t)
	app.seedInventory(t, 7, 10)

	rec := app.request(t, http.MethodPost, "/api/v1/orders", testUserKey,
		`{"customerId": 42, "items": [{"productId": 7, "quantity": 3, "unitPrice": 1990}]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[servers.CreatedOrder](t, rec)
	assert.Positive(t, created.Id)
	assert.Equal(t, "Created", created.Status)
	assert.Equal(t, int64(5970), created.Total)

	stock := app.request(t, http.MethodGet, "/api/v1/inventory/7", testUserKey, "")
	require.Equal(t, http.StatusOK, stock.Code)
	assert.Equal(t, 7, decodeBody[servers.Inventory](t, stock).Stock)
}

func TestCreateOrder_MalformedBody(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodPost, "/api/v1/orders", testUserKey, `{"customerId": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_ValidationFailed(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodPost, "/api/v1/orders", testUserKey,
		`{"customerId": 0, "items": [{"productId": 7, "quantity": 0, "unitPrice": 1990}]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decodeBody[servers.ValidationError](t, rec)
	assert.Equal(t, "validation failed", payload.Message)
	assert.Contains(t, payload.Fields, "customerId")
	assert.Contains(t, payload.Fields, "items[0].quantity")
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodPost, "/api/v1/orders", testUserKey,
		`{"customerId": 42, "items": []}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decodeBody[servers.ValidationError](t, rec)
	assert.Contains(t, payload.Fields, "items")
}

func TestCreateOrder_InsufficientStock(t *testing.T) {
	app := newTestApp(t)
	app.seedInventory(t, 7, 2)

	rec := app.request(t, http.MethodPost, "/api/v1/orders", testUserKey,
		`{"customerId": 42, "items": [{"productId": 7, "quantity": 5, "unitPrice": 1990}]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decodeBody[servers.BusinessRuleError](t, rec)
	assert.Equal(t, "INSUFFICIENT_STOCK", payload.Code)
	assert.Contains(t, payload.Message, "requested 5, available 2")

	stock := app.request(t, http.MethodGet, "/api/v1/inventory/7", testUserKey, "")
	assert.Equal(t, 2, decodeBody[servers.Inventory](t, stock).Stock)
}

func TestCreateOrder_UnknownProduct(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodPost, "/api/v1/orders", testUserKey,
		`{"customerId": 42, "items": [{"productId": 99, "quantity": 1, "unitPrice": 100}]}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	payload := decodeBody[servers.Error](t, rec)
	assert.Equal(t, int32(http.StatusNotFound), payload.Code)
	assert.Contains(t, payload.Message, "product 99")
}

func TestGetOrder_Found(t *testing.T) {
	app := newTestApp(t)
	app.seedInventory(t, 7, 10)

	created := decodeBody[servers.CreatedOrder](t, app.request(t, http.MethodPost, "/api/v1/orders", testUserKey,
		`{"customerId": 42, "items": [{"productId": 7, "quantity": 2, "unitPrice": 1500}]}`))

	rec := app.request(t, http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", created.Id), testUserKey, "")

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody[servers.Order](t, rec)
	assert.Equal(t, created.Id, payload.Id)
	assert.Equal(t, int64(42), payload.CustomerId)
	assert.Equal(t, "Created", payload.Status)
	assert.Equal(t, int64(3000), payload.Total)
	require.Len(t, payload.Details, 1)
	assert.Equal(t, servers.OrderDetail{ProductId: 7, Quantity: 2, UnitPrice: 1500, Subtotal: 3000}, payload.Details[0])
}

func TestGetOrder_NotFound(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodGet, "/api/v1/orders/999", testUserKey, "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeBody[servers.Error](t, rec).Message, "order 999")
}

func TestGetOrder_InvalidID(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodGet, "/api/v1/orders/abc", testUserKey, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelOrder_NoContent(t *testing.T) {
	app := newTestApp(t)
	app.seedInventory(t, 7, 10)

	created := decodeBody[servers.CreatedOrder](t, app.request(t, http.MethodPost, "/api/v1/orders", testUserKey,
		`{"customerId": 42, "items": [{"productId": 7, "quantity": 3, "unitPrice": 1990}]}`))

	rec := app.request(t, http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/cancel", created.Id), testUserKey, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	fetched := decodeBody[servers.Order](t, app.request(t, http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", created.Id), testUserKey, ""))
	assert.Equal(t, "Cancelled", fetched.Status)

	stock := app.request(t, http.MethodGet, "/api/v1/inventory/7", testUserKey, "")
	assert.Equal(t, 10, decodeBody[servers.Inventory](t, stock).Stock)
}

func TestCancelOrder_Conflict(t *testing.T) {
	app := newTestApp(t)
	app.seedInventory(t, 7, 10)

	created := decodeBody[servers.CreatedOrder](t, app.request(t, http.MethodPost, "/api/v1/orders", testUserKey,
		`{"customerId": 42, "items": [{"productId": 7, "quantity": 1, "unitPrice": 1990}]}`))

	first := app.request(t, http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/cancel", created.Id), testUserKey, "")
	require.Equal(t, http.StatusNoContent, first.Code)

	second := app.request(t, http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/cancel", created.Id), testUserKey, "")
	require.Equal(t, http.StatusConflict, second.Code)
	payload := decodeBody[servers.Error](t, second)
	assert.Equal(t, int32(http.StatusConflict), payload.Code)
	assert.Contains(t, payload.Message, "already cancelled")
}

func TestCancelOrder_NotFound(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodPost, "/api/v1/orders/999/cancel", testUserKey, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrderAuditTrail_Entries(t *testing.T) {
	app := newTestApp(t)
	app.seedInventory(t, 7, 10)

	created := decodeBody[servers.CreatedOrder](t, app.request(t, http.MethodPost, "/api/v1/orders", testUserKey,
		`{"customerId": 42, "items": [{"productId": 7, "quantity": 1, "unitPrice": 1990}]}`))
	cancel := app.request(t, http.MethodPost, fmt.Sprintf("/api/v1/orders/%d/cancel", created.Id), testUserKey, "")
	require.Equal(t, http.StatusNoContent, cancel.Code)

	rec := app.request(t, http.MethodGet, fmt.Sprintf("/api/v1/orders/%d/audit", created.Id), testAdminKey, "")

	require.Equal(t, http.StatusOK, rec.Code)
	trail := decodeBody[[]servers.AuditEntry](t, rec)
	require.Len(t, trail, 2)
	assert.Equal(t, "order_created", trail[0].Action)
	assert.Equal(t, "order_cancelled", trail[1].Action)
}

func TestGetOrderAuditTrail_NoEntries(t *testing.T) {
	app := newTestApp(t)
	app.seedOrder(t, 55, 42)

	rec := app.request(t, http.MethodGet, "/api/v1/orders/55/audit", testAdminKey, "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestGetOrderAuditTrail_RequiresAdmin(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodGet, "/api/v1/orders/55/audit", testUserKey, "")

	require.Equal(t, http.StatusForbidden, rec.Code)
	payload := decodeBody[servers.Error](t, rec)
	assert.Equal(t, int32(http.StatusForbidden), payload.Code)
}

func TestGetInventory_NotFound(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodGet, "/api/v1/inventory/404", testUserKey, "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeBody[servers.Error](t, rec).Message, "product 404")
}

func TestRestockProduct_Upserts(t *testing.T) {
	app := newTestApp(t)

	first := app.request(t, http.MethodPut, "/api/v1/inventory/9/stock", testAdminKey, `{"quantity": 20}`)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, servers.Inventory{ProductId: 9, Stock: 20}, decodeBody[servers.Inventory](t, first))

	second := app.request(t, http.MethodPut, "/api/v1/inventory/9/stock", testAdminKey, `{"quantity": 15}`)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 35, decodeBody[servers.Inventory](t, second).Stock)
}

func TestRestockProduct_ValidationFailed(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodPut, "/api/v1/inventory/9/stock", testAdminKey, `{"quantity": 0}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[servers.ValidationError](t, rec).Fields, "quantity")
}

func TestRestockProduct_RequiresAdmin(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodPut, "/api/v1/inventory/9/stock", testUserKey, `{"quantity": 20}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuth_MissingKey(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodGet, "/api/v1/inventory/7", "", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	payload := decodeBody[servers.Error](t, rec)
	assert.Equal(t, int32(http.StatusUnauthorized), payload.Code)
}

func TestAuth_UnknownKey(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodGet, "/api/v1/inventory/7", "wrong-key", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_AdminKeyAllowedOnUserRoutes(t *testing.T) {
	app := newTestApp(t)
	app.seedInventory(t, 7, 10)

	rec := app.request(t, http.MethodGet, "/api/v1/inventory/7", testAdminKey, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

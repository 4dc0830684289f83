package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/JoseSC30/superburguer-miniapp/internal/apperrors"
	"github.com/JoseSC30/superburguer-miniapp/internal/config"
	"github.com/JoseSC30/superburguer-miniapp/internal/events"
	"github.com/JoseSC30/superburguer-miniapp/internal/handlers"
	"github.com/JoseSC30/superburguer-miniapp/internal/models"
	"github.com/JoseSC30/superburguer-miniapp/internal/server"
	"github.com/JoseSC30/superburguer-miniapp/internal/service"
	"github.com/JoseSC30/superburguer-miniapp/internal/store"
)

type stubCatalogClient struct {
	products []models.Product
	err      error
}

func (c *stubCatalogClient) GetProducts(ctx context.Context) ([]models.Product, error) {
	return c.products, c.err
}

type stubUserClient struct {
	user *models.User
	err  error
}

func (c *stubUserClient) GetUserByTelegramID(ctx context.Context, telegramID string) (*models.User, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.user, nil
}

type recordingSender struct {
	mu       sync.Mutex
	messages []string
	fail     error
}

func (s *recordingSender) SendMessage(ctx context.Context, requesterID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.messages = append(s.messages, text)
	return nil
}

func (s *recordingSender) setFail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = err
}

type fixture struct {
	router *gin.Engine
	sender *recordingSender
}

func newFixture(t *testing.T, catalog *stubCatalogClient, user *stubUserClient) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	sender := &recordingSender{}

	catalogService := service.NewCatalogService(catalog, nil, logger)
	orderService := service.NewOrderService(
		store.NewMemoryOrderStore(),
		catalogService,
		events.NopPublisher{},
		sender,
		logger,
	)

	h := handlers.NewHandlers(orderService, catalogService, user, cfg, logger)
	srv := server.New(h, nil, cfg)

	return &fixture{router: srv.Router(), sender: sender}
}

func (f *fixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func validCreateRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		RequesterID: "1234",
		UserName:    "Jose",
		Items: []models.OrderItem{
			{ProductID: "p1", Name: "Classic", Quantity: 2, UnitPrice: 25},
		},
		Total: 50,
	}
}

func TestCreateOrder(t *testing.T) {
	f := newFixture(t, &stubCatalogClient{}, &stubUserClient{})

	w := f.do(http.MethodPost, "/orders", validCreateRequest())
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	require.Equal(t, int64(1), order.ID)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.Equal(t, 50.0, order.Total)
}

func TestCreateOrderInvalidBody(t *testing.T) {
	f := newFixture(t, &stubCatalogClient{}, &stubUserClient{})

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderValidationFailure(t *testing.T) {
	f := newFixture(t, &stubCatalogClient{}, &stubUserClient{})

	body := models.CreateOrderRequest{RequesterID: "1234"}
	w := f.do(http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "at least one item")
}

func TestCreateOrderResolvesPricesFromCatalog(t *testing.T) {
	catalog := &stubCatalogClient{products: []models.Product{
		{ID: "p1", Name: "Classic", Price: 25, Active: true},
	}}
	f := newFixture(t, catalog, &stubUserClient{})

	body := models.CreateOrderRequest{
		UserID: "u-1",
		Items:  []models.OrderItem{{ProductID: "p1", Quantity: 2}},
	}
	w := f.do(http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	require.Equal(t, 50.0, order.Total)
	require.Equal(t, "u-1", order.RequesterID, "user_id stands in for requester_id")
}

func TestGetOrder(t *testing.T) {
	f := newFixture(t, &stubCatalogClient{}, &stubUserClient{})
	f.do(http.MethodPost, "/orders", validCreateRequest())

	w := f.do(http.MethodGet, "/orders/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	require.Equal(t, int64(1), order.ID)
}

func TestGetOrderNotFound(t *testing.T) {
	f := newFixture(t, &stubCatalogClient{}, &stubUserClient{})

	w := f.do(http.MethodGet, "/orders/99", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrderInvalidID(t *testing.T) {
	f := newFixture(t, &stubCatalogClient{}, &stubUserClient{})

	w := f.do(http.MethodGet, "/orders/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListOrdersByRequester(t *testing.T) {
	f := newFixture(t, &stubCatalogClient{}, &stubUserClient{})

	for i := 0; i < 3; i++ {
		req := validCreateRequest()
		req.RequesterID = "requester-a"
		f.do(http.MethodPost, "/orders", req)
	}
	req := validCreateRequest()
	req.RequesterID = "requester-b"
	f.do(http.MethodPost, "/orders", req)

	w := f.do(http.MethodGet, "/orders?requester_id=requester-a", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Orders []models.Order `json:"orders"`
		Count  int            `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Count)
	for i, order := range resp.Orders {
		require.Equal(t, "requester-a", order.RequesterID)
		if i > 0 {
			require.Greater(t, order.ID, resp.Orders[i-1].ID, "creation order")
		}
	}
}

func TestListOrdersRequiresRequester(t *testing.T) {
	f := newFixture(t, &stubCatalogClient{}, &stubUserClient{})

	w := f.do(http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	f := newFixture(t, &stubCatalogClient{}, &stubUserClient{})
	f.do(http.MethodPost, "/orders", validCreateRequest())

	w := f.do(http.MethodPatch, "/orders/1/status", models.UpdateOrderStatusRequest{
		Status: models.OrderStatusDelivering,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.UpdateOrderStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, models.OrderStatusDelivering, resp.Order.Status)
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	f := newFixture(t, &stubCatalogClient{}, &stubUserClient{})

	w := f.do(http.MethodPatch, "/orders/77/status", models.UpdateOrderStatusRequest{
		Status: models.OrderStatusDelivered,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatusInvalidValue(t *testing.T) {
	f := newFixture(t, &stubCatalogClient{}, &stubUserClient{})
	f.do(http.MethodPost, "/orders", validCreateRequest())

	w := f.do(http.MethodPatch, "/orders/1/status", map[string]string{"status": "shipped"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatusNotificationFailure(t *testing.T) {
	f := newFixture(t, &stubCatalogClient{}, &stubUserClient{})
	f.do(http.MethodPost, "/orders", validCreateRequest())

	f.sender.setFail(apperrors.NewUpstreamError("telegram", errors.New("chat unreachable")))
	w := f.do(http.MethodPatch, "/orders/1/status", models.UpdateOrderStatusRequest{
		Status: models.OrderStatusPreparing,
	})
	require.Equal(t, http.StatusBadGateway, w.Code)

	// Status change is not rolled back.
	f.sender.setFail(nil)
	w = f.do(http.MethodGet, "/orders/1", nil)
	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	require.Equal(t, models.OrderStatusPreparing, order.Status)
}

func TestGetProducts(t *testing.T) {
	catalog := &stubCatalogClient{products: []models.Product{
		{ID: "p1", Name: "Classic", Price: 25, Active: true},
		{ID: "p2", Name: "Veggie", Price: 30, Active: false},
	}}
	f := newFixture(t, catalog, &stubUserClient{})

	w := f.do(http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 2)
}

func TestGetProductsUpstreamDown(t *testing.T) {
	catalog := &stubCatalogClient{err: apperrors.NewUpstreamError("catalog", errors.New("refused"))}
	f := newFixture(t, catalog, &stubUserClient{})

	w := f.do(http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetUserByTelegramID(t *testing.T) {
	user := &stubUserClient{user: &models.User{ID: "u-1", TelegramID: "5869516446"}}
	f := newFixture(t, &stubCatalogClient{}, user)

	w := f.do(http.MethodGet, "/users/telegram/5869516446", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"u-1"`)
}

func TestGetUserByTelegramIDNotFound(t *testing.T) {
	user := &stubUserClient{err: apperrors.ErrNotFound}
	f := newFixture(t, &stubCatalogClient{}, user)

	w := f.do(http.MethodGet, "/users/telegram/0", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthReportsOrderCount(t *testing.T) {
	f := newFixture(t, &stubCatalogClient{}, &stubUserClient{})
	f.do(http.MethodPost, "/orders", validCreateRequest())
	f.do(http.MethodPost, "/orders", validCreateRequest())

	w := f.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "ok", resp["status"])
	require.Equal(t, float64(2), resp["orders"])
}

func TestRequestIDEchoed(t *testing.T) {
	f := newFixture(t, &stubCatalogClient{}, &stubUserClient{})

	w := f.do(http.MethodGet, "/health", nil)
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "given-id")
	w = httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, "given-id", w.Header().Get("X-Request-ID"))
}

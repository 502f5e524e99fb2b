package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/orderdesk/backoffice/internal/domain/errors"
	"github.com/orderdesk/backoffice/internal/domain/model"
	"github.com/orderdesk/backoffice/internal/domain/repository"
	"github.com/orderdesk/backoffice/internal/server/http/dto"
	"github.com/orderdesk/backoffice/internal/server/http/middleware"
	testhelpers "github.com/orderdesk/backoffice/internal/test"
	"github.com/orderdesk/backoffice/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, target string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asStaff(id int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.StaffIDContextKey, id)
	}
}

func TestCurrentStaffID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentStaffID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.StaffIDContextKey, int64(42))
	if got := CurrentStaffID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Email: "alice@example.com", Password: "secret"})
	resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, nil, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") == "" {
		t.Fatal("expected auth header to be set")
	}
	var payload dto.LoginResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Token == "" || payload.CSRFToken == "" {
		t.Fatalf("expected tokens in response, got %+v", payload)
	}
}

func TestAuthHandlerLoginRejectsBadPayload(t *testing.T) {
	resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, nil, []byte(`{"email":"x"}`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestAuthHandlerLoginInvalidCredentials(t *testing.T) {
	stub := testhelpers.AuthFacadeStub{
		LoginFn: func(context.Context, string, string) (*model.Staff, string, string, error) {
			return nil, "", "", domainErrors.ErrInvalidCredentials
		},
	}
	body, _ := json.Marshal(dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(stub).Login, nil, body)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestClientHandlerCreate(t *testing.T) {
	body, _ := json.Marshal(dto.ClientRequest{Name: "Martin", Email: "martin@example.com"})
	resp := performRequest(t, http.MethodPost, "/clients", "/clients", NewClientHandler(testhelpers.ClientFacadeStub{}).Create, asStaff(1), body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
}

func TestClientHandlerCreateDuplicate(t *testing.T) {
	stub := testhelpers.ClientFacadeStub{
		CreateFn: func(context.Context, usecase.ClientInput) (*model.Client, error) {
			return nil, domainErrors.ErrAlreadyExists
		},
	}
	body, _ := json.Marshal(dto.ClientRequest{Name: "Martin", Email: "martin@example.com"})
	resp := performRequest(t, http.MethodPost, "/clients", "/clients", NewClientHandler(stub).Create, asStaff(1), body)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
}

func TestClientHandlerGetNotFound(t *testing.T) {
	stub := testhelpers.ClientFacadeStub{
		GetFn: func(context.Context, int64) (*model.Client, error) {
			return nil, domainErrors.ErrNotFound
		},
	}
	resp := performRequest(t, http.MethodGet, "/clients/:id", "/clients/7", NewClientHandler(stub).Get, asStaff(1), nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestClientHandlerBadID(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/clients/:id", "/clients/abc", NewClientHandler(testhelpers.ClientFacadeStub{}).Get, asStaff(1), nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestClientHandlerDeleteConflict(t *testing.T) {
	stub := testhelpers.ClientFacadeStub{
		DeleteFn: func(context.Context, int64) error {
			return domainErrors.ErrConflict
		},
	}
	resp := performRequest(t, http.MethodDelete, "/clients/:id", "/clients/7", NewClientHandler(stub).Delete, asStaff(1), nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 while orders exist, got %d", resp.Code)
	}
}

func TestClientHandlerFlashcode(t *testing.T) {
	stub := testhelpers.ClientFacadeStub{
		FlashcodeFn: func(ctx context.Context, id int64) (*model.Client, *usecase.Flashcode, error) {
			return &model.Client{ID: id}, &usecase.Flashcode{
				Token:      "tok",
				ScanURL:    "https://shop.example.com/api/scan/tok",
				QRImageURL: "https://api.qrserver.com/v1/create-qr-code/?data=x",
			}, nil
		},
	}
	resp := performRequest(t, http.MethodGet, "/clients/:id/flashcode", "/clients/7/flashcode", NewClientHandler(stub).Flashcode, asStaff(1), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload dto.FlashcodeResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.FlashcodeID != "tok" || payload.ScanURL == "" || payload.QRImageURL == "" {
		t.Fatalf("incomplete flashcode payload %+v", payload)
	}
}

func TestOrderHandlerCreateCarriesStaffID(t *testing.T) {
	var gotCreatedBy *int64
	stub := testhelpers.OrderFacadeStub{
		CreateFn: func(ctx context.Context, in usecase.OrderInput) (*model.Order, error) {
			gotCreatedBy = in.CreatedBy
			return &model.Order{ID: 1, ClientID: in.ClientID, Status: in.Status, OrderDate: in.OrderDate}, nil
		},
	}
	body, _ := json.Marshal(dto.OrderCreateRequest{ClientID: 3, Description: "repair"})
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(stub).Create, asStaff(42), body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	if gotCreatedBy == nil || *gotCreatedBy != 42 {
		t.Fatalf("expected author 42, got %v", gotCreatedBy)
	}
}

func TestOrderHandlerCreateBadDate(t *testing.T) {
	body, _ := json.Marshal(dto.OrderCreateRequest{ClientID: 3, OrderDate: "14/03/2026"})
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(testhelpers.OrderFacadeStub{}).Create, asStaff(1), body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for wrong date layout, got %d", resp.Code)
	}
}

func TestOrderHandlerUpdateInvalidStatus(t *testing.T) {
	stub := testhelpers.OrderFacadeStub{
		UpdateFn: func(context.Context, int64, usecase.OrderUpdate) error {
			return domainErrors.ErrInvalidStatus
		},
	}
	status := "shipped"
	body, _ := json.Marshal(dto.OrderUpdateRequest{Status: &status})
	resp := performRequest(t, http.MethodPut, "/orders/:id", "/orders/5", NewOrderHandler(stub).Update, asStaff(1), body)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
}

func TestOrderHandlerListFilters(t *testing.T) {
	var gotFilter repository.OrderFilter
	stub := testhelpers.OrderFacadeStub{
		ListFn: func(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
			gotFilter = filter
			return nil, nil
		},
	}
	resp := performRequest(t, http.MethodGet, "/orders", "/orders?client_id=3&status=pending&from=2026-01-01&to=2026-02-01", NewOrderHandler(stub).List, asStaff(1), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotFilter.ClientID == nil || *gotFilter.ClientID != 3 {
		t.Fatalf("client filter not applied: %+v", gotFilter)
	}
	if gotFilter.Status == nil || *gotFilter.Status != model.OrderStatusPending {
		t.Fatalf("status filter not applied: %+v", gotFilter)
	}
	if gotFilter.From == nil || gotFilter.To == nil {
		t.Fatalf("date filters not applied: %+v", gotFilter)
	}
}

func TestOrderHandlerListRejectsUnknownStatus(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/orders", "/orders?status=shipped", NewOrderHandler(testhelpers.OrderFacadeStub{}).List, asStaff(1), nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestOrderHandlerHistory(t *testing.T) {
	previous := model.OrderStatusPending
	stub := testhelpers.OrderFacadeStub{
		HistoryFn: func(ctx context.Context, orderID int64) ([]model.StatusUpdate, error) {
			return []model.StatusUpdate{
				{ID: 1, OrderID: orderID, NewStatus: model.OrderStatusPending, CreatedAt: time.Unix(0, 0)},
				{ID: 2, OrderID: orderID, PreviousStatus: &previous, NewStatus: model.OrderStatusInProgress, CreatedAt: time.Unix(1, 0)},
			}, nil
		},
	}
	resp := performRequest(t, http.MethodGet, "/orders/:id/history", "/orders/5/history", NewOrderHandler(stub).History, asStaff(1), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload []dto.StatusUpdateResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(payload))
	}
	if payload[0].PreviousStatus != nil {
		t.Fatal("bootstrap row must expose null previous status")
	}
	if payload[1].PreviousStatus == nil || *payload[1].PreviousStatus != "pending" {
		t.Fatalf("unexpected previous status %v", payload[1].PreviousStatus)
	}
}

func TestScanHandlerScan(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/scan/:code", "/scan/tok", NewScanHandler(testhelpers.ScanFacadeStub{}).Scan, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload dto.ScanResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Client.ID == 0 {
		t.Fatalf("expected client in payload, got %+v", payload)
	}
}

func TestScanHandlerUnknownToken(t *testing.T) {
	stub := testhelpers.ScanFacadeStub{
		ScanFn: func(context.Context, string) (*model.Client, []model.Order, error) {
			return nil, nil, domainErrors.ErrNotFound
		},
	}
	resp := performRequest(t, http.MethodGet, "/scan/:code", "/scan/unknown", NewScanHandler(stub).Scan, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestScanHandlerUpdateStatusForeignOrder(t *testing.T) {
	stub := testhelpers.ScanFacadeStub{
		UpdateStatusFn: func(context.Context, string, int64, model.OrderStatus, string) error {
			return domainErrors.ErrNotFound
		},
	}
	body, _ := json.Marshal(dto.ScanStatusRequest{Status: "cancelled"})
	resp := performRequest(t, http.MethodPost, "/scan/:code/orders/:id/status", "/scan/tok/orders/9/status", NewScanHandler(stub).UpdateStatus, nil, body)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("foreign orders must read as 404, got %d", resp.Code)
	}
}

func TestScanHandlerCreateOrder(t *testing.T) {
	body, _ := json.Marshal(dto.ScanOrderRequest{Description: "new strap"})
	resp := performRequest(t, http.MethodPost, "/scan/:code/orders", "/scan/tok/orders", NewScanHandler(testhelpers.ScanFacadeStub{}).CreateOrder, nil, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
}

func TestReportHandlerCSV(t *testing.T) {
	expected := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	stub := testhelpers.OrderFacadeStub{
		ListFn: func(context.Context, repository.OrderFilter) ([]model.Order, error) {
			return []model.Order{{
				ID:               1,
				Reference:        "CMD202603141A2B",
				ClientID:         3,
				Status:           model.OrderStatusInProgress,
				OrderDate:        time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
				ExpectedDelivery: &expected,
			}}, nil
		},
	}
	facade := testhelpers.BackofficeFacadeStub{OrderFacadeStub: stub}
	resp := performRequest(t, http.MethodGet, "/reports/orders", "/reports/orders?format=csv", NewReportHandler(facade).Orders, asStaff(1), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("expected CSV content type, got %q", ct)
	}
	lines := strings.Split(strings.TrimSpace(resp.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "CMD202603141A2B,3,in_progress,2026-03-14,2026-04-01") {
		t.Fatalf("unexpected CSV row %q", lines[1])
	}
}

func TestReportHandlerJSONDefault(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/reports/orders", "/reports/orders", NewReportHandler(testhelpers.BackofficeFacadeStub{}).Orders, asStaff(1), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("expected JSON body: %v", err)
	}
}

func TestReportHandlerDashboard(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/reports/dashboard", "/reports/dashboard", NewReportHandler(testhelpers.BackofficeFacadeStub{}).Dashboard, asStaff(1), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload dto.DashboardResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("expected JSON body: %v", err)
	}
	if payload.Clients != 1 || payload.Orders != 1 || payload.EmailsSent != 1 {
		t.Fatalf("unexpected counters: %+v", payload)
	}
	if len(payload.RecentOrders) != 1 || payload.RecentOrders[0].ClientName != "Martin" {
		t.Fatalf("unexpected recent orders: %+v", payload.RecentOrders)
	}
}

func TestReportHandlerDashboardError(t *testing.T) {
	facade := testhelpers.BackofficeFacadeStub{
		ReportFacadeStub: testhelpers.ReportFacadeStub{
			StatsFn: func(context.Context) (*usecase.DashboardStats, error) {
				return nil, errors.New("storage down")
			},
		},
	}
	resp := performRequest(t, http.MethodGet, "/reports/dashboard", "/reports/dashboard", NewReportHandler(facade).Dashboard, asStaff(1), nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}

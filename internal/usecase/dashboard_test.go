package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/orderdesk/backoffice/internal/domain/model"
	testhelpers "github.com/orderdesk/backoffice/internal/test"
	"github.com/orderdesk/backoffice/internal/usecase"
)

func newDashboardFixture(t *testing.T) (*usecase.DashboardUseCase, *testhelpers.ClientRepositoryStub, *testhelpers.OrderRepositoryStub, *testhelpers.NotificationRepositoryStub, *model.Client) {
	t.Helper()
	clients := testhelpers.NewClientRepositoryStub()
	orders := testhelpers.NewOrderRepositoryStub(clients)
	notifications := testhelpers.NewNotificationRepositoryStub()

	client, err := clients.Create(context.Background(), &model.Client{
		Name: "Martin", FirstName: "Paul", Email: "paul@example.com", FlashcodeID: "code-1",
	})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}

	return usecase.NewDashboardUseCase(clients, orders, notifications), clients, orders, notifications, client
}

func TestDashboardStatsCounters(t *testing.T) {
	uc, _, orders, notifications, client := newDashboardFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := orders.Create(ctx, &model.Order{
			Reference: usecase.GenerateReference(time.Now().AddDate(0, 0, i)),
			ClientID:  client.ID,
			Status:    model.OrderStatusPending,
			OrderDate: time.Now(),
		}, "Order created"); err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}
	for _, status := range []model.DeliveryStatus{model.DeliverySent, model.DeliverySent, model.DeliveryFailed} {
		if _, err := notifications.Create(ctx, &model.Notification{
			OrderID: 1, ClientID: client.ID, Channel: model.ChannelEmail, DeliveryStatus: status,
		}); err != nil {
			t.Fatalf("seed notification: %v", err)
		}
	}

	stats, err := uc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats returned error: %v", err)
	}
	if stats.Clients != 1 {
		t.Errorf("expected 1 client, got %d", stats.Clients)
	}
	if stats.Orders != 3 {
		t.Errorf("expected 3 orders, got %d", stats.Orders)
	}
	if stats.EmailsSent != 2 {
		t.Errorf("expected 2 delivered emails, got %d", stats.EmailsSent)
	}
}

func TestDashboardStatsRecentOrdersNewestFirst(t *testing.T) {
	uc, _, orders, _, client := newDashboardFixture(t)
	ctx := context.Background()

	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		if _, err := orders.Create(ctx, &model.Order{
			Reference: usecase.GenerateReference(day.AddDate(0, 0, i)),
			ClientID:  client.ID,
			Status:    model.OrderStatusPending,
			OrderDate: day.AddDate(0, 0, i),
		}, "Order created"); err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}

	stats, err := uc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats returned error: %v", err)
	}
	if len(stats.Recent) != 5 {
		t.Fatalf("expected 5 recent orders, got %d", len(stats.Recent))
	}
	for i := 1; i < len(stats.Recent); i++ {
		if stats.Recent[i].Order.OrderDate.After(stats.Recent[i-1].Order.OrderDate) {
			t.Fatalf("recent orders out of order at %d: %+v", i, stats.Recent)
		}
	}
	if stats.Recent[0].Client.Name != "Martin" {
		t.Fatalf("expected client joined into recent entry, got %+v", stats.Recent[0].Client)
	}
}

func TestDashboardStatsSkipsOrphanedOrders(t *testing.T) {
	uc, clients, orders, _, client := newDashboardFixture(t)
	ctx := context.Background()

	if _, err := orders.Create(ctx, &model.Order{
		Reference: usecase.GenerateReference(time.Now()),
		ClientID:  client.ID,
		Status:    model.OrderStatusPending,
		OrderDate: time.Now(),
	}, "Order created"); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	// Simulate the client disappearing between the listing and the join.
	delete(clients.ByID, client.ID)

	stats, err := uc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats returned error: %v", err)
	}
	if len(stats.Recent) != 0 {
		t.Fatalf("expected orphaned order to drop out, got %+v", stats.Recent)
	}
	if stats.Orders != 1 {
		t.Fatalf("expected order counter unaffected, got %d", stats.Orders)
	}
}

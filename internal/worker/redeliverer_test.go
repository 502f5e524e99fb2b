package worker

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/orderdesk/backoffice/internal/domain/model"
	testhelpers "github.com/orderdesk/backoffice/internal/test"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewRedelivererDefaults(t *testing.T) {
	r := NewRedeliverer(&testhelpers.WorkerFacadeStub{}, time.Second, 0, 0, testLogger())
	if r.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", r.batchSize)
	}
	if r.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", r.workers)
	}
}

func TestRedelivererProcessesFailedNotifications(t *testing.T) {
	var served atomic.Bool
	facade := &testhelpers.WorkerFacadeStub{
		FailedFn: func(ctx context.Context, limit int) ([]model.Notification, error) {
			if served.Swap(true) {
				return nil, nil
			}
			return []model.Notification{
				{ID: 1, DeliveryStatus: model.DeliveryFailed},
				{ID: 2, DeliveryStatus: model.DeliveryFailed},
			}, nil
		},
	}

	r := NewRedeliverer(facade, 10*time.Millisecond, 5, 2, testLogger())
	r.Start(context.Background())
	defer r.Stop()

	deadline := time.After(2 * time.Second)
	for facade.Redelivered.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected 2 redeliveries, got %d", facade.Redelivered.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestRedelivererOutlivesStartContext(t *testing.T) {
	var served atomic.Bool
	facade := &testhelpers.WorkerFacadeStub{
		FailedFn: func(context.Context, int) ([]model.Notification, error) {
			if served.Swap(true) {
				return nil, nil
			}
			return []model.Notification{{ID: 1, DeliveryStatus: model.DeliveryFailed}}, nil
		},
	}

	r := NewRedeliverer(facade, 10*time.Millisecond, 1, 1, testLogger())
	startCtx, cancel := context.WithCancel(context.Background())
	r.Start(startCtx)
	defer r.Stop()
	// The DI container cancels the startup context right after boot.
	cancel()

	deadline := time.After(2 * time.Second)
	for facade.Redelivered.Load() < 1 {
		select {
		case <-deadline:
			t.Fatalf("expected redelivery after start context cancellation, got %d", facade.Redelivered.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestRedelivererDisabledWithZeroInterval(t *testing.T) {
	facade := &testhelpers.WorkerFacadeStub{
		FailedFn: func(context.Context, int) ([]model.Notification, error) {
			t.Error("disabled worker must not poll")
			return nil, nil
		},
	}

	r := NewRedeliverer(facade, 0, 5, 2, testLogger())
	r.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	r.Stop()
}

func TestRedelivererStopDrains(t *testing.T) {
	facade := &testhelpers.WorkerFacadeStub{}
	r := NewRedeliverer(facade, 10*time.Millisecond, 1, 1, testLogger())
	r.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	r.Stop()
	// A second Stop must be safe.
	r.Stop()
}

func TestRedelivererSurvivesRedeliveryErrors(t *testing.T) {
	var polls atomic.Int64
	facade := &testhelpers.WorkerFacadeStub{
		FailedFn: func(context.Context, int) ([]model.Notification, error) {
			if polls.Add(1) > 1 {
				return nil, nil
			}
			return []model.Notification{{ID: 1}}, nil
		},
		RedeliverFn: func(context.Context, model.Notification) error {
			return context.DeadlineExceeded
		},
	}

	r := NewRedeliverer(facade, 10*time.Millisecond, 1, 1, testLogger())
	r.Start(context.Background())
	defer r.Stop()

	deadline := time.After(2 * time.Second)
	for facade.Redelivered.Load() < 1 {
		select {
		case <-deadline:
			t.Fatal("expected at least one redelivery attempt")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

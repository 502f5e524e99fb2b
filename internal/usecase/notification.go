package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/orderdesk/backoffice/internal/adapter/sendgrid"
	"github.com/orderdesk/backoffice/internal/domain/model"
	"github.com/orderdesk/backoffice/internal/domain/repository"
	"github.com/orderdesk/backoffice/internal/pkg/template"
)

const (
	subjectNewOrder     = "Confirmation of your order {reference}"
	subjectStatusChange = "Status update for your order {reference}"
	subjectGeneric      = "Information about your order {reference}"

	bodyNewOrder = "Hello {client_first_name} {client_name},\n\n" +
		"We have received your order (reference: {reference}) placed on {order_date}.\n" +
		"We will keep you informed as it progresses.\n\n" +
		"Thank you for your trust.\n{app_name}"

	bodyStatusChange = "Hello {client_first_name} {client_name},\n\n" +
		"The status of your order (reference: {reference}) has been updated.\n" +
		"Your order is now {status}.\n\n" +
		"Thank you for your trust.\n{app_name}"

	bodyGeneric = "Hello {client_first_name} {client_name},\n\n" +
		"Information regarding your order (reference: {reference}).\n\n" +
		"Thank you for your trust.\n{app_name}"
)

// NotificationExtra carries event specific template values.
type NotificationExtra struct {
	NewStatus model.OrderStatus
}

// DispatchResult reports the outcome of one notification attempt.
// Delivery problems (bad recipient, transport rejection) are part of
// the result, not errors: the triggering state change already stands.
type DispatchResult struct {
	NotificationID int64
	Delivered      bool
	Reason         string
}

// NotificationDispatcher renders, persists, and sends order
// notifications. It never retries on its own.
type NotificationDispatcher struct {
	orders        repository.OrderRepository
	clients       repository.ClientRepository
	notifications repository.NotificationRepository
	transport     sendgrid.Transport
	appName       string
	logger        *slog.Logger
}

// NewNotificationDispatcher constructs NotificationDispatcher.
func NewNotificationDispatcher(
	orders repository.OrderRepository,
	clients repository.ClientRepository,
	notifications repository.NotificationRepository,
	transport sendgrid.Transport,
	appName string,
	logger *slog.Logger,
) *NotificationDispatcher {
	return &NotificationDispatcher{
		orders:        orders,
		clients:       clients,
		notifications: notifications,
		transport:     transport,
		appName:       appName,
		logger:        logger,
	}
}

func templatesFor(event model.NotificationEvent) (subject, body string) {
	switch event {
	case model.EventNewOrder:
		return subjectNewOrder, bodyNewOrder
	case model.EventStatusChange:
		return subjectStatusChange, bodyStatusChange
	default:
		return subjectGeneric, bodyGeneric
	}
}

// Dispatch loads the order with its client, renders the event's
// template, persists a pending notification row, then attempts the
// send and records the outcome on the row.
func (d *NotificationDispatcher) Dispatch(ctx context.Context, orderID int64, event model.NotificationEvent, extra NotificationExtra) (*DispatchResult, error) {
	order, client, err := d.orders.GetWithClient(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order %d: %w", orderID, err)
	}

	status := order.Status
	if extra.NewStatus != "" {
		status = extra.NewStatus
	}

	data := template.Data{
		template.PlaceholderReference:   order.Reference,
		template.PlaceholderClientName:  client.Name,
		template.PlaceholderClientFirst: client.FirstName,
		template.PlaceholderOrderDate:   order.OrderDate.Format("02/01/2006"),
		template.PlaceholderStatus:      StatusLabel(status),
		template.PlaceholderAppName:     d.appName,
	}

	subjectTmpl, bodyTmpl := templatesFor(event)
	subject, err := template.Render(subjectTmpl, data)
	if err != nil {
		return nil, fmt.Errorf("render subject: %w", err)
	}
	body, err := template.Render(bodyTmpl, data)
	if err != nil {
		return nil, fmt.Errorf("render body: %w", err)
	}

	// The pending row goes in before the send so the attempt is
	// visible even if the process dies mid-dispatch.
	notification, err := d.notifications.Create(ctx, &model.Notification{
		OrderID:        order.ID,
		ClientID:       client.ID,
		Channel:        model.ChannelEmail,
		DeliveryStatus: model.DeliveryPending,
		Subject:        subject,
		Body:           body,
	})
	if err != nil {
		return nil, fmt.Errorf("persist notification: %w", err)
	}

	if !ValidEmail(client.Email) {
		d.markDelivery(ctx, notification.ID, model.DeliveryFailed)
		return &DispatchResult{
			NotificationID: notification.ID,
			Delivered:      false,
			Reason:         "invalid recipient email",
		}, nil
	}

	_, err = d.transport.Send(ctx, sendgrid.Message{
		To:      client.Email,
		ToName:  client.FirstName + " " + client.Name,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		d.markDelivery(ctx, notification.ID, model.DeliveryFailed)
		return &DispatchResult{
			NotificationID: notification.ID,
			Delivered:      false,
			Reason:         err.Error(),
		}, nil
	}

	d.markDelivery(ctx, notification.ID, model.DeliverySent)
	return &DispatchResult{NotificationID: notification.ID, Delivered: true}, nil
}

// Redeliver retries the send of an already rendered notification. Used
// by the operator-enabled redelivery sweep.
func (d *NotificationDispatcher) Redeliver(ctx context.Context, n model.Notification) error {
	client, err := d.clients.GetByID(ctx, n.ClientID)
	if err != nil {
		return fmt.Errorf("load client %d: %w", n.ClientID, err)
	}

	if !ValidEmail(client.Email) {
		return fmt.Errorf("notification %d: invalid recipient email", n.ID)
	}

	if _, err := d.transport.Send(ctx, sendgrid.Message{
		To:      client.Email,
		ToName:  client.FirstName + " " + client.Name,
		Subject: n.Subject,
		Body:    n.Body,
	}); err != nil {
		return err
	}

	d.markDelivery(ctx, n.ID, model.DeliverySent)
	return nil
}

// ListFailed returns the oldest failed attempts up to limit.
func (d *NotificationDispatcher) ListFailed(ctx context.Context, limit int) ([]model.Notification, error) {
	return d.notifications.ListFailed(ctx, limit)
}

// ListByOrder returns an order's notification attempts, newest first.
func (d *NotificationDispatcher) ListByOrder(ctx context.Context, orderID int64) ([]model.Notification, error) {
	return d.notifications.ListByOrder(ctx, orderID)
}

// ListByClient returns a client's notification attempts, newest first.
func (d *NotificationDispatcher) ListByClient(ctx context.Context, clientID int64) ([]model.Notification, error) {
	return d.notifications.ListByClient(ctx, clientID)
}

func (d *NotificationDispatcher) markDelivery(ctx context.Context, id int64, status model.DeliveryStatus) {
	if err := d.notifications.UpdateDeliveryStatus(ctx, id, status); err != nil {
		d.logger.Error("update notification delivery status failed",
			slog.Int64("notification_id", id),
			slog.String("status", string(status)),
			slog.String("error", err.Error()),
		)
	}
}

package test

import (
	"context"
	"sort"
	"time"

	domainErrors "github.com/orderdesk/backoffice/internal/domain/errors"
	"github.com/orderdesk/backoffice/internal/domain/model"
	"github.com/orderdesk/backoffice/internal/domain/repository"
)

// StaffRepositoryStub stores staff accounts in-memory for tests.
type StaffRepositoryStub struct {
	ByEmail map[string]*model.Staff
	ByID    map[int64]*model.Staff
	Next    int64
	Err     error
}

// NewStaffRepositoryStub constructs stub repository with initialized maps.
func NewStaffRepositoryStub() *StaffRepositoryStub {
	return &StaffRepositoryStub{
		ByEmail: make(map[string]*model.Staff),
		ByID:    make(map[int64]*model.Staff),
		Next:    1,
	}
}

// Create registers a staff account unless the email is taken.
func (s *StaffRepositoryStub) Create(ctx context.Context, name, firstName, email, passwordHash string) (*model.Staff, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	staff := &model.Staff{
		ID:           s.Next,
		Name:         name,
		FirstName:    firstName,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.Next++
	s.ByEmail[email] = staff
	s.ByID[staff.ID] = staff
	return staff, nil
}

// GetByEmail fetches a staff account by email or returns not found.
func (s *StaffRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.Staff, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if staff, ok := s.ByEmail[email]; ok {
		return staff, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches a staff account by identifier or returns not found.
func (s *StaffRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Staff, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if staff, ok := s.ByID[id]; ok {
		return staff, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ClientRepositoryStub stores clients in-memory for tests. Orders maps
// client ID to a count of owned orders; Delete consults it.
type ClientRepositoryStub struct {
	ByID        map[int64]*model.Client
	ByFlashcode map[string]*model.Client
	ByEmail     map[string]int64
	OwnedOrders map[int64]int
	Next        int64
	Err         error
}

// NewClientRepositoryStub constructs stub repository with initialized maps.
func NewClientRepositoryStub() *ClientRepositoryStub {
	return &ClientRepositoryStub{
		ByID:        make(map[int64]*model.Client),
		ByFlashcode: make(map[string]*model.Client),
		ByEmail:     make(map[string]int64),
		OwnedOrders: make(map[int64]int),
		Next:        1,
	}
}

// Create registers a client; email and flashcode must be unique.
func (s *ClientRepositoryStub) Create(ctx context.Context, client *model.Client) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.ByEmail[client.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if _, exists := s.ByFlashcode[client.FlashcodeID]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	stored := *client
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	s.Next++
	s.ByID[stored.ID] = &stored
	s.ByFlashcode[stored.FlashcodeID] = &stored
	s.ByEmail[stored.Email] = stored.ID
	result := stored
	return &result, nil
}

// GetByID fetches a client or returns not found.
func (s *ClientRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if client, ok := s.ByID[id]; ok {
		result := *client
		return &result, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByFlashcode fetches a client by token or returns not found.
func (s *ClientRepositoryStub) GetByFlashcode(ctx context.Context, token string) (*model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if client, ok := s.ByFlashcode[token]; ok {
		result := *client
		return &result, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored clients.
func (s *ClientRepositoryStub) List(ctx context.Context) ([]model.Client, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	clients := make([]model.Client, 0, len(s.ByID))
	for _, client := range s.ByID {
		clients = append(clients, *client)
	}
	return clients, nil
}

// Count reports how many clients are stored.
func (s *ClientRepositoryStub) Count(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.ByID)), nil
}

// Update applies scalar fields, leaving the flashcode untouched.
func (s *ClientRepositoryStub) Update(ctx context.Context, client *model.Client) error {
	if s.Err != nil {
		return s.Err
	}
	stored, ok := s.ByID[client.ID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if other, exists := s.ByEmail[client.Email]; exists && other != client.ID {
		return domainErrors.ErrAlreadyExists
	}
	delete(s.ByEmail, stored.Email)
	code := stored.FlashcodeID
	createdAt := stored.CreatedAt
	*stored = *client
	stored.FlashcodeID = code
	stored.CreatedAt = createdAt
	s.ByEmail[stored.Email] = stored.ID
	return nil
}

// Delete removes a client unless it still owns orders.
func (s *ClientRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	stored, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if s.OwnedOrders[id] > 0 {
		return domainErrors.ErrConflict
	}
	delete(s.ByFlashcode, stored.FlashcodeID)
	delete(s.ByEmail, stored.Email)
	delete(s.ByID, id)
	return nil
}

// OrderRepositoryStub keeps orders and their history ledger in-memory.
// Clients may point to a ClientRepositoryStub so flashcode ownership
// checks and joined loads behave like the real storage.
type OrderRepositoryStub struct {
	ByID    map[int64]*model.Order
	Ledger  map[int64][]model.StatusUpdate
	Clients *ClientRepositoryStub
	Next    int64
	Err     error
}

// NewOrderRepositoryStub constructs stub repository with initialized maps.
func NewOrderRepositoryStub(clients *ClientRepositoryStub) *OrderRepositoryStub {
	return &OrderRepositoryStub{
		ByID:    make(map[int64]*model.Order),
		Ledger:  make(map[int64][]model.StatusUpdate),
		Clients: clients,
		Next:    1,
	}
}

// Create inserts the order with its bootstrap history row.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order, comment string) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.ByID {
		if existing.Reference == order.Reference {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	stored := *order
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.Next++
	s.ByID[stored.ID] = &stored
	s.Ledger[stored.ID] = append(s.Ledger[stored.ID], model.StatusUpdate{
		ID:        int64(len(s.Ledger[stored.ID]) + 1),
		OrderID:   stored.ID,
		NewStatus: stored.Status,
		Comment:   comment,
		CreatedBy: stored.CreatedBy,
		CreatedAt: stored.CreatedAt,
	})
	if s.Clients != nil {
		s.Clients.OwnedOrders[stored.ClientID]++
	}
	result := stored
	return &result, nil
}

// GetByID fetches an order or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if order, ok := s.ByID[id]; ok {
		result := *order
		return &result, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByReference fetches an order by its public reference.
func (s *OrderRepositoryStub) GetByReference(ctx context.Context, reference string) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, order := range s.ByID {
		if order.Reference == reference {
			result := *order
			return &result, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetWithClient loads the order joined with its owning client.
func (s *OrderRepositoryStub) GetWithClient(ctx context.Context, id int64) (*model.Order, *model.Client, error) {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if s.Clients == nil {
		return nil, nil, domainErrors.ErrNotFound
	}
	client, err := s.Clients.GetByID(ctx, order.ClientID)
	if err != nil {
		return nil, nil, err
	}
	return order, client, nil
}

// GetForFlashcode loads the order only when the token owner owns it.
func (s *OrderRepositoryStub) GetForFlashcode(ctx context.Context, token string, orderID int64) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Clients == nil {
		return nil, domainErrors.ErrNotFound
	}
	client, err := s.Clients.GetByFlashcode(ctx, token)
	if err != nil {
		return nil, err
	}
	order, err := s.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.ClientID != client.ID {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

// List applies the filter over stored orders.
func (s *OrderRepositoryStub) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	orders := make([]model.Order, 0, len(s.ByID))
	for _, order := range s.ByID {
		if filter.ClientID != nil && order.ClientID != *filter.ClientID {
			continue
		}
		if filter.Status != nil && order.Status != *filter.Status {
			continue
		}
		if filter.From != nil && order.OrderDate.Before(*filter.From) {
			continue
		}
		if filter.To != nil && order.OrderDate.After(*filter.To) {
			continue
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

// ListByClient returns the client's orders.
func (s *OrderRepositoryStub) ListByClient(ctx context.Context, clientID int64) ([]model.Order, error) {
	return s.List(ctx, repository.OrderFilter{ClientID: &clientID})
}

// Latest returns the most recent orders by order date.
func (s *OrderRepositoryStub) Latest(ctx context.Context, limit int) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	orders := make([]model.Order, 0, len(s.ByID))
	for _, order := range s.ByID {
		orders = append(orders, *order)
	}
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].OrderDate.Equal(orders[j].OrderDate) {
			return orders[i].OrderDate.After(orders[j].OrderDate)
		}
		return orders[i].ID > orders[j].ID
	})
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

// Count reports how many orders are stored.
func (s *OrderRepositoryStub) Count(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.ByID)), nil
}

// Update applies scalar fields and appends the history row when given.
func (s *OrderRepositoryStub) Update(ctx context.Context, order *model.Order, history *model.StatusUpdate) error {
	if s.Err != nil {
		return s.Err
	}
	stored, ok := s.ByID[order.ID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	createdAt := stored.CreatedAt
	*stored = *order
	stored.CreatedAt = createdAt
	stored.UpdatedAt = time.Now()
	if history != nil {
		entry := *history
		entry.ID = int64(len(s.Ledger[order.ID]) + 1)
		entry.OrderID = order.ID
		entry.CreatedAt = stored.UpdatedAt
		s.Ledger[order.ID] = append(s.Ledger[order.ID], entry)
	}
	return nil
}

// History returns the order's ledger in insertion order.
func (s *OrderRepositoryStub) History(ctx context.Context, orderID int64) ([]model.StatusUpdate, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.ByID[orderID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	return append([]model.StatusUpdate(nil), s.Ledger[orderID]...), nil
}

// Delete removes the order together with its ledger.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	stored, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if s.Clients != nil {
		s.Clients.OwnedOrders[stored.ClientID]--
	}
	delete(s.ByID, id)
	delete(s.Ledger, id)
	return nil
}

// NotificationRepositoryStub stores notification attempts in-memory.
type NotificationRepositoryStub struct {
	ByID map[int64]*model.Notification
	Next int64
	Err  error

	CreateFn func(context.Context, *model.Notification) (*model.Notification, error)
	UpdateFn func(context.Context, int64, model.DeliveryStatus) error
}

// NewNotificationRepositoryStub constructs stub repository with initialized maps.
func NewNotificationRepositoryStub() *NotificationRepositoryStub {
	return &NotificationRepositoryStub{
		ByID: make(map[int64]*model.Notification),
		Next: 1,
	}
}

// Create persists a notification attempt.
func (s *NotificationRepositoryStub) Create(ctx context.Context, notification *model.Notification) (*model.Notification, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, notification)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	stored := *notification
	stored.ID = s.Next
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	s.Next++
	s.ByID[stored.ID] = &stored
	result := stored
	return &result, nil
}

// UpdateDeliveryStatus flips the outcome of a stored attempt.
func (s *NotificationRepositoryStub) UpdateDeliveryStatus(ctx context.Context, id int64, status model.DeliveryStatus) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, status)
	}
	if s.Err != nil {
		return s.Err
	}
	stored, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	stored.DeliveryStatus = status
	stored.UpdatedAt = time.Now()
	return nil
}

// ListByOrder returns attempts for one order.
func (s *NotificationRepositoryStub) ListByOrder(ctx context.Context, orderID int64) ([]model.Notification, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Notification, 0)
	for _, n := range s.ByID {
		if n.OrderID == orderID {
			result = append(result, *n)
		}
	}
	return result, nil
}

// ListByClient returns attempts for one client.
func (s *NotificationRepositoryStub) ListByClient(ctx context.Context, clientID int64) ([]model.Notification, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Notification, 0)
	for _, n := range s.ByID {
		if n.ClientID == clientID {
			result = append(result, *n)
		}
	}
	return result, nil
}

// CountByStatus reports how many attempts ended in the given status.
func (s *NotificationRepositoryStub) CountByStatus(ctx context.Context, status model.DeliveryStatus) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	var total int64
	for _, n := range s.ByID {
		if n.DeliveryStatus == status {
			total++
		}
	}
	return total, nil
}

// ListFailed returns failed attempts up to the limit.
func (s *NotificationRepositoryStub) ListFailed(ctx context.Context, limit int) ([]model.Notification, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Notification, 0)
	for _, n := range s.ByID {
		if n.DeliveryStatus == model.DeliveryFailed {
			result = append(result, *n)
			if limit > 0 && len(result) >= limit {
				break
			}
		}
	}
	return result, nil
}

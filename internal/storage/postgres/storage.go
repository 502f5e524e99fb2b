package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/orderdesk/backoffice/internal/domain/errors"
	"github.com/orderdesk/backoffice/internal/domain/model"
	"github.com/orderdesk/backoffice/internal/domain/repository"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Pool is the subset of pgxpool.Pool the storage relies on. Tests
// substitute a pgxmock pool through the same interface.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type staffRepository struct {
	storage *Storage
}

type clientRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type notificationRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Staff() repository.StaffRepository {
	return &staffRepository{storage: s}
}

func (s *Storage) Clients() repository.ClientRepository {
	return &clientRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Notifications() repository.NotificationRepository {
	return &notificationRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS staff (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            first_name TEXT NOT NULL DEFAULT '',
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'staff',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS clients (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            first_name TEXT NOT NULL DEFAULT '',
            email TEXT NOT NULL,
            phone TEXT NOT NULL DEFAULT '',
            address TEXT NOT NULL DEFAULT '',
            postal_code TEXT NOT NULL DEFAULT '',
            city TEXT NOT NULL DEFAULT '',
            country TEXT NOT NULL DEFAULT '',
            flashcode_id TEXT UNIQUE NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            reference TEXT UNIQUE NOT NULL,
            client_id BIGINT NOT NULL REFERENCES clients(id) ON DELETE RESTRICT,
            description TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL,
            order_date DATE NOT NULL DEFAULT CURRENT_DATE,
            expected_delivery_date DATE,
            created_by BIGINT REFERENCES staff(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_status_updates (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            previous_status TEXT,
            new_status TEXT NOT NULL,
            comment TEXT NOT NULL DEFAULT '',
            created_by BIGINT REFERENCES staff(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS notifications (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            client_id BIGINT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
            channel TEXT NOT NULL DEFAULT 'email',
            delivery_status TEXT NOT NULL DEFAULT 'pending',
            subject TEXT NOT NULL,
            body TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_client ON orders(client_id, order_date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_status_updates_order ON order_status_updates(order_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_order ON notifications(order_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// --- StaffRepository implementation ---

func (r *staffRepository) Create(ctx context.Context, name, firstName, email, passwordHash string) (*model.Staff, error) {
	const query = `INSERT INTO staff (name, first_name, email, password_hash)
                   VALUES ($1, $2, $3, $4) RETURNING id, role, created_at`
	var st model.Staff
	err := r.storage.pool.QueryRow(ctx, query, name, firstName, email, passwordHash).Scan(&st.ID, &st.Role, &st.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	st.Name = name
	st.FirstName = firstName
	st.Email = email
	st.PasswordHash = passwordHash
	return &st, nil
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*model.Staff, error) {
	const query = `SELECT id, name, first_name, email, password_hash, role, created_at
                   FROM staff WHERE email=$1`
	var st model.Staff
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&st.ID, &st.Name, &st.FirstName, &st.Email, &st.PasswordHash, &st.Role, &st.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &st, nil
}

func (r *staffRepository) GetByID(ctx context.Context, id int64) (*model.Staff, error) {
	const query = `SELECT id, name, first_name, email, password_hash, role, created_at
                   FROM staff WHERE id=$1`
	var st model.Staff
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&st.ID, &st.Name, &st.FirstName, &st.Email, &st.PasswordHash, &st.Role, &st.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &st, nil
}

// --- ClientRepository implementation ---

func (r *clientRepository) Create(ctx context.Context, c *model.Client) (*model.Client, error) {
	const query = `INSERT INTO clients (name, first_name, email, phone, address, postal_code, city, country, flashcode_id)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                   RETURNING id, created_at`
	created := *c
	err := r.storage.pool.QueryRow(ctx, query,
		c.Name, c.FirstName, c.Email, c.Phone, c.Address, c.PostalCode, c.City, c.Country, c.FlashcodeID,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

const clientColumns = `id, name, first_name, email, phone, address, postal_code, city, country, flashcode_id, created_at`

func scanClient(row pgx.Row) (*model.Client, error) {
	var c model.Client
	err := row.Scan(&c.ID, &c.Name, &c.FirstName, &c.Email, &c.Phone, &c.Address, &c.PostalCode, &c.City, &c.Country, &c.FlashcodeID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) GetByID(ctx context.Context, id int64) (*model.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id=$1`
	return scanClient(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *clientRepository) GetByFlashcode(ctx context.Context, token string) (*model.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE flashcode_id=$1`
	return scanClient(r.storage.pool.QueryRow(ctx, query, token))
}

func (r *clientRepository) List(ctx context.Context) ([]model.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY name, first_name`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Client
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.FirstName, &c.Email, &c.Phone, &c.Address, &c.PostalCode, &c.City, &c.Country, &c.FlashcodeID, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *clientRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&total)
	return total, err
}

func (r *clientRepository) Update(ctx context.Context, c *model.Client) error {
	const query = `UPDATE clients
                   SET name=$1, first_name=$2, email=$3, phone=$4, address=$5, postal_code=$6, city=$7, country=$8
                   WHERE id=$9`
	tag, err := r.storage.pool.Exec(ctx, query,
		c.Name, c.FirstName, c.Email, c.Phone, c.Address, c.PostalCode, c.City, c.Country, c.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM clients WHERE id=$1`, id)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return domainErrors.ErrConflict
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, reference, client_id, description, status, order_date, expected_delivery_date, created_by, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.Reference, &o.ClientID, &o.Description, &o.Status, &o.OrderDate, &o.ExpectedDelivery, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order, comment string) (*model.Order, error) {
	created := *order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (reference, client_id, description, status, order_date, expected_delivery_date, created_by)
                             VALUES ($1, $2, $3, $4, $5, $6, $7)
                             RETURNING id, created_at, updated_at`
		err := tx.QueryRow(ctx, insertOrder,
			order.Reference, order.ClientID, order.Description, order.Status, order.OrderDate, order.ExpectedDelivery, order.CreatedBy,
		).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			return err
		}

		const insertHistory = `INSERT INTO order_status_updates (order_id, previous_status, new_status, comment, created_by)
                               VALUES ($1, NULL, $2, $3, $4)`
		_, err = tx.Exec(ctx, insertHistory, created.ID, order.Status, comment, order.CreatedBy)
		return err
	})
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return nil, domainErrors.ErrAlreadyExists
		case pgForeignKeyViolation:
			return nil, domainErrors.ErrConflict
		}
		return nil, err
	}
	return &created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) GetByReference(ctx context.Context, reference string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE reference=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, reference))
}

func (r *orderRepository) GetWithClient(ctx context.Context, id int64) (*model.Order, *model.Client, error) {
	const query = `SELECT o.id, o.reference, o.client_id, o.description, o.status, o.order_date,
                          o.expected_delivery_date, o.created_by, o.created_at, o.updated_at,
                          cl.id, cl.name, cl.first_name, cl.email, cl.phone, cl.address,
                          cl.postal_code, cl.city, cl.country, cl.flashcode_id, cl.created_at
                   FROM orders o
                   JOIN clients cl ON o.client_id = cl.id
                   WHERE o.id=$1`
	var o model.Order
	var c model.Client
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Reference, &o.ClientID, &o.Description, &o.Status, &o.OrderDate,
		&o.ExpectedDelivery, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
		&c.ID, &c.Name, &c.FirstName, &c.Email, &c.Phone, &c.Address,
		&c.PostalCode, &c.City, &c.Country, &c.FlashcodeID, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, domainErrors.ErrNotFound
		}
		return nil, nil, err
	}
	return &o, &c, nil
}

func (r *orderRepository) GetForFlashcode(ctx context.Context, token string, orderID int64) (*model.Order, error) {
	query := `SELECT ` + prefixedOrderColumns + `
              FROM orders o
              JOIN clients cl ON o.client_id = cl.id
              WHERE o.id=$1 AND cl.flashcode_id=$2`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, orderID, token))
}

const prefixedOrderColumns = `o.id, o.reference, o.client_id, o.description, o.status, o.order_date, o.expected_delivery_date, o.created_by, o.created_at, o.updated_at`

func (r *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	var (
		conditions []string
		args       []any
	)
	addCondition := func(expr string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(expr, len(args)))
	}
	if filter.ClientID != nil {
		addCondition("client_id=$%d", *filter.ClientID)
	}
	if filter.Status != nil {
		addCondition("status=$%d", *filter.Status)
	}
	if filter.From != nil {
		addCondition("order_date>=$%d", *filter.From)
	}
	if filter.To != nil {
		addCondition("order_date<=$%d", *filter.To)
	}
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY order_date DESC, id DESC"

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *orderRepository) ListByClient(ctx context.Context, clientID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE client_id=$1 ORDER BY order_date DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *orderRepository) Latest(ctx context.Context, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY order_date DESC, id DESC LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total)
	return total, err
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.Reference, &o.ClientID, &o.Description, &o.Status, &o.OrderDate, &o.ExpectedDelivery, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Update(ctx context.Context, order *model.Order, history *model.StatusUpdate) error {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const updateOrder = `UPDATE orders
                             SET client_id=$1, description=$2, status=$3, order_date=$4,
                                 expected_delivery_date=$5, updated_at=NOW()
                             WHERE id=$6`
		tag, err := tx.Exec(ctx, updateOrder,
			order.ClientID, order.Description, order.Status, order.OrderDate, order.ExpectedDelivery, order.ID,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}

		if history != nil {
			const insertHistory = `INSERT INTO order_status_updates (order_id, previous_status, new_status, comment, created_by)
                                   VALUES ($1, $2, $3, $4, $5)`
			if _, err := tx.Exec(ctx, insertHistory, order.ID, history.PreviousStatus, history.NewStatus, history.Comment, history.CreatedBy); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil && pgErrorCode(err) == pgForeignKeyViolation {
		return domainErrors.ErrConflict
	}
	return err
}

func (r *orderRepository) History(ctx context.Context, orderID int64) ([]model.StatusUpdate, error) {
	const query = `SELECT id, order_id, previous_status, new_status, comment, created_by, created_at
                   FROM order_status_updates
                   WHERE order_id=$1
                   ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.StatusUpdate
	for rows.Next() {
		var u model.StatusUpdate
		if err := rows.Scan(&u.ID, &u.OrderID, &u.PreviousStatus, &u.NewStatus, &u.Comment, &u.CreatedBy, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- NotificationRepository implementation ---

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	const query = `INSERT INTO notifications (order_id, client_id, channel, delivery_status, subject, body)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING id, created_at, updated_at`
	created := *n
	err := r.storage.pool.QueryRow(ctx, query,
		n.OrderID, n.ClientID, n.Channel, n.DeliveryStatus, n.Subject, n.Body,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return nil, domainErrors.ErrConflict
		}
		return nil, err
	}
	return &created, nil
}

func (r *notificationRepository) UpdateDeliveryStatus(ctx context.Context, id int64, status model.DeliveryStatus) error {
	const query = `UPDATE notifications SET delivery_status=$1, updated_at=NOW() WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

const notificationColumns = `id, order_id, client_id, channel, delivery_status, subject, body, created_at, updated_at`

func (r *notificationRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE order_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, orderID)
}

func (r *notificationRepository) ListByClient(ctx context.Context, clientID int64) ([]model.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE client_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, clientID)
}

func (r *notificationRepository) ListFailed(ctx context.Context, limit int) ([]model.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE delivery_status='failed' ORDER BY created_at LIMIT $1`
	return r.list(ctx, query, limit)
}

func (r *notificationRepository) CountByStatus(ctx context.Context, status model.DeliveryStatus) (int64, error) {
	var total int64
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE delivery_status=$1`, status).Scan(&total)
	return total, err
}

func (r *notificationRepository) list(ctx context.Context, query string, arg any) ([]model.Notification, error) {
	rows, err := r.storage.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.OrderID, &n.ClientID, &n.Channel, &n.DeliveryStatus, &n.Subject, &n.Body, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}

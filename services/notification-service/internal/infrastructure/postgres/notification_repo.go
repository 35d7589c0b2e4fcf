package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PatriickRM/loan-banking-system/services/notification-service/internal/domain/model"
)

const notificationColumns = `
	id, customer_id, event_type, channel, status, subject, body, sent_at, created_at
`

// NotificationRepo implements port.NotificationRepository. The table is
// append-only, there is no update path.
type NotificationRepo struct {
	pool *pgxpool.Pool
}

// NewNotificationRepo creates a PostgreSQL-backed notification repository.
func NewNotificationRepo(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

// Save appends one notification.
func (r *NotificationRepo) Save(ctx context.Context, n model.Notification) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO notifications (`+notificationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, n.ID, n.CustomerID, n.EventType, n.Channel, n.Status, n.Subject,
		n.Body, n.SentAt, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert notification %s: %w", n.ID, err)
	}
	return nil
}

// FindByCustomer returns a customer's notifications, newest first.
func (r *NotificationRepo) FindByCustomer(ctx context.Context, customerID string) ([]model.Notification, error) {
	return r.findMany(ctx, `
		SELECT `+notificationColumns+`
		FROM notifications
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`, customerID)
}

// FindAll lists every notification, newest first.
func (r *NotificationRepo) FindAll(ctx context.Context) ([]model.Notification, error) {
	return r.findMany(ctx, `
		SELECT `+notificationColumns+`
		FROM notifications
		ORDER BY created_at DESC
	`)
}

func (r *NotificationRepo) findMany(ctx context.Context, query string, args ...any) ([]model.Notification, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Notification, error) {
		var n model.Notification
		err := row.Scan(&n.ID, &n.CustomerID, &n.EventType, &n.Channel,
			&n.Status, &n.Subject, &n.Body, &n.SentAt, &n.CreatedAt)
		return n, err
	})
}

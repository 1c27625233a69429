package repository

import (
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/postpilot/postpilot-api/infrastructure/database/postgres"
)

const webhookEventsTable = "webhook_events"

type WebhookEventRepository interface {
	RecordEvent(eventID, source, eventType string) (bool, error)
	DeleteEventsBefore(cutoff time.Time) (int64, error)
}

type webhookEventRepository struct {
	conn *postgres.Connection
}

func NewWebhookEventRepository(conn *postgres.Connection) WebhookEventRepository {
	return &webhookEventRepository{
		conn: conn,
	}
}

// RecordEvent stores the event id so retried webhook deliveries can be
// detected. It reports whether this is the first time the event is seen.
func (r *webhookEventRepository) RecordEvent(eventID, source, eventType string) (bool, error) {
	queryBuilder := squirrel.
		Insert(webhookEventsTable).
		Columns("event_id", "source", "event_type").
		Values(eventID, source, eventType).
		Suffix("ON CONFLICT (event_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	eventSQL, eventArgs, err := queryBuilder.ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.conn.Exec(eventSQL, eventArgs...)
	if err != nil {
		return false, err
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return inserted > 0, nil
}

// DeleteEventsBefore prunes dedup records old enough that the upstream
// no longer retries them.
func (r *webhookEventRepository) DeleteEventsBefore(cutoff time.Time) (int64, error) {
	result, err := r.conn.Exec(
		"DELETE FROM webhook_events WHERE received_at < $1",
		cutoff,
	)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

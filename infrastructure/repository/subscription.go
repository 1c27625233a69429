package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/postpilot/postpilot-api/infrastructure/database/postgres"
	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/postpilot/postpilot-api/pkg/utils"
)

const subscriptionsTable = "subscriptions"

type SubscriptionRepository interface {
	GetSubscriptionByUserID(userID int) (*domain.Subscription, error)
	GetSubscriptionByStripeID(stripeSubscriptionID string) (*domain.Subscription, error)
	UpsertSubscription(sub *domain.Subscription) (*domain.Subscription, error)
	UpdateStatus(id string, status domain.SubscriptionStatus, periodEnd *time.Time) error
}

type subscriptionRepository struct {
	conn *postgres.Connection
}

func NewSubscriptionRepository(conn *postgres.Connection) SubscriptionRepository {
	return &subscriptionRepository{
		conn: conn,
	}
}

const subscriptionColumns = "id, user_id, plan, status, stripe_customer_id, stripe_subscription_id, current_period_end, created_at, updated_at"

func scanSubscription(row interface{ Scan(...any) error }) (*domain.Subscription, error) {
	var sub domain.Subscription
	err := row.Scan(
		&sub.ID,
		&sub.UserID,
		&sub.Plan,
		&sub.Status,
		&sub.StripeCustomerID,
		&sub.StripeSubscriptionID,
		&sub.CurrentPeriodEnd,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) GetSubscriptionByUserID(userID int) (*domain.Subscription, error) {
	row := r.conn.QueryRow(
		"SELECT "+subscriptionColumns+" FROM subscriptions WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1",
		userID,
	)

	sub, err := scanSubscription(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return sub, nil
}

func (r *subscriptionRepository) GetSubscriptionByStripeID(stripeSubscriptionID string) (*domain.Subscription, error) {
	row := r.conn.QueryRow(
		"SELECT "+subscriptionColumns+" FROM subscriptions WHERE stripe_subscription_id = $1",
		stripeSubscriptionID,
	)

	sub, err := scanSubscription(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return sub, nil
}

// UpsertSubscription creates or refreshes the subscription keyed on the
// user, so replayed Stripe events converge on the same row.
func (r *subscriptionRepository) UpsertSubscription(sub *domain.Subscription) (*domain.Subscription, error) {
	if sub.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("generating subscription id: %w", err)
		}
		sub.ID = id
	}

	queryBuilder := squirrel.
		Insert(subscriptionsTable).
		Columns("id", "user_id", "plan", "status", "stripe_customer_id", "stripe_subscription_id", "current_period_end").
		Values(sub.ID, sub.UserID, sub.Plan, sub.Status, sub.StripeCustomerID, sub.StripeSubscriptionID, sub.CurrentPeriodEnd).
		Suffix(`ON CONFLICT (user_id) DO UPDATE
			SET plan = EXCLUDED.plan,
			    status = EXCLUDED.status,
			    stripe_customer_id = EXCLUDED.stripe_customer_id,
			    stripe_subscription_id = EXCLUDED.stripe_subscription_id,
			    current_period_end = EXCLUDED.current_period_end,
			    updated_at = NOW()
			RETURNING id`).
		PlaceholderFormat(squirrel.Dollar)

	subSQL, subArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(subSQL, subArgs...).Scan(&sub.ID)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

func (r *subscriptionRepository) UpdateStatus(id string, status domain.SubscriptionStatus, periodEnd *time.Time) error {
	queryBuilder := squirrel.
		Update(subscriptionsTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if periodEnd != nil {
		queryBuilder = queryBuilder.Set("current_period_end", periodEnd)
	}

	subSQL, subArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(subSQL, subArgs...)
	return err
}

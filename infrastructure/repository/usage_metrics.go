package repository

import (
	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/postpilot/postpilot-api/infrastructure/database/postgres"
	"github.com/postpilot/postpilot-api/internal/domain"
)

const usageMetricsTable = "usage_metrics"

type UsageMetricsRepository interface {
	IncrementUsage(brandID string, kind domain.UsageMetricKind, month string) error
	GetUsageCount(brandID string, kind domain.UsageMetricKind, month string) (int, error)
	GetMonthUsage(brandID string, month string) (map[domain.UsageMetricKind]int, error)
}

type usageMetricsRepository struct {
	conn *postgres.Connection
}

func NewUsageMetricsRepository(conn *postgres.Connection) UsageMetricsRepository {
	return &usageMetricsRepository{
		conn: conn,
	}
}

// IncrementUsage bumps the per-brand counter for the given calendar
// month, creating the row on first use.
func (r *usageMetricsRepository) IncrementUsage(brandID string, kind domain.UsageMetricKind, month string) error {
	queryBuilder := squirrel.
		Insert(usageMetricsTable).
		Columns("brand_id", "kind", "month", "count").
		Values(brandID, kind, month, 1).
		Suffix(`ON CONFLICT (brand_id, kind, month) DO UPDATE
			SET count = usage_metrics.count + 1,
			    updated_at = NOW()`).
		PlaceholderFormat(squirrel.Dollar)

	usageSQL, usageArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(usageSQL, usageArgs...)
	return err
}

func (r *usageMetricsRepository) GetUsageCount(brandID string, kind domain.UsageMetricKind, month string) (int, error) {
	var count int
	err := r.conn.QueryRow(
		"SELECT COALESCE(SUM(count), 0) FROM usage_metrics WHERE brand_id = $1 AND kind = $2 AND month = $3",
		brandID, kind, month,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *usageMetricsRepository) GetMonthUsage(brandID string, month string) (map[domain.UsageMetricKind]int, error) {
	rows, err := r.conn.Query(
		"SELECT kind, count FROM usage_metrics WHERE brand_id = $1 AND month = $2",
		brandID, month,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usage := make(map[domain.UsageMetricKind]int)
	for rows.Next() {
		var kind domain.UsageMetricKind
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, err
		}
		usage[kind] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return usage, nil
}

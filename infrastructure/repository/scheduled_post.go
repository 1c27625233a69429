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

const scheduledPostsTable = "scheduled_posts"

type ScheduledPostRepository interface {
	CreateScheduledPost(sp *domain.ScheduledPost) (*domain.ScheduledPost, error)
	GetScheduledPostByID(id string) (*domain.ScheduledPost, error)
	ListScheduledPostsByBrand(brandID string, statuses []domain.ScheduledPostStatus) ([]*domain.ScheduledPost, error)
	UpdateSchedule(id string, scheduledFor time.Time) error
	Cancel(id string) error
	ClaimDuePosts(now time.Time, limit int) ([]*domain.ScheduledPost, error)
	MarkPublished(id string, externalPostID string, publishedAt time.Time) error
	MarkFailed(id string, errMsg string, retryCount int, nextAttemptAt time.Time) error
	MarkPermanentlyFailed(id string, errMsg string) error
	Reschedule(id string, scheduledFor time.Time) error
	CountPendingByBrand(brandID string) (int, error)
	CountByBrandStatusSince(brandID string, status domain.ScheduledPostStatus, since time.Time) (int, error)
	ListPublishHistory(brandID string) ([]*domain.PostPublishRecord, error)
}

type scheduledPostRepository struct {
	conn *postgres.Connection
}

func NewScheduledPostRepository(conn *postgres.Connection) ScheduledPostRepository {
	return &scheduledPostRepository{
		conn: conn,
	}
}

const scheduledPostColumns = "id, post_id, brand_id, social_account_id, platform, scheduled_for, status, retry_count, next_attempt_at, last_error, external_post_id, published_at, created_at, updated_at"

func scanScheduledPost(row interface{ Scan(...any) error }) (*domain.ScheduledPost, error) {
	var sp domain.ScheduledPost
	err := row.Scan(
		&sp.ID,
		&sp.PostID,
		&sp.BrandID,
		&sp.SocialAccountID,
		&sp.Platform,
		&sp.ScheduledFor,
		&sp.Status,
		&sp.RetryCount,
		&sp.NextAttemptAt,
		&sp.LastError,
		&sp.ExternalPostID,
		&sp.PublishedAt,
		&sp.CreatedAt,
		&sp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

func (r *scheduledPostRepository) CreateScheduledPost(sp *domain.ScheduledPost) (*domain.ScheduledPost, error) {
	if sp.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("generating scheduled post id: %w", err)
		}
		sp.ID = id
	}

	if sp.Status == "" {
		sp.Status = domain.ScheduledPostStatusScheduled
	}

	queryBuilder := squirrel.
		Insert(scheduledPostsTable).
		Columns("id", "post_id", "brand_id", "social_account_id", "platform", "scheduled_for", "status", "retry_count").
		Values(sp.ID, sp.PostID, sp.BrandID, sp.SocialAccountID, sp.Platform, sp.ScheduledFor, sp.Status, sp.RetryCount).
		PlaceholderFormat(squirrel.Dollar)

	spSQL, spArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn.Exec(spSQL, spArgs...)
	if err != nil {
		return nil, err
	}

	return sp, nil
}

func (r *scheduledPostRepository) GetScheduledPostByID(id string) (*domain.ScheduledPost, error) {
	row := r.conn.QueryRow(
		"SELECT "+scheduledPostColumns+" FROM scheduled_posts WHERE id = $1",
		id,
	)

	sp, err := scanScheduledPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return sp, nil
}

func (r *scheduledPostRepository) ListScheduledPostsByBrand(brandID string, statuses []domain.ScheduledPostStatus) ([]*domain.ScheduledPost, error) {
	queryBuilder := squirrel.
		Select(scheduledPostColumns).
		From(scheduledPostsTable).
		Where(squirrel.Eq{"brand_id": brandID}).
		OrderBy("scheduled_for ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": statuses})
	}

	spSQL, spArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(spSQL, spArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scheduled []*domain.ScheduledPost
	for rows.Next() {
		sp, err := scanScheduledPost(rows)
		if err != nil {
			return nil, err
		}
		scheduled = append(scheduled, sp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return scheduled, nil
}

// UpdateSchedule moves a schedule to a new time and clears its retry
// state, so a failed post re-enters the queue as freshly scheduled
// instead of being claimed at its stale next_attempt_at.
func (r *scheduledPostRepository) UpdateSchedule(id string, scheduledFor time.Time) error {
	spSQL, spArgs, err := updateScheduleQuery(id, scheduledFor).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(spSQL, spArgs...)
	return err
}

func updateScheduleQuery(id string, scheduledFor time.Time) squirrel.UpdateBuilder {
	return squirrel.
		Update(scheduledPostsTable).
		Set("scheduled_for", scheduledFor).
		Set("status", domain.ScheduledPostStatusScheduled).
		Set("retry_count", 0).
		Set("next_attempt_at", nil).
		Set("last_error", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *scheduledPostRepository) Cancel(id string) error {
	queryBuilder := squirrel.
		Update(scheduledPostsTable).
		Set("status", domain.ScheduledPostStatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	spSQL, spArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(spSQL, spArgs...)
	return err
}

// ClaimDuePosts atomically flips due rows to "processing" and returns
// them. The conditional UPDATE with SKIP LOCKED is what keeps two
// overlapping queue passes from claiming the same post.
func (r *scheduledPostRepository) ClaimDuePosts(now time.Time, limit int) ([]*domain.ScheduledPost, error) {
	query := `
		UPDATE scheduled_posts
		SET status = 'processing', updated_at = NOW()
		WHERE id IN (
			SELECT id FROM scheduled_posts
			WHERE (status = 'scheduled' AND scheduled_for <= $1)
			   OR (status = 'failed' AND next_attempt_at IS NOT NULL AND next_attempt_at <= $1)
			ORDER BY scheduled_for ASC
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + scheduledPostColumns

	rows, err := r.conn.Query(query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("claiming due posts: %w", err)
	}
	defer rows.Close()

	var claimed []*domain.ScheduledPost
	for rows.Next() {
		sp, err := scanScheduledPost(rows)
		if err != nil {
			return nil, err
		}
		claimed = append(claimed, sp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return claimed, nil
}

func (r *scheduledPostRepository) MarkPublished(id string, externalPostID string, publishedAt time.Time) error {
	queryBuilder := squirrel.
		Update(scheduledPostsTable).
		Set("status", domain.ScheduledPostStatusPublished).
		Set("external_post_id", externalPostID).
		Set("published_at", publishedAt).
		Set("last_error", nil).
		Set("next_attempt_at", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	spSQL, spArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(spSQL, spArgs...)
	return err
}

func (r *scheduledPostRepository) MarkFailed(id string, errMsg string, retryCount int, nextAttemptAt time.Time) error {
	queryBuilder := squirrel.
		Update(scheduledPostsTable).
		Set("status", domain.ScheduledPostStatusFailed).
		Set("last_error", errMsg).
		Set("retry_count", retryCount).
		Set("next_attempt_at", nextAttemptAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	spSQL, spArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(spSQL, spArgs...)
	return err
}

func (r *scheduledPostRepository) MarkPermanentlyFailed(id string, errMsg string) error {
	queryBuilder := squirrel.
		Update(scheduledPostsTable).
		Set("status", domain.ScheduledPostStatusPermanentlyFailed).
		Set("last_error", errMsg).
		Set("next_attempt_at", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	spSQL, spArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(spSQL, spArgs...)
	return err
}

// Reschedule puts a claimed post back in the queue at a later time,
// used when the per-platform rate limiter throttles a publish.
func (r *scheduledPostRepository) Reschedule(id string, scheduledFor time.Time) error {
	queryBuilder := squirrel.
		Update(scheduledPostsTable).
		Set("status", domain.ScheduledPostStatusScheduled).
		Set("scheduled_for", scheduledFor).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	spSQL, spArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(spSQL, spArgs...)
	return err
}

func (r *scheduledPostRepository) CountPendingByBrand(brandID string) (int, error) {
	var count int
	err := r.conn.QueryRow(
		"SELECT COUNT(*) FROM scheduled_posts WHERE brand_id = $1 AND status IN ('scheduled', 'processing', 'failed')",
		brandID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *scheduledPostRepository) CountByBrandStatusSince(brandID string, status domain.ScheduledPostStatus, since time.Time) (int, error) {
	var count int
	err := r.conn.QueryRow(
		"SELECT COUNT(*) FROM scheduled_posts WHERE brand_id = $1 AND status = $2 AND updated_at >= $3",
		brandID, status, since,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *scheduledPostRepository) ListPublishHistory(brandID string) ([]*domain.PostPublishRecord, error) {
	queryBuilder := squirrel.
		Select("id", "post_id", "platform", "status", "scheduled_for", "published_at", "retry_count", "last_error").
		From(scheduledPostsTable).
		Where(squirrel.Eq{"brand_id": brandID}).
		OrderBy("scheduled_for DESC").
		Limit(200).
		PlaceholderFormat(squirrel.Dollar)

	spSQL, spArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(spSQL, spArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.PostPublishRecord
	for rows.Next() {
		var rec domain.PostPublishRecord
		if err := rows.Scan(
			&rec.ScheduledPostID,
			&rec.PostID,
			&rec.Platform,
			&rec.Status,
			&rec.ScheduledFor,
			&rec.PublishedAt,
			&rec.RetryCount,
			&rec.LastError,
		); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

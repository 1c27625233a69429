package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/postpilot/postpilot-api/infrastructure/database/postgres"
	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/postpilot/postpilot-api/pkg/utils"
)

const (
	engagementItemsTable    = "engagement_items"
	generatedResponsesTable = "generated_responses"
)

type EngagementRepository interface {
	InsertEngagementItem(item *domain.EngagementItem) (bool, error)
	UpdateTriage(item *domain.EngagementItem) error
	GetEngagementItemByID(id string) (*domain.EngagementItem, error)
	ListEngagementItemsByBrand(brandID string, statuses []domain.EngagementStatus) ([]*domain.EngagementItem, error)
	UpdateEngagementStatus(id string, status domain.EngagementStatus) error
	CountByBrandSentiment(brandID string) (map[domain.Sentiment]int, int, error)

	CreateGeneratedResponse(resp *domain.GeneratedResponse) (*domain.GeneratedResponse, error)
	GetGeneratedResponseByID(id string) (*domain.GeneratedResponse, error)
	GetPendingResponseByItem(engagementItemID string) (*domain.GeneratedResponse, error)
	UpdateGeneratedResponse(resp *domain.GeneratedResponse) error
}

type engagementRepository struct {
	conn *postgres.Connection
}

func NewEngagementRepository(conn *postgres.Connection) EngagementRepository {
	return &engagementRepository{
		conn: conn,
	}
}

const engagementItemColumns = "id, brand_id, platform, external_id, type, author_handle, author_name, is_influencer, content, sentiment, intent, priority, is_spam, status, received_at, created_at, updated_at"

func scanEngagementItem(row interface{ Scan(...any) error }) (*domain.EngagementItem, error) {
	var item domain.EngagementItem
	err := row.Scan(
		&item.ID,
		&item.BrandID,
		&item.Platform,
		&item.ExternalID,
		&item.Type,
		&item.AuthorHandle,
		&item.AuthorName,
		&item.IsInfluencer,
		&item.Content,
		&item.Sentiment,
		&item.Intent,
		&item.Priority,
		&item.IsSpam,
		&item.Status,
		&item.ReceivedAt,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// InsertEngagementItem inserts the item, relying on the unique
// (platform, external_id) constraint for webhook dedup. It reports
// whether a new row was actually written.
func (r *engagementRepository) InsertEngagementItem(item *domain.EngagementItem) (bool, error) {
	if item.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return false, fmt.Errorf("generating engagement item id: %w", err)
		}
		item.ID = id
	}

	if item.Status == "" {
		item.Status = domain.EngagementStatusPending
	}

	queryBuilder := squirrel.
		Insert(engagementItemsTable).
		Columns("id", "brand_id", "platform", "external_id", "type", "author_handle", "author_name", "is_influencer", "content", "sentiment", "intent", "priority", "is_spam", "status", "received_at").
		Values(
			item.ID,
			item.BrandID,
			item.Platform,
			item.ExternalID,
			item.Type,
			item.AuthorHandle,
			item.AuthorName,
			item.IsInfluencer,
			item.Content,
			item.Sentiment,
			item.Intent,
			item.Priority,
			item.IsSpam,
			item.Status,
			item.ReceivedAt,
		).
		Suffix("ON CONFLICT (platform, external_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	itemSQL, itemArgs, err := queryBuilder.ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.conn.Exec(itemSQL, itemArgs...)
	if err != nil {
		return false, fmt.Errorf("inserting engagement item: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return inserted > 0, nil
}

func (r *engagementRepository) UpdateTriage(item *domain.EngagementItem) error {
	queryBuilder := squirrel.
		Update(engagementItemsTable).
		Set("sentiment", item.Sentiment).
		Set("intent", item.Intent).
		Set("priority", item.Priority).
		Set("is_spam", item.IsSpam).
		Set("status", item.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": item.ID}).
		PlaceholderFormat(squirrel.Dollar)

	itemSQL, itemArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(itemSQL, itemArgs...)
	return err
}

func (r *engagementRepository) GetEngagementItemByID(id string) (*domain.EngagementItem, error) {
	row := r.conn.QueryRow(
		"SELECT "+engagementItemColumns+" FROM engagement_items WHERE id = $1",
		id,
	)

	item, err := scanEngagementItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *engagementRepository) ListEngagementItemsByBrand(brandID string, statuses []domain.EngagementStatus) ([]*domain.EngagementItem, error) {
	queryBuilder := squirrel.
		Select(engagementItemColumns).
		From(engagementItemsTable).
		Where(squirrel.Eq{"brand_id": brandID}).
		OrderBy("priority DESC, received_at DESC").
		Limit(200).
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": statuses})
	}

	itemSQL, itemArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(itemSQL, itemArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.EngagementItem
	for rows.Next() {
		item, err := scanEngagementItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *engagementRepository) UpdateEngagementStatus(id string, status domain.EngagementStatus) error {
	queryBuilder := squirrel.
		Update(engagementItemsTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	itemSQL, itemArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(itemSQL, itemArgs...)
	return err
}

// CountByBrandSentiment returns engagement counts grouped by sentiment
// plus the spam total, for the analytics overview.
func (r *engagementRepository) CountByBrandSentiment(brandID string) (map[domain.Sentiment]int, int, error) {
	rows, err := r.conn.Query(
		"SELECT sentiment, is_spam, COUNT(*) FROM engagement_items WHERE brand_id = $1 GROUP BY sentiment, is_spam",
		brandID,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	totals := make(map[domain.Sentiment]int)
	spamTotal := 0
	for rows.Next() {
		var sentiment domain.Sentiment
		var isSpam bool
		var count int
		if err := rows.Scan(&sentiment, &isSpam, &count); err != nil {
			return nil, 0, err
		}
		if isSpam {
			spamTotal += count
			continue
		}
		totals[sentiment] += count
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return totals, spamTotal, nil
}

func (r *engagementRepository) CreateGeneratedResponse(resp *domain.GeneratedResponse) (*domain.GeneratedResponse, error) {
	if resp.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("generating response id: %w", err)
		}
		resp.ID = id
	}

	if resp.Status == "" {
		resp.Status = domain.GeneratedResponseStatusPending
	}

	queryBuilder := squirrel.
		Insert(generatedResponsesTable).
		Columns("id", "engagement_item_id", "brand_id", "content", "status").
		Values(resp.ID, resp.EngagementItemID, resp.BrandID, resp.Content, resp.Status).
		PlaceholderFormat(squirrel.Dollar)

	respSQL, respArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn.Exec(respSQL, respArgs...)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

const generatedResponseColumns = "id, engagement_item_id, brand_id, content, edited_content, status, approved_by, sent_at, created_at, updated_at"

func scanGeneratedResponse(row interface{ Scan(...any) error }) (*domain.GeneratedResponse, error) {
	var resp domain.GeneratedResponse
	err := row.Scan(
		&resp.ID,
		&resp.EngagementItemID,
		&resp.BrandID,
		&resp.Content,
		&resp.EditedContent,
		&resp.Status,
		&resp.ApprovedBy,
		&resp.SentAt,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *engagementRepository) GetGeneratedResponseByID(id string) (*domain.GeneratedResponse, error) {
	row := r.conn.QueryRow(
		"SELECT "+generatedResponseColumns+" FROM generated_responses WHERE id = $1",
		id,
	)

	resp, err := scanGeneratedResponse(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (r *engagementRepository) GetPendingResponseByItem(engagementItemID string) (*domain.GeneratedResponse, error) {
	row := r.conn.QueryRow(
		"SELECT "+generatedResponseColumns+" FROM generated_responses WHERE engagement_item_id = $1 AND status = 'pending' ORDER BY created_at DESC LIMIT 1",
		engagementItemID,
	)

	resp, err := scanGeneratedResponse(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (r *engagementRepository) UpdateGeneratedResponse(resp *domain.GeneratedResponse) error {
	queryBuilder := squirrel.
		Update(generatedResponsesTable).
		Set("status", resp.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": resp.ID})

	if resp.EditedContent != nil {
		queryBuilder = queryBuilder.Set("edited_content", resp.EditedContent)
	}

	if resp.ApprovedBy != nil {
		queryBuilder = queryBuilder.Set("approved_by", resp.ApprovedBy)
	}

	if resp.SentAt != nil {
		queryBuilder = queryBuilder.Set("sent_at", resp.SentAt)
	}

	respSQL, respArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(respSQL, respArgs...)
	return err
}

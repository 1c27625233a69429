package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/postpilot/postpilot-api/infrastructure/database/postgres"
	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/postpilot/postpilot-api/pkg/utils"
)

const brandsTable = "brands"

type BrandRepository interface {
	CreateBrand(brand *domain.Brand) (*domain.Brand, error)
	UpdateBrand(brand *domain.Brand) error
	GetBrandByID(brandID string) (*domain.Brand, error)
	ListBrandsByOwner(ownerID int) ([]*domain.Brand, error)
	DeleteBrand(brandID string) error
}

type brandRepository struct {
	conn *postgres.Connection
}

func NewBrandRepository(conn *postgres.Connection) BrandRepository {
	return &brandRepository{
		conn: conn,
	}
}

func (r *brandRepository) CreateBrand(brand *domain.Brand) (*domain.Brand, error) {
	if brand.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("generating brand id: %w", err)
		}
		brand.ID = id
	}

	queryBuilder := squirrel.
		Insert(brandsTable).
		Columns("id", "owner_id", "name", "description", "industry", "tone_of_voice", "target_audience", "keywords").
		Values(
			brand.ID,
			brand.OwnerID,
			brand.Name,
			brand.Description,
			brand.Industry,
			brand.ToneOfVoice,
			brand.TargetAudience,
			pq.Array(brand.Keywords),
		).
		PlaceholderFormat(squirrel.Dollar)

	brandSQL, brandArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn.Exec(brandSQL, brandArgs...)
	if err != nil {
		return nil, err
	}

	return brand, nil
}

func (r *brandRepository) UpdateBrand(brand *domain.Brand) error {
	queryBuilder := squirrel.
		Update(brandsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": brand.ID})

	if brand.Name != "" {
		queryBuilder = queryBuilder.Set("name", brand.Name)
	}

	if brand.Description != "" {
		queryBuilder = queryBuilder.Set("description", brand.Description)
	}

	if brand.Industry != "" {
		queryBuilder = queryBuilder.Set("industry", brand.Industry)
	}

	if brand.ToneOfVoice != "" {
		queryBuilder = queryBuilder.Set("tone_of_voice", brand.ToneOfVoice)
	}

	if brand.TargetAudience != "" {
		queryBuilder = queryBuilder.Set("target_audience", brand.TargetAudience)
	}

	if brand.Keywords != nil {
		queryBuilder = queryBuilder.Set("keywords", pq.Array(brand.Keywords))
	}

	if brand.Deleted {
		queryBuilder = queryBuilder.Set("deleted", true)
		queryBuilder = queryBuilder.Set("deleted_at", brand.DeletedAt)
	}

	brandSQL, brandArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(brandSQL, brandArgs...)
	if err != nil {
		return err
	}

	return nil
}

func (r *brandRepository) GetBrandByID(brandID string) (*domain.Brand, error) {
	var brand domain.Brand
	err := r.conn.QueryRow(
		"SELECT id, owner_id, name, description, industry, tone_of_voice, target_audience, keywords, created_at, updated_at FROM brands WHERE deleted = false AND id = $1",
		brandID,
	).Scan(
		&brand.ID,
		&brand.OwnerID,
		&brand.Name,
		&brand.Description,
		&brand.Industry,
		&brand.ToneOfVoice,
		&brand.TargetAudience,
		pq.Array(&brand.Keywords),
		&brand.CreatedAt,
		&brand.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &brand, nil
}

func (r *brandRepository) ListBrandsByOwner(ownerID int) ([]*domain.Brand, error) {
	queryBuilder := squirrel.
		Select("id", "owner_id", "name", "description", "industry", "tone_of_voice", "target_audience", "keywords", "created_at", "updated_at").
		From(brandsTable).
		Where(squirrel.Eq{"deleted": false, "owner_id": ownerID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	brandSQL, brandArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(brandSQL, brandArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []*domain.Brand
	for rows.Next() {
		var brand domain.Brand
		if err := rows.Scan(
			&brand.ID,
			&brand.OwnerID,
			&brand.Name,
			&brand.Description,
			&brand.Industry,
			&brand.ToneOfVoice,
			&brand.TargetAudience,
			pq.Array(&brand.Keywords),
			&brand.CreatedAt,
			&brand.UpdatedAt,
		); err != nil {
			return nil, err
		}

		brands = append(brands, &brand)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return brands, nil
}

func (r *brandRepository) DeleteBrand(brandID string) error {
	queryBuilder := squirrel.
		Update(brandsTable).
		Set("deleted", true).
		Set("deleted_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": brandID}).
		PlaceholderFormat(squirrel.Dollar)

	brandSQL, brandArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(brandSQL, brandArgs...)
	if err != nil {
		return fmt.Errorf("deleting brand: %w", err)
	}

	return nil
}

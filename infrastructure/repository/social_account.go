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

const socialAccountsTable = "social_accounts"

type SocialAccountRepository interface {
	UpsertSocialAccount(account *domain.SocialAccount) (*domain.SocialAccount, error)
	GetSocialAccountByID(id string) (*domain.SocialAccount, error)
	ListSocialAccountsByBrand(brandID string) ([]*domain.SocialAccount, error)
	ListConnectedAccounts() ([]*domain.SocialAccount, error)
	CountByBrand(brandID string) (int, error)
	UpdateStatus(id string, status domain.SocialAccountStatus) error
	DeleteSocialAccount(id string) error
}

type socialAccountRepository struct {
	conn *postgres.Connection
}

func NewSocialAccountRepository(conn *postgres.Connection) SocialAccountRepository {
	return &socialAccountRepository{
		conn: conn,
	}
}

const socialAccountColumns = "id, brand_id, platform, external_id, username, access_token, refresh_token, token_expires_at, status, created_at, updated_at"

func scanSocialAccount(row interface{ Scan(...any) error }) (*domain.SocialAccount, error) {
	var account domain.SocialAccount
	err := row.Scan(
		&account.ID,
		&account.BrandID,
		&account.Platform,
		&account.ExternalID,
		&account.Username,
		&account.AccessToken,
		&account.RefreshToken,
		&account.TokenExpiresAt,
		&account.Status,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// UpsertSocialAccount inserts the account or, when the same platform
// account is reconnected, refreshes its tokens in place.
func (r *socialAccountRepository) UpsertSocialAccount(account *domain.SocialAccount) (*domain.SocialAccount, error) {
	if account.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("generating social account id: %w", err)
		}
		account.ID = id
	}

	if account.Status == "" {
		account.Status = domain.SocialAccountStatusConnected
	}

	queryBuilder := squirrel.
		Insert(socialAccountsTable).
		Columns("id", "brand_id", "platform", "external_id", "username", "access_token", "refresh_token", "token_expires_at", "status").
		Values(
			account.ID,
			account.BrandID,
			account.Platform,
			account.ExternalID,
			account.Username,
			account.AccessToken,
			account.RefreshToken,
			account.TokenExpiresAt,
			account.Status,
		).
		Suffix(`ON CONFLICT (brand_id, platform, external_id) DO UPDATE
			SET username = EXCLUDED.username,
			    access_token = EXCLUDED.access_token,
			    refresh_token = EXCLUDED.refresh_token,
			    token_expires_at = EXCLUDED.token_expires_at,
			    status = EXCLUDED.status,
			    updated_at = NOW()
			RETURNING id`).
		PlaceholderFormat(squirrel.Dollar)

	accountSQL, accountArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(accountSQL, accountArgs...).Scan(&account.ID)
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (r *socialAccountRepository) GetSocialAccountByID(id string) (*domain.SocialAccount, error) {
	row := r.conn.QueryRow(
		"SELECT "+socialAccountColumns+" FROM social_accounts WHERE id = $1",
		id,
	)

	account, err := scanSocialAccount(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (r *socialAccountRepository) ListSocialAccountsByBrand(brandID string) ([]*domain.SocialAccount, error) {
	queryBuilder := squirrel.
		Select(socialAccountColumns).
		From(socialAccountsTable).
		Where(squirrel.Eq{"brand_id": brandID}).
		OrderBy("platform ASC, username ASC").
		PlaceholderFormat(squirrel.Dollar)

	accountSQL, accountArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(accountSQL, accountArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.SocialAccount
	for rows.Next() {
		account, err := scanSocialAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}

// ListConnectedAccounts returns every connected account across all
// brands, for the engagement sync sweep.
func (r *socialAccountRepository) ListConnectedAccounts() ([]*domain.SocialAccount, error) {
	rows, err := r.conn.Query(
		"SELECT " + socialAccountColumns + " FROM social_accounts WHERE status = 'connected' ORDER BY brand_id ASC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.SocialAccount
	for rows.Next() {
		account, err := scanSocialAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (r *socialAccountRepository) CountByBrand(brandID string) (int, error) {
	var count int
	err := r.conn.QueryRow(
		"SELECT COUNT(*) FROM social_accounts WHERE brand_id = $1 AND status = 'connected'",
		brandID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *socialAccountRepository) UpdateStatus(id string, status domain.SocialAccountStatus) error {
	queryBuilder := squirrel.
		Update(socialAccountsTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	accountSQL, accountArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(accountSQL, accountArgs...)
	return err
}

func (r *socialAccountRepository) DeleteSocialAccount(id string) error {
	queryBuilder := squirrel.
		Delete(socialAccountsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	accountSQL, accountArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(accountSQL, accountArgs...)
	if err != nil {
		return fmt.Errorf("deleting social account: %w", err)
	}

	return nil
}

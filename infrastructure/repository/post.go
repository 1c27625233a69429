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

const postsTable = "posts"

type PostRepository interface {
	CreatePost(post *domain.Post) (*domain.Post, error)
	UpdatePost(post *domain.Post) error
	GetPostByID(postID string) (*domain.Post, error)
	ListPostsByBrand(brandID string, statuses []domain.PostStatus) ([]*domain.Post, error)
	DeletePost(postID string) error
}

type postRepository struct {
	conn *postgres.Connection
}

func NewPostRepository(conn *postgres.Connection) PostRepository {
	return &postRepository{
		conn: conn,
	}
}

func (r *postRepository) CreatePost(post *domain.Post) (*domain.Post, error) {
	if post.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("generating post id: %w", err)
		}
		post.ID = id
	}

	if post.Status == "" {
		post.Status = domain.PostStatusDraft
	}

	queryBuilder := squirrel.
		Insert(postsTable).
		Columns("id", "brand_id", "content", "hashtags", "media_urls", "platform", "status", "ai_generated").
		Values(
			post.ID,
			post.BrandID,
			post.Content,
			pq.Array(post.Hashtags),
			pq.Array(post.MediaURLs),
			post.Platform,
			post.Status,
			post.AIGenerated,
		).
		PlaceholderFormat(squirrel.Dollar)

	postSQL, postArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn.Exec(postSQL, postArgs...)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (r *postRepository) UpdatePost(post *domain.Post) error {
	queryBuilder := squirrel.
		Update(postsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": post.ID})

	if post.Content != "" {
		queryBuilder = queryBuilder.Set("content", post.Content)
	}

	if post.Hashtags != nil {
		queryBuilder = queryBuilder.Set("hashtags", pq.Array(post.Hashtags))
	}

	if post.MediaURLs != nil {
		queryBuilder = queryBuilder.Set("media_urls", pq.Array(post.MediaURLs))
	}

	if post.Platform != "" {
		queryBuilder = queryBuilder.Set("platform", post.Platform)
	}

	if post.Status != "" {
		queryBuilder = queryBuilder.Set("status", post.Status)
	}

	postSQL, postArgs, err := queryBuilder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(postSQL, postArgs...)
	if err != nil {
		return err
	}

	return nil
}

func (r *postRepository) GetPostByID(postID string) (*domain.Post, error) {
	var post domain.Post
	err := r.conn.QueryRow(
		"SELECT id, brand_id, content, hashtags, media_urls, platform, status, ai_generated, created_at, updated_at FROM posts WHERE id = $1",
		postID,
	).Scan(
		&post.ID,
		&post.BrandID,
		&post.Content,
		pq.Array(&post.Hashtags),
		pq.Array(&post.MediaURLs),
		&post.Platform,
		&post.Status,
		&post.AIGenerated,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) ListPostsByBrand(brandID string, statuses []domain.PostStatus) ([]*domain.Post, error) {
	queryBuilder := squirrel.
		Select("id", "brand_id", "content", "hashtags", "media_urls", "platform", "status", "ai_generated", "created_at", "updated_at").
		From(postsTable).
		Where(squirrel.Eq{"brand_id": brandID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": statuses})
	}

	postSQL, postArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(postSQL, postArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID,
			&post.BrandID,
			&post.Content,
			pq.Array(&post.Hashtags),
			pq.Array(&post.MediaURLs),
			&post.Platform,
			&post.Status,
			&post.AIGenerated,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, err
		}

		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepository) DeletePost(postID string) error {
	queryBuilder := squirrel.
		Delete(postsTable).
		Where(squirrel.Eq{"id": postID}).
		PlaceholderFormat(squirrel.Dollar)

	postSQL, postArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(postSQL, postArgs...)
	if err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}

	return nil
}

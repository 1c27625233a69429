package contenting

import (
	"context"
	"errors"

	"github.com/postpilot/postpilot-api/infrastructure/integrator/llm"
	"github.com/postpilot/postpilot-api/infrastructure/repository"
	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/postpilot/postpilot-api/internal/usecases/billing"
	"github.com/postpilot/postpilot-api/internal/usecases/branding"
	"github.com/sirupsen/logrus"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrMissingTopic    = errors.New("topic is required")
	ErrInvalidPlatform = errors.New("unsupported platform")
	ErrPostNotEditable = errors.New("archived posts cannot be edited")
	ErrMissingContent  = errors.New("post content is required")
)

const maxVariantsPerBatch = 5

// GenerateRequest is the input of POST /api/content/generate.
type GenerateRequest struct {
	BrandID      string          `json:"brand_id"`
	Topic        string          `json:"topic"`
	Platform     domain.Platform `json:"platform"`
	VariantCount int             `json:"variant_count,omitempty"`
	ExtraContext string          `json:"extra_context,omitempty"`
}

type Contenter interface {
	GeneratePosts(ctx context.Context, ownerID int, req GenerateRequest) ([]*domain.Post, error)
	CreatePost(ownerID int, post *domain.Post) (*domain.Post, error)
	GetPost(ownerID int, postID string) (*domain.Post, error)
	ListPosts(ownerID int, brandID string, statuses []domain.PostStatus) ([]*domain.Post, error)
	UpdatePost(ownerID int, req *domain.UpdatePostRequest) (*domain.Post, error)
	DeletePost(ownerID int, postID string) error
}

type Service struct {
	postRepo  repository.PostRepository
	brander   branding.Brander
	biller    billing.Biller
	generator llm.Generator
}

func NewService(
	postRepo repository.PostRepository,
	brander branding.Brander,
	biller billing.Biller,
	generator llm.Generator,
) Contenter {
	return &Service{
		postRepo:  postRepo,
		brander:   brander,
		biller:    biller,
		generator: generator,
	}
}

// GeneratePosts asks the model for variants grounded on the brand
// profile and stores each as a draft. One generation run consumes one
// unit of the monthly allowance regardless of variant count.
func (s *Service) GeneratePosts(ctx context.Context, ownerID int, req GenerateRequest) ([]*domain.Post, error) {
	if req.Topic == "" {
		return nil, ErrMissingTopic
	}
	if !req.Platform.Valid() {
		return nil, ErrInvalidPlatform
	}
	if req.VariantCount <= 0 || req.VariantCount > maxVariantsPerBatch {
		req.VariantCount = 3
	}

	brand, err := s.brander.GetBrand(ownerID, req.BrandID)
	if err != nil {
		return nil, err
	}

	if err := s.biller.CheckAllowance(ownerID, brand.ID, domain.UsageMetricGenerations); err != nil {
		return nil, err
	}

	variants, err := s.generator.GeneratePostVariants(ctx, brand, llm.PostGenerationRequest{
		Topic:        req.Topic,
		Platform:     req.Platform,
		VariantCount: req.VariantCount,
		ExtraContext: req.ExtraContext,
	})
	if err != nil {
		return nil, err
	}

	posts := make([]*domain.Post, 0, len(variants))
	for _, variant := range variants {
		post, err := s.postRepo.CreatePost(&domain.Post{
			BrandID:     brand.ID,
			Content:     variant.Content,
			Hashtags:    variant.Hashtags,
			Platform:    req.Platform,
			Status:      domain.PostStatusDraft,
			AIGenerated: true,
		})
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := s.biller.ConsumeUsage(brand.ID, domain.UsageMetricGenerations); err != nil {
		logrus.WithError(err).WithField("brand_id", brand.ID).Error("failed to record generation usage")
	}

	return posts, nil
}

func (s *Service) CreatePost(ownerID int, post *domain.Post) (*domain.Post, error) {
	if post.Content == "" {
		return nil, ErrMissingContent
	}
	if post.Platform != "" && !post.Platform.Valid() {
		return nil, ErrInvalidPlatform
	}

	if _, err := s.brander.GetBrand(ownerID, post.BrandID); err != nil {
		return nil, err
	}

	return s.postRepo.CreatePost(post)
}

func (s *Service) GetPost(ownerID int, postID string) (*domain.Post, error) {
	post, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if _, err := s.brander.GetBrand(ownerID, post.BrandID); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *Service) ListPosts(ownerID int, brandID string, statuses []domain.PostStatus) ([]*domain.Post, error) {
	if _, err := s.brander.GetBrand(ownerID, brandID); err != nil {
		return nil, err
	}

	return s.postRepo.ListPostsByBrand(brandID, statuses)
}

func (s *Service) UpdatePost(ownerID int, req *domain.UpdatePostRequest) (*domain.Post, error) {
	post, err := s.GetPost(ownerID, req.ID)
	if err != nil {
		return nil, err
	}

	if post.Status == domain.PostStatusArchived {
		return nil, ErrPostNotEditable
	}

	if req.Content != nil {
		if *req.Content == "" {
			return nil, ErrMissingContent
		}
		post.Content = *req.Content
	}

	if req.Hashtags != nil {
		post.Hashtags = *req.Hashtags
	}

	if req.MediaURLs != nil {
		post.MediaURLs = *req.MediaURLs
	}

	if req.Platform != nil {
		if !req.Platform.Valid() {
			return nil, ErrInvalidPlatform
		}
		post.Platform = *req.Platform
	}

	if req.Status != nil {
		post.Status = *req.Status
	}

	if err := s.postRepo.UpdatePost(post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *Service) DeletePost(ownerID int, postID string) error {
	if _, err := s.GetPost(ownerID, postID); err != nil {
		return err
	}

	return s.postRepo.DeletePost(postID)
}

package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/postpilot/postpilot-api/infrastructure/integrator/platform"
	platformmocks "github.com/postpilot/postpilot-api/infrastructure/integrator/platform/mocks"
	"github.com/postpilot/postpilot-api/infrastructure/repository/mocks"
	"github.com/postpilot/postpilot-api/internal/config"
	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"
)

func newProcessorService(
	ctrl *gomock.Controller,
	cfg *config.Config,
) (*Service, *mocks.MockScheduledPostRepository, *mocks.MockPostRepository, *mocks.MockSocialAccountRepository, *platformmocks.MockClient) {
	scheduledPostRepo := mocks.NewMockScheduledPostRepository(ctrl)
	postRepo := mocks.NewMockPostRepository(ctrl)
	socialAccountRepo := mocks.NewMockSocialAccountRepository(ctrl)
	publisher := platformmocks.NewMockClient(ctrl)

	service := &Service{
		scheduledPostRepo: scheduledPostRepo,
		postRepo:          postRepo,
		socialAccountRepo: socialAccountRepo,
		publisher:         publisher,
		cfg:               cfg,
		limiters:          make(map[domain.Platform]*rate.Limiter),
	}

	return service, scheduledPostRepo, postRepo, socialAccountRepo, publisher
}

func TestProcessQueue_PublishesDuePosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	service, scheduledPostRepo, postRepo, socialAccountRepo, publisher := newProcessorService(ctrl, cfg)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	scheduled := &domain.ScheduledPost{
		ID:              "SCH001",
		PostID:          "PST001",
		BrandID:         "BRD001",
		SocialAccountID: "ACC001",
		Platform:        domain.PlatformInstagram,
		Status:          domain.ScheduledPostStatusProcessing,
	}
	post := &domain.Post{ID: "PST001", BrandID: "BRD001", Content: "launch day", Status: domain.PostStatusScheduled}
	account := &domain.SocialAccount{ID: "ACC001", BrandID: "BRD001", Platform: domain.PlatformInstagram, Status: domain.SocialAccountStatusConnected}

	scheduledPostRepo.EXPECT().ClaimDuePosts(now, 50).Return([]*domain.ScheduledPost{scheduled}, nil)
	postRepo.EXPECT().GetPostByID("PST001").Return(post, nil)
	socialAccountRepo.EXPECT().GetSocialAccountByID("ACC001").Return(account, nil)
	publisher.EXPECT().PublishPost(gomock.Any(), account, post).Return("ig_98765", nil)
	scheduledPostRepo.EXPECT().MarkPublished("SCH001", "ig_98765", now).Return(nil)
	postRepo.EXPECT().UpdatePost(gomock.Any()).DoAndReturn(func(p *domain.Post) error {
		assert.Equal(t, domain.PostStatusPublished, p.Status)
		return nil
	})

	result, err := service.ProcessQueue(now)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Claimed)
	assert.Equal(t, 1, result.Published)
	assert.Equal(t, 0, result.Failed)
}

func TestProcessQueue_RetriesWithBackoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	service, scheduledPostRepo, postRepo, socialAccountRepo, publisher := newProcessorService(ctrl, cfg)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	scheduled := &domain.ScheduledPost{
		ID:              "SCH002",
		PostID:          "PST002",
		SocialAccountID: "ACC002",
		Platform:        domain.PlatformLinkedin,
		RetryCount:      2,
	}
	post := &domain.Post{ID: "PST002", Status: domain.PostStatusScheduled}
	account := &domain.SocialAccount{ID: "ACC002", Platform: domain.PlatformLinkedin, Status: domain.SocialAccountStatusConnected}

	scheduledPostRepo.EXPECT().ClaimDuePosts(now, 50).Return([]*domain.ScheduledPost{scheduled}, nil)
	postRepo.EXPECT().GetPostByID("PST002").Return(post, nil)
	socialAccountRepo.EXPECT().GetSocialAccountByID("ACC002").Return(account, nil)
	publisher.EXPECT().PublishPost(gomock.Any(), account, post).Return("", errors.New("api unavailable"))

	// Third attempt failed, backoff doubles twice: 5m -> 10m -> 20m.
	expectedNextAttempt := now.Add(20 * time.Minute)
	scheduledPostRepo.EXPECT().MarkFailed("SCH002", "api unavailable", 3, expectedNextAttempt).Return(nil)

	result, err := service.ProcessQueue(now)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 0, result.Published)
	assert.Equal(t, 0, result.PermanentlyFailed)
}

func TestProcessQueue_MarksPermanentlyFailedAfterLastAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	service, scheduledPostRepo, postRepo, socialAccountRepo, publisher := newProcessorService(ctrl, cfg)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	scheduled := &domain.ScheduledPost{
		ID:              "SCH003",
		PostID:          "PST003",
		SocialAccountID: "ACC003",
		Platform:        domain.PlatformX,
		RetryCount:      domain.MaxPublishAttempts - 1,
	}
	post := &domain.Post{ID: "PST003", Status: domain.PostStatusScheduled}
	account := &domain.SocialAccount{ID: "ACC003", Platform: domain.PlatformX, Status: domain.SocialAccountStatusConnected}

	scheduledPostRepo.EXPECT().ClaimDuePosts(now, 50).Return([]*domain.ScheduledPost{scheduled}, nil)
	postRepo.EXPECT().GetPostByID("PST003").Return(post, nil)
	socialAccountRepo.EXPECT().GetSocialAccountByID("ACC003").Return(account, nil)
	publisher.EXPECT().PublishPost(gomock.Any(), account, post).Return("", errors.New("still failing"))
	scheduledPostRepo.EXPECT().MarkPermanentlyFailed("SCH003", "still failing").Return(nil)

	result, err := service.ProcessQueue(now)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.PermanentlyFailed)
	assert.Equal(t, 0, result.Failed)
}

func TestProcessQueue_FlagsExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	service, scheduledPostRepo, postRepo, socialAccountRepo, publisher := newProcessorService(ctrl, cfg)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	scheduled := &domain.ScheduledPost{
		ID:              "SCH004",
		PostID:          "PST004",
		SocialAccountID: "ACC004",
		Platform:        domain.PlatformFacebook,
	}
	post := &domain.Post{ID: "PST004", Status: domain.PostStatusScheduled}
	account := &domain.SocialAccount{ID: "ACC004", Platform: domain.PlatformFacebook, Status: domain.SocialAccountStatusConnected}

	scheduledPostRepo.EXPECT().ClaimDuePosts(now, 50).Return([]*domain.ScheduledPost{scheduled}, nil)
	postRepo.EXPECT().GetPostByID("PST004").Return(post, nil)
	socialAccountRepo.EXPECT().GetSocialAccountByID("ACC004").Return(account, nil)
	publisher.EXPECT().PublishPost(gomock.Any(), account, post).Return("", platform.ErrTokenExpired)
	socialAccountRepo.EXPECT().UpdateStatus("ACC004", domain.SocialAccountStatusTokenExpired).Return(nil)
	scheduledPostRepo.EXPECT().MarkFailed("SCH004", platform.ErrTokenExpired.Error(), 1, now.Add(5*time.Minute)).Return(nil)

	result, err := service.ProcessQueue(now)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
}

func TestProcessQueue_ThrottlesWhenRateCapExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	service, scheduledPostRepo, _, _, _ := newProcessorService(ctrl, cfg)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// Exhausted limiter: burst of zero never allows a publish.
	service.limiters[domain.PlatformInstagram] = rate.NewLimiter(rate.Limit(0), 0)

	scheduled := &domain.ScheduledPost{
		ID:       "SCH005",
		PostID:   "PST005",
		Platform: domain.PlatformInstagram,
	}

	scheduledPostRepo.EXPECT().ClaimDuePosts(now, 50).Return([]*domain.ScheduledPost{scheduled}, nil)
	scheduledPostRepo.EXPECT().Reschedule("SCH005", now.Add(time.Minute)).Return(nil)

	result, err := service.ProcessQueue(now)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Throttled)
	assert.Equal(t, 0, result.Failed)
	// A throttled post keeps its retry count.
	assert.Equal(t, 0, scheduled.RetryCount)
}

func TestProcessQueue_EmptyQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	service, scheduledPostRepo, _, _, _ := newProcessorService(ctrl, cfg)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	scheduledPostRepo.EXPECT().ClaimDuePosts(now, 50).Return(nil, nil)

	result, err := service.ProcessQueue(now)

	assert.NoError(t, err)
	assert.Equal(t, 0, result.Claimed)
}

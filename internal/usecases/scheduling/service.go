package scheduling

import (
	"errors"
	"sync"
	"time"

	"github.com/postpilot/postpilot-api/infrastructure/integrator/platform"
	"github.com/postpilot/postpilot-api/infrastructure/repository"
	"github.com/postpilot/postpilot-api/internal/config"
	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/postpilot/postpilot-api/internal/usecases/billing"
	"github.com/postpilot/postpilot-api/internal/usecases/branding"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var (
	ErrScheduleNotFound   = errors.New("scheduled post not found")
	ErrScheduleInPast     = errors.New("scheduled_for must be in the future")
	ErrScheduleImmutable  = errors.New("scheduled post can no longer be changed")
	ErrAccountNotUsable   = errors.New("social account is not connected")
	ErrPlatformMismatch   = errors.New("post platform does not match the account platform")
	ErrMissingScheduleFor = errors.New("scheduled_for is required")
)

// ScheduleRequest is the input of POST /api/scheduler/schedule.
type ScheduleRequest struct {
	BrandID         string    `json:"brand_id"`
	PostID          string    `json:"post_id"`
	SocialAccountID string    `json:"social_account_id"`
	ScheduledFor    time.Time `json:"scheduled_for"`
}

type Scheduler interface {
	SchedulePost(ownerID int, req *ScheduleRequest) (*domain.ScheduledPost, error)
	GetSchedule(ownerID int, scheduleID string) (*domain.ScheduledPost, error)
	ListSchedules(ownerID int, brandID string, statuses []domain.ScheduledPostStatus) ([]*domain.ScheduledPost, error)
	UpdateSchedule(ownerID int, req *domain.UpdateScheduledPostRequest) (*domain.ScheduledPost, error)
	CancelSchedule(ownerID int, scheduleID string) error
	ProcessQueue(now time.Time) (*ProcessResult, error)
}

type Service struct {
	scheduledPostRepo repository.ScheduledPostRepository
	postRepo          repository.PostRepository
	socialAccountRepo repository.SocialAccountRepository
	brander           branding.Brander
	biller            billing.Biller
	publisher         platform.Client
	cfg               *config.Config

	limiterMu sync.Mutex
	limiters  map[domain.Platform]*rate.Limiter
}

func NewService(
	scheduledPostRepo repository.ScheduledPostRepository,
	postRepo repository.PostRepository,
	socialAccountRepo repository.SocialAccountRepository,
	brander branding.Brander,
	biller billing.Biller,
	publisher platform.Client,
	cfg *config.Config,
) Scheduler {
	return &Service{
		scheduledPostRepo: scheduledPostRepo,
		postRepo:          postRepo,
		socialAccountRepo: socialAccountRepo,
		brander:           brander,
		biller:            biller,
		publisher:         publisher,
		cfg:               cfg,
		limiters:          make(map[domain.Platform]*rate.Limiter),
	}
}

func (s *Service) SchedulePost(ownerID int, req *ScheduleRequest) (*domain.ScheduledPost, error) {
	if req.ScheduledFor.IsZero() {
		return nil, ErrMissingScheduleFor
	}
	if !req.ScheduledFor.After(time.Now()) {
		return nil, ErrScheduleInPast
	}

	brand, err := s.brander.GetBrand(ownerID, req.BrandID)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetPostByID(req.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil || post.BrandID != brand.ID {
		return nil, ErrScheduleNotFound
	}

	account, err := s.socialAccountRepo.GetSocialAccountByID(req.SocialAccountID)
	if err != nil {
		return nil, err
	}
	if account == nil || account.BrandID != brand.ID {
		return nil, ErrScheduleNotFound
	}
	if account.Status != domain.SocialAccountStatusConnected {
		return nil, ErrAccountNotUsable
	}
	if post.Platform != "" && post.Platform != account.Platform {
		return nil, ErrPlatformMismatch
	}

	if err := s.biller.CheckAllowance(ownerID, brand.ID, domain.UsageMetricScheduledPosts); err != nil {
		return nil, err
	}

	scheduled, err := s.scheduledPostRepo.CreateScheduledPost(&domain.ScheduledPost{
		PostID:          post.ID,
		BrandID:         brand.ID,
		SocialAccountID: account.ID,
		Platform:        account.Platform,
		ScheduledFor:    req.ScheduledFor.UTC(),
		Status:          domain.ScheduledPostStatusScheduled,
	})
	if err != nil {
		return nil, err
	}

	if post.Status == domain.PostStatusDraft {
		post.Status = domain.PostStatusScheduled
		if err := s.postRepo.UpdatePost(post); err != nil {
			logrus.WithError(err).WithField("post_id", post.ID).Error("failed to flag post as scheduled")
		}
	}

	if err := s.biller.ConsumeUsage(brand.ID, domain.UsageMetricScheduledPosts); err != nil {
		logrus.WithError(err).WithField("brand_id", brand.ID).Error("failed to record scheduling usage")
	}

	return scheduled, nil
}

func (s *Service) GetSchedule(ownerID int, scheduleID string) (*domain.ScheduledPost, error) {
	scheduled, err := s.scheduledPostRepo.GetScheduledPostByID(scheduleID)
	if err != nil {
		return nil, err
	}
	if scheduled == nil {
		return nil, ErrScheduleNotFound
	}

	if _, err := s.brander.GetBrand(ownerID, scheduled.BrandID); err != nil {
		return nil, ErrScheduleNotFound
	}

	return scheduled, nil
}

func (s *Service) ListSchedules(ownerID int, brandID string, statuses []domain.ScheduledPostStatus) ([]*domain.ScheduledPost, error) {
	if _, err := s.brander.GetBrand(ownerID, brandID); err != nil {
		return nil, err
	}

	return s.scheduledPostRepo.ListScheduledPostsByBrand(brandID, statuses)
}

// UpdateSchedule moves a pending schedule to a new time. Posts already
// picked up by the queue (or beyond) are immutable.
func (s *Service) UpdateSchedule(ownerID int, req *domain.UpdateScheduledPostRequest) (*domain.ScheduledPost, error) {
	scheduled, err := s.GetSchedule(ownerID, req.ID)
	if err != nil {
		return nil, err
	}

	if !isPending(scheduled.Status) {
		return nil, ErrScheduleImmutable
	}

	if req.ScheduledFor == nil {
		return nil, ErrMissingScheduleFor
	}
	if !req.ScheduledFor.After(time.Now()) {
		return nil, ErrScheduleInPast
	}

	if err := s.scheduledPostRepo.UpdateSchedule(scheduled.ID, req.ScheduledFor.UTC()); err != nil {
		return nil, err
	}

	scheduled.ScheduledFor = req.ScheduledFor.UTC()
	scheduled.Status = domain.ScheduledPostStatusScheduled
	scheduled.RetryCount = 0
	scheduled.NextAttemptAt = nil
	scheduled.LastError = nil

	return scheduled, nil
}

func (s *Service) CancelSchedule(ownerID int, scheduleID string) error {
	scheduled, err := s.GetSchedule(ownerID, scheduleID)
	if err != nil {
		return err
	}

	if !isPending(scheduled.Status) {
		return ErrScheduleImmutable
	}

	return s.scheduledPostRepo.Cancel(scheduled.ID)
}

// isPending reports whether the schedule is still waiting for a
// (re)attempt and may be edited or cancelled.
func isPending(status domain.ScheduledPostStatus) bool {
	return status == domain.ScheduledPostStatusScheduled ||
		status == domain.ScheduledPostStatusFailed
}

package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/postpilot/postpilot-api/infrastructure/integrator/platform"
	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// throttleRetryDelay is how far a post is pushed back when its platform
// rate cap is exhausted in the current run.
const throttleRetryDelay = time.Minute

// ProcessResult summarizes one queue run.
type ProcessResult struct {
	Claimed           int `json:"claimed"`
	Published         int `json:"published"`
	Failed            int `json:"failed"`
	PermanentlyFailed int `json:"permanently_failed"`
	Throttled         int `json:"throttled"`
}

// ProcessQueue claims every post due at now and publishes it, applying
// the per-platform rate cap and the retry/backoff policy.
func (s *Service) ProcessQueue(now time.Time) (*ProcessResult, error) {
	batchSize := s.cfg.PublishQueue.BatchSize
	if batchSize <= 0 {
		batchSize = 50
	}

	due, err := s.scheduledPostRepo.ClaimDuePosts(now, batchSize)
	if err != nil {
		return nil, err
	}

	result := &ProcessResult{Claimed: len(due)}
	if len(due) == 0 {
		return result, nil
	}

	logrus.WithField("claimed", len(due)).Info("processing publish queue")

	for _, scheduled := range due {
		s.processOne(scheduled, now, result)
	}

	logrus.WithFields(logrus.Fields{
		"claimed":            result.Claimed,
		"published":          result.Published,
		"failed":             result.Failed,
		"permanently_failed": result.PermanentlyFailed,
		"throttled":          result.Throttled,
	}).Info("publish queue run finished")

	return result, nil
}

func (s *Service) processOne(scheduled *domain.ScheduledPost, now time.Time, result *ProcessResult) {
	log := logrus.WithFields(logrus.Fields{
		"scheduled_post_id": scheduled.ID,
		"post_id":           scheduled.PostID,
		"platform":          scheduled.Platform,
	})

	if !s.limiterFor(scheduled.Platform).Allow() {
		// Rate cap hit: put the post back without burning an attempt.
		if err := s.scheduledPostRepo.Reschedule(scheduled.ID, now.Add(throttleRetryDelay)); err != nil {
			log.WithError(err).Error("failed to reschedule throttled post")
		}
		result.Throttled++
		return
	}

	post, account, err := s.loadPublishTargets(scheduled)
	if err != nil {
		s.failAttempt(scheduled, err, now, result, log)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	externalID, err := s.publisher.PublishPost(ctx, account, post)
	cancel()

	if err != nil {
		if errors.Is(err, platform.ErrTokenExpired) {
			if updateErr := s.socialAccountRepo.UpdateStatus(account.ID, domain.SocialAccountStatusTokenExpired); updateErr != nil {
				log.WithError(updateErr).Error("failed to flag account token as expired")
			}
		}
		s.failAttempt(scheduled, err, now, result, log)
		return
	}

	if err := s.scheduledPostRepo.MarkPublished(scheduled.ID, externalID, now); err != nil {
		log.WithError(err).Error("post published but could not be marked as such")
		result.Failed++
		return
	}

	post.Status = domain.PostStatusPublished
	if err := s.postRepo.UpdatePost(post); err != nil {
		log.WithError(err).Error("failed to flag post as published")
	}

	log.WithField("external_post_id", externalID).Info("post published")
	result.Published++
}

func (s *Service) loadPublishTargets(scheduled *domain.ScheduledPost) (*domain.Post, *domain.SocialAccount, error) {
	post, err := s.postRepo.GetPostByID(scheduled.PostID)
	if err != nil {
		return nil, nil, err
	}
	if post == nil {
		return nil, nil, errors.New("post no longer exists")
	}

	account, err := s.socialAccountRepo.GetSocialAccountByID(scheduled.SocialAccountID)
	if err != nil {
		return nil, nil, err
	}
	if account == nil {
		return nil, nil, errors.New("social account no longer exists")
	}
	if account.Status != domain.SocialAccountStatusConnected {
		return nil, nil, ErrAccountNotUsable
	}

	return post, account, nil
}

// failAttempt applies the retry policy after a failed publish: backoff
// doubling from 5 minutes, permanently failed after the fifth attempt.
func (s *Service) failAttempt(scheduled *domain.ScheduledPost, cause error, now time.Time, result *ProcessResult, log *logrus.Entry) {
	attempts := scheduled.RetryCount + 1

	if attempts >= domain.MaxPublishAttempts {
		if err := s.scheduledPostRepo.MarkPermanentlyFailed(scheduled.ID, cause.Error()); err != nil {
			log.WithError(err).Error("failed to mark post permanently failed")
		}
		log.WithError(cause).WithField("attempts", attempts).Warn("publish permanently failed")
		result.PermanentlyFailed++
		return
	}

	nextAttempt := now.Add(domain.NextRetryDelay(scheduled.RetryCount))
	if err := s.scheduledPostRepo.MarkFailed(scheduled.ID, cause.Error(), attempts, nextAttempt); err != nil {
		log.WithError(err).Error("failed to record publish failure")
	}

	log.WithError(cause).WithFields(logrus.Fields{
		"attempts":        attempts,
		"next_attempt_at": nextAttempt,
	}).Warn("publish failed, will retry")
	result.Failed++
}

// limiterFor returns the shared limiter of a platform, created lazily
// from the configured per-minute rate.
func (s *Service) limiterFor(p domain.Platform) *rate.Limiter {
	s.limiterMu.Lock()
	defer s.limiterMu.Unlock()

	limiter, ok := s.limiters[p]
	if !ok {
		perMinute := s.cfg.Platforms.PublishRatePerMinute
		if perMinute <= 0 {
			perMinute = 10
		}
		burst := s.cfg.Platforms.PublishBurst
		if burst <= 0 {
			burst = 5
		}
		limiter = rate.NewLimiter(rate.Limit(perMinute/60.0), burst)
		s.limiters[p] = limiter
	}

	return limiter
}

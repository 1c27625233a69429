package scheduling

import (
	"testing"
	"time"

	"github.com/postpilot/postpilot-api/infrastructure/repository/mocks"
	"github.com/postpilot/postpilot-api/internal/domain"
	brandingmocks "github.com/postpilot/postpilot-api/internal/usecases/branding/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUpdateSchedule_ResetsFailedPostForTheNewTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scheduledPostRepo := mocks.NewMockScheduledPostRepository(ctrl)
	brander := brandingmocks.NewMockBrander(ctrl)

	service := &Service{
		scheduledPostRepo: scheduledPostRepo,
		brander:           brander,
	}

	staleAttempt := time.Now().Add(-10 * time.Minute)
	lastError := "api unavailable"
	failed := &domain.ScheduledPost{
		ID:            "SCH001",
		BrandID:       "BRD001",
		Status:        domain.ScheduledPostStatusFailed,
		RetryCount:    3,
		NextAttemptAt: &staleAttempt,
		LastError:     &lastError,
		ScheduledFor:  time.Now().Add(-time.Hour),
	}

	newTime := time.Now().Add(2 * time.Hour).UTC()

	scheduledPostRepo.EXPECT().GetScheduledPostByID("SCH001").Return(failed, nil)
	brander.EXPECT().GetBrand(7, "BRD001").Return(&domain.Brand{ID: "BRD001", OwnerID: 7}, nil)
	scheduledPostRepo.EXPECT().UpdateSchedule("SCH001", newTime).Return(nil)

	result, err := service.UpdateSchedule(7, &domain.UpdateScheduledPostRequest{
		ID:           "SCH001",
		ScheduledFor: &newTime,
	})

	assert.NoError(t, err)
	assert.Equal(t, newTime, result.ScheduledFor)
	assert.Equal(t, domain.ScheduledPostStatusScheduled, result.Status)
	assert.Equal(t, 0, result.RetryCount)
	assert.Nil(t, result.NextAttemptAt)
	assert.Nil(t, result.LastError)
}

func TestUpdateSchedule_Guards(t *testing.T) {
	newTime := time.Now().Add(2 * time.Hour)
	pastTime := time.Now().Add(-time.Hour)

	tests := []struct {
		name     string
		req      *domain.UpdateScheduledPostRequest
		setup    func(scheduledPostRepo *mocks.MockScheduledPostRepository, brander *brandingmocks.MockBrander)
		expected error
	}{
		{
			name: "published post is immutable",
			req:  &domain.UpdateScheduledPostRequest{ID: "SCH001", ScheduledFor: &newTime},
			setup: func(scheduledPostRepo *mocks.MockScheduledPostRepository, brander *brandingmocks.MockBrander) {
				scheduledPostRepo.EXPECT().GetScheduledPostByID("SCH001").Return(&domain.ScheduledPost{
					ID:      "SCH001",
					BrandID: "BRD001",
					Status:  domain.ScheduledPostStatusPublished,
				}, nil)
				brander.EXPECT().GetBrand(7, "BRD001").Return(&domain.Brand{ID: "BRD001"}, nil)
			},
			expected: ErrScheduleImmutable,
		},
		{
			name: "new time must be in the future",
			req:  &domain.UpdateScheduledPostRequest{ID: "SCH001", ScheduledFor: &pastTime},
			setup: func(scheduledPostRepo *mocks.MockScheduledPostRepository, brander *brandingmocks.MockBrander) {
				scheduledPostRepo.EXPECT().GetScheduledPostByID("SCH001").Return(&domain.ScheduledPost{
					ID:      "SCH001",
					BrandID: "BRD001",
					Status:  domain.ScheduledPostStatusScheduled,
				}, nil)
				brander.EXPECT().GetBrand(7, "BRD001").Return(&domain.Brand{ID: "BRD001"}, nil)
			},
			expected: ErrScheduleInPast,
		},
		{
			name: "new time is required",
			req:  &domain.UpdateScheduledPostRequest{ID: "SCH001"},
			setup: func(scheduledPostRepo *mocks.MockScheduledPostRepository, brander *brandingmocks.MockBrander) {
				scheduledPostRepo.EXPECT().GetScheduledPostByID("SCH001").Return(&domain.ScheduledPost{
					ID:      "SCH001",
					BrandID: "BRD001",
					Status:  domain.ScheduledPostStatusFailed,
				}, nil)
				brander.EXPECT().GetBrand(7, "BRD001").Return(&domain.Brand{ID: "BRD001"}, nil)
			},
			expected: ErrMissingScheduleFor,
		},
		{
			name: "missing schedule",
			req:  &domain.UpdateScheduledPostRequest{ID: "SCH404", ScheduledFor: &newTime},
			setup: func(scheduledPostRepo *mocks.MockScheduledPostRepository, brander *brandingmocks.MockBrander) {
				scheduledPostRepo.EXPECT().GetScheduledPostByID("SCH404").Return(nil, nil)
			},
			expected: ErrScheduleNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			scheduledPostRepo := mocks.NewMockScheduledPostRepository(ctrl)
			brander := brandingmocks.NewMockBrander(ctrl)
			service := &Service{
				scheduledPostRepo: scheduledPostRepo,
				brander:           brander,
			}
			tt.setup(scheduledPostRepo, brander)

			_, err := service.UpdateSchedule(7, tt.req)

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

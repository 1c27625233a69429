package analytics

import (
	"testing"
	"time"

	"github.com/postpilot/postpilot-api/infrastructure/repository/mocks"
	"github.com/postpilot/postpilot-api/internal/domain"
	brandingmocks "github.com/postpilot/postpilot-api/internal/usecases/branding/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPublishHistory_SinceFilter(t *testing.T) {
	cutoff := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	records := []*domain.PostPublishRecord{
		{ScheduledPostID: "SCH001", ScheduledFor: cutoff.AddDate(0, 0, -3)},
		{ScheduledPostID: "SCH002", ScheduledFor: cutoff},
		{ScheduledPostID: "SCH003", ScheduledFor: cutoff.AddDate(0, 0, 5)},
	}

	tests := []struct {
		name     string
		since    *time.Time
		expected []string
	}{
		{
			name:     "no cutoff returns everything",
			since:    nil,
			expected: []string{"SCH001", "SCH002", "SCH003"},
		},
		{
			name:     "cutoff keeps records scheduled on or after it",
			since:    &cutoff,
			expected: []string{"SCH002", "SCH003"},
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

			brander.EXPECT().GetBrand(7, "BRD001").Return(&domain.Brand{ID: "BRD001", OwnerID: 7}, nil)
			scheduledPostRepo.EXPECT().ListPublishHistory("BRD001").Return(records, nil)

			history, err := service.PublishHistory(7, "BRD001", tt.since)

			assert.NoError(t, err)
			ids := make([]string, 0, len(history))
			for _, record := range history {
				ids = append(ids, record.ScheduledPostID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

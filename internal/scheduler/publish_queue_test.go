package scheduler

import (
	"sync"
	"testing"

	"github.com/postpilot/postpilot-api/internal/config"
	"github.com/postpilot/postpilot-api/internal/usecases/scheduling"
	"github.com/postpilot/postpilot-api/internal/usecases/scheduling/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// Runs and status reads happen on different goroutines (gocron vs. the
// admin endpoint), so the status snapshot must be safe to take mid-run.
func TestPublishQueueStatusDuringConcurrentRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schedulingService := mocks.NewMockScheduler(ctrl)
	schedulingService.EXPECT().
		ProcessQueue(gomock.Any()).
		Return(&scheduling.ProcessResult{Claimed: 1, Published: 1}, nil).
		AnyTimes()

	service := NewPublishQueueService(schedulingService, &config.Config{
		PublishQueue: config.PublishQueue{
			CronSchedule: "* * * * *",
			BatchSize:    10,
			Enabled:      true,
		},
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			service.runQueue()
		}()
		go func() {
			defer wg.Done()
			status := service.GetStatus()
			assert.Equal(t, true, status["enabled"])
		}()
	}
	wg.Wait()

	status := service.GetStatus()
	assert.NotNil(t, status["last_run_result"])
	result, ok := status["last_run_result"].(*scheduling.ProcessResult)
	assert.True(t, ok)
	assert.Equal(t, 1, result.Published)
}

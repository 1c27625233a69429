package repository

import (
	"testing"
	"time"

	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestUpdateScheduleQueryResetsRetryState(t *testing.T) {
	when := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)

	spSQL, spArgs, err := updateScheduleQuery("SCH001", when).ToSql()

	assert.NoError(t, err)
	assert.Equal(t,
		"UPDATE scheduled_posts SET scheduled_for = $1, status = $2, retry_count = $3, next_attempt_at = $4, last_error = $5, updated_at = NOW() WHERE id = $6",
		spSQL,
	)
	// A rescheduled post must start over: status back to scheduled,
	// retry counter zeroed, stale next_attempt_at and last_error gone.
	assert.Equal(t, []interface{}{when, domain.ScheduledPostStatusScheduled, 0, nil, nil, "SCH001"}, spArgs)
}

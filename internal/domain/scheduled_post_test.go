package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextRetryDelay(t *testing.T) {
	tests := []struct {
		name       string
		retryCount int
		expected   time.Duration
	}{
		{
			name:       "first retry waits the base delay",
			retryCount: 0,
			expected:   5 * time.Minute,
		},
		{
			name:       "second retry doubles once",
			retryCount: 1,
			expected:   10 * time.Minute,
		},
		{
			name:       "third retry doubles twice",
			retryCount: 2,
			expected:   20 * time.Minute,
		},
		{
			name:       "fourth retry doubles three times",
			retryCount: 3,
			expected:   40 * time.Minute,
		},
		{
			name:       "fifth retry doubles four times",
			retryCount: 4,
			expected:   80 * time.Minute,
		},
		{
			name:       "delay never exceeds the four hour cap",
			retryCount: 10,
			expected:   4 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextRetryDelay(tt.retryCount))
		})
	}
}

func TestUsageMonth(t *testing.T) {
	// The bucket key is always derived from UTC so a run close to
	// midnight cannot land in the wrong month.
	loc := time.FixedZone("UTC-5", -5*60*60)
	localEvening := time.Date(2026, 1, 31, 22, 0, 0, 0, loc)

	assert.Equal(t, "2026-02", UsageMonth(localEvening))
	assert.Equal(t, "2026-01", UsageMonth(time.Date(2026, 1, 31, 22, 0, 0, 0, time.UTC)))
}

func TestEffectiveLimits(t *testing.T) {
	tests := []struct {
		name     string
		sub      *Subscription
		expected PlanLimits
	}{
		{
			name:     "nil subscription falls back to free",
			sub:      nil,
			expected: LimitsByPlan[PlanFree],
		},
		{
			name:     "canceled pro subscription falls back to free",
			sub:      &Subscription{Plan: PlanPro, Status: SubscriptionStatusCanceled},
			expected: LimitsByPlan[PlanFree],
		},
		{
			name:     "active starter subscription resolves starter limits",
			sub:      &Subscription{Plan: PlanStarter, Status: SubscriptionStatusActive},
			expected: LimitsByPlan[PlanStarter],
		},
		{
			name:     "active subscription with unknown plan falls back to free",
			sub:      &Subscription{Plan: Plan("enterprise"), Status: SubscriptionStatusActive},
			expected: LimitsByPlan[PlanFree],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.sub.EffectiveLimits())
		})
	}
}

package domain

import "time"

type Plan string

const (
	PlanFree    Plan = "free"
	PlanStarter Plan = "starter"
	PlanPro     Plan = "pro"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
)

// PlanLimits caps what a tenant may do during one calendar month.
type PlanLimits struct {
	MonthlyGenerations int
	ScheduledPosts     int
	ConnectedAccounts  int
}

// LimitsByPlan mirrors the pricing page. The free tier exists so a
// tenant without any Stripe subscription still resolves to limits.
var LimitsByPlan = map[Plan]PlanLimits{
	PlanFree:    {MonthlyGenerations: 10, ScheduledPosts: 10, ConnectedAccounts: 1},
	PlanStarter: {MonthlyGenerations: 100, ScheduledPosts: 100, ConnectedAccounts: 3},
	PlanPro:     {MonthlyGenerations: 1000, ScheduledPosts: 1000, ConnectedAccounts: 10},
}

type Subscription struct {
	ID                   string             `json:"id"`
	UserID               int                `json:"user_id"`
	Plan                 Plan               `json:"plan"`
	Status               SubscriptionStatus `json:"status"`
	StripeCustomerID     *string            `json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID *string            `json:"stripe_subscription_id,omitempty"`
	CurrentPeriodEnd     *time.Time         `json:"current_period_end,omitempty"`
	CreatedAt            *time.Time         `json:"created_at,omitempty"`
	UpdatedAt            *time.Time         `json:"updated_at,omitempty"`
}

// EffectiveLimits resolves the limits for this subscription, falling
// back to the free tier when the subscription is missing or not active.
func (s *Subscription) EffectiveLimits() PlanLimits {
	if s == nil || s.Status != SubscriptionStatusActive {
		return LimitsByPlan[PlanFree]
	}
	limits, ok := LimitsByPlan[s.Plan]
	if !ok {
		return LimitsByPlan[PlanFree]
	}
	return limits
}

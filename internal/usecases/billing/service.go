package billing

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/postpilot/postpilot-api/infrastructure/integrator/stripeclient"
	"github.com/postpilot/postpilot-api/infrastructure/repository"
	"github.com/postpilot/postpilot-api/internal/config"
	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrPlanLimitReached = errors.New("plan limit reached")

type Biller interface {
	GetSubscriptionView(userID int) (*SubscriptionView, error)
	LimitsForUser(userID int) (domain.Plan, domain.PlanLimits, error)
	CheckAllowance(ownerID int, brandID string, kind domain.UsageMetricKind) error
	ConsumeUsage(brandID string, kind domain.UsageMetricKind) error
	HandleStripeEvent(ctx context.Context, event *stripeclient.Event) error
}

// SubscriptionView is what GET /api/billing/subscription returns: the
// subscription plus the limits it resolves to.
type SubscriptionView struct {
	Subscription *domain.Subscription `json:"subscription,omitempty"`
	Plan         domain.Plan          `json:"plan"`
	Status       string               `json:"status"`
	Limits       domain.PlanLimits    `json:"limits"`
}

type Service struct {
	subscriptionRepo repository.SubscriptionRepository
	usageRepo        repository.UsageMetricsRepository
	stripe           stripeclient.Client
	cfg              *config.Config
}

func NewService(
	subscriptionRepo repository.SubscriptionRepository,
	usageRepo repository.UsageMetricsRepository,
	stripe stripeclient.Client,
	cfg *config.Config,
) Biller {
	return &Service{
		subscriptionRepo: subscriptionRepo,
		usageRepo:        usageRepo,
		stripe:           stripe,
		cfg:              cfg,
	}
}

func (s *Service) GetSubscriptionView(userID int) (*SubscriptionView, error) {
	subscription, err := s.subscriptionRepo.GetSubscriptionByUserID(userID)
	if err != nil {
		return nil, err
	}

	view := &SubscriptionView{
		Subscription: subscription,
		Plan:         domain.PlanFree,
		Status:       "none",
		Limits:       subscription.EffectiveLimits(),
	}

	if subscription != nil {
		view.Plan = subscription.Plan
		view.Status = string(subscription.Status)
	}

	return view, nil
}

func (s *Service) LimitsForUser(userID int) (domain.Plan, domain.PlanLimits, error) {
	subscription, err := s.subscriptionRepo.GetSubscriptionByUserID(userID)
	if err != nil {
		return domain.PlanFree, domain.LimitsByPlan[domain.PlanFree], err
	}

	limits := subscription.EffectiveLimits()
	plan := domain.PlanFree
	if subscription != nil && subscription.Status == domain.SubscriptionStatusActive {
		plan = subscription.Plan
	}

	return plan, limits, nil
}

// CheckAllowance verifies the brand still has headroom for one more
// unit of the given metric in the current month.
func (s *Service) CheckAllowance(ownerID int, brandID string, kind domain.UsageMetricKind) error {
	_, limits, err := s.LimitsForUser(ownerID)
	if err != nil {
		return err
	}

	var limit int
	switch kind {
	case domain.UsageMetricGenerations:
		limit = limits.MonthlyGenerations
	case domain.UsageMetricScheduledPosts:
		limit = limits.ScheduledPosts
	case domain.UsageMetricResponses:
		limit = limits.MonthlyGenerations
	default:
		return fmt.Errorf("unknown usage metric: %s", kind)
	}

	used, err := s.usageRepo.GetUsageCount(brandID, kind, domain.UsageMonth(time.Now()))
	if err != nil {
		return err
	}

	if used >= limit {
		return fmt.Errorf("%w: %s (%d/%d this month)", ErrPlanLimitReached, kind, used, limit)
	}

	return nil
}

func (s *Service) ConsumeUsage(brandID string, kind domain.UsageMetricKind) error {
	return s.usageRepo.IncrementUsage(brandID, kind, domain.UsageMonth(time.Now()))
}

// HandleStripeEvent applies a verified, deduplicated webhook event to
// the local subscription state.
func (s *Service) HandleStripeEvent(ctx context.Context, event *stripeclient.Event) error {
	switch event.Type {
	case stripeclient.EventCheckoutCompleted:
		return s.handleCheckoutCompleted(ctx, event)
	case stripeclient.EventSubscriptionUpdated:
		return s.handleSubscriptionUpdated(event)
	case stripeclient.EventSubscriptionDeleted:
		return s.handleSubscriptionDeleted(event)
	case stripeclient.EventInvoicePaymentFail:
		return s.handlePaymentFailed(event)
	default:
		logrus.WithField("event_type", event.Type).Info("ignoring stripe event")
		return nil
	}
}

func (s *Service) handleCheckoutCompleted(ctx context.Context, event *stripeclient.Event) error {
	var session stripeclient.CheckoutSession
	if err := json.Unmarshal(event.Data.Object, &session); err != nil {
		return fmt.Errorf("decoding checkout session: %w", err)
	}

	userID, err := strconv.Atoi(session.ClientReferenceID)
	if err != nil {
		return fmt.Errorf("checkout session %s has no usable client_reference_id: %w", session.ID, err)
	}

	// The checkout payload does not carry the price, fetch the live
	// subscription to resolve the plan.
	stripeSub, err := s.stripe.GetSubscription(ctx, session.Subscription)
	if err != nil {
		return fmt.Errorf("fetching subscription %s: %w", session.Subscription, err)
	}

	periodEnd := time.Unix(stripeSub.CurrentPeriodEnd, 0)

	_, err = s.subscriptionRepo.UpsertSubscription(&domain.Subscription{
		UserID:               userID,
		Plan:                 s.planFromPrice(stripeSub.PriceID()),
		Status:               subscriptionStatusFromStripe(stripeSub.Status),
		StripeCustomerID:     &session.Customer,
		StripeSubscriptionID: &session.Subscription,
		CurrentPeriodEnd:     &periodEnd,
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"plan":    s.planFromPrice(stripeSub.PriceID()),
	}).Info("subscription activated from checkout")

	return nil
}

func (s *Service) handleSubscriptionUpdated(event *stripeclient.Event) error {
	var object stripeclient.SubscriptionObject
	if err := json.Unmarshal(event.Data.Object, &object); err != nil {
		return fmt.Errorf("decoding subscription object: %w", err)
	}

	subscription, err := s.subscriptionRepo.GetSubscriptionByStripeID(object.ID)
	if err != nil {
		return err
	}
	if subscription == nil {
		logrus.WithField("stripe_subscription_id", object.ID).Warn("update for unknown subscription, skipping")
		return nil
	}

	subscription.Status = subscriptionStatusFromStripe(object.Status)
	if len(object.Items.Data) > 0 {
		subscription.Plan = s.planFromPrice(object.Items.Data[0].Price.ID)
	}
	periodEnd := time.Unix(object.CurrentPeriodEnd, 0)
	subscription.CurrentPeriodEnd = &periodEnd

	_, err = s.subscriptionRepo.UpsertSubscription(subscription)
	return err
}

func (s *Service) handleSubscriptionDeleted(event *stripeclient.Event) error {
	var object stripeclient.SubscriptionObject
	if err := json.Unmarshal(event.Data.Object, &object); err != nil {
		return fmt.Errorf("decoding subscription object: %w", err)
	}

	subscription, err := s.subscriptionRepo.GetSubscriptionByStripeID(object.ID)
	if err != nil {
		return err
	}
	if subscription == nil {
		return nil
	}

	return s.subscriptionRepo.UpdateStatus(subscription.ID, domain.SubscriptionStatusCanceled, nil)
}

func (s *Service) handlePaymentFailed(event *stripeclient.Event) error {
	var invoice stripeclient.InvoiceObject
	if err := json.Unmarshal(event.Data.Object, &invoice); err != nil {
		return fmt.Errorf("decoding invoice object: %w", err)
	}

	if invoice.Subscription == "" {
		return nil
	}

	subscription, err := s.subscriptionRepo.GetSubscriptionByStripeID(invoice.Subscription)
	if err != nil {
		return err
	}
	if subscription == nil {
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"user_id":         subscription.UserID,
		"subscription_id": subscription.ID,
	}).Warn("payment failed, subscription past due")

	return s.subscriptionRepo.UpdateStatus(subscription.ID, domain.SubscriptionStatusPastDue, nil)
}

func (s *Service) planFromPrice(priceID string) domain.Plan {
	switch priceID {
	case s.cfg.Stripe.PricePro:
		return domain.PlanPro
	case s.cfg.Stripe.PriceStarter:
		return domain.PlanStarter
	default:
		return domain.PlanFree
	}
}

func subscriptionStatusFromStripe(status string) domain.SubscriptionStatus {
	switch status {
	case "active", "trialing":
		return domain.SubscriptionStatusActive
	case "past_due", "unpaid", "incomplete":
		return domain.SubscriptionStatusPastDue
	default:
		return domain.SubscriptionStatusCanceled
	}
}

package billing

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/postpilot/postpilot-api/infrastructure/integrator/stripeclient"
	stripemocks "github.com/postpilot/postpilot-api/infrastructure/integrator/stripeclient/mocks"
	"github.com/postpilot/postpilot-api/infrastructure/repository/mocks"
	"github.com/postpilot/postpilot-api/internal/config"
	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newBillingService(ctrl *gomock.Controller) (*Service, *mocks.MockSubscriptionRepository, *mocks.MockUsageMetricsRepository, *stripemocks.MockClient) {
	subscriptionRepo := mocks.NewMockSubscriptionRepository(ctrl)
	usageRepo := mocks.NewMockUsageMetricsRepository(ctrl)
	stripe := stripemocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Stripe.PriceStarter = "price_starter_123"
	cfg.Stripe.PricePro = "price_pro_123"

	service := &Service{
		subscriptionRepo: subscriptionRepo,
		usageRepo:        usageRepo,
		stripe:           stripe,
		cfg:              cfg,
	}

	return service, subscriptionRepo, usageRepo, stripe
}

func TestCheckAllowance(t *testing.T) {
	month := domain.UsageMonth(time.Now())
	starterLimits := domain.LimitsByPlan[domain.PlanStarter]

	tests := []struct {
		name     string
		kind     domain.UsageMetricKind
		setup    func(subs *mocks.MockSubscriptionRepository, usage *mocks.MockUsageMetricsRepository)
		validate func(t *testing.T, err error)
	}{
		{
			name: "generation under the limit is allowed",
			kind: domain.UsageMetricGenerations,
			setup: func(subs *mocks.MockSubscriptionRepository, usage *mocks.MockUsageMetricsRepository) {
				subs.EXPECT().GetSubscriptionByUserID(7).Return(&domain.Subscription{
					Plan:   domain.PlanStarter,
					Status: domain.SubscriptionStatusActive,
				}, nil)
				usage.EXPECT().GetUsageCount("BRD001", domain.UsageMetricGenerations, month).
					Return(starterLimits.MonthlyGenerations-1, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "generation at the limit is blocked",
			kind: domain.UsageMetricGenerations,
			setup: func(subs *mocks.MockSubscriptionRepository, usage *mocks.MockUsageMetricsRepository) {
				subs.EXPECT().GetSubscriptionByUserID(7).Return(&domain.Subscription{
					Plan:   domain.PlanStarter,
					Status: domain.SubscriptionStatusActive,
				}, nil)
				usage.EXPECT().GetUsageCount("BRD001", domain.UsageMetricGenerations, month).
					Return(starterLimits.MonthlyGenerations, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrPlanLimitReached)
			},
		},
		{
			name: "user without a subscription gets free plan headroom",
			kind: domain.UsageMetricScheduledPosts,
			setup: func(subs *mocks.MockSubscriptionRepository, usage *mocks.MockUsageMetricsRepository) {
				subs.EXPECT().GetSubscriptionByUserID(7).Return(nil, nil)
				usage.EXPECT().GetUsageCount("BRD001", domain.UsageMetricScheduledPosts, month).
					Return(domain.LimitsByPlan[domain.PlanFree].ScheduledPosts, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrPlanLimitReached)
			},
		},
		{
			name: "canceled subscription is limited like free",
			kind: domain.UsageMetricResponses,
			setup: func(subs *mocks.MockSubscriptionRepository, usage *mocks.MockUsageMetricsRepository) {
				subs.EXPECT().GetSubscriptionByUserID(7).Return(&domain.Subscription{
					Plan:   domain.PlanPro,
					Status: domain.SubscriptionStatusCanceled,
				}, nil)
				usage.EXPECT().GetUsageCount("BRD001", domain.UsageMetricResponses, month).
					Return(domain.LimitsByPlan[domain.PlanFree].MonthlyGenerations, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrPlanLimitReached)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, subscriptionRepo, usageRepo, _ := newBillingService(ctrl)
			tt.setup(subscriptionRepo, usageRepo)

			tt.validate(t, service.CheckAllowance(7, "BRD001", tt.kind))
		})
	}
}

func TestHandleStripeEvent_CheckoutCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, subscriptionRepo, _, stripe := newBillingService(ctrl)

	event := &stripeclient.Event{
		ID:   "evt_checkout_1",
		Type: stripeclient.EventCheckoutCompleted,
	}
	event.Data.Object = []byte(`{
		"id": "cs_test_1",
		"customer": "cus_42",
		"subscription": "sub_42",
		"client_reference_id": "7"
	}`)

	periodEnd := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	var stripeSub stripeclient.Subscription
	assert.NoError(t, json.Unmarshal([]byte(`{
		"id": "sub_42",
		"customer": "cus_42",
		"status": "active",
		"current_period_end": `+strconv.FormatInt(periodEnd.Unix(), 10)+`,
		"items": {"data": [{"price": {"id": "price_pro_123"}}]}
	}`), &stripeSub))

	stripe.EXPECT().GetSubscription(gomock.Any(), "sub_42").Return(&stripeSub, nil)
	subscriptionRepo.EXPECT().UpsertSubscription(gomock.Any()).DoAndReturn(func(sub *domain.Subscription) (*domain.Subscription, error) {
		assert.Equal(t, 7, sub.UserID)
		assert.Equal(t, domain.PlanPro, sub.Plan)
		assert.Equal(t, domain.SubscriptionStatusActive, sub.Status)
		assert.Equal(t, "cus_42", *sub.StripeCustomerID)
		assert.Equal(t, "sub_42", *sub.StripeSubscriptionID)
		assert.Equal(t, periodEnd.Unix(), sub.CurrentPeriodEnd.Unix())
		return sub, nil
	})

	assert.NoError(t, service.HandleStripeEvent(context.Background(), event))
}

func TestHandleStripeEvent_SubscriptionDeleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, subscriptionRepo, _, _ := newBillingService(ctrl)

	event := &stripeclient.Event{
		ID:   "evt_deleted_1",
		Type: stripeclient.EventSubscriptionDeleted,
	}
	event.Data.Object = []byte(`{"id": "sub_42", "status": "canceled"}`)

	subscriptionRepo.EXPECT().GetSubscriptionByStripeID("sub_42").Return(&domain.Subscription{
		ID:     "SUB001",
		UserID: 7,
		Plan:   domain.PlanPro,
		Status: domain.SubscriptionStatusActive,
	}, nil)
	subscriptionRepo.EXPECT().UpdateStatus("SUB001", domain.SubscriptionStatusCanceled, nil).Return(nil)

	assert.NoError(t, service.HandleStripeEvent(context.Background(), event))
}

func TestHandleStripeEvent_PaymentFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, subscriptionRepo, _, _ := newBillingService(ctrl)

	event := &stripeclient.Event{
		ID:   "evt_invoice_1",
		Type: stripeclient.EventInvoicePaymentFail,
	}
	event.Data.Object = []byte(`{"id": "in_1", "subscription": "sub_42"}`)

	subscriptionRepo.EXPECT().GetSubscriptionByStripeID("sub_42").Return(&domain.Subscription{
		ID:     "SUB001",
		UserID: 7,
		Status: domain.SubscriptionStatusActive,
	}, nil)
	subscriptionRepo.EXPECT().UpdateStatus("SUB001", domain.SubscriptionStatusPastDue, nil).Return(nil)

	assert.NoError(t, service.HandleStripeEvent(context.Background(), event))
}

func TestHandleStripeEvent_IgnoresUnknownTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _ := newBillingService(ctrl)

	event := &stripeclient.Event{ID: "evt_other_1", Type: "charge.refunded"}

	assert.NoError(t, service.HandleStripeEvent(context.Background(), event))
}

package engaging

import (
	"context"
	"testing"

	"github.com/postpilot/postpilot-api/infrastructure/integrator/llm"
	llmmocks "github.com/postpilot/postpilot-api/infrastructure/integrator/llm/mocks"
	platformmocks "github.com/postpilot/postpilot-api/infrastructure/integrator/platform/mocks"
	"github.com/postpilot/postpilot-api/infrastructure/repository/mocks"
	"github.com/postpilot/postpilot-api/internal/domain"
	billingmocks "github.com/postpilot/postpilot-api/internal/usecases/billing/mocks"
	brandingmocks "github.com/postpilot/postpilot-api/internal/usecases/branding/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type engagingMocks struct {
	engagementRepo    *mocks.MockEngagementRepository
	socialAccountRepo *mocks.MockSocialAccountRepository
	brander           *brandingmocks.MockBrander
	biller            *billingmocks.MockBiller
	generator         *llmmocks.MockGenerator
	publisher         *platformmocks.MockClient
}

func newEngagingService(ctrl *gomock.Controller) (*Service, *engagingMocks) {
	m := &engagingMocks{
		engagementRepo:    mocks.NewMockEngagementRepository(ctrl),
		socialAccountRepo: mocks.NewMockSocialAccountRepository(ctrl),
		brander:           brandingmocks.NewMockBrander(ctrl),
		biller:            billingmocks.NewMockBiller(ctrl),
		generator:         llmmocks.NewMockGenerator(ctrl),
		publisher:         platformmocks.NewMockClient(ctrl),
	}

	service := &Service{
		engagementRepo:    m.engagementRepo,
		socialAccountRepo: m.socialAccountRepo,
		brander:           m.brander,
		biller:            m.biller,
		generator:         m.generator,
		publisher:         m.publisher,
	}

	return service, m
}

func TestGenerateResponse(t *testing.T) {
	brand := &domain.Brand{ID: "BRD001", OwnerID: 7, Name: "Acme Coffee"}
	item := &domain.EngagementItem{
		ID:         "ENG001",
		BrandID:    "BRD001",
		Platform:   domain.PlatformInstagram,
		ExternalID: "ig_c_1",
		Content:    "do you ship to Portugal?",
		Status:     domain.EngagementStatusPending,
	}

	tests := []struct {
		name     string
		setup    func(m *engagingMocks)
		validate func(t *testing.T, response *domain.GeneratedResponse, err error)
	}{
		{
			name: "drafts a pending response and consumes usage",
			setup: func(m *engagingMocks) {
				m.engagementRepo.EXPECT().GetEngagementItemByID("ENG001").Return(item, nil)
				m.brander.EXPECT().GetBrand(7, "BRD001").Return(brand, nil)
				m.biller.EXPECT().CheckAllowance(7, "BRD001", domain.UsageMetricResponses).Return(nil)
				m.engagementRepo.EXPECT().GetPendingResponseByItem("ENG001").Return(nil, nil)
				m.generator.EXPECT().DraftReply(gomock.Any(), brand, item).Return("Yes, we ship EU-wide!", nil)
				m.engagementRepo.EXPECT().CreateGeneratedResponse(gomock.Any()).DoAndReturn(func(r *domain.GeneratedResponse) (*domain.GeneratedResponse, error) {
					assert.Equal(t, "ENG001", r.EngagementItemID)
					assert.Equal(t, "BRD001", r.BrandID)
					assert.Equal(t, "Yes, we ship EU-wide!", r.Content)
					assert.Equal(t, domain.GeneratedResponseStatusPending, r.Status)
					r.ID = "RSP001"
					return r, nil
				})
				m.engagementRepo.EXPECT().UpdateEngagementStatus("ENG001", domain.EngagementStatusDrafted).Return(nil)
				m.biller.EXPECT().ConsumeUsage("BRD001", domain.UsageMetricResponses).Return(nil)
			},
			validate: func(t *testing.T, response *domain.GeneratedResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "RSP001", response.ID)
				assert.Equal(t, domain.GeneratedResponseStatusPending, response.Status)
			},
		},
		{
			name: "spam item never reaches the model",
			setup: func(m *engagingMocks) {
				spamItem := &domain.EngagementItem{ID: "ENG001", BrandID: "BRD001", IsSpam: true}
				m.engagementRepo.EXPECT().GetEngagementItemByID("ENG001").Return(spamItem, nil)
				m.brander.EXPECT().GetBrand(7, "BRD001").Return(brand, nil)
			},
			validate: func(t *testing.T, response *domain.GeneratedResponse, err error) {
				assert.ErrorIs(t, err, ErrItemIsSpam)
				assert.Nil(t, response)
			},
		},
		{
			name: "existing pending draft is reused without a new generation",
			setup: func(m *engagingMocks) {
				existing := &domain.GeneratedResponse{
					ID:               "RSP001",
					EngagementItemID: "ENG001",
					Status:           domain.GeneratedResponseStatusPending,
				}
				m.engagementRepo.EXPECT().GetEngagementItemByID("ENG001").Return(item, nil)
				m.brander.EXPECT().GetBrand(7, "BRD001").Return(brand, nil)
				m.biller.EXPECT().CheckAllowance(7, "BRD001", domain.UsageMetricResponses).Return(nil)
				m.engagementRepo.EXPECT().GetPendingResponseByItem("ENG001").Return(existing, nil)
			},
			validate: func(t *testing.T, response *domain.GeneratedResponse, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "RSP001", response.ID)
			},
		},
		{
			name: "item owned by another user looks like a missing item",
			setup: func(m *engagingMocks) {
				m.engagementRepo.EXPECT().GetEngagementItemByID("ENG001").Return(item, nil)
				m.brander.EXPECT().GetBrand(7, "BRD001").Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, response *domain.GeneratedResponse, err error) {
				assert.ErrorIs(t, err, ErrItemNotFound)
				assert.Nil(t, response)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newEngagingService(ctrl)
			tt.setup(m)

			response, err := service.GenerateResponse(context.Background(), 7, "ENG001")
			tt.validate(t, response, err)
		})
	}
}

func TestApproveResponse(t *testing.T) {
	brand := &domain.Brand{ID: "BRD001", OwnerID: 7}
	pendingResponse := func() *domain.GeneratedResponse {
		return &domain.GeneratedResponse{
			ID:               "RSP001",
			EngagementItemID: "ENG001",
			BrandID:          "BRD001",
			Content:          "Thanks for the kind words!",
			Status:           domain.GeneratedResponseStatusPending,
		}
	}
	item := &domain.EngagementItem{
		ID:         "ENG001",
		BrandID:    "BRD001",
		Platform:   domain.PlatformInstagram,
		ExternalID: "ig_c_1",
	}
	connectedAccount := &domain.SocialAccount{
		ID:       "ACC001",
		BrandID:  "BRD001",
		Platform: domain.PlatformInstagram,
		Status:   domain.SocialAccountStatusConnected,
	}

	t.Run("approval sends the reply and closes the draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newEngagingService(ctrl)
		response := pendingResponse()

		m.engagementRepo.EXPECT().GetGeneratedResponseByID("RSP001").Return(response, nil)
		m.brander.EXPECT().GetBrand(7, "BRD001").Return(brand, nil)
		m.engagementRepo.EXPECT().GetEngagementItemByID("ENG001").Return(item, nil)
		m.socialAccountRepo.EXPECT().ListSocialAccountsByBrand("BRD001").Return([]*domain.SocialAccount{connectedAccount}, nil)
		m.publisher.EXPECT().SendReply(gomock.Any(), connectedAccount, "ig_c_1", "Thanks for the kind words!").Return(nil)
		m.engagementRepo.EXPECT().UpdateGeneratedResponse(response).Return(nil)
		m.engagementRepo.EXPECT().UpdateEngagementStatus("ENG001", domain.EngagementStatusResponded).Return(nil)

		result, err := service.ApproveResponse(context.Background(), 7, &ApproveRequest{ResponseID: "RSP001", Approve: true})

		assert.NoError(t, err)
		assert.Equal(t, domain.GeneratedResponseStatusSent, result.Status)
		assert.Equal(t, 7, *result.ApprovedBy)
		assert.NotNil(t, result.SentAt)
	})

	t.Run("edited content overrides the drafted text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newEngagingService(ctrl)
		response := pendingResponse()
		edited := "Thank you! New drops every Friday."

		m.engagementRepo.EXPECT().GetGeneratedResponseByID("RSP001").Return(response, nil)
		m.brander.EXPECT().GetBrand(7, "BRD001").Return(brand, nil)
		m.engagementRepo.EXPECT().GetEngagementItemByID("ENG001").Return(item, nil)
		m.socialAccountRepo.EXPECT().ListSocialAccountsByBrand("BRD001").Return([]*domain.SocialAccount{connectedAccount}, nil)
		m.publisher.EXPECT().SendReply(gomock.Any(), connectedAccount, "ig_c_1", edited).Return(nil)
		m.engagementRepo.EXPECT().UpdateGeneratedResponse(response).Return(nil)
		m.engagementRepo.EXPECT().UpdateEngagementStatus("ENG001", domain.EngagementStatusResponded).Return(nil)

		result, err := service.ApproveResponse(context.Background(), 7, &ApproveRequest{
			ResponseID:    "RSP001",
			Approve:       true,
			EditedContent: &edited,
		})

		assert.NoError(t, err)
		assert.Equal(t, edited, *result.EditedContent)
	})

	t.Run("rejection closes the draft without sending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newEngagingService(ctrl)
		response := pendingResponse()

		m.engagementRepo.EXPECT().GetGeneratedResponseByID("RSP001").Return(response, nil)
		m.brander.EXPECT().GetBrand(7, "BRD001").Return(brand, nil)
		m.engagementRepo.EXPECT().GetEngagementItemByID("ENG001").Return(item, nil)
		m.engagementRepo.EXPECT().UpdateGeneratedResponse(response).Return(nil)

		result, err := service.ApproveResponse(context.Background(), 7, &ApproveRequest{ResponseID: "RSP001", Approve: false})

		assert.NoError(t, err)
		assert.Equal(t, domain.GeneratedResponseStatusRejected, result.Status)
		assert.Equal(t, 7, *result.ApprovedBy)
		assert.Nil(t, result.SentAt)
	})

	t.Run("already resolved draft cannot be approved again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newEngagingService(ctrl)
		response := pendingResponse()
		response.Status = domain.GeneratedResponseStatusSent

		m.engagementRepo.EXPECT().GetGeneratedResponseByID("RSP001").Return(response, nil)
		m.brander.EXPECT().GetBrand(7, "BRD001").Return(brand, nil)

		_, err := service.ApproveResponse(context.Background(), 7, &ApproveRequest{ResponseID: "RSP001", Approve: true})

		assert.ErrorIs(t, err, ErrAlreadyResolved)
	})

	t.Run("missing response returns not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newEngagingService(ctrl)

		m.engagementRepo.EXPECT().GetGeneratedResponseByID("RSP404").Return(nil, nil)

		_, err := service.ApproveResponse(context.Background(), 7, &ApproveRequest{ResponseID: "RSP404", Approve: true})

		assert.ErrorIs(t, err, ErrResponseNotFound)
	})
}

func TestIngestItem_MarksSpamIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newEngagingService(ctrl)

	item := &domain.EngagementItem{
		BrandID:    "BRD001",
		Platform:   domain.PlatformX,
		ExternalID: "x_c_9",
		Content:    "win FREE followers www.a.io www.b.io www.c.io www.d.io",
		Intent:     domain.IntentSpam,
	}

	m.engagementRepo.EXPECT().InsertEngagementItem(item).Return(true, nil)

	stored, inserted, err := service.IngestItem(context.Background(), item)

	assert.NoError(t, err)
	assert.True(t, inserted)
	assert.True(t, stored.IsSpam)
	assert.Equal(t, domain.EngagementStatusIgnored, stored.Status)
	assert.False(t, stored.ReceivedAt.IsZero())
}

func TestIngestItem_DuplicateIsNotReinserted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newEngagingService(ctrl)

	item := &domain.EngagementItem{
		BrandID:    "BRD001",
		Platform:   domain.PlatformX,
		ExternalID: "x_c_9",
		Content:    "loving the new roast, when is the next drop?",
	}

	m.generator.EXPECT().ClassifyEngagement(gomock.Any(), item.Content).Return(&llm.Classification{
		Sentiment: domain.SentimentPositive,
		Intent:    domain.IntentQuestion,
	}, nil)
	m.engagementRepo.EXPECT().InsertEngagementItem(item).Return(false, nil)

	_, inserted, err := service.IngestItem(context.Background(), item)

	assert.NoError(t, err)
	assert.False(t, inserted)
}

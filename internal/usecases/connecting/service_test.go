package connecting

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/postpilot/postpilot-api/infrastructure/integrator/platform"
	platformmocks "github.com/postpilot/postpilot-api/infrastructure/integrator/platform/mocks"
	"github.com/postpilot/postpilot-api/infrastructure/repository/mocks"
	"github.com/postpilot/postpilot-api/internal/config"
	"github.com/postpilot/postpilot-api/internal/domain"
	billingmocks "github.com/postpilot/postpilot-api/internal/usecases/billing/mocks"
	brandingmocks "github.com/postpilot/postpilot-api/internal/usecases/branding/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newConnectingService(ctrl *gomock.Controller) (*Service, *mocks.MockSocialAccountRepository, *brandingmocks.MockBrander, *billingmocks.MockBiller, *platformmocks.MockClient) {
	socialAccountRepo := mocks.NewMockSocialAccountRepository(ctrl)
	brander := brandingmocks.NewMockBrander(ctrl)
	biller := billingmocks.NewMockBiller(ctrl)
	client := platformmocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Auth.SecretKey = "test-secret-key"

	service := &Service{
		socialAccountRepo: socialAccountRepo,
		brander:           brander,
		biller:            biller,
		client:            client,
		cfg:               cfg,
	}

	return service, socialAccountRepo, brander, biller, client
}

func TestStateRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _ := newConnectingService(ctrl)

	state, err := service.signState("BRD001", domain.PlatformInstagram)
	assert.NoError(t, err)

	brandID, err := service.verifyState(state, domain.PlatformInstagram)
	assert.NoError(t, err)
	assert.Equal(t, "BRD001", brandID)
}

func TestVerifyState_RejectsPlatformMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _ := newConnectingService(ctrl)

	state, err := service.signState("BRD001", domain.PlatformInstagram)
	assert.NoError(t, err)

	_, err = service.verifyState(state, domain.PlatformLinkedin)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestVerifyState_RejectsExpiredState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _ := newConnectingService(ctrl)

	claims := stateClaims{
		BrandID:  "BRD001",
		Platform: string(domain.PlatformInstagram),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	state, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(service.cfg.Auth.SecretKey))
	assert.NoError(t, err)

	_, err = service.verifyState(state, domain.PlatformInstagram)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestVerifyState_RejectsForeignSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _ := newConnectingService(ctrl)

	claims := stateClaims{
		BrandID:  "BRD001",
		Platform: string(domain.PlatformInstagram),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(stateTTL)),
		},
	}
	state, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another-secret"))
	assert.NoError(t, err)

	_, err = service.verifyState(state, domain.PlatformInstagram)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestStartConnect(t *testing.T) {
	brand := &domain.Brand{ID: "BRD001", OwnerID: 7}
	starterLimits := domain.LimitsByPlan[domain.PlanStarter]

	tests := []struct {
		name     string
		platform domain.Platform
		setup    func(socialAccountRepo *mocks.MockSocialAccountRepository, brander *brandingmocks.MockBrander, biller *billingmocks.MockBiller, client *platformmocks.MockClient)
		validate func(t *testing.T, url string, err error)
	}{
		{
			name:     "returns the authorize url when the plan has headroom",
			platform: domain.PlatformInstagram,
			setup: func(socialAccountRepo *mocks.MockSocialAccountRepository, brander *brandingmocks.MockBrander, biller *billingmocks.MockBiller, client *platformmocks.MockClient) {
				brander.EXPECT().GetBrand(7, "BRD001").Return(brand, nil)
				biller.EXPECT().LimitsForUser(7).Return(domain.PlanStarter, starterLimits, nil)
				socialAccountRepo.EXPECT().CountByBrand("BRD001").Return(starterLimits.ConnectedAccounts-1, nil)
				client.EXPECT().AuthorizeURL(domain.PlatformInstagram, gomock.Any()).
					Return("https://instagram.test/oauth/authorize?state=abc", nil)
			},
			validate: func(t *testing.T, url string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "https://instagram.test/oauth/authorize?state=abc", url)
			},
		},
		{
			name:     "blocks connecting past the plan's account limit",
			platform: domain.PlatformInstagram,
			setup: func(socialAccountRepo *mocks.MockSocialAccountRepository, brander *brandingmocks.MockBrander, biller *billingmocks.MockBiller, client *platformmocks.MockClient) {
				brander.EXPECT().GetBrand(7, "BRD001").Return(brand, nil)
				biller.EXPECT().LimitsForUser(7).Return(domain.PlanStarter, starterLimits, nil)
				socialAccountRepo.EXPECT().CountByBrand("BRD001").Return(starterLimits.ConnectedAccounts, nil)
			},
			validate: func(t *testing.T, url string, err error) {
				assert.ErrorIs(t, err, ErrAccountLimit)
				assert.Empty(t, url)
			},
		},
		{
			name:     "rejects an unsupported platform before any lookup",
			platform: domain.Platform("myspace"),
			setup: func(socialAccountRepo *mocks.MockSocialAccountRepository, brander *brandingmocks.MockBrander, biller *billingmocks.MockBiller, client *platformmocks.MockClient) {
			},
			validate: func(t *testing.T, url string, err error) {
				assert.ErrorIs(t, err, ErrInvalidPlatform)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, socialAccountRepo, brander, biller, client := newConnectingService(ctrl)
			tt.setup(socialAccountRepo, brander, biller, client)

			url, err := service.StartConnect(7, "BRD001", tt.platform)
			tt.validate(t, url, err)
		})
	}
}

func TestCompleteConnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, socialAccountRepo, _, _, client := newConnectingService(ctrl)

	state, err := service.signState("BRD001", domain.PlatformInstagram)
	assert.NoError(t, err)

	client.EXPECT().ExchangeCode(gomock.Any(), domain.PlatformInstagram, "auth-code-1").Return(&platform.TokenResponse{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresIn:    3600,
	}, nil)
	client.EXPECT().FetchProfile(gomock.Any(), domain.PlatformInstagram, "access-1").Return(&platform.Profile{
		ExternalID: "ig_12345",
		Username:   "acmecoffee",
	}, nil)
	socialAccountRepo.EXPECT().UpsertSocialAccount(gomock.Any()).DoAndReturn(func(account *domain.SocialAccount) (*domain.SocialAccount, error) {
		assert.Equal(t, "BRD001", account.BrandID)
		assert.Equal(t, domain.PlatformInstagram, account.Platform)
		assert.Equal(t, "ig_12345", account.ExternalID)
		assert.Equal(t, "acmecoffee", account.Username)
		assert.Equal(t, "access-1", account.AccessToken)
		assert.Equal(t, domain.SocialAccountStatusConnected, account.Status)
		assert.NotNil(t, account.TokenExpiresAt)
		account.ID = "ACC001"
		return account, nil
	})

	account, err := service.CompleteConnect(context.Background(), domain.PlatformInstagram, state, "auth-code-1")

	assert.NoError(t, err)
	assert.Equal(t, "ACC001", account.ID)
}

func TestCompleteConnect_RequiresCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _ := newConnectingService(ctrl)

	_, err := service.CompleteConnect(context.Background(), domain.PlatformInstagram, "whatever", "")

	assert.ErrorIs(t, err, ErrMissingOAuthCode)
}

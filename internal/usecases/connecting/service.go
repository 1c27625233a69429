package connecting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/postpilot/postpilot-api/infrastructure/integrator/platform"
	"github.com/postpilot/postpilot-api/infrastructure/repository"
	"github.com/postpilot/postpilot-api/internal/config"
	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/postpilot/postpilot-api/internal/usecases/billing"
	"github.com/postpilot/postpilot-api/internal/usecases/branding"
	"github.com/sirupsen/logrus"
)

// stateTTL bounds how long an OAuth round-trip may take.
const stateTTL = 15 * time.Minute

var (
	ErrAccountNotFound  = errors.New("social account not found")
	ErrInvalidState     = errors.New("invalid or expired oauth state")
	ErrAccountLimit     = errors.New("connected account limit reached for plan")
	ErrInvalidPlatform  = errors.New("unsupported platform")
	ErrMissingOAuthCode = errors.New("authorization code is required")
)

type Connector interface {
	StartConnect(ownerID int, brandID string, p domain.Platform) (string, error)
	CompleteConnect(ctx context.Context, p domain.Platform, state, code string) (*domain.SocialAccount, error)
	ListAccounts(ownerID int, brandID string) ([]*domain.SocialAccount, error)
	DisconnectAccount(ownerID int, accountID string) error
}

// stateClaims is the signed OAuth state: it pins the callback to the
// brand that started the flow.
type stateClaims struct {
	BrandID  string `json:"brand_id"`
	Platform string `json:"platform"`
	jwt.RegisteredClaims
}

type Service struct {
	socialAccountRepo repository.SocialAccountRepository
	brander           branding.Brander
	biller            billing.Biller
	client            platform.Client
	cfg               *config.Config
}

func NewService(
	socialAccountRepo repository.SocialAccountRepository,
	brander branding.Brander,
	biller billing.Biller,
	client platform.Client,
	cfg *config.Config,
) Connector {
	return &Service{
		socialAccountRepo: socialAccountRepo,
		brander:           brander,
		biller:            biller,
		client:            client,
		cfg:               cfg,
	}
}

// StartConnect validates ownership and the plan's account allowance,
// then returns the platform authorize URL the frontend redirects to.
func (s *Service) StartConnect(ownerID int, brandID string, p domain.Platform) (string, error) {
	if !p.Valid() {
		return "", ErrInvalidPlatform
	}

	brand, err := s.brander.GetBrand(ownerID, brandID)
	if err != nil {
		return "", err
	}

	_, limits, err := s.biller.LimitsForUser(ownerID)
	if err != nil {
		return "", err
	}

	connected, err := s.socialAccountRepo.CountByBrand(brand.ID)
	if err != nil {
		return "", err
	}
	if connected >= limits.ConnectedAccounts {
		return "", fmt.Errorf("%w (%d/%d)", ErrAccountLimit, connected, limits.ConnectedAccounts)
	}

	state, err := s.signState(brand.ID, p)
	if err != nil {
		return "", err
	}

	return s.client.AuthorizeURL(p, state)
}

// CompleteConnect finishes the OAuth callback: verifies state, trades
// the code for tokens and upserts the account.
func (s *Service) CompleteConnect(ctx context.Context, p domain.Platform, state, code string) (*domain.SocialAccount, error) {
	if !p.Valid() {
		return nil, ErrInvalidPlatform
	}
	if code == "" {
		return nil, ErrMissingOAuthCode
	}

	brandID, err := s.verifyState(state, p)
	if err != nil {
		return nil, err
	}

	token, err := s.client.ExchangeCode(ctx, p, code)
	if err != nil {
		return nil, err
	}

	profile, err := s.client.FetchProfile(ctx, p, token.AccessToken)
	if err != nil {
		return nil, err
	}

	var expiresAt *time.Time
	if token.ExpiresIn > 0 {
		t := time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
		expiresAt = &t
	}

	account, err := s.socialAccountRepo.UpsertSocialAccount(&domain.SocialAccount{
		BrandID:        brandID,
		Platform:       p,
		ExternalID:     profile.ExternalID,
		Username:       profile.Username,
		AccessToken:    token.AccessToken,
		RefreshToken:   token.RefreshToken,
		TokenExpiresAt: expiresAt,
		Status:         domain.SocialAccountStatusConnected,
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"brand_id": brandID,
		"platform": p,
		"username": profile.Username,
	}).Info("social account connected")

	return account, nil
}

func (s *Service) ListAccounts(ownerID int, brandID string) ([]*domain.SocialAccount, error) {
	if _, err := s.brander.GetBrand(ownerID, brandID); err != nil {
		return nil, err
	}

	return s.socialAccountRepo.ListSocialAccountsByBrand(brandID)
}

func (s *Service) DisconnectAccount(ownerID int, accountID string) error {
	account, err := s.socialAccountRepo.GetSocialAccountByID(accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}

	if _, err := s.brander.GetBrand(ownerID, account.BrandID); err != nil {
		return ErrAccountNotFound
	}

	return s.socialAccountRepo.DeleteSocialAccount(accountID)
}

func (s *Service) signState(brandID string, p domain.Platform) (string, error) {
	claims := stateClaims{
		BrandID:  brandID,
		Platform: string(p),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(stateTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.SecretKey))
}

func (s *Service) verifyState(state string, p domain.Platform) (string, error) {
	token, err := jwt.ParseWithClaims(state, &stateClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.SecretKey), nil
	})
	if err != nil {
		return "", ErrInvalidState
	}

	claims, ok := token.Claims.(*stateClaims)
	if !ok || !token.Valid || claims.Platform != string(p) {
		return "", ErrInvalidState
	}

	return claims.BrandID, nil
}

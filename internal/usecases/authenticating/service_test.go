package authenticating

import (
	"testing"

	"github.com/postpilot/postpilot-api/infrastructure/repository/mocks"
	"github.com/postpilot/postpilot-api/internal/config"
	"github.com/postpilot/postpilot-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(ctrl *gomock.Controller) (*Service, *mocks.MockUserRepository) {
	userRepo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{}
	cfg.Auth.SecretKey = "test-secret-key"

	return &Service{userRepo: userRepo, cfg: cfg}, userRepo
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{
			name:     "mixed case with number is accepted",
			password: "Sup3rSecret",
			valid:    true,
		},
		{
			name:     "too short is rejected",
			password: "Ab1",
			valid:    false,
		},
		{
			name:     "missing uppercase is rejected",
			password: "lowercase1",
			valid:    false,
		},
		{
			name:     "missing lowercase is rejected",
			password: "UPPERCASE1",
			valid:    false,
		},
		{
			name:     "missing number is rejected",
			password: "NoNumbersHere",
			valid:    false,
		},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	service, _ := newAuthService(ctrl)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)

			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLoginUser(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Sup3rSecret"), bcrypt.MinCost)
	assert.NoError(t, err)

	activeUser := func() *domain.User {
		return &domain.User{
			ID:           7,
			Name:         "Marina",
			Email:        "marina@acme.io",
			PasswordHash: string(hash),
			RoleID:       3,
			Active:       true,
		}
	}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(userRepo *mocks.MockUserRepository)
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "valid credentials return a signed token",
			email:    "marina@acme.io",
			password: "Sup3rSecret",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("marina@acme.io").Return(activeUser(), nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "email is normalized before the lookup",
			email:    "  Marina@Acme.IO ",
			password: "Sup3rSecret",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("marina@acme.io").Return(activeUser(), nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "wrong password is rejected",
			email:    "marina@acme.io",
			password: "WrongPass1",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("marina@acme.io").Return(activeUser(), nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Empty(t, token)
			},
		},
		{
			name:     "unknown user is rejected",
			email:    "nobody@acme.io",
			password: "Sup3rSecret",
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("nobody@acme.io").Return(nil, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrUserNotFound)
				assert.Empty(t, token)
			},
		},
		{
			name:     "disabled account is rejected",
			email:    "marina@acme.io",
			password: "Sup3rSecret",
			setup: func(userRepo *mocks.MockUserRepository) {
				user := activeUser()
				user.Active = false
				userRepo.EXPECT().GetUserByEmail("marina@acme.io").Return(user, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrUserDisabled)
				assert.Empty(t, token)
			},
		},
		{
			name:     "missing credentials are rejected without a lookup",
			email:    "",
			password: "",
			setup:    func(userRepo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, token string, err error) {
				assert.Error(t, err)
				assert.Empty(t, token)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, userRepo := newAuthService(ctrl)
			tt.setup(userRepo)

			token, err := service.LoginUser(tt.email, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestLoginUser_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("Sup3rSecret"), bcrypt.MinCost)
	assert.NoError(t, err)

	service, userRepo := newAuthService(ctrl)
	userRepo.EXPECT().GetUserByEmail("marina@acme.io").Return(&domain.User{
		ID:           7,
		Name:         "Marina",
		Email:        "marina@acme.io",
		PasswordHash: string(hash),
		RoleID:       3,
		Active:       true,
	}, nil)

	token, err := service.LoginUser("marina@acme.io", "Sup3rSecret")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "marina@acme.io", claims.UserEmail)
	assert.Equal(t, 3, claims.UserRoleID)
}

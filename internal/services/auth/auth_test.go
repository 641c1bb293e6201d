package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	customjwt "github.com/magabrotheeeer/fitness-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/password"
	"github.com/magabrotheeeer/fitness-tracker/internal/models"
	services "github.com/magabrotheeeer/fitness-tracker/internal/services/auth"
	"github.com/magabrotheeeer/fitness-tracker/internal/storage/repository"
)

// Мок для UserRepository
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) RegisterUser(ctx context.Context, user models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserRepoMock) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newTestService(repo *UserRepoMock) *services.AuthService {
	maker := customjwt.NewJWTMaker("test_secret_key", 15*time.Minute)
	hasher := password.New(bcrypt.MinCost)
	return services.NewAuthService(repo, maker, hasher)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(r *UserRepoMock)
		wantID     int64
		wantErr    error
	}{
		{
			name: "successful registration",
			setupMocks: func(r *UserRepoMock) {
				r.On("RegisterUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
					return user.Email == "test@example.com" &&
						user.Username == "testuser" &&
						user.PasswordHash != "" &&
						user.PasswordHash != "password123"
				})).Return(int64(1), nil).Once()
			},
			wantID: 1,
		},
		{
			name: "duplicate username or email",
			setupMocks: func(r *UserRepoMock) {
				r.On("RegisterUser", mock.Anything, mock.Anything).
					Return(int64(0), repository.ErrAlreadyExists).Once()
			},
			wantErr: repository.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			tt.setupMocks(repo)
			svc := newTestService(repo)

			id, err := svc.Register(context.Background(), "test@example.com", "testuser", "password123")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hasher := password.New(bcrypt.MinCost)
	hash, err := hasher.Hash("password123")
	require.NoError(t, err)

	tests := []struct {
		name       string
		username   string
		password   string
		setupMocks func(r *UserRepoMock)
		wantErr    error
	}{
		{
			name:     "successful login",
			username: "testuser",
			password: "password123",
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByUsername", mock.Anything, "testuser").
					Return(&models.User{ID: 1, Username: "testuser", PasswordHash: hash}, nil).Once()
			},
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: "password123",
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByUsername", mock.Anything, "ghost").
					Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "testuser",
			password: "wrong_password",
			setupMocks: func(r *UserRepoMock) {
				r.On("GetUserByUsername", mock.Anything, "testuser").
					Return(&models.User{ID: 1, Username: "testuser", PasswordHash: hash}, nil).Once()
			},
			wantErr: services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			tt.setupMocks(repo)
			svc := newTestService(repo)

			token, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Authorize(t *testing.T) {
	repo := new(UserRepoMock)
	maker := customjwt.NewJWTMaker("test_secret_key", 15*time.Minute)
	hasher := password.New(bcrypt.MinCost)
	svc := services.NewAuthService(repo, maker, hasher)

	validToken, err := maker.GenerateToken("testuser")
	require.NoError(t, err)

	t.Run("valid token with known subject", func(t *testing.T) {
		repo.On("GetUserByUsername", mock.Anything, "testuser").
			Return(&models.User{ID: 1, Username: "testuser"}, nil).Once()

		user, err := svc.Authorize(context.Background(), validToken)
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("valid token with deleted subject", func(t *testing.T) {
		repo.On("GetUserByUsername", mock.Anything, "testuser").
			Return(nil, repository.ErrNotFound).Once()

		user, err := svc.Authorize(context.Background(), validToken)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, services.ErrUnknownSubject)
	})

	t.Run("malformed token", func(t *testing.T) {
		user, err := svc.Authorize(context.Background(), "not.a.token")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expiredMaker := customjwt.NewJWTMaker("test_secret_key", -time.Minute)
		expiredToken, err := expiredMaker.GenerateToken("testuser")
		require.NoError(t, err)

		user, err := svc.Authorize(context.Background(), expiredToken)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, services.ErrTokenExpired)
	})

	t.Run("token signed with other secret", func(t *testing.T) {
		otherMaker := customjwt.NewJWTMaker("other_secret_key", 15*time.Minute)
		otherToken, err := otherMaker.GenerateToken("testuser")
		require.NoError(t, err)

		user, err := svc.Authorize(context.Background(), otherToken)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	repo.AssertExpectations(t)
}

package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/eventlyhq/evently-backend/internal/domain"
	"github.com/eventlyhq/evently-backend/internal/domain/entity"
	"github.com/eventlyhq/evently-backend/internal/infrastructure/auth"
	"github.com/eventlyhq/evently-backend/internal/mocks"
	authUC "github.com/eventlyhq/evently-backend/internal/usecase/auth"
)

func newTestService(userRepo *mocks.MockUserRepository) *authUC.Service {
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	passwordHasher := auth.NewPasswordHasher(4)
	return authUC.NewService(userRepo, jwtSvc, passwordHasher)
}

func TestService_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		svc := newTestService(userRepo)

		ctx := context.Background()
		userRepo.EXPECT().ExistsByEmail(ctx, "alice@example.com").Return(false, nil)
		userRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		user, token, err := svc.Register(ctx, authUC.RegisterInput{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret",
		})

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "Alice", user.Name)
		assert.NotEmpty(t, token)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "secret", user.PasswordHash)
	})

	t.Run("stores a verifiable hash, never the plaintext", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		svc := newTestService(userRepo)

		ctx := context.Background()
		var stored *entity.User
		userRepo.EXPECT().ExistsByEmail(ctx, "alice@example.com").Return(false, nil)
		userRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u *entity.User) error {
				stored = u
				return nil
			})

		_, _, err := svc.Register(ctx, authUC.RegisterInput{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret",
		})

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")))
	})

	t.Run("email already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		svc := newTestService(userRepo)

		ctx := context.Background()
		userRepo.EXPECT().ExistsByEmail(ctx, "taken@example.com").Return(true, nil)

		user, token, err := svc.Register(ctx, authUC.RegisterInput{
			Name:     "Alice",
			Email:    "taken@example.com",
			Password: "secret",
		})

		assert.Nil(t, user)
		assert.Empty(t, token)
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})

	t.Run("duplicate caught by unique index after pre-check passes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		svc := newTestService(userRepo)

		ctx := context.Background()
		userRepo.EXPECT().ExistsByEmail(ctx, "raced@example.com").Return(false, nil)
		userRepo.EXPECT().Create(ctx, gomock.Any()).Return(domain.ErrUserAlreadyExists)

		_, _, err := svc.Register(ctx, authUC.RegisterInput{
			Name:     "Alice",
			Email:    "raced@example.com",
			Password: "secret",
		})

		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		svc := newTestService(userRepo)

		ctx := context.Background()
		userRepo.EXPECT().ExistsByEmail(ctx, "alice@example.com").Return(false, errors.New("connection refused"))

		_, _, err := svc.Register(ctx, authUC.RegisterInput{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "secret",
		})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestService_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		jwtSvc := auth.NewJWTService("test-secret", time.Hour)
		passwordHasher := auth.NewPasswordHasher(4)
		svc := authUC.NewService(userRepo, jwtSvc, passwordHasher)

		ctx := context.Background()
		hash, _ := passwordHasher.Hash("secret")
		user := entity.NewUser("Alice", "alice@example.com", hash)

		userRepo.EXPECT().GetByEmail(ctx, "alice@example.com").Return(user, nil)

		token, err := svc.Login(ctx, authUC.LoginInput{
			Email:    "alice@example.com",
			Password: "secret",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, token)

		userID, err := jwtSvc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, userID)
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		svc := newTestService(userRepo)

		ctx := context.Background()
		userRepo.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(nil, domain.ErrUserNotFound)

		token, err := svc.Login(ctx, authUC.LoginInput{
			Email:    "nobody@example.com",
			Password: "secret",
		})

		assert.Empty(t, token)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("wrong password yields the same error as unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		passwordHasher := auth.NewPasswordHasher(4)
		jwtSvc := auth.NewJWTService("test-secret", time.Hour)
		svc := authUC.NewService(userRepo, jwtSvc, passwordHasher)

		ctx := context.Background()
		hash, _ := passwordHasher.Hash("secret")
		user := entity.NewUser("Alice", "alice@example.com", hash)

		userRepo.EXPECT().GetByEmail(ctx, "alice@example.com").Return(user, nil)

		token, err := svc.Login(ctx, authUC.LoginInput{
			Email:    "alice@example.com",
			Password: "wrong",
		})

		assert.Empty(t, token)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

package auth

import (
	"context"
	"fmt"

	"github.com/eventlyhq/evently-backend/internal/adapter/repository"
	"github.com/eventlyhq/evently-backend/internal/domain"
	"github.com/eventlyhq/evently-backend/internal/domain/entity"
	"github.com/eventlyhq/evently-backend/internal/infrastructure/auth"
)

type Service struct {
	userRepo       repository.UserRepository
	jwtSvc         *auth.JWTService
	passwordHasher *auth.PasswordHasher
}

func NewService(
	userRepo repository.UserRepository,
	jwtSvc *auth.JWTService,
	passwordHasher *auth.PasswordHasher,
) *Service {
	return &Service{
		userRepo:       userRepo,
		jwtSvc:         jwtSvc,
		passwordHasher: passwordHasher,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates the user and signs them in. The existence pre-check
// keeps the common duplicate path cheap; the unique index on email catches
// concurrent registrations the check misses.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*entity.User, string, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", fmt.Errorf("checking email: %w", err)
	}
	if exists {
		return nil, "", domain.ErrUserAlreadyExists
	}

	hash, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	user := entity.NewUser(input.Name, input.Email, hash)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("creating user: %w", err)
	}

	token, _, err := s.jwtSvc.GenerateToken(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("generating token: %w", err)
	}

	return user, token, nil
}

type LoginInput struct {
	Email    string
	Password string
}

// Login returns the same error for an unknown email and a wrong password,
// so callers cannot tell the two apart.
func (s *Service) Login(ctx context.Context, input LoginInput) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	if err := s.passwordHasher.Compare(user.PasswordHash, input.Password); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, _, err := s.jwtSvc.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}

	return token, nil
}

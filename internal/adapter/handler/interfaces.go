package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/eventlyhq/evently-backend/internal/domain/entity"
	"github.com/eventlyhq/evently-backend/internal/pkg/pagination"
	"github.com/eventlyhq/evently-backend/internal/usecase/auth"
	"github.com/eventlyhq/evently-backend/internal/usecase/event"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type AuthService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*entity.User, string, error)
	Login(ctx context.Context, input auth.LoginInput) (string, error)
}

type EventService interface {
	Create(ctx context.Context, input event.CreateInput) (*entity.Event, error)
	List(ctx context.Context, input event.ListInput) ([]entity.Event, *pagination.Info, error)
	Update(ctx context.Context, userID, eventID uuid.UUID, input event.UpdateInput) (*entity.Event, error)
	Delete(ctx context.Context, userID, eventID uuid.UUID) error
}

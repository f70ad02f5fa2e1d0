package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eventlyhq/evently-backend/internal/domain/entity"
	"github.com/eventlyhq/evently-backend/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	List(ctx context.Context, params EventListParams) ([]entity.Event, *pagination.Info, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventListParams filters by date range only when both bounds are set,
// matching the public listing contract.
type EventListParams struct {
	Pagination pagination.Params
	From       *time.Time
	To         *time.Time
}

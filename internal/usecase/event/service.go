package event

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eventlyhq/evently-backend/internal/adapter/repository"
	"github.com/eventlyhq/evently-backend/internal/domain"
	"github.com/eventlyhq/evently-backend/internal/domain/entity"
	"github.com/eventlyhq/evently-backend/internal/pkg/pagination"
)

type Service struct {
	eventRepo repository.EventRepository
}

func NewService(eventRepo repository.EventRepository) *Service {
	return &Service{eventRepo: eventRepo}
}

type CreateInput struct {
	UserID   uuid.UUID
	Name     string
	Date     time.Time
	Capacity int
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*entity.Event, error) {
	event := entity.NewEvent(input.UserID, input.Name, input.Date, input.Capacity)

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}

	return event, nil
}

type ListInput struct {
	From  *time.Time
	To    *time.Time
	Page  int
	Limit int
}

// List is public. The date filter applies only when both bounds are given,
// and the range is inclusive.
func (s *Service) List(ctx context.Context, input ListInput) ([]entity.Event, *pagination.Info, error) {
	params := repository.EventListParams{
		Pagination: pagination.NewParams(input.Page, input.Limit),
		From:       input.From,
		To:         input.To,
	}

	events, pageInfo, err := s.eventRepo.List(ctx, params)
	if err != nil {
		return nil, nil, fmt.Errorf("listing events: %w", err)
	}

	return events, pageInfo, nil
}

type UpdateInput struct {
	Name     *string
	Date     *time.Time
	Capacity *int
}

// Update applies only the supplied fields. A new capacity overwrites
// available seats as well; with no booking flow seats always equal capacity.
func (s *Service) Update(ctx context.Context, userID, eventID uuid.UUID, input UpdateInput) (*entity.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if !event.IsOwnedBy(userID) {
		return nil, domain.ErrForbidden
	}

	if input.Name != nil {
		event.Name = *input.Name
	}
	if input.Date != nil {
		event.Date = *input.Date
	}
	if input.Capacity != nil {
		event.SetCapacity(*input.Capacity)
	} else {
		event.UpdatedAt = time.Now().UTC()
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("updating event: %w", err)
	}

	return event, nil
}

func (s *Service) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	if !event.IsOwnedBy(userID) {
		return domain.ErrForbidden
	}

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}

	return nil
}

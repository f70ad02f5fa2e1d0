package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/eventlyhq/evently-backend/internal/domain/entity"
)

type EventResponse struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	Date           time.Time        `json:"date"`
	Capacity       int              `json:"capacity"`
	AvailableSeats int              `json:"available_seats"`
	CreatedBy      uuid.UUID        `json:"created_by"`
	Creator        *CreatorResponse `json:"creator,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// CreatorResponse exposes only the owner's id, name, and email.
type CreatorResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type EventsListResponse struct {
	Events      []EventResponse `json:"events"`
	TotalEvents int             `json:"total_events"`
	Page        int             `json:"page"`
	TotalPages  int             `json:"total_pages"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func EventFromEntity(e *entity.Event) EventResponse {
	resp := EventResponse{
		ID:             e.ID,
		Name:           e.Name,
		Date:           e.Date,
		Capacity:       e.Capacity,
		AvailableSeats: e.AvailableSeats,
		CreatedBy:      e.CreatedBy,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}

	if e.Creator != nil {
		resp.Creator = &CreatorResponse{
			ID:    e.Creator.ID,
			Name:  e.Creator.Name,
			Email: e.Creator.Email,
		}
	}

	return resp
}

func EventsFromEntities(events []entity.Event) []EventResponse {
	result := make([]EventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, EventFromEntity(&e))
	}
	return result
}

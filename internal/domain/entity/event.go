package entity

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID             uuid.UUID
	Name           string
	Date           time.Time
	Capacity       int
	AvailableSeats int
	CreatedBy      uuid.UUID
	Creator        *Creator
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Creator carries the owner fields exposed when listing events.
type Creator struct {
	ID    uuid.UUID
	Name  string
	Email string
}

func NewEvent(createdBy uuid.UUID, name string, date time.Time, capacity int) *Event {
	now := time.Now().UTC()
	return &Event{
		ID:             uuid.New(),
		Name:           name,
		Date:           date,
		Capacity:       capacity,
		AvailableSeats: capacity,
		CreatedBy:      createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// SetCapacity overwrites both capacity and available seats. There is no
// booking flow, so seats always track capacity.
func (e *Event) SetCapacity(capacity int) {
	e.Capacity = capacity
	e.AvailableSeats = capacity
	e.UpdatedAt = time.Now().UTC()
}

func (e *Event) IsOwnedBy(userID uuid.UUID) bool {
	return e.CreatedBy == userID
}

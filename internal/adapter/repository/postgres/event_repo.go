package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventlyhq/evently-backend/internal/adapter/repository"
	"github.com/eventlyhq/evently-backend/internal/domain"
	"github.com/eventlyhq/evently-backend/internal/domain/entity"
	"github.com/eventlyhq/evently-backend/internal/pkg/pagination"
)

type EventRepo struct {
	pool *pgxpool.Pool
}

func NewEventRepo(pool *pgxpool.Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

func (r *EventRepo) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (id, name, date, capacity, available_seats, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		event.ID, event.Name, event.Date, event.Capacity, event.AvailableSeats,
		event.CreatedBy, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func (r *EventRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `
		SELECT id, name, date, capacity, available_seats, created_by, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	var event entity.Event
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&event.ID, &event.Name, &event.Date, &event.Capacity, &event.AvailableSeats,
		&event.CreatedBy, &event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("querying event: %w", err)
	}
	return &event, nil
}

// List returns a page of events with each creator's name and email joined
// in, plus the total match count for pagination metadata.
func (r *EventRepo) List(ctx context.Context, params repository.EventListParams) ([]entity.Event, *pagination.Info, error) {
	var conditions []string
	var args []any
	argNum := 1

	if params.From != nil && params.To != nil {
		conditions = append(conditions, fmt.Sprintf("e.date >= $%d AND e.date <= $%d", argNum, argNum+1))
		args = append(args, *params.From, *params.To)
		argNum += 2
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM events e %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting events: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT e.id, e.name, e.date, e.capacity, e.available_seats, e.created_by,
			   e.created_at, e.updated_at, u.name, u.email
		FROM events e
		JOIN users u ON u.id = e.created_by
		%s
		ORDER BY e.created_at
		LIMIT $%d OFFSET $%d
	`, whereClause, argNum, argNum+1)
	args = append(args, params.Pagination.Limit, params.Pagination.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	events := make([]entity.Event, 0)
	for rows.Next() {
		var event entity.Event
		var creatorName, creatorEmail string

		if err := rows.Scan(
			&event.ID, &event.Name, &event.Date, &event.Capacity, &event.AvailableSeats,
			&event.CreatedBy, &event.CreatedAt, &event.UpdatedAt,
			&creatorName, &creatorEmail,
		); err != nil {
			return nil, nil, fmt.Errorf("scanning event: %w", err)
		}

		event.Creator = &entity.Creator{
			ID:    event.CreatedBy,
			Name:  creatorName,
			Email: creatorEmail,
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating events: %w", err)
	}

	pageInfo := pagination.NewInfo(params.Pagination.Page, params.Pagination.Limit, total)
	return events, pageInfo, nil
}

func (r *EventRepo) Update(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET name = $2, date = $3, capacity = $4, available_seats = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		event.ID, event.Name, event.Date, event.Capacity, event.AvailableSeats, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

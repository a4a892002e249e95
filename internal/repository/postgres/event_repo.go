package postgres

import (
	"context"
	"database/sql"
	"errors"

	"techtalks/internal/domain"
)

const eventColumns = `id, description, capacity, registration_opens_at, date, link, created_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func scanEvent(row rowScanner, e *domain.Event, extra ...any) error {
	var opensNull sql.NullTime
	var linkNull sql.NullString
	dest := append([]any{&e.ID, &e.Description, &e.Capacity, &opensNull, &e.Date, &linkNull, &e.CreatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return err
	}
	if opensNull.Valid {
		e.RegistrationOpensAt = &opensNull.Time
	}
	if linkNull.Valid {
		e.Link = &linkNull.String
	}
	return nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (description, capacity, registration_opens_at, date, link, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, e.Description, e.Capacity, e.RegistrationOpensAt, e.Date, e.Link, e.CreatedAt).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e := &domain.Event{}
	if err := scanEvent(r.DB.QueryRowContext(ctx, query, id), e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) GetCurrent(ctx context.Context) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date DESC LIMIT 1`
	e := &domain.Event{}
	if err := scanEvent(r.DB.QueryRowContext(ctx, query), e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.EventSummary, error) {
	query := `
		SELECT e.id, e.description, e.capacity, e.registration_opens_at, e.date, e.link, e.created_at,
			COUNT(r.token) FILTER (WHERE r.confirmed) AS confirmed_count,
			COUNT(r.token) AS registration_count
		FROM events e
		LEFT JOIN registrations r ON r.event_id = e.id
		GROUP BY e.id
		ORDER BY e.date DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.EventSummary, 0)
	for rows.Next() {
		s := &domain.EventSummary{}
		if err := scanEvent(rows, &s.Event, &s.ConfirmedCount, &s.RegistrationCount); err != nil {
			return nil, err
		}
		events = append(events, s)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) (bool, error) {
	query := `
		UPDATE events
		SET description = $1, capacity = $2, registration_opens_at = $3, date = $4, link = $5
		WHERE id = $6
			AND (description IS DISTINCT FROM $1
				OR capacity IS DISTINCT FROM $2
				OR registration_opens_at IS DISTINCT FROM $3
				OR date IS DISTINCT FROM $4
				OR link IS DISTINCT FROM $5)
	`
	result, err := r.DB.ExecContext(ctx, query, e.Description, e.Capacity, e.RegistrationOpensAt, e.Date, e.Link, e.ID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rows == 1 {
		return true, nil
	}
	return unchangedOrMissing(ctx, r.DB, "events", e.ID)
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

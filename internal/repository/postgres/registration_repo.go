package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"techtalks/internal/domain"
)

const registrationColumns = `token, event_id, name, email, affiliation, age, study_year, allergies, confirmed, created_at, confirmed_at`

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

func scanRegistration(row rowScanner, reg *domain.Registration) error {
	var allergies sql.NullString
	var confirmedAt sql.NullTime
	if err := row.Scan(&reg.Token, &reg.EventID, &reg.Name, &reg.Email, &reg.Affiliation, &reg.Age,
		&reg.StudyYear, &allergies, &reg.Confirmed, &reg.CreatedAt, &confirmedAt); err != nil {
		return err
	}
	reg.Allergies = allergies.String
	if confirmedAt.Valid {
		reg.ConfirmedAt = &confirmedAt.Time
	}
	return nil
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (token, event_id, name, email, affiliation, age, study_year, allergies, confirmed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, $9)
	`
	result, err := r.DB.ExecContext(ctx, query, reg.Token, reg.EventID, reg.Name, reg.Email, reg.Affiliation,
		reg.Age, reg.StudyYear, nullString(reg.Allergies), reg.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateToken
		}
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows != 1 {
		return fmt.Errorf("insert registration: %d rows affected", rows)
	}
	return nil
}

func (r *registrationRepository) GetByToken(ctx context.Context, token string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE token = $1`
	reg := &domain.Registration{}
	if err := scanRegistration(r.DB.QueryRowContext(ctx, query, token), reg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) CountConfirmed(ctx context.Context, eventID string) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND confirmed`
	if err := r.DB.QueryRowContext(ctx, query, eventID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Confirm runs the capacity check and the confirmed flip in one transaction. The registration
// row is locked first, then the event row; every confirmation for an event queues on the event
// lock, so the confirmed count cannot pass capacity between the check and the update.
func (r *registrationRepository) Confirm(ctx context.Context, token string) (domain.Status, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return domain.StatusFailed, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID string
	var confirmed bool
	err = tx.QueryRowContext(ctx, `SELECT event_id, confirmed FROM registrations WHERE token = $1 FOR UPDATE`, token).
		Scan(&eventID, &confirmed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.StatusFailed, domain.ErrNotFound
		}
		return domain.StatusFailed, fmt.Errorf("lock registration: %w", err)
	}
	if confirmed {
		return domain.StatusRepeat, nil
	}

	var capacity int
	err = tx.QueryRowContext(ctx, `SELECT capacity FROM events WHERE id = $1 FOR UPDATE`, eventID).Scan(&capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.StatusFailed, domain.ErrNotFound
		}
		return domain.StatusFailed, fmt.Errorf("lock event: %w", err)
	}

	var confirmedCount int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND confirmed`, eventID).
		Scan(&confirmedCount)
	if err != nil {
		return domain.StatusFailed, fmt.Errorf("count confirmed: %w", err)
	}
	if confirmedCount >= capacity {
		return domain.StatusFull, nil
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE registrations SET confirmed = TRUE, confirmed_at = NOW() WHERE token = $1 AND confirmed = FALSE`, token)
	if err != nil {
		return domain.StatusFailed, fmt.Errorf("confirm registration: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return domain.StatusFailed, err
	}
	if rows != 1 {
		return domain.StatusFailed, fmt.Errorf("confirm registration: %d rows affected", rows)
	}
	if err := tx.Commit(); err != nil {
		return domain.StatusFailed, fmt.Errorf("commit: %w", err)
	}
	return domain.StatusSucceeded, nil
}

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Registration, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations WHERE event_id = $1`, eventID).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE event_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID, nullLimit(params.Limit()), params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		if err := scanRegistration(rows, reg); err != nil {
			return nil, 0, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return regs, total, nil
}

func (r *registrationRepository) Delete(ctx context.Context, token string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM registrations WHERE token = $1`, token)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

package postgres

import (
	"context"
	"database/sql"

	"techtalks/internal/domain"
)

type programRepository struct {
	DB *sql.DB
}

func NewProgramRepository(db *sql.DB) domain.ProgramRepository {
	return &programRepository{DB: db}
}

func (r *programRepository) Create(ctx context.Context, p *domain.ProgramEntry) error {
	query := `
		INSERT INTO program_entries (event_id, company_id, room_id, name, description, starts_at, duration_minutes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, p.EventID, p.CompanyID, p.RoomID, p.Name, p.Description, p.StartsAt, p.DurationMinutes).
		Scan(&p.ID)
}

func (r *programRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.ProgramEntryView, error) {
	query := `
		SELECT p.id, p.event_id, p.company_id, p.room_id, p.name, p.description, p.starts_at, p.duration_minutes,
			rm.building || ' ' || rm.name, rm.mazemap_url, c.name
		FROM program_entries p
		INNER JOIN rooms rm ON rm.id = p.room_id
		LEFT JOIN companies c ON c.id = p.company_id
		WHERE p.event_id = $1
		ORDER BY p.starts_at ASC, rm.name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.ProgramEntryView, 0)
	for rows.Next() {
		v := &domain.ProgramEntryView{}
		var companyID, companyName sql.NullString
		if err := rows.Scan(&v.ID, &v.EventID, &companyID, &v.RoomID, &v.Name, &v.Description, &v.StartsAt,
			&v.DurationMinutes, &v.RoomName, &v.RoomLink, &companyName); err != nil {
			return nil, err
		}
		if companyID.Valid {
			v.CompanyID = &companyID.String
		}
		if companyName.Valid {
			v.CompanyName = &companyName.String
		}
		entries = append(entries, v)
	}
	return entries, rows.Err()
}

func (r *programRepository) Update(ctx context.Context, p *domain.ProgramEntry) (bool, error) {
	query := `
		UPDATE program_entries
		SET company_id = $1, room_id = $2, name = $3, description = $4, starts_at = $5, duration_minutes = $6
		WHERE id = $7
			AND (company_id IS DISTINCT FROM $1
				OR room_id IS DISTINCT FROM $2
				OR name IS DISTINCT FROM $3
				OR description IS DISTINCT FROM $4
				OR starts_at IS DISTINCT FROM $5
				OR duration_minutes IS DISTINCT FROM $6)
	`
	result, err := r.DB.ExecContext(ctx, query, p.CompanyID, p.RoomID, p.Name, p.Description, p.StartsAt, p.DurationMinutes, p.ID)
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
	return unchangedOrMissing(ctx, r.DB, "program_entries", p.ID)
}

func (r *programRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM program_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"techtalks/internal/domain"
)

type companyRepository struct {
	DB *sql.DB
}

func NewCompanyRepository(db *sql.DB) domain.CompanyRepository {
	return &companyRepository{DB: db}
}

func (r *companyRepository) Create(ctx context.Context, c *domain.Company, eventID string, tier int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id string
	query := `
		INSERT INTO companies (name, logo)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, query, c.Name, c.Logo).Scan(&id); err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	if eventID != "" && tier > 0 {
		if _, err := tx.ExecContext(ctx, upsertSponsorQuery, eventID, id, tier); err != nil {
			return fmt.Errorf("insert sponsor: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	c.ID = id
	return nil
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	c := &domain.Company{}
	err := r.DB.QueryRowContext(ctx, `SELECT id, name, logo FROM companies WHERE id = $1`, id).Scan(&c.ID, &c.Name, &c.Logo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// ListWithTier lists every company; the sponsor join is restricted to eventID in the ON clause
// so companies sponsoring other events still appear, with tier 0.
func (r *companyRepository) ListWithTier(ctx context.Context, eventID string) ([]*domain.CompanyWithTier, error) {
	query := `
		SELECT c.id, c.name, c.logo, COALESCE(s.tier, 0)
		FROM companies c
		LEFT JOIN sponsors s ON s.company_id = c.id AND s.event_id = $1
		ORDER BY c.name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, nullString(eventID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]*domain.CompanyWithTier, 0)
	for rows.Next() {
		c := &domain.CompanyWithTier{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Logo, &c.SponsorTier); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *companyRepository) Update(ctx context.Context, c *domain.Company, eventID string, tier int) (bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		UPDATE companies SET name = $1, logo = $2
		WHERE id = $3 AND (name IS DISTINCT FROM $1 OR logo IS DISTINCT FROM $2)
	`
	result, err := tx.ExecContext(ctx, query, c.Name, c.Logo, c.ID)
	if err != nil {
		return false, fmt.Errorf("update company: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	changed := rows == 1
	if !changed {
		if _, err := unchangedOrMissing(ctx, tx, "companies", c.ID); err != nil {
			return false, err
		}
	}
	sponsorChanged, err := moveSponsor(ctx, tx, eventID, c.ID, tier)
	if err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return changed || sponsorChanged, nil
}

// moveSponsor locks the sponsor row of companyID for eventID and writes it to tier.
func moveSponsor(ctx context.Context, tx *sql.Tx, eventID, companyID string, tier int) (bool, error) {
	if eventID == "" {
		return false, nil
	}
	var previous int
	err := tx.QueryRowContext(ctx,
		`SELECT tier FROM sponsors WHERE event_id = $1 AND company_id = $2 FOR UPDATE`,
		eventID, companyID,
	).Scan(&previous)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("lock sponsor: %w", err)
	}

	switch domain.PlanSponsorChange(previous, tier) {
	case domain.SponsorUnchanged:
		return false, nil
	case domain.SponsorAdded:
		_, err = tx.ExecContext(ctx, upsertSponsorQuery, eventID, companyID, tier)
	case domain.SponsorRetiered:
		_, err = tx.ExecContext(ctx, `UPDATE sponsors SET tier = $1 WHERE event_id = $2 AND company_id = $3`,
			tier, eventID, companyID)
	case domain.SponsorRemoved:
		_, err = tx.ExecContext(ctx, `DELETE FROM sponsors WHERE event_id = $1 AND company_id = $2`,
			eventID, companyID)
	}
	if err != nil {
		return false, fmt.Errorf("write sponsor: %w", err)
	}
	return true, nil
}

func (r *companyRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

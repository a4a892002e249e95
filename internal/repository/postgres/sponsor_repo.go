package postgres

import (
	"context"
	"database/sql"

	"techtalks/internal/domain"
)

type sponsorRepository struct {
	DB *sql.DB
}

func NewSponsorRepository(db *sql.DB) domain.SponsorRepository {
	return &sponsorRepository{DB: db}
}

// upsertSponsorQuery takes event_id, company_id and tier.
const upsertSponsorQuery = `
	INSERT INTO sponsors (event_id, company_id, tier)
	VALUES ($1, $2, $3)
	ON CONFLICT (event_id, company_id) DO UPDATE SET tier = EXCLUDED.tier
`

func (r *sponsorRepository) Add(ctx context.Context, s *domain.Sponsor) error {
	_, err := r.DB.ExecContext(ctx, upsertSponsorQuery, s.EventID, s.CompanyID, s.Tier)
	return err
}

func (r *sponsorRepository) Remove(ctx context.Context, eventID, companyID string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM sponsors WHERE event_id = $1 AND company_id = $2`, eventID, companyID)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

func (r *sponsorRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.SponsorView, error) {
	query := `
		SELECT c.id, c.name, c.logo, s.tier
		FROM sponsors s
		INNER JOIN companies c ON c.id = s.company_id
		WHERE s.event_id = $1
		ORDER BY s.tier DESC, c.name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sponsors := make([]*domain.SponsorView, 0)
	for rows.Next() {
		s := &domain.SponsorView{}
		if err := rows.Scan(&s.CompanyID, &s.Name, &s.Logo, &s.Tier); err != nil {
			return nil, err
		}
		sponsors = append(sponsors, s)
	}
	return sponsors, rows.Err()
}

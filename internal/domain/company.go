package domain

import "context"

// Company is a partner company that can sponsor events and host program entries.
// swagger:model Company
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// CompanyWithTier is a company with its sponsor tier for the current event (0 when not sponsoring).
// swagger:model CompanyWithTier
type CompanyWithTier struct {
	Company
	SponsorTier int `json:"sponsor_tier"`
}

// Sponsor links a company to an event with a tier; higher tiers are listed first.
// swagger:model Sponsor
type Sponsor struct {
	EventID   string `json:"event_id"`
	CompanyID string `json:"company_id"`
	Tier      int    `json:"tier"`
}

// SponsorView is a sponsor joined with its company.
// swagger:model SponsorView
type SponsorView struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Logo      string `json:"logo"`
	Tier      int    `json:"tier"`
}

// DirectoryCompany is a company found in the external company directory.
// swagger:model DirectoryCompany
type DirectoryCompany struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Logo     string `json:"logo"`
	ImageURL string `json:"image_url"`
}

// SponsorChange is the sponsor row write that moves a company from one tier to another.
type SponsorChange int

const (
	SponsorUnchanged SponsorChange = iota
	SponsorAdded
	SponsorRetiered
	SponsorRemoved
)

// PlanSponsorChange returns the write that moves a company from tier previous to tier.
// Tier 0 means the company does not sponsor the event.
func PlanSponsorChange(previous, tier int) SponsorChange {
	switch {
	case previous == tier:
		return SponsorUnchanged
	case previous == 0:
		return SponsorAdded
	case tier == 0:
		return SponsorRemoved
	default:
		return SponsorRetiered
	}
}

// CompanyRepository defines storage for companies. Create and Update write the company
// and its sponsor row for eventID in one transaction; an empty eventID leaves sponsor rows alone.
type CompanyRepository interface {
	Create(ctx context.Context, company *Company, eventID string, tier int) error
	GetByID(ctx context.Context, id string) (*Company, error)
	// ListWithTier lists all companies with their sponsor tier for eventID.
	ListWithTier(ctx context.Context, eventID string) ([]*CompanyWithTier, error)
	// Update reports changed when either the company or its sponsor tier was written.
	Update(ctx context.Context, company *Company, eventID string, tier int) (changed bool, err error)
	Delete(ctx context.Context, id string) error
}

// SponsorRepository defines storage for event sponsors.
type SponsorRepository interface {
	Add(ctx context.Context, sponsor *Sponsor) error
	Remove(ctx context.Context, eventID, companyID string) error
	ListByEventID(ctx context.Context, eventID string) ([]*SponsorView, error)
}

// CompanyDirectory searches an external company catalogue (or a test double).
type CompanyDirectory interface {
	Search(ctx context.Context, name string) ([]*DirectoryCompany, error)
}

// CompanyService defines admin operations for companies and sponsors.
type CompanyService interface {
	ListCompanies(ctx context.Context) ([]*CompanyWithTier, error)
	// CreateCompany stores company and, when tier > 0, makes it a sponsor of the current event.
	CreateCompany(ctx context.Context, company *Company, tier int) error
	// UpdateCompany edits company and reconciles its sponsor row for the current event with tier.
	UpdateCompany(ctx context.Context, company *Company, tier int) (Status, error)
	DeleteCompany(ctx context.Context, companyID string) error
	SearchDirectory(ctx context.Context, name string) ([]*DirectoryCompany, error)
	ListSponsors(ctx context.Context, eventID string) ([]*SponsorView, error)
	AddSponsor(ctx context.Context, sponsor *Sponsor) error
	RemoveSponsor(ctx context.Context, eventID, companyID string) error
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"techtalks/internal/domain"
)

type companyService struct {
	companyRepo    domain.CompanyRepository
	sponsorRepo    domain.SponsorRepository
	eventRepo      domain.EventRepository
	directory      domain.CompanyDirectory
	contextTimeout time.Duration
}

func NewCompanyService(companyRepo domain.CompanyRepository,
	sponsorRepo domain.SponsorRepository,
	eventRepo domain.EventRepository,
	directory domain.CompanyDirectory,
	timeout time.Duration,
) domain.CompanyService {
	return &companyService{
		companyRepo:    companyRepo,
		sponsorRepo:    sponsorRepo,
		eventRepo:      eventRepo,
		directory:      directory,
		contextTimeout: timeout,
	}
}

func validateCompany(company *domain.Company, tier int) error {
	company.Name = strings.TrimSpace(company.Name)
	company.Logo = strings.TrimSpace(company.Logo)
	if company.Name == "" {
		return fmt.Errorf("%w: company name is required", domain.ErrInvalidInput)
	}
	if tier < 0 {
		return fmt.Errorf("%w: sponsor tier must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

// currentEventID returns "" when there are no events.
func (s *companyService) currentEventID(ctx context.Context) (string, error) {
	event, err := s.eventRepo.GetCurrent(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("get current event: %w", err)
	}
	return event.ID, nil
}

func (s *companyService) ListCompanies(ctx context.Context) ([]*domain.CompanyWithTier, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	eventID, err := s.currentEventID(ctx)
	if err != nil {
		return nil, err
	}
	companies, err := s.companyRepo.ListWithTier(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	if companies == nil {
		companies = []*domain.CompanyWithTier{}
	}
	return companies, nil
}

func (s *companyService) CreateCompany(ctx context.Context, company *domain.Company, tier int) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateCompany(company, tier); err != nil {
		return err
	}
	var eventID string
	if tier > 0 {
		var err error
		if eventID, err = s.currentEventID(ctx); err != nil {
			return err
		}
	}
	if err := s.companyRepo.Create(ctx, company, eventID, tier); err != nil {
		return fmt.Errorf("create company: %w", err)
	}
	return nil
}

// UpdateCompany writes the company and moves its sponsor row for the current event to tier
// together. Without a current event only the company is written.
func (s *companyService) UpdateCompany(ctx context.Context, company *domain.Company, tier int) (domain.Status, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateCompany(company, tier); err != nil {
		return domain.StatusFailed, err
	}
	eventID, err := s.currentEventID(ctx)
	if err != nil {
		return domain.StatusFailed, err
	}
	changed, err := s.companyRepo.Update(ctx, company, eventID, tier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.StatusFailed, domain.ErrNotFound
		}
		return domain.StatusFailed, fmt.Errorf("update company: %w", err)
	}
	return domain.WriteResult(changed), nil
}

func (s *companyService) DeleteCompany(ctx context.Context, companyID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.companyRepo.Delete(ctx, companyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

func (s *companyService) SearchDirectory(ctx context.Context, name string) ([]*domain.DirectoryCompany, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if s.directory == nil {
		return nil, fmt.Errorf("company directory is not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	companies, err := s.directory.Search(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("search company directory: %w", err)
	}
	if companies == nil {
		companies = []*domain.DirectoryCompany{}
	}
	return companies, nil
}

func (s *companyService) ListSponsors(ctx context.Context, eventID string) ([]*domain.SponsorView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sponsors, err := s.sponsorRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list sponsors: %w", err)
	}
	if sponsors == nil {
		sponsors = []*domain.SponsorView{}
	}
	return sponsors, nil
}

func (s *companyService) AddSponsor(ctx context.Context, sponsor *domain.Sponsor) error {
	if sponsor.Tier < 1 {
		return fmt.Errorf("%w: sponsor tier must be positive", domain.ErrInvalidInput)
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, sponsor.EventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if _, err := s.companyRepo.GetByID(ctx, sponsor.CompanyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get company: %w", err)
	}
	if err := s.sponsorRepo.Add(ctx, sponsor); err != nil {
		return fmt.Errorf("add sponsor: %w", err)
	}
	return nil
}

func (s *companyService) RemoveSponsor(ctx context.Context, eventID, companyID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.sponsorRepo.Remove(ctx, eventID, companyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("remove sponsor: %w", err)
	}
	return nil
}

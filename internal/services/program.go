package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"techtalks/internal/domain"
)

type programService struct {
	programRepo    domain.ProgramRepository
	sponsorRepo    domain.SponsorRepository
	roomRepo       domain.RoomRepository
	contextTimeout time.Duration
}

func NewProgramService(programRepo domain.ProgramRepository, sponsorRepo domain.SponsorRepository, roomRepo domain.RoomRepository, timeout time.Duration) domain.ProgramService {
	return &programService{
		programRepo:    programRepo,
		sponsorRepo:    sponsorRepo,
		roomRepo:       roomRepo,
		contextTimeout: timeout,
	}
}

func validateProgramEntry(entry *domain.ProgramEntry) error {
	entry.Name = strings.TrimSpace(entry.Name)
	entry.Description = strings.TrimSpace(entry.Description)
	if entry.CompanyID != nil && strings.TrimSpace(*entry.CompanyID) == "" {
		entry.CompanyID = nil
	}
	switch {
	case entry.Name == "":
		return fmt.Errorf("%w: program entry name is required", domain.ErrInvalidInput)
	case entry.RoomID == "":
		return fmt.Errorf("%w: room is required", domain.ErrInvalidInput)
	case entry.StartsAt.IsZero():
		return fmt.Errorf("%w: start time is required", domain.ErrInvalidInput)
	case entry.DurationMinutes <= 0:
		return fmt.Errorf("%w: duration must be positive", domain.ErrInvalidInput)
	}
	return nil
}

func (s *programService) ListProgram(ctx context.Context, eventID string) ([]*domain.ProgramEntryView, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	entries, err := s.programRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list program: %w", err)
	}
	if entries == nil {
		entries = []*domain.ProgramEntryView{}
	}
	return entries, nil
}

// GetProgramOptions returns the event's sponsors and all rooms, the choices for a new entry.
func (s *programService) GetProgramOptions(ctx context.Context, eventID string) (*domain.ProgramOptions, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sponsors, err := s.sponsorRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list sponsors: %w", err)
	}
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	if sponsors == nil {
		sponsors = []*domain.SponsorView{}
	}
	if rooms == nil {
		rooms = []*domain.Room{}
	}
	return &domain.ProgramOptions{Sponsors: sponsors, Rooms: rooms}, nil
}

func (s *programService) CreateEntry(ctx context.Context, entry *domain.ProgramEntry) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateProgramEntry(entry); err != nil {
		return err
	}
	if err := s.programRepo.Create(ctx, entry); err != nil {
		return fmt.Errorf("create program entry: %w", err)
	}
	return nil
}

func (s *programService) UpdateEntry(ctx context.Context, entry *domain.ProgramEntry) (domain.Status, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateProgramEntry(entry); err != nil {
		return domain.StatusFailed, err
	}
	changed, err := s.programRepo.Update(ctx, entry)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.StatusFailed, domain.ErrNotFound
		}
		return domain.StatusFailed, fmt.Errorf("update program entry: %w", err)
	}
	return domain.WriteResult(changed), nil
}

func (s *programService) DeleteEntry(ctx context.Context, entryID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.programRepo.Delete(ctx, entryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete program entry: %w", err)
	}
	return nil
}

package domain

import (
	"context"
	"time"
)

// ProgramEntry is a talk or activity in an event's program.
// swagger:model ProgramEntry
type ProgramEntry struct {
	ID              string    `json:"id"`
	EventID         string    `json:"event_id"`
	CompanyID       *string   `json:"company_id"`
	RoomID          string    `json:"room_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	StartsAt        time.Time `json:"starts_at"`
	DurationMinutes int       `json:"duration_minutes"`
}

// ProgramEntryView is a program entry joined with its room and company.
// swagger:model ProgramEntryView
type ProgramEntryView struct {
	ProgramEntry
	RoomName    string  `json:"room_name"`
	RoomLink    string  `json:"room_link"`
	CompanyName *string `json:"company_name"`
}

// ProgramOptions lists what a new program entry for an event can refer to.
// swagger:model ProgramOptions
type ProgramOptions struct {
	Sponsors []*SponsorView `json:"sponsors"`
	Rooms    []*Room        `json:"rooms"`
}

// ProgramRepository defines storage for program entries.
type ProgramRepository interface {
	Create(ctx context.Context, entry *ProgramEntry) error
	ListByEventID(ctx context.Context, eventID string) ([]*ProgramEntryView, error)
	Update(ctx context.Context, entry *ProgramEntry) (changed bool, err error)
	Delete(ctx context.Context, id string) error
}

// ProgramService defines admin operations for program entries.
type ProgramService interface {
	ListProgram(ctx context.Context, eventID string) ([]*ProgramEntryView, error)
	GetProgramOptions(ctx context.Context, eventID string) (*ProgramOptions, error)
	CreateEntry(ctx context.Context, entry *ProgramEntry) error
	UpdateEntry(ctx context.Context, entry *ProgramEntry) (Status, error)
	DeleteEntry(ctx context.Context, entryID string) error
}

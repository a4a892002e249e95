package domain

import (
	"context"
	"time"
)

// Event is a single Tech Talks edition. The current event is the one with the latest date.
// swagger:model Event
type Event struct {
	ID                  string     `json:"id"`
	Description         string     `json:"description"`
	Capacity            int        `json:"capacity"`
	RegistrationOpensAt *time.Time `json:"registration_opens_at"`
	Date                time.Time  `json:"date"`
	Link                *string    `json:"link"`
	CreatedAt           time.Time  `json:"created_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(description string, capacity int, date time.Time, registrationOpensAt *time.Time, link *string, createdAt time.Time) *Event {
	return &Event{
		Description:         description,
		Capacity:            capacity,
		Date:                date,
		RegistrationOpensAt: registrationOpensAt,
		Link:                link,
		CreatedAt:           createdAt,
	}
}

// RegistrationOpen reports whether signups are accepted at now.
func (e *Event) RegistrationOpen(now time.Time) bool {
	return e.RegistrationOpensAt == nil || !now.Before(*e.RegistrationOpensAt)
}

// EventSummary is an event with its registration counters.
// swagger:model EventSummary
type EventSummary struct {
	Event
	ConfirmedCount    int `json:"confirmed_count"`
	RegistrationCount int `json:"registration_count"`
}

// EventDetail is the admin view of one event.
// swagger:model EventDetail
type EventDetail struct {
	Event          *Event              `json:"event"`
	ConfirmedCount int                 `json:"confirmed_count"`
	Sponsors       []*SponsorView      `json:"sponsors"`
	Program        []*ProgramEntryView `json:"program"`
	Participants   []*Registration     `json:"participants"`
	Total          int                 `json:"participants_total"`
}

// HomePage is the public landing data for the current event.
// swagger:model HomePage
type HomePage struct {
	Event    *EventSummary       `json:"event"`
	Partners []*SponsorView      `json:"partners"`
	Program  []*ProgramEntryView `json:"program"`
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// GetCurrent returns the event with the latest date, or ErrNotFound when there are none.
	GetCurrent(ctx context.Context) (*Event, error)
	List(ctx context.Context) ([]*EventSummary, error)
	// Update writes all editable columns. changed is false when the row matched but no value differed.
	Update(ctx context.Context, event *Event) (changed bool, err error)
	Delete(ctx context.Context, id string) error
}

// EventService defines the admin and public operations on events.
type EventService interface {
	GetCurrentEvent(ctx context.Context) (*Event, error)
	GetHome(ctx context.Context) (*HomePage, error)
	ListEvents(ctx context.Context) ([]*EventSummary, error)
	GetLatestEvent(ctx context.Context) (*EventSummary, error)
	GetEventDetail(ctx context.Context, eventID string, params PaginationParams) (*EventDetail, error)
	CreateEvent(ctx context.Context, event *Event) error
	UpdateEvent(ctx context.Context, event *Event) (Status, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

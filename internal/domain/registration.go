package domain

import (
	"context"
	"time"
)

// Accepted ranges for registrant age and study year (inclusive).
const (
	MinAge       = 18
	MaxAge       = 150
	MinStudyYear = 1
	MaxStudyYear = 9
)

// Registration is a signup for an event. Token is the opaque verification token and the primary key.
// swagger:model Registration
type Registration struct {
	Token       string     `json:"token"`
	EventID     string     `json:"event_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Affiliation string     `json:"affiliation"`
	Age         int        `json:"age"`
	StudyYear   int        `json:"study_year"`
	Allergies   string     `json:"allergies"`
	Confirmed   bool       `json:"confirmed"`
	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
}

// RegistrationInput carries the registrant-supplied fields of a signup.
type RegistrationInput struct {
	Name        string
	Email       string
	Affiliation string
	Age         int
	StudyYear   int
	Allergies   string
}

// NewRegistration returns an unconfirmed Registration for eventID.
func NewRegistration(token, eventID string, in RegistrationInput, createdAt time.Time) *Registration {
	return &Registration{
		Token:       token,
		EventID:     eventID,
		Name:        in.Name,
		Email:       in.Email,
		Affiliation: in.Affiliation,
		Age:         in.Age,
		StudyYear:   in.StudyYear,
		Allergies:   in.Allergies,
		CreatedAt:   createdAt,
	}
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	// Create inserts reg. Returns ErrDuplicateToken when the token is already taken.
	Create(ctx context.Context, reg *Registration) error
	GetByToken(ctx context.Context, token string) (*Registration, error)
	CountConfirmed(ctx context.Context, eventID string) (int, error)
	// Confirm atomically checks capacity and flips confirmed for token.
	// Returns StatusSucceeded, StatusRepeat or StatusFull; ErrNotFound for an unknown token.
	Confirm(ctx context.Context, token string) (Status, error)
	ListByEventID(ctx context.Context, eventID string, params PaginationParams) ([]*Registration, int, error)
	Delete(ctx context.Context, token string) error
}

// RegistrationService is the signup engine.
type RegistrationService interface {
	// Submit validates in and stores an unconfirmed registration for event, then sends the
	// confirmation e-mail in the background.
	Submit(ctx context.Context, event *Event, in RegistrationInput) (Status, error)
	ListParticipants(ctx context.Context, eventID string, params PaginationParams) ([]*Registration, int, error)
	DeleteParticipant(ctx context.Context, token string) error
	// Wait blocks until in-flight confirmation e-mails are done.
	Wait()
}

// VerificationService confirms registrations from e-mailed tokens.
type VerificationService interface {
	Verify(ctx context.Context, token string) (Status, error)
}

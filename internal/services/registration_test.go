package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"techtalks/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validInput() domain.RegistrationInput {
	return domain.RegistrationInput{
		Name:        "Ada Lovelace",
		Email:       "ada@example.com",
		Affiliation: "Online",
		Age:         22,
		StudyYear:   3,
		Allergies:   "",
	}
}

func testEvent(capacity int) *domain.Event {
	return &domain.Event{
		ID:          "ev-1",
		Description: "Tech Talks 2026",
		Capacity:    capacity,
		Date:        time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func newTestRegistrationService(repo domain.RegistrationRepository, emails domain.EmailService) *registrationService {
	return NewRegistrationService(repo, emails, discardLogger(), "http://localhost:3000/validate", time.Second, time.Second).(*registrationService)
}

func TestRegistrationService_Submit_Valid(t *testing.T) {
	event := testEvent(10)
	repo := newFakeRegistrationRepo(newFakeEventRepo(event))
	emails := &fakeEmailService{}
	svc := newTestRegistrationService(repo, emails)

	status, err := svc.Submit(context.Background(), event, validInput())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSucceeded, status)

	svc.Wait()
	regs := repo.all()
	require.Len(t, regs, 1)
	assert.False(t, regs[0].Confirmed)
	assert.Equal(t, "ev-1", regs[0].EventID)
	assert.NotEmpty(t, regs[0].Token)

	require.Equal(t, 1, emails.count())
	assert.Equal(t, regs[0].Token, emails.sent[0].Token)
	assert.Equal(t, "ada@example.com", emails.sent[0].Email)
	assert.Equal(t, "http://localhost:3000/validate", emails.sent[0].VerifyURL)
}

func TestRegistrationService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *domain.RegistrationInput)
		wantErr error
	}{
		{name: "no at sign", mutate: func(in *domain.RegistrationInput) { in.Email = "ada.example.com" }, wantErr: domain.ErrInvalidEmail},
		{name: "two at signs", mutate: func(in *domain.RegistrationInput) { in.Email = "ada@@example.com" }, wantErr: domain.ErrInvalidEmail},
		{name: "age 17", mutate: func(in *domain.RegistrationInput) { in.Age = 17 }, wantErr: domain.ErrInvalidAge},
		{name: "age 151", mutate: func(in *domain.RegistrationInput) { in.Age = 151 }, wantErr: domain.ErrInvalidAge},
		{name: "age 18", mutate: func(in *domain.RegistrationInput) { in.Age = 18 }},
		{name: "age 150", mutate: func(in *domain.RegistrationInput) { in.Age = 150 }},
		{name: "study year 0", mutate: func(in *domain.RegistrationInput) { in.StudyYear = 0 }, wantErr: domain.ErrInvalidStudyYear},
		{name: "study year 10", mutate: func(in *domain.RegistrationInput) { in.StudyYear = 10 }, wantErr: domain.ErrInvalidStudyYear},
		{name: "study year 1", mutate: func(in *domain.RegistrationInput) { in.StudyYear = 1 }},
		{name: "study year 9", mutate: func(in *domain.RegistrationInput) { in.StudyYear = 9 }},
		{name: "blank name", mutate: func(in *domain.RegistrationInput) { in.Name = "   " }, wantErr: domain.ErrInvalidName},
		{
			name: "email checked before age",
			mutate: func(in *domain.RegistrationInput) {
				in.Email = "nope"
				in.Age = 5
			},
			wantErr: domain.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := testEvent(10)
			repo := newFakeRegistrationRepo(newFakeEventRepo(event))
			svc := newTestRegistrationService(repo, nil)

			in := validInput()
			tt.mutate(&in)
			status, err := svc.Submit(context.Background(), event, in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				assert.Equal(t, domain.StatusFailed, status)
				assert.Empty(t, repo.all())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.StatusSucceeded, status)
			assert.Len(t, repo.all(), 1)
		})
	}
}

func TestRegistrationService_Submit_DuplicateSignupsAreSeparate(t *testing.T) {
	event := testEvent(10)
	repo := newFakeRegistrationRepo(newFakeEventRepo(event))
	svc := newTestRegistrationService(repo, nil)

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		_, err := svc.Submit(context.Background(), event, validInput())
		require.NoError(t, err)
	}
	for _, r := range repo.all() {
		seen[r.Token] = struct{}{}
	}
	assert.Len(t, seen, 50)
}

func TestRegistrationService_Submit_TokenCollision(t *testing.T) {
	t.Run("retries with a new token", func(t *testing.T) {
		event := testEvent(10)
		repo := newFakeRegistrationRepo(newFakeEventRepo(event))
		repo.createErr = []error{domain.ErrDuplicateToken, domain.ErrDuplicateToken}
		svc := newTestRegistrationService(repo, nil)

		calls := 0
		svc.newToken = func() (string, error) {
			calls++
			return "tok-" + string(rune('a'+calls)), nil
		}

		status, err := svc.Submit(context.Background(), event, validInput())
		require.NoError(t, err)
		assert.Equal(t, domain.StatusSucceeded, status)
		assert.Equal(t, 3, calls)
		assert.Len(t, repo.all(), 1)
	})

	t.Run("gives up after three attempts", func(t *testing.T) {
		event := testEvent(10)
		repo := newFakeRegistrationRepo(newFakeEventRepo(event))
		repo.createErr = []error{domain.ErrDuplicateToken, domain.ErrDuplicateToken, domain.ErrDuplicateToken}
		svc := newTestRegistrationService(repo, nil)

		status, err := svc.Submit(context.Background(), event, validInput())
		require.ErrorIs(t, err, domain.ErrDuplicateToken)
		assert.Equal(t, domain.StatusFailed, status)
		assert.Empty(t, repo.all())
	})
}

func TestRegistrationService_Submit_StoreFailure(t *testing.T) {
	event := testEvent(10)
	repo := newFakeRegistrationRepo(newFakeEventRepo(event))
	repo.createErr = []error{errors.New("connection reset")}
	emails := &fakeEmailService{}
	svc := newTestRegistrationService(repo, emails)

	status, err := svc.Submit(context.Background(), event, validInput())
	require.Error(t, err)
	assert.Equal(t, domain.StatusFailed, status)
	svc.Wait()
	assert.Zero(t, emails.count())
}

func TestRegistrationService_Submit_EmailFailureIsNotSurfaced(t *testing.T) {
	event := testEvent(10)
	repo := newFakeRegistrationRepo(newFakeEventRepo(event))
	emails := &fakeEmailService{err: errors.New("ses throttled")}
	svc := newTestRegistrationService(repo, emails)

	status, err := svc.Submit(context.Background(), event, validInput())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSucceeded, status)
	svc.Wait()
	assert.Equal(t, 1, emails.count())
	assert.Len(t, repo.all(), 1)
}

func TestRegistrationService_Submit_NotOpenYet(t *testing.T) {
	event := testEvent(10)
	opens := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	event.RegistrationOpensAt = &opens
	repo := newFakeRegistrationRepo(newFakeEventRepo(event))
	svc := newTestRegistrationService(repo, nil)

	svc.now = func() time.Time { return opens.Add(-time.Minute) }
	status, err := svc.Submit(context.Background(), event, validInput())
	require.ErrorIs(t, err, domain.ErrRegistrationNotOpen)
	assert.Equal(t, domain.StatusFailed, status)

	svc.now = func() time.Time { return opens }
	status, err = svc.Submit(context.Background(), event, validInput())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSucceeded, status)
}

func TestRegistrationService_Submit_NoEvent(t *testing.T) {
	svc := newTestRegistrationService(newFakeRegistrationRepo(newFakeEventRepo()), nil)
	status, err := svc.Submit(context.Background(), nil, validInput())
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.StatusFailed, status)
}

func TestRegistrationService_Participants(t *testing.T) {
	event := testEvent(10)
	repo := newFakeRegistrationRepo(newFakeEventRepo(event))
	svc := newTestRegistrationService(repo, nil)
	for i := 0; i < 5; i++ {
		_, err := svc.Submit(context.Background(), event, validInput())
		require.NoError(t, err)
	}

	page, total, err := svc.ListParticipants(context.Background(), "ev-1", domain.PaginationParams{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, page, 2)

	require.NoError(t, svc.DeleteParticipant(context.Background(), page[0].Token))
	assert.Len(t, repo.all(), 4)
	assert.ErrorIs(t, svc.DeleteParticipant(context.Background(), page[0].Token), domain.ErrNotFound)
}

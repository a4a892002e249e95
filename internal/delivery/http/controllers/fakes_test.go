package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"techtalks/internal/delivery/http/helpers"
	"techtalks/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const (
	testEventID   = "5f0c6a52-8d0e-4c1e-9a57-3f7a1c2b9d01"
	testCompanyID = "b7e4d1a0-2c3f-4e5a-8b6c-7d8e9f0a1b2c"
	testRoomID    = "0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"
	testEntryID   = "9c8b7a6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
	testToken     = "3d6f0a1e-7b2c-4d5e-9f8a-0b1c2d3e4f5a"
)

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeStatus(t *testing.T, rec *httptest.ResponseRecorder) helpers.StatusEnvelope {
	t.Helper()
	var env helpers.StatusEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

// decodeData decodes the envelope at rec into a typed data value.
func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) (T, *helpers.APIError) {
	t.Helper()
	var env struct {
		Data  T                 `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env.Data, env.Error
}

func newRequest(method, target string, body io.Reader, pathValues map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	for k, v := range pathValues {
		req.SetPathValue(k, v)
	}
	return req
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	current       *domain.Event
	currentErr    error
	home          *domain.HomePage
	homeErr       error
	events        []*domain.EventSummary
	listErr       error
	latest        *domain.EventSummary
	latestErr     error
	detail        *domain.EventDetail
	detailErr     error
	createErr     error
	updateStatus  domain.Status
	updateErr     error
	deleteErr     error
	lastDetailID  string
	lastParams    domain.PaginationParams
	lastCreated   *domain.Event
	lastUpdated   *domain.Event
	lastDeletedID string
}

func (f *fakeEventService) GetCurrentEvent(context.Context) (*domain.Event, error) {
	return f.current, f.currentErr
}

func (f *fakeEventService) GetHome(context.Context) (*domain.HomePage, error) {
	return f.home, f.homeErr
}

func (f *fakeEventService) ListEvents(context.Context) ([]*domain.EventSummary, error) {
	return f.events, f.listErr
}

func (f *fakeEventService) GetLatestEvent(context.Context) (*domain.EventSummary, error) {
	return f.latest, f.latestErr
}

func (f *fakeEventService) GetEventDetail(_ context.Context, eventID string, params domain.PaginationParams) (*domain.EventDetail, error) {
	f.lastDetailID = eventID
	f.lastParams = params
	return f.detail, f.detailErr
}

func (f *fakeEventService) CreateEvent(_ context.Context, event *domain.Event) error {
	f.lastCreated = event
	if f.createErr != nil {
		return f.createErr
	}
	event.ID = testEventID
	return nil
}

func (f *fakeEventService) UpdateEvent(_ context.Context, event *domain.Event) (domain.Status, error) {
	f.lastUpdated = event
	return f.updateStatus, f.updateErr
}

func (f *fakeEventService) DeleteEvent(_ context.Context, eventID string) error {
	f.lastDeletedID = eventID
	return f.deleteErr
}

// fakeRegistrationService implements domain.RegistrationService.
type fakeRegistrationService struct {
	submitStatus  domain.Status
	submitErr     error
	lastEvent     *domain.Event
	lastInput     domain.RegistrationInput
	participants  []*domain.Registration
	total         int
	listErr       error
	lastListEvent string
	lastParams    domain.PaginationParams
	deleteErr     error
	lastDeleted   string
}

func (f *fakeRegistrationService) Submit(_ context.Context, event *domain.Event, in domain.RegistrationInput) (domain.Status, error) {
	f.lastEvent = event
	f.lastInput = in
	return f.submitStatus, f.submitErr
}

func (f *fakeRegistrationService) ListParticipants(_ context.Context, eventID string, params domain.PaginationParams) ([]*domain.Registration, int, error) {
	f.lastListEvent = eventID
	f.lastParams = params
	return f.participants, f.total, f.listErr
}

func (f *fakeRegistrationService) DeleteParticipant(_ context.Context, token string) error {
	f.lastDeleted = token
	return f.deleteErr
}

func (f *fakeRegistrationService) Wait() {}

// fakeVerificationService implements domain.VerificationService.
type fakeVerificationService struct {
	status    domain.Status
	err       error
	lastToken string
}

func (f *fakeVerificationService) Verify(_ context.Context, token string) (domain.Status, error) {
	f.lastToken = token
	return f.status, f.err
}

// fakeCompanyService implements domain.CompanyService.
type fakeCompanyService struct {
	companies     []*domain.CompanyWithTier
	listErr       error
	createErr     error
	lastCreated   *domain.Company
	lastTier      int
	updateStatus  domain.Status
	updateErr     error
	lastUpdated   *domain.Company
	deleteErr     error
	lastDeletedID string
	directory     []*domain.DirectoryCompany
	directoryErr  error
	lastSearch    string
	sponsors      []*domain.SponsorView
	sponsorsErr   error
	addErr        error
	lastSponsor   *domain.Sponsor
	removeErr     error
	lastRemoved   [2]string
}

func (f *fakeCompanyService) ListCompanies(context.Context) ([]*domain.CompanyWithTier, error) {
	return f.companies, f.listErr
}

func (f *fakeCompanyService) CreateCompany(_ context.Context, company *domain.Company, tier int) error {
	f.lastCreated = company
	f.lastTier = tier
	if f.createErr != nil {
		return f.createErr
	}
	company.ID = testCompanyID
	return nil
}

func (f *fakeCompanyService) UpdateCompany(_ context.Context, company *domain.Company, tier int) (domain.Status, error) {
	f.lastUpdated = company
	f.lastTier = tier
	return f.updateStatus, f.updateErr
}

func (f *fakeCompanyService) DeleteCompany(_ context.Context, companyID string) error {
	f.lastDeletedID = companyID
	return f.deleteErr
}

func (f *fakeCompanyService) SearchDirectory(_ context.Context, name string) ([]*domain.DirectoryCompany, error) {
	f.lastSearch = name
	return f.directory, f.directoryErr
}

func (f *fakeCompanyService) ListSponsors(context.Context, string) ([]*domain.SponsorView, error) {
	return f.sponsors, f.sponsorsErr
}

func (f *fakeCompanyService) AddSponsor(_ context.Context, sponsor *domain.Sponsor) error {
	f.lastSponsor = sponsor
	return f.addErr
}

func (f *fakeCompanyService) RemoveSponsor(_ context.Context, eventID, companyID string) error {
	f.lastRemoved = [2]string{eventID, companyID}
	return f.removeErr
}

// fakeRoomService implements domain.RoomService.
type fakeRoomService struct {
	rooms         []*domain.Room
	listErr       error
	createErr     error
	updateStatus  domain.Status
	updateErr     error
	lastUpdated   *domain.Room
	deleteErr     error
	lastDeletedID string
}

func (f *fakeRoomService) ListRooms(context.Context) ([]*domain.Room, error) {
	return f.rooms, f.listErr
}

func (f *fakeRoomService) CreateRoom(_ context.Context, room *domain.Room) error {
	if f.createErr != nil {
		return f.createErr
	}
	room.ID = testRoomID
	return nil
}

func (f *fakeRoomService) UpdateRoom(_ context.Context, room *domain.Room) (domain.Status, error) {
	f.lastUpdated = room
	return f.updateStatus, f.updateErr
}

func (f *fakeRoomService) DeleteRoom(_ context.Context, roomID string) error {
	f.lastDeletedID = roomID
	return f.deleteErr
}

// fakeProgramService implements domain.ProgramService.
type fakeProgramService struct {
	entries       []*domain.ProgramEntryView
	listErr       error
	options       *domain.ProgramOptions
	optionsErr    error
	createErr     error
	lastCreated   *domain.ProgramEntry
	updateStatus  domain.Status
	updateErr     error
	lastUpdated   *domain.ProgramEntry
	deleteErr     error
	lastDeletedID string
}

func (f *fakeProgramService) ListProgram(context.Context, string) ([]*domain.ProgramEntryView, error) {
	return f.entries, f.listErr
}

func (f *fakeProgramService) GetProgramOptions(context.Context, string) (*domain.ProgramOptions, error) {
	return f.options, f.optionsErr
}

func (f *fakeProgramService) CreateEntry(_ context.Context, entry *domain.ProgramEntry) error {
	f.lastCreated = entry
	if f.createErr != nil {
		return f.createErr
	}
	entry.ID = testEntryID
	return nil
}

func (f *fakeProgramService) UpdateEntry(_ context.Context, entry *domain.ProgramEntry) (domain.Status, error) {
	f.lastUpdated = entry
	return f.updateStatus, f.updateErr
}

func (f *fakeProgramService) DeleteEntry(_ context.Context, entryID string) error {
	f.lastDeletedID = entryID
	return f.deleteErr
}

// fakeAdminAuth implements domain.AdminAuthService and domain.Guard.
type fakeAdminAuth struct {
	token     string
	loginErr  error
	lastUser  string
	validCred string
}

func (f *fakeAdminAuth) Login(_ context.Context, username, _ string) (string, error) {
	f.lastUser = username
	return f.token, f.loginErr
}

func (f *fakeAdminAuth) Authorize(credential string) (string, error) {
	if credential != f.validCred {
		return "", domain.ErrUnauthorized
	}
	return "admin", nil
}

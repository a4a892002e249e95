package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"techtalks/internal/domain"
)

// fakeEventRepo is an in-memory EventRepository for tests.
type fakeEventRepo struct {
	mu     sync.Mutex
	byID   map[string]*domain.Event
	nextID int
	err    error // if set, every method returns this error
}

func newFakeEventRepo(events ...*domain.Event) *fakeEventRepo {
	f := &fakeEventRepo{byID: make(map[string]*domain.Event), nextID: 1}
	for _, e := range events {
		f.byID[e.ID] = e
	}
	return f
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.nextID++
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) sorted() []*domain.Event {
	out := make([]*domain.Event, 0, len(f.byID))
	for _, e := range f.byID {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (f *fakeEventRepo) GetCurrent(ctx context.Context) (*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	events := f.sorted()
	if len(events) == 0 {
		return nil, domain.ErrNotFound
	}
	return events[0], nil
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.EventSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.EventSummary
	for _, e := range f.sorted() {
		out = append(out, &domain.EventSummary{Event: *e})
	}
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	old, ok := f.byID[e.ID]
	if !ok {
		return false, domain.ErrNotFound
	}
	if old.Description == e.Description && old.Capacity == e.Capacity && old.Date.Equal(e.Date) {
		return false, nil
	}
	f.byID[e.ID] = e
	return true, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeRegistrationRepo is an in-memory RegistrationRepository. Confirm reads capacities from
// events and holds the mutex for the whole check-and-flip, as the store transaction does.
type fakeRegistrationRepo struct {
	mu        sync.Mutex
	byToken   map[string]*domain.Registration
	events    *fakeEventRepo
	createErr []error // popped one per Create call
	confirmed func()  // called after each successful Confirm
}

func newFakeRegistrationRepo(events *fakeEventRepo) *fakeRegistrationRepo {
	return &fakeRegistrationRepo{byToken: make(map[string]*domain.Registration), events: events}
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, reg *domain.Registration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.createErr) > 0 {
		err := f.createErr[0]
		f.createErr = f.createErr[1:]
		if err != nil {
			return err
		}
	}
	if _, ok := f.byToken[reg.Token]; ok {
		return domain.ErrDuplicateToken
	}
	cp := *reg
	f.byToken[reg.Token] = &cp
	return nil
}

func (f *fakeRegistrationRepo) GetByToken(ctx context.Context, token string) (*domain.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reg, ok := f.byToken[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *reg
	return &cp, nil
}

func (f *fakeRegistrationRepo) countConfirmed(eventID string) int {
	n := 0
	for _, r := range f.byToken {
		if r.EventID == eventID && r.Confirmed {
			n++
		}
	}
	return n
}

func (f *fakeRegistrationRepo) CountConfirmed(ctx context.Context, eventID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.countConfirmed(eventID), nil
}

func (f *fakeRegistrationRepo) Confirm(ctx context.Context, token string) (domain.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reg, ok := f.byToken[token]
	if !ok {
		return domain.StatusFailed, domain.ErrNotFound
	}
	if reg.Confirmed {
		return domain.StatusRepeat, nil
	}
	event, err := f.events.GetByID(ctx, reg.EventID)
	if err != nil {
		return domain.StatusFailed, err
	}
	if f.countConfirmed(reg.EventID) >= event.Capacity {
		return domain.StatusFull, nil
	}
	now := time.Now()
	reg.Confirmed = true
	reg.ConfirmedAt = &now
	if f.confirmed != nil {
		f.confirmed()
	}
	return domain.StatusSucceeded, nil
}

func (f *fakeRegistrationRepo) ListByEventID(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Registration, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*domain.Registration
	for _, r := range f.byToken {
		if r.EventID == eventID {
			all = append(all, r)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Token < all[j].Token })
	total := len(all)
	start := min(params.Offset(), total)
	end := total
	if params.Limit() >= 0 {
		end = min(start+params.Limit(), total)
	}
	return all[start:end], total, nil
}

func (f *fakeRegistrationRepo) Delete(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byToken[token]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byToken, token)
	return nil
}

func (f *fakeRegistrationRepo) all() []*domain.Registration {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Registration, 0, len(f.byToken))
	for _, r := range f.byToken {
		cp := *r
		out = append(out, &cp)
	}
	return out
}

// fakeSponsorRepo is an in-memory SponsorRepository keyed by event and company.
type fakeSponsorRepo struct {
	tiers map[[2]string]int
	calls []string
}

func newFakeSponsorRepo() *fakeSponsorRepo {
	return &fakeSponsorRepo{tiers: make(map[[2]string]int)}
}

func (f *fakeSponsorRepo) Add(ctx context.Context, s *domain.Sponsor) error {
	f.calls = append(f.calls, "add")
	f.tiers[[2]string{s.EventID, s.CompanyID}] = s.Tier
	return nil
}

// tier returns the stored tier, 0 when companyID does not sponsor eventID.
func (f *fakeSponsorRepo) tier(eventID, companyID string) int {
	return f.tiers[[2]string{eventID, companyID}]
}

func (f *fakeSponsorRepo) Remove(ctx context.Context, eventID, companyID string) error {
	f.calls = append(f.calls, "remove")
	key := [2]string{eventID, companyID}
	if _, ok := f.tiers[key]; !ok {
		return domain.ErrNotFound
	}
	delete(f.tiers, key)
	return nil
}

func (f *fakeSponsorRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.SponsorView, error) {
	var out []*domain.SponsorView
	for key, tier := range f.tiers {
		if key[0] == eventID {
			out = append(out, &domain.SponsorView{CompanyID: key[1], Tier: tier})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tier > out[j].Tier })
	return out, nil
}

// fakeCompanyRepo is an in-memory CompanyRepository. Sponsor rows live in sponsors;
// sponsorErr fails the sponsor write and leaves both the company and the sponsor untouched.
type fakeCompanyRepo struct {
	byID       map[string]*domain.Company
	nextID     int
	sponsors   *fakeSponsorRepo
	sponsorErr error
}

func newFakeCompanyRepo(sponsors *fakeSponsorRepo, companies ...*domain.Company) *fakeCompanyRepo {
	f := &fakeCompanyRepo{byID: make(map[string]*domain.Company), nextID: 1, sponsors: sponsors}
	for _, c := range companies {
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeCompanyRepo) Create(ctx context.Context, c *domain.Company, eventID string, tier int) error {
	id := fmt.Sprintf("co-%d", f.nextID)
	if err := f.moveSponsor(eventID, id, tier); err != nil {
		return err
	}
	f.nextID++
	c.ID = id
	cp := *c
	f.byID[id] = &cp
	return nil
}

func (f *fakeCompanyRepo) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCompanyRepo) ListWithTier(ctx context.Context, eventID string) ([]*domain.CompanyWithTier, error) {
	var out []*domain.CompanyWithTier
	for _, c := range f.byID {
		out = append(out, &domain.CompanyWithTier{Company: *c})
	}
	return out, nil
}

func (f *fakeCompanyRepo) Update(ctx context.Context, c *domain.Company, eventID string, tier int) (bool, error) {
	old, ok := f.byID[c.ID]
	if !ok {
		return false, domain.ErrNotFound
	}
	before := len(f.sponsors.calls)
	if err := f.moveSponsor(eventID, c.ID, tier); err != nil {
		return false, err
	}
	sponsorChanged := len(f.sponsors.calls) > before
	if *old == *c {
		return sponsorChanged, nil
	}
	cp := *c
	f.byID[c.ID] = &cp
	return true, nil
}

func (f *fakeCompanyRepo) moveSponsor(eventID, companyID string, tier int) error {
	if eventID == "" {
		return nil
	}
	change := domain.PlanSponsorChange(f.sponsors.tier(eventID, companyID), tier)
	if change == domain.SponsorUnchanged {
		return nil
	}
	if f.sponsorErr != nil {
		return f.sponsorErr
	}
	key := [2]string{eventID, companyID}
	switch change {
	case domain.SponsorAdded:
		f.sponsors.calls = append(f.sponsors.calls, "add")
		f.sponsors.tiers[key] = tier
	case domain.SponsorRetiered:
		f.sponsors.calls = append(f.sponsors.calls, "update")
		f.sponsors.tiers[key] = tier
	case domain.SponsorRemoved:
		f.sponsors.calls = append(f.sponsors.calls, "remove")
		delete(f.sponsors.tiers, key)
	}
	return nil
}

func (f *fakeCompanyRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeProgramRepo is an in-memory ProgramRepository.
type fakeProgramRepo struct {
	entries map[string]*domain.ProgramEntry
}

func newFakeProgramRepo() *fakeProgramRepo {
	return &fakeProgramRepo{entries: make(map[string]*domain.ProgramEntry)}
}

func (f *fakeProgramRepo) Create(ctx context.Context, p *domain.ProgramEntry) error {
	p.ID = fmt.Sprintf("p-%d", len(f.entries)+1)
	cp := *p
	f.entries[p.ID] = &cp
	return nil
}

func (f *fakeProgramRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.ProgramEntryView, error) {
	var out []*domain.ProgramEntryView
	for _, p := range f.entries {
		if p.EventID == eventID {
			out = append(out, &domain.ProgramEntryView{ProgramEntry: *p})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out, nil
}

func (f *fakeProgramRepo) Update(ctx context.Context, p *domain.ProgramEntry) (bool, error) {
	old, ok := f.entries[p.ID]
	if !ok {
		return false, domain.ErrNotFound
	}
	if old.Name == p.Name && old.RoomID == p.RoomID && old.StartsAt.Equal(p.StartsAt) &&
		old.DurationMinutes == p.DurationMinutes && old.Description == p.Description {
		return false, nil
	}
	cp := *p
	f.entries[p.ID] = &cp
	return true, nil
}

func (f *fakeProgramRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.entries[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.entries, id)
	return nil
}

// fakeRoomRepo is an in-memory RoomRepository.
type fakeRoomRepo struct {
	rooms map[string]*domain.Room
}

func newFakeRoomRepo(rooms ...*domain.Room) *fakeRoomRepo {
	f := &fakeRoomRepo{rooms: make(map[string]*domain.Room)}
	for _, r := range rooms {
		f.rooms[r.ID] = r
	}
	return f
}

func (f *fakeRoomRepo) Create(ctx context.Context, r *domain.Room) error {
	r.ID = fmt.Sprintf("room-%d", len(f.rooms)+1)
	cp := *r
	f.rooms[r.ID] = &cp
	return nil
}

func (f *fakeRoomRepo) List(ctx context.Context) ([]*domain.Room, error) {
	var out []*domain.Room
	for _, r := range f.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoomRepo) Update(ctx context.Context, r *domain.Room) (bool, error) {
	old, ok := f.rooms[r.ID]
	if !ok {
		return false, domain.ErrNotFound
	}
	if *old == *r {
		return false, nil
	}
	cp := *r
	f.rooms[r.ID] = &cp
	return true, nil
}

func (f *fakeRoomRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.rooms[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.rooms, id)
	return nil
}

// fakeEmailService records confirmation e-mails.
type fakeEmailService struct {
	mu   sync.Mutex
	sent []*domain.RegistrationConfirmationEmailData
	err  error
}

func (f *fakeEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, data)
	return f.err
}

func (f *fakeEmailService) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

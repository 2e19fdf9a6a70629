package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/app/repositories"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
)

// In-memory stores for service tests. They mirror the error contract of the
// postgres repositories, not their SQL.

type memUserStore struct {
	users map[uuid.UUID]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[uuid.UUID]*models.User{}}
}

func (m *memUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *memUserStore) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	u, ok := m.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	now := time.Now()
	u.LastLoginAt = &now
	return nil
}

type memTokenStore struct {
	tokens map[string]*models.RefreshToken
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{tokens: map[string]*models.RefreshToken{}}
}

func (m *memTokenStore) CreateToken(_ context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	m.tokens[token] = &models.RefreshToken{ID: uuid.New(), UserID: userID, Token: token, ExpiresAt: expiresAt}
	return nil
}

func (m *memTokenStore) GetToken(_ context.Context, token string) (*models.RefreshToken, error) {
	rt, ok := m.tokens[token]
	switch {
	case !ok:
		return nil, apperrors.ErrTokenNotFound
	case rt.Revoked:
		return nil, apperrors.ErrTokenRevoked
	case rt.ExpiresAt.Before(time.Now()):
		return nil, apperrors.ErrTokenExpired
	}
	cp := *rt
	return &cp, nil
}

func (m *memTokenStore) RevokeToken(_ context.Context, token string) error {
	rt, ok := m.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	rt.Revoked = true
	return nil
}

func (m *memTokenStore) RevokeAllUserTokens(_ context.Context, userID uuid.UUID) error {
	for _, rt := range m.tokens {
		if rt.UserID == userID {
			rt.Revoked = true
		}
	}
	return nil
}

type memProfileStore struct {
	profiles map[uuid.UUID]*models.Profile
	listAll  int
}

func newMemProfileStore() *memProfileStore {
	return &memProfileStore{profiles: map[uuid.UUID]*models.Profile{}}
}

// add stores p as is, assigning an id when missing, and returns it
func (m *memProfileStore) add(p *models.Profile) *models.Profile {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.UserID == uuid.Nil {
		p.UserID = uuid.New()
	}
	m.profiles[p.ID] = p
	return p
}

func (m *memProfileStore) Create(_ context.Context, p *models.Profile) error {
	for _, existing := range m.profiles {
		if existing.UserID == p.UserID {
			return apperrors.ErrProfileAlreadyExists
		}
	}
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	m.profiles[p.ID] = &cp
	return nil
}

func (m *memProfileStore) GetByID(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	p, ok := m.profiles[id]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memProfileStore) GetByUserID(_ context.Context, userID uuid.UUID) (*models.Profile, error) {
	for _, p := range m.profiles {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperrors.ErrProfileNotFound
}

func (m *memProfileStore) List(ctx context.Context, filter dto.ProfileFilter) ([]*models.Profile, int64, error) {
	all, _ := m.ListAll(ctx, filter.ProfileType)
	return all, int64(len(all)), nil
}

func (m *memProfileStore) ListAll(_ context.Context, profileType models.ProfileType) ([]*models.Profile, error) {
	m.listAll++
	out := make([]*models.Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		if profileType == "" || p.ProfileType == profileType {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memProfileStore) Update(_ context.Context, p *models.Profile) error {
	if _, ok := m.profiles[p.ID]; !ok {
		return apperrors.ErrProfileNotFound
	}
	cp := *p
	m.profiles[p.ID] = &cp
	return nil
}

func (m *memProfileStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.profiles[id]; !ok {
		return apperrors.ErrProfileNotFound
	}
	delete(m.profiles, id)
	return nil
}

type memCollaborationStore struct {
	rows map[uuid.UUID]*models.Collaboration
}

func newMemCollaborationStore() *memCollaborationStore {
	return &memCollaborationStore{rows: map[uuid.UUID]*models.Collaboration{}}
}

func (m *memCollaborationStore) Create(_ context.Context, c *models.Collaboration) error {
	c.ID = uuid.New()
	c.Status = models.CollaborationPending
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

func (m *memCollaborationStore) GetByID(_ context.Context, id uuid.UUID) (*models.Collaboration, error) {
	c, ok := m.rows[id]
	if !ok {
		return nil, apperrors.ErrCollaborationNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memCollaborationStore) ListBetween(_ context.Context, a, b uuid.UUID) ([]*models.Collaboration, error) {
	var out []*models.Collaboration
	for _, c := range m.rows {
		if c.Involves(a) && c.Involves(b) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memCollaborationStore) ListForProfile(_ context.Context, profileID uuid.UUID, status models.CollaborationStatus, direction repositories.CollaborationDirection) ([]*models.Collaboration, error) {
	var out []*models.Collaboration
	for _, c := range m.rows {
		if c.Status != status {
			continue
		}
		switch direction {
		case repositories.DirectionIncoming:
			if c.RecipientID != profileID {
				continue
			}
		case repositories.DirectionOutgoing:
			if c.RequesterID != profileID {
				continue
			}
		default:
			if !c.Involves(profileID) {
				continue
			}
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memCollaborationStore) Resolve(_ context.Context, id uuid.UUID, status models.CollaborationStatus) error {
	c, ok := m.rows[id]
	if !ok {
		return apperrors.ErrCollaborationNotFound
	}
	if c.Status != models.CollaborationPending {
		return apperrors.ErrAlreadyResolved
	}
	now := time.Now()
	c.Status = status
	c.RespondedAt = &now
	return nil
}

type memEventStore struct {
	mu     sync.Mutex
	events map[uuid.UUID]*models.Event
	regs   map[uuid.UUID][]*models.EventRegistration
}

func newMemEventStore() *memEventStore {
	return &memEventStore{
		events: map[uuid.UUID]*models.Event{},
		regs:   map[uuid.UUID][]*models.EventRegistration{},
	}
}

func (m *memEventStore) Create(_ context.Context, e *models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = uuid.New()
	cp := *e
	m.events[e.ID] = &cp
	return nil
}

func (m *memEventStore) GetByID(_ context.Context, id uuid.UUID) (*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	cp := *e
	cp.AttendeeCount = len(m.regs[id])
	return &cp, nil
}

func (m *memEventStore) List(_ context.Context, filter dto.EventFilter) ([]*models.Event, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Event
	for _, e := range m.events {
		if filter.From != nil && e.StartDate.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !e.StartDate.Before(*filter.To) {
			continue
		}
		cp := *e
		cp.AttendeeCount = len(m.regs[e.ID])
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, int64(len(out)), nil
}

func (m *memEventStore) ListRegisteredFor(_ context.Context, userID uuid.UUID) ([]*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Event
	for id, regs := range m.regs {
		for _, r := range regs {
			if r.UserID == userID {
				cp := *m.events[id]
				cp.AttendeeCount = len(regs)
				out = append(out, &cp)
			}
		}
	}
	return out, nil
}

func (m *memEventStore) Update(_ context.Context, e *models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[e.ID]; !ok {
		return apperrors.ErrEventNotFound
	}
	cp := *e
	m.events[e.ID] = &cp
	return nil
}

func (m *memEventStore) Register(_ context.Context, eventID, userID uuid.UUID, now time.Time) (*models.EventRegistration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[eventID]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	for _, r := range m.regs[eventID] {
		if r.UserID == userID {
			return nil, apperrors.ErrAlreadyRegistered
		}
	}
	current := *e
	current.AttendeeCount = len(m.regs[eventID])
	if current.DeadlinePassed(now) {
		return nil, apperrors.ErrRegistrationClosed
	}
	if current.IsFull() {
		return nil, apperrors.ErrEventFull
	}
	reg := &models.EventRegistration{ID: uuid.New(), EventID: eventID, UserID: userID, RegisteredAt: now}
	m.regs[eventID] = append(m.regs[eventID], reg)
	return reg, nil
}

func (m *memEventStore) CancelRegistration(_ context.Context, eventID, userID uuid.UUID, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[eventID]
	if !ok {
		return apperrors.ErrEventNotFound
	}
	if !now.Before(e.StartDate) {
		return apperrors.ErrEventAlreadyStarted
	}
	regs := m.regs[eventID]
	for i, r := range regs {
		if r.UserID == userID {
			m.regs[eventID] = append(regs[:i], regs[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotRegistered
}

func (m *memEventStore) RegisteredEventIDs(_ context.Context, userID uuid.UUID, eventIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[uuid.UUID]bool{}
	for _, id := range eventIDs {
		for _, r := range m.regs[id] {
			if r.UserID == userID {
				out[id] = true
			}
		}
	}
	return out, nil
}

func (m *memEventStore) ListRegistrations(_ context.Context, eventID uuid.UUID) ([]*models.EventRegistration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*models.EventRegistration(nil), m.regs[eventID]...), nil
}

type memResourceStore struct {
	resources map[uuid.UUID]*models.Resource
	bookmarks map[uuid.UUID]map[uuid.UUID]bool
}

func newMemResourceStore() *memResourceStore {
	return &memResourceStore{
		resources: map[uuid.UUID]*models.Resource{},
		bookmarks: map[uuid.UUID]map[uuid.UUID]bool{},
	}
}

func (m *memResourceStore) Create(_ context.Context, res *models.Resource) error {
	res.ID = uuid.New()
	cp := *res
	m.resources[res.ID] = &cp
	return nil
}

func (m *memResourceStore) GetByID(_ context.Context, id uuid.UUID) (*models.Resource, error) {
	r, ok := m.resources[id]
	if !ok {
		return nil, apperrors.ErrLearningResourceNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memResourceStore) List(_ context.Context, _ dto.ResourceFilter) ([]*models.Resource, int64, error) {
	out := make([]*models.Resource, 0, len(m.resources))
	for _, r := range m.resources {
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, int64(len(out)), nil
}

func (m *memResourceStore) Update(_ context.Context, res *models.Resource) error {
	if _, ok := m.resources[res.ID]; !ok {
		return apperrors.ErrLearningResourceNotFound
	}
	cp := *res
	m.resources[res.ID] = &cp
	return nil
}

func (m *memResourceStore) ToggleBookmark(_ context.Context, userID, resourceID uuid.UUID) (bool, error) {
	if _, ok := m.resources[resourceID]; !ok {
		return false, apperrors.ErrLearningResourceNotFound
	}
	if m.bookmarks[userID] == nil {
		m.bookmarks[userID] = map[uuid.UUID]bool{}
	}
	if m.bookmarks[userID][resourceID] {
		delete(m.bookmarks[userID], resourceID)
		return false, nil
	}
	m.bookmarks[userID][resourceID] = true
	return true, nil
}

func (m *memResourceStore) DeleteBookmark(_ context.Context, userID, resourceID uuid.UUID) error {
	if !m.bookmarks[userID][resourceID] {
		return apperrors.ErrBookmarkNotFound
	}
	delete(m.bookmarks[userID], resourceID)
	return nil
}

func (m *memResourceStore) ListBookmarked(_ context.Context, userID uuid.UUID) ([]*models.Resource, error) {
	var out []*models.Resource
	for id := range m.bookmarks[userID] {
		cp := *m.resources[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memResourceStore) BookmarkedIDs(_ context.Context, userID uuid.UUID, resourceIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	out := map[uuid.UUID]bool{}
	for _, id := range resourceIDs {
		if m.bookmarks[userID][id] {
			out[id] = true
		}
	}
	return out, nil
}

// staticAdmins answers IsAdmin from a fixed set
type staticAdmins map[uuid.UUID]bool

func (a staticAdmins) IsAdmin(_ context.Context, userID uuid.UUID) (bool, error) {
	return a[userID], nil
}

// recordingNotifier keeps the notifier calls made by a service
type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
	users []uuid.UUID
}

func (r *recordingNotifier) record(name string, userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
	r.users = append(r.users, userID)
}

func (r *recordingNotifier) CollaborationRequested(_ context.Context, _ *models.Collaboration, _, recipient *models.Profile) {
	r.record("collaboration_requested", recipient.UserID)
}

func (r *recordingNotifier) CollaborationResolved(_ context.Context, _ *models.Collaboration, requester, _ *models.Profile) {
	r.record("collaboration_resolved", requester.UserID)
}

func (r *recordingNotifier) EventRegistered(_ context.Context, _ *models.Event, reg *models.EventRegistration, _ string) {
	r.record("event_registered", reg.UserID)
}

func (r *recordingNotifier) EventRegistrationCancelled(_ context.Context, _ *models.Event, userID uuid.UUID) {
	r.record("event_registration_cancelled", userID)
}

func (r *recordingNotifier) SubmissionCreated(_ context.Context, _ *models.Submission, authorUserID uuid.UUID) {
	r.record("submission_created", authorUserID)
}

func (r *recordingNotifier) SubmissionReviewed(_ context.Context, _ *models.Submission, authorUserID uuid.UUID) {
	r.record("submission_reviewed", authorUserID)
}

func (r *recordingNotifier) Wait() {}

// countingInvalidator counts match cache invalidations
type countingInvalidator struct{ n int }

func (c *countingInvalidator) InvalidateMatches(context.Context) { c.n++ }

package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestCanTransition(t *testing.T) {
	statuses := []CollaborationStatus{CollaborationPending, CollaborationAccepted, CollaborationDeclined}

	for _, from := range statuses {
		for _, to := range statuses {
			want := from == CollaborationPending && to != CollaborationPending
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestConnectionStateFor(t *testing.T) {
	me, other := uuid.New(), uuid.New()
	outgoing := &Collaboration{RequesterID: me, RecipientID: other, Status: CollaborationPending}
	incoming := &Collaboration{RequesterID: other, RecipientID: me, Status: CollaborationPending}
	accepted := &Collaboration{RequesterID: other, RecipientID: me, Status: CollaborationAccepted}
	declined := &Collaboration{RequesterID: me, RecipientID: other, Status: CollaborationDeclined}

	assert.Equal(t, ConnectionNone, ConnectionStateFor(me, nil))
	assert.Equal(t, ConnectionNone, ConnectionStateFor(me, []*Collaboration{declined}))
	assert.Equal(t, ConnectionPendingOutgoing, ConnectionStateFor(me, []*Collaboration{declined, outgoing}))
	assert.Equal(t, ConnectionPendingIncoming, ConnectionStateFor(me, []*Collaboration{incoming}))
	assert.Equal(t, ConnectionConnected, ConnectionStateFor(me, []*Collaboration{outgoing, accepted}))
}

func TestCounterpart(t *testing.T) {
	me, other := uuid.New(), uuid.New()
	c := &Collaboration{
		RequesterID: me,
		RecipientID: other,
		Requester:   &ProfileSummary{ID: me, Name: "Me"},
		Recipient:   &ProfileSummary{ID: other, Name: "Them"},
	}

	id, summary := c.Counterpart(me)
	assert.Equal(t, other, id)
	assert.Equal(t, "Them", summary.Name)

	id, summary = c.Counterpart(other)
	assert.Equal(t, me, id)
	assert.Equal(t, "Me", summary.Name)
	assert.False(t, c.Involves(uuid.New()))
}

func TestEventRegistrationWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)

	testCases := []struct {
		name      string
		event     Event
		wantOpen  bool
		wantSpots *int
	}{
		{
			name:     "deadline in the past",
			event:    Event{StartDate: future, EndDate: future.Add(time.Hour), RegistrationDeadline: &past},
			wantOpen: false,
		},
		{
			name:      "capacity reached",
			event:     Event{StartDate: future, EndDate: future.Add(time.Hour), MaxAttendees: intPtr(2), AttendeeCount: 2},
			wantOpen:  false,
			wantSpots: intPtr(0),
		},
		{
			name:      "seats left",
			event:     Event{StartDate: future, EndDate: future.Add(time.Hour), MaxAttendees: intPtr(10), AttendeeCount: 3},
			wantOpen:  true,
			wantSpots: intPtr(7),
		},
		{
			name:     "no deadline closes at start",
			event:    Event{StartDate: now.Add(-time.Hour), EndDate: now.Add(time.Hour)},
			wantOpen: false,
		},
		{
			name:     "uncapped and open",
			event:    Event{StartDate: future, EndDate: future.Add(time.Hour)},
			wantOpen: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantOpen, tc.event.RegistrationOpen(now))
			assert.Equal(t, tc.wantSpots, tc.event.SpotsLeft())
		})
	}
}

func TestEventValidSchedule(t *testing.T) {
	start := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	late := start.Add(time.Minute)
	early := start.Add(-24 * time.Hour)

	assert.True(t, (&Event{StartDate: start, EndDate: end}).ValidSchedule())
	assert.True(t, (&Event{StartDate: start, EndDate: end, RegistrationDeadline: &early}).ValidSchedule())
	assert.True(t, (&Event{StartDate: start, EndDate: end, RegistrationDeadline: &start}).ValidSchedule())
	assert.False(t, (&Event{StartDate: end, EndDate: start}).ValidSchedule())
	assert.False(t, (&Event{StartDate: start, EndDate: start}).ValidSchedule())
	assert.False(t, (&Event{StartDate: start, EndDate: end, RegistrationDeadline: &late}).ValidSchedule())
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" Foster Care ", "", "foster  care", "Trauma", "  ", "TRAUMA", "Policy"})
	assert.Equal(t, []string{"Foster Care", "Trauma", "Policy"}, got)
	assert.Equal(t, []string{}, NormalizeTags(nil))
}

func TestProfileDetailsValidate(t *testing.T) {
	student := ProfileDetails{Student: &StudentDetails{University: "State U"}}
	agency := ProfileDetails{Agency: &AgencyDetails{AgencyType: "Non-profit"}}
	both := ProfileDetails{Student: &StudentDetails{}, Agency: &AgencyDetails{}}

	require.NoError(t, student.Validate(ProfileTypeStudent))
	require.NoError(t, ProfileDetails{}.Validate(ProfileTypeResearcher))
	assert.Error(t, student.Validate(ProfileTypeAgency))
	assert.Error(t, agency.Validate(ProfileTypeResearcher))
	assert.Error(t, both.Validate(ProfileTypeStudent))
	assert.Error(t, student.Validate("volunteer"))
}

func TestProfileListingFields(t *testing.T) {
	p := &Profile{
		Name:        "Safe Homes",
		ProfileType: ProfileTypeAgency,
		Interests:   []string{"Foster Care"},
		Details: ProfileDetails{Agency: &AgencyDetails{
			AgencyType: "Non-profit",
			FocusAreas: []string{"foster care", "Kinship Care"},
		}},
	}

	assert.Equal(t, "Non-profit", p.Organization())
	assert.Equal(t, "", p.Title())
	assert.Equal(t, []string{"Foster Care", "Kinship Care"}, p.Tags())
	assert.Equal(t, "Safe Homes", p.Summary().Name)
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
	"github.com/impactlink/impactlink/internal/pkg/directory"
)

func TestDirectorySearch(t *testing.T) {
	store := newMemProfileStore()
	store.add(&models.Profile{
		Name: "Hope Agency", ProfileType: models.ProfileTypeAgency, Location: strPtr("Chicago, IL"),
		Interests: []string{"Youth"},
		Details:   models.ProfileDetails{Agency: &models.AgencyDetails{AgencyType: "Non-profit", FocusAreas: []string{"Foster Care"}}},
	})
	store.add(&models.Profile{
		Name: "Avery Student", ProfileType: models.ProfileTypeStudent, Location: strPtr("Boston, MA"),
		Interests: []string{"Foster Care"},
		Details:   models.ProfileDetails{Student: &models.StudentDetails{University: "State University", Major: "Social Work"}},
	})
	svc := NewDirectoryService(store)

	t.Run("unfiltered", func(t *testing.T) {
		resp, err := svc.Search(context.Background(), directory.Criteria{})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Count)
		assert.False(t, resp.Filtered)
		assert.Equal(t, "Avery Student", resp.Results[0].Name)
		assert.Equal(t, []string{"Boston, MA", "Chicago, IL"}, resp.Facets.Locations)
	})

	t.Run("agency focus areas are searchable tags", func(t *testing.T) {
		resp, err := svc.Search(context.Background(), directory.Criteria{ProfileType: "agency", Tags: []string{"foster care"}})
		require.NoError(t, err)
		require.Equal(t, 1, resp.Count)
		assert.Equal(t, "Hope Agency", resp.Results[0].Name)
		assert.Equal(t, "Non-profit", resp.Results[0].Organization)
		assert.True(t, resp.Filtered)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := svc.Search(context.Background(), directory.Criteria{ProfileType: "robot"})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
)

func toolkitRequest() *dto.ResourceRequest {
	return &dto.ResourceRequest{
		Title:        "Family engagement toolkit",
		ResourceType: models.ResourceToolkit,
		Format:       models.FormatPDF,
		Tags:         []string{"Family", "family", "Engagement"},
	}
}

func TestCreateResourceValidation(t *testing.T) {
	svc := NewResourceService(newMemResourceStore())
	ctx := context.Background()

	res, err := svc.CreateResource(ctx, toolkitRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"Family", "Engagement"}, res.Tags)

	link := toolkitRequest()
	link.Format = models.FormatLink
	_, err = svc.CreateResource(ctx, link)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	link.URL = strPtr("https://example.org/toolkit")
	_, err = svc.CreateResource(ctx, link)
	require.NoError(t, err)
}

func TestToggleBookmarkRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewResourceService(newMemResourceStore())
	res, err := svc.CreateResource(ctx, toolkitRequest())
	require.NoError(t, err)
	user := uuid.New()

	toggled, err := svc.ToggleBookmark(ctx, user, res.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Bookmarked)

	got, err := svc.GetResource(ctx, user, res.ID)
	require.NoError(t, err)
	assert.True(t, got.Bookmarked)

	anon, err := svc.GetResource(ctx, uuid.Nil, res.ID)
	require.NoError(t, err)
	assert.False(t, anon.Bookmarked)

	bookmarks, err := svc.ListBookmarks(ctx, user)
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)

	toggled, err = svc.ToggleBookmark(ctx, user, res.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Bookmarked)

	list, err := svc.ListResources(ctx, user, dto.ResourceFilter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, list.Resources, 1)
	assert.False(t, list.Resources[0].Bookmarked)

	assert.ErrorIs(t, svc.RemoveBookmark(ctx, user, res.ID), apperrors.ErrBookmarkNotFound)

	_, err = svc.ToggleBookmark(ctx, user, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrLearningResourceNotFound)
}

func TestUpdateResourceKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	svc := NewResourceService(newMemResourceStore())
	res, err := svc.CreateResource(ctx, toolkitRequest())
	require.NoError(t, err)

	req := toolkitRequest()
	req.Title = "Family engagement toolkit, 2nd edition"
	updated, err := svc.UpdateResource(ctx, res.ID, req)
	require.NoError(t, err)
	assert.Equal(t, res.ID, updated.ID)
	assert.Equal(t, req.Title, updated.Title)

	_, err = svc.UpdateResource(ctx, uuid.New(), req)
	assert.ErrorIs(t, err, apperrors.ErrLearningResourceNotFound)
}

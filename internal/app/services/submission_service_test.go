package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
	"github.com/impactlink/impactlink/internal/pkg/filestorage"
)

type memSubmissionStore struct {
	rows      map[uuid.UUID]*models.Submission
	createErr error
}

func newMemSubmissionStore() *memSubmissionStore {
	return &memSubmissionStore{rows: map[uuid.UUID]*models.Submission{}}
}

func (m *memSubmissionStore) Create(_ context.Context, s *models.Submission) (*models.Submission, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	s.ID = uuid.New()
	cp := *s
	m.rows[s.ID] = &cp
	return s, nil
}

func (m *memSubmissionStore) GetByID(_ context.Context, id uuid.UUID) (*models.Submission, error) {
	s, ok := m.rows[id]
	if !ok {
		return nil, apperrors.ErrSubmissionNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memSubmissionStore) List(_ context.Context, filter dto.SubmissionFilter, authorID *uuid.UUID) ([]*models.Submission, int64, error) {
	var out []*models.Submission
	for _, s := range m.rows {
		if authorID != nil && s.AuthorID != *authorID {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (m *memSubmissionStore) Review(_ context.Context, id uuid.UUID, status models.SubmissionStatus, notes *string, reviewerID uuid.UUID) error {
	s, ok := m.rows[id]
	if !ok {
		return apperrors.ErrSubmissionNotFound
	}
	if s.Status != models.SubmissionPending {
		return apperrors.ErrSubmissionReviewed
	}
	now := time.Now()
	s.Status, s.ReviewerNotes, s.ReviewedBy, s.ReviewedAt = status, notes, &reviewerID, &now
	return nil
}

func (m *memSubmissionStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.rows[id]; !ok {
		return apperrors.ErrSubmissionNotFound
	}
	delete(m.rows, id)
	return nil
}

func uploadedFile(t *testing.T, name string) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 kinship study"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/submissions", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

type submissionFixture struct {
	svc      SubmissionService
	store    *memSubmissionStore
	root     string
	author   *models.Profile
	admin    uuid.UUID
	notifier *recordingNotifier
}

func newSubmissionFixture(t *testing.T) *submissionFixture {
	t.Helper()
	root := t.TempDir()
	storage, err := filestorage.NewLocalStorage(root, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	profiles := newMemProfileStore()
	f := &submissionFixture{
		store:    newMemSubmissionStore(),
		root:     root,
		author:   profiles.add(&models.Profile{Name: "Alice", ProfileType: models.ProfileTypeResearcher}),
		admin:    uuid.New(),
		notifier: &recordingNotifier{},
	}
	f.svc = NewSubmissionService(f.store, profiles, staticAdmins{f.admin: true}, storage, f.notifier, zerolog.Nop())
	return f
}

func submissionRequest() *dto.CreateSubmissionRequest {
	return &dto.CreateSubmissionRequest{
		Title:    "Kinship placement outcomes",
		Abstract: "A five year study of kinship placements.",
		Keywords: []string{"kinship, placement", "Kinship"},
	}
}

func TestCreateAndReviewSubmission(t *testing.T) {
	ctx := context.Background()
	f := newSubmissionFixture(t)

	s, err := f.svc.CreateSubmission(ctx, f.author.UserID, submissionRequest(), uploadedFile(t, "study.pdf"))
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionPending, s.Status)
	assert.Equal(t, []string{"kinship", "placement"}, s.Keywords)
	assert.Equal(t, "study.pdf", s.FileName)
	_, err = os.Stat(filepath.Join(f.root, filepath.FromSlash(s.FilePath)))
	require.NoError(t, err)

	_, err = f.svc.GetSubmission(ctx, uuid.New(), s.ID)
	assert.ErrorIs(t, err, apperrors.ErrSubmissionNotFound)

	reviewed, err := f.svc.ReviewSubmission(ctx, f.admin, s.ID, &dto.ReviewSubmissionRequest{
		Status: models.SubmissionApproved, Notes: strPtr(" Strong methods "),
	})
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionApproved, reviewed.Status)
	assert.Equal(t, "Strong methods", *reviewed.ReviewerNotes)
	assert.Equal(t, []string{"submission_created", "submission_reviewed"}, f.notifier.calls)
	assert.Equal(t, f.author.UserID, f.notifier.users[1])

	_, err = f.svc.ReviewSubmission(ctx, f.admin, s.ID, &dto.ReviewSubmissionRequest{Status: models.SubmissionRejected})
	assert.ErrorIs(t, err, apperrors.ErrSubmissionReviewed)

	mine, err := f.svc.ListMySubmissions(ctx, f.author.UserID, dto.SubmissionFilter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, mine.Submissions, 1)
}

func TestCreateSubmissionRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	f := newSubmissionFixture(t)

	_, err := f.svc.CreateSubmission(ctx, f.author.UserID, submissionRequest(), nil)
	assert.ErrorIs(t, err, apperrors.ErrFileRequired)

	_, err = f.svc.CreateSubmission(ctx, f.author.UserID, submissionRequest(), uploadedFile(t, "study.exe"))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = f.svc.CreateSubmission(ctx, uuid.New(), submissionRequest(), uploadedFile(t, "study.pdf"))
	assert.ErrorIs(t, err, apperrors.ErrProfileRequired)
}

func TestCreateSubmissionRemovesFileWhenStoreFails(t *testing.T) {
	f := newSubmissionFixture(t)
	f.store.createErr = errors.New("db down")

	_, err := f.svc.CreateSubmission(context.Background(), f.author.UserID, submissionRequest(), uploadedFile(t, "study.docx"))
	require.Error(t, err)

	entries, err := os.ReadDir(filepath.Join(f.root, submissionsDir))
	if err == nil {
		assert.Empty(t, entries)
	}
}

func TestDeleteSubmission(t *testing.T) {
	ctx := context.Background()
	f := newSubmissionFixture(t)
	s, err := f.svc.CreateSubmission(ctx, f.author.UserID, submissionRequest(), uploadedFile(t, "study.pdf"))
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.DeleteSubmission(ctx, uuid.New(), s.ID), apperrors.ErrPermissionDenied)
	require.NoError(t, f.svc.DeleteSubmission(ctx, f.admin, s.ID))

	_, err = os.Stat(filepath.Join(f.root, filepath.FromSlash(s.FilePath)))
	assert.True(t, os.IsNotExist(err))
}

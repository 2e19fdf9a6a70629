package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
)

type memForumStore struct {
	topics  map[uuid.UUID]*models.ForumTopic
	posts   map[uuid.UUID]*models.ForumPost
	replies map[uuid.UUID]*models.ForumReply
}

func newMemForumStore() *memForumStore {
	return &memForumStore{
		topics:  map[uuid.UUID]*models.ForumTopic{},
		posts:   map[uuid.UUID]*models.ForumPost{},
		replies: map[uuid.UUID]*models.ForumReply{},
	}
}

func (m *memForumStore) CreateTopic(_ context.Context, t *models.ForumTopic) error {
	t.ID = uuid.New()
	cp := *t
	m.topics[t.ID] = &cp
	return nil
}

func (m *memForumStore) GetTopic(_ context.Context, id uuid.UUID) (*models.ForumTopic, error) {
	t, ok := m.topics[id]
	if !ok {
		return nil, apperrors.ErrTopicNotFound
	}
	cp := *t
	for _, p := range m.posts {
		if p.TopicID == id {
			cp.PostCount++
		}
	}
	return &cp, nil
}

func (m *memForumStore) ListTopics(ctx context.Context) ([]*models.ForumTopic, error) {
	var out []*models.ForumTopic
	for id := range m.topics {
		t, _ := m.GetTopic(ctx, id)
		out = append(out, t)
	}
	return out, nil
}

func (m *memForumStore) UpdateTopic(_ context.Context, t *models.ForumTopic) error {
	cp := *t
	m.topics[t.ID] = &cp
	return nil
}

func (m *memForumStore) CreatePost(_ context.Context, p *models.ForumPost) (*models.ForumPost, error) {
	p.ID = uuid.New()
	cp := *p
	m.posts[p.ID] = &cp
	return p, nil
}

func (m *memForumStore) GetPost(_ context.Context, id uuid.UUID) (*models.ForumPost, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, apperrors.ErrPostNotFound
	}
	cp := *p
	for _, r := range m.replies {
		if r.PostID == id {
			cp.ReplyCount++
		}
	}
	return &cp, nil
}

func (m *memForumStore) ListPosts(ctx context.Context, filter dto.PostFilter) ([]*models.ForumPost, int64, error) {
	var out []*models.ForumPost
	for id, p := range m.posts {
		if filter.TopicID != nil && p.TopicID != *filter.TopicID {
			continue
		}
		got, _ := m.GetPost(ctx, id)
		out = append(out, got)
	}
	return out, int64(len(out)), nil
}

func (m *memForumStore) DeletePost(_ context.Context, id uuid.UUID) error {
	if _, ok := m.posts[id]; !ok {
		return apperrors.ErrPostNotFound
	}
	delete(m.posts, id)
	for rid, r := range m.replies {
		if r.PostID == id {
			delete(m.replies, rid)
		}
	}
	return nil
}

func (m *memForumStore) CreateReply(_ context.Context, r *models.ForumReply) (*models.ForumReply, error) {
	r.ID = uuid.New()
	cp := *r
	m.replies[r.ID] = &cp
	return r, nil
}

func (m *memForumStore) GetReply(_ context.Context, id uuid.UUID) (*models.ForumReply, error) {
	r, ok := m.replies[id]
	if !ok {
		return nil, apperrors.ErrReplyNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memForumStore) ListReplies(_ context.Context, postID uuid.UUID) ([]*models.ForumReply, error) {
	var out []*models.ForumReply
	for _, r := range m.replies {
		if r.PostID == postID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memForumStore) DeleteReply(_ context.Context, id uuid.UUID) error {
	if _, ok := m.replies[id]; !ok {
		return apperrors.ErrReplyNotFound
	}
	delete(m.replies, id)
	return nil
}

func TestForumThreadLifecycle(t *testing.T) {
	ctx := context.Background()
	profiles := newMemProfileStore()
	author := profiles.add(&models.Profile{Name: "Alice", ProfileType: models.ProfileTypeResearcher})
	other := profiles.add(&models.Profile{Name: "Bob", ProfileType: models.ProfileTypeStudent})
	admin := uuid.New()
	svc := NewForumService(newMemForumStore(), profiles, staticAdmins{admin: true}, zerolog.Nop())

	topic, err := svc.CreateTopic(ctx, &dto.CreateTopicRequest{Name: "  Kinship Care "})
	require.NoError(t, err)
	assert.Equal(t, "Kinship Care", topic.Name)

	post, err := svc.CreatePost(ctx, author.UserID, topic.ID, &dto.CreatePostRequest{
		Title: "Placement stability", Content: "What works?", Tags: []string{"placement", "Placement"},
	})
	require.NoError(t, err)
	assert.Equal(t, author.ID, post.AuthorID)
	assert.Equal(t, []string{"placement"}, post.Tags)

	reply, err := svc.CreateReply(ctx, other.UserID, post.ID, &dto.CreateReplyRequest{Content: "Kin first."})
	require.NoError(t, err)

	detail, err := svc.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.Post.ReplyCount)
	require.Len(t, detail.Replies, 1)

	got, err := svc.GetTopic(ctx, topic.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.PostCount)

	assert.ErrorIs(t, svc.DeleteReply(ctx, author.UserID, reply.ID), apperrors.ErrPermissionDenied)
	require.NoError(t, svc.DeleteReply(ctx, other.UserID, reply.ID))

	assert.ErrorIs(t, svc.DeletePost(ctx, other.UserID, post.ID), apperrors.ErrPermissionDenied)
	require.NoError(t, svc.DeletePost(ctx, admin, post.ID))

	_, err = svc.GetPost(ctx, post.ID)
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestForumRequiresProfileAndTopic(t *testing.T) {
	ctx := context.Background()
	profiles := newMemProfileStore()
	author := profiles.add(&models.Profile{Name: "Alice", ProfileType: models.ProfileTypeResearcher})
	svc := NewForumService(newMemForumStore(), profiles, staticAdmins{}, zerolog.Nop())

	_, err := svc.CreatePost(ctx, uuid.New(), uuid.New(), &dto.CreatePostRequest{Title: "Hello", Content: "World"})
	assert.ErrorIs(t, err, apperrors.ErrProfileRequired)

	_, err = svc.CreatePost(ctx, author.UserID, uuid.New(), &dto.CreatePostRequest{Title: "Hello", Content: "World"})
	assert.ErrorIs(t, err, apperrors.ErrTopicNotFound)

	missing := uuid.New()
	_, err = svc.ListPosts(ctx, dto.PostFilter{TopicID: &missing})
	assert.ErrorIs(t, err, apperrors.ErrTopicNotFound)
}

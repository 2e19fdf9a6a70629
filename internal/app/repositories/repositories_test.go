package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
)

func TestQuestionFilterUsesContainment(t *testing.T) {
	author := uuid.New()
	where := questionFilter(dto.ResearchQuestionFilter{
		Topics:   []string{"Foster Care", "Education"},
		Regions:  []string{"Midwest"},
		Status:   models.QuestionOpen,
		AuthorID: &author,
	})

	sql, args, err := newStatementBuilder().Select("q.id").From("research_questions q").Where(where).ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT q.id FROM research_questions q WHERE (q.topics @> $1 AND q.regions @> $2 AND q.status = $3 AND q.author_id = $4)",
		sql)
	require.Len(t, args, 4)
	assert.Equal(t, []string{"Foster Care", "Education"}, args[0])
	assert.Equal(t, "open", args[2])
}

func TestQuestionFilterEmpty(t *testing.T) {
	sql, args, err := newStatementBuilder().Select("q.id").From("research_questions q").
		Where(questionFilter(dto.ResearchQuestionFilter{})).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT q.id FROM research_questions q WHERE (1=1)", sql)
	assert.Empty(t, args)
}

func TestForumCountsAreSubqueries(t *testing.T) {
	r := &ForumRepository{sb: newStatementBuilder()}

	topicSQL, _, err := r.selectTopics().ToSql()
	require.NoError(t, err)
	assert.Contains(t, topicSQL, "(SELECT COUNT(*) FROM forum_posts fp WHERE fp.topic_id = t.id) AS post_count")

	postSQL, _, err := r.selectPosts().ToSql()
	require.NoError(t, err)
	assert.Contains(t, postSQL, "(SELECT COUNT(*) FROM forum_replies fr WHERE fr.post_id = p.id) AS reply_count")
	assert.Contains(t, postSQL, "JOIN profiles a ON a.id = p.author_id")
}

func TestCollaborationSelectJoinsBothParties(t *testing.T) {
	r := &CollaborationRepository{sb: newStatementBuilder()}
	sql, _, err := r.selectWithParties().ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "rq.name")
	assert.Contains(t, sql, "rc.avatar_url")
	assert.Contains(t, sql, "JOIN profiles rq ON rq.id = c.requester_id JOIN profiles rc ON rc.id = c.recipient_id")
}

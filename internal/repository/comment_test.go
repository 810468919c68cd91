package repository

import (
	"context"
	"testing"
	"time"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepositoryCreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := seedAuthor(t, db)
	post := seedPost(t, db, author.ID, "Commented Post", models.PostStatusPublished, time.Now().UTC().Add(-time.Hour))

	first := &models.Comment{PostID: post.ID, Name: "Reader One", Email: "one@example.com", Body: "First!"}
	require.NoError(t, repo.Create(ctx, first))
	second := &models.Comment{PostID: post.ID, Name: "Reader Two", Email: "two@example.com", Body: "Second."}
	require.NoError(t, repo.Create(ctx, second))

	comments, err := repo.ListActiveByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	// Oldest first.
	assert.Equal(t, "Reader One", comments[0].Name)
	assert.Equal(t, "Reader Two", comments[1].Name)
	assert.True(t, comments[0].Active)
}

func TestCommentRepositoryListSkipsInactive(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := seedAuthor(t, db)
	post := seedPost(t, db, author.ID, "Moderated Post", models.PostStatusPublished, time.Now().UTC().Add(-time.Hour))

	visible := &models.Comment{PostID: post.ID, Name: "Kept", Email: "kept@example.com", Body: "Fine."}
	require.NoError(t, repo.Create(ctx, visible))
	hidden := &models.Comment{PostID: post.ID, Name: "Hidden", Email: "hidden@example.com", Body: "Spam."}
	require.NoError(t, repo.Create(ctx, hidden))
	require.NoError(t, db.Model(hidden).Update("active", false).Error)

	comments, err := repo.ListActiveByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Kept", comments[0].Name)

	count, err := repo.CountActiveByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCommentRepositoryListScopedToPost(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := seedAuthor(t, db)
	now := time.Now().UTC()
	postA := seedPost(t, db, author.ID, "Post A", models.PostStatusPublished, now.Add(-2*time.Hour))
	postB := seedPost(t, db, author.ID, "Post B", models.PostStatusPublished, now.Add(-time.Hour))

	require.NoError(t, repo.Create(ctx, &models.Comment{PostID: postA.ID, Name: "A", Email: "a@example.com", Body: "On A"}))
	require.NoError(t, repo.Create(ctx, &models.Comment{PostID: postB.ID, Name: "B", Email: "b@example.com", Body: "On B"}))

	comments, err := repo.ListActiveByPost(ctx, postA.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "On A", comments[0].Body)
}

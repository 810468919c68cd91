package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTagRepositoryGetBySlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	seedTag(t, db, "Distributed Systems")

	tag, err := repo.GetBySlug(ctx, "distributed-systems")
	require.NoError(t, err)
	assert.Equal(t, "Distributed Systems", tag.Name)

	_, err = repo.GetBySlug(ctx, "unknown")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestTagRepositoryList(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepository(db)
	ctx := context.Background()

	seedTag(t, db, "Web")
	seedTag(t, db, "Go")

	tags, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "Go", tags[0].Name)
	assert.Equal(t, "Web", tags[1].Name)
}

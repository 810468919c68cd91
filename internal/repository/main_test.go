package repository

import (
	"fmt"
	"testing"
	"time"

	"quill/internal/database"
	"quill/internal/models"
	"quill/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory SQLite database with the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// setupMockDB creates a GORM *gorm.DB backed by sqlmock for error-path tests.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func seedAuthor(t *testing.T, db *gorm.DB) *models.Author {
	t.Helper()
	author := &models.Author{
		Name:  "Ada Lovelace",
		Email: fmt.Sprintf("ada+%d@example.com", time.Now().UnixNano()),
	}
	require.NoError(t, db.Create(author).Error)
	return author
}

func seedTag(t *testing.T, db *gorm.DB, name string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name, Slug: util.Slugify(name)}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

func seedPost(t *testing.T, db *gorm.DB, authorID uint, title string, status models.PostStatus, publishedAt time.Time, tags ...*models.Tag) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:       title,
		Slug:        util.Slugify(title),
		Body:        "Body of " + title,
		Status:      status,
		PublishedAt: publishedAt,
		AuthorID:    authorID,
	}
	for _, tag := range tags {
		post.Tags = append(post.Tags, *tag)
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

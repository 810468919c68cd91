// Package seed provides helpers to create demo and test data for the blog
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"quill/internal/models"
	"quill/internal/util"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateAuthor constructs and persists a sample author with a hashed password.
// Optional override functions may modify the generated author before saving.
func (f *Factory) CreateAuthor(overrides ...func(*models.Author)) (*models.Author, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(gofakeit.Password(true, true, true, false, false, 16)), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	author := &models.Author{
		Name:         gofakeit.Name(),
		Email:        fmt.Sprintf("%d.%s", gofakeit.Number(100, 999), gofakeit.Email()),
		PasswordHash: string(hash),
	}
	for _, override := range overrides {
		override(author)
	}

	if err := f.db.Create(author).Error; err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return author, nil
}

// CreateTag constructs and persists a tag named after the given phrase.
func (f *Factory) CreateTag(name string) (*models.Tag, error) {
	tag := &models.Tag{Name: name, Slug: util.Slugify(name)}
	if err := f.db.Create(tag).Error; err != nil {
		return nil, fmt.Errorf("failed to create tag %q: %w", name, err)
	}
	return tag, nil
}

// CreatePost constructs and persists a sample post. Publish times are spread
// over the past maxDays days so listings paginate realistically.
func (f *Factory) CreatePost(author *models.Author, maxDays int, overrides ...func(*models.Post)) (*models.Post, error) {
	if maxDays <= 0 {
		maxDays = 90
	}

	title := strings.TrimSuffix(gofakeit.Sentence(f.r.Intn(5)+3), ".")
	publishedAt := time.Now().UTC().
		Add(-time.Duration(f.r.Intn(maxDays*24)) * time.Hour).
		Add(-time.Duration(f.r.Intn(60)) * time.Minute)

	post := &models.Post{
		Title:       title,
		Slug:        util.Slugify(title),
		Body:        gofakeit.Paragraph(3, 5, 12, "\n\n"),
		Status:      models.PostStatusPublished,
		PublishedAt: publishedAt,
		AuthorID:    author.ID,
	}
	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// CreateComment constructs and persists a sample comment on the given post.
func (f *Factory) CreateComment(post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		PostID: post.ID,
		Name:   gofakeit.Name(),
		Email:  gofakeit.Email(),
		Body:   gofakeit.Sentence(f.r.Intn(15) + 5),
	}
	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// AttachTags links the post to the given tags.
func (f *Factory) AttachTags(post *models.Post, tags []*models.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	return f.db.Model(post).Association("Tags").Append(tags)
}

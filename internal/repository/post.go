// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"time"

	"quill/internal/models"
	"quill/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	ListPublished(ctx context.Context, tagSlug string, limit, offset int) ([]*models.Post, error)
	CountPublished(ctx context.Context, tagSlug string) (int64, error)
	GetPublishedBySlugAndDate(ctx context.Context, slug string, year, month, day int) (*models.Post, error)
	GetPublishedByID(ctx context.Context, id uint) (*models.Post, error)
	ListAllPublished(ctx context.Context) ([]*models.Post, error)
	Related(ctx context.Context, post *models.Post, limit int) ([]*models.Post, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// published scopes a query to posts readers may see: status published and
// publish time not in the future.
func (r *postRepository) published(db *gorm.DB) *gorm.DB {
	return db.Where("posts.status = ? AND posts.published_at <= ?", models.PostStatusPublished, time.Now().UTC())
}

// withTag narrows a post query to posts carrying the tag with the given slug.
// Selects posts.* explicitly so the joined tags columns never shadow the post
// columns during scanning.
func withTag(db *gorm.DB, tagSlug string) *gorm.DB {
	return db.
		Select("posts.*").
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Joins("JOIN tags ON tags.id = post_tags.tag_id").
		Where("tags.slug = ?", tagSlug)
}

func (r *postRepository) ListPublished(ctx context.Context, tagSlug string, limit, offset int) ([]*models.Post, error) {
	defer observability.TrackQuery("list_published", "posts")()

	var posts []*models.Post
	q := r.published(r.db.WithContext(ctx).Model(&models.Post{}))
	if tagSlug != "" {
		q = withTag(q, tagSlug)
	}
	err := q.
		Preload("Author").
		Preload("Tags").
		Order("posts.published_at DESC, posts.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) CountPublished(ctx context.Context, tagSlug string) (int64, error) {
	defer observability.TrackQuery("count_published", "posts")()

	var count int64
	q := r.published(r.db.WithContext(ctx).Model(&models.Post{}))
	if tagSlug != "" {
		q = withTag(q, tagSlug)
	}
	err := q.Distinct("posts.id").Count(&count).Error
	return count, err
}

func (r *postRepository) GetPublishedBySlugAndDate(ctx context.Context, slug string, year, month, day int) (*models.Post, error) {
	defer observability.TrackQuery("get_published_by_slug_and_date", "posts")()
	ctx, span := observability.TraceRepositoryMethod(ctx, "GetPublishedBySlugAndDate", "posts")
	defer span.End()

	// Publication dates in URLs are interpreted as UTC calendar days.
	dayStart := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var post models.Post
	err := r.published(r.db.WithContext(ctx).Model(&models.Post{})).
		Where("posts.slug = ? AND posts.published_at >= ? AND posts.published_at < ?", slug, dayStart, dayEnd).
		Preload("Author").
		Preload("Tags").
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetPublishedByID(ctx context.Context, id uint) (*models.Post, error) {
	defer observability.TrackQuery("get_published_by_id", "posts")()

	var post models.Post
	err := r.published(r.db.WithContext(ctx).Model(&models.Post{})).
		Preload("Author").
		Preload("Tags").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListAllPublished(ctx context.Context) ([]*models.Post, error) {
	defer observability.TrackQuery("list_all_published", "posts")()

	var posts []*models.Post
	err := r.published(r.db.WithContext(ctx).Model(&models.Post{})).
		Order("posts.published_at DESC, posts.id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Related returns other published posts sharing tags with the given post,
// ranked by number of shared tags, then most recent publication, then id.
func (r *postRepository) Related(ctx context.Context, post *models.Post, limit int) ([]*models.Post, error) {
	defer observability.TrackQuery("related", "posts")()
	ctx, span := observability.TraceRepositoryMethod(ctx, "Related", "posts")
	defer span.End()

	if len(post.Tags) == 0 {
		return []*models.Post{}, nil
	}

	tagIDs := make([]uint, 0, len(post.Tags))
	for _, tag := range post.Tags {
		tagIDs = append(tagIDs, tag.ID)
	}

	var posts []*models.Post
	err := r.published(r.db.WithContext(ctx).Model(&models.Post{})).
		Select("posts.*, COUNT(post_tags.tag_id) AS shared_tags").
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Where("post_tags.tag_id IN ?", tagIDs).
		Where("posts.id <> ?", post.ID).
		Group("posts.id").
		Order("shared_tags DESC, posts.published_at DESC, posts.id ASC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

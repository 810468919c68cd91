// Package service contains the application's business logic, sitting between
// the HTTP handlers and the repositories.
package service

import (
	"context"
	"errors"
	"strconv"

	"quill/internal/cache"
	"quill/internal/models"
	"quill/internal/repository"

	"gorm.io/gorm"
)

// PageSize is the number of posts per listing page.
const PageSize = 3

// RelatedLimit caps the number of related posts shown on a detail page.
const RelatedLimit = 4

type PostService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	tagRepo     repository.TagRepository
}

func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	tagRepo repository.TagRepository,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		tagRepo:     tagRepo,
	}
}

type ListPostsInput struct {
	// TagSlug narrows the listing to one tag when non-empty.
	TagSlug string
	// Page is the raw page query value; anything unparsable means page 1.
	Page string
}

// PostPage is one page of the published-post listing.
type PostPage struct {
	Posts      []*models.Post `json:"posts"`
	Tag        *models.Tag    `json:"tag,omitempty"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	TotalPosts int64          `json:"total_posts"`
	HasPrev    bool           `json:"has_prev"`
	HasNext    bool           `json:"has_next"`
}

// ListPosts returns the requested page of published posts, optionally scoped
// to a tag. Page numbers are clamped rather than rejected: garbage becomes
// page 1 and anything past the end becomes the last page.
func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) (*PostPage, error) {
	var tag *models.Tag
	if in.TagSlug != "" {
		t, err := s.tagRepo.GetBySlug(ctx, in.TagSlug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.NewNotFoundError("Tag", in.TagSlug)
			}
			return nil, models.NewInternalError(err)
		}
		tag = t
	}

	count, err := s.postRepo.CountPublished(ctx, in.TagSlug)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	totalPages := int((count + PageSize - 1) / PageSize)
	if totalPages < 1 {
		totalPages = 1
	}

	page := clampPage(in.Page, totalPages)
	offset := (page - 1) * PageSize

	posts, err := s.postRepo.ListPublished(ctx, in.TagSlug, PageSize, offset)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return &PostPage{
		Posts:      posts,
		Tag:        tag,
		Page:       page,
		TotalPages: totalPages,
		TotalPosts: count,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}, nil
}

// clampPage turns a raw page parameter into a valid page number in
// [1, totalPages]. Non-integers fall back to the first page, out-of-range
// values to the nearest valid page.
func clampPage(raw string, totalPages int) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

type PostDetailInput struct {
	Year  int
	Month int
	Day   int
	Slug  string
}

// PostDetail is everything a post's detail page shows.
type PostDetail struct {
	Post     *models.Post      `json:"post"`
	Comments []*models.Comment `json:"comments"`
	Related  []*models.Post    `json:"related"`
}

// GetPostDetail resolves a post by its canonical date-and-slug address and
// loads its visible comments and related posts. Detail pages are served
// cache-aside; comment submission invalidates the entry.
func (s *PostService) GetPostDetail(ctx context.Context, in PostDetailInput) (*PostDetail, error) {
	var detail PostDetail
	key := cache.PostKey(in.Year, in.Month, in.Day, in.Slug)

	err := cache.CacheAside(ctx, key, &detail, cache.PostTTL, func() error {
		post, err := s.postRepo.GetPublishedBySlugAndDate(ctx, in.Slug, in.Year, in.Month, in.Day)
		if err != nil {
			return err
		}

		comments, err := s.commentRepo.ListActiveByPost(ctx, post.ID)
		if err != nil {
			return err
		}

		related, err := s.postRepo.Related(ctx, post, RelatedLimit)
		if err != nil {
			return err
		}

		detail = PostDetail{Post: post, Comments: comments, Related: related}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", in.Slug)
		}
		return nil, models.NewInternalError(err)
	}

	return &detail, nil
}

// ListPublishedForSitemap returns every published post, cache-aside.
func (s *PostService) ListPublishedForSitemap(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := cache.CacheAside(ctx, cache.SitemapKey, &posts, cache.SitemapTTL, func() error {
		var err error
		posts, err = s.postRepo.ListAllPublished(ctx)
		return err
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

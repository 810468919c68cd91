package service

import (
	"context"

	"quill/internal/models"

	"gorm.io/gorm"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn                    func(context.Context, *models.Post) error
	listPublishedFn             func(context.Context, string, int, int) ([]*models.Post, error)
	countPublishedFn            func(context.Context, string) (int64, error)
	getPublishedBySlugAndDateFn func(context.Context, string, int, int, int) (*models.Post, error)
	getPublishedByIDFn          func(context.Context, uint) (*models.Post, error)
	listAllPublishedFn          func(context.Context) ([]*models.Post, error)
	relatedFn                   func(context.Context, *models.Post, int) ([]*models.Post, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) ListPublished(ctx context.Context, tagSlug string, limit, offset int) ([]*models.Post, error) {
	return s.listPublishedFn(ctx, tagSlug, limit, offset)
}
func (s *postRepoStub) CountPublished(ctx context.Context, tagSlug string) (int64, error) {
	return s.countPublishedFn(ctx, tagSlug)
}
func (s *postRepoStub) GetPublishedBySlugAndDate(ctx context.Context, slug string, year, month, day int) (*models.Post, error) {
	return s.getPublishedBySlugAndDateFn(ctx, slug, year, month, day)
}
func (s *postRepoStub) GetPublishedByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getPublishedByIDFn(ctx, id)
}
func (s *postRepoStub) ListAllPublished(ctx context.Context) ([]*models.Post, error) {
	return s.listAllPublishedFn(ctx)
}
func (s *postRepoStub) Related(ctx context.Context, post *models.Post, limit int) ([]*models.Post, error) {
	return s.relatedFn(ctx, post, limit)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, _ *models.Post) error { return nil },
		listPublishedFn: func(_ context.Context, _ string, _, _ int) ([]*models.Post, error) {
			return nil, nil
		},
		countPublishedFn: func(_ context.Context, _ string) (int64, error) { return 0, nil },
		getPublishedBySlugAndDateFn: func(_ context.Context, _ string, _, _, _ int) (*models.Post, error) {
			return nil, gorm.ErrRecordNotFound
		},
		getPublishedByIDFn: func(_ context.Context, _ uint) (*models.Post, error) {
			return nil, gorm.ErrRecordNotFound
		},
		listAllPublishedFn: func(_ context.Context) ([]*models.Post, error) { return nil, nil },
		relatedFn:          func(_ context.Context, _ *models.Post, _ int) ([]*models.Post, error) { return nil, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn           func(context.Context, *models.Comment) error
	listActiveByPostFn func(context.Context, uint) ([]*models.Comment, error)
	countActiveFn      func(context.Context, uint) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) ListActiveByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listActiveByPostFn(ctx, postID)
}
func (s *commentRepoStub) CountActiveByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countActiveFn(ctx, postID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:           func(_ context.Context, _ *models.Comment) error { return nil },
		listActiveByPostFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		countActiveFn:      func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// tagRepoStub is a stub for repository.TagRepository.
type tagRepoStub struct {
	getBySlugFn func(context.Context, string) (*models.Tag, error)
	listFn      func(context.Context) ([]*models.Tag, error)
}

func (s *tagRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *tagRepoStub) List(ctx context.Context) ([]*models.Tag, error) {
	return s.listFn(ctx)
}

func noopTagRepo() *tagRepoStub {
	return &tagRepoStub{
		getBySlugFn: func(_ context.Context, _ string) (*models.Tag, error) {
			return nil, gorm.ErrRecordNotFound
		},
		listFn: func(_ context.Context) ([]*models.Tag, error) { return nil, nil },
	}
}

package service

import (
	"context"
	"errors"

	"quill/internal/cache"
	"quill/internal/forms"
	"quill/internal/models"
	"quill/internal/observability"
	"quill/internal/repository"

	"gorm.io/gorm"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

type SubmitCommentInput struct {
	PostID uint
	Form   forms.CommentForm
}

// SubmitComment validates and stores a reader comment on a published post.
// New comments are active immediately; moderation only ever hides them later.
func (s *CommentService) SubmitComment(ctx context.Context, in SubmitCommentInput) (*models.Comment, error) {
	post, err := s.postRepo.GetPublishedByID(ctx, in.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", in.PostID)
		}
		return nil, models.NewInternalError(err)
	}

	if fields := in.Form.Validate(); fields != nil {
		return nil, models.NewFieldValidationError(fields)
	}

	comment := &models.Comment{
		PostID: post.ID,
		Name:   in.Form.Name,
		Email:  in.Form.Email,
		Body:   in.Form.Body,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}

	observability.CommentsCreated.Inc()

	// The cached detail page now misses this comment.
	d := post.PublishedAt.UTC()
	cache.InvalidatePost(ctx, d.Year(), int(d.Month()), d.Day(), post.Slug)

	return comment, nil
}

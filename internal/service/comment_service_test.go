package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quill/internal/forms"
	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publishedPost() *models.Post {
	return &models.Post{
		ID:          1,
		Title:       "Commented",
		Slug:        "commented",
		Status:      models.PostStatusPublished,
		PublishedAt: time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func validCommentForm() forms.CommentForm {
	return forms.CommentForm{
		Name:  "Reader",
		Email: "reader@example.com",
		Body:  "Great post!",
	}
}

func TestSubmitComment(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getPublishedByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		assert.Equal(t, uint(1), id)
		return publishedPost(), nil
	}

	var created *models.Comment
	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 42
		created = c
		return nil
	}

	svc := NewCommentService(commentRepo, postRepo)
	comment, err := svc.SubmitComment(context.Background(), SubmitCommentInput{PostID: 1, Form: validCommentForm()})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, uint(42), comment.ID)
	assert.Equal(t, uint(1), comment.PostID)
	assert.Equal(t, "Reader", comment.Name)
	assert.Equal(t, "Great post!", comment.Body)
}

func TestSubmitCommentUnknownPost(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopPostRepo())
	_, err := svc.SubmitComment(context.Background(), SubmitCommentInput{PostID: 99, Form: validCommentForm()})

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestSubmitCommentInvalidForm(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getPublishedByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
		return publishedPost(), nil
	}

	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, _ *models.Comment) error {
		t.Fatal("invalid form must not reach the repository")
		return nil
	}

	form := validCommentForm()
	form.Email = "not-an-email"
	form.Name = ""

	svc := NewCommentService(commentRepo, postRepo)
	_, err := svc.SubmitComment(context.Background(), SubmitCommentInput{PostID: 1, Form: form})

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Equal(t, "This field is required", appErr.Fields["name"])
	assert.Equal(t, "Must be a valid email address", appErr.Fields["email"])
}

func TestSubmitCommentPersistError(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getPublishedByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
		return publishedPost(), nil
	}

	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, _ *models.Comment) error {
		return errors.New("disk full")
	}

	svc := NewCommentService(commentRepo, postRepo)
	_, err := svc.SubmitComment(context.Background(), SubmitCommentInput{PostID: 1, Form: validCommentForm()})

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INTERNAL_ERROR", appErr.Code)
}

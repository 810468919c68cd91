package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"quill/internal/forms"
	"quill/internal/mailer"
	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shareTargetPost() *models.Post {
	return &models.Post{
		ID:          7,
		Title:       "Worth Reading",
		Slug:        "worth-reading",
		Status:      models.PostStatusPublished,
		PublishedAt: time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func validShareForm() forms.SharePostForm {
	return forms.SharePostForm{
		Name:     "Alex",
		From:     "alex@example.com",
		To:       "friend@example.com",
		Comments: "Thought of you",
	}
}

func TestSharePostSendsMail(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getPublishedByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
		return shareTargetPost(), nil
	}

	rec := mailer.NewRecorder()
	svc := NewShareService(postRepo, rec, "https://blog.example.com", "no-reply@blog.example.com")

	post, err := svc.SharePost(context.Background(), SharePostInput{PostID: 7, Form: validShareForm()})
	require.NoError(t, err)
	assert.Equal(t, "Worth Reading", post.Title)

	msgs := rec.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "no-reply@blog.example.com", msgs[0].From)
	assert.Equal(t, "friend@example.com", msgs[0].To)
	assert.Contains(t, msgs[0].Subject, "Alex (alex@example.com) recommends you read")
	assert.Contains(t, msgs[0].Body, "https://blog.example.com/posts/2025/03/14/worth-reading")
	assert.Contains(t, msgs[0].Body, "Alex's comments: Thought of you")
}

func TestSharePostOmitsEmptyComments(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getPublishedByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
		return shareTargetPost(), nil
	}

	rec := mailer.NewRecorder()
	svc := NewShareService(postRepo, rec, "https://blog.example.com", "no-reply@blog.example.com")

	form := validShareForm()
	form.Comments = ""
	_, err := svc.SharePost(context.Background(), SharePostInput{PostID: 7, Form: form})
	require.NoError(t, err)

	msgs := rec.Messages()
	require.Len(t, msgs, 1)
	assert.NotContains(t, msgs[0].Body, "comments:")
}

func TestSharePostUnknownPost(t *testing.T) {
	rec := mailer.NewRecorder()
	svc := NewShareService(noopPostRepo(), rec, "https://blog.example.com", "no-reply@blog.example.com")

	_, err := svc.SharePost(context.Background(), SharePostInput{PostID: 99, Form: validShareForm()})

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Empty(t, rec.Messages())
}

func TestSharePostInvalidForm(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getPublishedByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
		return shareTargetPost(), nil
	}

	rec := mailer.NewRecorder()
	svc := NewShareService(postRepo, rec, "https://blog.example.com", "no-reply@blog.example.com")

	form := validShareForm()
	form.To = "not-an-email"
	_, err := svc.SharePost(context.Background(), SharePostInput{PostID: 7, Form: form})

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Equal(t, "Must be a valid email address", appErr.Fields["to"])
	assert.Empty(t, rec.Messages())
}

func TestSharePostDeliveryFailure(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getPublishedByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
		return shareTargetPost(), nil
	}

	rec := mailer.NewRecorder()
	rec.Err = errors.New("smtp: connection refused")
	svc := NewShareService(postRepo, rec, "https://blog.example.com", "no-reply@blog.example.com")

	_, err := svc.SharePost(context.Background(), SharePostInput{PostID: 7, Form: validShareForm()})

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INTERNAL_ERROR", appErr.Code)
}

func TestShareTarget(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getPublishedByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		assert.Equal(t, uint(7), id)
		return shareTargetPost(), nil
	}

	svc := NewShareService(postRepo, mailer.NewRecorder(), "https://blog.example.com", "no-reply@blog.example.com")
	post, err := svc.ShareTarget(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "worth-reading", post.Slug)
}

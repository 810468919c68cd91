package service

import (
	"context"
	"errors"
	"fmt"

	"quill/internal/forms"
	"quill/internal/mailer"
	"quill/internal/models"
	"quill/internal/repository"

	"gorm.io/gorm"
)

type ShareService struct {
	postRepo repository.PostRepository
	mailer   mailer.Mailer
	siteURL  string
	mailFrom string
}

func NewShareService(
	postRepo repository.PostRepository,
	m mailer.Mailer,
	siteURL string,
	mailFrom string,
) *ShareService {
	return &ShareService{
		postRepo: postRepo,
		mailer:   m,
		siteURL:  siteURL,
		mailFrom: mailFrom,
	}
}

// ShareTarget resolves the published post a reader wants to recommend.
// Backs the GET request that renders an empty share form.
func (s *ShareService) ShareTarget(ctx context.Context, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetPublishedByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

type SharePostInput struct {
	PostID uint
	Form   forms.SharePostForm
}

// SharePost emails a recommendation for a published post. The envelope sender
// is the site's address; the reader's address only appears in the body so the
// mail does not get rejected as spoofed.
func (s *ShareService) SharePost(ctx context.Context, in SharePostInput) (*models.Post, error) {
	post, err := s.ShareTarget(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if fields := in.Form.Validate(); fields != nil {
		return nil, models.NewFieldValidationError(fields)
	}

	postURL := post.AbsoluteURL(s.siteURL)
	subject := fmt.Sprintf("%s (%s) recommends you read %q", in.Form.Name, in.Form.From, post.Title)
	body := fmt.Sprintf("Read %q at %s", post.Title, postURL)
	if in.Form.Comments != "" {
		body += fmt.Sprintf("\n\n%s's comments: %s", in.Form.Name, in.Form.Comments)
	}

	msg := mailer.Message{
		From:    s.mailFrom,
		To:      in.Form.To,
		Subject: subject,
		Body:    body,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return nil, models.NewInternalError(err)
	}

	return post, nil
}

package server

import (
	"quill/internal/forms"
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetShareForm shows the share-by-email form for a published post.
func (s *Server) GetShareForm(c *fiber.Ctx) error {
	ctx := c.UserContext()

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.shareService.ShareTarget(ctx, postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return s.renderer.Render(c, fiber.StatusOK, TemplatePostShare, fiber.Map{
		"post": post,
		"sent": false,
	})
}

// SharePost emails a recommendation for a published post to the submitted
// address. Delivery failures surface as errors; nothing is sent silently.
func (s *Server) SharePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var form forms.SharePostForm
	if parseErr := c.BodyParser(&form); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.shareService.SharePost(ctx, service.SharePostInput{
		PostID: postID,
		Form:   form,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return s.renderer.Render(c, fiber.StatusOK, TemplatePostShare, fiber.Map{
		"post": post,
		"sent": true,
	})
}

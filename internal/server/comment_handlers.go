package server

import (
	"quill/internal/forms"
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment stores a reader comment on a published post. The route only
// accepts POST; a GET on this path falls through to a 405.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var form forms.CommentForm
	if parseErr := c.BodyParser(&form); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.SubmitComment(ctx, service.SubmitCommentInput{
		PostID: postID,
		Form:   form,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

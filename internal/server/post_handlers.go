package server

import (
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts lists published posts, newest first, three per page. An optional
// tag query narrows the listing; a page query selects the page and is clamped
// into range rather than rejected.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	page, err := s.postService.ListPosts(ctx, service.ListPostsInput{
		TagSlug: c.Query("tag"),
		Page:    c.Query("page"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return s.renderer.Render(c, fiber.StatusOK, TemplatePostList, fiber.Map{
		"posts":       page.Posts,
		"tag":         page.Tag,
		"page":        page.Page,
		"total_pages": page.TotalPages,
		"total_posts": page.TotalPosts,
		"has_prev":    page.HasPrev,
		"has_next":    page.HasNext,
	})
}

// GetPostDetail shows one published post addressed by publish date and slug,
// with its visible comments and related posts.
func (s *Server) GetPostDetail(c *fiber.Ctx) error {
	ctx := c.UserContext()

	year, yerr := c.ParamsInt("year")
	month, merr := c.ParamsInt("month")
	day, derr := c.ParamsInt("day")
	slug := c.Params("slug")
	if yerr != nil || merr != nil || derr != nil || slug == "" {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post", c.Path()))
	}

	detail, err := s.postService.GetPostDetail(ctx, service.PostDetailInput{
		Year:  year,
		Month: month,
		Day:   day,
		Slug:  slug,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return s.renderer.Render(c, fiber.StatusOK, TemplatePostDetail, fiber.Map{
		"post":     detail.Post,
		"comments": detail.Comments,
		"related":  detail.Related,
	})
}

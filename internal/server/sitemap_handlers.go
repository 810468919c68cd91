package server

import (
	"quill/internal/seo"

	"github.com/gofiber/fiber/v2"
)

// Sitemap serves the XML sitemap of every published post.
func (s *Server) Sitemap(c *fiber.Ctx) error {
	ctx := c.UserContext()

	posts, err := s.postService.ListPublishedForSitemap(ctx)
	if err != nil {
		return respondServiceError(c, err)
	}

	out, err := seo.GenerateSitemap(s.config.SiteURL, posts)
	if err != nil {
		return respondServiceError(c, err)
	}

	c.Type("xml", "utf-8")
	return c.Send(out)
}

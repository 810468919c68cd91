package server

import "github.com/gofiber/fiber/v2"

// Renderer turns a template name and its named values into an HTTP response.
// The server never builds markup itself; presentation is the renderer's
// problem.
type Renderer interface {
	Render(c *fiber.Ctx, status int, template string, data fiber.Map) error
}

// Template identifiers handed to the renderer.
const (
	TemplatePostList   = "blog/post/list"
	TemplatePostDetail = "blog/post/detail"
	TemplatePostShare  = "blog/post/share"
)

// JSONRenderer is the default Renderer: it emits the named values as a JSON
// document and exposes the template identifier in a response header.
type JSONRenderer struct{}

func (JSONRenderer) Render(c *fiber.Ctx, status int, template string, data fiber.Map) error {
	c.Set("X-Template", template)
	return c.Status(status).JSON(data)
}

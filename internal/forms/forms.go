// Package forms defines the reader-facing submission schemas and their
// validation. Each form validates into either a clean value or a map of
// per-field error messages for re-rendering.
package forms

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CommentForm is the schema for submitting a comment on a post.
type CommentForm struct {
	Name  string `json:"name" form:"name" validate:"required,max=80"`
	Email string `json:"email" form:"email" validate:"required,email,max=254"`
	Body  string `json:"body" form:"body" validate:"required,max=10000"`
}

// SharePostForm is the schema for recommending a post by email.
type SharePostForm struct {
	Name     string `json:"name" form:"name" validate:"required,max=80"`
	From     string `json:"from" form:"from" validate:"required,email,max=254"`
	To       string `json:"to" form:"to" validate:"required,email,max=254"`
	Comments string `json:"comments" form:"comments" validate:"max=2000"`
}

// Validate returns per-field error messages, or nil when the form is clean.
func (f *CommentForm) Validate() map[string]string {
	return fieldErrors(validate.Struct(f))
}

// Validate returns per-field error messages, or nil when the form is clean.
func (f *SharePostForm) Validate() map[string]string {
	return fieldErrors(validate.Struct(f))
}

// fieldErrors converts validator errors into a field -> message map.
func fieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[strings.ToLower(fe.Field())] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "max":
		return "Must be at most " + fe.Param() + " characters"
	default:
		return "Invalid value"
	}
}

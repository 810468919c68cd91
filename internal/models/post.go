// Package models contains data structures for the application's domain models.
package models

import (
	"fmt"
	"time"
)

// PostStatus defines the publication state of a post.
type PostStatus string

const (
	// PostStatusDraft indicates a post is not yet visible to readers.
	PostStatusDraft PostStatus = "draft"
	// PostStatusPublished indicates a post is visible once its publish time passes.
	PostStatusPublished PostStatus = "published"
)

// Post represents a blog post. A post is visible to readers only when its
// status is published and its publish timestamp is not in the future.
type Post struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:250;not null" json:"title"`
	Slug        string     `gorm:"size:250;not null;uniqueIndex:idx_posts_slug_publish" json:"slug"`
	Body        string     `gorm:"type:text;not null" json:"body"`
	Status      PostStatus `gorm:"type:varchar(10);not null;default:'draft';index" json:"status"`
	PublishedAt time.Time  `gorm:"not null;index;uniqueIndex:idx_posts_slug_publish" json:"published_at"`
	AuthorID    uint       `gorm:"not null" json:"author_id"`
	Author      Author     `gorm:"foreignKey:AuthorID" json:"author"`
	Tags        []Tag      `gorm:"many2many:post_tags" json:"tags,omitempty"`
	// SharedTags is not persisted; computed by the related-posts query.
	SharedTags int       `gorm:"->;-:migration" json:"shared_tags,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// URL returns the canonical site-relative path for the post, keyed by its
// publish date and slug.
func (p *Post) URL() string {
	d := p.PublishedAt.UTC()
	return fmt.Sprintf("/posts/%04d/%02d/%02d/%s", d.Year(), int(d.Month()), d.Day(), p.Slug)
}

// AbsoluteURL returns the canonical absolute URL of the post under the given
// site root (no trailing slash expected).
func (p *Post) AbsoluteURL(siteURL string) string {
	return siteURL + p.URL()
}

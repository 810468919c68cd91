// Package seo provides utilities for building the XML sitemap.
package seo

import (
	"encoding/xml"
	"time"

	"quill/internal/models"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Valid change frequency values.
const (
	ChangeFreqAlways  ChangeFreq = "always"
	ChangeFreqHourly  ChangeFreq = "hourly"
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
	ChangeFreqYearly  ChangeFreq = "yearly"
	ChangeFreqNever   ChangeFreq = "never"
)

// PostChangeFreq and PostPriority are applied to every post entry.
const (
	PostChangeFreq = ChangeFreqWeekly
	PostPriority   = "0.9"
)

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapBuilder builds sitemap XML for published posts.
type SitemapBuilder struct {
	siteURL string
	urls    []SitemapURL
}

// NewSitemapBuilder creates a new sitemap builder. siteURL carries no
// trailing slash.
func NewSitemapBuilder(siteURL string) *SitemapBuilder {
	return &SitemapBuilder{
		siteURL: siteURL,
		urls:    make([]SitemapURL, 0),
	}
}

// AddPost adds a post to the sitemap using its canonical URL. The last
// modification time is the post's update time, not its publish time.
func (b *SitemapBuilder) AddPost(post *models.Post) {
	url := SitemapURL{
		Loc:        post.AbsoluteURL(b.siteURL),
		ChangeFreq: PostChangeFreq,
		Priority:   PostPriority,
	}
	if !post.UpdatedAt.IsZero() {
		url.LastMod = post.UpdatedAt.UTC().Format(time.RFC3339)
	}
	b.urls = append(b.urls, url)
}

// AddPosts adds multiple posts to the sitemap.
func (b *SitemapBuilder) AddPosts(posts []*models.Post) {
	for _, p := range posts {
		b.AddPost(p)
	}
}

// Build generates the sitemap XML.
func (b *SitemapBuilder) Build() ([]byte, error) {
	sitemap := Sitemap{
		XMLNS: XMLNamespace,
		URLs:  b.urls,
	}

	// Add XML header
	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(output, xmlBytes...), nil
}

// GenerateSitemap is a convenience function to generate a sitemap from posts.
func GenerateSitemap(siteURL string, posts []*models.Post) ([]byte, error) {
	builder := NewSitemapBuilder(siteURL)
	builder.AddPosts(posts)
	return builder.Build()
}

package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostKeyPrefix = "post:%04d-%02d-%02d:%s"
	TagKeyPrefix  = "tag:%s"
	SitemapKey    = "sitemap"
)

const (
	PostTTL    = 10 * time.Minute
	TagTTL     = 30 * time.Minute
	SitemapTTL = 1 * time.Hour
)

func PostKey(year, month, day int, slug string) string {
	return fmt.Sprintf(PostKeyPrefix, year, month, day, slug)
}

func TagKey(slug string) string {
	return fmt.Sprintf(TagKeyPrefix, slug)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidatePost drops the cached detail page for a post. Called when a new
// comment is accepted so readers see it on the next request.
func InvalidatePost(ctx context.Context, year, month, day int, slug string) {
	Invalidate(ctx, PostKey(year, month, day, slug))
}

func InvalidateSitemap(ctx context.Context) {
	Invalidate(ctx, SitemapKey)
}

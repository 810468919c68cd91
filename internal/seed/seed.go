package seed

import (
	"fmt"
	"log"

	"quill/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumAuthors  int
	NumPosts    int
	ShouldClean bool
}

var tagNames = []string{
	"Go", "Web", "Databases", "Testing", "Performance",
	"Tooling", "Deployment", "Concurrency", "Security", "Writing",
}

// Run populates the database with demo authors, tags, posts and comments.
func Run(db *gorm.DB, opts Options) error {
	if opts.NumAuthors <= 0 {
		opts.NumAuthors = 3
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 25
	}

	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return fmt.Errorf("failed to clean database: %w", err)
		}
		log.Println("Cleaned existing blog data")
	}

	f := NewFactory(db)

	authors := make([]*models.Author, 0, opts.NumAuthors)
	for i := 0; i < opts.NumAuthors; i++ {
		author, err := f.CreateAuthor()
		if err != nil {
			return err
		}
		authors = append(authors, author)
	}

	tags := make([]*models.Tag, 0, len(tagNames))
	for _, name := range tagNames {
		tag, err := f.CreateTag(name)
		if err != nil {
			return err
		}
		tags = append(tags, tag)
	}

	for i := 0; i < opts.NumPosts; i++ {
		author := authors[f.r.Intn(len(authors))]
		post, err := f.CreatePost(author, 120, func(p *models.Post) {
			// Roughly one post in six stays a draft.
			if f.r.Intn(6) == 0 {
				p.Status = models.PostStatusDraft
			}
		})
		if err != nil {
			return err
		}

		// One to three tags per post.
		picked := pickTags(f, tags, f.r.Intn(3)+1)
		if err := f.AttachTags(post, picked); err != nil {
			return fmt.Errorf("failed to attach tags: %w", err)
		}

		if post.Status == models.PostStatusPublished {
			for j := 0; j < f.r.Intn(4); j++ {
				if _, err := f.CreateComment(post); err != nil {
					return err
				}
			}
		}
	}

	log.Printf("Seeded %d authors, %d tags, %d posts", len(authors), len(tags), opts.NumPosts)
	return nil
}

func pickTags(f *Factory, tags []*models.Tag, n int) []*models.Tag {
	idx := f.r.Perm(len(tags))
	if n > len(tags) {
		n = len(tags)
	}
	picked := make([]*models.Tag, 0, n)
	for _, i := range idx[:n] {
		picked = append(picked, tags[i])
	}
	return picked
}

func clean(db *gorm.DB) error {
	for _, stmt := range []string{
		"DELETE FROM comments",
		"DELETE FROM post_tags",
		"DELETE FROM posts",
		"DELETE FROM tags",
		"DELETE FROM authors",
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

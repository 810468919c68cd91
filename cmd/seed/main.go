// Command main runs the database seeder for the blog.
package main

import (
	"flag"
	"log"

	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/seed"
)

func main() {
	// Parse command line flags
	numAuthors := flag.Int("authors", 3, "Number of authors to create")
	numPosts := flag.Int("posts", 25, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean blog tables before seeding")
	flag.Parse()

	log.Printf("Seeding target: %d authors, %d posts, clean=%v", *numAuthors, *numPosts, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		NumAuthors:  *numAuthors,
		NumPosts:    *numPosts,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}

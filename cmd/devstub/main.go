package main

// devstub runs the in-memory BookHub API stand-in for local development.
// It accepts both auth postures: minted bearer tokens and X-Dev-Bypass: 1.

import (
	"fmt"
	"log"

	"bookadmin/internal/client"
	"bookadmin/internal/config"
	"bookadmin/internal/devstub"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	srv := devstub.NewServer("devstub-local-secret-not-for-production")
	seed(srv.Store())

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.StubPort)
	fmt.Println("devstub API listening on", addr)
	if err := srv.Run(addr); err != nil {
		log.Fatalf("devstub exited: %v", err)
	}
}

// seed loads a small data set so the admin CLI has something to show.
func seed(store *devstub.Store) {
	admin, err := store.Register("Site Admin", "admin@bookhub.local", "admin123", client.RoleAdmin)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	reader, _ := store.Register("Paula Reader", "paula@example.com", "paula123", client.RoleUser)

	store.CreateGenre(client.GenreRequest{Name: "Sci-Fi", Description: "Science fiction"})
	store.CreateGenre(client.GenreRequest{Name: "Fantasy"})

	book := store.CreateBook(client.CreateBookRequest{
		Title:  "Dune",
		Author: "Frank Herbert",
		Genre:  "Sci-Fi",
	})
	store.CreateChapter(book.ID, client.ChapterRequest{Title: "Arrakis", Content: "A beginning is the time..."})

	store.SeedTopup(reader.ID, 100, 4.99, "card")
	store.AddFollow(reader.ID, book.ID)
	store.AddComment(book.ID, reader.ID, "Loved the first chapter!")

	_ = admin
}

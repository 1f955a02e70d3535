package dashboard

// dashboard holds the transient per-view data the admin screens render from.
// Nothing here is authoritative: every view entry reloads its collections
// from the API, and the cache lives only for the render cycle.

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"bookadmin/internal/client"
	"bookadmin/internal/nav"
)

// State implements nav.Loader on top of the resource client and keeps the
// last loaded data for rendering.
type State struct {
	mu  sync.Mutex
	api *client.Client

	Stats    *client.Stats
	Books    []client.Book
	Genres   []client.Genre
	Chapters []client.Chapter
	Banners  []client.Banner
	Users    []client.User
	Topups   []client.TopupRequest

	// Selected is the book behind the current detail view, if any.
	Selected *client.Book
}

func NewState(api *client.Client) *State {
	return &State{api: api}
}

// FetchBook loads the selected entity for a detail view. The controller calls
// this before committing the transition; on error the old view stays.
func (s *State) FetchBook(ctx context.Context, id int64) error {
	book, err := s.api.GetBook(ctx, id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.Selected = book
	s.mu.Unlock()
	return nil
}

// LoadCollections refreshes the named collections. Loads run sequentially;
// the first failure aborts and surfaces, nothing is silently retried.
func (s *State) LoadCollections(ctx context.Context, collections []nav.Collection) error {
	for _, col := range collections {
		if err := s.loadOne(ctx, col); err != nil {
			return fmt.Errorf("loading %s: %w", col, err)
		}
	}
	return nil
}

func (s *State) loadOne(ctx context.Context, col nav.Collection) error {
	switch col {
	case nav.CollectionStats:
		stats, err := s.api.GetStats(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.Stats = stats
		s.mu.Unlock()
	case nav.CollectionBooks:
		books, err := s.api.ListBooks(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.Books = books
		s.mu.Unlock()
	case nav.CollectionGenres:
		genres, err := s.api.ListGenres(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.Genres = genres
		s.mu.Unlock()
	case nav.CollectionChapters:
		s.mu.Lock()
		selected := s.Selected
		s.mu.Unlock()
		if selected == nil {
			return fmt.Errorf("no book selected")
		}
		chapters, err := s.api.ListChapters(ctx, selected.ID)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.Chapters = chapters
		s.mu.Unlock()
	case nav.CollectionBanners:
		banners, err := s.api.ListBanners(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.Banners = banners
		s.mu.Unlock()
	case nav.CollectionUsers:
		users, err := s.api.ListUsers(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.Users = users
		s.mu.Unlock()
	case nav.CollectionTopups:
		topups, err := s.api.ListTopupRequests(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.Topups = topups
		s.mu.Unlock()
	default:
		return fmt.Errorf("unknown collection %q", col)
	}
	return nil
}

// Render produces the terminal text for a view from the loaded data.
func (s *State) Render(v nav.View) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "[%s]\n", v.Fragment())

	switch v.Kind {
	case nav.Dashboard:
		if s.Stats != nil {
			fmt.Fprintf(&b, "Books: %d  Chapters: %d  Users: %d  Banners: %d\n",
				s.Stats.TotalBooks, s.Stats.TotalChapters, s.Stats.TotalUsers, s.Stats.TotalBanners)
			fmt.Fprintf(&b, "Pending top-ups: %d  Coins issued: %d\n",
				s.Stats.PendingTopups, s.Stats.CoinsIssued)
		}
	case nav.Books:
		fmt.Fprintf(&b, "%d books, %d genres\n", len(s.Books), len(s.Genres))
		for _, book := range s.Books {
			fmt.Fprintf(&b, "  %d  %s by %s [%s]\n", book.ID, book.Title, book.Author, book.Genre)
		}
	case nav.BookDetail:
		if s.Selected != nil {
			fmt.Fprintf(&b, "%s by %s\n", s.Selected.Title, s.Selected.Author)
			if s.Selected.Description != "" {
				fmt.Fprintf(&b, "%s\n", s.Selected.Description)
			}
			fmt.Fprintf(&b, "%d chapters\n", len(s.Chapters))
		}
	case nav.Chapters:
		for _, ch := range s.Chapters {
			fmt.Fprintf(&b, "  %d  %s\n", ch.ID, ch.Title)
		}
	case nav.Banners:
		for _, banner := range s.Banners {
			state := "off"
			if banner.Enabled {
				state = "on"
			}
			fmt.Fprintf(&b, "  %d  %s (%s) -> %s\n", banner.ID, banner.Title, state, banner.Link)
		}
	case nav.Genres:
		for _, g := range s.Genres {
			fmt.Fprintf(&b, "  %d  %s\n", g.ID, g.Name)
		}
	case nav.Users:
		for _, u := range s.Users {
			fmt.Fprintf(&b, "  %d  %s <%s> role=%s coins=%d\n", u.ID, u.Fullname, u.Email, u.Role, u.Coins)
		}
	case nav.Coins:
		for _, t := range s.Topups {
			fmt.Fprintf(&b, "  %s  user=%d coins=%d %s (%s)\n", t.RequestID, t.UserID, t.Coins, t.Method, t.Status)
		}
	case nav.Settings:
		fmt.Fprintln(&b, "settings")
	}
	return b.String()
}

package nav

// view.go defines the closed set of dashboard views and the fragment
// encoding ("books", "book:42") they round-trip through.

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind names one of the dashboard's views.
type Kind int

const (
	Dashboard Kind = iota
	Books
	Chapters
	BookDetail
	Banners
	Genres
	Users
	Coins
	Settings
)

var kindNames = map[Kind]string{
	Dashboard:  "dashboard",
	Books:      "books",
	Chapters:   "chapters",
	BookDetail: "book",
	Banners:    "banners",
	Genres:     "genres",
	Users:      "users",
	Coins:      "coins",
	Settings:   "settings",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// RequiresEntity reports whether entering this view must first fetch the
// selected book.
func (k Kind) RequiresEntity() bool {
	return k == Chapters || k == BookDetail
}

// View is the navigation state: a view kind plus, for detail views, the
// selected book id.
type View struct {
	Kind   Kind
	BookID int64
}

// Fragment encodes the view as "kind" or "kind:id".
func (v View) Fragment() string {
	if v.Kind.RequiresEntity() {
		return fmt.Sprintf("%s:%d", v.Kind, v.BookID)
	}
	return v.Kind.String()
}

func (v View) String() string { return v.Fragment() }

// ParseFragment decodes "kind" / "kind:id" back into a View. It is the single
// fallback decode path when a history entry carries no structured payload.
func ParseFragment(fragment string) (View, error) {
	fragment = strings.TrimPrefix(strings.TrimSpace(fragment), "#")
	if fragment == "" {
		return View{}, fmt.Errorf("empty fragment")
	}

	name, idPart, hasID := strings.Cut(fragment, ":")
	var kind Kind
	found := false
	for k, n := range kindNames {
		if n == name {
			kind, found = k, true
			break
		}
	}
	if !found {
		return View{}, fmt.Errorf("unknown view %q", name)
	}

	if kind.RequiresEntity() {
		if !hasID {
			return View{}, fmt.Errorf("view %q needs an entity id", name)
		}
		id, err := strconv.ParseInt(idPart, 10, 64)
		if err != nil {
			return View{}, fmt.Errorf("bad entity id %q: %w", idPart, err)
		}
		return View{Kind: kind, BookID: id}, nil
	}
	if hasID {
		return View{}, fmt.Errorf("view %q does not take an entity id", name)
	}
	return View{Kind: kind}, nil
}

// Collection names a remote data set a view depends on.
type Collection string

const (
	CollectionStats    Collection = "stats"
	CollectionBooks    Collection = "books"
	CollectionGenres   Collection = "genres"
	CollectionChapters Collection = "chapters"
	CollectionBanners  Collection = "banners"
	CollectionUsers    Collection = "users"
	CollectionTopups   Collection = "topups"
)

// Dependencies lists the collections to (re)load on every entry into the
// view. Stale data from a previous view is never assumed valid.
func (v View) Dependencies() []Collection {
	switch v.Kind {
	case Dashboard:
		return []Collection{CollectionStats}
	case Books:
		return []Collection{CollectionBooks, CollectionGenres}
	case Chapters, BookDetail:
		return []Collection{CollectionChapters}
	case Banners:
		return []Collection{CollectionBanners}
	case Genres:
		return []Collection{CollectionGenres}
	case Users:
		return []Collection{CollectionUsers}
	case Coins:
		return []Collection{CollectionTopups}
	case Settings:
		return nil
	default:
		return nil
	}
}

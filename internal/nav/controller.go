package nav

// controller.go owns the single source of truth for "what view is shown".
// Transitions into detail views suspend on one entity fetch and commit only
// on success; every committed transition reloads the view's collections and
// pushes/moves the history cursor.

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// Loader is what the controller needs from the data layer. FetchBook loads
// (and caches, caller-side) the selected entity for detail views;
// LoadCollections refreshes the remote collections a view depends on.
type Loader interface {
	FetchBook(ctx context.Context, id int64) error
	LoadCollections(ctx context.Context, collections []Collection) error
}

// Controller keeps the current view and its history in lockstep. The
// displayed view always matches the history entry under the cursor.
type Controller struct {
	mu        sync.Mutex
	loader    Loader
	history   *History
	current   View
	statePath string // "" disables persistence
}

// NewController restores the history from statePath (when non-empty) and
// derives the initial view from its head entry; anything unrecognized falls
// back to the dashboard.
func NewController(loader Loader, statePath string) *Controller {
	c := &Controller{
		loader:    loader,
		history:   NewHistory(),
		current:   View{Kind: Dashboard},
		statePath: statePath,
	}

	if statePath != "" {
		h, err := LoadHistory(statePath)
		if err != nil {
			log.Printf("nav: discarding unreadable state file %s: %v", statePath, err)
			return c
		}
		c.history = h
		if entry, ok := h.Current(); ok {
			if v, err := entry.Decode(); err == nil {
				c.current = v
			}
		}
	}
	return c
}

// Current returns the committed view.
func (c *Controller) Current() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Navigate moves to v. For detail views the entity fetch happens first and a
// fetch failure abandons the transition: the previous view stays committed,
// nothing is pushed. On success the view is committed, pushed, persisted, and
// its collections are reloaded.
func (c *Controller) Navigate(ctx context.Context, v View) error {
	if v.Kind.RequiresEntity() && v.BookID <= 0 {
		return fmt.Errorf("view %q needs a book id", v.Kind)
	}

	// The fetch runs outside the lock, so overlapping navigations can
	// interleave fetch and commit: a slow fetch that started earlier may
	// commit after a later navigation. Known race, tolerated: last commit
	// wins, and every entry reloads its collections anyway.
	if v.Kind.RequiresEntity() {
		if err := c.loader.FetchBook(ctx, v.BookID); err != nil {
			return fmt.Errorf("navigation to %s abandoned: %w", v.Fragment(), err)
		}
	}

	c.mu.Lock()
	c.current = v
	c.history.Push(v)
	c.persistLocked()
	c.mu.Unlock()

	return c.loader.LoadCollections(ctx, v.Dependencies())
}

// Back restores the previous history entry, re-fetching the entity for detail
// views before the view becomes current. When the stack has nothing earlier,
// the current view is returned unchanged.
func (c *Controller) Back(ctx context.Context) (View, error) {
	return c.step(ctx, -1)
}

// Forward is the inverse of Back.
func (c *Controller) Forward(ctx context.Context) (View, error) {
	return c.step(ctx, +1)
}

func (c *Controller) step(ctx context.Context, direction int) (View, error) {
	c.mu.Lock()
	target := c.history.Pos + direction
	if target < 0 || target >= len(c.history.Entries) {
		v := c.current
		c.mu.Unlock()
		return v, nil
	}
	entry := c.history.Entries[target]
	c.mu.Unlock()

	v, err := entry.Decode()
	if err != nil {
		return c.Current(), fmt.Errorf("history entry is undecodable: %w", err)
	}

	// Same suspension rule as forward navigation: detail views load their
	// entity before they are reported current.
	if v.Kind.RequiresEntity() {
		if err := c.loader.FetchBook(ctx, v.BookID); err != nil {
			return c.Current(), fmt.Errorf("restore of %s abandoned: %w", v.Fragment(), err)
		}
	}

	c.mu.Lock()
	c.history.Pos = target
	c.current = v
	c.persistLocked()
	c.mu.Unlock()

	if err := c.loader.LoadCollections(ctx, v.Dependencies()); err != nil {
		return v, err
	}
	return v, nil
}

// Reload re-runs the current view's collection loads without touching the
// history, e.g. after a mutation so the table reflects it.
func (c *Controller) Reload(ctx context.Context) error {
	v := c.Current()
	if v.Kind.RequiresEntity() {
		if err := c.loader.FetchBook(ctx, v.BookID); err != nil {
			return err
		}
	}
	return c.loader.LoadCollections(ctx, v.Dependencies())
}

func (c *Controller) persistLocked() {
	if c.statePath == "" {
		return
	}
	if err := c.history.Save(c.statePath); err != nil {
		// Persistence is best-effort; navigation itself already committed.
		log.Printf("nav: failed to persist state: %v", err)
	}
}

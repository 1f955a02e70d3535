package devstub

// store.go is the stub's in-memory state. It mirrors the real backend's
// behavior closely enough for the admin client to develop against: partial
// updates, wallet arithmetic, and the pending-only transition rule for
// top-up requests.

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bookadmin/internal/client"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrTopupFinal    = errors.New("top-up request already finalized")
	ErrBadCredential = errors.New("invalid credentials")
)

type Store struct {
	mu sync.Mutex

	nextID int64

	books    map[int64]*client.Book
	chapters map[int64]map[int64]*client.Chapter // book id -> chapter id -> chapter
	genres   map[int64]*client.Genre
	banners  map[int64]*client.Banner
	users    map[int64]*client.User
	ads      map[int64]*client.Ad
	comments map[int64]*client.Comment
	follows  map[int64][]client.Follow // user id -> follows
	topups   map[string]*client.TopupRequest

	passwords map[string]string // email -> bcrypt hash
	uploads   map[string][]byte // stored path -> bytes
}

func NewStore() *Store {
	return &Store{
		books:     make(map[int64]*client.Book),
		chapters:  make(map[int64]map[int64]*client.Chapter),
		genres:    make(map[int64]*client.Genre),
		banners:   make(map[int64]*client.Banner),
		users:     make(map[int64]*client.User),
		ads:       make(map[int64]*client.Ad),
		comments:  make(map[int64]*client.Comment),
		follows:   make(map[int64][]client.Follow),
		topups:    make(map[string]*client.TopupRequest),
		passwords: make(map[string]string),
		uploads:   make(map[string][]byte),
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// --- auth / users ---

func (s *Store) Register(fullname, email, password, role string) (*client.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = client.RoleUser
	}
	u := &client.User{
		ID:        s.id(),
		Fullname:  fullname,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}
	s.users[u.ID] = u
	s.passwords[email] = string(hash)
	return cloneUser(u), nil
}

func (s *Store) Authenticate(email, password string) (*client.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash, ok := s.passwords[email]
	if !ok {
		return nil, ErrBadCredential
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, ErrBadCredential
	}
	for _, u := range s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, ErrBadCredential
}

func (s *Store) ListUsers() []client.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]client.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	sortByID(out, func(u client.User) int64 { return u.ID })
	return out
}

func (s *Store) GetUser(id int64) (*client.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneUser(u), nil
}

func (s *Store) UpdateUser(id int64, req client.UpdateUserRequest) (*client.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if req.Fullname != nil {
		u.Fullname = *req.Fullname
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	return cloneUser(u), nil
}

func (s *Store) DeleteUser(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	if u.Role == client.RoleAdmin {
		return fmt.Errorf("%w: cannot delete admin account", ErrConflict)
	}
	delete(s.users, id)
	return nil
}

func (s *Store) CreditWallet(id, coins int64) (*client.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	u.Coins += coins
	return cloneUser(u), nil
}

// --- books / chapters ---

func (s *Store) ListBooks() []client.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]client.Book, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, *b)
	}
	sortByID(out, func(b client.Book) int64 { return b.ID })
	return out
}

func (s *Store) GetBook(id int64) (*client.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok {
		return nil, ErrNotFound
	}
	book := *b
	book.Chapters = s.chapterListLocked(id)
	return &book, nil
}

func (s *Store) CreateBook(req client.CreateBookRequest) *client.Book {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := &client.Book{
		ID:          s.id(),
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Genre:       req.Genre,
		CoverURL:    req.CoverURL,
		CreatedAt:   time.Now(),
	}
	s.books[b.ID] = b
	s.chapters[b.ID] = make(map[int64]*client.Chapter)
	book := *b
	return &book
}

func (s *Store) UpdateBook(id int64, req client.UpdateBookRequest) (*client.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[id]
	if !ok {
		return nil, ErrNotFound
	}
	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Author != nil {
		b.Author = *req.Author
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.Genre != nil {
		b.Genre = *req.Genre
	}
	if req.CoverURL != nil {
		b.CoverURL = *req.CoverURL
	}
	book := *b
	return &book, nil
}

func (s *Store) DeleteBook(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[id]; !ok {
		return ErrNotFound
	}
	delete(s.books, id)
	delete(s.chapters, id)
	return nil
}

func (s *Store) chapterListLocked(bookID int64) []client.Chapter {
	out := make([]client.Chapter, 0, len(s.chapters[bookID]))
	for _, ch := range s.chapters[bookID] {
		out = append(out, *ch)
	}
	sortByID(out, func(ch client.Chapter) int64 { return ch.ID })
	return out
}

func (s *Store) ListChapters(bookID int64) ([]client.Chapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[bookID]; !ok {
		return nil, ErrNotFound
	}
	return s.chapterListLocked(bookID), nil
}

func (s *Store) CreateChapter(bookID int64, req client.ChapterRequest) (*client.Chapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[bookID]; !ok {
		return nil, ErrNotFound
	}
	ch := &client.Chapter{
		ID:        s.id(),
		BookID:    bookID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	s.chapters[bookID][ch.ID] = ch
	chapter := *ch
	return &chapter, nil
}

func (s *Store) UpdateChapter(bookID, chapterID int64, req client.ChapterRequest) (*client.Chapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.chapters[bookID][chapterID]
	if !ok {
		return nil, ErrNotFound
	}
	if req.Title != "" {
		ch.Title = req.Title
	}
	if req.Content != "" {
		ch.Content = req.Content
	}
	chapter := *ch
	return &chapter, nil
}

func (s *Store) DeleteChapter(bookID, chapterID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.chapters[bookID][chapterID]; !ok {
		return ErrNotFound
	}
	delete(s.chapters[bookID], chapterID)
	return nil
}

// --- genres ---

func (s *Store) ListGenres() []client.Genre {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]client.Genre, 0, len(s.genres))
	for _, g := range s.genres {
		out = append(out, *g)
	}
	sortByID(out, func(g client.Genre) int64 { return g.ID })
	return out
}

func (s *Store) CreateGenre(req client.GenreRequest) (*client.Genre, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.genres {
		if g.Name == req.Name {
			return nil, fmt.Errorf("%w: genre name already exists", ErrConflict)
		}
	}
	g := &client.Genre{ID: s.id(), Name: req.Name, Description: req.Description}
	s.genres[g.ID] = g
	genre := *g
	return &genre, nil
}

func (s *Store) UpdateGenre(id int64, req client.GenreRequest) (*client.Genre, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.genres[id]
	if !ok {
		return nil, ErrNotFound
	}
	g.Name = req.Name
	g.Description = req.Description
	genre := *g
	return &genre, nil
}

func (s *Store) DeleteGenre(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.genres[id]; !ok {
		return ErrNotFound
	}
	delete(s.genres, id)
	return nil
}

// --- banners ---

func (s *Store) ListBanners() []client.Banner {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]client.Banner, 0, len(s.banners))
	for _, b := range s.banners {
		out = append(out, *b)
	}
	sortByID(out, func(b client.Banner) int64 { return b.ID })
	return out
}

func (s *Store) CreateBanner(title, link string, enabled bool, image []byte) *client.Banner {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := &client.Banner{ID: s.id(), Title: title, Link: link, Enabled: enabled}
	b.ImageURL = fmt.Sprintf("/static/banners/%d", b.ID)
	s.uploads[b.ImageURL] = image
	s.banners[b.ID] = b
	banner := *b
	return &banner
}

func (s *Store) UpdateBanner(id int64, title, link string, enabled bool, image []byte) (*client.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.banners[id]
	if !ok {
		return nil, ErrNotFound
	}
	b.Title = title
	b.Link = link
	b.Enabled = enabled
	if len(image) > 0 {
		s.uploads[b.ImageURL] = image
	}
	banner := *b
	return &banner, nil
}

func (s *Store) DeleteBanner(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.banners[id]; !ok {
		return ErrNotFound
	}
	delete(s.banners, id)
	return nil
}

// --- ads ---

func (s *Store) ListAds(includeInactive bool) []client.Ad {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]client.Ad, 0, len(s.ads))
	for _, a := range s.ads {
		if includeInactive || a.Active {
			out = append(out, *a)
		}
	}
	sortByID(out, func(a client.Ad) int64 { return a.ID })
	return out
}

func (s *Store) CreateAd(title string, active bool, video []byte) *client.Ad {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := &client.Ad{ID: s.id(), Title: title, Active: active, CreatedAt: time.Now()}
	a.VideoURL = fmt.Sprintf("/static/ads/%d", a.ID)
	s.uploads[a.VideoURL] = video
	s.ads[a.ID] = a
	ad := *a
	return &ad
}

func (s *Store) DeleteAd(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ads[id]; !ok {
		return ErrNotFound
	}
	delete(s.ads, id)
	return nil
}

// --- comments / follows ---

func (s *Store) ListComments() []client.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]client.Comment, 0, len(s.comments))
	for _, c := range s.comments {
		out = append(out, *c)
	}
	sortByID(out, func(c client.Comment) int64 { return c.ID })
	return out
}

func (s *Store) AddComment(bookID, userID int64, content string) *client.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := &client.Comment{ID: s.id(), BookID: bookID, UserID: userID, Content: content, CreatedAt: time.Now()}
	s.comments[c.ID] = c
	comment := *c
	return &comment
}

func (s *Store) DeleteComment(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[id]; !ok {
		return ErrNotFound
	}
	delete(s.comments, id)
	return nil
}

func (s *Store) ListFollows(userID int64) []client.Follow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]client.Follow(nil), s.follows[userID]...)
}

func (s *Store) AddFollow(userID, bookID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.follows[userID] = append(s.follows[userID], client.Follow{UserID: userID, BookID: bookID, CreatedAt: time.Now()})
}

// --- top-up requests ---

// SeedTopup creates a pending request, standing in for the end-user flow
// which is out of scope for the admin client.
func (s *Store) SeedTopup(userID, coins int64, amount float64, method string) *client.TopupRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &client.TopupRequest{
		RequestID: uuid.NewString(),
		UserID:    userID,
		Coins:     coins,
		Amount:    amount,
		Method:    method,
		Status:    client.TopupPending,
		CreatedAt: time.Now(),
	}
	s.topups[t.RequestID] = t
	topup := *t
	return &topup
}

func (s *Store) ListTopups() []client.TopupRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]client.TopupRequest, 0, len(s.topups))
	for _, t := range s.topups {
		out = append(out, *t)
	}
	// stable listing order for the admin table
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// ResolveTopup transitions a pending request to approved or rejected.
// Terminal requests never transition again.
func (s *Store) ResolveTopup(requestID, status, adminNote string, coins int64) (*client.TopupRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.topups[requestID]
	if !ok {
		return nil, ErrNotFound
	}
	if t.Status != client.TopupPending {
		return nil, ErrTopupFinal
	}
	t.Status = status
	t.AdminNote = adminNote
	if status == client.TopupApproved {
		if u, ok := s.users[t.UserID]; ok {
			u.Coins += coins
		}
	}
	topup := *t
	return &topup, nil
}

// --- uploads / stats ---

// SaveUpload stores the decoded cover bytes and returns the served path.
func (s *Store) SaveUpload(filename string, data []byte) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	path := fmt.Sprintf("/static/covers/%s-%s", uuid.NewString(), filename)
	s.uploads[path] = data
	return path
}

// Upload returns stored bytes by path (used by tests to observe orphans).
func (s *Store) Upload(path string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.uploads[path]
	return data, ok
}

func (s *Store) Stats() client.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := client.Stats{
		TotalBooks:   int64(len(s.books)),
		TotalUsers:   int64(len(s.users)),
		TotalBanners: int64(len(s.banners)),
	}
	for _, chs := range s.chapters {
		stats.TotalChapters += int64(len(chs))
	}
	for _, t := range s.topups {
		if t.Status == client.TopupPending {
			stats.PendingTopups++
		}
		if t.Status == client.TopupApproved {
			stats.CoinsIssued += t.Coins
		}
	}
	return stats
}

func cloneUser(u *client.User) *client.User {
	user := *u
	return &user
}

// sortByID keeps list responses deterministic.
func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}

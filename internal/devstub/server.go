package devstub

// devstub is an in-memory stand-in for the BookHub API, used for local
// development of the admin client and for integration-style tests. It is not
// a production backend: the real API server is an external collaborator.

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bookadmin/internal/client"
)

type Server struct {
	engine *gin.Engine
	store  *Store
	secret string
}

func NewServer(secret string) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		engine: gin.New(),
		store:  NewStore(),
		secret: secret,
	}
	s.engine.Use(gin.Recovery())
	s.routes()
	return s
}

// Store exposes the backing store so dev setups and tests can seed data.
func (s *Server) Store() *Store { return s.store }

// Handler returns the http.Handler, for httptest servers.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until the process exits.
func (s *Server) Run(addr string) error { return s.engine.Run(addr) }

func (s *Server) routes() {
	r := s.engine

	r.POST("/auth/login", s.login)
	r.POST("/auth/register", s.register)
	r.GET("/ads", func(c *gin.Context) { c.JSON(http.StatusOK, s.store.ListAds(false)) })

	auth := r.Group("/", authRequired(s.secret))
	{
		auth.GET("/stats", func(c *gin.Context) { c.JSON(http.StatusOK, s.store.Stats()) })

		auth.GET("/books", func(c *gin.Context) { c.JSON(http.StatusOK, s.store.ListBooks()) })
		auth.POST("/books", s.createBook)
		auth.GET("/books/:id", s.getBook)
		auth.PUT("/books/:id", s.updateBook)
		auth.DELETE("/books/:id", s.deleteBook)
		auth.POST("/uploads/cover-json", s.uploadCover)

		auth.GET("/books/:id/chapters", s.listChapters)
		auth.POST("/books/:id/chapters", s.createChapter)
		auth.PUT("/books/:id/chapters/:chapter_id", s.updateChapter)
		auth.DELETE("/books/:id/chapters/:chapter_id", s.deleteChapter)

		auth.GET("/genres", func(c *gin.Context) { c.JSON(http.StatusOK, s.store.ListGenres()) })
		auth.POST("/genres", s.createGenre)
		auth.PUT("/genres/:id", s.updateGenre)
		auth.DELETE("/genres/:id", s.deleteGenre)

		auth.GET("/banners", func(c *gin.Context) { c.JSON(http.StatusOK, s.store.ListBanners()) })
		auth.POST("/banners", s.createBanner)
		auth.PUT("/banners/:id", s.updateBanner)
		auth.DELETE("/banners/:id", s.deleteBanner)

		auth.GET("/users", func(c *gin.Context) { c.JSON(http.StatusOK, s.store.ListUsers()) })
		auth.POST("/users", s.createUser)
		auth.GET("/users/:id", s.getUser)
		auth.PUT("/users/:id", s.updateUser)
		auth.DELETE("/users/:id", s.deleteUser)
		auth.POST("/users/:id/wallet/topup", s.creditWallet)
		auth.GET("/users/:id/follows", s.listFollows)

		auth.GET("/wallet/topup-requests", func(c *gin.Context) { c.JSON(http.StatusOK, s.store.ListTopups()) })
		auth.POST("/wallet/topup-requests/:id/approve", s.approveTopup)
		auth.POST("/wallet/topup-requests/:id/reject", s.rejectTopup)

		auth.GET("/ads/admin", func(c *gin.Context) { c.JSON(http.StatusOK, s.store.ListAds(true)) })
		auth.POST("/ads", s.createAd)
		auth.DELETE("/ads/:id", s.deleteAd)

		auth.GET("/comments", func(c *gin.Context) { c.JSON(http.StatusOK, s.store.ListComments()) })
		auth.DELETE("/comments/:id", s.deleteComment)
	}
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, ErrTopupFinal):
		c.JSON(http.StatusConflict, gin.H{"error": "top-up request already finalized"})
	case errors.Is(err, ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// --- auth ---

func (s *Server) login(c *gin.Context) {
	var req client.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := s.store.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	token, err := mintToken(s.secret, u, 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not mint token"})
		return
	}
	c.JSON(http.StatusOK, client.AuthResponse{Token: token})
}

func (s *Server) register(c *gin.Context) {
	var req client.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := s.store.Register(req.Fullname, req.Email, req.Password, client.RoleUser)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// --- books ---

func (s *Server) createBook(c *gin.Context) {
	var req client.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, s.store.CreateBook(req))
}

func (s *Server) getBook(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	book, err := s.store.GetBook(id)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

func (s *Server) updateBook(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req client.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	book, err := s.store.UpdateBook(id, req)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

func (s *Server) deleteBook(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteBook(id); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) uploadCover(c *gin.Context) {
	var req struct {
		Filename string `json:"filename" binding:"required"`
		Data     string `json:"data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data is not valid base64"})
		return
	}
	c.JSON(http.StatusCreated, client.UploadResult{URL: s.store.SaveUpload(req.Filename, data)})
}

// --- chapters ---

func (s *Server) listChapters(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	chapters, err := s.store.ListChapters(id)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, chapters)
}

func (s *Server) createChapter(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req client.ChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	chapter, err := s.store.CreateChapter(id, req)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, chapter)
}

func (s *Server) updateChapter(c *gin.Context) {
	bookID, ok := idParam(c, "id")
	if !ok {
		return
	}
	chapterID, ok := idParam(c, "chapter_id")
	if !ok {
		return
	}
	var req client.ChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	chapter, err := s.store.UpdateChapter(bookID, chapterID, req)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, chapter)
}

func (s *Server) deleteChapter(c *gin.Context) {
	bookID, ok := idParam(c, "id")
	if !ok {
		return
	}
	chapterID, ok := idParam(c, "chapter_id")
	if !ok {
		return
	}
	if err := s.store.DeleteChapter(bookID, chapterID); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- genres ---

func (s *Server) createGenre(c *gin.Context) {
	var req client.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	genre, err := s.store.CreateGenre(req)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, genre)
}

func (s *Server) updateGenre(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req client.GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	genre, err := s.store.UpdateGenre(id, req)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, genre)
}

func (s *Server) deleteGenre(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteGenre(id); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- banners ---

func bannerForm(c *gin.Context) (title, link string, enabled bool, image []byte, err error) {
	title = c.PostForm("title")
	link = c.PostForm("link")
	enabled = c.PostForm("enabled") == "1"

	file, err := c.FormFile("banner")
	if err != nil {
		return title, link, enabled, nil, nil // image is optional on update
	}
	f, err := file.Open()
	if err != nil {
		return "", "", false, nil, err
	}
	defer f.Close()
	image, err = io.ReadAll(f)
	return title, link, enabled, image, err
}

func (s *Server) createBanner(c *gin.Context) {
	title, link, enabled, image, err := bannerForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if title == "" || len(image) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and banner file are required"})
		return
	}
	c.JSON(http.StatusCreated, s.store.CreateBanner(title, link, enabled, image))
}

func (s *Server) updateBanner(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var title, link string
	var enabled bool
	var image []byte
	if c.ContentType() == "application/json" {
		var req client.Banner
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		title, link, enabled = req.Title, req.Link, req.Enabled
	} else {
		var err error
		title, link, enabled, image, err = bannerForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	banner, err := s.store.UpdateBanner(id, title, link, enabled, image)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, banner)
}

func (s *Server) deleteBanner(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteBanner(id); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- users / wallet ---

func (s *Server) createUser(c *gin.Context) {
	var req client.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := s.store.Register(req.Fullname, req.Email, req.Password, req.Role)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (s *Server) getUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	u, err := s.store.GetUser(id)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *Server) updateUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req client.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := s.store.UpdateUser(id, req)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *Server) deleteUser(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteUser(id); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) creditWallet(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req client.WalletCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Coins <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coins must be positive"})
		return
	}
	u, err := s.store.CreditWallet(id, req.Coins)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *Server) listFollows(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.store.ListFollows(id))
}

// --- top-ups ---

func (s *Server) approveTopup(c *gin.Context) {
	var req struct {
		Coins     int64  `json:"coins"`
		AdminNote string `json:"admin_note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	topup, err := s.store.ResolveTopup(c.Param("id"), client.TopupApproved, req.AdminNote, req.Coins)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, topup)
}

func (s *Server) rejectTopup(c *gin.Context) {
	var req struct {
		AdminNote string `json:"admin_note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	topup, err := s.store.ResolveTopup(c.Param("id"), client.TopupRejected, req.AdminNote, 0)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, topup)
}

// --- ads / comments ---

func (s *Server) createAd(c *gin.Context) {
	title := c.PostForm("title")
	active := c.PostForm("active") == "1"

	file, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video file is required"})
		return
	}
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()
	video, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	c.JSON(http.StatusCreated, s.store.CreateAd(title, active, video))
}

func (s *Server) deleteAd(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteAd(id); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteComment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := s.store.DeleteComment(id); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package client

import "time"

// User roles as the server reports them.
const (
	RoleUser   = "user"
	RoleAuthor = "author"
	RoleAdmin  = "admin"
)

// Top-up request states. Approved and rejected are terminal.
const (
	TopupPending  = "pending"
	TopupApproved = "approved"
	TopupRejected = "rejected"
)

type Book struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Description string    `json:"description,omitempty"`
	Genre       string    `json:"genre,omitempty"`
	CoverURL    string    `json:"cover_url,omitempty"`
	Chapters    []Chapter `json:"chapters,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

type Chapter struct {
	ID        int64     `json:"id"`
	BookID    int64     `json:"book_id,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type Genre struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Banner struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Link     string `json:"link,omitempty"`
	Enabled  bool   `json:"enabled"`
	ImageURL string `json:"image_url,omitempty"`
}

type User struct {
	ID        int64     `json:"id"`
	Fullname  string    `json:"fullname"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Coins     int64     `json:"coins"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type TopupRequest struct {
	RequestID string    `json:"request_id"`
	UserID    int64     `json:"user_id"`
	Coins     int64     `json:"coins"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	AdminNote string    `json:"admin_note,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type Ad struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	VideoURL  string    `json:"video_url,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type Comment struct {
	ID        int64     `json:"id"`
	BookID    int64     `json:"book_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type Follow struct {
	UserID    int64     `json:"user_id"`
	BookID    int64     `json:"book_id"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Stats is the dashboard summary from GET /stats.
type Stats struct {
	TotalBooks    int64 `json:"total_books"`
	TotalChapters int64 `json:"total_chapters"`
	TotalUsers    int64 `json:"total_users"`
	TotalBanners  int64 `json:"total_banners"`
	PendingTopups int64 `json:"pending_topups"`
	CoinsIssued   int64 `json:"coins_issued"`
}

// --- request payloads ---

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

type CreateBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description,omitempty"`
	Genre       string `json:"genre,omitempty"`
	CoverURL    string `json:"cover_url,omitempty"`
}

// UpdateBookRequest uses pointers so unset fields stay untouched server-side.
type UpdateBookRequest struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	Description *string `json:"description,omitempty"`
	Genre       *string `json:"genre,omitempty"`
	CoverURL    *string `json:"cover_url,omitempty"`
}

type ChapterRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type GenreRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CreateUserRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type UpdateUserRequest struct {
	Fullname *string `json:"fullname,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
}

type WalletCreditRequest struct {
	Coins int64  `json:"coins"`
	Note  string `json:"note,omitempty"`
}

// UploadResult is what /uploads/cover-json answers: where the file landed.
type UploadResult struct {
	URL string `json:"url"`
}

type uploadCoverRequest struct {
	Filename string `json:"filename"`
	Data     string `json:"data"` // base64-encoded file contents
}

package domain

import (
	"time"
)

// excerptLimit is the number of leading runes kept when deriving an excerpt
const excerptLimit = 200

// Post represents a blog post
type Post struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Body      string    `gorm:"column:body;type:text" json:"body"`
	Excerpt   string    `gorm:"column:excerpt;type:text" json:"excerpt"`
	Image     string    `gorm:"column:image" json:"image"`
	AuthorID  string    `gorm:"column:author_id;index;size:36;not null" json:"author_id"`
	Views     int64     `gorm:"column:views;default:0" json:"views"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}

// EffectiveExcerpt returns the stored excerpt, or derives one from the body:
// the first 200 runes plus an ellipsis when the body was truncated.
func (p *Post) EffectiveExcerpt() string {
	if p.Excerpt != "" {
		return p.Excerpt
	}
	return DeriveExcerpt(p.Body)
}

// DeriveExcerpt derives an excerpt from a post body
func DeriveExcerpt(body string) string {
	runes := []rune(body)
	if len(runes) <= excerptLimit {
		return body
	}
	return string(runes[:excerptLimit]) + "..."
}

// AuthorInfo is the author block embedded in feed items
type AuthorInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"name"`
	Email       string `json:"email"`
}

// FeedItem bundles a post with its author and social metadata.
// Viewer flags are always present; false for anonymous readers.
type FeedItem struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Body           string     `json:"body,omitempty"`
	Excerpt        string     `json:"excerpt"`
	Image          string     `json:"image,omitempty"`
	Author         AuthorInfo `json:"author"`
	LikesCount     int64      `json:"likes_count"`
	WishlistCount  int64      `json:"wishlist_count"`
	CommentsCount  int64      `json:"comments_count"`
	UserLiked      bool       `json:"user_liked"`
	UserWishlisted bool       `json:"user_wishlisted"`
	Views          int64      `json:"views"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// CreatePostRequest creates a new post
type CreatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Body    string `json:"content" binding:"required"`
	Excerpt string `json:"excerpt"`
	Image   string `json:"image"`
}

// UpdatePostRequest updates an existing post
type UpdatePostRequest struct {
	Title   string `json:"title" binding:"required"`
	Body    string `json:"content" binding:"required"`
	Excerpt string `json:"excerpt"`
	Image   string `json:"image"`
}

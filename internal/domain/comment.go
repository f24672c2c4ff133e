package domain

import "time"

// Comment is a flat comment on a post
type Comment struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	PostID    string    `gorm:"column:post_id;index;size:36;not null" json:"post_id"`
	ProfileID string    `gorm:"column:profile_id;size:36;not null" json:"profile_id"`
	Body      string    `gorm:"column:body;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	Post Post `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentResponse is a comment with its author attached
type CommentResponse struct {
	ID        string     `json:"id"`
	PostID    string     `json:"post_id"`
	Body      string     `json:"content"`
	Author    AuthorInfo `json:"author"`
	CreatedAt time.Time  `json:"created_at"`
}

// CreateCommentRequest adds a comment to a post
type CreateCommentRequest struct {
	Body string `json:"content" binding:"required"`
}

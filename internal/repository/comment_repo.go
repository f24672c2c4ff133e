package repository

import (
	"errors"
	"time"

	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommentRepository comment data access interface
type CommentRepository interface {
	Create(comment *domain.Comment) error
	ListByPost(postID string, page, limit int) ([]*domain.CommentResponse, int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a comment. The foreign key on post_id catches a post
// deleted between the service's existence check and this insert.
func (r *commentRepository) Create(comment *domain.Comment) error {
	err := r.db.Omit(clause.Associations).Create(comment).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return common.ErrPostNotFound
	}
	return err
}

// ListByPost returns comments for a post, newest first
func (r *commentRepository) ListByPost(postID string, page, limit int) ([]*domain.CommentResponse, int64, error) {
	var total int64
	if err := r.db.Model(&domain.Comment{}).Where("post_id = ?", postID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []struct {
		ID          string
		PostID      string
		Body        string
		CreatedAt   time.Time
		AuthorID    string
		AuthorName  string
		AuthorEmail string
	}

	offset := (page - 1) * limit
	err := r.db.Table("comments AS c").
		Select(`c.id, c.post_id, c.body, c.created_at,
			u.id AS author_id, u.display_name AS author_name, u.email AS author_email`).
		Joins("JOIN profiles AS u ON u.id = c.profile_id").
		Where("c.post_id = ?", postID).
		Order("c.created_at DESC, c.id DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	comments := make([]*domain.CommentResponse, len(rows))
	for i, row := range rows {
		comments[i] = &domain.CommentResponse{
			ID:     row.ID,
			PostID: row.PostID,
			Body:   row.Body,
			Author: domain.AuthorInfo{
				ID:          row.AuthorID,
				DisplayName: row.AuthorName,
				Email:       row.AuthorEmail,
			},
			CreatedAt: row.CreatedAt,
		}
	}

	return comments, total, nil
}

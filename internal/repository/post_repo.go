package repository

import (
	"errors"

	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/domain"
	"gorm.io/gorm"
)

// PostRepository post data access interface
type PostRepository interface {
	FindByID(id string) (*domain.Post, error)
	Create(post *domain.Post) error
	Update(post *domain.Post) error
	Delete(id string) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// FindByID returns a post by id, or ErrPostNotFound
func (r *postRepository) FindByID(id string) (*domain.Post, error) {
	var post domain.Post
	err := r.db.Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create inserts a post
func (r *postRepository) Create(post *domain.Post) error {
	return r.db.Create(post).Error
}

// Update saves mutable post fields
func (r *postRepository) Update(post *domain.Post) error {
	result := r.db.Model(&domain.Post{}).Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"title":      post.Title,
			"body":       post.Body,
			"excerpt":    post.Excerpt,
			"image":      post.Image,
			"updated_at": post.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrPostNotFound
	}
	return nil
}

// Delete removes a post together with its ledger entries and comments.
// Everything goes in one transaction so a toggle racing the delete either
// commits before it or observes the post gone.
func (r *postRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&domain.ActionEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&domain.Post{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return common.ErrPostNotFound
		}
		return nil
	})
}

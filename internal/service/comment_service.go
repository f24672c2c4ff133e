package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/domain"
	"github.com/inkwell/inkwell-backend/internal/repository"
)

// CommentService flat comments on posts
type CommentService interface {
	AddComment(profileID, postID string, req *domain.CreateCommentRequest) (*domain.Comment, error)
	ListComments(postID string, page, limit int) ([]*domain.CommentResponse, *common.Meta, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{commentRepo: commentRepo, postRepo: postRepo}
}

// AddComment attaches a comment to an existing post
func (s *commentService) AddComment(profileID, postID string, req *domain.CreateCommentRequest) (*domain.Comment, error) {
	if profileID == "" {
		return nil, common.ErrUnauthorized
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, common.ErrInvalidInput
	}
	if _, err := s.postRepo.FindByID(postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		ProfileID: profileID,
		Body:      req.Body,
		CreatedAt: time.Now(),
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns comments for a post, newest first
func (s *commentService) ListComments(postID string, page, limit int) ([]*domain.CommentResponse, *common.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	comments, total, err := s.commentRepo.ListByPost(postID, page, limit)
	if err != nil {
		return nil, nil, err
	}
	return comments, &common.Meta{Page: page, Limit: limit, Total: total}, nil
}

package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/domain"
	"github.com/inkwell/inkwell-backend/internal/repository"
)

// PostService business logic for authoring posts
type PostService interface {
	CreatePost(req *domain.CreatePostRequest, authorID string) (*domain.Post, error)
	UpdatePost(id string, req *domain.UpdatePostRequest, callerID string) (*domain.Post, error)
	DeletePost(id string, callerID string) error
}

type postService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

// CreatePost creates a post owned by the resolved caller
func (s *postService) CreatePost(req *domain.CreatePostRequest, authorID string) (*domain.Post, error) {
	if authorID == "" {
		return nil, common.ErrUnauthorized
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Body) == "" {
		return nil, common.ErrInvalidInput
	}

	now := time.Now()
	post := &domain.Post{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Body:      req.Body,
		Excerpt:   req.Excerpt,
		Image:     req.Image,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost mutates a post; only the author may do so
func (s *postService) UpdatePost(id string, req *domain.UpdatePostRequest, callerID string) (*domain.Post, error) {
	if callerID == "" {
		return nil, common.ErrUnauthorized
	}

	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != callerID {
		return nil, common.ErrForbidden
	}

	post.Title = req.Title
	post.Body = req.Body
	post.Excerpt = req.Excerpt
	post.Image = req.Image
	post.UpdatedAt = time.Now()

	if err := s.postRepo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post and its dependent rows; only the author may do so
func (s *postService) DeletePost(id string, callerID string) error {
	if callerID == "" {
		return common.ErrUnauthorized
	}

	post, err := s.postRepo.FindByID(id)
	if err != nil {
		return err
	}
	if post.AuthorID != callerID {
		return common.ErrForbidden
	}

	return s.postRepo.Delete(id)
}

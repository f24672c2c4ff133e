package service

import (
	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/domain"
	"github.com/inkwell/inkwell-backend/internal/repository"
)

// ActionService business logic for like/wishlist toggles
type ActionService interface {
	SetLike(profileID, postID string, desired bool) (*domain.LikeStatusResponse, error)
	SetWishlist(profileID, postID string, desired bool) (*domain.WishlistStatusResponse, error)
}

type actionService struct {
	actionRepo repository.ActionRepository
}

// NewActionService creates a new ActionService
func NewActionService(actionRepo repository.ActionRepository) ActionService {
	return &actionService{actionRepo: actionRepo}
}

// SetLike records or revokes the caller's like on a post
func (s *actionService) SetLike(profileID, postID string, desired bool) (*domain.LikeStatusResponse, error) {
	status, err := s.set(profileID, postID, domain.ActionLike, desired)
	if err != nil {
		return nil, err
	}
	return &domain.LikeStatusResponse{
		LikesCount: status.Count,
		UserLiked:  status.Active,
	}, nil
}

// SetWishlist records or revokes the caller's wishlist mark on a post
func (s *actionService) SetWishlist(profileID, postID string, desired bool) (*domain.WishlistStatusResponse, error) {
	status, err := s.set(profileID, postID, domain.ActionWishlist, desired)
	if err != nil {
		return nil, err
	}
	return &domain.WishlistStatusResponse{
		WishlistCount:  status.Count,
		UserWishlisted: status.Active,
	}, nil
}

func (s *actionService) set(profileID, postID string, kind domain.ActionKind, desired bool) (*domain.ActionStatus, error) {
	if profileID == "" {
		return nil, common.ErrUnauthorized
	}
	if postID == "" {
		return nil, common.ErrPostNotFound
	}
	return s.actionRepo.SetAction(profileID, postID, kind, desired)
}

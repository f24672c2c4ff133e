package service

import (
	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/domain"
	"github.com/inkwell/inkwell-backend/internal/repository"
	"github.com/inkwell/inkwell-backend/pkg/logger"
)

// FeedService assembles the paginated feed and single-post reads
type FeedService interface {
	ListFeed(viewerID string, page, limit int) ([]*domain.FeedItem, *common.Meta, error)
	ListWishlist(viewerID string, page, limit int) ([]*domain.FeedItem, *common.Meta, error)
	GetPost(postID, viewerID string) (*domain.FeedItem, error)
}

type feedService struct {
	feedRepo        repository.FeedRepository
	defaultPageSize int
	maxPageSize     int
}

// NewFeedService creates a new FeedService with pagination bounds
func NewFeedService(feedRepo repository.FeedRepository, defaultPageSize, maxPageSize int) FeedService {
	if defaultPageSize < 1 {
		defaultPageSize = 5
	}
	if maxPageSize < defaultPageSize {
		maxPageSize = 20
	}
	return &feedService{
		feedRepo:        feedRepo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// ListFeed returns one page of the feed. List items carry the excerpt only.
func (s *feedService) ListFeed(viewerID string, page, limit int) ([]*domain.FeedItem, *common.Meta, error) {
	page, limit = s.clamp(page, limit)

	items, total, err := s.feedRepo.ListFeed(viewerID, page, limit)
	if err != nil {
		return nil, nil, err
	}

	for _, item := range items {
		trimToListShape(item)
	}

	return items, &common.Meta{Page: page, Limit: limit, Total: total}, nil
}

// ListWishlist returns the viewer's wishlisted posts
func (s *feedService) ListWishlist(viewerID string, page, limit int) ([]*domain.FeedItem, *common.Meta, error) {
	if viewerID == "" {
		return nil, nil, common.ErrUnauthorized
	}
	page, limit = s.clamp(page, limit)

	items, total, err := s.feedRepo.ListWishlist(viewerID, page, limit)
	if err != nil {
		return nil, nil, err
	}

	for _, item := range items {
		trimToListShape(item)
	}

	return items, &common.Meta{Page: page, Limit: limit, Total: total}, nil
}

// GetPost returns one aggregated post and bumps its view counter.
// The increment is best-effort per call but never silently dropped:
// failures are logged with the post id.
func (s *feedService) GetPost(postID, viewerID string) (*domain.FeedItem, error) {
	item, err := s.feedRepo.GetPost(postID, viewerID)
	if err != nil {
		return nil, err
	}

	if err := s.feedRepo.IncrementViews(postID); err != nil {
		logger.Get().Warn().Err(err).Str("post_id", postID).Msg("view increment failed")
	} else {
		item.Views++
	}

	if item.Excerpt == "" {
		item.Excerpt = domain.DeriveExcerpt(item.Body)
	}
	return item, nil
}

func (s *feedService) clamp(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}
	return page, limit
}

func trimToListShape(item *domain.FeedItem) {
	if item.Excerpt == "" {
		item.Excerpt = domain.DeriveExcerpt(item.Body)
	}
	item.Body = ""
}

package repository

import (
	"errors"
	"time"

	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/domain"
	"gorm.io/gorm"
)

// FeedRepository assembles posts with author and social metadata.
// Each page is computed from a single consistent snapshot: the per-post
// aggregation runs as one SQL statement, and items + total share one
// transaction, so a concurrent toggle is either fully visible or not at all.
type FeedRepository interface {
	ListFeed(viewerID string, page, limit int) ([]*domain.FeedItem, int64, error)
	ListWishlist(viewerID string, page, limit int) ([]*domain.FeedItem, int64, error)
	GetPost(postID, viewerID string) (*domain.FeedItem, error)
	IncrementViews(postID string) error
}

type feedRepository struct {
	db *gorm.DB
}

// NewFeedRepository creates a new FeedRepository
func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

// feedRow is the scan target for the aggregate statement
type feedRow struct {
	ID             string
	Title          string
	Body           string
	Excerpt        string
	Image          string
	Views          int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	AuthorID       string
	AuthorName     string
	AuthorEmail    string
	LikesCount     int64
	WishlistCount  int64
	CommentsCount  int64
	UserLiked      bool
	UserWishlisted bool
}

const feedColumns = `p.id, p.title, p.body, p.excerpt, p.image, p.views, p.created_at, p.updated_at,
	u.id AS author_id, u.display_name AS author_name, u.email AS author_email,
	(SELECT COUNT(*) FROM action_entries al WHERE al.post_id = p.id AND al.kind = ?) AS likes_count,
	(SELECT COUNT(*) FROM action_entries aw WHERE aw.post_id = p.id AND aw.kind = ?) AS wishlist_count,
	(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comments_count,
	(SELECT COUNT(*) > 0 FROM action_entries vl WHERE vl.post_id = p.id AND vl.kind = ? AND vl.profile_id = ?) AS user_liked,
	(SELECT COUNT(*) > 0 FROM action_entries vw WHERE vw.post_id = p.id AND vw.kind = ? AND vw.profile_id = ?) AS user_wishlisted`

func feedSelect(tx *gorm.DB, viewerID string) *gorm.DB {
	return tx.Table("posts AS p").
		Select(feedColumns,
			domain.ActionLike, domain.ActionWishlist,
			domain.ActionLike, viewerID,
			domain.ActionWishlist, viewerID).
		Joins("JOIN profiles AS u ON u.id = p.author_id")
}

// ListFeed returns one page of the feed, newest first, plus the total.
// Store failures surface to the caller; an empty page is never used to
// mask a failed read.
func (r *feedRepository) ListFeed(viewerID string, page, limit int) ([]*domain.FeedItem, int64, error) {
	var rows []*feedRow
	var total int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Post{}).Count(&total).Error; err != nil {
			return err
		}

		offset := (page - 1) * limit
		return feedSelect(tx, viewerID).
			Order("p.created_at DESC, p.id DESC").
			Offset(offset).
			Limit(limit).
			Scan(&rows).Error
	})
	if err != nil {
		return nil, 0, err
	}

	return toFeedItems(rows, viewerID), total, nil
}

// ListWishlist returns the viewer's wishlisted posts, most recently
// wishlisted first.
func (r *feedRepository) ListWishlist(viewerID string, page, limit int) ([]*domain.FeedItem, int64, error) {
	var rows []*feedRow
	var total int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.ActionEntry{}).
			Where("profile_id = ? AND kind = ?", viewerID, domain.ActionWishlist).
			Count(&total).Error; err != nil {
			return err
		}

		offset := (page - 1) * limit
		return feedSelect(tx, viewerID).
			Joins("JOIN action_entries AS w ON w.post_id = p.id AND w.profile_id = ? AND w.kind = ?",
				viewerID, domain.ActionWishlist).
			Order("w.created_at DESC, p.id DESC").
			Offset(offset).
			Limit(limit).
			Scan(&rows).Error
	})
	if err != nil {
		return nil, 0, err
	}

	return toFeedItems(rows, viewerID), total, nil
}

// GetPost returns a single aggregated item, or ErrPostNotFound
func (r *feedRepository) GetPost(postID, viewerID string) (*domain.FeedItem, error) {
	var row feedRow
	err := feedSelect(r.db, viewerID).
		Where("p.id = ?", postID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, err
	}
	items := toFeedItems([]*feedRow{&row}, viewerID)
	return items[0], nil
}

// IncrementViews bumps the view counter for a post. The counter is an
// operational hit count, not a ledger-derived aggregate.
func (r *feedRepository) IncrementViews(postID string) error {
	result := r.db.Model(&domain.Post{}).Where("id = ?", postID).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrPostNotFound
	}
	return nil
}

func toFeedItems(rows []*feedRow, viewerID string) []*domain.FeedItem {
	items := make([]*domain.FeedItem, len(rows))
	for i, row := range rows {
		userLiked := row.UserLiked
		userWishlisted := row.UserWishlisted
		if viewerID == "" {
			// anonymous readers always get false, never omitted
			userLiked = false
			userWishlisted = false
		}
		items[i] = &domain.FeedItem{
			ID:             row.ID,
			Title:          row.Title,
			Body:           row.Body,
			Excerpt:        row.Excerpt,
			Image:          row.Image,
			Views:          row.Views,
			CreatedAt:      row.CreatedAt,
			UpdatedAt:      row.UpdatedAt,
			Author: domain.AuthorInfo{
				ID:          row.AuthorID,
				DisplayName: row.AuthorName,
				Email:       row.AuthorEmail,
			},
			LikesCount:     row.LikesCount,
			WishlistCount:  row.WishlistCount,
			CommentsCount:  row.CommentsCount,
			UserLiked:      userLiked,
			UserWishlisted: userWishlisted,
		}
	}
	return items
}

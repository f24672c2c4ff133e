package domain

import "time"

// ActionKind distinguishes the two ledger entry types
type ActionKind string

const (
	ActionLike     ActionKind = "like"
	ActionWishlist ActionKind = "wishlist"
)

// ActionEntry records one like or wishlist fact. The (profile_id, post_id,
// kind) triple is unique; entries are created and deleted, never updated.
// The foreign key on post_id makes orphan entries impossible at the store
// level, whatever the isolation level of the writing transaction.
type ActionEntry struct {
	ID        string     `gorm:"column:id;primaryKey;size:36" json:"id"`
	ProfileID string     `gorm:"column:profile_id;size:36;not null;uniqueIndex:idx_profile_post_kind" json:"profile_id"`
	PostID    string     `gorm:"column:post_id;size:36;not null;uniqueIndex:idx_profile_post_kind;index" json:"post_id"`
	Kind      ActionKind `gorm:"column:kind;size:16;not null;uniqueIndex:idx_profile_post_kind" json:"kind"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`

	Post Post `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ActionEntry) TableName() string {
	return "action_entries"
}

// ActionStatus is the result of a toggle: the fresh count for the post and
// kind, and whether the caller's own entry is active after the write.
type ActionStatus struct {
	Count  int64 `json:"count"`
	Active bool  `json:"active"`
}

// LikeStatusResponse is the wire shape for like toggles
type LikeStatusResponse struct {
	LikesCount int64 `json:"likes_count"`
	UserLiked  bool  `json:"user_liked"`
}

// WishlistStatusResponse is the wire shape for wishlist toggles
type WishlistStatusResponse struct {
	WishlistCount  int64 `json:"wishlist_count"`
	UserWishlisted bool  `json:"user_wishlisted"`
}

package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActionRepository is the like/wishlist ledger. Counts are always derived
// from the entries; nothing here maintains a stored counter.
type ActionRepository interface {
	SetAction(profileID, postID string, kind domain.ActionKind, desired bool) (*domain.ActionStatus, error)
	GetStatus(profileID, postID string, kind domain.ActionKind) (*domain.ActionStatus, error)
}

type actionRepository struct {
	db *gorm.DB
}

// NewActionRepository creates a new ActionRepository
func NewActionRepository(db *gorm.DB) ActionRepository {
	return &actionRepository{db: db}
}

// SetAction records or revokes one ledger entry and returns the fresh count
// plus the caller's resulting state, all inside one transaction. The count
// always reflects the caller's own write. The existence check gives a clean
// not-found for the common case; the foreign key on post_id is what actually
// holds when a post delete commits between the check and the insert, since a
// REPEATABLE READ snapshot can still see the post after it is gone.
func (r *actionRepository) SetAction(profileID, postID string, kind domain.ActionKind, desired bool) (*domain.ActionStatus, error) {
	var status domain.ActionStatus

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var postCount int64
		if err := tx.Model(&domain.Post{}).Where("id = ?", postID).Count(&postCount).Error; err != nil {
			return err
		}
		if postCount == 0 {
			return common.ErrPostNotFound
		}

		if desired {
			// The unique index on (profile_id, post_id, kind) absorbs the
			// duplicate-insert race; toggling on twice is a no-op, not an error.
			entry := &domain.ActionEntry{
				ID:        uuid.NewString(),
				ProfileID: profileID,
				PostID:    postID,
				Kind:      kind,
				CreatedAt: time.Now(),
			}
			err := tx.Omit(clause.Associations).
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(entry).Error
			if err != nil {
				if errors.Is(err, gorm.ErrForeignKeyViolated) {
					return common.ErrPostNotFound
				}
				return err
			}
		} else {
			// Deleting an absent entry is equally a no-op
			if err := tx.Where("profile_id = ? AND post_id = ? AND kind = ?", profileID, postID, kind).
				Delete(&domain.ActionEntry{}).Error; err != nil {
				return err
			}
		}

		fresh, err := readStatus(tx, profileID, postID, kind)
		if err != nil {
			return err
		}
		status = *fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// GetStatus returns the current count and the caller's state without writing
func (r *actionRepository) GetStatus(profileID, postID string, kind domain.ActionKind) (*domain.ActionStatus, error) {
	return readStatus(r.db, profileID, postID, kind)
}

func readStatus(tx *gorm.DB, profileID, postID string, kind domain.ActionKind) (*domain.ActionStatus, error) {
	var count int64
	if err := tx.Model(&domain.ActionEntry{}).
		Where("post_id = ? AND kind = ?", postID, kind).
		Count(&count).Error; err != nil {
		return nil, err
	}

	active := false
	if profileID != "" {
		var mine int64
		if err := tx.Model(&domain.ActionEntry{}).
			Where("profile_id = ? AND post_id = ? AND kind = ?", profileID, postID, kind).
			Count(&mine).Error; err != nil {
			return nil, err
		}
		active = mine > 0
	}

	return &domain.ActionStatus{Count: count, Active: active}, nil
}

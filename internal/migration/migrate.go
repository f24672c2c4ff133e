package migration

import (
	"github.com/inkwell/inkwell-backend/internal/domain"
	"gorm.io/gorm"
)

// Run migrates the schema. The constraints created here are load-bearing:
// profiles.email backs idempotent profile creation, the composite index on
// action_entries enforces at most one entry per (profile, post, kind), and
// the foreign keys from action_entries and comments to posts rule out
// orphaned rows when a toggle races a post delete.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Profile{},
		&domain.AuthAccount{},
		&domain.Post{},
		&domain.ActionEntry{},
		&domain.Comment{},
	)
}

package repository

import (
	"errors"

	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/domain"
	"gorm.io/gorm"
)

// ProfileRepository profile data access interface
type ProfileRepository interface {
	FindByEmail(email string) (*domain.Profile, error)
	FindByID(id string) (*domain.Profile, error)
	Create(profile *domain.Profile) error
	UpdateDisplayName(id string, name string) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// FindByEmail returns the profile for an email, or ErrProfileNotFound
func (r *profileRepository) FindByEmail(email string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.Where("email = ?", email).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// FindByID returns the profile for an id, or ErrProfileNotFound
func (r *profileRepository) FindByID(id string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.Where("id = ?", id).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Create inserts a profile. The unique index on email is the source of
// truth for first-sight creation; callers must treat gorm.ErrDuplicatedKey
// as "someone else won the race" and re-read.
func (r *profileRepository) Create(profile *domain.Profile) error {
	return r.db.Create(profile).Error
}

// UpdateDisplayName updates the display name of a profile
func (r *profileRepository) UpdateDisplayName(id string, name string) error {
	result := r.db.Model(&domain.Profile{}).Where("id = ?", id).
		Update("display_name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrProfileNotFound
	}
	return nil
}

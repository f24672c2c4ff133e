package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/domain"
	"github.com/inkwell/inkwell-backend/internal/repository"
	"gorm.io/gorm"
)

// ProfileResolver is the sole authority translating a verified credential
// into a domain profile. One profile per email, ever; creation happens
// lazily on first sight and is idempotent from then on.
type ProfileResolver interface {
	Resolve(cred domain.Credential) (*domain.Profile, error)
	GetByID(id string) (*domain.Profile, error)
	UpdateDisplayName(id string, name string) (*domain.Profile, error)
}

type profileResolver struct {
	repo repository.ProfileRepository
}

// NewProfileResolver creates a new ProfileResolver
func NewProfileResolver(repo repository.ProfileRepository) ProfileResolver {
	return &profileResolver{repo: repo}
}

// Resolve maps a credential to exactly one profile, creating it if absent.
// A concurrent first-time resolve for the same email loses the insert race
// on the unique email index and falls back to re-reading the winner's row,
// so N concurrent calls all return the same profile id.
func (s *profileResolver) Resolve(cred domain.Credential) (*domain.Profile, error) {
	email := strings.TrimSpace(strings.ToLower(cred.Email))
	if email == "" {
		return nil, common.ErrUnauthorized
	}

	profile, err := s.repo.FindByEmail(email)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, common.ErrProfileNotFound) {
		return nil, err
	}

	profile = &domain.Profile{
		ID:          uuid.NewString(),
		Email:       email,
		DisplayName: displayNameFor(cred, email),
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost the creation race; the winner's row is authoritative
			return s.repo.FindByEmail(email)
		}
		return nil, err
	}
	return profile, nil
}

// GetByID returns a profile by id
func (s *profileResolver) GetByID(id string) (*domain.Profile, error) {
	return s.repo.FindByID(id)
}

// UpdateDisplayName changes the display name and returns the updated profile
func (s *profileResolver) UpdateDisplayName(id string, name string) (*domain.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.ErrInvalidInput
	}
	if err := s.repo.UpdateDisplayName(id, name); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

func displayNameFor(cred domain.Credential, email string) string {
	if name := strings.TrimSpace(cred.DisplayName); name != "" {
		return name
	}
	// fall back to the local part of the email
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

package domain

import "time"

// Profile represents a domain user record, distinct from the authentication
// credential. One row per email, ever.
type Profile struct {
	ID          string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Email       string    `gorm:"column:email;uniqueIndex;size:255;not null" json:"email"`
	DisplayName string    `gorm:"column:display_name;size:100" json:"display_name"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// Credential is the verified identity handed in by the auth middleware.
// It is consumed per-request and never persisted by the core.
type Credential struct {
	Email       string
	DisplayName string
}

// AuthAccount holds the login secret for the auth collaborator.
// The core never reads this table; the resolver only sees the email.
type AuthAccount struct {
	ID           string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Email        string    `gorm:"column:email;uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (AuthAccount) TableName() string {
	return "auth_accounts"
}

// ProfileResponse is the public view of a profile
type ProfileResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"name"`
}

// ToResponse converts a profile to its public view
func (p *Profile) ToResponse() *ProfileResponse {
	return &ProfileResponse{
		ID:          p.ID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
	}
}

// UpdateProfileRequest updates mutable profile fields
type UpdateProfileRequest struct {
	DisplayName string `json:"name" binding:"required"`
}

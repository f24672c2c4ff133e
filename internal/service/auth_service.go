package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/domain"
	"github.com/inkwell/inkwell-backend/internal/repository"
	"github.com/inkwell/inkwell-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// SignupRequest represents a registration request
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned from signup and login
type TokenResponse struct {
	User         *domain.ProfileResponse `json:"user"`
	AccessToken  string                  `json:"token"`
	RefreshToken string                  `json:"refresh"`
}

// AuthService is the credential collaborator: it issues bearer tokens and
// owns the auth_accounts table. Domain profiles are only ever created
// through the ProfileResolver, never synced ad hoc.
type AuthService interface {
	Signup(req *SignupRequest) (*TokenResponse, error)
	Login(req *LoginRequest) (*TokenResponse, error)
	Refresh(refreshToken string) (*TokenResponse, error)
}

type authService struct {
	accountRepo repository.AuthAccountRepository
	resolver    ProfileResolver
	jwtManager  *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(accountRepo repository.AuthAccountRepository, resolver ProfileResolver, jwtManager *jwt.Manager) AuthService {
	return &authService{
		accountRepo: accountRepo,
		resolver:    resolver,
		jwtManager:  jwtManager,
	}
}

// Signup registers a new account and resolves its domain profile
func (s *authService) Signup(req *SignupRequest) (*TokenResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.AuthAccount{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.accountRepo.Create(account); err != nil {
		return nil, err
	}

	profile, err := s.resolver.Resolve(domain.Credential{Email: email, DisplayName: req.Name})
	if err != nil {
		return nil, err
	}

	return s.issueTokens(profile)
}

// Login verifies the password and returns fresh tokens
func (s *authService) Login(req *LoginRequest) (*TokenResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	account, err := s.accountRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	profile, err := s.resolver.Resolve(domain.Credential{Email: email})
	if err != nil {
		return nil, err
	}

	return s.issueTokens(profile)
}

// Refresh exchanges a valid refresh token for a new pair. Access tokens
// are rejected here: only the long-lived token can mint new ones.
func (s *authService) Refresh(refreshToken string) (*TokenResponse, error) {
	claims, err := s.jwtManager.VerifyToken(refreshToken)
	if err != nil || claims.TokenType != jwt.TokenTypeRefresh {
		return nil, common.ErrInvalidToken
	}

	profile, err := s.resolver.Resolve(domain.Credential{Email: claims.Email})
	if err != nil {
		return nil, err
	}

	return s.issueTokens(profile)
}

func (s *authService) issueTokens(profile *domain.Profile) (*TokenResponse, error) {
	access, err := s.jwtManager.GenerateAccessToken(profile.Email, profile.DisplayName)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(profile.Email)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{
		User:         profile.ToResponse(),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"homeport/internal/models"
	"homeport/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken = errors.New("username already in use")
	ErrEmailTaken    = errors.New("email already in use")
	// ErrInvalidCredentials covers both unknown identifiers and password
	// mismatches; callers must not reveal which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService orchestrates signup and login. Both operations return a signed
// bearer token on success.
type AuthService interface {
	SignUp(ctx context.Context, req *SignUpRequest) (string, error)
	Login(ctx context.Context, identifier, password string) (string, error)
}

type SignUpRequest struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	Phone     *string
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   TokenService
}

func NewAuthService(userRepo repositories.UserRepository, tokens TokenService) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

func (s *authService) SignUp(ctx context.Context, req *SignUpRequest) (string, error) {
	existing, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return "", fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return "", ErrUsernameTaken
	}

	existing, err = s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return "", fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return "", ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Username:     req.Username,
		PasswordHash: string(hashed),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("User %s signed up", user.Username)
	return s.tokens.Issue(user.Username)
}

func (s *authService) Login(ctx context.Context, identifier, password string) (string, error) {
	// Identifier can be an email or a username; email wins when both match.
	user, err := s.userRepo.GetByEmail(ctx, identifier)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		user, err = s.userRepo.GetByUsername(ctx, identifier)
		if err != nil {
			return "", fmt.Errorf("failed to look up user: %w", err)
		}
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Username)
}

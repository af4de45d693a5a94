package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"homeport/internal/common"
	"homeport/internal/models"
	"homeport/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrUserNotFound    = errors.New("user not found")
)

type PreferenceCriteria struct {
	MinPrice int
	MaxPrice int
	Beds     int
	Baths    int
	MinArea  float64
	Type     string
	City     string
	State    string
	Zipcodes []string
}

// PreferenceService stores buyer search criteria for the authenticated user.
type PreferenceService interface {
	AddPreference(ctx context.Context, criteria *PreferenceCriteria) error
}

type preferenceService struct {
	userRepo       repositories.UserRepository
	preferenceRepo repositories.PreferenceRepository
}

func NewPreferenceService(userRepo repositories.UserRepository, preferenceRepo repositories.PreferenceRepository) PreferenceService {
	return &preferenceService{userRepo: userRepo, preferenceRepo: preferenceRepo}
}

func (s *preferenceService) AddPreference(ctx context.Context, criteria *PreferenceCriteria) error {
	identity, ok := common.IdentityFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	user, err := s.userRepo.GetByUsername(ctx, identity.Username)
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	preference := &models.Preference{
		ID:       uuid.New(),
		UserID:   user.ID,
		MinPrice: criteria.MinPrice,
		MaxPrice: criteria.MaxPrice,
		Beds:     criteria.Beds,
		Baths:    criteria.Baths,
		MinArea:  criteria.MinArea,
		Type:     criteria.Type,
		City:     criteria.City,
		State:    criteria.State,
	}

	if err := s.preferenceRepo.Create(ctx, preference, criteria.Zipcodes); err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}

	log.Printf("Preference %s added for user %s", preference.ID, user.Username)
	return nil
}

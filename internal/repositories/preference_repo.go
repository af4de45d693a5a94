package repositories

import (
	"context"
	"fmt"

	"homeport/internal/models"

	"github.com/google/uuid"
)

type PreferenceRepository interface {
	// Create persists a preference and one zipcode row per entry, all in a
	// single transaction.
	Create(ctx context.Context, preference *models.Preference, zipcodes []string) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Preference, error)
	ZipcodesByPreference(ctx context.Context, preferenceID uuid.UUID) ([]*models.Zipcode, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type preferenceRepo struct {
	db Database
}

func NewPreferenceRepo(db Database) PreferenceRepository {
	return &preferenceRepo{db: db}
}

func (r *preferenceRepo) Create(ctx context.Context, preference *models.Preference, zipcodes []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO preferences (id, user_id, min_price, max_price, beds, baths, min_area, type, city, state, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	`
	_, err = tx.Exec(ctx, query, preference.ID, preference.UserID, preference.MinPrice, preference.MaxPrice,
		preference.Beds, preference.Baths, preference.MinArea, preference.Type, preference.City, preference.State)
	if err != nil {
		return fmt.Errorf("failed to create preference: %w", err)
	}

	for _, zipcode := range zipcodes {
		_, err = tx.Exec(ctx, `INSERT INTO zipcodes (id, preference_id, zipcode) VALUES ($1, $2, $3)`,
			uuid.New(), preference.ID, zipcode)
		if err != nil {
			return fmt.Errorf("failed to create zipcode: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *preferenceRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Preference, error) {
	query := `
		SELECT id, user_id, min_price, max_price, beds, baths, min_area, type, city, state, created_at
		FROM preferences
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var preferences []*models.Preference
	for rows.Next() {
		preference := &models.Preference{}
		if err := rows.Scan(&preference.ID, &preference.UserID, &preference.MinPrice, &preference.MaxPrice,
			&preference.Beds, &preference.Baths, &preference.MinArea, &preference.Type, &preference.City,
			&preference.State, &preference.CreatedAt); err != nil {
			return nil, err
		}
		preferences = append(preferences, preference)
	}
	return preferences, rows.Err()
}

func (r *preferenceRepo) ZipcodesByPreference(ctx context.Context, preferenceID uuid.UUID) ([]*models.Zipcode, error) {
	query := `SELECT id, preference_id, zipcode FROM zipcodes WHERE preference_id = $1`
	rows, err := r.db.Query(ctx, query, preferenceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var zipcodes []*models.Zipcode
	for rows.Next() {
		zipcode := &models.Zipcode{}
		if err := rows.Scan(&zipcode.ID, &zipcode.PreferenceID, &zipcode.Zipcode); err != nil {
			return nil, err
		}
		zipcodes = append(zipcodes, zipcode)
	}
	return zipcodes, rows.Err()
}

// Delete removes a preference and its owned zipcodes.
func (r *preferenceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM zipcodes WHERE preference_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete zipcodes: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM preferences WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete preference: %w", err)
	}

	return tx.Commit(ctx)
}

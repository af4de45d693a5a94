package repositories

import (
	"context"
	"errors"
	"fmt"

	"homeport/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BrokerRepository interface {
	Create(ctx context.Context, broker *models.Broker) error
	GetByName(ctx context.Context, name string) (*models.Broker, error)
	List(ctx context.Context) ([]*models.Broker, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type brokerRepo struct {
	db Database
}

func NewBrokerRepo(db Database) BrokerRepository {
	return &brokerRepo{db: db}
}

func (r *brokerRepo) Create(ctx context.Context, broker *models.Broker) error {
	query := `INSERT INTO brokers (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`
	_, err := r.db.Exec(ctx, query, broker.ID, broker.Name)
	if err != nil {
		return fmt.Errorf("failed to create broker: %w", err)
	}
	return nil
}

func (r *brokerRepo) GetByName(ctx context.Context, name string) (*models.Broker, error) {
	broker := &models.Broker{}
	err := r.db.QueryRow(ctx, `SELECT id, name FROM brokers WHERE name = $1`, name).Scan(&broker.ID, &broker.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return broker, nil
}

func (r *brokerRepo) List(ctx context.Context) ([]*models.Broker, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM brokers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brokers []*models.Broker
	for rows.Next() {
		broker := &models.Broker{}
		if err := rows.Scan(&broker.ID, &broker.Name); err != nil {
			return nil, err
		}
		brokers = append(brokers, broker)
	}
	return brokers, rows.Err()
}

// Delete removes a broker. Its houses survive with a nulled broker reference.
func (r *brokerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE houses SET broker_id = NULL WHERE broker_id = $1`, id); err != nil {
		return fmt.Errorf("failed to detach houses: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM brokers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete broker: %w", err)
	}

	return tx.Commit(ctx)
}

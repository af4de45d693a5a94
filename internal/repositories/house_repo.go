package repositories

import (
	"context"
	"errors"

	"homeport/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type HouseRepository interface {
	ListByBrokerName(ctx context.Context, brokerName string) ([]*models.House, error)
	AddressByHouse(ctx context.Context, houseID uuid.UUID) (*models.Address, error)
	ImagesByHouse(ctx context.Context, houseID uuid.UUID) ([]*models.HouseImage, error)
}

type houseRepo struct {
	db Database
}

func NewHouseRepo(db Database) HouseRepository {
	return &houseRepo{db: db}
}

func (r *houseRepo) ListByBrokerName(ctx context.Context, brokerName string) ([]*models.House, error) {
	query := `
		SELECT h.id, h.zpid, h.price, h.beds, h.baths, h.status, h.area, h.type, h.url, h.broker_id
		FROM houses h
		JOIN brokers b ON b.id = h.broker_id
		WHERE b.name = $1
		ORDER BY h.price
	`
	rows, err := r.db.Query(ctx, query, brokerName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var houses []*models.House
	for rows.Next() {
		house := &models.House{}
		if err := rows.Scan(&house.ID, &house.Zpid, &house.Price, &house.Beds, &house.Baths,
			&house.Status, &house.Area, &house.Type, &house.URL, &house.BrokerID); err != nil {
			return nil, err
		}
		houses = append(houses, house)
	}
	return houses, rows.Err()
}

// AddressByHouse returns (nil, nil) for houses without an address row.
func (r *houseRepo) AddressByHouse(ctx context.Context, houseID uuid.UUID) (*models.Address, error) {
	address := &models.Address{}
	query := `SELECT id, house_id, street, city, state, zipcode FROM addresses WHERE house_id = $1`
	err := r.db.QueryRow(ctx, query, houseID).Scan(&address.ID, &address.HouseID, &address.Street,
		&address.City, &address.State, &address.Zipcode)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return address, nil
}

func (r *houseRepo) ImagesByHouse(ctx context.Context, houseID uuid.UUID) ([]*models.HouseImage, error) {
	query := `SELECT id, house_id, object_key, url FROM house_images WHERE house_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, houseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []*models.HouseImage
	for rows.Next() {
		image := &models.HouseImage{}
		if err := rows.Scan(&image.ID, &image.HouseID, &image.ObjectKey, &image.URL); err != nil {
			return nil, err
		}
		images = append(images, image)
	}
	return images, rows.Err()
}

package services

import (
	"context"
	"log"
	"strconv"
	"time"

	"homeport/internal/caching"
	"homeport/internal/models"
	"homeport/internal/repositories"
)

const (
	listingCacheTTL = 5 * time.Minute
	imageURLExpiry  = 15 * time.Minute
)

// ListingService is the read-only lookup of house listings by broker name.
// An unmatched name yields an empty result, not an error.
type ListingService interface {
	ListByBroker(ctx context.Context, brokerName string) ([]models.HouseListing, error)
	// RefreshBroker drops the cached listings for a broker and re-warms them.
	RefreshBroker(ctx context.Context, brokerName string) error
}

type listingService struct {
	houseRepo repositories.HouseRepository
	cacheSvc  caching.CacheService
	images    ImageStore
}

func NewListingService(houseRepo repositories.HouseRepository, cacheSvc caching.CacheService, images ImageStore) ListingService {
	return &listingService{houseRepo: houseRepo, cacheSvc: cacheSvc, images: images}
}

func (s *listingService) ListByBroker(ctx context.Context, brokerName string) ([]models.HouseListing, error) {
	if cached, err := s.cacheSvc.GetListings(ctx, brokerName); err != nil {
		log.Printf("Listing cache read failed for broker %q: %v", brokerName, err)
	} else if cached != nil {
		return cached, nil
	}

	houses, err := s.houseRepo.ListByBrokerName(ctx, brokerName)
	if err != nil {
		return nil, err
	}

	listings := make([]models.HouseListing, 0, len(houses))
	for _, house := range houses {
		listing := models.HouseListing{
			Price:      strconv.Itoa(house.Price),
			Status:     house.Status,
			Type:       house.Type,
			Beds:       house.Beds,
			Baths:      house.Baths,
			BrokerName: brokerName,
		}
		if house.Area != nil {
			listing.Area = *house.Area
		}

		address, err := s.houseRepo.AddressByHouse(ctx, house.ID)
		if err != nil {
			return nil, err
		}
		if address != nil {
			listing.Street = address.Street
			listing.City = address.City
			listing.State = address.State
			listing.Zip = address.Zipcode
		}

		images, err := s.houseRepo.ImagesByHouse(ctx, house.ID)
		if err != nil {
			return nil, err
		}
		if len(images) > 0 {
			listing.ImageURL = s.resolveImageURL(ctx, images[0])
		}

		listings = append(listings, listing)
	}

	if err := s.cacheSvc.SetListings(ctx, brokerName, listings, listingCacheTTL); err != nil {
		log.Printf("Listing cache write failed for broker %q: %v", brokerName, err)
	}

	return listings, nil
}

func (s *listingService) RefreshBroker(ctx context.Context, brokerName string) error {
	if err := s.cacheSvc.InvalidateBroker(ctx, brokerName); err != nil {
		return err
	}
	_, err := s.ListByBroker(ctx, brokerName)
	return err
}

func (s *listingService) resolveImageURL(ctx context.Context, image *models.HouseImage) string {
	if image.ObjectKey == "" || s.images == nil {
		return image.URL
	}
	url, err := s.images.PresignedURL(ctx, image.ObjectKey, imageURLExpiry)
	if err != nil {
		log.Printf("Failed to presign image %s: %v", image.ObjectKey, err)
		return image.URL
	}
	return url
}

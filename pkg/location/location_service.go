package location

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/haidar-allaw/red-cross-sub000/entities"
	"gorm.io/gorm"
)

type (
	LocationService interface {
		CreateLocation(ctx context.Context, req domain.CreateLocationRequest) (*domain.Location, error)
		GetLocations(ctx context.Context) ([]*domain.Location, error)
		GetLocationByID(ctx context.Context, id string) (*domain.Location, error)
		DeleteLocation(ctx context.Context, id string) error
	}

	locationService struct {
		locationRepository LocationRepository
	}
)

func NewLocationService(locationRepository LocationRepository) LocationService {
	return &locationService{locationRepository: locationRepository}
}

func (s *locationService) CreateLocation(ctx context.Context, req domain.CreateLocationRequest) (*domain.Location, error) {
	location := &entities.Location{
		ID:        uuid.New(),
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	}
	if err := s.locationRepository.CreateLocation(ctx, location); err != nil {
		return nil, err
	}
	return toDomain(location), nil
}

func (s *locationService) GetLocations(ctx context.Context) ([]*domain.Location, error) {
	locations, err := s.locationRepository.GetLocations(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Location, 0, len(locations))
	for _, location := range locations {
		result = append(result, toDomain(location))
	}
	return result, nil
}

func (s *locationService) GetLocationByID(ctx context.Context, id string) (*domain.Location, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrLocationNotFound
	}
	location, err := s.locationRepository.GetLocationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, err
	}
	return toDomain(location), nil
}

func (s *locationService) DeleteLocation(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrLocationNotFound
	}
	if err := s.locationRepository.DeleteLocation(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrLocationNotFound
		}
		return err
	}
	return nil
}

func toDomain(location *entities.Location) *domain.Location {
	return &domain.Location{
		ID:        location.ID.String(),
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		CreatedAt: location.CreatedAt,
	}
}

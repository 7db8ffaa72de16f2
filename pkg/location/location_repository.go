package location

import (
	"context"
	"github.com/haidar-allaw/red-cross-sub000/entities"
	"gorm.io/gorm"
)

type (
	LocationRepository interface {
		CreateLocation(ctx context.Context, location *entities.Location) error
		GetLocations(ctx context.Context) ([]*entities.Location, error)
		GetLocationByID(ctx context.Context, id string) (*entities.Location, error)
		DeleteLocation(ctx context.Context, id string) error
	}

	locationRepository struct {
		db *gorm.DB
	}
)

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) CreateLocation(ctx context.Context, location *entities.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationRepository) GetLocations(ctx context.Context) ([]*entities.Location, error) {
	var locations []*entities.Location
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) GetLocationByID(ctx context.Context, id string) (*entities.Location, error) {
	var location entities.Location
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) DeleteLocation(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Location{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dinedir/internal/model"
)

// RestaurantRepository defines listing persistence operations.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *model.Restaurant) error
	FindByID(ctx context.Context, id uint) (*model.Restaurant, error)
	// FindByIDForUpdate locks the row until the surrounding transaction
	// commits. Review inserts use it to serialize rating recomputation
	// per listing.
	FindByIDForUpdate(ctx context.Context, id uint) (*model.Restaurant, error)
	FindByNameAndAddress(ctx context.Context, name, address string) (*model.Restaurant, error)
	List(ctx context.Context) ([]model.Restaurant, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Restaurant, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	UpdateRating(ctx context.Context, id uint, rating float64) error
	Delete(ctx context.Context, id uint) error
}

type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new restaurant repository.
func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *model.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func (r *restaurantRepository) FindByID(ctx context.Context, id uint) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := r.db.WithContext(ctx).First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) FindByNameAndAddress(ctx context.Context, name, address string) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := r.db.WithContext(ctx).
		Where("name = ? AND address = ?", name, address).
		First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) List(ctx context.Context) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	if err := r.db.WithContext(ctx).Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Restaurant{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *restaurantRepository) UpdateRating(ctx context.Context, id uint, rating float64) error {
	return r.db.WithContext(ctx).Model(&model.Restaurant{}).
		Where("id = ?", id).
		Update("rating", rating).Error
}

func (r *restaurantRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Restaurant{}, id).Error
}

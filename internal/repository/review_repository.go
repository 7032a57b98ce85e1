package repository

import (
	"context"

	"gorm.io/gorm"

	"dinedir/internal/model"
)

// ReviewWithAuthor is a review row joined with its author's username.
type ReviewWithAuthor struct {
	model.Review
	Username string `json:"username"`
}

// ReviewRepository defines review persistence operations.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	ListByRestaurant(ctx context.Context, restaurantID uint) ([]ReviewWithAuthor, error)
	RatingsByRestaurant(ctx context.Context, restaurantID uint) ([]int, error)
	DeleteByRestaurant(ctx context.Context, restaurantID uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) ListByRestaurant(ctx context.Context, restaurantID uint) ([]ReviewWithAuthor, error) {
	var reviews []ReviewWithAuthor
	if err := r.db.WithContext(ctx).Model(&model.Review{}).
		Select("reviews.*, users.username").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.restaurant_id = ?", restaurantID).
		Scan(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) RatingsByRestaurant(ctx context.Context, restaurantID uint) ([]int, error) {
	var ratings []int
	if err := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("restaurant_id = ?", restaurantID).
		Pluck("rating", &ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *reviewRepository) DeleteByRestaurant(ctx context.Context, restaurantID uint) error {
	return r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).Delete(&model.Review{}).Error
}

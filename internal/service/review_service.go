package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dinedir/internal/authz"
	"dinedir/internal/cache"
	"dinedir/internal/errors"
	"dinedir/internal/model"
	"dinedir/internal/repository"
)

// ReviewService orchestrates review creation and keeps each listing's
// materialized aggregate rating consistent with its review set.
type ReviewService interface {
	CreateReview(ctx context.Context, restaurantID, callerID uint, role model.Role, rating int, comment string) (*model.Review, error)
	ListByRestaurant(ctx context.Context, restaurantID uint) ([]repository.ReviewWithAuthor, error)
	AverageRating(ctx context.Context, restaurantID uint) (float64, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	tx         repository.TxManager
	cache      *cache.Client
}

// NewReviewService creates a new review service.
func NewReviewService(reviewRepo repository.ReviewRepository, tx repository.TxManager, cache *cache.Client) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		tx:         tx,
		cache:      cache,
	}
}

// CreateReview inserts a review and recomputes the listing's aggregate
// rating in one transaction. The restaurant row is locked for the
// duration, so concurrent reviews on the same listing serialize and no
// rating update is lost; reviews on other listings proceed in parallel.
func (s *reviewService) CreateReview(ctx context.Context, restaurantID, callerID uint, role model.Role, rating int, comment string) (*model.Review, error) {
	if err := authz.CanCreateReview(role); err != nil {
		return nil, err
	}

	review := &model.Review{
		RestaurantID: restaurantID,
		UserID:       callerID,
		Rating:       rating,
		Comment:      comment,
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Restaurants.FindByIDForUpdate(ctx, restaurantID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrRestaurantNotFound
			}
			return err
		}

		if err := repos.Reviews.Create(ctx, review); err != nil {
			return fmt.Errorf("create review: %w", err)
		}

		ratings, err := repos.Reviews.RatingsByRestaurant(ctx, restaurantID)
		if err != nil {
			return fmt.Errorf("load ratings: %w", err)
		}

		return repos.Restaurants.UpdateRating(ctx, restaurantID, RecomputeRating(ratings))
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, fmt.Sprintf("restaurant:%d", restaurantID))
	return review, nil
}

// ListByRestaurant returns the listing's reviews with author usernames.
func (s *reviewService) ListByRestaurant(ctx context.Context, restaurantID uint) ([]repository.ReviewWithAuthor, error) {
	return s.reviewRepo.ListByRestaurant(ctx, restaurantID)
}

// AverageRating computes the mean rating fresh from the review set,
// independent of the materialized column on the listing.
func (s *reviewService) AverageRating(ctx context.Context, restaurantID uint) (float64, error) {
	ratings, err := s.reviewRepo.RatingsByRestaurant(ctx, restaurantID)
	if err != nil {
		return 0, err
	}
	return RecomputeRating(ratings), nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"dinedir/internal/authz"
	"dinedir/internal/cache"
	"dinedir/internal/errors"
	"dinedir/internal/model"
	"dinedir/internal/repository"
)

const (
	restaurantCacheTTL = 5 * time.Minute
	clockLayout        = "15:04"
)

// CreateListingInput carries the fields for a new listing. Price tier
// and rating are always derived, never taken from input.
type CreateListingInput struct {
	Name        string
	Address     string
	Zip         int
	Phone       int64
	OpenTime    string
	CloseTime   string
	Description string
	Menu        string
	MenuPhoto   string
}

// UpdateListingInput is a partial update: nil fields are left
// untouched. Price may be set explicitly, but a menu change in the same
// request re-derives the tier and wins over it.
type UpdateListingInput struct {
	Name        *string
	Address     *string
	Zip         *int
	Phone       *int64
	OpenTime    *string
	CloseTime   *string
	Description *string
	Price       *string
	Status      *string
	Menu        *string
	MenuPhoto   *string
}

// RestaurantService orchestrates the listing lifecycle: ownership
// checks, duplicate detection, schedule validation, derived price tier,
// and the admin duplicate reconciliation job.
type RestaurantService interface {
	List(ctx context.Context) ([]model.Restaurant, error)
	Get(ctx context.Context, id uint) (*model.Restaurant, error)
	GetMenu(ctx context.Context, id uint) ([]model.MenuCategory, error)
	ListOwned(ctx context.Context, callerID uint, role model.Role) ([]model.Restaurant, error)
	CreateListing(ctx context.Context, callerID uint, role model.Role, in CreateListingInput) (*model.Restaurant, error)
	UpdateListing(ctx context.Context, id, callerID uint, role model.Role, in UpdateListingInput) (*model.Restaurant, error)
	DeleteListing(ctx context.Context, id, callerID uint, role model.Role) error
	AdminDeleteListing(ctx context.Context, id uint, role model.Role) error
	RemoveDuplicates(ctx context.Context, role model.Role) (int, error)
}

type restaurantService struct {
	repo  repository.RestaurantRepository
	tx    repository.TxManager
	cache *cache.Client
}

// NewRestaurantService creates a new restaurant service.
func NewRestaurantService(repo repository.RestaurantRepository, tx repository.TxManager, cache *cache.Client) RestaurantService {
	return &restaurantService{
		repo:  repo,
		tx:    tx,
		cache: cache,
	}
}

func (s *restaurantService) cacheKey(id uint) string {
	return fmt.Sprintf("restaurant:%d", id)
}

func (s *restaurantService) List(ctx context.Context) ([]model.Restaurant, error) {
	return s.repo.List(ctx)
}

// Get retrieves a listing by ID with caching.
func (s *restaurantService) Get(ctx context.Context, id uint) (*model.Restaurant, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Restaurant
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	restaurant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRestaurantNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(restaurant); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, restaurantCacheTTL)
	}
	return restaurant, nil
}

// GetMenu returns the listing's parsed menu document.
func (s *restaurantService) GetMenu(ctx context.Context, id uint) ([]model.MenuCategory, error) {
	restaurant, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var categories []model.MenuCategory
	if err := json.Unmarshal([]byte(restaurant.Menu), &categories); err != nil {
		return nil, errors.ErrMenuParse
	}
	return categories, nil
}

// ListOwned returns the caller's own listings.
func (s *restaurantService) ListOwned(ctx context.Context, callerID uint, role model.Role) ([]model.Restaurant, error) {
	if err := authz.CanViewOwnedListings(role); err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, callerID)
}

// CreateListing creates a listing owned by the caller. The price tier
// is derived from the menu document; duplicates on (name, address) are
// rejected; the schedule must be well-formed with open strictly before
// close.
func (s *restaurantService) CreateListing(ctx context.Context, callerID uint, role model.Role, in CreateListingInput) (*model.Restaurant, error) {
	if err := authz.CanCreateListing(role); err != nil {
		return nil, err
	}

	price := DerivePriceTier(in.Menu)

	existing, err := s.repo.FindByNameAndAddress(ctx, in.Name, in.Address)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check duplicate listing: %w", err)
	}
	if existing != nil {
		return nil, errors.ErrDuplicateListing
	}

	if err := validateSchedule(in.OpenTime, in.CloseTime); err != nil {
		return nil, err
	}

	restaurant := &model.Restaurant{
		Name:        in.Name,
		OwnerID:     callerID,
		Address:     in.Address,
		Zip:         in.Zip,
		Phone:       in.Phone,
		OpenTime:    in.OpenTime,
		CloseTime:   in.CloseTime,
		Description: in.Description,
		Price:       price,
		Rating:      0,
		Status:      model.RestaurantStatusOpen,
		Menu:        in.Menu,
		MenuPhoto:   in.MenuPhoto,
	}

	if err := s.repo.Create(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}
	return restaurant, nil
}

// UpdateListing applies a partial update to a listing the caller owns.
// A menu change re-derives the price tier, overriding any explicit
// price in the same request.
func (s *restaurantService) UpdateListing(ctx context.Context, id, callerID uint, role model.Role, in UpdateListingInput) (*model.Restaurant, error) {
	restaurant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRestaurantNotFound
		}
		return nil, err
	}

	if err := authz.CanMutateListing(role, callerID, restaurant.OwnerID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Address != nil {
		fields["address"] = *in.Address
	}
	if in.Zip != nil {
		fields["zip"] = *in.Zip
	}
	if in.Phone != nil {
		fields["phone"] = *in.Phone
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if in.MenuPhoto != nil {
		fields["menu_photo"] = *in.MenuPhoto
	}
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.Menu != nil {
		fields["menu"] = *in.Menu
		// a new menu always wins over an explicit price
		fields["price"] = DerivePriceTier(*in.Menu)
	}
	if in.OpenTime != nil {
		if _, err := time.Parse(clockLayout, *in.OpenTime); err != nil {
			return nil, errors.ErrInvalidTimeFormat
		}
		fields["open_time"] = *in.OpenTime
	}
	if in.CloseTime != nil {
		if _, err := time.Parse(clockLayout, *in.CloseTime); err != nil {
			return nil, errors.ErrInvalidTimeFormat
		}
		fields["close_time"] = *in.CloseTime
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("update listing: %w", err)
		}
		_ = s.cache.Delete(ctx, s.cacheKey(id))
	}

	return s.repo.FindByID(ctx, id)
}

// DeleteListing removes a listing the caller owns, cascading to its reviews.
func (s *restaurantService) DeleteListing(ctx context.Context, id, callerID uint, role model.Role) error {
	restaurant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrRestaurantNotFound
		}
		return err
	}

	if err := authz.CanMutateListing(role, callerID, restaurant.OwnerID); err != nil {
		return err
	}

	if err := s.deleteWithReviews(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// AdminDeleteListing removes any listing, admin only. Reviews cascade
// here too so no orphans are left behind.
func (s *restaurantService) AdminDeleteListing(ctx context.Context, id uint, role model.Role) error {
	if err := authz.CanAdminDeleteListing(role); err != nil {
		return err
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrRestaurantNotFound
		}
		return err
	}

	if err := s.deleteWithReviews(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// RemoveDuplicates collapses listings sharing an exact name down to the
// earliest-created one (smallest ID). Admin only, idempotent; returns
// the number of listings deleted.
func (s *restaurantService) RemoveDuplicates(ctx context.Context, role model.Role) (int, error) {
	if err := authz.CanReconcileDuplicates(role); err != nil {
		return 0, err
	}

	listings, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list restaurants: %w", err)
	}

	groups := make(map[string][]model.Restaurant)
	for _, listing := range listings {
		groups[listing.Name] = append(groups[listing.Name], listing)
	}

	var victims []uint
	for _, group := range groups {
		if len(group) <= 1 {
			continue
		}
		sort.Slice(group, func(i, j int) bool { return group[i].ID < group[j].ID })
		for _, listing := range group[1:] {
			victims = append(victims, listing.ID)
		}
	}
	if len(victims) == 0 {
		return 0, nil
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		for _, id := range victims {
			if err := repos.Reviews.DeleteByRestaurant(ctx, id); err != nil {
				return err
			}
			if err := repos.Restaurants.Delete(ctx, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("remove duplicates: %w", err)
	}

	for _, id := range victims {
		_ = s.cache.Delete(ctx, s.cacheKey(id))
	}
	return len(victims), nil
}

// deleteWithReviews removes a listing and its reviews atomically.
func (s *restaurantService) deleteWithReviews(ctx context.Context, id uint) error {
	return s.tx.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if err := repos.Reviews.DeleteByRestaurant(ctx, id); err != nil {
			return err
		}
		return repos.Restaurants.Delete(ctx, id)
	})
}

// validateSchedule checks HH:MM formatting and that opening strictly
// precedes closing.
func validateSchedule(open, close string) error {
	openAt, err := time.Parse(clockLayout, open)
	if err != nil {
		return errors.ErrInvalidTimeFormat
	}
	closeAt, err := time.Parse(clockLayout, close)
	if err != nil {
		return errors.ErrInvalidTimeFormat
	}
	if !openAt.Before(closeAt) {
		return errors.ErrInvalidSchedule
	}
	return nil
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"dinedir/internal/service"
)

// RestaurantHandler handles the public directory endpoints and review creation.
type RestaurantHandler struct {
	restaurantService service.RestaurantService
	reviewService     service.ReviewService
}

// NewRestaurantHandler creates a new restaurant handler.
func NewRestaurantHandler(restaurantService service.RestaurantService, reviewService service.ReviewService) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
		reviewService:     reviewService,
	}
}

// CreateReviewRequest represents a review creation request.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func restaurantID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid restaurant id")
	}
	return uint(id), nil
}

// List godoc
// @Summary List all restaurants
// @Tags restaurants
// @Produce json
// @Success 200 {array} model.Restaurant
// @Router /restaurants [get]
func (h *RestaurantHandler) List(c echo.Context) error {
	restaurants, err := h.restaurantService.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"restaurants": restaurants})
}

// Get godoc
// @Summary Get a restaurant by id
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} model.Restaurant
// @Failure 404 {object} errors.ErrorResponse
// @Router /restaurants/{id} [get]
func (h *RestaurantHandler) Get(c echo.Context) error {
	id, err := restaurantID(c)
	if err != nil {
		return err
	}

	restaurant, err := h.restaurantService.Get(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, restaurant)
}

// GetMenu godoc
// @Summary Get a restaurant's parsed menu
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {array} model.MenuCategory
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /restaurants/{id}/menu [get]
func (h *RestaurantHandler) GetMenu(c echo.Context) error {
	id, err := restaurantID(c)
	if err != nil {
		return err
	}

	menu, err := h.restaurantService.GetMenu(c.Request().Context(), id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, menu)
}

// GetReviews godoc
// @Summary List a restaurant's reviews with author usernames
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {array} repository.ReviewWithAuthor
// @Router /restaurants/{id}/reviews [get]
func (h *RestaurantHandler) GetReviews(c echo.Context) error {
	id, err := restaurantID(c)
	if err != nil {
		return err
	}

	reviews, err := h.reviewService.ListByRestaurant(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, reviews)
}

// GetRating godoc
// @Summary Get a restaurant's average rating, computed fresh
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {number} float64
// @Router /restaurants/{id}/rating [get]
func (h *RestaurantHandler) GetRating(c echo.Context) error {
	id, err := restaurantID(c)
	if err != nil {
		return err
	}

	rating, err := h.reviewService.AverageRating(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rating)
}

// CreateReview godoc
// @Summary Create a review as a plain user
// @Tags restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Restaurant ID"
// @Param request body CreateReviewRequest true "Review"
// @Success 201 {object} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /restaurants/{id}/create_review [post]
func (h *RestaurantHandler) CreateReview(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	id, err := restaurantID(c)
	if err != nil {
		return err
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.reviewService.CreateReview(c.Request().Context(), id, claims.UserID, claims.Role, req.Rating, req.Comment)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, review)
}

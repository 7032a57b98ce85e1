package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"dinedir/internal/service"
)

// OwnerHandler handles listing management for owners plus the admin
// delete and duplicate reconciliation endpoints.
type OwnerHandler struct {
	restaurantService service.RestaurantService
}

// NewOwnerHandler creates a new owner handler.
func NewOwnerHandler(restaurantService service.RestaurantService) *OwnerHandler {
	return &OwnerHandler{restaurantService: restaurantService}
}

// AddListingRequest represents a listing creation request. Price is not
// accepted here: it is always derived from the menu.
type AddListingRequest struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Zip         int    `json:"zip"`
	Phone       int64  `json:"phone"`
	OpenTime    string `json:"opentime" validate:"required"`
	CloseTime   string `json:"closetime" validate:"required"`
	Description string `json:"description"`
	Menu        string `json:"menu"`
	MenuPhoto   string `json:"menu_photo"`
}

// UpdateListingRequest is a partial update; absent fields stay as they
// are. An explicit price is honored only when the menu is not changed
// in the same request.
type UpdateListingRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Zip         *int    `json:"zip"`
	Phone       *int64  `json:"phone"`
	OpenTime    *string `json:"opentime"`
	CloseTime   *string `json:"closetime"`
	Description *string `json:"description"`
	Price       *string `json:"price" validate:"omitempty,oneof=$ $$ $$$"`
	Status      *string `json:"status" validate:"omitempty,oneof=open closed"`
	Menu        *string `json:"menu"`
	MenuPhoto   *string `json:"menu_photo"`
}

// RemoveDuplicatesResponse reports the reconciliation outcome.
type RemoveDuplicatesResponse struct {
	Message string `json:"message"`
	Deleted int    `json:"deleted"`
}

func listingID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid listing id")
	}
	return uint(id), nil
}

// ViewListings godoc
// @Summary List the caller's own restaurants
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Restaurant
// @Failure 403 {object} errors.ErrorResponse
// @Router /owner/view-listings [get]
func (h *OwnerHandler) ViewListings(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	listings, err := h.restaurantService.ListOwned(c.Request().Context(), claims.UserID, claims.Role)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, listings)
}

// AddListing godoc
// @Summary Create a restaurant listing
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddListingRequest true "Listing"
// @Success 201 {object} model.Restaurant
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /owner/add-listing [post]
func (h *OwnerHandler) AddListing(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	var req AddListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	restaurant, err := h.restaurantService.CreateListing(c.Request().Context(), claims.UserID, claims.Role, service.CreateListingInput{
		Name:        req.Name,
		Address:     req.Address,
		Zip:         req.Zip,
		Phone:       req.Phone,
		OpenTime:    req.OpenTime,
		CloseTime:   req.CloseTime,
		Description: req.Description,
		Menu:        req.Menu,
		MenuPhoto:   req.MenuPhoto,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, restaurant)
}

// UpdateListing godoc
// @Summary Partially update an owned listing
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Listing ID"
// @Param request body UpdateListingRequest true "Fields to update"
// @Success 200 {object} model.Restaurant
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /owner/update-listing/{id} [put]
func (h *OwnerHandler) UpdateListing(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	id, err := listingID(c)
	if err != nil {
		return err
	}

	var req UpdateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	restaurant, err := h.restaurantService.UpdateListing(c.Request().Context(), id, claims.UserID, claims.Role, service.UpdateListingInput{
		Name:        req.Name,
		Address:     req.Address,
		Zip:         req.Zip,
		Phone:       req.Phone,
		OpenTime:    req.OpenTime,
		CloseTime:   req.CloseTime,
		Description: req.Description,
		Price:       req.Price,
		Status:      req.Status,
		Menu:        req.Menu,
		MenuPhoto:   req.MenuPhoto,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, restaurant)
}

// DeleteListing godoc
// @Summary Delete an owned listing and its reviews
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Param id path int true "Listing ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /owner/delete-listing/{id} [delete]
func (h *OwnerHandler) DeleteListing(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	id, err := listingID(c)
	if err != nil {
		return err
	}

	if err := h.restaurantService.DeleteListing(c.Request().Context(), id, claims.UserID, claims.Role); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Restaurant deleted successfully"})
}

// AdminDeleteListing godoc
// @Summary Delete any listing as admin
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Param id path int true "Listing ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /owner/admin-delete-listing/{id} [delete]
func (h *OwnerHandler) AdminDeleteListing(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	id, err := listingID(c)
	if err != nil {
		return err
	}

	if err := h.restaurantService.AdminDeleteListing(c.Request().Context(), id, claims.Role); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Listing deleted successfully"})
}

// RemoveDuplicates godoc
// @Summary Collapse same-named listings to the earliest-created one
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} RemoveDuplicatesResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /owner/remove-duplicates [delete]
func (h *OwnerHandler) RemoveDuplicates(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	deleted, err := h.restaurantService.RemoveDuplicates(c.Request().Context(), claims.Role)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, RemoveDuplicatesResponse{
		Message: "Duplicates removed successfully",
		Deleted: deleted,
	})
}

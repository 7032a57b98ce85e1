package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"dinedir/internal/auth"
	"dinedir/internal/config"
	"dinedir/internal/handler"
)

// Register wires routes and middleware onto the single process-wide
// echo instance.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	restaurantHandler *handler.RestaurantHandler,
	ownerHandler *handler.OwnerHandler,
	placesHandler *handler.PlacesHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/users/create_users", userHandler.CreateUser)
	api.POST("/users/create_owner", userHandler.CreateOwner)
	api.GET("/users", userHandler.ListUsers)
	api.GET("/users/:uid", userHandler.GetUser)
	api.GET("/restaurants", restaurantHandler.List)
	api.GET("/restaurants/google-places/:zipcode", placesHandler.Search)
	api.GET("/restaurants/:id", restaurantHandler.Get)
	api.GET("/restaurants/:id/menu", restaurantHandler.GetMenu)
	api.GET("/restaurants/:id/reviews", restaurantHandler.GetReviews)
	api.GET("/restaurants/:id/rating", restaurantHandler.GetRating)

	// Secured routes (require a valid bearer token; role checks happen
	// in the authorization gate)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(cfg.JWTSecret),
		TokenLookup:   "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: auth.NewClaims,
	}))

	secured.POST("/users/create_admin", userHandler.CreateAdmin)
	secured.POST("/restaurants/:id/create_review", restaurantHandler.CreateReview)

	secured.GET("/owner/view-listings", ownerHandler.ViewListings)
	secured.POST("/owner/add-listing", ownerHandler.AddListing)
	secured.PUT("/owner/update-listing/:id", ownerHandler.UpdateListing)
	secured.DELETE("/owner/delete-listing/:id", ownerHandler.DeleteListing)
	secured.DELETE("/owner/admin-delete-listing/:id", ownerHandler.AdminDeleteListing)
	secured.DELETE("/owner/remove-duplicates", ownerHandler.RemoveDuplicates)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

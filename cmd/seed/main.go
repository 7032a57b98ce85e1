package main

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dinedir/internal/config"
	"dinedir/internal/db"
	"dinedir/internal/model"
	"dinedir/internal/repository"
	"dinedir/internal/service"
)

const seedPassword = "password123"

type seedUser struct {
	Username string
	Email    string
	Role     model.Role
	Status   string
}

var seedUsers = []seedUser{
	{Username: "admin", Email: "admin@dinedir.local", Role: model.RoleAdmin, Status: "active"},
	{Username: "mario", Email: "mario@dinedir.local", Role: model.RoleOwner, Status: "active"},
	{Username: "lucia", Email: "lucia@dinedir.local", Role: model.RoleOwner, Status: "active"},
	{Username: "alice", Email: "alice@dinedir.local", Role: model.RoleUser, Status: "active"},
	{Username: "bob", Email: "bob@dinedir.local", Role: model.RoleUser, Status: "active"},
}

type seedRestaurant struct {
	Name        string
	Owner       string // username
	Address     string
	Zip         int
	Phone       int64
	OpenTime    string
	CloseTime   string
	Description string
	Menu        string
}

var seedRestaurants = []seedRestaurant{
	{
		Name:        "Mario's Trattoria",
		Owner:       "mario",
		Address:     "12 Via Roma",
		Zip:         95112,
		Phone:       4085550112,
		OpenTime:    "11:00",
		CloseTime:   "22:00",
		Description: "Family-run Italian kitchen",
		Menu:        `[{"name":"Pasta","items":[{"name":"Carbonara","price":14.5},{"name":"Cacio e Pepe","price":13}]},{"name":"Dessert","items":[{"name":"Tiramisu","price":8}]}]`,
	},
	{
		Name:        "Taco Corner",
		Owner:       "lucia",
		Address:     "88 Mission St",
		Zip:         94103,
		Phone:       4155550188,
		OpenTime:    "09:00",
		CloseTime:   "21:00",
		Description: "Street tacos and aguas frescas",
		Menu:        `[{"name":"Tacos","items":[{"name":"Al Pastor","price":4.5},{"name":"Carnitas","price":4.5},{"name":"Veggie","price":4}]}]`,
	},
	{
		Name:        "The Gilded Fork",
		Owner:       "lucia",
		Address:     "1 Harbor View",
		Zip:         94111,
		Phone:       4155550101,
		OpenTime:    "17:00",
		CloseTime:   "23:00",
		Description: "Seasonal tasting menus",
		Menu:        `[{"name":"Tasting","items":[{"name":"Five Course","price":95},{"name":"Seven Course","price":125}]}]`,
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Restaurant{}, &model.Review{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	restaurantRepo := repository.NewRestaurantRepository(gormDB)

	users, err := ensureUsers(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	created, err := ensureRestaurants(ctx, restaurantRepo, users)
	if err != nil {
		log.Fatalf("Failed to seed restaurants: %v", err)
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - Users present: %d", len(users))
	log.Printf("  - New restaurants created: %d", created)
	log.Printf("  - Seed password for all users: %s", seedPassword)
}

// ensureUsers creates the seed users that do not exist yet and returns
// all of them keyed by username.
func ensureUsers(ctx context.Context, repo repository.UserRepository) (map[string]*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}

	users := make(map[string]*model.User, len(seedUsers))
	for _, su := range seedUsers {
		existing, err := repo.FindByUsername(ctx, su.Username)
		if err == nil {
			users[su.Username] = existing
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check user %s: %w", su.Username, err)
		}

		user := &model.User{
			Username:     su.Username,
			Email:        su.Email,
			PasswordHash: string(hash),
			Role:         su.Role,
			Status:       su.Status,
		}
		if err := repo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create user %s: %w", su.Username, err)
		}
		log.Printf("Created %s %q", user.Role, user.Username)
		users[su.Username] = user
	}
	return users, nil
}

// ensureRestaurants creates seed listings that do not exist yet, with
// price tier derived from the seed menu.
func ensureRestaurants(ctx context.Context, repo repository.RestaurantRepository, users map[string]*model.User) (int, error) {
	created := 0
	for _, sr := range seedRestaurants {
		owner, ok := users[sr.Owner]
		if !ok {
			return created, fmt.Errorf("unknown owner %q for %q", sr.Owner, sr.Name)
		}

		existing, err := repo.FindByNameAndAddress(ctx, sr.Name, sr.Address)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, fmt.Errorf("check restaurant %q: %w", sr.Name, err)
		}
		if existing != nil {
			continue
		}

		restaurant := &model.Restaurant{
			Name:        sr.Name,
			OwnerID:     owner.ID,
			Address:     sr.Address,
			Zip:         sr.Zip,
			Phone:       sr.Phone,
			OpenTime:    sr.OpenTime,
			CloseTime:   sr.CloseTime,
			Description: sr.Description,
			Price:       service.DerivePriceTier(sr.Menu),
			Status:      model.RestaurantStatusOpen,
			Menu:        sr.Menu,
		}
		if err := repo.Create(ctx, restaurant); err != nil {
			return created, fmt.Errorf("create restaurant %q: %w", sr.Name, err)
		}
		log.Printf("Created restaurant %q (%s)", restaurant.Name, restaurant.Price)
		created++
	}
	return created, nil
}

package model

import "time"

// Price tiers derived from menu item prices.
const (
	PriceTierCheap    = "$"
	PriceTierModerate = "$$"
	PriceTierPricey   = "$$$"
)

// Restaurant statuses.
const (
	RestaurantStatusOpen   = "open"
	RestaurantStatusClosed = "closed"
)

// Restaurant is a directory listing owned by a user with the owner
// role. Price and Rating are derived fields: Price is a pure function
// of the menu document, Rating is the materialized mean of the
// listing's review ratings rounded to one decimal.
type Restaurant struct {
	ID          uint      `json:"rid" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null;index"`
	OwnerID     uint      `json:"owner" gorm:"not null;index"`
	Address     string    `json:"address" gorm:"size:255;not null"`
	Zip         int       `json:"zip"`
	Phone       int64     `json:"phone"`
	OpenTime    string    `json:"opentime" gorm:"size:5;not null"`  // HH:MM wall clock
	CloseTime   string    `json:"closetime" gorm:"size:5;not null"` // HH:MM wall clock
	Description string    `json:"description" gorm:"type:text"`
	Price       string    `json:"price" gorm:"size:3;not null;default:'$$'"`
	Rating      float64   `json:"rating" gorm:"type:decimal(3,1);not null;default:0"`
	Status      string    `json:"status" gorm:"size:20;not null;default:'open'"`
	Menu        string    `json:"menu" gorm:"type:text"` // JSON document, see MenuCategory
	MenuPhoto   string    `json:"menu_photo" gorm:"size:512"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

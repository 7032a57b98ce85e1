package model

import "time"

// Review is a rating plus optional comment left by a plain user on a
// restaurant. Reviews are never edited; they are deleted only as a
// cascade of the listing's deletion.
type Review struct {
	ID           uint      `json:"rvid" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant" gorm:"not null;index"`
	UserID       uint      `json:"user" gorm:"not null;index"`
	Rating       int       `json:"rating" gorm:"not null"` // 1..5
	Comment      string    `json:"comment" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

package models

import "gorm.io/gorm"

// Customer links an authenticated account to a bookable identity.
// A user without a customer row cannot create bookings.
type Customer struct {
	gorm.Model
	UserID uint   `json:"userId" gorm:"uniqueIndex"`
	User   User   `json:"user"`
	Phone  string `json:"phone"`
	CNIC   string `json:"cnic"`
}

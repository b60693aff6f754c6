package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	BookingID  uint     `json:"bookingId" gorm:"uniqueIndex"`
	Booking    Booking  `json:"booking"`
	CustomerID uint     `json:"customerId"`
	Customer   Customer `json:"customer"`
	Rating     int      `json:"rating"`
	Comment    string   `json:"comment"`
}

package models

import "gorm.io/gorm"

type Transaction struct {
	gorm.Model
	Reference     string  `json:"reference" gorm:"uniqueIndex"`
	BookingID     uint    `json:"bookingId" gorm:"index"`
	Booking       Booking `json:"booking"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"` // "cash", "card", "online"
	PaymentStatus string  `json:"paymentStatus"` // "completed", "refunded"
}

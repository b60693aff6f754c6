package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingUnpaid     BookingStatus = "unpaid"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
)

// Booking holds a stay over the half-open range [CheckInDate, CheckOutDate).
// Per room, no two bookings in {confirmed, checked_in} may overlap.
type Booking struct {
	gorm.Model
	CustomerID      uint          `json:"customerId" gorm:"index"`
	Customer        Customer      `json:"customer"`
	RoomID          uint          `json:"roomId" gorm:"index"`
	Room            Room          `json:"room"`
	Status          BookingStatus `json:"status" gorm:"column:booking_status;default:'unpaid'"`
	CheckInDate     time.Time     `json:"checkInDate" gorm:"type:date"`
	CheckOutDate    time.Time     `json:"checkOutDate" gorm:"type:date"`
	Guests          int           `json:"guests"`
	TotalAmount     float64       `json:"totalAmount"`
	SpecialRequests string        `json:"specialRequests"`
}

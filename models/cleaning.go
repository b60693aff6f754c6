package models

import (
	"time"

	"gorm.io/gorm"
)

type CleaningRequest struct {
	gorm.Model
	BookingID   uint      `json:"bookingId" gorm:"index"`
	Booking     Booking   `json:"booking"`
	RequestType string    `json:"requestType"` // "room_cleaning", "towel_change", "turndown"
	Notes       string    `json:"notes"`
	Status      string    `json:"status" gorm:"default:'pending'"` // "pending", "assigned", "in_progress", "completed"
	StaffID     *uint     `json:"staffId"`
	RequestDate time.Time `json:"requestDate"`
}

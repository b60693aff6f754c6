package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoomStatus string

const (
	RoomAvailable RoomStatus = "available"
	RoomOccupied  RoomStatus = "occupied"
)

type RoomType struct {
	gorm.Model
	Name         string         `json:"name" gorm:"uniqueIndex"`
	Description  string         `json:"description"`
	BasePrice    float64        `json:"basePrice"`
	MaxOccupancy int            `json:"maxOccupancy"`
	Amenities    datatypes.JSON `json:"amenities"`
	ImageURLs    datatypes.JSON `json:"imageURLs"`
}

type Room struct {
	gorm.Model
	RoomNumber    int        `json:"roomNumber" gorm:"uniqueIndex"`
	RoomTypeID    uint       `json:"roomTypeId"`
	RoomType      RoomType   `json:"roomType"`
	Floor         int        `json:"floor"`
	Status        RoomStatus `json:"status" gorm:"default:'available'"`
	PricePerNight *float64   `json:"pricePerNight"` // nil means the room type's base price applies
}

// EffectivePrice returns the room's own nightly price when set,
// otherwise the room type's base price.
func (r *Room) EffectivePrice() float64 {
	if r.PricePerNight != nil {
		return *r.PricePerNight
	}
	return r.RoomType.BasePrice
}

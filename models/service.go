package models

import "gorm.io/gorm"

type Service struct {
	gorm.Model
	Name        string  `json:"name" gorm:"uniqueIndex"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"` // "food", "spa", "transport", "laundry", "other"
}

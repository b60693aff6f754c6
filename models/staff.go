package models

import (
	"time"

	"gorm.io/gorm"
)

type Staff struct {
	gorm.Model
	UserID   uint      `json:"userId" gorm:"uniqueIndex"`
	User     User      `json:"user"`
	CNIC     string    `json:"cnic"`
	Phone    string    `json:"phone"`
	HireDate time.Time `json:"hireDate" gorm:"type:date"`
	Salary   float64   `json:"salary"`
	Role     string    `json:"role"` // "admin", "receptionist", "cleaning"
}

type Admin struct {
	gorm.Model
	StaffID     uint   `json:"staffId" gorm:"uniqueIndex"`
	Staff       Staff  `json:"staff"`
	AccessLevel string `json:"accessLevel"`
}

type Receptionist struct {
	gorm.Model
	StaffID    uint   `json:"staffId" gorm:"uniqueIndex"`
	Staff      Staff  `json:"staff"`
	DeskNumber string `json:"deskNumber"`
}

type CleaningStaff struct {
	gorm.Model
	StaffID      uint   `json:"staffId" gorm:"uniqueIndex"`
	Staff        Staff  `json:"staff"`
	CleaningZone string `json:"cleaningZone"`
}

package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserRole string

const (
	CustomerRole     UserRole = "customer"
	StaffRole        UserRole = "staff"
	ReceptionistRole UserRole = "receptionist"
	AdminRole        UserRole = "admin"
)

type User struct {
	gorm.Model
	CNIC           string         `json:"cnic" gorm:"index"`
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	Email          string         `json:"email" gorm:"uniqueIndex"`
	Password       string         `json:"-"`
	Phone          string         `json:"phone"`
	Role           UserRole       `json:"role" gorm:"default:'customer'"`
	SocialLogin    bool           `json:"socialLogin"`
	SocialProvider string         `json:"socialProvider"`
	PushTokens     datatypes.JSON `json:"pushTokens"`
}

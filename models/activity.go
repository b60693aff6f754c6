package models

import "gorm.io/gorm"

// ActivityLog records staff actions for the admin activity feed.
type ActivityLog struct {
	gorm.Model
	StaffID uint   `json:"staffId" gorm:"index"`
	Staff   Staff  `json:"staff"`
	Action  string `json:"action"`
}

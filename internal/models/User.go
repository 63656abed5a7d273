package models

import "gorm.io/gorm"

const (
	RoleWorker = "worker"
	RoleOwner  = "owner"
)

type User struct {
	gorm.Model
	Name         string `json:"name"`
	Contact      string `json:"contact" gorm:"uniqueIndex"` // phone or email, unique across both roles
	PasswordHash string `json:"-"`
	Role         string `json:"role"` // "worker" or "owner", fixed at creation

	Shifts      []Shift             `gorm:"foreignKey:WorkerID" json:"shifts,omitempty"`
	Adjustments []MileageAdjustment `gorm:"foreignKey:UserID" json:"adjustments,omitempty"`
}

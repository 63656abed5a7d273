package models

import "gorm.io/gorm"

// MileageAdjustment is a signed mileage delta that did not come from a shift:
// a manual owner grant or correction, or the automatic negative entry written
// when a payout request is completed.
type MileageAdjustment struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"index"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Amount int    `json:"amount"`
	Note   string `json:"note"`
}

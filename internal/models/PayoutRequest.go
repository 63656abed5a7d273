package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PayoutStatusPending   = "pending"
	PayoutStatusCompleted = "completed"
)

// PayoutRequest is a worker's claim to cash out accumulated mileage. Amount
// snapshots the worker's total at request time and is what gets settled, even
// if shifts change before the owner completes it.
type PayoutRequest struct {
	gorm.Model
	WorkerID    uint       `json:"worker_id" gorm:"index"`
	Worker      User       `gorm:"foreignKey:WorkerID" json:"-"`
	Amount      int        `json:"amount"`
	Status      string     `json:"status" gorm:"default:'pending'"`
	Note        string     `json:"note"`
	CompletedAt *time.Time `json:"completed_at"`
}

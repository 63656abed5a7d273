package models

import "gorm.io/gorm"

// Shift is one planned working block logged by a worker. Date is YYYY-MM-DD
// and Start/End are HH:MM strings kept as entered; Mileage is derived from
// them at write time and is never accepted from a client.
type Shift struct {
	gorm.Model
	WorkerID uint   `json:"worker_id" gorm:"index"`
	Worker   User   `gorm:"foreignKey:WorkerID" json:"-"`
	Date     string `json:"date"`
	Start    string `json:"start" gorm:"column:start_time"` // "end"/"start" clash with SQL keywords
	End      string `json:"end" gorm:"column:end_time"`
	Note     string `json:"note"`
	Mileage  int    `json:"mileage"`
}

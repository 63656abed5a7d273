package service

import (
	"context"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/skesea-spec/shift-check-server/internal/models"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ShiftMileage converts a shift's date/start/end into loyalty points: one
// logged hour is worth 100, rounded to the nearest point. An end at or before
// the start is read as crossing midnight, so the end instant moves to the next
// calendar day; note that start == end therefore counts as a full 24h shift.
// Unparseable input is worth 0 rather than an error, so a malformed form
// never blocks submission.
func ShiftMileage(date, start, end string) int {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0
	}
	startClock, err := time.Parse(TimeLayout, start)
	if err != nil {
		return 0
	}
	endClock, err := time.Parse(TimeLayout, end)
	if err != nil {
		return 0
	}

	startAt := time.Date(day.Year(), day.Month(), day.Day(), startClock.Hour(), startClock.Minute(), 0, 0, time.UTC)
	endAt := time.Date(day.Year(), day.Month(), day.Day(), endClock.Hour(), endClock.Minute(), 0, 0, time.UTC)
	if !endAt.After(startAt) {
		endAt = endAt.AddDate(0, 0, 1)
	}

	mileage := int(math.Round(endAt.Sub(startAt).Hours() * 100))
	if mileage < 0 {
		return 0
	}
	return mileage
}

// MileageSummary splits a user's balance into the part earned from shifts and
// the part granted (or debited) through adjustments.
type MileageSummary struct {
	Auto   int `json:"auto_mileage"`
	Manual int `json:"manual_mileage"`
	Total  int `json:"total_mileage"`
}

// SummaryFor recomputes a user's mileage balance from the shifts and
// adjustments tables on demand. Empty tables read as zero, never null.
func SummaryFor(ctx context.Context, db *gorm.DB, userID uint) (MileageSummary, error) {
	var out MileageSummary
	if err := db.WithContext(ctx).Model(&models.Shift{}).
		Where("worker_id = ?", userID).
		Select("COALESCE(SUM(mileage), 0)").
		Scan(&out.Auto).Error; err != nil {
		return MileageSummary{}, err
	}
	if err := db.WithContext(ctx).Model(&models.MileageAdjustment{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&out.Manual).Error; err != nil {
		return MileageSummary{}, err
	}
	out.Total = out.Auto + out.Manual
	return out, nil
}

package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/skesea-spec/shift-check-server/internal/models"
)

// RecentShiftLimit caps the worker dashboard table unless "show all" is asked for.
const RecentShiftLimit = 10

// CanManageShift is the one authorization rule for editing or deleting a
// shift: owners manage every shift, workers only their own.
func CanManageShift(userID uint, role string, shift models.Shift) bool {
	return role == models.RoleOwner || userID == shift.WorkerID
}

// ShiftWindow is an inclusive date range filter; an empty bound is open.
type ShiftWindow struct {
	From string
	To   string
}

// DefaultOwnerWindow bounds the shared dashboard to the coming week when the
// owner supplies no filter: today through today+7, inclusive.
func DefaultOwnerWindow(now time.Time) ShiftWindow {
	return ShiftWindow{
		From: now.Format(DateLayout),
		To:   now.AddDate(0, 0, 7).Format(DateLayout),
	}
}

// AllShifts lists every worker's shifts inside the window, ascending by date
// then start time.
func AllShifts(ctx context.Context, db *gorm.DB, window ShiftWindow) ([]models.Shift, error) {
	q := db.WithContext(ctx).Preload("Worker").Order("date ASC, start_time ASC")
	if window.From != "" {
		q = q.Where("date >= ?", window.From)
	}
	if window.To != "" {
		q = q.Where("date <= ?", window.To)
	}
	var shifts []models.Shift
	if err := q.Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

// WorkerShifts lists one worker's shifts newest first. A limit of 0 means no
// cap; there is no default date filter on the worker view.
func WorkerShifts(ctx context.Context, db *gorm.DB, workerID uint, limit int) ([]models.Shift, error) {
	q := db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("date DESC, start_time DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var shifts []models.Shift
	if err := q.Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

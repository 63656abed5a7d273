package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/skesea-spec/shift-check-server/internal/models"
)

var ErrPayoutNotFound = errors.New("payout request not found")

// RequestPayout opens a pending payout request snapshotting the worker's
// current total mileage. Two cases are silent no-ops so a retried form post
// stays safe: a pending request already exists, or there is nothing positive
// to pay out. The returned bool reports whether a request was created.
func RequestPayout(ctx context.Context, db *gorm.DB, workerID uint) (bool, error) {
	created := false
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pending int64
		if err := tx.Model(&models.PayoutRequest{}).
			Where("worker_id = ? AND status = ?", workerID, models.PayoutStatusPending).
			Count(&pending).Error; err != nil {
			return err
		}
		if pending > 0 {
			return nil
		}

		summary, err := SummaryFor(ctx, tx, workerID)
		if err != nil {
			return err
		}
		if summary.Total <= 0 {
			return nil
		}

		req := models.PayoutRequest{
			WorkerID: workerID,
			Amount:   summary.Total,
			Status:   models.PayoutStatusPending,
		}
		if err := tx.Create(&req).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

// CompletePayout settles a pending request: the status flip and the
// compensating negative adjustment commit or roll back as one unit. The
// snapshotted amount is authoritative; the total is not recomputed here.
// Completing an already-completed request does nothing.
func CompletePayout(ctx context.Context, db *gorm.DB, requestID uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var req models.PayoutRequest
		if err := tx.First(&req, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPayoutNotFound
			}
			return err
		}
		if req.Status == models.PayoutStatusCompleted {
			return nil
		}

		now := time.Now()
		req.Status = models.PayoutStatusCompleted
		req.CompletedAt = &now
		if err := tx.Save(&req).Error; err != nil {
			return err
		}

		debit := models.MileageAdjustment{
			UserID: req.WorkerID,
			Amount: -req.Amount,
			Note:   fmt.Sprintf("payout #%d settled", req.ID),
		}
		return tx.Create(&debit).Error
	})
}

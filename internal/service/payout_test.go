package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skesea-spec/shift-check-server/internal/models"
)

func TestRequestPayoutSnapshotsCurrentTotal(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	worker := newWorker(t, db, "Asha", "0711000111")

	require.NoError(t, db.Create(&models.Shift{WorkerID: worker.ID, Date: "2026-03-02", Start: "09:00", End: "17:00", Mileage: 800}).Error)
	require.NoError(t, db.Create(&models.MileageAdjustment{UserID: worker.ID, Amount: 200, Note: "bonus"}).Error)

	created, err := RequestPayout(ctx, db, worker.ID)
	require.NoError(t, err)
	require.True(t, created)

	var req models.PayoutRequest
	require.NoError(t, db.Where("worker_id = ?", worker.ID).First(&req).Error)
	require.Equal(t, 1000, req.Amount)
	require.Equal(t, models.PayoutStatusPending, req.Status)
	require.Nil(t, req.CompletedAt)

	// mileage earned after the snapshot does not touch the open request
	require.NoError(t, db.Create(&models.Shift{WorkerID: worker.ID, Date: "2026-03-03", Start: "09:00", End: "13:00", Mileage: 400}).Error)

	created, err = RequestPayout(ctx, db, worker.ID)
	require.NoError(t, err)
	require.False(t, created)

	var open int64
	require.NoError(t, db.Model(&models.PayoutRequest{}).Where("worker_id = ?", worker.ID).Count(&open).Error)
	require.EqualValues(t, 1, open)

	require.NoError(t, db.First(&req, req.ID).Error)
	require.Equal(t, 1000, req.Amount)
}

func TestRequestPayoutNeedsPositiveBalance(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	worker := newWorker(t, db, "Asha", "0711000111")

	created, err := RequestPayout(ctx, db, worker.ID)
	require.NoError(t, err)
	require.False(t, created)

	require.NoError(t, db.Create(&models.MileageAdjustment{UserID: worker.ID, Amount: -100, Note: "penalty"}).Error)

	created, err = RequestPayout(ctx, db, worker.ID)
	require.NoError(t, err)
	require.False(t, created)

	var open int64
	require.NoError(t, db.Model(&models.PayoutRequest{}).Count(&open).Error)
	require.Zero(t, open)
}

func TestCompletePayoutDebitsSnapshotOnly(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	worker := newWorker(t, db, "Asha", "0711000111")

	require.NoError(t, db.Create(&models.Shift{WorkerID: worker.ID, Date: "2026-03-02", Start: "09:00", End: "17:00", Mileage: 800}).Error)
	require.NoError(t, db.Create(&models.MileageAdjustment{UserID: worker.ID, Amount: 200, Note: "bonus"}).Error)

	created, err := RequestPayout(ctx, db, worker.ID)
	require.NoError(t, err)
	require.True(t, created)

	var req models.PayoutRequest
	require.NoError(t, db.Where("worker_id = ?", worker.ID).First(&req).Error)

	// earned while the request sat pending, kept after settlement
	require.NoError(t, db.Create(&models.Shift{WorkerID: worker.ID, Date: "2026-03-03", Start: "09:00", End: "13:00", Mileage: 400}).Error)

	require.NoError(t, CompletePayout(ctx, db, req.ID))

	require.NoError(t, db.First(&req, req.ID).Error)
	require.Equal(t, models.PayoutStatusCompleted, req.Status)
	require.NotNil(t, req.CompletedAt)

	var debit models.MileageAdjustment
	require.NoError(t, db.Where("user_id = ? AND amount < 0", worker.ID).First(&debit).Error)
	require.Equal(t, -1000, debit.Amount)
	require.Equal(t, fmt.Sprintf("payout #%d settled", req.ID), debit.Note)

	summary, err := SummaryFor(ctx, db, worker.ID)
	require.NoError(t, err)
	require.Equal(t, 400, summary.Total)
}

func TestCompletePayoutIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	worker := newWorker(t, db, "Asha", "0711000111")

	require.NoError(t, db.Create(&models.Shift{WorkerID: worker.ID, Date: "2026-03-02", Start: "09:00", End: "17:00", Mileage: 800}).Error)

	created, err := RequestPayout(ctx, db, worker.ID)
	require.NoError(t, err)
	require.True(t, created)

	var req models.PayoutRequest
	require.NoError(t, db.Where("worker_id = ?", worker.ID).First(&req).Error)

	require.NoError(t, CompletePayout(ctx, db, req.ID))
	require.NoError(t, CompletePayout(ctx, db, req.ID))

	var debits int64
	require.NoError(t, db.Model(&models.MileageAdjustment{}).Where("user_id = ? AND amount < 0", worker.ID).Count(&debits).Error)
	require.EqualValues(t, 1, debits)

	summary, err := SummaryFor(ctx, db, worker.ID)
	require.NoError(t, err)
	require.Zero(t, summary.Total)
}

func TestCompletePayoutUnknownID(t *testing.T) {
	db := newTestDB(t)
	require.ErrorIs(t, CompletePayout(context.Background(), db, 9999), ErrPayoutNotFound)
}

func TestRequestPayoutReopensAfterSettlement(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	worker := newWorker(t, db, "Asha", "0711000111")

	require.NoError(t, db.Create(&models.Shift{WorkerID: worker.ID, Date: "2026-03-02", Start: "09:00", End: "17:00", Mileage: 800}).Error)

	created, err := RequestPayout(ctx, db, worker.ID)
	require.NoError(t, err)
	require.True(t, created)

	var req models.PayoutRequest
	require.NoError(t, db.Where("worker_id = ?", worker.ID).First(&req).Error)
	require.NoError(t, CompletePayout(ctx, db, req.ID))

	// balance is back to zero, so a fresh request still refuses
	created, err = RequestPayout(ctx, db, worker.ID)
	require.NoError(t, err)
	require.False(t, created)

	require.NoError(t, db.Create(&models.Shift{WorkerID: worker.ID, Date: "2026-03-04", Start: "09:00", End: "12:00", Mileage: 300}).Error)

	created, err = RequestPayout(ctx, db, worker.ID)
	require.NoError(t, err)
	require.True(t, created)

	var second models.PayoutRequest
	require.NoError(t, db.Where("worker_id = ? AND status = ?", worker.ID, models.PayoutStatusPending).First(&second).Error)
	require.Equal(t, 300, second.Amount)
}

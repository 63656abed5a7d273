package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/skesea-spec/shift-check-server/internal/middleware"
	"github.com/skesea-spec/shift-check-server/internal/models"
	"github.com/skesea-spec/shift-check-server/internal/service"
)

type OwnerController struct {
	DB       *gorm.DB
	Sessions *middleware.SessionAuth
}

type adjustmentInput struct {
	WorkerID uint   `form:"worker_id" binding:"required"`
	Amount   int    `form:"amount" binding:"required"`
	Note     string `form:"note"`
}

// workerSummary pairs a worker with their recomputed mileage balance for the
// dashboard table.
type workerSummary struct {
	Worker  models.User
	Summary service.MileageSummary
}

// Dashboard is the shared planning view: every worker's shifts in the date
// window ascending, per-worker mileage balances, the adjustment ledger and
// the pending payout queue.
func (o *OwnerController) Dashboard(c *gin.Context) {
	o.renderDashboard(c, "")
}

// AddAdjustment records a manual mileage grant or correction for a worker.
func (o *OwnerController) AddAdjustment(c *gin.Context) {
	var input adjustmentInput
	if err := c.ShouldBind(&input); err != nil {
		o.renderDashboard(c, "a worker and a non-zero amount are required")
		return
	}

	ctx := c.Request.Context()
	var worker models.User
	err := o.DB.WithContext(ctx).
		Where("id = ? AND role = ?", input.WorkerID, models.RoleWorker).
		First(&worker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			o.renderDashboard(c, "no such worker")
			return
		}
		logrus.WithError(err).Error("could not look up worker")
		renderServerError(c)
		return
	}

	adj := models.MileageAdjustment{
		UserID: input.WorkerID,
		Amount: input.Amount,
		Note:   input.Note,
	}
	if err := o.DB.WithContext(ctx).Create(&adj).Error; err != nil {
		logrus.WithError(err).Error("could not create adjustment")
		renderServerError(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/owner/dashboard")
}

// DeleteAdjustment removes one manual adjustment outright.
func (o *OwnerController) DeleteAdjustment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/owner/dashboard")
		return
	}

	if err := o.DB.WithContext(c.Request.Context()).
		Unscoped().Delete(&models.MileageAdjustment{}, uint(id)).Error; err != nil {
		logrus.WithError(err).Error("could not delete adjustment")
		renderServerError(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/owner/dashboard")
}

// CompletePayout settles one pending request. An unknown id or a request
// that is already completed redirects like success; completion is idempotent.
func (o *OwnerController) CompletePayout(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/owner/dashboard")
		return
	}

	if err := service.CompletePayout(c.Request.Context(), o.DB, uint(id)); err != nil {
		if errors.Is(err, service.ErrPayoutNotFound) {
			c.Redirect(http.StatusFound, "/owner/dashboard")
			return
		}
		logrus.WithError(err).Error("could not complete payout")
		renderServerError(c)
		return
	}

	logrus.WithField("request_id", id).Info("payout completed")
	c.Redirect(http.StatusSeeOther, "/owner/dashboard")
}

// renderDashboard assembles and renders the owner dashboard, optionally with
// an inline form error. Without a from/to filter the shift table is bounded
// to today through a week out.
func (o *OwnerController) renderDashboard(c *gin.Context, errMsg string) {
	ctx := c.Request.Context()

	window := service.ShiftWindow{From: c.Query("from"), To: c.Query("to")}
	filtered := window.From != "" || window.To != ""
	if !filtered {
		window = service.DefaultOwnerWindow(time.Now())
	}

	shifts, err := service.AllShifts(ctx, o.DB, window)
	if err != nil {
		logrus.WithError(err).Error("could not list shifts")
		renderServerError(c)
		return
	}

	var workers []models.User
	if err := o.DB.WithContext(ctx).
		Where("role = ?", models.RoleWorker).
		Order("name ASC").Find(&workers).Error; err != nil {
		logrus.WithError(err).Error("could not list workers")
		renderServerError(c)
		return
	}

	summaries := make([]workerSummary, 0, len(workers))
	for _, wkr := range workers {
		s, err := service.SummaryFor(ctx, o.DB, wkr.ID)
		if err != nil {
			logrus.WithError(err).Error("could not compute worker summary")
			renderServerError(c)
			return
		}
		summaries = append(summaries, workerSummary{Worker: wkr, Summary: s})
	}

	var pendingPayouts []models.PayoutRequest
	if err := o.DB.WithContext(ctx).Preload("Worker").
		Where("status = ?", models.PayoutStatusPending).
		Order("created_at ASC").Find(&pendingPayouts).Error; err != nil {
		logrus.WithError(err).Error("could not list pending payouts")
		renderServerError(c)
		return
	}

	var adjustments []models.MileageAdjustment
	if err := o.DB.WithContext(ctx).Preload("User").
		Order("created_at DESC").Limit(20).Find(&adjustments).Error; err != nil {
		logrus.WithError(err).Error("could not list adjustments")
		renderServerError(c)
		return
	}

	data := viewData(c, gin.H{
		"Shifts":         shifts,
		"From":           window.From,
		"To":             window.To,
		"Filtered":       filtered,
		"Workers":        workers,
		"Summaries":      summaries,
		"PendingPayouts": pendingPayouts,
		"Adjustments":    adjustments,
	})
	if errMsg != "" {
		data["Error"] = errMsg
	}
	c.HTML(http.StatusOK, "owner_dashboard.html", data)
}

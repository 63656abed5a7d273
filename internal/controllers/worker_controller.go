package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/skesea-spec/shift-check-server/internal/middleware"
	"github.com/skesea-spec/shift-check-server/internal/models"
	"github.com/skesea-spec/shift-check-server/internal/service"
)

type WorkerController struct {
	DB       *gorm.DB
	Sessions *middleware.SessionAuth
}

type shiftInput struct {
	Date  string `form:"date" binding:"required"`
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
	Note  string `form:"note"`
}

// Dashboard lists the worker's own shifts newest first alongside the mileage
// summary and payout state. The table is capped to the most recent entries
// unless all=1 asks for everything; there is no date filter here.
func (w *WorkerController) Dashboard(c *gin.Context) {
	data, ok := w.dashboardData(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "worker_dashboard.html", data)
}

// CreateShift logs a new shift for the logged-in worker, deriving mileage
// from the submitted times. A missing field re-renders the dashboard with an
// inline message; merely unparseable times go through and score 0.
func (w *WorkerController) CreateShift(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var input shiftInput
	if err := c.ShouldBind(&input); err != nil {
		data, ok := w.dashboardData(c)
		if !ok {
			return
		}
		data["Error"] = "date, start and end are required"
		data["FormDate"] = c.PostForm("date")
		data["FormStart"] = c.PostForm("start")
		data["FormEnd"] = c.PostForm("end")
		data["FormNote"] = c.PostForm("note")
		c.HTML(http.StatusOK, "worker_dashboard.html", data)
		return
	}

	shift := models.Shift{
		WorkerID: userID,
		Date:     input.Date,
		Start:    input.Start,
		End:      input.End,
		Note:     input.Note,
		Mileage:  service.ShiftMileage(input.Date, input.Start, input.End),
	}
	if err := w.DB.WithContext(c.Request.Context()).Create(&shift).Error; err != nil {
		logrus.WithError(err).Error("could not create shift")
		renderServerError(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/worker/dashboard")
}

// RequestPayout tries to open a payout request for the worker's current
// total. The no-op cases (a pending request already open, nothing to pay out)
// redirect exactly like success, so resubmitting the form is safe.
func (w *WorkerController) RequestPayout(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	created, err := service.RequestPayout(c.Request.Context(), w.DB, userID)
	if err != nil {
		logrus.WithError(err).Error("could not request payout")
		renderServerError(c)
		return
	}
	if created {
		logrus.WithField("worker_id", userID).Info("payout requested")
	}
	c.Redirect(http.StatusSeeOther, "/worker/dashboard")
}

// dashboardData assembles the worker dashboard payload. On a store fault it
// renders the 500 page itself and reports false.
func (w *WorkerController) dashboardData(c *gin.Context) (gin.H, bool) {
	userID, _ := middleware.CurrentUserID(c)
	ctx := c.Request.Context()
	showAll := c.Query("all") == "1"

	limit := service.RecentShiftLimit
	if showAll {
		limit = 0
	}
	shifts, err := service.WorkerShifts(ctx, w.DB, userID, limit)
	if err != nil {
		logrus.WithError(err).Error("could not list shifts")
		renderServerError(c)
		return nil, false
	}

	summary, err := service.SummaryFor(ctx, w.DB, userID)
	if err != nil {
		logrus.WithError(err).Error("could not compute mileage summary")
		renderServerError(c)
		return nil, false
	}

	var pending models.PayoutRequest
	hasPending := true
	if err := w.DB.WithContext(ctx).
		Where("worker_id = ? AND status = ?", userID, models.PayoutStatusPending).
		First(&pending).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithError(err).Error("could not look up pending payout")
			renderServerError(c)
			return nil, false
		}
		hasPending = false
	}

	var payouts []models.PayoutRequest
	if err := w.DB.WithContext(ctx).Where("worker_id = ?", userID).
		Order("created_at DESC").Find(&payouts).Error; err != nil {
		logrus.WithError(err).Error("could not list payout requests")
		renderServerError(c)
		return nil, false
	}

	data := viewData(c, gin.H{
		"Shifts":  shifts,
		"Summary": summary,
		"ShowAll": showAll,
		"HasMore": !showAll && len(shifts) == service.RecentShiftLimit,
		"Payouts": payouts,
	})
	if hasPending {
		data["Pending"] = pending
	}
	return data, true
}

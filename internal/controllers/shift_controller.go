package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/skesea-spec/shift-check-server/internal/middleware"
	"github.com/skesea-spec/shift-check-server/internal/models"
	"github.com/skesea-spec/shift-check-server/internal/service"
)

type ShiftController struct {
	DB       *gorm.DB
	Sessions *middleware.SessionAuth
}

// EditForm shows the edit form for one shift.
func (s *ShiftController) EditForm(c *gin.Context) {
	shift, ok := s.loadManaged(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "shift_edit.html", viewData(c, gin.H{"Shift": shift}))
}

// Update applies an edit and rederives mileage from the submitted times. A
// mileage value sent by the client is never trusted.
func (s *ShiftController) Update(c *gin.Context) {
	shift, ok := s.loadManaged(c)
	if !ok {
		return
	}

	var input shiftInput
	if err := c.ShouldBind(&input); err != nil {
		c.HTML(http.StatusOK, "shift_edit.html", viewData(c, gin.H{
			"Shift": shift,
			"Error": "date, start and end are required",
		}))
		return
	}

	shift.Date = input.Date
	shift.Start = input.Start
	shift.End = input.End
	shift.Note = input.Note
	shift.Mileage = service.ShiftMileage(input.Date, input.Start, input.End)

	if err := s.DB.WithContext(c.Request.Context()).Save(&shift).Error; err != nil {
		logrus.WithError(err).Error("could not update shift")
		renderServerError(c)
		return
	}

	s.redirectBack(c)
}

// Delete removes a shift outright; rows are never archived.
func (s *ShiftController) Delete(c *gin.Context) {
	shift, ok := s.loadManaged(c)
	if !ok {
		return
	}

	if err := s.DB.WithContext(c.Request.Context()).Unscoped().Delete(&shift).Error; err != nil {
		logrus.WithError(err).Error("could not delete shift")
		renderServerError(c)
		return
	}

	s.redirectBack(c)
}

// loadManaged fetches the shift and applies the manage rule: owners touch any
// shift, workers only their own. An unknown id and a forbidden one both send
// the visitor home, indistinguishably.
func (s *ShiftController) loadManaged(c *gin.Context) (models.Shift, bool) {
	var shift models.Shift

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return shift, false
	}

	if err := s.DB.WithContext(c.Request.Context()).First(&shift, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Redirect(http.StatusFound, "/")
			return shift, false
		}
		logrus.WithError(err).Error("could not load shift")
		renderServerError(c)
		return shift, false
	}

	userID, _ := middleware.CurrentUserID(c)
	role, _ := middleware.CurrentRole(c)
	if !service.CanManageShift(userID, role, shift) {
		c.Redirect(http.StatusFound, "/")
		return shift, false
	}

	return shift, true
}

// redirectBack lands the actor on their own dashboard after a mutation.
func (s *ShiftController) redirectBack(c *gin.Context) {
	role, _ := middleware.CurrentRole(c)
	c.Redirect(http.StatusSeeOther, dashboardPath(role))
}

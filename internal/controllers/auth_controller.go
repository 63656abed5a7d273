package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	logrus "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/skesea-spec/shift-check-server/internal/middleware"
	"github.com/skesea-spec/shift-check-server/internal/models"
	"github.com/skesea-spec/shift-check-server/internal/service"
)

type AuthController struct {
	DB       *gorm.DB
	Sessions *middleware.SessionAuth
}

type registerInput struct {
	Name     string `form:"name" binding:"required"`
	Contact  string `form:"contact" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type loginInput struct {
	Contact  string `form:"contact" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// ShowLanding renders the landing page with the visitor's login state.
func (a *AuthController) ShowLanding(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", viewData(c, nil))
}

// ShowRegister renders the signup form for one role.
func (a *AuthController) ShowRegister(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "register.html", viewData(c, gin.H{"FormRole": role}))
	}
}

// Register creates an account with the route's role and logs it straight in.
// Validation problems come back as an inline message on the same form.
func (a *AuthController) Register(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input registerInput
		if err := c.ShouldBind(&input); err != nil {
			c.HTML(http.StatusOK, "register.html", viewData(c, gin.H{
				"FormRole":    role,
				"Error":       "name, contact and password are all required",
				"FormName":    c.PostForm("name"),
				"FormContact": c.PostForm("contact"),
			}))
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			logrus.WithError(err).Error("could not hash password")
			renderServerError(c)
			return
		}

		user := models.User{
			Name:         input.Name,
			Contact:      input.Contact,
			PasswordHash: string(hash),
			Role:         role,
		}
		if err := a.DB.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
			if isDuplicateErr(err) {
				c.HTML(http.StatusOK, "register.html", viewData(c, gin.H{
					"FormRole": role,
					"Error":    "that contact is already registered",
					"FormName": input.Name,
				}))
				return
			}
			logrus.WithError(err).Error("could not create user")
			renderServerError(c)
			return
		}

		a.startSession(c, user)
	}
}

// ShowLogin renders the login form for one role.
func (a *AuthController) ShowLogin(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", viewData(c, gin.H{"FormRole": role}))
	}
}

// Login authenticates by contact and password, scoped to the route's role so
// a worker account cannot come in through the owner door. Bad credentials and
// a wrong-role account get the same inline message.
func (a *AuthController) Login(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBind(&input); err != nil {
			c.HTML(http.StatusOK, "login.html", viewData(c, gin.H{
				"FormRole":    role,
				"Error":       "contact and password are required",
				"FormContact": c.PostForm("contact"),
			}))
			return
		}

		var user models.User
		err := a.DB.WithContext(c.Request.Context()).
			Where("contact = ? AND role = ?", input.Contact, role).
			First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.HTML(http.StatusOK, "login.html", viewData(c, gin.H{
					"FormRole":    role,
					"Error":       "invalid contact or password",
					"FormContact": input.Contact,
				}))
				return
			}
			logrus.WithError(err).Error("could not look up user")
			renderServerError(c)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
			c.HTML(http.StatusOK, "login.html", viewData(c, gin.H{
				"FormRole":    role,
				"Error":       "invalid contact or password",
				"FormContact": input.Contact,
			}))
			return
		}

		a.startSession(c, user)
	}
}

// Logout clears the session cookie and sends the visitor home.
func (a *AuthController) Logout(c *gin.Context) {
	a.Sessions.ClearSession(c)
	c.Redirect(http.StatusFound, "/")
}

// Me shows the visitor's own mileage summary plus their full shift,
// adjustment and payout history, newest first.
func (a *AuthController) Me(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)
	ctx := c.Request.Context()

	summary, err := service.SummaryFor(ctx, a.DB, userID)
	if err != nil {
		logrus.WithError(err).Error("could not compute mileage summary")
		renderServerError(c)
		return
	}

	shifts, err := service.WorkerShifts(ctx, a.DB, userID, 0)
	if err != nil {
		logrus.WithError(err).Error("could not list shifts")
		renderServerError(c)
		return
	}

	var adjustments []models.MileageAdjustment
	if err := a.DB.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").Find(&adjustments).Error; err != nil {
		logrus.WithError(err).Error("could not list adjustments")
		renderServerError(c)
		return
	}

	var payouts []models.PayoutRequest
	if err := a.DB.WithContext(ctx).Where("worker_id = ?", userID).
		Order("created_at DESC").Find(&payouts).Error; err != nil {
		logrus.WithError(err).Error("could not list payout requests")
		renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "me.html", viewData(c, gin.H{
		"Summary":     summary,
		"Shifts":      shifts,
		"Adjustments": adjustments,
		"Payouts":     payouts,
	}))
}

// startSession issues the session cookie and lands the user on their
// role's dashboard.
func (a *AuthController) startSession(c *gin.Context, user models.User) {
	token, err := a.Sessions.IssueToken(user.ID, user.Role, user.Name)
	if err != nil {
		logrus.WithError(err).Error("could not sign session token")
		renderServerError(c)
		return
	}
	a.Sessions.SetSession(c, token)
	c.Redirect(http.StatusSeeOther, dashboardPath(user.Role))
}

func dashboardPath(role string) string {
	if role == models.RoleOwner {
		return "/owner/dashboard"
	}
	return "/worker/dashboard"
}

// isDuplicateErr spots a unique-constraint violation from either driver:
// the postgres error code, gorm's translated error, or the message text the
// sqlite driver produces.
func isDuplicateErr(err error) bool {
	if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}

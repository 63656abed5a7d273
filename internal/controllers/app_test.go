package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/skesea-spec/shift-check-server/internal/controllers"
	"github.com/skesea-spec/shift-check-server/internal/middleware"
	"github.com/skesea-spec/shift-check-server/internal/models"
	"github.com/skesea-spec/shift-check-server/internal/routes"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testApp is a full router over an in-memory database, with the real
// templates attached, so tests drive the app the way a browser would.
type testApp struct {
	db       *gorm.DB
	sessions *middleware.SessionAuth
	router   *gin.Engine
}

func newTestApp(t *testing.T) *testApp {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Shift{}, &models.MileageAdjustment{}, &models.PayoutRequest{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	sessions := middleware.NewSessionAuth("test-secret")
	r := routes.SetupRouter(&routes.Deps{
		Auth:     &controllers.AuthController{DB: db, Sessions: sessions},
		Worker:   &controllers.WorkerController{DB: db, Sessions: sessions},
		Owner:    &controllers.OwnerController{DB: db, Sessions: sessions},
		Shift:    &controllers.ShiftController{DB: db, Sessions: sessions},
		Sessions: sessions,
	})
	r.LoadHTMLGlob("../../templates/*.html")

	return &testApp{db: db, sessions: sessions, router: r}
}

func (a *testApp) createUser(t *testing.T, name, contact, password, role string) models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Name: name, Contact: contact, PasswordHash: string(hash), Role: role}
	require.NoError(t, a.db.Create(&user).Error)
	return user
}

func (a *testApp) sessionCookie(t *testing.T, user models.User) *http.Cookie {
	token, err := a.sessions.IssueToken(user.ID, user.Role, user.Name)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func (a *testApp) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func requireRedirect(t *testing.T, rec *httptest.ResponseRecorder, code int, location string) {
	t.Helper()
	require.Equal(t, code, rec.Code)
	require.Equal(t, location, rec.Header().Get("Location"))
}

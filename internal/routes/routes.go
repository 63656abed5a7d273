package routes

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"github.com/skesea-spec/shift-check-server/internal/controllers"
	"github.com/skesea-spec/shift-check-server/internal/middleware"
)

// Deps carries the wired controllers and session auth into route registration.
type Deps struct {
	Auth     *controllers.AuthController
	Worker   *controllers.WorkerController
	Owner    *controllers.OwnerController
	Shift    *controllers.ShiftController
	Sessions *middleware.SessionAuth
}

// SetupRouter builds the engine with request logging, recovery and session
// loading ahead of every route, then registers the route groups. Templates
// are attached by the caller, which knows where they live on disk.
func SetupRouter(d *Deps) *gin.Engine {
	r := gin.New()
	r.Use(ginlog.SetLogger())
	r.Use(gin.Recovery())
	r.Use(d.Sessions.LoadSession())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	AuthRoutes(r, d)
	WorkerRoutes(r, d)
	OwnerRoutes(r, d)
	ShiftRoutes(r, d)

	return r
}

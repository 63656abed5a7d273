package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/skesea-spec/shift-check-server/internal/models"
)

// AuthRoutes wires the public account surface plus the shared profile page.
// Register and login exist once per role so each form creates or admits only
// that role.
func AuthRoutes(r *gin.Engine, d *Deps) {
	r.GET("/", d.Auth.ShowLanding)
	r.GET("/logout", d.Auth.Logout)

	me := r.Group("/me")
	me.Use(d.Sessions.RequireLogin())
	{
		me.GET("", d.Auth.Me)
	}

	worker := r.Group("/worker")
	{
		worker.GET("/register", d.Auth.ShowRegister(models.RoleWorker))
		worker.POST("/register", d.Auth.Register(models.RoleWorker))
		worker.GET("/login", d.Auth.ShowLogin(models.RoleWorker))
		worker.POST("/login", d.Auth.Login(models.RoleWorker))
	}

	owner := r.Group("/owner")
	{
		owner.GET("/register", d.Auth.ShowRegister(models.RoleOwner))
		owner.POST("/register", d.Auth.Register(models.RoleOwner))
		owner.GET("/login", d.Auth.ShowLogin(models.RoleOwner))
		owner.POST("/login", d.Auth.Login(models.RoleOwner))
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/skesea-spec/shift-check-server/internal/models"
)

// WorkerRoutes gates the worker dashboard and payout requests behind the
// worker role.
func WorkerRoutes(r *gin.Engine, d *Deps) {
	worker := r.Group("/worker")
	worker.Use(d.Sessions.RequireRole(models.RoleWorker))
	{
		worker.GET("/dashboard", d.Worker.Dashboard)
		worker.POST("/dashboard", d.Worker.CreateShift)
		worker.POST("/payout/request", d.Worker.RequestPayout)
	}
}

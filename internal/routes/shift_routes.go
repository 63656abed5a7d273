package routes

import (
	"github.com/gin-gonic/gin"
)

// ShiftRoutes require any login; whether the actor may touch the particular
// shift depends on the row, so that check lives in the controller.
func ShiftRoutes(r *gin.Engine, d *Deps) {
	shift := r.Group("/shift")
	shift.Use(d.Sessions.RequireLogin())
	{
		shift.GET("/:id/edit", d.Shift.EditForm)
		shift.POST("/:id/edit", d.Shift.Update)
		shift.POST("/:id/delete", d.Shift.Delete)
	}
}

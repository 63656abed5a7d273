package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/skesea-spec/shift-check-server/internal/models"
)

// OwnerRoutes gates the shared dashboard, manual adjustments and payout
// settlement behind the owner role.
func OwnerRoutes(r *gin.Engine, d *Deps) {
	owner := r.Group("/owner")
	owner.Use(d.Sessions.RequireRole(models.RoleOwner))
	{
		owner.GET("/dashboard", d.Owner.Dashboard)
		owner.POST("/mileage/add", d.Owner.AddAdjustment)
		owner.POST("/mileage/:id/delete", d.Owner.DeleteAdjustment)
		owner.POST("/payout/:id/complete", d.Owner.CompletePayout)
	}
}

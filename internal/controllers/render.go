package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skesea-spec/shift-check-server/internal/middleware"
)

// viewData seeds every template payload with the session identity so the nav
// can show login state, then folds in the page's own fields.
func viewData(c *gin.Context, extra gin.H) gin.H {
	h := gin.H{"LoggedIn": false}
	if name, ok := middleware.CurrentName(c); ok {
		h["Name"] = name
	}
	if role, ok := middleware.CurrentRole(c); ok {
		h["Role"] = role
		h["LoggedIn"] = true
	}
	for k, v := range extra {
		h[k] = v
	}
	return h
}

// renderServerError is the generic data-layer failure response: details stay
// in the log, the visitor gets a plain 500 page.
func renderServerError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", viewData(c, nil))
}

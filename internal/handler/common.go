package handler

import (
	"net/http"

	"bank-ledger/internal/models"
	"bank-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated user set by the auth middleware.
// Writes a 401 and returns nil if it is missing.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not authenticated")
		return nil
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not authenticated")
		return nil
	}
	return user
}

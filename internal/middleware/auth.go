package middleware

import (
	"encoding/base64"
	"net/http"
	"strings"

	"bank-ledger/internal/auth"
	"bank-ledger/internal/models"
	"bank-ledger/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Auth validates the presented credential and stashes the current user in the
// gin context. Two schemes are accepted:
//   - Bearer <jwt>: signature and expiry checked, subject resolved to a user
//   - Basic <base64 email:password>: checked against the credential service
//
// A bare token may also arrive as ?token= for download links that cannot set
// headers (statement export).
func Auth(jwtSecret string, db *gorm.DB, creds *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, credential := splitAuthHeader(c)
		if credential == "" {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authorization required")
			c.Abort()
			return
		}

		var user *models.User
		switch scheme {
		case "bearer":
			user = bearerUser(c, jwtSecret, db, credential)
		case "basic":
			user = basicUser(c, creds, credential)
		default:
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "unsupported authorization scheme")
		}
		if user == nil {
			c.Abort()
			return
		}

		c.Set("currentUser", user)
		c.Next()
	}
}

func splitAuthHeader(c *gin.Context) (scheme, credential string) {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 {
			return "", ""
		}
		return strings.ToLower(parts[0]), parts[1]
	}
	// query fallback for export downloads
	if token := c.Query("token"); token != "" {
		return "bearer", token
	}
	return "", ""
}

func bearerUser(c *gin.Context, jwtSecret string, db *gorm.DB, token string) *models.User {
	claims, err := util.ParseToken(jwtSecret, token)
	if err != nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid or expired token")
		return nil
	}

	var user models.User
	if err := db.First(&user, "id = ?", claims.Subject).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "user no longer exists")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "lookup user failed")
		}
		return nil
	}
	return &user
}

func basicUser(c *gin.Context, creds *auth.Service, credential string) *models.User {
	raw, err := base64.StdEncoding.DecodeString(credential)
	if err != nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "malformed basic credentials")
		return nil
	}
	email, password, ok := strings.Cut(string(raw), ":")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "malformed basic credentials")
		return nil
	}

	user, err := creds.ValidateUser(email, password)
	if err != nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid credentials")
		return nil
	}
	return user
}

package handler

import (
	"errors"
	"net/http"

	"bank-ledger/internal/auth"
	"bank-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes registration and login.
type AuthHandler struct {
	Auth *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{Auth: svc}
}

type registerReq struct {
	Name     string `json:"name" binding:"required,max=128"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"` // bcrypt caps input at 72 bytes
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid registration payload")
		return
	}

	user, err := h.Auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			util.Error(c, http.StatusConflict, util.CodeConflict, "email already registered")
			return
		}
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "registration failed")
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":         user.ID,
			"name":       user.Name,
			"email":      user.Email,
			"created_at": user.CreatedAt,
		},
	})
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid login payload")
		return
	}

	user, err := h.Auth.ValidateUser(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid credentials")
			return
		}
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "login failed")
		return
	}

	token, err := h.Auth.Login(user)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "issue token failed")
		return
	}

	util.Success(c, util.Response{
		"access_token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

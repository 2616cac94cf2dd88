package handler

import (
	"net/http"

	"bank-ledger/internal/store"
	"bank-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// AccountHandler exposes the current user's account view.
type AccountHandler struct {
	Accounts *store.AccountStore
}

func NewAccountHandler(accounts *store.AccountStore) *AccountHandler {
	return &AccountHandler{Accounts: accounts}
}

// Me returns the authenticated user's account and balance.
func (h *AccountHandler) Me(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	account, err := h.Accounts.ByUserID(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "lookup account failed")
		return
	}
	if account == nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "account not found")
		return
	}

	util.Success(c, util.Response{
		"account": gin.H{
			"id":           account.ID,
			"user_id":      account.UserID,
			"balance_cent": account.BalanceCent,
			"balance":      util.FormatCents(account.BalanceCent),
			"created_at":   account.CreatedAt,
		},
	})
}

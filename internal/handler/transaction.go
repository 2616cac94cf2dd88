package handler

import (
	"errors"
	"net/http"

	"bank-ledger/internal/ledger"
	"bank-ledger/internal/models"
	"bank-ledger/internal/store"
	"bank-ledger/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TransactionHandler exposes the ledger operations and the statement views.
type TransactionHandler struct {
	DB       *gorm.DB
	Ledger   *ledger.Engine
	Accounts *store.AccountStore
}

func NewTransactionHandler(db *gorm.DB, engine *ledger.Engine, accounts *store.AccountStore) *TransactionHandler {
	return &TransactionHandler{DB: db, Ledger: engine, Accounts: accounts}
}

type depositReq struct {
	Amount float64 `json:"amount" binding:"required"`
}

func (h *TransactionHandler) Deposit(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req depositReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid deposit payload")
		return
	}
	cents, err := util.ToCents(req.Amount)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid amount")
		return
	}

	txn, err := h.Ledger.Deposit(user.ID, cents)
	if err != nil {
		h.ledgerError(c, err)
		return
	}
	util.Success(c, util.Response{"transaction": toTxnResp(txn)})
}

type transferReq struct {
	ToAccountID string  `json:"to_account_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
}

func (h *TransactionHandler) Transfer(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	var req transferReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid transfer payload")
		return
	}
	cents, err := util.ToCents(req.Amount)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid amount")
		return
	}

	txn, err := h.Ledger.Transfer(user.ID, req.ToAccountID, cents)
	if err != nil {
		h.ledgerError(c, err)
		return
	}
	util.Success(c, util.Response{"transaction": toTxnResp(txn)})
}

func (h *TransactionHandler) Reverse(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	transactionID := c.Param("transactionId")
	txn, err := h.Ledger.Reverse(transactionID)
	if err != nil {
		h.ledgerError(c, err)
		return
	}
	util.Success(c, util.Response{"transaction": toTxnResp(txn)})
}

// List returns the current user's ledger history, newest first.
func (h *TransactionHandler) List(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	account, txns, ok := h.statement(c, user)
	if !ok {
		return
	}

	items := make([]gin.H, 0, len(txns))
	for i := range txns {
		items = append(items, toTxnResp(&txns[i]))
	}
	util.Success(c, util.Response{
		"account_id":   account.ID,
		"transactions": items,
	})
}

// statement loads the account plus every transaction touching it.
func (h *TransactionHandler) statement(c *gin.Context, user *models.User) (*models.Account, []models.Transaction, bool) {
	account, err := h.Accounts.ByUserID(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "lookup account failed")
		return nil, nil, false
	}
	if account == nil {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "account not found")
		return nil, nil, false
	}

	var txns []models.Transaction
	err = h.DB.
		Where("from_account_id = ? OR to_account_id = ?", account.ID, account.ID).
		Order("created_at DESC").
		Find(&txns).Error
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "load transactions failed")
		return nil, nil, false
	}
	return account, txns, true
}

func toTxnResp(t *models.Transaction) gin.H {
	resp := gin.H{
		"id":              t.ID,
		"from_account_id": t.FromAccountID,
		"to_account_id":   t.ToAccountID,
		"amount_cent":     t.AmountCent,
		"amount":          util.FormatCents(t.AmountCent),
		"type":            t.Type,
		"status":          t.Status,
		"created_at":      t.CreatedAt,
	}
	if t.ReversedTransactionID != nil {
		resp["reversed_transaction_id"] = *t.ReversedTransactionID
	}
	return resp
}

// ledgerError maps engine sentinels onto the response envelope.
func (h *TransactionHandler) ledgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "amount must be positive")
	case errors.Is(err, ledger.ErrAccountNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "account not found")
	case errors.Is(err, ledger.ErrTransactionNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "transaction not found")
	case errors.Is(err, ledger.ErrInsufficientBalance):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "insufficient balance")
	case errors.Is(err, ledger.ErrAlreadyReversed):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "transaction already reversed")
	case errors.Is(err, ledger.ErrNotReversible):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "only completed transactions can be reversed")
	case errors.Is(err, ledger.ErrDepositFailed):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "deposit failed")
	case errors.Is(err, ledger.ErrTransferFailed):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "transfer failed")
	case errors.Is(err, ledger.ErrReversalFailed):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "reversal failed")
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "operation failed")
	}
}

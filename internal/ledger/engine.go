package ledger

import (
	"errors"
	"fmt"
	"log"

	"bank-ledger/internal/models"
	"bank-ledger/internal/store"

	"gorm.io/gorm"
)

// Engine executes the ledger state machine: deposit, transfer, reversal.
// Balance mutation and the matching Transaction row are always written inside
// one store transaction, so the ledger and the balances cannot drift apart.
// The engine holds no in-process locks; isolation between concurrent
// operations is delegated to the store's transaction scope, and balances are
// re-read and re-checked inside it.
type Engine struct {
	db       *gorm.DB
	accounts *store.AccountStore
}

func NewEngine(db *gorm.DB, accounts *store.AccountStore) *Engine {
	return &Engine{db: db, accounts: accounts}
}

// Deposit credits the account owned by userID and records a completed
// deposit row with from = to = the account itself.
func (e *Engine) Deposit(userID string, amountCent int64) (*models.Transaction, error) {
	if amountCent <= 0 {
		return nil, ErrInvalidAmount
	}

	account, err := e.accounts.ByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("resolve account: %w", err)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	var txn *models.Transaction
	err = e.db.Transaction(func(tx *gorm.DB) error {
		current, err := fetchAccount(tx, account.ID)
		if err != nil {
			return err
		}
		if err := setBalance(tx, current.ID, current.BalanceCent+amountCent); err != nil {
			return err
		}

		t := &models.Transaction{
			FromAccountID: account.ID,
			ToAccountID:   account.ID,
			AmountCent:    amountCent,
			Type:          models.TypeDeposit,
			Status:        models.StatusCompleted,
		}
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		txn = t
		return nil
	})
	if err != nil {
		e.recordFailure(account.ID, account.ID, amountCent, models.TypeDeposit, nil)
		return nil, fmt.Errorf("%w: %v", ErrDepositFailed, err)
	}
	return txn, nil
}

// Transfer moves amountCent from the account owned by userID to the account
// with id toAccountID. Validation failures are detected before the atomic
// scope and write nothing; a failure inside the scope rolls the money
// movement back and is still recorded as one failed ledger row.
func (e *Engine) Transfer(userID, toAccountID string, amountCent int64) (*models.Transaction, error) {
	if amountCent <= 0 {
		return nil, ErrInvalidAmount
	}

	from, err := e.accounts.ByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("resolve source account: %w", err)
	}
	to, err := e.accounts.ByID(toAccountID)
	if err != nil {
		return nil, fmt.Errorf("resolve destination account: %w", err)
	}
	if from == nil || to == nil {
		return nil, ErrAccountNotFound
	}
	if from.BalanceCent < amountCent {
		return nil, ErrInsufficientBalance
	}

	txn, err := e.moveFunds(from.ID, to.ID, amountCent, models.TypeTransfer, models.StatusCompleted, nil)
	if err != nil {
		e.recordFailure(from.ID, to.ID, amountCent, models.TypeTransfer, nil)
		return nil, fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}
	return txn, nil
}

// Reverse undoes a completed transaction: it moves the amount back and
// appends a refund row pointing at the original. A transaction can be
// reversed at most once.
func (e *Engine) Reverse(transactionID string) (*models.Transaction, error) {
	var orig models.Transaction
	err := e.db.First(&orig, "id = ?", transactionID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve transaction: %w", err)
	}
	if orig.Status != models.StatusCompleted {
		return nil, ErrNotReversible
	}

	var reversals int64
	err = e.db.Model(&models.Transaction{}).
		Where("reversed_transaction_id = ? AND status = ?", transactionID, models.StatusReversed).
		Count(&reversals).Error
	if err != nil {
		return nil, fmt.Errorf("check prior reversal: %w", err)
	}
	if reversals > 0 {
		return nil, ErrAlreadyReversed
	}

	from, err := e.accounts.ByID(orig.FromAccountID)
	if err != nil {
		return nil, fmt.Errorf("resolve source account: %w", err)
	}
	to, err := e.accounts.ByID(orig.ToAccountID)
	if err != nil {
		return nil, fmt.Errorf("resolve destination account: %w", err)
	}
	if from == nil || to == nil {
		return nil, ErrAccountNotFound
	}
	// the refund debits the original destination; it must still hold the
	// funds, except for a deposit reversal where debit and credit cancel
	if from.ID != to.ID && to.BalanceCent < orig.AmountCent {
		return nil, ErrInsufficientBalance
	}

	txn, err := e.moveFunds(to.ID, from.ID, orig.AmountCent, models.TypeRefund, models.StatusReversed, &orig.ID)
	if err != nil {
		if errors.Is(err, ErrAlreadyReversed) {
			// lost the race against a concurrent reversal: validation
			// failure, not an attempt worth a failed row
			return nil, ErrAlreadyReversed
		}
		e.recordFailure(to.ID, from.ID, orig.AmountCent, models.TypeRefund, &orig.ID)
		return nil, fmt.Errorf("%w: %v", ErrReversalFailed, err)
	}
	return txn, nil
}

// moveFunds debits fromID, credits toID and appends the ledger row, all in
// one store transaction. Balances are re-read and re-checked inside the scope
// so a concurrent spend between validation and commit cannot drive one
// negative.
func (e *Engine) moveFunds(fromID, toID string, amountCent int64, txnType, status string, reversedID *string) (*models.Transaction, error) {
	var txn *models.Transaction
	err := e.db.Transaction(func(tx *gorm.DB) error {
		// at-most-one reversal must hold at commit time, not just at the
		// pre-check, so re-verify inside the scope
		if reversedID != nil {
			var prior int64
			err := tx.Model(&models.Transaction{}).
				Where("reversed_transaction_id = ? AND status = ?", *reversedID, models.StatusReversed).
				Count(&prior).Error
			if err != nil {
				return err
			}
			if prior > 0 {
				return ErrAlreadyReversed
			}
		}

		// when from and to are the same account (reversing a deposit) the
		// debit and credit cancel out: only the ledger row is appended
		if fromID != toID {
			from, err := fetchAccount(tx, fromID)
			if err != nil {
				return err
			}
			to, err := fetchAccount(tx, toID)
			if err != nil {
				return err
			}

			if from.BalanceCent < amountCent {
				return ErrInsufficientBalance
			}
			if err := setBalance(tx, from.ID, from.BalanceCent-amountCent); err != nil {
				return err
			}
			if err := setBalance(tx, to.ID, to.BalanceCent+amountCent); err != nil {
				return err
			}
		}

		t := &models.Transaction{
			FromAccountID:         fromID,
			ToAccountID:           toID,
			AmountCent:            amountCent,
			Type:                  txnType,
			Status:                status,
			ReversedTransactionID: reversedID,
		}
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		txn = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// recordFailure appends a failed ledger row after the atomic scope has rolled
// back, so the attempt stays visible in the audit trail. Best effort: a
// failure here is logged, not surfaced, since the operation already failed.
func (e *Engine) recordFailure(fromID, toID string, amountCent int64, txnType string, reversedID *string) {
	t := &models.Transaction{
		FromAccountID:         fromID,
		ToAccountID:           toID,
		AmountCent:            amountCent,
		Type:                  txnType,
		Status:                models.StatusFailed,
		ReversedTransactionID: reversedID,
	}
	if err := e.db.Create(t).Error; err != nil {
		log.Printf("record failed %s row: %v", txnType, err)
	}
}

func fetchAccount(tx *gorm.DB, id string) (*models.Account, error) {
	var account models.Account
	if err := tx.First(&account, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("fetch account %s: %w", id, err)
	}
	return &account, nil
}

func setBalance(tx *gorm.DB, accountID string, balanceCent int64) error {
	err := tx.Model(&models.Account{}).
		Where("id = ?", accountID).
		Update("balance_cent", balanceCent).Error
	if err != nil {
		return fmt.Errorf("update balance of %s: %w", accountID, err)
	}
	return nil
}

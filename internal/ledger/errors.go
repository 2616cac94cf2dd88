package ledger

import "errors"

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAlreadyReversed     = errors.New("transaction already reversed")
	ErrNotReversible       = errors.New("only completed transactions can be reversed")
	ErrDepositFailed       = errors.New("deposit failed")
	ErrTransferFailed      = errors.New("transfer failed")
	ErrReversalFailed      = errors.New("reversal failed")
)

package ledger

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrBudgetNotConfigured = errors.New("no budget has been configured yet, set up your monthly budget first")
	ErrExpenseNotFound     = errors.New("there is no expense with this ID")
	ErrAdjustmentNotFound  = errors.New("there is no adjustment with this ID")
	ErrInsufficientBalance = errors.New("the amount exceeds the available balance")
)

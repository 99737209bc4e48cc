package savings

import (
	"errors"

	"github.com/budget-buddy/backend/internal/ledger"
)

var (
	ErrInvalidInput        = ledger.ErrInvalidInput
	ErrInsufficientBalance = ledger.ErrInsufficientBalance
	ErrInsufficientSavings = errors.New("the amount exceeds your savings")
	ErrGoalNotFound        = errors.New("there is no goal with this ID")
	ErrGoalAchieved        = errors.New("this goal has already been achieved")
)

package httputil

import (
	"github.com/budget-buddy/backend/internal/ledger"
	"github.com/budget-buddy/backend/internal/savings"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers the custom validators with the gin binding engine.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("category", validateCategory)
		_ = v.RegisterValidation("goal_category", validateGoalCategory)
	}
}

func validateCategory(fl validator.FieldLevel) bool {
	return ledger.Category(fl.Field().String()).Valid()
}

func validateGoalCategory(fl validator.FieldLevel) bool {
	return savings.GoalCategory(fl.Field().String()).Valid()
}

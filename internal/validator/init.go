package validator

import (
	"ctchen222/tictactoe-cli/internal/game"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// mark accepts the two player marks only, never a tile label.
	if err := validate.RegisterValidation("mark", func(fl validator.FieldLevel) bool {
		return game.PlayerMark(fl.Field().String()).IsMark()
	}); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

package purple

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bgallie/purple/cryptors/plugboard"
)

var validate = mustNewValidator()

func newValidator() (*validator.Validate, error) {
	v := validator.New()
	if err := v.RegisterValidation("alphabet", validateAlphabet); err != nil {
		return nil, err
	}
	if err := v.RegisterValidation("passthrough", validatePassThrough); err != nil {
		return nil, err
	}
	return v, nil
}

func mustNewValidator() *validator.Validate {
	v, err := newValidator()
	if err != nil {
		panic(err)
	}
	return v
}

func validateAlphabet(fl validator.FieldLevel) bool {
	return plugboard.Validate(fl.Field().String()) == nil
}

// Letters would be enciphered before they could pass through.
func validatePassThrough(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(strings.ToUpper(fl.Field().String()), func(r rune) bool {
		return r >= 'A' && r <= 'Z'
	})
}

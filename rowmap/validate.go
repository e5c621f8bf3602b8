package rowmap

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// ValidEmail reports whether s is a non-empty, well-formed email address.
func ValidEmail(s string) bool {
	return validatorInstance().Var(s, "required,email") == nil
}

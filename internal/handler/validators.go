package handler

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	slugPattern    = regexp.MustCompile(`^[a-z0-9-]+$`)
	trPhonePattern = regexp.MustCompile(`^(\+90|0)?5[0-9]{9}$`)
)

// RegisterValidators attaches the custom validation tags used by the
// request payloads to Gin's binding engine. Safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected gin validator engine")
	}

	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}

	// Turkish mobile numbers, with separators tolerated.
	return v.RegisterValidation("trphone", func(fl validator.FieldLevel) bool {
		cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(fl.Field().String())
		return trPhonePattern.MatchString(cleaned)
	})
}

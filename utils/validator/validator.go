package validatorx

import (
	"regexp"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

var (
	// Philippine mobile number: 09 followed by exactly 9 digits.
	phMobileRegex = regexp.MustCompile(`^09\d{9}$`)
	// local@domain.tld shape; requires a dot in the domain part.
	emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()

	_ = v.RegisterValidation("phmobile", func(fl gpvalidator.FieldLevel) bool {
		return phMobileRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("emailshape", func(fl gpvalidator.FieldLevel) bool {
		return emailShapeRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl gpvalidator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// FirstFieldError returns the field name of the first failing rule, or empty
// when err is not a validator error. Fields validate in struct order, so the
// first entry is the first rule that failed.
func FirstFieldError(err error) string {
	verrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return ""
	}
	return verrs[0].Field()
}

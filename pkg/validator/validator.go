package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Uzbek national phone format: +998 followed by 9 digits, 13 characters total.
var phoneNumberRegexp = regexp.MustCompile(`^\+998\d{9}$`)

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		err := v.RegisterValidation("phonenumber", phoneNumberValidator)
		if err != nil {
			log.Fatal("register phonenumber validator failed")
		}
	}
}

// IsPhoneNumber reports whether value is a valid national phone number.
func IsPhoneNumber(value string) bool {
	return phoneNumberRegexp.MatchString(value)
}

var phoneNumberValidator validator.Func = func(fl validator.FieldLevel) bool {
	return IsPhoneNumber(fl.Field().String())
}

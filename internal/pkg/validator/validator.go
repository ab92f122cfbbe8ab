package validator

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// floatPattern accepts plain decimal and exponent notation and rejects
// hex floats, NaN and Inf, which strconv.ParseFloat would otherwise allow.
var floatPattern = regexp.MustCompile(`^[-+]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][-+]?[0-9]+)?$`)

func init() {
	validate = validator.New()

	// Field names in errors come from the `param` tag.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("param"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	_ = validate.RegisterValidation("floating", isFloating)
	_ = validate.RegisterValidation("integer", isInteger)
}

// FieldError describes one failed field check.
type FieldError struct {
	Value    interface{} `json:"value,omitempty"`
	Msg      string      `json:"msg"`
	Param    string      `json:"param"`
	Location string      `json:"location"`
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// Describe converts a validation error for s into field descriptors.
// messages is keyed by "<param>.<tag>"; checks without an entry fall back to
// the validator's own text. A nil error yields nil.
func Describe(err error, s interface{}, messages map[string]string) []FieldError {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []FieldError{{Msg: err.Error()}}
	}

	structType := reflect.TypeOf(s)
	for structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}

	result := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Error()
		}

		location := ""
		if field, found := structType.FieldByName(fe.StructField()); found {
			location = field.Tag.Get("location")
		}

		result = append(result, FieldError{
			Value:    fieldValue(fe.Value()),
			Msg:      msg,
			Param:    fe.Field(),
			Location: location,
		})
	}
	return result
}

func fieldValue(v interface{}) interface{} {
	if p, ok := v.(*string); ok {
		if p == nil {
			return nil
		}
		return *p
	}
	return v
}

func isFloating(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !floatPattern.MatchString(s) {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func isInteger(fl validator.FieldLevel) bool {
	_, err := strconv.Atoi(fl.Field().String())
	return err == nil
}

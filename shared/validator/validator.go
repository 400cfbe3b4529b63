package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"slices"
	"smeraldo/shared/failure"
	"time"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

var dateYMDPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// registerDateYMDValidation accepts calendar dates in YYYY-MM-DD form only.
func registerDateYMDValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	if !dateYMDPattern.MatchString(str) {
		return false
	}

	_, err := time.Parse("2006-01-02", str)

	return err == nil
}

// registerShiftValueValidation restricts attendance shift values to the four
// half-day quanta the hotel uses.
func registerShiftValueValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(float64)
	if !ok {
		return false
	}

	return slices.Contains([]float64{0, 0.5, 1, 1.5}, value)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("dateymd", registerDateYMDValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("shiftvalue", registerShiftValueValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// Package validation checks request payloads and describes the problems
// found in the format returned with 422 responses.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const notNullMessage = "Value error, If field is set, it cannot be null"

// FieldError describes a single invalid field of a request
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// Errors is returned by Struct when a payload fails validation
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fmt.Sprintf("%s: %s", strings.Join(fe.Loc, "."), fe.Msg)
	}
	return strings.Join(msgs, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates s using its `validate` tags. It returns Errors when s is invalid.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	errs := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, describe(fe))
	}
	return errs
}

// NotNull reports a field which was explicitly sent as null but cannot be cleared
func NotNull(field string) FieldError {
	return FieldError{
		Loc:  []string{"body", field},
		Msg:  notNullMessage,
		Type: "value_error",
	}
}

// InvalidBody reports a request whose body could not be decoded
func InvalidBody(err error) Errors {
	return Errors{{
		Loc:  []string{"body"},
		Msg:  fmt.Sprintf("Invalid request body: %s", err),
		Type: "body_error",
	}}
}

func describe(fe validator.FieldError) FieldError {
	res := FieldError{Loc: []string{"body", fe.Field()}}

	switch fe.Tag() {
	case "required":
		res.Msg, res.Type = "Field required", "missing"
	case "email":
		res.Msg, res.Type = "value is not a valid email address", "value_error"
	case "max":
		res.Msg, res.Type = fmt.Sprintf("String should have at most %s characters", fe.Param()), "string_too_long"
	case "min":
		res.Msg, res.Type = fmt.Sprintf("String should have at least %s characters", fe.Param()), "string_too_short"
	case "oneof":
		options := strings.Fields(fe.Param())
		for i, o := range options {
			options[i] = "'" + o + "'"
		}
		res.Msg, res.Type = "Input should be "+strings.Join(options, " or "), "enum"
	default:
		res.Msg, res.Type = fmt.Sprintf("Value error, failed on the '%s' rule", fe.Tag()), "value_error"
	}
	return res
}

// NormalizeEmail lowercases the domain part of an email address. The local part is kept as sent.
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

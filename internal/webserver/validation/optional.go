package validation

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Optional is a JSON field which keeps track of whether it was present in the
// payload, so partial updates can tell "not sent" apart from "sent as null".
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// Null reports whether the field was sent with no value
func (o Optional[T]) Null() bool {
	return o.Set && o.Value == nil
}

// Some builds an Optional holding v
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// BlankAsNull turns a sent empty or whitespace-only string into null
func BlankAsNull(o Optional[string]) Optional[string] {
	if o.Value != nil && strings.TrimSpace(*o.Value) == "" {
		o.Value = nil
	}
	return o
}

// NilIfBlank returns nil for empty strings
func NilIfBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// String checks a partially updated string field. Blank values count as null,
// which is only accepted when the field is nullable.
func String(field string, o Optional[string], max int, nullable bool) Errors {
	o = BlankAsNull(o)
	if !o.Set {
		return nil
	}
	if o.Value == nil {
		if nullable {
			return nil
		}
		return Errors{NotNull(field)}
	}
	if max > 0 && utf8.RuneCountInString(*o.Value) > max {
		return Errors{{
			Loc:  []string{"body", field},
			Msg:  fmt.Sprintf("String should have at most %d characters", max),
			Type: "string_too_long",
		}}
	}
	return nil
}

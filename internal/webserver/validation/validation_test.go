package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlist/wanderlist/internal/webserver/validation"
)

type payload struct {
	Name     string   `json:"name" validate:"required,max=5"`
	Email    string   `json:"email" validate:"omitempty,email"`
	Status   string   `json:"status" validate:"omitempty,oneof=accepted rejected"`
	Contacts []string `json:"contacts" validate:"omitempty,dive,email"`
}

func TestStruct(t *testing.T) {
	var cases = []struct {
		name     string
		payload  payload
		expected validation.Errors
	}{
		{"Valid payload passes", payload{Name: "Rome"}, nil},
		{
			"Missing mandatory field is reported by its JSON name",
			payload{},
			validation.Errors{{Loc: []string{"body", "name"}, Msg: "Field required", Type: "missing"}},
		},
		{
			"Too long strings are reported",
			payload{Name: "Barcelona"},
			validation.Errors{{Loc: []string{"body", "name"}, Msg: "String should have at most 5 characters", Type: "string_too_long"}},
		},
		{
			"Malformed emails are reported",
			payload{Name: "Rome", Email: "not-an-email"},
			validation.Errors{{Loc: []string{"body", "email"}, Msg: "value is not a valid email address", Type: "value_error"}},
		},
		{
			"Enumerations list the accepted values",
			payload{Name: "Rome", Status: "maybe"},
			validation.Errors{{Loc: []string{"body", "status"}, Msg: "Input should be 'accepted' or 'rejected'", Type: "enum"}},
		},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			err := validation.Struct(tcase.payload)
			if tcase.expected == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tcase.expected, err)
		})
	}
}

func TestStructReportsSliceElements(t *testing.T) {
	err := validation.Struct(payload{Name: "Rome", Contacts: []string{"a@b.com", "nope"}})

	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, []string{"body", "contacts[1]"}, errs[0].Loc)
}

func TestOptional(t *testing.T) {
	type update struct {
		Name  validation.Optional[string] `json:"name"`
		Notes validation.Optional[string] `json:"notes"`
	}

	var cases = []struct {
		name      string
		body      string
		nameSet   bool
		nameNull  bool
		notesSet  bool
		notesNull bool
	}{
		{"Absent keys are not set", `{}`, false, false, false, false},
		{"Null keys are set and null", `{"name": null}`, true, true, false, false},
		{"Values are set and not null", `{"name": "Lisbon", "notes": null}`, true, false, true, true},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			var u update
			require.NoError(t, json.Unmarshal([]byte(tcase.body), &u))

			assert.Equal(t, tcase.nameSet, u.Name.Set)
			assert.Equal(t, tcase.nameNull, u.Name.Null())
			assert.Equal(t, tcase.notesSet, u.Notes.Set)
			assert.Equal(t, tcase.notesNull, u.Notes.Null())
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	var cases = []struct {
		email    string
		expected string
	}{
		{"jane@example.com", "jane@example.com"},
		{"Jane.Doe@Example.COM", "Jane.Doe@example.com"},
		{"\"a@b\"@EXAMPLE.org", "\"a@b\"@example.org"},
		{"no-at-sign", "no-at-sign"},
	}

	for _, tcase := range cases {
		t.Run(tcase.email, func(t *testing.T) {
			assert.Equal(t, tcase.expected, validation.NormalizeEmail(tcase.email))
		})
	}
}

func TestBlankAsNull(t *testing.T) {
	assert.True(t, validation.BlankAsNull(validation.Some("")).Null())
	assert.True(t, validation.BlankAsNull(validation.Some("  ")).Null())
	assert.False(t, validation.BlankAsNull(validation.Some("Porto")).Null())
	assert.False(t, validation.BlankAsNull(validation.Optional[string]{}).Set)
}

func TestString(t *testing.T) {
	var cases = []struct {
		name     string
		value    validation.Optional[string]
		nullable bool
		expected validation.Errors
	}{
		{"Absent fields are accepted", validation.Optional[string]{}, false, nil},
		{"Values within the limit are accepted", validation.Some("Kyoto"), false, nil},
		{"Null is accepted on nullable fields", validation.Optional[string]{Set: true}, true, nil},
		{"Blank is accepted on nullable fields", validation.Some(""), true, nil},
		{
			"Null is rejected on mandatory fields",
			validation.Optional[string]{Set: true},
			false,
			validation.Errors{validation.NotNull("name")},
		},
		{
			"Blank is rejected on mandatory fields",
			validation.Some(""),
			false,
			validation.Errors{{Loc: []string{"body", "name"}, Msg: "Value error, If field is set, it cannot be null", Type: "value_error"}},
		},
		{
			"Values over the limit are rejected",
			validation.Some("Kyoto in autumn"),
			false,
			validation.Errors{{Loc: []string{"body", "name"}, Msg: "String should have at most 10 characters", Type: "string_too_long"}},
		},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			assert.Equal(t, tcase.expected, validation.String("name", tcase.value, 10, tcase.nullable))
		})
	}
}

package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string   `json:"name" validate:"required"`
	Email string   `json:"email" validate:"required,email"`
	Tags  []string `json:"tags" validate:"min=1,dive,oneof=a b"`
	Skip  string   `json:"-" validate:"omitempty,len=2"`
}

var sampleMessages = Messages{
	"name.required": "Name is required",
	"email":         "Invalid email address",
	"tags.min":      "Pick at least one tag",
}

func TestStruct_Valid(t *testing.T) {
	errs := Struct(sample{Name: "n", Email: "a@x.com", Tags: []string{"a"}}, sampleMessages)
	assert.Nil(t, errs)
}

func TestStruct_ReportsJSONFieldNamesInOrder(t *testing.T) {
	errs := Struct(sample{}, sampleMessages)
	require.Len(t, errs, 3)

	assert.Equal(t, FieldError{Field: "name", Message: "Name is required"}, errs[0])
	assert.Equal(t, FieldError{Field: "email", Message: "Invalid email address"}, errs[1])
	assert.Equal(t, FieldError{Field: "tags", Message: "Pick at least one tag"}, errs[2])
}

func TestStruct_FieldFallbackMessage(t *testing.T) {
	errs := Struct(sample{Name: "n", Email: "not-an-email", Tags: []string{"a"}}, sampleMessages)
	msg, ok := errs.For("email")
	require.True(t, ok)
	assert.Equal(t, "Invalid email address", msg)
}

func TestStruct_DefaultMessageAndDedup(t *testing.T) {
	errs := Struct(sample{Name: "n", Email: "a@x.com", Tags: []string{"x", "y"}}, sampleMessages)

	require.Len(t, errs, 1)
	assert.Equal(t, "tags", errs[0].Field)
	assert.Equal(t, "tags is invalid (oneof)", errs[0].Message)
}

func TestErrors_Error(t *testing.T) {
	errs := Errors{{Field: "name", Message: "Name is required"}, {Field: "phone", Message: "Phone number is required"}}
	assert.Equal(t, "name: Name is required; phone: Phone number is required", errs.Error())

	_, ok := errs.For("email")
	assert.False(t, ok)
}

type amount struct {
	Value float64 `json:"value" validate:"finite"`
	Label string  `json:"label" validate:"finite"`
}

func TestStruct_Finite(t *testing.T) {
	assert.Nil(t, Struct(amount{Value: 12.5, Label: "x"}, nil))

	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		errs := Struct(amount{Value: v}, Messages{"value.finite": "Value must be a finite number"})
		require.Len(t, errs, 1)
		assert.Equal(t, FieldError{Field: "value", Message: "Value must be a finite number"}, errs[0])
	}
}

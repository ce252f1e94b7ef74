package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleForm struct {
	Body   string `validate:"required"`
	Parent string `validate:"omitempty,uuid"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(sampleForm{Body: "hi"}))

	errs := ValidateStruct(sampleForm{Parent: "nope"})
	assert.Equal(t, map[string]string{
		"body":   "This field is required",
		"parent": "Must be a valid UUID",
	}, errs)
}

func TestFormatValidationErrors_SortedByField(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{
		"parent": "Must be a valid UUID",
		"body":   "This field is required",
	})
	assert.Equal(t, "body: This field is required; parent: Must be a valid UUID", msg)
}

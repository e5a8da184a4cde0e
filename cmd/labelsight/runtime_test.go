package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/labelsight/labelsight/pkg/validate"
)

func TestFormatErrSortsFields(t *testing.T) {
	err := formatErr(&validate.Error{Fields: map[string]string{
		"role":         "role must be one of ADMIN, EMPLOYEE",
		"email":        "email must be a valid email address",
		"name":         "name is required",
		"product_code": "product_code is required",
	}})

	want := "invalid input:" +
		"\n  email: email must be a valid email address" +
		"\n  name: name is required" +
		"\n  product_code: product_code is required" +
		"\n  role: role must be one of ADMIN, EMPLOYEE"
	assert.Equal(t, want, err.Error())

	// Stable across runs.
	again := formatErr(&validate.Error{Fields: map[string]string{
		"role":         "role must be one of ADMIN, EMPLOYEE",
		"email":        "email must be a valid email address",
		"name":         "name is required",
		"product_code": "product_code is required",
	}})
	assert.Equal(t, err.Error(), again.Error())
}

func TestFormatErrPassesOtherErrorsThrough(t *testing.T) {
	plain := errors.New("Resource Not Found (404)")
	assert.Same(t, plain, formatErr(plain))
}

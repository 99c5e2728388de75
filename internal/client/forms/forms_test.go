package forms

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johntran041/jobly-client/internal/client/models"
)

func TestValidate_ValidLogin(t *testing.T) {
	err := Validate(models.LoginRequest{Email: "a@example.com", Password: "pw"})
	require.NoError(t, err)
}

func TestValidate_InvalidEmail(t *testing.T) {
	err := Validate(models.LoginRequest{Email: "not-an-email", Password: "pw"})
	require.Error(t, err)

	var fieldErrs FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	require.Equal(t, "must be a valid email address", fieldErrs["email"])
}

func TestValidate_MissingFields(t *testing.T) {
	err := Validate(models.LoginRequest{})

	var fieldErrs FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	require.Equal(t, "is required", fieldErrs["email"])
	require.Equal(t, "is required", fieldErrs["password"])
}

func TestValidate_RegisterRoleOneOf(t *testing.T) {
	err := Validate(models.RegisterRequest{
		Email:    "a@example.com",
		Password: "secret1",
		Username: "alice",
		Role:     "WIZARD",
	})

	var fieldErrs FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	require.Equal(t, "must be one of: CANDIDATE, RECRUITER", fieldErrs["role"])
}

func TestValidate_RegisterShortPassword(t *testing.T) {
	err := Validate(models.RegisterRequest{
		Email:    "a@example.com",
		Password: "pw",
		Username: "alice",
		Role:     models.RoleCandidate,
	})

	var fieldErrs FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	require.Equal(t, "must be at least 6 characters", fieldErrs["password"])
}

func TestValidate_ProfileUpdate_OptionalFieldsMayBeEmpty(t *testing.T) {
	require.NoError(t, Validate(models.ProfileUpdate{}))
}

func TestValidate_ProfileUpdate_BadResumeURL(t *testing.T) {
	err := Validate(models.ProfileUpdate{Resume: "not a url"})

	var fieldErrs FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	require.Equal(t, "must be a valid URL", fieldErrs["resume"])
}

func TestValidate_ApplicationRequiresPositiveJobID(t *testing.T) {
	err := Validate(models.CreateApplicationRequest{})

	var fieldErrs FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	require.NotEmpty(t, fieldErrs["jobPostingID"])
}

func TestFieldErrors_ErrorIsSortedAndReadable(t *testing.T) {
	errs := FieldErrors{"b": "is required", "a": "must be a valid email address"}
	require.Equal(t, "a must be a valid email address; b is required", errs.Error())
}

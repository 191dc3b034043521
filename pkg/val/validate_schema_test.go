package val_test

import (
	"testing"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/filevault/pkg/val"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registrationSchema struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Secret   string `json:"secret"   validate:"required"`
}

type lookupSchema struct {
	UserID string `params:"user_id" validate:"required,uuid4"`
}

func TestValidateSchemaOK(t *testing.T) {
	err := val.ValidateSchema(&registrationSchema{Username: "alice", Secret: "pw123"})
	assert.NoError(t, err)
}

func TestValidateSchemaMissingFields(t *testing.T) {
	err := val.ValidateSchema(&registrationSchema{})
	require.Error(t, err)

	e := errx.AsErrorX(err)
	assert.Equal(t, val.CodeValidationFailed, e.Code())
	assert.Equal(t, errx.T_Validation, e.Type())

	fields := e.Fields()
	assert.Equal(t, "This field is required", fields["username"])
	assert.Equal(t, "This field is required", fields["secret"])
}

func TestValidateSchemaUsernameBounds(t *testing.T) {
	err := val.ValidateSchema(&registrationSchema{Username: "ab", Secret: "pw123"})
	require.Error(t, err)
	assert.Equal(t, "Must be at least 3 characters", errx.AsErrorX(err).Fields()["username"])

	long := "a-very-long-username-that-goes-past-thirty"
	err = val.ValidateSchema(&registrationSchema{Username: long, Secret: "pw123"})
	require.Error(t, err)
	assert.Equal(t, "Must be at most 30 characters", errx.AsErrorX(err).Fields()["username"])
}

func TestValidateSchemaUsesParamsTagName(t *testing.T) {
	err := val.ValidateSchema(&lookupSchema{UserID: "not-a-uuid"})
	require.Error(t, err)

	fields := errx.AsErrorX(err).Fields()
	assert.Equal(t, "Must be a valid UUID", fields["user_id"])
}

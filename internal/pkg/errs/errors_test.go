package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("name")

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "name")
}

func TestValueIsInvalidError_WithCause(t *testing.T) {
	cause := errors.New("parse failed")
	err := errs.NewValueIsInvalidErrorWithCause("status", cause)

	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "status")
	assert.Contains(t, err.Error(), "parse failed")
}

func TestValueIsOutOfRangeError(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("limit", -5)

	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "limit")
	assert.Contains(t, err.Error(), "-5")
}

func TestObjectNotFoundError(t *testing.T) {
	err := errs.NewObjectNotFoundError("order", int64(42))

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Contains(t, err.Error(), "order")
	assert.Contains(t, err.Error(), "42")
}

func TestErrors_SurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading aggregate: %w", errs.NewObjectNotFoundError("member", int64(7)))

	require.ErrorIs(t, wrapped, errs.ErrObjectNotFound)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, wrapped, &notFound)
	assert.Equal(t, "member", notFound.ObjectName)
}

package guard_test

import (
	"errors"
	"testing"

	"shop/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Constructed(t *testing.T) {
	g := guard.NewConstructorGuard()
	require.NoError(t, g.Validate(errors.New("should not surface")))
}

func TestConstructorGuard_ZeroValue(t *testing.T) {
	var g guard.ConstructorGuard
	validationErr := errors.New("must use constructor")

	err := g.Validate(validationErr)
	require.Error(t, err)
	assert.ErrorIs(t, err, validationErr)
}

func TestConstructorGuard_ZeroValue_DefaultError(t *testing.T) {
	var g guard.ConstructorGuard

	err := g.Validate(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
}

package kernel_test

import (
	"testing"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress_ValidInput(t *testing.T) {
	address, err := kernel.NewAddress("Seoul", "Teheran-ro 1", "04524")
	require.NoError(t, err)
	assert.Equal(t, "Seoul", address.City())
	assert.Equal(t, "Teheran-ro 1", address.Street())
	assert.Equal(t, "04524", address.Zipcode())
}

func TestNewAddress_BlankFields(t *testing.T) {
	tests := []struct {
		name    string
		city    string
		street  string
		zipcode string
	}{
		{"empty city", "", "Teheran-ro 1", "04524"},
		{"empty street", "Seoul", "", "04524"},
		{"empty zipcode", "Seoul", "Teheran-ro 1", ""},
		{"all empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := kernel.NewAddress(tt.city, tt.street, tt.zipcode)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}

func TestAddress_IsEqual(t *testing.T) {
	first, err := kernel.NewAddress("Seoul", "Teheran-ro 1", "04524")
	require.NoError(t, err)
	second, err := kernel.NewAddress("Seoul", "Teheran-ro 1", "04524")
	require.NoError(t, err)
	third, err := kernel.NewAddress("Busan", "Haeundae-ro 2", "48094")
	require.NoError(t, err)

	assert.True(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(third))
}

func TestAddress_Validate_NotConstructed(t *testing.T) {
	var address kernel.Address
	require.Error(t, address.Validate())
}

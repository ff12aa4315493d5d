package member_test

import (
	"testing"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMember(t *testing.T) {
	address, err := kernel.NewAddress("Seoul", "Teheran-ro 1", "04524")
	require.NoError(t, err)

	m, err := member.NewMember("kim", address)
	require.NoError(t, err)

	assert.Equal(t, int64(0), m.ID())
	assert.Equal(t, "kim", m.Name())
	assert.True(t, m.Address().IsEqual(address))
}

func TestNewMember_EmptyName(t *testing.T) {
	address, err := kernel.NewAddress("Seoul", "Teheran-ro 1", "04524")
	require.NoError(t, err)

	_, err = member.NewMember("", address)
	require.Error(t, err)
}

func TestMember_AssignID(t *testing.T) {
	address, err := kernel.NewAddress("Seoul", "Teheran-ro 1", "04524")
	require.NoError(t, err)

	m, err := member.NewMember("kim", address)
	require.NoError(t, err)

	require.NoError(t, m.AssignID(1))
	assert.Equal(t, int64(1), m.ID())
	require.Error(t, m.AssignID(2))
}

func TestRestoreMember(t *testing.T) {
	address, err := kernel.NewAddress("Busan", "Haeundae-ro 2", "48094")
	require.NoError(t, err)

	m, err := member.RestoreMember(9, "lee", address)
	require.NoError(t, err)
	assert.Equal(t, int64(9), m.ID())
	assert.Equal(t, "lee", m.Name())

	_, err = member.RestoreMember(0, "lee", address)
	require.Error(t, err)
}

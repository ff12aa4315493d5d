package queries_test

import (
	"testing"

	"shop/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFetchMode(t *testing.T) {
	tests := []struct {
		wire string
		want queries.FetchMode
	}{
		{"raw-entity", queries.FetchRawEntity},
		{"to-one-joined", queries.FetchToOneJoined},
		{"full-collection-joined", queries.FetchFullCollectionJoined},
		{"to-one-joined-batch", queries.FetchToOneJoinedBatch},
		{"projection-per-root", queries.FetchProjectionPerRoot},
		{"projection-batched", queries.FetchProjectionBatched},
		{"flat", queries.FetchFlat},
	}

	for _, tt := range tests {
		t.Run(tt.wire, func(t *testing.T) {
			mode, err := queries.ParseFetchMode(tt.wire)
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
			assert.Equal(t, tt.wire, mode.String())
		})
	}
}

func TestParseFetchMode_Invalid(t *testing.T) {
	_, err := queries.ParseFetchMode("eager")
	require.Error(t, err)

	_, err = queries.ParseFetchMode("")
	require.Error(t, err)
}

func TestFetchMode_SupportsPaging(t *testing.T) {
	assert.True(t, queries.FetchRawEntity.SupportsPaging())
	assert.True(t, queries.FetchToOneJoined.SupportsPaging())
	assert.True(t, queries.FetchToOneJoinedBatch.SupportsPaging())
	assert.True(t, queries.FetchProjectionPerRoot.SupportsPaging())
	assert.True(t, queries.FetchProjectionBatched.SupportsPaging())

	assert.False(t, queries.FetchFullCollectionJoined.SupportsPaging())
	assert.False(t, queries.FetchFlat.SupportsPaging())
}

func TestFetchMode_Shape(t *testing.T) {
	assert.Equal(t, queries.ShapeEntity, queries.FetchRawEntity.Shape())
	assert.Equal(t, queries.ShapeEntity, queries.FetchToOneJoined.Shape())
	assert.Equal(t, queries.ShapeEntity, queries.FetchFullCollectionJoined.Shape())
	assert.Equal(t, queries.ShapeEntity, queries.FetchToOneJoinedBatch.Shape())
	assert.Equal(t, queries.ShapeView, queries.FetchProjectionPerRoot.Shape())
	assert.Equal(t, queries.ShapeView, queries.FetchProjectionBatched.Shape())
	assert.Equal(t, queries.ShapeFlat, queries.FetchFlat.Shape())
}

func TestFetchMode_Validate(t *testing.T) {
	require.NoError(t, queries.FetchFlat.Validate())
	require.Error(t, queries.UnknownFetchMode.Validate())
}

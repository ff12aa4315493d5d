package order_test

import (
	"testing"

	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	status, err := order.ParseStatus("Ordered")
	require.NoError(t, err)
	assert.Equal(t, order.Ordered, status)

	status, err = order.ParseStatus("Cancelled")
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, status)

	_, err = order.ParseStatus("Shipped")
	require.Error(t, err)

	_, err = order.ParseStatus("")
	require.Error(t, err)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Ordered", order.Ordered.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Ordered.Validate())
	require.NoError(t, order.Cancelled.Validate())
	require.Error(t, order.UnknownStatus.Validate())
}

func TestParseDeliveryStatus(t *testing.T) {
	status, err := order.ParseDeliveryStatus("Ready")
	require.NoError(t, err)
	assert.Equal(t, order.Ready, status)

	status, err = order.ParseDeliveryStatus("Completed")
	require.NoError(t, err)
	assert.Equal(t, order.Completed, status)

	_, err = order.ParseDeliveryStatus("InFlight")
	require.Error(t, err)
}

func TestDeliveryStatus_Complete(t *testing.T) {
	status := order.Ready
	next, err := status.Complete()
	require.NoError(t, err)
	assert.Equal(t, order.Completed, next)

	_, err = next.Complete()
	require.Error(t, err)
}

package orderlookup

import (
	"context"
	"testing"

	"returnwiz/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureService_Lookup_KnownOrder(t *testing.T) {
	svc := NewFixtureService()

	snapshot, err := svc.Lookup(context.Background(), "1001", "a@b.com")
	require.NoError(t, err)

	assert.Equal(t, "1001", snapshot.OrderNumber)
	assert.Equal(t, "a@b.com", snapshot.CustomerEmail)
	assert.Equal(t, "DKK", snapshot.Currency)
	require.Len(t, snapshot.Items, 2)
	assert.Equal(t, "Basic T-shirt", snapshot.Items[0].ProductName)
	assert.Equal(t, "Snapback Cap", snapshot.Items[1].ProductName)
}

func TestFixtureService_Lookup_EmailIsCaseInsensitive(t *testing.T) {
	svc := NewFixtureService()

	snapshot, err := svc.Lookup(context.Background(), "1001", "  A@B.COM ")
	require.NoError(t, err)
	assert.Equal(t, "1001", snapshot.OrderNumber)
}

func TestFixtureService_Lookup_NotFound(t *testing.T) {
	svc := NewFixtureService()

	tests := []struct {
		name        string
		orderNumber string
		email       string
	}{
		{name: "unknown order number", orderNumber: "9999", email: "a@b.com"},
		{name: "wrong email for order", orderNumber: "1001", email: "someone@else.com"},
		{name: "empty inputs", orderNumber: "", email: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Lookup(context.Background(), tt.orderNumber, tt.email)
			assert.ErrorIs(t, err, service.ErrOrderNotFound)
		})
	}
}

func TestFixtureService_Lookup_ReturnsCopy(t *testing.T) {
	svc := NewFixtureService()

	first, err := svc.Lookup(context.Background(), "1001", "a@b.com")
	require.NoError(t, err)
	first.Items[0].ProductName = "mutated"

	second, err := svc.Lookup(context.Background(), "1001", "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "Basic T-shirt", second.Items[0].ProductName)
}

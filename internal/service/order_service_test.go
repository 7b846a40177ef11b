package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateOrderStatusRejectsEmptyStatus(t *testing.T) {
	os := &OrderService{}

	// Validation runs before any store access.
	ok, msg := os.UpdateOrderStatus(context.Background(), 101, "", "admin", "")
	assert.False(t, ok)
	assert.Equal(t, "Status is required", msg)

	ok, msg = os.UpdateOrderStatus(context.Background(), 101, "   ", "admin", "")
	assert.False(t, ok)
	assert.Equal(t, "Status is required", msg)
}

func TestUpdateOrderStatusAgainstDatabase(t *testing.T) {
	// This would require mocking the store
	// Placeholder for demonstration
	t.Skip("Requires mocked store")
}

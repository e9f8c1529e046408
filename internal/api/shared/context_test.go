package shared

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserIDContext(t *testing.T) {
	_, ok := GetUserID(context.Background())
	assert.False(t, ok, "empty context must carry no user ID")

	id := uuid.New()
	ctx := WithUserID(context.Background(), id)

	got, ok := GetUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)

	// A nil UUID does not count as an authenticated user.
	_, ok = GetUserID(WithUserID(context.Background(), uuid.Nil))
	assert.False(t, ok)
}

func TestUserRoleContext(t *testing.T) {
	assert.Empty(t, GetUserRole(context.Background()))

	ctx := WithUserRole(context.Background(), "USER")
	assert.Equal(t, "USER", GetUserRole(ctx))
}

func TestTraceIDContext(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))

	ctx := WithTraceID(context.Background(), "trace-123")
	assert.Equal(t, "trace-123", GetTraceID(ctx))
}

package scope

import (
	"context"
	"testing"

	"report-srv/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestNewScope(t *testing.T) {
	sc := NewScope(Payload{Subject: "u-7", Username: "amina", Role: "admin"})
	assert.Equal(t, model.Scope{UserID: "u-7", Username: "amina", Role: "admin"}, sc)

	sc = NewScope(Payload{UserID: "u-1", Subject: "u-7"})
	assert.Equal(t, "u-1", sc.UserID)
}

func TestContext(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, Anonymous(), GetScopeFromContext(ctx))
	_, ok := GetPayloadFromContext(ctx)
	assert.False(t, ok)

	p := Payload{UserID: "u-1", Role: "admin"}
	ctx = SetPayloadToContext(ctx, p)
	ctx = SetScopeToContext(ctx, NewScope(p))

	got, ok := GetPayloadFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, p, got)
	assert.Equal(t, "u-1", GetScopeFromContext(ctx).UserID)
}

package scope

import (
	"context"

	"report-srv/internal/model"
)

// Payload is the verified content of an access token.
type Payload struct {
	UserID    string
	Username  string
	Role      string
	Subject   string
	ExpiresAt int64
	IssuedAt  int64
}

// Manager verifies access tokens.
type Manager interface {
	Verify(token string) (Payload, error)
}

type payloadKey struct{}
type scopeKey struct{}

// NewScope creates a new scope.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}

	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}

// Anonymous is the scope used when a request carries no token.
func Anonymous() model.Scope {
	return model.Scope{UserID: model.AnonymousUserID, Role: model.RoleGuest}
}

func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadKey{}, payload)
}

func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	p, ok := ctx.Value(payloadKey{}).(Payload)
	return p, ok
}

func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the request scope, or the anonymous scope when none was set.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(scopeKey{}).(model.Scope)
	if !ok {
		return Anonymous()
	}
	return sc
}

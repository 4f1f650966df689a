package session

import (
	"context"
	"errors"
)

// ErrNotInScope is returned when no session was installed into the context.
var ErrNotInScope = errors.New("session: auth state accessed outside of session scope")

type ctxKey struct{}

// WithSession returns a child context that carries s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session installed by WithSession.
func FromContext(ctx context.Context) (*Session, error) {
	if ctx == nil {
		return nil, ErrNotInScope
	}
	s, ok := ctx.Value(ctxKey{}).(*Session)
	if !ok || s == nil {
		return nil, ErrNotInScope
	}
	return s, nil
}

// MustFromContext is like FromContext but panics when no session is in scope.
// A missing session is a wiring bug, not a runtime condition.
func MustFromContext(ctx context.Context) *Session {
	s, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return s
}

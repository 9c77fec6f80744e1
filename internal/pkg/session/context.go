// internal/pkg/session/context.go
package session

import "context"

type ctxKey struct{}

// NewContext attaches a session to a context. The upstream transport reads it
// back to decorate outbound requests.
func NewContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext returns the session attached to ctx, or nil.
func FromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(ctxKey{}).(*Session)
	return sess
}

package ctxutil

import (
	"context"
	"time"
)

// private key type to rule out collisions
type key int

const (
	keyUserID key = iota
	keyOpName
)

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, keyUserID, userID)
}

func UserID(ctx context.Context) (string, bool) {
	v := ctx.Value(keyUserID)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// WithOp tags the context with an operation name for logs.
func WithOp(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, keyOpName, name)
}

func Op(ctx context.Context) (string, bool) {
	v := ctx.Value(keyOpName)
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

var DefaultDBTimeout = 5 * time.Second

// WithDBTimeout caps the context at the standard DB timeout, keeping a
// shorter parent deadline if one is already set.
func WithDBTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if dl, ok := parent.Deadline(); ok {
		remain := time.Until(dl)
		if remain < DefaultDBTimeout {
			return context.WithTimeout(parent, remain)
		}
	}
	return context.WithTimeout(parent, DefaultDBTimeout)
}

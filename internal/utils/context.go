package utils

import "context"

// ContextValue returns the value under key when it has type T.
func ContextValue[T any](ctx context.Context, key any) (T, bool) {
	v, ok := ctx.Value(key).(T)
	return v, ok
}

package logging

import (
	"context"
)

// WrapCtx returns a child context whose logging context additionally holds
// key=val. The parent's logging context is copied, never mutated.
func WrapCtx(ctx context.Context, key, val string) context.Context {
	mapCtx := make(map[string]string)
	if original, ok := ctx.Value(CtxValLoggingContext).(map[string]string); ok {
		for k, v := range original {
			mapCtx[k] = v
		}
	}
	mapCtx[key] = val
	return context.WithValue(ctx, CtxValLoggingContext, mapCtx)
}

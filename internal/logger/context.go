package logger

import (
	"context"
	"log/slog"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	userIDKey    ctxKey = "user_id"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// FromContext enriches log records with request-scoped attributes when present.
func FromContext(ctx context.Context) *slog.Logger {
	return fromCtx(ctx)
}

func fromCtx(ctx context.Context) *slog.Logger {
	l := L()
	if ctx == nil {
		return l
	}
	if rid, ok := ctx.Value(requestIDKey).(string); ok && rid != "" {
		l = l.With("request_id", rid)
	}
	if uid, ok := ctx.Value(userIDKey).(string); ok && uid != "" {
		l = l.With("user_id", uid)
	}
	return l
}

func CtxDebug(ctx context.Context, msg string, args ...any) { fromCtx(ctx).Debug(msg, args...) }

// CtxWithError logs at error level with the error attached as an attribute.
func CtxWithError(ctx context.Context, msg string, err error, args ...any) {
	fromCtx(ctx).Error(msg, append([]any{"error", err}, args...)...)
}
func CtxInfo(ctx context.Context, msg string, args ...any)  { fromCtx(ctx).Info(msg, args...) }
func CtxWarn(ctx context.Context, msg string, args ...any)  { fromCtx(ctx).Warn(msg, args...) }
func CtxError(ctx context.Context, msg string, args ...any) { fromCtx(ctx).Error(msg, args...) }

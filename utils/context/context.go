package context

import (
	"context"

	"github.com/muhammadheryan/agri-market/constant"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok && id != 0
}

func WithUserID(ctx context.Context, userID uint64) context.Context {
	return context.WithValue(ctx, constant.UserIDKey, userID)
}

func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(constant.RequestIDKey).(string)
	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constant.RequestIDKey, requestID)
}

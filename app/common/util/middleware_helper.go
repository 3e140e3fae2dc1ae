package util

import (
	"context"

	"VestiAI/app/common/consts/biz"
)

// UserIdFromCtx returns the requester id injected by the api-key middleware.
// Empty means the caller is anonymous.
func UserIdFromCtx(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if val, ok := ctx.Value(biz.USER_KEY).(string); ok {
		return val
	}
	return ""
}

// RequestIdFromCtx returns the correlation id for the current request.
func RequestIdFromCtx(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if val, ok := ctx.Value(biz.REQUEST_KEY).(string); ok {
		return val
	}
	return ""
}

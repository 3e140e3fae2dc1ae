package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"VestiAI/app/common/consts/biz"
	"VestiAI/app/common/consts/errno"
	"VestiAI/app/common/snowflake"

	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

type ApiKeyMiddleware struct {
	apiKey string
}

func NewApiKeyMiddleware(apiKey string) *ApiKeyMiddleware {
	return &ApiKeyMiddleware{
		apiKey: apiKey,
	}
}

// Handle gates every request behind the pre-shared key and injects the
// requester id and correlation id into the request context. The correlation
// id is attached before the key check so even rejections carry it.
func (m *ApiKeyMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestId := strings.TrimSpace(r.Header.Get(biz.HeaderRequestId))
		if requestId == "" {
			requestId = snowflake.NextString()
		}
		w.Header().Set(biz.HeaderRequestId, requestId)

		ctx := context.WithValue(r.Context(), biz.REQUEST_KEY, requestId)
		if userId := strings.TrimSpace(r.Header.Get(biz.HeaderUserId)); userId != "" {
			ctx = context.WithValue(ctx, biz.USER_KEY, userId)
		}
		r = r.WithContext(ctx)

		key := r.Header.Get(biz.HeaderApiKey)
		if m.apiKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) != 1 {
			httpx.ErrorCtx(r.Context(), w, errors.New(errno.Unauthorized, "missing or invalid api key"))
			return
		}

		next(w, r)
	}
}

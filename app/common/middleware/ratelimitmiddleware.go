package middleware

import (
	"net/http"

	"VestiAI/app/common/consts/errno"
	"VestiAI/app/common/util"

	"github.com/zeromicro/go-zero/core/limit"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

type RateLimitMiddleware struct {
	limiter *limit.PeriodLimit
}

// NewRateLimitMiddleware wraps a go-zero period limiter. A nil limiter
// disables throttling entirely (no redis configured).
func NewRateLimitMiddleware(limiter *limit.PeriodLimit) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

func (m *RateLimitMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m.limiter == nil {
			next(w, r)
			return
		}

		key := util.UserIdFromCtx(r.Context())
		if key == "" {
			key = r.RemoteAddr
		}

		code, err := m.limiter.TakeCtx(r.Context(), key)
		if err != nil {
			// limiter backend failure never blocks traffic
			logx.WithContext(r.Context()).Errorf("rate limiter take failed: %v", err)
			next(w, r)
			return
		}
		if code == limit.OverQuota {
			httpx.ErrorCtx(r.Context(), w, errors.New(errno.TooManyRequests, "rate limit exceeded"))
			return
		}

		next(w, r)
	}
}

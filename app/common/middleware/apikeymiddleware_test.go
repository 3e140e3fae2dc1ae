package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"VestiAI/app/common/consts/biz"
	"VestiAI/app/common/response"
	"VestiAI/app/common/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func init() {
	httpx.SetErrorHandlerCtx(response.ErrorHandler)
}

func TestApiKeyRejectsMissingKey(t *testing.T) {
	called := false
	handler := NewApiKeyMiddleware("secret").Handle(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/api/closet", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
	assert.NotEmpty(t, w.Header().Get(biz.HeaderRequestId))
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestApiKeyRejectsWrongKey(t *testing.T) {
	handler := NewApiKeyMiddleware("secret").Handle(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/closet", nil)
	req.Header.Set(biz.HeaderApiKey, "wrong")
	w := httptest.NewRecorder()
	handler(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestApiKeyFailsClosedWithoutConfiguredKey(t *testing.T) {
	handler := NewApiKeyMiddleware("").Handle(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/closet", nil)
	req.Header.Set(biz.HeaderApiKey, "")
	w := httptest.NewRecorder()
	handler(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestApiKeyInjectsIdentity(t *testing.T) {
	var gotUser, gotRequest string
	handler := NewApiKeyMiddleware("secret").Handle(func(w http.ResponseWriter, r *http.Request) {
		gotUser = util.UserIdFromCtx(r.Context())
		gotRequest = util.RequestIdFromCtx(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/closet", nil)
	req.Header.Set(biz.HeaderApiKey, "secret")
	req.Header.Set(biz.HeaderUserId, "alice")
	req.Header.Set(biz.HeaderRequestId, "req-42")
	w := httptest.NewRecorder()
	handler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", gotUser)
	assert.Equal(t, "req-42", gotRequest)
	assert.Equal(t, "req-42", w.Header().Get(biz.HeaderRequestId))
}

func TestApiKeyGeneratesRequestId(t *testing.T) {
	var gotRequest string
	handler := NewApiKeyMiddleware("secret").Handle(func(w http.ResponseWriter, r *http.Request) {
		gotRequest = util.RequestIdFromCtx(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/closet", nil)
	req.Header.Set(biz.HeaderApiKey, "secret")
	w := httptest.NewRecorder()
	handler(w, req)

	assert.NotEmpty(t, gotRequest)
	assert.Equal(t, gotRequest, w.Header().Get(biz.HeaderRequestId))
}

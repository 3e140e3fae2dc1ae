package response

import (
	"context"
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// Body is the uniform success envelope.
type Body struct {
	Data interface{} `json:"data"`
}

// ErrorInfo is the client-visible error payload.
type ErrorInfo struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	RequestId string      `json:"requestId"`
}

// ErrorBody is the uniform failure envelope.
type ErrorBody struct {
	Error ErrorInfo `json:"error"`
}

// OkJson writes a 200 response wrapped in the data envelope.
func OkJson(ctx context.Context, w http.ResponseWriter, data interface{}) {
	httpx.WriteJsonCtx(ctx, w, http.StatusOK, Body{Data: data})
}

// Created writes a 201 response wrapped in the data envelope.
func Created(ctx context.Context, w http.ResponseWriter, data interface{}) {
	httpx.WriteJsonCtx(ctx, w, http.StatusCreated, Body{Data: data})
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RawJson writes a 200 response without the data envelope, for the few
// endpoints whose contract predates it (healthz, outfit archive).
func RawJson(ctx context.Context, w http.ResponseWriter, v interface{}) {
	httpx.WriteJsonCtx(ctx, w, http.StatusOK, v)
}

package response

import (
	"context"
	"errors"
	"net/http"

	"VestiAI/app/common/consts/errno"
	"VestiAI/app/common/util"

	"github.com/zeromicro/go-zero/core/logx"
	xerrors "github.com/zeromicro/x/errors"
)

// CodeError carries an errno code plus structured details for the envelope.
// Plain code/message errors use zeromicro/x errors.CodeMsg instead.
type CodeError struct {
	Code    int
	Msg     string
	Details interface{}
}

func (e *CodeError) Error() string {
	return e.Msg
}

// WithDetails builds a CodeError for failures that need a structured
// details payload, e.g. ITEMS_NOT_FOUND with {requested, found} counts.
func WithDetails(code int, msg string, details interface{}) error {
	return &CodeError{Code: code, Msg: msg, Details: details}
}

// ParamError wraps an httpx.Parse failure so the handler chain reports it
// as a schema violation rather than an internal error.
func ParamError(err error) error {
	return xerrors.New(errno.BadRequest, err.Error())
}

// ErrorHandler converts any error reaching the HTTP boundary into the
// uniform error envelope. Register with httpx.SetErrorHandlerCtx at startup.
func ErrorHandler(ctx context.Context, err error) (int, interface{}) {
	code := errno.InternalError
	msg := "internal error"
	var details interface{}

	var ce *CodeError
	var cm *xerrors.CodeMsg
	switch {
	case errors.As(err, &ce):
		code, msg, details = ce.Code, ce.Msg, ce.Details
	case errors.As(err, &cm):
		code, msg = cm.Code, cm.Msg
	default:
		// uncategorized: log the cause, keep the wire message generic
		logx.WithContext(ctx).Errorf("unhandled error: %v", err)
	}

	status, label := httpStatusOf(code)
	return status, ErrorBody{Error: ErrorInfo{
		Code:      label,
		Message:   msg,
		Details:   details,
		RequestId: util.RequestIdFromCtx(ctx),
	}}
}

func httpStatusOf(code int) (int, string) {
	switch code {
	case errno.Unauthorized:
		return http.StatusUnauthorized, "UNAUTHORIZED"
	case errno.BadRequest:
		return http.StatusBadRequest, "BAD_REQUEST"
	case errno.Forbidden:
		return http.StatusForbidden, "FORBIDDEN"
	case errno.TooManyRequests:
		return http.StatusTooManyRequests, "RATE_LIMITED"
	case errno.NoItems:
		return http.StatusBadRequest, "NO_ITEMS"
	case errno.ItemsNotFound:
		return http.StatusBadRequest, "ITEMS_NOT_FOUND"
	case errno.ItemNotFound:
		return http.StatusNotFound, "ITEM_NOT_FOUND"
	case errno.OutfitNotFound:
		return http.StatusNotFound, "OUTFIT_NOT_FOUND"
	case errno.OrderNotFound:
		return http.StatusNotFound, "ORDER_NOT_FOUND"
	case errno.StoreError:
		return http.StatusBadGateway, "STORE_ERROR"
	case errno.OpenAIError:
		return http.StatusBadGateway, "OPENAI_ERROR"
	case errno.AIJSONParseError:
		return http.StatusBadGateway, "AI_JSON_PARSE_ERROR"
	case errno.AIEmptyOutfits:
		return http.StatusBadGateway, "AI_EMPTY_OUTFITS"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

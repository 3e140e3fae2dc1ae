// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	logic "VestiAI/app/api/wardrobe/internal/logic/order"
	"VestiAI/app/api/wardrobe/internal/svc"
	"VestiAI/app/api/wardrobe/internal/types"
	"VestiAI/app/common/response"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func CreateOrderHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CreateOrderRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, response.ParamError(err))
			return
		}

		l := logic.NewCreateOrderLogic(r.Context(), svcCtx)
		resp, created, err := l.CreateOrder(&req)
		switch {
		case err != nil:
			httpx.ErrorCtx(r.Context(), w, err)
		case created:
			response.Created(r.Context(), w, resp)
		default:
			// idempotent replay of an earlier create
			response.OkJson(r.Context(), w, resp)
		}
	}
}

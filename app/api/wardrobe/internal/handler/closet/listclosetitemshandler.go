// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	logic "VestiAI/app/api/wardrobe/internal/logic/closet"
	"VestiAI/app/api/wardrobe/internal/svc"
	"VestiAI/app/api/wardrobe/internal/types"
	"VestiAI/app/common/response"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListClosetItemsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ListClosetRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, response.ParamError(err))
			return
		}

		l := logic.NewListClosetItemsLogic(r.Context(), svcCtx)
		resp, err := l.ListClosetItems(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.OkJson(r.Context(), w, resp)
		}
	}
}

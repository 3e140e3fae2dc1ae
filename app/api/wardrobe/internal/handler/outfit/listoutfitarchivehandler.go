// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	logic "VestiAI/app/api/wardrobe/internal/logic/outfit"
	"VestiAI/app/api/wardrobe/internal/svc"
	"VestiAI/app/common/response"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListOutfitArchiveHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewListOutfitArchiveLogic(r.Context(), svcCtx)
		resp, err := l.ListOutfitArchive()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			// archive keeps its historical bare shape, no data envelope
			response.RawJson(r.Context(), w, resp)
		}
	}
}

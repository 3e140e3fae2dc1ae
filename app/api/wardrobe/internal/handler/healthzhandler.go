package handler

import (
	"net/http"
	"time"

	"VestiAI/app/api/wardrobe/internal/svc"
	"VestiAI/app/api/wardrobe/internal/types"
	"VestiAI/app/common/response"
)

// HealthzHandler answers the liveness probe. No auth, no envelope.
func HealthzHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.RawJson(r.Context(), w, types.HealthResponse{
			Status: "ok",
			Ts:     time.Now().UnixMilli(),
		})
	}
}

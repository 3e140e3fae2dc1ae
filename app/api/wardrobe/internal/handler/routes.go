// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	closet "VestiAI/app/api/wardrobe/internal/handler/closet"
	order "VestiAI/app/api/wardrobe/internal/handler/order"
	outfit "VestiAI/app/api/wardrobe/internal/handler/outfit"
	"VestiAI/app/api/wardrobe/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/healthz",
				Handler: HealthzHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.ApiKeyMiddleware, serverCtx.RateLimitMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodGet,
					Path:    "/closet",
					Handler: closet.ListClosetItemsHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/closet",
					Handler: closet.CreateClosetItemHandler(serverCtx),
				},
				{
					Method:  http.MethodPut,
					Path:    "/closet/:id",
					Handler: closet.UpdateClosetItemHandler(serverCtx),
				},
				{
					Method:  http.MethodDelete,
					Path:    "/closet/:id",
					Handler: closet.DeleteClosetItemHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/closet/describe",
					Handler: closet.DescribeClosetItemHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/outfits/suggest",
					Handler: outfit.SuggestOutfitsHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/outfits/save",
					Handler: outfit.SaveOutfitHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/outfits/archive",
					Handler: outfit.ListOutfitArchiveHandler(serverCtx),
				},
				{
					Method:  http.MethodDelete,
					Path:    "/outfits/:id",
					Handler: outfit.DeleteOutfitHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/orders",
					Handler: order.CreateOrderHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/orders/:id",
					Handler: order.GetOrderHandler(serverCtx),
				},
			}...,
		),
		rest.WithPrefix("/api"),
	)
}

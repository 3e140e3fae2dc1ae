// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"VestiAI/app/api/wardrobe/internal/logic/helper"
	"VestiAI/app/api/wardrobe/internal/svc"
	"VestiAI/app/api/wardrobe/internal/types"
	"VestiAI/app/common/util"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListClosetItemsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListClosetItemsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListClosetItemsLogic {
	return &ListClosetItemsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListClosetItemsLogic) ListClosetItems(req *types.ListClosetRequest) ([]types.ClosetItem, error) {
	userId := util.UserIdFromCtx(l.ctx)

	items, err := l.svcCtx.Closet.Search(l.ctx, userId, req.Q, req.Limit)
	if err != nil {
		l.Logger.Error("logic: list closet items failed: ", err)
		return nil, helper.StoreErr(err, 0, "")
	}

	resp := make([]types.ClosetItem, 0, len(items))
	for _, item := range items {
		resp = append(resp, helper.ToClosetItem(item))
	}
	return resp, nil
}

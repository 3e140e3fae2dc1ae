// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"VestiAI/app/api/wardrobe/internal/logic/helper"
	"VestiAI/app/api/wardrobe/internal/svc"
	"VestiAI/app/api/wardrobe/internal/types"
	"VestiAI/app/common/consts/errno"
	"VestiAI/app/common/util"
	closetdal "VestiAI/app/dal/closet"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type UpdateClosetItemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUpdateClosetItemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateClosetItemLogic {
	return &UpdateClosetItemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UpdateClosetItemLogic) UpdateClosetItem(req *types.UpdateClosetItemRequest) (*types.ClosetItem, error) {
	current, err := l.svcCtx.Closet.FindOne(l.ctx, req.Id)
	if err != nil {
		return nil, helper.StoreErr(err, errno.ItemNotFound, "closet item not found")
	}
	if current.OwnerUserId != util.UserIdFromCtx(l.ctx) {
		return nil, errors.New(errno.Forbidden, "you do not own this item")
	}

	patch := closetdal.Patch{}
	if req.Name != "" {
		patch.Name = &req.Name
	}
	if req.Category != "" {
		patch.Category = &req.Category
	}
	if req.Color != "" {
		patch.Color = &req.Color
	}
	if req.Brand != "" {
		patch.Brand = &req.Brand
	}
	if req.ImageUrl != "" {
		patch.ImageUrl = &req.ImageUrl
	}

	updated, err := l.svcCtx.Closet.Update(l.ctx, req.Id, patch)
	if err != nil {
		l.Logger.Error("logic: update closet item failed: ", err)
		return nil, helper.StoreErr(err, errno.ItemNotFound, "closet item not found")
	}

	item := helper.ToClosetItem(updated)
	return &item, nil
}

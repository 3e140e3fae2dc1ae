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

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type DeleteClosetItemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteClosetItemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteClosetItemLogic {
	return &DeleteClosetItemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeleteClosetItemLogic) DeleteClosetItem(req *types.DeleteClosetItemRequest) error {
	current, err := l.svcCtx.Closet.FindOne(l.ctx, req.Id)
	if err != nil {
		return helper.StoreErr(err, errno.ItemNotFound, "closet item not found")
	}
	if current.OwnerUserId != util.UserIdFromCtx(l.ctx) {
		return errors.New(errno.Forbidden, "you do not own this item")
	}

	if err := l.svcCtx.Closet.Delete(l.ctx, req.Id); err != nil {
		l.Logger.Error("logic: delete closet item failed: ", err)
		return helper.StoreErr(err, errno.ItemNotFound, "closet item not found")
	}
	return nil
}

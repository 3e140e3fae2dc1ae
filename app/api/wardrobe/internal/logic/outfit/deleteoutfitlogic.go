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

type DeleteOutfitLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteOutfitLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteOutfitLogic {
	return &DeleteOutfitLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeleteOutfitLogic) DeleteOutfit(req *types.DeleteOutfitRequest) error {
	current, err := l.svcCtx.Outfits.FindOne(l.ctx, req.Id)
	if err != nil {
		return helper.StoreErr(err, errno.OutfitNotFound, "outfit not found")
	}
	if current.OwnerUserId != util.UserIdFromCtx(l.ctx) {
		return errors.New(errno.Forbidden, "you do not own this outfit")
	}

	if err := l.svcCtx.Outfits.Delete(l.ctx, req.Id); err != nil {
		l.Logger.Error("logic: delete outfit failed: ", err)
		return helper.StoreErr(err, errno.OutfitNotFound, "outfit not found")
	}
	return nil
}

// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"strings"

	"VestiAI/app/api/wardrobe/internal/logic/helper"
	"VestiAI/app/api/wardrobe/internal/svc"
	"VestiAI/app/api/wardrobe/internal/types"
	"VestiAI/app/common/consts/errno"
	"VestiAI/app/common/util"
	closetdal "VestiAI/app/dal/closet"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type CreateClosetItemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateClosetItemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateClosetItemLogic {
	return &CreateClosetItemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreateClosetItemLogic) CreateClosetItem(req *types.CreateClosetItemRequest) (*types.ClosetItem, error) {
	name := strings.TrimSpace(req.Name)
	category := strings.TrimSpace(req.Category)
	if name == "" {
		return nil, errors.New(errno.BadRequest, "name is required")
	}
	if category == "" {
		return nil, errors.New(errno.BadRequest, "category is required")
	}

	created, err := l.svcCtx.Closet.Insert(l.ctx, &closetdal.ClosetItem{
		Name:        name,
		Category:    category,
		Color:       req.Color,
		Brand:       req.Brand,
		ImageUrl:    req.ImageUrl,
		OwnerUserId: util.UserIdFromCtx(l.ctx),
	})
	if err != nil {
		l.Logger.Error("logic: create closet item failed: ", err)
		return nil, helper.StoreErr(err, 0, "")
	}

	item := helper.ToClosetItem(created)
	return &item, nil
}

// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	"strings"

	"VestiAI/app/api/wardrobe/internal/svc"
	"VestiAI/app/api/wardrobe/internal/types"
	"VestiAI/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type DescribeClosetItemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDescribeClosetItemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DescribeClosetItemLogic {
	return &DescribeClosetItemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DescribeClosetItemLogic) DescribeClosetItem(req *types.DescribeItemRequest) (*types.ItemDescription, error) {
	if strings.TrimSpace(req.ImageUrl) == "" {
		return nil, errors.New(errno.BadRequest, "imageUrl is required")
	}

	desc, err := l.svcCtx.Describer.Describe(l.ctx, req.ImageUrl)
	if err != nil {
		l.Logger.Error("logic: describe item failed: ", err)
		return nil, err
	}

	return &types.ItemDescription{
		Name:     desc.Name,
		Category: desc.Category,
		Color:    desc.Color,
		Brand:    desc.Brand,
	}, nil
}

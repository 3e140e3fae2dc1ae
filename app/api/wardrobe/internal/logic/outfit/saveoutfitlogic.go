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
	"VestiAI/app/common/response"
	"VestiAI/app/common/util"
	outfitdal "VestiAI/app/dal/outfit"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type SaveOutfitLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSaveOutfitLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SaveOutfitLogic {
	return &SaveOutfitLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SaveOutfitLogic) SaveOutfit(req *types.SaveOutfitRequest) (*types.Outfit, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, errors.New(errno.BadRequest, "title is required")
	}
	if len(req.ItemIds) == 0 {
		return nil, errors.New(errno.BadRequest, "itemIds must not be empty")
	}

	resolved, err := l.svcCtx.Closet.FindMany(l.ctx, req.ItemIds)
	if err != nil {
		l.Logger.Error("logic: resolve closet items failed: ", err)
		return nil, helper.StoreErr(err, 0, "")
	}
	if len(resolved) != len(req.ItemIds) {
		return nil, response.WithDetails(errno.ItemsNotFound, "some item ids do not exist",
			map[string]int{"requested": len(req.ItemIds), "found": len(resolved)})
	}

	created, err := l.svcCtx.Outfits.Insert(l.ctx, &outfitdal.Outfit{
		Title:        req.Title,
		ItemIds:      req.ItemIds,
		Occasion:     req.Occasion,
		Style:        req.Style,
		Weather:      req.Weather,
		Reasoning:    req.Reasoning,
		Palette:      req.Palette,
		PreviewPhoto: req.PhotoUrl,
		OwnerUserId:  util.UserIdFromCtx(l.ctx),
	})
	if err != nil {
		l.Logger.Error("logic: save outfit failed: ", err)
		return nil, helper.StoreErr(err, 0, "")
	}

	outfit := helper.ToOutfit(created)
	return &outfit, nil
}

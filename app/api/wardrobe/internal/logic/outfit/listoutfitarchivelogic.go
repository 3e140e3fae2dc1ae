// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"VestiAI/app/api/wardrobe/internal/logic/helper"
	"VestiAI/app/api/wardrobe/internal/svc"
	"VestiAI/app/api/wardrobe/internal/types"
	"VestiAI/app/common/util"
	closetdal "VestiAI/app/dal/closet"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListOutfitArchiveLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListOutfitArchiveLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListOutfitArchiveLogic {
	return &ListOutfitArchiveLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListOutfitArchiveLogic) ListOutfitArchive() (*types.ArchiveResponse, error) {
	userId := util.UserIdFromCtx(l.ctx)

	outfits, err := l.svcCtx.Outfits.ListByOwner(l.ctx, userId)
	if err != nil {
		l.Logger.Error("logic: list outfits failed: ", err)
		return nil, helper.StoreErr(err, 0, "")
	}

	seen := make(map[string]bool)
	var itemIds []string
	for _, o := range outfits {
		for _, id := range o.ItemIds {
			if !seen[id] {
				seen[id] = true
				itemIds = append(itemIds, id)
			}
		}
	}

	items := make(map[string]*closetdal.ClosetItem, len(itemIds))
	if len(itemIds) > 0 {
		resolved, err := l.svcCtx.Closet.FindMany(l.ctx, itemIds)
		if err != nil {
			l.Logger.Error("logic: resolve archive items failed: ", err)
			return nil, helper.StoreErr(err, 0, "")
		}
		for _, item := range resolved {
			items[item.Id] = item
		}
	}

	resp := &types.ArchiveResponse{
		Outfits: make([]types.ArchiveOutfit, 0, len(outfits)),
		Catalog: make(map[string]types.CatalogEntry),
	}
	for _, o := range outfits {
		names := make([]string, 0, len(o.ItemIds))
		for _, id := range o.ItemIds {
			item, ok := items[id]
			if !ok {
				// item deleted since the outfit was saved, keep the raw id
				names = append(names, id)
				continue
			}
			names = append(names, item.Name)
			resp.Catalog[item.Name] = types.CatalogEntry{PhotoUrl: item.ImageUrl}
		}
		resp.Outfits = append(resp.Outfits, types.ArchiveOutfit{
			Id:           o.Id,
			Title:        o.Title,
			Items:        names,
			Occasion:     o.Occasion,
			Style:        o.Style,
			Weather:      o.Weather,
			Reasoning:    o.Reasoning,
			Palette:      o.Palette,
			PreviewPhoto: o.PreviewPhoto,
		})
	}
	return resp, nil
}

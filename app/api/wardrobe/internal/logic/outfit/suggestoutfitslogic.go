// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"

	"VestiAI/app/api/wardrobe/internal/logic/helper"
	"VestiAI/app/api/wardrobe/internal/stylist"
	"VestiAI/app/api/wardrobe/internal/svc"
	"VestiAI/app/api/wardrobe/internal/types"
	"VestiAI/app/common/consts/errno"
	"VestiAI/app/common/util"
	closetdal "VestiAI/app/dal/closet"
	outfitdal "VestiAI/app/dal/outfit"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type SuggestOutfitsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSuggestOutfitsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SuggestOutfitsLogic {
	return &SuggestOutfitsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SuggestOutfitsLogic) SuggestOutfits(req *types.SuggestOutfitsRequest) ([]types.Outfit, error) {
	if len(req.ItemIds) == 0 {
		return nil, errors.New(errno.BadRequest, "itemIds must not be empty")
	}

	userId := util.UserIdFromCtx(l.ctx)

	resolved, err := l.svcCtx.Closet.FindMany(l.ctx, req.ItemIds)
	if err != nil {
		l.Logger.Error("logic: resolve closet items failed: ", err)
		return nil, helper.StoreErr(err, 0, "")
	}
	if len(resolved) == 0 {
		return nil, errors.New(errno.NoItems, "none of the given item ids exist")
	}

	drafts, err := l.svcCtx.Suggester.Suggest(l.ctx, stylist.SuggestInput{
		Occasion: req.Occasion,
		Weather:  req.Weather,
		Style:    req.Style,
		TopK:     req.TopK,
		Items:    toStylistItems(resolved),
	})
	if err != nil {
		return nil, err
	}

	// each persist is independent: one store failure skips that outfit
	// and the rest still go through
	known := make(map[string]bool, len(resolved))
	for _, item := range resolved {
		known[item.Id] = true
	}

	saved := make([]types.Outfit, 0, len(drafts))
	for _, draft := range drafts {
		itemIds := make([]string, 0, len(draft.Items))
		for _, id := range draft.Items {
			if known[id] {
				itemIds = append(itemIds, id)
			}
		}
		if len(itemIds) == 0 {
			l.Logger.Errorf("logic: outfit %q references no known items, skipping", draft.Name)
			continue
		}

		created, err := l.svcCtx.Outfits.Insert(l.ctx, &outfitdal.Outfit{
			Title:        draft.Name,
			ItemIds:      itemIds,
			Occasion:     req.Occasion,
			Style:        req.Style,
			Weather:      req.Weather,
			Reasoning:    draft.Reasoning,
			Palette:      draft.Palette,
			PreviewPhoto: draft.Preview,
			OwnerUserId:  userId,
		})
		if err != nil {
			l.Logger.Errorf("logic: persist outfit %q failed, skipping: %v", draft.Name, err)
			continue
		}
		saved = append(saved, helper.ToOutfit(created))
	}

	return saved, nil
}

func toStylistItems(items []*closetdal.ClosetItem) []stylist.Item {
	out := make([]stylist.Item, 0, len(items))
	for _, item := range items {
		out = append(out, stylist.Item{
			Id:       item.Id,
			Name:     item.Name,
			Category: item.Category,
			Color:    item.Color,
			Brand:    item.Brand,
			PhotoUrl: item.ImageUrl,
		})
	}
	return out
}

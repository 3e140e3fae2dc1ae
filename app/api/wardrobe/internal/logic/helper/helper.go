package helper

import (
	stderrors "errors"

	"VestiAI/app/api/wardrobe/internal/types"
	"VestiAI/app/common/consts/errno"
	"VestiAI/app/dal/airtable"
	closetdal "VestiAI/app/dal/closet"
	orderdal "VestiAI/app/dal/order"
	outfitdal "VestiAI/app/dal/outfit"

	"github.com/zeromicro/x/errors"
)

// StoreErr translates a record store failure into the error taxonomy:
// a missing record becomes the entity-specific not-found code (when one is
// given), anything else becomes STORE_ERROR.
func StoreErr(err error, notFoundCode int, notFoundMsg string) error {
	if notFoundCode != 0 && stderrors.Is(err, airtable.ErrRecordNotFound) {
		return errors.New(notFoundCode, notFoundMsg)
	}
	var ae *airtable.Error
	if stderrors.As(err, &ae) {
		return errors.New(errno.StoreError, "record store rejected the request")
	}
	return errors.New(errno.StoreError, "record store unavailable")
}

func ToClosetItem(item *closetdal.ClosetItem) types.ClosetItem {
	return types.ClosetItem{
		Id:          item.Id,
		Name:        item.Name,
		Category:    item.Category,
		Color:       item.Color,
		Brand:       item.Brand,
		ImageUrl:    item.ImageUrl,
		OwnerUserId: item.OwnerUserId,
	}
}

func ToOutfit(o *outfitdal.Outfit) types.Outfit {
	return types.Outfit{
		Id:           o.Id,
		Title:        o.Title,
		ItemIds:      o.ItemIds,
		Occasion:     o.Occasion,
		Style:        o.Style,
		Weather:      o.Weather,
		Reasoning:    o.Reasoning,
		Palette:      o.Palette,
		PreviewPhoto: o.PreviewPhoto,
		OwnerUserId:  o.OwnerUserId,
	}
}

func ToOrder(o *orderdal.Order) types.Order {
	return types.Order{
		Id:             o.Id,
		UserId:         o.UserId,
		OutfitId:       o.OutfitId,
		Status:         o.Status,
		Fulfillment:    o.Fulfillment,
		Note:           o.Note,
		IdempotencyKey: o.IdempotencyKey,
	}
}

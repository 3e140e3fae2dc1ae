// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type HealthResponse struct {
	Status string `json:"status"`
	Ts     int64  `json:"ts"`
}

type ClosetItem struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Color       string `json:"color,omitempty"`
	Brand       string `json:"brand,omitempty"`
	ImageUrl    string `json:"imageUrl,omitempty"`
	OwnerUserId string `json:"ownerUserId,omitempty"`
}

type ListClosetRequest struct {
	Q     string `form:"q,optional"`
	Limit int    `form:"limit,optional,default=100,range=[1:200]"`
}

type CreateClosetItemRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Color    string `json:"color,optional"`
	Brand    string `json:"brand,optional"`
	ImageUrl string `json:"imageUrl,optional"`
}

type UpdateClosetItemRequest struct {
	Id       string `path:"id"`
	Name     string `json:"name,optional"`
	Category string `json:"category,optional"`
	Color    string `json:"color,optional"`
	Brand    string `json:"brand,optional"`
	ImageUrl string `json:"imageUrl,optional"`
}

type DeleteClosetItemRequest struct {
	Id string `path:"id"`
}

type DescribeItemRequest struct {
	ImageUrl string `json:"imageUrl"`
}

type ItemDescription struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Color    string `json:"color"`
	Brand    string `json:"brand"`
}

type Outfit struct {
	Id           string   `json:"id"`
	Title        string   `json:"title"`
	ItemIds      []string `json:"itemIds"`
	Occasion     string   `json:"occasion,omitempty"`
	Style        string   `json:"style,omitempty"`
	Weather      string   `json:"weather,omitempty"`
	Reasoning    string   `json:"reasoning,omitempty"`
	Palette      []string `json:"palette,omitempty"`
	PreviewPhoto string   `json:"previewPhoto,omitempty"`
	OwnerUserId  string   `json:"ownerUserId,omitempty"`
}

type SuggestOutfitsRequest struct {
	Occasion string   `json:"occasion"`
	Weather  string   `json:"weather,optional"`
	Style    string   `json:"style,optional"`
	ItemIds  []string `json:"itemIds"`
	TopK     int      `json:"topK,optional,default=3,range=[1:5]"`
}

type SaveOutfitRequest struct {
	Title     string   `json:"title"`
	ItemIds   []string `json:"itemIds"`
	Occasion  string   `json:"occasion,optional"`
	Style     string   `json:"style,optional"`
	Weather   string   `json:"weather,optional"`
	Reasoning string   `json:"reasoning,optional"`
	Palette   []string `json:"palette,optional"`
	PhotoUrl  string   `json:"photoUrl,optional"`
}

type ArchiveOutfit struct {
	Id           string   `json:"id"`
	Title        string   `json:"title"`
	Items        []string `json:"items"`
	Occasion     string   `json:"occasion,omitempty"`
	Style        string   `json:"style,omitempty"`
	Weather      string   `json:"weather,omitempty"`
	Reasoning    string   `json:"reasoning,omitempty"`
	Palette      []string `json:"palette,omitempty"`
	PreviewPhoto string   `json:"previewPhoto,omitempty"`
}

type CatalogEntry struct {
	PhotoUrl string `json:"photoUrl"`
}

type ArchiveResponse struct {
	Outfits []ArchiveOutfit         `json:"outfits"`
	Catalog map[string]CatalogEntry `json:"catalog"`
}

type DeleteOutfitRequest struct {
	Id string `path:"id"`
}

type CreateOrderRequest struct {
	UserId         string `json:"userId"`
	OutfitId       string `json:"outfitId"`
	Fulfillment    string `json:"fulfillment,options=delivery|pickup|stylist"`
	Note           string `json:"note,optional"`
	IdempotencyKey string `json:"idempotencyKey"`
}

type Order struct {
	Id             string `json:"id"`
	UserId         string `json:"userId"`
	OutfitId       string `json:"outfitId"`
	Status         string `json:"status"`
	Fulfillment    string `json:"fulfillment"`
	Note           string `json:"note,omitempty"`
	IdempotencyKey string `json:"idempotencyKey"`
}

type GetOrderRequest struct {
	Id string `path:"id"`
}

package outfit

import (
	"context"
	"strings"

	"VestiAI/app/dal/airtable"
)

var _ OutfitsModel = (*defaultOutfitsModel)(nil)

type (
	OutfitsModel interface {
		FindOne(ctx context.Context, id string) (*Outfit, error)
		ListByOwner(ctx context.Context, ownerId string) ([]*Outfit, error)
		Insert(ctx context.Context, outfit *Outfit) (*Outfit, error)
		Delete(ctx context.Context, id string) error
	}

	Outfit struct {
		Id           string
		Title        string
		ItemIds      []string
		Occasion     string
		Style        string
		Weather      string
		Reasoning    string
		Palette      []string // stored comma-joined
		PreviewPhoto string
		OwnerUserId  string
	}

	defaultOutfitsModel struct {
		store *airtable.Client
		table string

		title     []string
		itemIds   []string
		occasion  []string
		style     []string
		weather   []string
		reasoning []string
		palette   []string
		preview   []string
		owner     []string
	}
)

// NewOutfitsModel returns a model for the outfits table.
func NewOutfitsModel(store *airtable.Client, c airtable.Conf) OutfitsModel {
	return &defaultOutfitsModel{
		store:     store,
		table:     c.Tables.Outfits,
		title:     c.Candidates("title", "Title", "Name", "title"),
		itemIds:   c.Candidates("itemIds", "ItemIds", "Items", "item_ids"),
		occasion:  c.Candidates("occasion", "Occasion", "occasion"),
		style:     c.Candidates("style", "Style", "style"),
		weather:   c.Candidates("weather", "Weather", "weather"),
		reasoning: c.Candidates("reasoning", "Reasoning", "Notes"),
		palette:   c.Candidates("palette", "Palette", "Colors"),
		preview:   c.Candidates("previewPhoto", "PreviewPhoto", "Preview", "Photo"),
		owner:     c.Candidates("ownerUserId", "OwnerUserId", "Owner", "user_id"),
	}
}

func (m *defaultOutfitsModel) FindOne(ctx context.Context, id string) (*Outfit, error) {
	rec, err := m.store.Find(ctx, m.table, id)
	if err != nil {
		return nil, err
	}
	return m.fromRecord(rec), nil
}

func (m *defaultOutfitsModel) ListByOwner(ctx context.Context, ownerId string) ([]*Outfit, error) {
	filter := airtable.Eq(m.owner[0], ownerId)
	recs, err := m.store.Query(ctx, m.table, filter.Formula(), 0)
	if err != nil {
		return nil, err
	}
	outfits := make([]*Outfit, 0, len(recs))
	for i := range recs {
		outfits = append(outfits, m.fromRecord(&recs[i]))
	}
	return outfits, nil
}

func (m *defaultOutfitsModel) Insert(ctx context.Context, outfit *Outfit) (*Outfit, error) {
	fields := map[string]interface{}{
		m.title[0]:   outfit.Title,
		m.itemIds[0]: outfit.ItemIds,
	}
	if outfit.Occasion != "" {
		fields[m.occasion[0]] = outfit.Occasion
	}
	if outfit.Style != "" {
		fields[m.style[0]] = outfit.Style
	}
	if outfit.Weather != "" {
		fields[m.weather[0]] = outfit.Weather
	}
	if outfit.Reasoning != "" {
		fields[m.reasoning[0]] = outfit.Reasoning
	}
	if len(outfit.Palette) > 0 {
		fields[m.palette[0]] = strings.Join(outfit.Palette, ",")
	}
	if outfit.PreviewPhoto != "" {
		fields[m.preview[0]] = outfit.PreviewPhoto
	}
	if outfit.OwnerUserId != "" {
		fields[m.owner[0]] = outfit.OwnerUserId
	}

	rec, err := m.store.Create(ctx, m.table, fields)
	if err != nil {
		return nil, err
	}
	return m.fromRecord(rec), nil
}

func (m *defaultOutfitsModel) Delete(ctx context.Context, id string) error {
	return m.store.Delete(ctx, m.table, id)
}

func (m *defaultOutfitsModel) fromRecord(rec *airtable.Record) *Outfit {
	return &Outfit{
		Id:           rec.ID,
		Title:        airtable.StringField(rec, m.title...),
		ItemIds:      airtable.StringsField(rec, m.itemIds...),
		Occasion:     airtable.StringField(rec, m.occasion...),
		Style:        airtable.StringField(rec, m.style...),
		Weather:      airtable.StringField(rec, m.weather...),
		Reasoning:    airtable.StringField(rec, m.reasoning...),
		Palette:      splitPalette(airtable.StringField(rec, m.palette...)),
		PreviewPhoto: airtable.AttachmentURL(rec, m.preview...),
		OwnerUserId:  airtable.StringField(rec, m.owner...),
	}
}

func splitPalette(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

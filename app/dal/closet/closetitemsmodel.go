package closet

import (
	"context"

	"VestiAI/app/dal/airtable"
)

var _ ClosetItemsModel = (*defaultClosetItemsModel)(nil)

type (
	// ClosetItemsModel is an interface to be customized, add more methods
	// here, and implement them in defaultClosetItemsModel.
	ClosetItemsModel interface {
		FindOne(ctx context.Context, id string) (*ClosetItem, error)
		// FindMany resolves the given record ids in chunked lookups;
		// missing ids are silently absent from the result.
		FindMany(ctx context.Context, ids []string) ([]*ClosetItem, error)
		// Search lists items visible to ownerId: owned by them or unowned
		// (shared). nameQuery filters by case-insensitive substring.
		Search(ctx context.Context, ownerId, nameQuery string, limit int) ([]*ClosetItem, error)
		Insert(ctx context.Context, item *ClosetItem) (*ClosetItem, error)
		Update(ctx context.Context, id string, patch Patch) (*ClosetItem, error)
		Delete(ctx context.Context, id string) error
	}

	ClosetItem struct {
		Id          string
		Name        string
		Category    string
		Color       string
		Brand       string
		ImageUrl    string
		OwnerUserId string
	}

	// Patch carries a partial update; nil means leave the field untouched.
	Patch struct {
		Name     *string
		Category *string
		Color    *string
		Brand    *string
		ImageUrl *string
	}

	defaultClosetItemsModel struct {
		store *airtable.Client
		table string

		name     []string
		category []string
		color    []string
		brand    []string
		imageUrl []string
		owner    []string
	}
)

// NewClosetItemsModel returns a model for the closet items table.
func NewClosetItemsModel(store *airtable.Client, c airtable.Conf) ClosetItemsModel {
	return &defaultClosetItemsModel{
		store:    store,
		table:    c.Tables.Closet,
		name:     c.Candidates("name", "Name", "name", "Item Name"),
		category: c.Candidates("category", "Category", "category", "Type"),
		color:    c.Candidates("color", "Color", "color", "Colour"),
		brand:    c.Candidates("brand", "Brand", "brand"),
		imageUrl: c.Candidates("imageUrl", "ImageUrl", "Image", "image_url", "Photo"),
		owner:    c.Candidates("ownerUserId", "OwnerUserId", "Owner", "user_id"),
	}
}

func (m *defaultClosetItemsModel) FindOne(ctx context.Context, id string) (*ClosetItem, error) {
	rec, err := m.store.Find(ctx, m.table, id)
	if err != nil {
		return nil, err
	}
	return m.fromRecord(rec), nil
}

func (m *defaultClosetItemsModel) FindMany(ctx context.Context, ids []string) ([]*ClosetItem, error) {
	items := make([]*ClosetItem, 0, len(ids))
	for _, chunk := range airtable.OrRecordIDs(ids) {
		recs, err := m.store.Query(ctx, m.table, chunk.Formula(), 0)
		if err != nil {
			return nil, err
		}
		for i := range recs {
			items = append(items, m.fromRecord(&recs[i]))
		}
	}
	return items, nil
}

func (m *defaultClosetItemsModel) Search(ctx context.Context, ownerId, nameQuery string, limit int) ([]*ClosetItem, error) {
	visible := airtable.Or(
		airtable.Eq(m.owner[0], ownerId),
		airtable.Blank(m.owner[0]),
	)
	filter := visible
	if nameQuery != "" {
		filter = airtable.And(airtable.ContainsFold(m.name[0], nameQuery), visible)
	}

	recs, err := m.store.Query(ctx, m.table, filter.Formula(), limit)
	if err != nil {
		return nil, err
	}
	items := make([]*ClosetItem, 0, len(recs))
	for i := range recs {
		items = append(items, m.fromRecord(&recs[i]))
	}
	return items, nil
}

func (m *defaultClosetItemsModel) Insert(ctx context.Context, item *ClosetItem) (*ClosetItem, error) {
	fields := map[string]interface{}{
		m.name[0]:     item.Name,
		m.category[0]: item.Category,
	}
	if item.Color != "" {
		fields[m.color[0]] = item.Color
	}
	if item.Brand != "" {
		fields[m.brand[0]] = item.Brand
	}
	if item.ImageUrl != "" {
		fields[m.imageUrl[0]] = item.ImageUrl
	}
	if item.OwnerUserId != "" {
		fields[m.owner[0]] = item.OwnerUserId
	}

	rec, err := m.store.Create(ctx, m.table, fields)
	if err != nil {
		return nil, err
	}
	return m.fromRecord(rec), nil
}

func (m *defaultClosetItemsModel) Update(ctx context.Context, id string, patch Patch) (*ClosetItem, error) {
	fields := make(map[string]interface{})
	if patch.Name != nil {
		fields[m.name[0]] = *patch.Name
	}
	if patch.Category != nil {
		fields[m.category[0]] = *patch.Category
	}
	if patch.Color != nil {
		fields[m.color[0]] = *patch.Color
	}
	if patch.Brand != nil {
		fields[m.brand[0]] = *patch.Brand
	}
	if patch.ImageUrl != nil {
		fields[m.imageUrl[0]] = *patch.ImageUrl
	}

	rec, err := m.store.Update(ctx, m.table, id, fields)
	if err != nil {
		return nil, err
	}
	return m.fromRecord(rec), nil
}

func (m *defaultClosetItemsModel) Delete(ctx context.Context, id string) error {
	return m.store.Delete(ctx, m.table, id)
}

func (m *defaultClosetItemsModel) fromRecord(rec *airtable.Record) *ClosetItem {
	return &ClosetItem{
		Id:          rec.ID,
		Name:        airtable.StringField(rec, m.name...),
		Category:    airtable.StringField(rec, m.category...),
		Color:       airtable.StringField(rec, m.color...),
		Brand:       airtable.StringField(rec, m.brand...),
		ImageUrl:    airtable.AttachmentURL(rec, m.imageUrl...),
		OwnerUserId: airtable.StringField(rec, m.owner...),
	}
}

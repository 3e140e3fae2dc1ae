package order

import (
	"context"

	"VestiAI/app/dal/airtable"
)

var _ OrdersModel = (*defaultOrdersModel)(nil)

type (
	OrdersModel interface {
		FindOne(ctx context.Context, id string) (*Order, error)
		// FindOneByIdempotencyKey returns airtable.ErrRecordNotFound when
		// no order was created with the key yet.
		FindOneByIdempotencyKey(ctx context.Context, key string) (*Order, error)
		Insert(ctx context.Context, order *Order) (*Order, error)
	}

	Order struct {
		Id             string
		UserId         string
		OutfitId       string
		Status         string
		Fulfillment    string
		Note           string
		IdempotencyKey string
	}

	defaultOrdersModel struct {
		store *airtable.Client
		table string

		userId      []string
		outfitId    []string
		status      []string
		fulfillment []string
		note        []string
		idemKey     []string
	}
)

// NewOrdersModel returns a model for the orders table.
func NewOrdersModel(store *airtable.Client, c airtable.Conf) OrdersModel {
	return &defaultOrdersModel{
		store:       store,
		table:       c.Tables.Orders,
		userId:      c.Candidates("userId", "UserId", "User", "user_id"),
		outfitId:    c.Candidates("outfitId", "OutfitId", "Outfit", "outfit_id"),
		status:      c.Candidates("status", "Status", "status"),
		fulfillment: c.Candidates("fulfillment", "Fulfillment", "fulfillment"),
		note:        c.Candidates("note", "Note", "Notes"),
		idemKey:     c.Candidates("idempotencyKey", "IdempotencyKey", "idempotency_key"),
	}
}

func (m *defaultOrdersModel) FindOne(ctx context.Context, id string) (*Order, error) {
	rec, err := m.store.Find(ctx, m.table, id)
	if err != nil {
		return nil, err
	}
	return m.fromRecord(rec), nil
}

func (m *defaultOrdersModel) FindOneByIdempotencyKey(ctx context.Context, key string) (*Order, error) {
	filter := airtable.Eq(m.idemKey[0], key)
	recs, err := m.store.Query(ctx, m.table, filter.Formula(), 1)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, airtable.ErrRecordNotFound
	}
	return m.fromRecord(&recs[0]), nil
}

func (m *defaultOrdersModel) Insert(ctx context.Context, order *Order) (*Order, error) {
	fields := map[string]interface{}{
		m.userId[0]:      order.UserId,
		m.outfitId[0]:    order.OutfitId,
		m.status[0]:      order.Status,
		m.fulfillment[0]: order.Fulfillment,
		m.idemKey[0]:     order.IdempotencyKey,
	}
	if order.Note != "" {
		fields[m.note[0]] = order.Note
	}

	rec, err := m.store.Create(ctx, m.table, fields)
	if err != nil {
		return nil, err
	}
	return m.fromRecord(rec), nil
}

func (m *defaultOrdersModel) fromRecord(rec *airtable.Record) *Order {
	return &Order{
		Id:             rec.ID,
		UserId:         airtable.StringField(rec, m.userId...),
		OutfitId:       airtable.StringField(rec, m.outfitId...),
		Status:         airtable.StringField(rec, m.status...),
		Fulfillment:    airtable.StringField(rec, m.fulfillment...),
		Note:           airtable.StringField(rec, m.note...),
		IdempotencyKey: airtable.StringField(rec, m.idemKey...),
	}
}

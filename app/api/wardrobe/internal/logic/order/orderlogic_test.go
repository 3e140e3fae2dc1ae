package logic

import (
	"context"
	"strings"
	"testing"

	"VestiAI/app/api/wardrobe/internal/config"
	"VestiAI/app/api/wardrobe/internal/svc"
	"VestiAI/app/api/wardrobe/internal/types"
	"VestiAI/app/common/consts/biz"
	"VestiAI/app/common/consts/errno"
	"VestiAI/app/dal/airtable"
	orderdal "VestiAI/app/dal/order"
	outfitdal "VestiAI/app/dal/outfit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/x/errors"
)

type fakeOrders struct {
	byKey    map[string]*orderdal.Order
	inserted []*orderdal.Order
}

func (f *fakeOrders) FindOne(_ context.Context, id string) (*orderdal.Order, error) {
	for _, o := range f.byKey {
		if o.Id == id {
			return o, nil
		}
	}
	return nil, airtable.ErrRecordNotFound
}

func (f *fakeOrders) FindOneByIdempotencyKey(_ context.Context, key string) (*orderdal.Order, error) {
	o, ok := f.byKey[key]
	if !ok {
		return nil, airtable.ErrRecordNotFound
	}
	return o, nil
}

func (f *fakeOrders) Insert(_ context.Context, o *orderdal.Order) (*orderdal.Order, error) {
	created := *o
	created.Id = "ordNew"
	f.inserted = append(f.inserted, &created)
	f.byKey[o.IdempotencyKey] = &created
	return &created, nil
}

type fakeOutfits struct {
	outfits map[string]*outfitdal.Outfit
}

func (f *fakeOutfits) FindOne(_ context.Context, id string) (*outfitdal.Outfit, error) {
	o, ok := f.outfits[id]
	if !ok {
		return nil, airtable.ErrRecordNotFound
	}
	return o, nil
}

func (f *fakeOutfits) ListByOwner(_ context.Context, _ string) ([]*outfitdal.Outfit, error) {
	return nil, nil
}

func (f *fakeOutfits) Insert(_ context.Context, o *outfitdal.Outfit) (*outfitdal.Outfit, error) {
	return o, nil
}

func (f *fakeOutfits) Delete(_ context.Context, _ string) error {
	return nil
}

func codeOf(t *testing.T, err error) int {
	t.Helper()
	var cm *errors.CodeMsg
	require.ErrorAs(t, err, &cm)
	return cm.Code
}

func orderSvc(orders *fakeOrders, outfits *fakeOutfits) *svc.ServiceContext {
	return &svc.ServiceContext{
		Config:  config.Config{},
		Orders:  orders,
		Outfits: outfits,
	}
}

func validRequest() *types.CreateOrderRequest {
	return &types.CreateOrderRequest{
		UserId:         "alice",
		OutfitId:       "out1",
		Fulfillment:    biz.FulfillmentDelivery,
		IdempotencyKey: "key-1",
	}
}

func TestCreateOrderFresh(t *testing.T) {
	orders := &fakeOrders{byKey: map[string]*orderdal.Order{}}
	outfits := &fakeOutfits{outfits: map[string]*outfitdal.Outfit{
		"out1": {Id: "out1", Title: "workday"},
	}}
	l := NewCreateOrderLogic(context.Background(), orderSvc(orders, outfits))

	order, created, err := l.CreateOrder(validRequest())
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "ordNew", order.Id)
	assert.Equal(t, biz.OrderStatusPending, order.Status)
	require.Len(t, orders.inserted, 1)
	assert.Equal(t, "key-1", orders.inserted[0].IdempotencyKey)
}

func TestCreateOrderIdempotentReplay(t *testing.T) {
	orders := &fakeOrders{byKey: map[string]*orderdal.Order{}}
	outfits := &fakeOutfits{outfits: map[string]*outfitdal.Outfit{
		"out1": {Id: "out1"},
	}}
	ctx := orderSvc(orders, outfits)

	first, created, err := NewCreateOrderLogic(context.Background(), ctx).CreateOrder(validRequest())
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := NewCreateOrderLogic(context.Background(), ctx).CreateOrder(validRequest())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.Id, second.Id)
	assert.Len(t, orders.inserted, 1)
}

func TestCreateOrderOutfitNotFound(t *testing.T) {
	orders := &fakeOrders{byKey: map[string]*orderdal.Order{}}
	l := NewCreateOrderLogic(context.Background(), orderSvc(orders, &fakeOutfits{}))

	_, _, err := l.CreateOrder(validRequest())
	assert.Equal(t, errno.OutfitNotFound, codeOf(t, err))
	assert.Empty(t, orders.inserted)
}

func TestCreateOrderRejectsBlankIdempotencyKey(t *testing.T) {
	l := NewCreateOrderLogic(context.Background(), orderSvc(&fakeOrders{byKey: map[string]*orderdal.Order{}}, &fakeOutfits{}))

	req := validRequest()
	req.IdempotencyKey = "  "
	_, _, err := l.CreateOrder(req)
	assert.Equal(t, errno.BadRequest, codeOf(t, err))
}

func TestCreateOrderRejectsOversizeNote(t *testing.T) {
	l := NewCreateOrderLogic(context.Background(), orderSvc(&fakeOrders{byKey: map[string]*orderdal.Order{}}, &fakeOutfits{}))

	req := validRequest()
	req.Note = strings.Repeat("n", biz.MaxOrderNoteLen+1)
	_, _, err := l.CreateOrder(req)
	assert.Equal(t, errno.BadRequest, codeOf(t, err))
}

func TestGetOrder(t *testing.T) {
	orders := &fakeOrders{byKey: map[string]*orderdal.Order{
		"key-1": {Id: "ord1", UserId: "alice", Status: biz.OrderStatusPending},
	}}
	l := NewGetOrderLogic(context.Background(), orderSvc(orders, &fakeOutfits{}))

	order, err := l.GetOrder(&types.GetOrderRequest{Id: "ord1"})
	require.NoError(t, err)
	assert.Equal(t, "alice", order.UserId)
}

func TestGetOrderNotFound(t *testing.T) {
	l := NewGetOrderLogic(context.Background(), orderSvc(&fakeOrders{byKey: map[string]*orderdal.Order{}}, &fakeOutfits{}))

	_, err := l.GetOrder(&types.GetOrderRequest{Id: "ghost"})
	assert.Equal(t, errno.OrderNotFound, codeOf(t, err))
}

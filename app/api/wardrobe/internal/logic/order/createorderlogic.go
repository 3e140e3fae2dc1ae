// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package logic

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"VestiAI/app/api/wardrobe/internal/logic/helper"
	"VestiAI/app/api/wardrobe/internal/mq"
	"VestiAI/app/api/wardrobe/internal/svc"
	"VestiAI/app/api/wardrobe/internal/types"
	"VestiAI/app/common/consts/biz"
	"VestiAI/app/common/consts/errno"
	"VestiAI/app/dal/airtable"
	orderdal "VestiAI/app/dal/order"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type CreateOrderLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateOrderLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateOrderLogic {
	return &CreateOrderLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// CreateOrder returns the order plus whether a new record was created, so
// the handler can answer 201 for a fresh order and 200 for an idempotent
// replay.
func (l *CreateOrderLogic) CreateOrder(req *types.CreateOrderRequest) (*types.Order, bool, error) {
	if strings.TrimSpace(req.IdempotencyKey) == "" {
		return nil, false, errors.New(errno.BadRequest, "idempotencyKey is required")
	}
	if len(req.Note) > biz.MaxOrderNoteLen {
		return nil, false, errors.New(errno.BadRequest, "note is too long")
	}

	existing, err := l.svcCtx.Orders.FindOneByIdempotencyKey(l.ctx, req.IdempotencyKey)
	if err == nil {
		order := helper.ToOrder(existing)
		return &order, false, nil
	}
	if !stderrors.Is(err, airtable.ErrRecordNotFound) {
		l.Logger.Error("logic: idempotency lookup failed: ", err)
		return nil, false, helper.StoreErr(err, 0, "")
	}

	if _, err := l.svcCtx.Outfits.FindOne(l.ctx, req.OutfitId); err != nil {
		return nil, false, helper.StoreErr(err, errno.OutfitNotFound, "outfit not found")
	}

	created, err := l.svcCtx.Orders.Insert(l.ctx, &orderdal.Order{
		UserId:         req.UserId,
		OutfitId:       req.OutfitId,
		Status:         biz.OrderStatusPending,
		Fulfillment:    req.Fulfillment,
		Note:           req.Note,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		l.Logger.Error("logic: create order failed: ", err)
		return nil, false, helper.StoreErr(err, 0, "")
	}

	l.notify(created)

	order := helper.ToOrder(created)
	return &order, true, nil
}

// notify emits the order-created event and schedules the fulfillment
// follow-up. Both are best-effort: the order is already durable.
func (l *CreateOrderLogic) notify(order *orderdal.Order) {
	evt := mq.OrderCreatedEvent{
		OrderId:     order.Id,
		UserId:      order.UserId,
		OutfitId:    order.OutfitId,
		Fulfillment: order.Fulfillment,
		Status:      order.Status,
		CreatedAt:   time.Now().Unix(),
	}
	if err := mq.PublishOrderCreated(l.ctx, l.svcCtx.OrderEvents, evt); err != nil {
		l.Logger.Error("logic: publish order created event failed: ", err)
	}

	delay := time.Duration(l.svcCtx.Config.Asynq.FollowupDelaySeconds) * time.Second
	if err := mq.EnqueueOrderFollowup(l.svcCtx.Tasks, order.Id, delay); err != nil {
		l.Logger.Error("logic: enqueue order follow-up failed: ", err)
	}
}

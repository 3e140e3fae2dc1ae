// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"context"

	"VestiAI/app/api/wardrobe/internal/config"
	"VestiAI/app/api/wardrobe/internal/mq"
	"VestiAI/app/api/wardrobe/internal/stylist"
	"VestiAI/app/common/middleware"
	"VestiAI/app/dal/airtable"
	closetdal "VestiAI/app/dal/closet"
	outfitdal "VestiAI/app/dal/outfit"
	orderdal "VestiAI/app/dal/order"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
	"github.com/hibiken/asynq"
	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/limit"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config config.Config

	ApiKeyMiddleware    rest.Middleware
	RateLimitMiddleware rest.Middleware

	Closet  closetdal.ClosetItemsModel
	Outfits outfitdal.OutfitsModel
	Orders  orderdal.OrdersModel

	Suggester *stylist.Suggester
	Describer *stylist.Describer

	OrderEvents *kafka.Writer
	Tasks       *asynq.Client
}

func NewServiceContext(c config.Config) *ServiceContext {
	store := airtable.MustNewClient(c.Airtable)

	var chatModel model.BaseChatModel
	if c.ChatModel.Model != "" {
		cm, err := ark.NewChatModel(context.Background(), &ark.ChatModelConfig{
			BaseURL: c.ChatModel.BaseUrl,
			APIKey:  c.ChatModel.APIKey,
			Model:   c.ChatModel.Model,
		})
		if err != nil {
			logx.Errorw("init ark chat model failed", logx.Field("err", err))
		} else {
			chatModel = cm
			logx.Infow("ark chat model initialized")
		}
	}

	var limiter *limit.PeriodLimit
	if c.RateLimit.Redis.Host != "" {
		rds := redis.MustNewRedis(c.RateLimit.Redis)
		limiter = limit.NewPeriodLimit(c.RateLimit.PeriodSeconds, c.RateLimit.Quota, rds, "wardrobe:rl:")
	}

	var tasks *asynq.Client
	if c.Asynq.Addr != "" {
		tasks = asynq.NewClient(asynq.RedisClientOpt{Addr: c.Asynq.Addr})
	}

	return &ServiceContext{
		Config:              c,
		ApiKeyMiddleware:    middleware.NewApiKeyMiddleware(c.Auth.ApiKey).Handle,
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(limiter).Handle,
		Closet:              closetdal.NewClosetItemsModel(store, c.Airtable),
		Outfits:             outfitdal.NewOutfitsModel(store, c.Airtable),
		Orders:              orderdal.NewOrdersModel(store, c.Airtable),
		Suggester:           stylist.NewSuggester(chatModel, c.Stylist.Stub),
		Describer:           stylist.NewDescriber(chatModel),
		OrderEvents:         mq.NewOrderWriter(c.Kafka.Brokers, c.Kafka.OrderTopic),
		Tasks:               tasks,
	}
}

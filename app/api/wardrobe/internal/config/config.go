// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"VestiAI/app/dal/airtable"

	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	Auth      AuthConf
	Airtable  airtable.Conf
	ChatModel ModelConf
	Stylist   StylistConf
	Cors      CorsConf      `json:",optional"`
	RateLimit RateLimitConf `json:",optional"`
	Kafka     KafkaConf     `json:",optional"`
	Asynq     AsynqConf     `json:",optional"`
}

type AuthConf struct {
	ApiKey string
}

type ModelConf struct {
	BaseUrl string `json:",optional"`
	APIKey  string `json:",optional"`
	Model   string `json:",optional"`
}

type StylistConf struct {
	// Stub bypasses the completion backend with a deterministic outfit.
	// Meant for test environments only; AI failures never fall back to it.
	Stub bool `json:",optional"`
}

type CorsConf struct {
	Origins []string `json:",optional"`
}

type RateLimitConf struct {
	Redis         redis.RedisConf `json:",optional"`
	Quota         int             `json:",default=60"`
	PeriodSeconds int             `json:",default=60"`
}

type KafkaConf struct {
	Brokers    []string `json:",optional"`
	OrderTopic string   `json:",optional"`
}

type AsynqConf struct {
	Addr                 string `json:",optional"`
	FollowupDelaySeconds int    `json:",default=900"`
}

package mq

// OrderCreatedEvent is published once per freshly created order; idempotent
// replays do not emit it.
type OrderCreatedEvent struct {
	OrderId     string `json:"order_id"`
	UserId      string `json:"user_id"`
	OutfitId    string `json:"outfit_id"`
	Fulfillment string `json:"fulfillment"`
	Status      string `json:"status"`
	CreatedAt   int64  `json:"created_at"`
}

// TaskOrderFollowup is consumed by the fulfillment worker pool; the gateway
// only enqueues it.
const TaskOrderFollowup = "order:followup"

type OrderFollowupPayload struct {
	OrderId string `json:"order_id"`
}

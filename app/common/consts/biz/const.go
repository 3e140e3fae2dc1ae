package biz

type CtxKey string

const (
	USER_KEY    CtxKey = "user_id"
	REQUEST_KEY CtxKey = "request_id"

	HeaderApiKey    = "x-api-key"
	HeaderUserId    = "x-user-id"
	HeaderRequestId = "x-request-id"
)

const (
	OrderStatusPending = "pending"

	FulfillmentDelivery = "delivery"
	FulfillmentPickup   = "pickup"
	FulfillmentStylist  = "stylist"

	MaxOrderNoteLen = 500
)

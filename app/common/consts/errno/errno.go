package errno

const (
	StatusOK = 10000
)

const (
	Unauthorized = 40000 + iota
	BadRequest
	Forbidden
	TooManyRequests
	NoItems
	ItemsNotFound
	ItemNotFound
	OutfitNotFound
	OrderNotFound
)

const (
	InternalError = 50000 + iota
	StoreError
)

const (
	OpenAIError = 60000 + iota
	AIJSONParseError
	AIEmptyOutfits
)

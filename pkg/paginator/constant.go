package paginator

const (
	DefaultPage  = 1
	DefaultLimit = 15
	// MaxLimit caps archive listings.
	MaxLimit = 100
)

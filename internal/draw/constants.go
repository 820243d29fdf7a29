package draw

// DefaultCacheSize bounds the number of materialized candidate lists kept.
// Fixed-capability queries need 7 entries; the rest cover same-type queries.
const DefaultCacheSize = 128

// Error messages
const (
	ErrMsgNilCatalog       = "draw layer requires a catalog"
	ErrMsgInvalidCacheSize = "cache size must be positive"
	ErrMsgCreateCache      = "failed to create draw cache: %w"
)

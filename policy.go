package tiercache

import "time"

// Tier selects which storage layer(s) a write lands in.
type Tier int

const (
	// TierBoth writes through to memory and the durable store. Zero value
	// so a zero Policy caches everywhere.
	TierBoth Tier = iota
	TierMemory
	TierDurable
)

func (t Tier) includesMemory() bool  { return t == TierBoth || t == TierMemory }
func (t Tier) includesDurable() bool { return t == TierBoth || t == TierDurable }

// TTL presets, picked per how volatile the underlying data is.
const (
	TTLShort    = 5 * time.Minute
	TTLMedium   = 30 * time.Minute
	TTLLong     = 24 * time.Hour
	TTLExtended = 7 * 24 * time.Hour
)

// Policy is the per-write configuration: how long the value stays valid and
// which tier(s) receive it. TTL <= 0 means the entry never expires.
type Policy struct {
	TTL  time.Duration
	Tier Tier
}

package domain

import "time"

// ActivityConfig describes one earnable activity kind: how much it pays,
// how long the user must stay engaged before a claim is accepted, and how
// many completions per calendar day a single user is allowed.
type ActivityConfig struct {
	Kind         ActivityKind
	RewardAmount float64
	WarmupDelay  time.Duration
	MinDuration  time.Duration
	DailyLimit   int // 0 means no daily cap
	BatchSize    int // captcha challenges bundled into one reward
	ClaimTTL     time.Duration
	AdSlots      int // rotation window for ad URLs
}

// Catalog is the fixed set of claimable activities. All three kinds share
// the same session lifecycle; only these parameters differ.
var Catalog = map[ActivityKind]ActivityConfig{
	KindAd: {
		Kind:         KindAd,
		RewardAmount: 5,
		WarmupDelay:  3 * time.Second,
		MinDuration:  15 * time.Second,
		DailyLimit:   10,
		ClaimTTL:     10 * time.Minute,
		AdSlots:      4,
	},
	KindCaptcha: {
		Kind:         KindCaptcha,
		RewardAmount: 10,
		WarmupDelay:  3 * time.Second,
		MinDuration:  30 * time.Second,
		DailyLimit:   2,
		BatchSize:    10,
		ClaimTTL:     30 * time.Minute,
	},
	KindGame: {
		Kind:         KindGame,
		RewardAmount: 60,
		MinDuration:  5 * time.Minute,
		ClaimTTL:     2 * time.Hour,
	},
}

// ConfigFor returns the catalog entry for kind.
func ConfigFor(kind ActivityKind) (ActivityConfig, bool) {
	cfg, ok := Catalog[kind]
	return cfg, ok
}

package domain

import "time"

type User struct {
	ID            int       `db:"id"`
	Login         string    `db:"login"`
	PasswordHash  string    `db:"password_hash"`
	DisplayName   string    `db:"display_name"`
	ReferralCode  string    `db:"referral_code"`
	ReferredBy    *int      `db:"referred_by"`
	ReferralCount int       `db:"referral_count"`
	CreatedAt     time.Time `db:"created_at"`
}

type Wallet struct {
	ID            int     `db:"id"`
	UserID        int     `db:"user_id"`
	ORBalance     float64 `db:"or_balance"`
	INRBalance    float64 `db:"inr_balance"`
	WalletAddress string  `db:"wallet_address"`
}

type ActivityKind string

const (
	KindAd       ActivityKind = "ad"
	KindCaptcha  ActivityKind = "captcha"
	KindGame     ActivityKind = "game"
	KindReferral ActivityKind = "referral"
)

type SessionState string

const (
	StateLoading       SessionState = "loading"
	StateActive        SessionState = "active"
	StateAwaitingClaim SessionState = "awaiting_claim"
	StateVerifying     SessionState = "verifying"
	StateCredited      SessionState = "credited"
	StateRejected      SessionState = "rejected"
)

// Terminal reports whether a session can never transition again.
func (s SessionState) Terminal() bool {
	return s == StateCredited || s == StateRejected
}

type ActivitySession struct {
	ID          int          `db:"id"`
	UserID      int          `db:"user_id"`
	Kind        ActivityKind `db:"kind"`
	State       SessionState `db:"state"`
	Fingerprint string       `db:"fingerprint"`
	Challenge   string       `db:"challenge"`
	SolvedCount int          `db:"solved_count"`
	AdSlot      int          `db:"ad_slot"`
	PlaySeconds int          `db:"play_seconds"`
	StartedAt   time.Time    `db:"started_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
	VerifiedAt  *time.Time   `db:"verified_at"`
}

type QuotaCounter struct {
	ID     int          `db:"id"`
	UserID int          `db:"user_id"`
	Kind   ActivityKind `db:"kind"`
	Day    string       `db:"day"`
	Count  int          `db:"count"`
}

type EarningTransaction struct {
	ID          int          `db:"id"`
	UserID      int          `db:"user_id"`
	Amount      float64      `db:"amount"`
	Kind        ActivityKind `db:"kind"`
	Description string       `db:"description"`
	CreatedAt   time.Time    `db:"created_at"`
}

type Withdrawal struct {
	ID          int       `db:"id"`
	UserID      int       `db:"user_id"`
	CardNumber  string    `db:"card_number"`
	Amount      float64   `db:"amount"`
	ProcessedAt time.Time `db:"processed_at"`
}

type Referral struct {
	ID           int       `db:"id"`
	ReferrerUID  int       `db:"referrer_uid"`
	ReferredUID  int       `db:"referred_uid"`
	ReferralCode string    `db:"referral_code"`
	ReferralDate time.Time `db:"referral_date"`
	Claimed      bool      `db:"claimed"`
}

package domain

import "time"

// Well-known reward types.
const (
	RewardTypeTOC   = "TOC"
	RewardTypeSNCT  = "SNCT"
	RewardTypeScore = "SCORE"
)

// Reward is the ledger row for one (wallet, reward type) pair. At most one
// row exists per pair; a missing row is a zero balance.
// Invariant: RewardAmount == RewardAvailable + RewardWithdrawn.
type Reward struct {
	ID              int64     `db:"id" json:"id"`
	WalletID        string    `db:"wallet_id" json:"wallet_id"`
	RewardType      string    `db:"reward_type" json:"reward_type"`
	RewardAmount    float64   `db:"reward_amount" json:"reward_amount"`
	RewardAvailable float64   `db:"reward_available" json:"reward_available"`
	RewardWithdrawn float64   `db:"reward_withdrawn" json:"reward_withdrawn"`
	TotalExp        float64   `db:"total_exp" json:"total_exp"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// RewardDelta is a signed adjustment to a ledger row. The gross amount is
// never set directly; it is recomputed as available + withdrawn on write.
type RewardDelta struct {
	Available float64
	Withdrawn float64
	Exp       float64
}

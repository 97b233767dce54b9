package domain

import "time"

// History is an append-only play-session record. Creating one credits the
// matching reward row and bumps the player's experience.
type History struct {
	ID           int64     `db:"id" json:"id"`
	PlayerID     int64     `db:"player_id" json:"player_id"`
	WalletID     string    `db:"wallet_id" json:"wallet_id"`
	RewardNumber float64   `db:"reward_number" json:"reward_number"`
	ExpNumber    float64   `db:"exp_number" json:"exp_number"`
	RewardType   string    `db:"reward_type" json:"reward_type"`
	ActivityName string    `db:"activity_name" json:"activity_name,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// TopRewardEntry is one leaderboard row: a player and their summed reward
// over a date window.
type TopRewardEntry struct {
	PlayerID    int64   `json:"player_id"`
	WalletID    string  `json:"wallet_id"`
	SkinName    string  `json:"skin_name,omitempty"`
	StarNumber  int     `json:"star_number"`
	TotalReward float64 `json:"total_reward"`
}

// DailyHistory groups a wallet's history rows for one UTC calendar day.
type DailyHistory struct {
	Date        string    `json:"date"`
	TotalExp    float64   `json:"total_exp"`
	TotalReward float64   `json:"total_reward"`
	Entries     []History `json:"entries"`
}

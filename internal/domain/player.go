package domain

import "time"

// Player is an owned game character. One wallet may own several players,
// distinguished by TokenID.
type Player struct {
	ID         int64     `db:"id" json:"id"`
	WalletID   string    `db:"wallet_id" json:"wallet_id"`
	StarNumber int       `db:"star_number" json:"star_number"`
	Mana       int       `db:"mana" json:"mana"`
	HP         int       `db:"hp" json:"hp"`
	TotalExp   float64   `db:"total_exp" json:"total_exp"`
	SkinName   string    `db:"skin_name" json:"skin_name,omitempty"`
	TokenID    string    `db:"token_id" json:"token_id,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

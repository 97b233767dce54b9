package domain

import "time"

// User is a wallet identity. PublicAddress is stored lowercase and unique;
// Nonce is the current one-time login challenge value.
type User struct {
	ID            int64     `db:"id" json:"id"`
	PublicAddress string    `db:"public_address" json:"public_address"`
	Nonce         int       `db:"nonce" json:"nonce"`
	WalletID      string    `db:"wallet_id" json:"wallet_id,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

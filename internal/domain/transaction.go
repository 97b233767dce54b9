package domain

import "time"

// EventStatus is the lifecycle status of a deposit or withdrawal event.
type EventStatus string

const (
	EventStatusFail    EventStatus = "Fail"
	EventStatusPending EventStatus = "Pending"
	EventStatusSuccess EventStatus = "Success"
)

// Deposit is an append-only inbound token event. A successful deposit
// credits the matching reward ledger row.
type Deposit struct {
	ID           int64       `db:"id" json:"id"`
	WalletID     string      `db:"wallet_id" json:"wallet_id"`
	TokenBalance float64     `db:"token_balance" json:"token_balance"`
	TokenType    string      `db:"token_type" json:"token_type"`
	Status       EventStatus `db:"status" json:"status"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
}

// Withdrawal is an append-only outbound token event. The ledger is debited
// the requested amount plus the withdraw fee; settlement happens outside
// this system, so a successful request stays Pending.
type Withdrawal struct {
	ID           int64       `db:"id" json:"id"`
	WalletID     string      `db:"wallet_id" json:"wallet_id"`
	TokenBalance float64     `db:"token_balance" json:"token_balance"`
	TokenType    string      `db:"token_type" json:"token_type"`
	Status       EventStatus `db:"status" json:"status"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
}

// Claim records an off-system payout claim against a reward balance.
type Claim struct {
	ID                int64     `db:"id" json:"id"`
	WalletID          string    `db:"wallet_id" json:"wallet_id"`
	ClaimRewardAmount float64   `db:"claim_reward_amount" json:"claim_reward_amount"`
	ClaimRewardType   string    `db:"claim_reward_type" json:"claim_reward_type"`
	ClaimStatus       string    `db:"claim_status" json:"claim_status"`
	TransactionID     string    `db:"transaction_id" json:"transaction_id,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

const (
	ClaimStatusSubmitted = "Submitted"
	ClaimStatusSuccess   = "Success"
)

package domain

import "time"

// Turn is a per-day action allowance for one (wallet, player) pair. A row is
// active while its CreatedAt lies within the rolling 24-hour window; the
// first request of a new window seeds a fresh row from zero.
type Turn struct {
	ID         int64     `db:"id" json:"id"`
	WalletID   string    `db:"wallet_id" json:"wallet_id"`
	PlayerID   int64     `db:"player_id" json:"player_id"`
	TurnNumber int       `db:"turn_number" json:"turn_number"`
	TurnLimit  int       `db:"turn_limit" json:"turn_limit"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// TurnWindow is how long a turn row stays active.
const TurnWindow = 24 * time.Hour

// TurnLimitForStar returns the daily turn allowance for a star tier.
func TurnLimitForStar(star int) int {
	switch star {
	case 1:
		return 4
	case 2:
		return 5
	case 3:
		return 7
	case 4:
		return 10
	case 5:
		return 14
	default:
		return 5
	}
}

// ManaForStar returns the full mana pool for a star tier.
func ManaForStar(star int) int {
	switch star {
	case 1:
		return 100
	case 2:
		return 125
	case 3:
		return 175
	case 4:
		return 250
	case 5:
		return 350
	default:
		return 0
	}
}

// ManaRefillCostForStar returns the TOC cost of a full mana refill for a
// star tier.
func ManaRefillCostForStar(star int) float64 {
	switch star {
	case 1:
		return 30
	case 2:
		return 37.5
	case 3:
		return 52.5
	case 4:
		return 75
	case 5:
		return 105
	default:
		return 0
	}
}

// ManaBootCost returns the TOC cost of restoring manaDelta points of mana
// for a star tier, pro-rated from the full-refill cost.
func ManaBootCost(star, manaDelta int) float64 {
	full := ManaForStar(star)
	if full == 0 || manaDelta <= 0 {
		return 0
	}
	return ManaRefillCostForStar(star) * float64(manaDelta) / float64(full)
}

package repository

import (
	"context"
	"errors"

	"gamefi_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlayerRepository struct {
	db *pgxpool.Pool
}

func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

const playerColumns = `id, wallet_id, star_number, mana, hp, total_exp, skin_name, token_id, created_at`

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	var skin, tokenID *string
	if err := row.Scan(
		&p.ID, &p.WalletID, &p.StarNumber, &p.Mana, &p.HP, &p.TotalExp, &skin, &tokenID, &p.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if skin != nil {
		p.SkinName = *skin
	}
	if tokenID != nil {
		p.TokenID = *tokenID
	}
	return &p, nil
}

// GetByID retrieves a player by id. Returns (nil, nil) when absent.
func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (*domain.Player, error) {
	row := r.db.QueryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE id = $1`, id)
	return scanPlayer(row)
}

// GetByWalletAndID retrieves a player owned by the given wallet.
func (r *PlayerRepository) GetByWalletAndID(ctx context.Context, walletID string, playerID int64) (*domain.Player, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+playerColumns+` FROM players WHERE wallet_id = $1 AND id = $2
	`, walletID, playerID)
	return scanPlayer(row)
}

// ListByWallet returns the wallet's players, newest first
func (r *PlayerRepository) ListByWallet(ctx context.Context, walletID string, limit, offset int) ([]domain.Player, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, `
		SELECT `+playerColumns+`
		FROM players
		WHERE wallet_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, walletID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

// Create inserts a new player
func (r *PlayerRepository) Create(ctx context.Context, p *domain.Player) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO players (wallet_id, star_number, mana, hp, total_exp, skin_name, token_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, p.WalletID, p.StarNumber, p.Mana, p.HP, p.TotalExp, p.SkinName, p.TokenID).Scan(&p.ID, &p.CreatedAt)
}

// AddExp adds expDelta to the player's total experience. Returns the new
// total, or pgx.ErrNoRows when the wallet does not own such a player.
func (r *PlayerRepository) AddExp(ctx context.Context, walletID string, playerID int64, expDelta float64) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx, `
		UPDATE players SET total_exp = total_exp + $3
		WHERE wallet_id = $1 AND id = $2
		RETURNING total_exp
	`, walletID, playerID, expDelta).Scan(&total)
	return total, err
}

// AddHP adds hpDelta to the player's hit points
func (r *PlayerRepository) AddHP(ctx context.Context, playerID int64, hpDelta int) (int, error) {
	var hp int
	err := r.db.QueryRow(ctx, `
		UPDATE players SET hp = hp + $2 WHERE id = $1 RETURNING hp
	`, playerID, hpDelta).Scan(&hp)
	return hp, err
}

package repository

import (
	"context"
	"errors"
	"time"

	"gamefi_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TurnRepository struct {
	db *pgxpool.Pool
}

func NewTurnRepository(db *pgxpool.Pool) *TurnRepository {
	return &TurnRepository{db: db}
}

// GetActive retrieves the turn row whose createdAt lies within the rolling
// window ending at now. Returns (nil, nil) when the window has no row yet.
// The caller passes now so the boundary is computed once per request.
func (r *TurnRepository) GetActive(ctx context.Context, walletID string, playerID int64, now time.Time) (*domain.Turn, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, wallet_id, player_id, turn_number, turn_limit, created_at
		FROM turns
		WHERE wallet_id = $1 AND player_id = $2 AND created_at >= $3 AND created_at <= $4
		ORDER BY created_at DESC
		LIMIT 1
	`, walletID, playerID, now.Add(-domain.TurnWindow), now)

	var t domain.Turn
	if err := row.Scan(&t.ID, &t.WalletID, &t.PlayerID, &t.TurnNumber, &t.TurnLimit, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// Create inserts a fresh-window turn row
func (r *TurnRepository) Create(ctx context.Context, t *domain.Turn) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO turns (wallet_id, player_id, turn_number, turn_limit)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, t.WalletID, t.PlayerID, t.TurnNumber, t.TurnLimit).Scan(&t.ID, &t.CreatedAt)
}

// UpdateNumber sets the consumed turn count on an existing row
func (r *TurnRepository) UpdateNumber(ctx context.Context, id int64, turnNumber int) error {
	tag, err := r.db.Exec(ctx, `UPDATE turns SET turn_number = $2 WHERE id = $1`, id, turnNumber)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

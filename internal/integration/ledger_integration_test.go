package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gamefi_backend/internal/config"
	"gamefi_backend/internal/domain"
	"gamefi_backend/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

func applyMigrations(t *testing.T, db *pgxpool.Pool) {
	t.Helper()
	migDir := filepath.Join("..", "..", "internal", "migrations")
	files, err := os.ReadDir(migDir)
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	for _, f := range files {
		b, err := os.ReadFile(filepath.Join(migDir, f.Name()))
		if err != nil {
			t.Fatalf("read file: %v", err)
		}
		if _, err := db.Exec(context.Background(), string(b)); err != nil {
			t.Fatalf("apply migration %s: %v", f.Name(), err)
		}
	}
}

func testDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(db.Close)
	applyMigrations(t, db)
	return db
}

func testWallet(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func TestDepositThenWithdraw(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	wallet := testWallet("w-dep")

	deposits := service.NewDepositService(db)
	withdrawals := service.NewWithdrawService(db, 5)
	ledger := service.NewLedger(db)

	dep, err := deposits.CreateDeposit(ctx, wallet, 100, domain.RewardTypeTOC)
	if err != nil {
		t.Fatalf("create deposit: %v", err)
	}
	if dep.Status != domain.EventStatusSuccess {
		t.Fatalf("deposit status = %s, want Success", dep.Status)
	}

	reward, err := ledger.GetByWalletAndType(ctx, wallet, domain.RewardTypeTOC)
	if err != nil {
		t.Fatalf("get reward: %v", err)
	}
	if reward == nil || reward.RewardAvailable != 100 || reward.RewardAmount != 100 {
		t.Fatalf("reward after deposit = %+v, want available=100 amount=100", reward)
	}

	wd, err := withdrawals.CreateWithdraw(ctx, wallet, 50, domain.RewardTypeTOC)
	if err != nil {
		t.Fatalf("create withdraw: %v", err)
	}
	if wd.Status != domain.EventStatusPending {
		t.Fatalf("withdrawal status = %s, want Pending", wd.Status)
	}

	reward, err = ledger.GetByWalletAndType(ctx, wallet, domain.RewardTypeTOC)
	if err != nil {
		t.Fatalf("get reward: %v", err)
	}
	// 100 - 50*(1 + 5/100)
	if reward.RewardAmount != 47.5 || reward.RewardAvailable != 47.5 {
		t.Fatalf("reward after withdraw = %+v, want amount=47.5", reward)
	}
}

func TestWithdrawInsufficientLeavesLedgerUntouched(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	wallet := testWallet("w-insuf")

	deposits := service.NewDepositService(db)
	withdrawals := service.NewWithdrawService(db, 5)
	ledger := service.NewLedger(db)

	if _, err := deposits.CreateDeposit(ctx, wallet, 10, domain.RewardTypeTOC); err != nil {
		t.Fatalf("create deposit: %v", err)
	}

	wd, err := withdrawals.CreateWithdraw(ctx, wallet, 50, domain.RewardTypeTOC)
	if err != service.ErrInsufficientFunds {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	if wd != nil && wd.Status != domain.EventStatusFail {
		t.Fatalf("withdrawal status = %s, want Fail", wd.Status)
	}

	reward, err := ledger.GetByWalletAndType(ctx, wallet, domain.RewardTypeTOC)
	if err != nil {
		t.Fatalf("get reward: %v", err)
	}
	if reward.RewardAmount != 10 || reward.RewardAvailable != 10 {
		t.Fatalf("reward mutated by failed withdraw: %+v", reward)
	}
}

func TestWithdrawChecksAvailableNotGross(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	wallet := testWallet("w-avail")

	deposits := service.NewDepositService(db)
	claims := service.NewClaimService(db, config.ClaimModeTransfer, 5)
	withdrawals := service.NewWithdrawService(db, 5)
	ledger := service.NewLedger(db)

	if _, err := deposits.CreateDeposit(ctx, wallet, 100, domain.RewardTypeTOC); err != nil {
		t.Fatalf("create deposit: %v", err)
	}
	// move 90 to withdrawn: gross stays 100, available drops to 10
	if _, err := claims.CreateClaim(ctx, wallet, 90, domain.RewardTypeTOC, "0xtx-avail"); err != nil {
		t.Fatalf("create claim: %v", err)
	}

	if _, err := withdrawals.CreateWithdraw(ctx, wallet, 50, domain.RewardTypeTOC); err != service.ErrInsufficientFunds {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}

	reward, err := ledger.GetByWalletAndType(ctx, wallet, domain.RewardTypeTOC)
	if err != nil {
		t.Fatalf("get reward: %v", err)
	}
	if reward.RewardAvailable != 10 || reward.RewardWithdrawn != 90 {
		t.Fatalf("reward mutated by rejected withdraw: %+v", reward)
	}
}

func TestClaimMint(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	wallet := testWallet("w-mint")

	claims := service.NewClaimService(db, config.ClaimModeMint, 5)
	ledger := service.NewLedger(db)

	claim, err := claims.CreateClaim(ctx, wallet, 100, domain.RewardTypeTOC, "0xtx1")
	if err != nil {
		t.Fatalf("create claim: %v", err)
	}
	if claim.ClaimStatus != domain.ClaimStatusSuccess {
		t.Fatalf("claim status = %s, want Success", claim.ClaimStatus)
	}

	reward, err := ledger.GetByWalletAndType(ctx, wallet, domain.RewardTypeTOC)
	if err != nil {
		t.Fatalf("get reward: %v", err)
	}
	// 100 - 100*(5/100)
	if reward == nil || reward.RewardAvailable != 95 {
		t.Fatalf("reward after mint claim = %+v, want available=95", reward)
	}
}

func TestClaimTransfer(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	wallet := testWallet("w-xfer")

	deposits := service.NewDepositService(db)
	claims := service.NewClaimService(db, config.ClaimModeTransfer, 5)
	ledger := service.NewLedger(db)

	if _, err := deposits.CreateDeposit(ctx, wallet, 100, domain.RewardTypeTOC); err != nil {
		t.Fatalf("create deposit: %v", err)
	}

	claim, err := claims.CreateClaim(ctx, wallet, 40, domain.RewardTypeTOC, "0xtx2")
	if err != nil {
		t.Fatalf("create claim: %v", err)
	}
	if claim.ClaimStatus != domain.ClaimStatusSuccess {
		t.Fatalf("claim status = %s, want Success", claim.ClaimStatus)
	}

	reward, err := ledger.GetByWalletAndType(ctx, wallet, domain.RewardTypeTOC)
	if err != nil {
		t.Fatalf("get reward: %v", err)
	}
	if reward.RewardAvailable != 60 || reward.RewardWithdrawn != 40 || reward.RewardAmount != 100 {
		t.Fatalf("reward after transfer claim = %+v, want available=60 withdrawn=40 amount=100", reward)
	}

	if _, err := claims.CreateClaim(ctx, testWallet("w-xfer-empty"), 10, domain.RewardTypeTOC, ""); err != service.ErrNothingToClaim {
		t.Fatalf("err = %v, want ErrNothingToClaim", err)
	}
}

func TestHistoryCreditsLedger(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	wallet := testWallet("w-hist")

	players := service.NewPlayerService(db)
	histories := service.NewHistoryService(db)
	ledger := service.NewLedger(db)

	player, err := players.Create(ctx, wallet, 2, "Apples", "tok-1")
	if err != nil {
		t.Fatalf("create player: %v", err)
	}

	res, err := histories.CreateHistory(ctx, &domain.History{
		PlayerID:     player.ID,
		WalletID:     wallet,
		RewardNumber: 12.5,
		ExpNumber:    3,
		RewardType:   domain.RewardTypeScore,
		ActivityName: "daily",
	})
	if err != nil {
		t.Fatalf("create history: %v", err)
	}
	if !res.ExpApplied {
		t.Fatalf("exp not applied: %s", res.Message)
	}

	reward, err := ledger.GetByWalletAndType(ctx, wallet, domain.RewardTypeScore)
	if err != nil {
		t.Fatalf("get reward: %v", err)
	}
	if reward == nil || reward.RewardAvailable != 12.5 || reward.TotalExp != 3 {
		t.Fatalf("reward after history = %+v, want available=12.5 exp=3", reward)
	}

	got, err := players.Get(ctx, player.ID)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if got.TotalExp != 3 {
		t.Fatalf("player exp = %v, want 3", got.TotalExp)
	}
}

func TestHistoryMissingPlayerStillRecorded(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	wallet := testWallet("w-hist-nop")

	histories := service.NewHistoryService(db)

	res, err := histories.CreateHistory(ctx, &domain.History{
		PlayerID:     999999999,
		WalletID:     wallet,
		RewardNumber: 5,
		ExpNumber:    1,
		RewardType:   domain.RewardTypeScore,
	})
	if err != nil {
		t.Fatalf("create history: %v", err)
	}
	if res.ExpApplied {
		t.Fatalf("exp applied for a player that does not exist")
	}
	if res.History.ID == 0 {
		t.Fatalf("history row was not persisted")
	}
}

func TestTurnGetOrInitIdempotentWithinWindow(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	wallet := testWallet("w-turn")

	players := service.NewPlayerService(db)
	turns := service.NewTurnService(db)

	player, err := players.Create(ctx, wallet, 3, "Pears", "tok-2")
	if err != nil {
		t.Fatalf("create player: %v", err)
	}

	first, err := turns.GetOrInit(ctx, wallet, player.ID)
	if err != nil {
		t.Fatalf("get or init: %v", err)
	}
	if first.TurnNumber != 0 || first.TurnLimit != domain.TurnLimitForStar(3) {
		t.Fatalf("fresh turn = %+v, want number=0 limit=7", first)
	}

	second, err := turns.GetOrInit(ctx, wallet, player.ID)
	if err != nil {
		t.Fatalf("get or init again: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("second call created a new row: %d != %d", second.ID, first.ID)
	}

	updated, err := turns.Update(ctx, wallet, player.ID, 3)
	if err != nil {
		t.Fatalf("update turn: %v", err)
	}
	if updated.TurnNumber != 3 {
		t.Fatalf("turn number = %d, want 3", updated.TurnNumber)
	}

	if _, err := turns.Update(ctx, wallet, player.ID, first.TurnLimit+1); err != service.ErrTurnLimitExceeded {
		t.Fatalf("err = %v, want ErrTurnLimitExceeded", err)
	}
}

func TestBootManaAllOrNothing(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	wallet := testWallet("w-mana")

	deposits := service.NewDepositService(db)
	players := service.NewPlayerService(db)
	turns := service.NewTurnService(db)
	ledger := service.NewLedger(db)

	player, err := players.Create(ctx, wallet, 1, "Bananas", "tok-3")
	if err != nil {
		t.Fatalf("create player: %v", err)
	}

	// empty wallet: the refill must be rejected and mana stay at 0
	if _, _, err := turns.BootMana(ctx, player.ID); err != service.ErrNotEnoughToUse {
		t.Fatalf("err = %v, want ErrNotEnoughToUse", err)
	}
	got, err := players.Get(ctx, player.ID)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if got.Mana != 0 {
		t.Fatalf("mana = %d after rejected refill, want 0", got.Mana)
	}

	if _, err := deposits.CreateDeposit(ctx, wallet, 100, domain.RewardTypeTOC); err != nil {
		t.Fatalf("create deposit: %v", err)
	}

	refilled, cost, err := turns.BootMana(ctx, player.ID)
	if err != nil {
		t.Fatalf("boot mana: %v", err)
	}
	if refilled.Mana != domain.ManaForStar(1) {
		t.Fatalf("mana = %d, want %d", refilled.Mana, domain.ManaForStar(1))
	}
	if cost != 30 {
		t.Fatalf("cost = %v, want 30", cost)
	}

	reward, err := ledger.GetByWalletAndType(ctx, wallet, domain.RewardTypeTOC)
	if err != nil {
		t.Fatalf("get reward: %v", err)
	}
	if reward.RewardAmount != 70 {
		t.Fatalf("reward after refill = %+v, want amount=70", reward)
	}

	// already full: no charge
	_, cost, err = turns.BootMana(ctx, player.ID)
	if err != nil {
		t.Fatalf("boot mana full: %v", err)
	}
	if cost != 0 {
		t.Fatalf("cost = %v for a full pool, want 0", cost)
	}
}

func TestSummonDebitsAndRolls(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	wallet := testWallet("w-summon")

	deposits := service.NewDepositService(db)
	players := service.NewPlayerService(db)
	ledger := service.NewLedger(db)

	if _, _, err := players.Summon(ctx, wallet); err != service.ErrNotEnoughToUse {
		t.Fatalf("err = %v, want ErrNotEnoughToUse", err)
	}

	if _, err := deposits.CreateDeposit(ctx, wallet, 1500, domain.RewardTypeSNCT); err != nil {
		t.Fatalf("create deposit: %v", err)
	}

	star, skin, err := players.Summon(ctx, wallet)
	if err != nil {
		t.Fatalf("summon: %v", err)
	}
	if star < 1 || star > 5 || star == 4 {
		t.Fatalf("star = %d, want 1-3 or 5", star)
	}
	if skin == "" {
		t.Fatalf("empty skin")
	}

	reward, err := ledger.GetByWalletAndType(ctx, wallet, domain.RewardTypeSNCT)
	if err != nil {
		t.Fatalf("get reward: %v", err)
	}
	if reward.RewardAmount != 500 {
		t.Fatalf("reward after summon = %+v, want amount=500", reward)
	}
}

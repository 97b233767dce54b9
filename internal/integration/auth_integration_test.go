package integration

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"gamefi_backend/internal/service"

	"github.com/ethereum/go-ethereum/crypto"
)

// signLoginMessage produces the same bytes a wallet's personal_sign would:
// EIP-191 prefix, keccak hash, signature with V in the 27/28 range.
func signLoginMessage(t *testing.T, key *ecdsa.PrivateKey, nonce int) string {
	t.Helper()
	msg := service.LoginMessage(nonce)
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(msg), msg)
	sig, err := crypto.Sign(crypto.Keccak256([]byte(prefixed)), key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return "0x" + hex.EncodeToString(sig)
}

func TestLoginRotatesNonce(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	service.InitJWT("integration-test-secret", 1)

	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	address := strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())

	auth := service.NewAuthService(db)

	user, err := auth.Register(ctx, address, testWallet("w-auth"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// registering the same address twice must be rejected
	if _, err := auth.Register(ctx, address, "other"); err != service.ErrAddressTaken {
		t.Fatalf("err = %v, want ErrAddressTaken", err)
	}

	sig := signLoginMessage(t, key, user.Nonce)

	token, _, err := auth.Login(ctx, address, sig)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("empty token")
	}

	userID, tokenAddress, err := service.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != user.ID || tokenAddress != address {
		t.Fatalf("token claims = (%d, %s), want (%d, %s)", userID, tokenAddress, user.ID, address)
	}

	stored, err := auth.Check(ctx, address)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if stored.Nonce == user.Nonce {
		t.Fatalf("nonce was not rotated after login")
	}

	// the old signature must not open a second session
	if _, _, err := auth.Login(ctx, address, sig); err != service.ErrBadSignature {
		t.Fatalf("replayed signature: err = %v, want ErrBadSignature", err)
	}
}

func TestLoginUnknownAddress(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	service.InitJWT("integration-test-secret", 1)

	auth := service.NewAuthService(db)
	if _, _, err := auth.Login(ctx, "0x0000000000000000000000000000000000000001", "0xdead"); err != service.ErrUnknownAddress {
		t.Fatalf("err = %v, want ErrUnknownAddress", err)
	}
}

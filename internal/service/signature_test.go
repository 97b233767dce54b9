package service

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
)

func signMessage(t *testing.T, message string) (address, signature string) {
	t.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	sig, err := crypto.Sign(personalSignHash(message), key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	// wallets report V as 27/28
	sig[crypto.RecoveryIDOffset] += 27
	addr := strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())
	return addr, "0x" + hex.EncodeToString(sig)
}

func TestRecoverPersonalSignature_Valid(t *testing.T) {
	msg := LoginMessage(4242)
	addr, sig := signMessage(t, msg)

	recovered, err := RecoverPersonalSignature(msg, sig)
	if err != nil {
		t.Fatalf("recover: %v", err)
	}
	if recovered != addr {
		t.Fatalf("recovered %s, want %s", recovered, addr)
	}
}

func TestRecoverPersonalSignature_WrongNonce(t *testing.T) {
	addr, sig := signMessage(t, LoginMessage(1111))

	// the signature is over nonce 1111; verifying against nonce 2222
	// must recover a different address
	recovered, err := RecoverPersonalSignature(LoginMessage(2222), sig)
	if err == nil && recovered == addr {
		t.Fatalf("stale nonce signature must not verify")
	}
}

func TestRecoverPersonalSignature_Malformed(t *testing.T) {
	if _, err := RecoverPersonalSignature("msg", "not-hex"); err == nil {
		t.Fatalf("expected error for non-hex signature")
	}
	if _, err := RecoverPersonalSignature("msg", "0xdeadbeef"); err == nil {
		t.Fatalf("expected error for short signature")
	}
}

func TestLoginMessage(t *testing.T) {
	got := LoginMessage(123)
	want := "I am signing my one-time nonce: 123"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

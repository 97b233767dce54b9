package service

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	InitJWT("test-secret", 1)

	token, err := GenerateToken(42, "0xabc")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	userID, addr, err := ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != 42 {
		t.Fatalf("user id %d, want 42", userID)
	}
	if addr != "0xabc" {
		t.Fatalf("address %q, want 0xabc", addr)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	InitJWT("test-secret", 1)

	if _, _, err := ParseToken("not.a.token"); err == nil {
		t.Fatalf("expected error for garbage token")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	InitJWT("secret-one", 1)
	token, err := GenerateToken(1, "0xdef")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	InitJWT("secret-two", 1)
	if _, _, err := ParseToken(token); err == nil {
		t.Fatalf("expected error for token signed with another secret")
	}
}

package service

import "testing"

func TestWithdrawDebit(t *testing.T) {
	// fee is added on top: withdrawing 50 at 5% debits 52.5
	if got := WithdrawDebit(50, 5); got != 52.5 {
		t.Fatalf("WithdrawDebit(50, 5) = %v, want 52.5", got)
	}
	if got := WithdrawDebit(100, 0); got != 100 {
		t.Fatalf("WithdrawDebit(100, 0) = %v, want 100", got)
	}
}

func TestClaimNet(t *testing.T) {
	// fee is subtracted: claiming 100 at 5% nets 95
	if got := ClaimNet(100, 5); got != 95 {
		t.Fatalf("ClaimNet(100, 5) = %v, want 95", got)
	}
	if got := ClaimNet(80, 0); got != 80 {
		t.Fatalf("ClaimNet(80, 0) = %v, want 80", got)
	}
}

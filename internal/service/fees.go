package service

// WithdrawDebit is the ledger debit for a withdrawal request: the fee is
// charged on top of the requested amount, so the ledger loses more than
// the payout.
func WithdrawDebit(amount, feePercent float64) float64 {
	return amount + (feePercent/100)*amount
}

// ClaimNet is the ledger credit for a claim: the fee is subtracted from the
// claimed amount, not added on top.
func ClaimNet(amount, feePercent float64) float64 {
	return amount - (feePercent/100)*amount
}

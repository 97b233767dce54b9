package service

import "errors"

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotEnoughToUse    = errors.New("not enough balance to use")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrTurnNotFound      = errors.New("turn record not found")
	ErrTurnLimitExceeded = errors.New("turn number exceeds turn limit")
	ErrAddressTaken      = errors.New("public address must be unique")
	ErrUnknownAddress    = errors.New("public address is not registered")
	ErrBadSignature      = errors.New("signature verification failed")
	ErrNothingToClaim    = errors.New("no available reward to claim")
)

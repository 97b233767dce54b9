package service

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// LoginMessage builds the challenge a wallet signs to prove ownership.
// The text must match the client byte for byte.
func LoginMessage(nonce int) string {
	return fmt.Sprintf("I am signing my one-time nonce: %d", nonce)
}

// RecoverPersonalSignature recovers the lowercased address that produced a
// personal_sign signature over message.
func RecoverPersonalSignature(message, signature string) (string, error) {
	sig, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return "", ErrBadSignature
	}
	if len(sig) != crypto.SignatureLength {
		return "", ErrBadSignature
	}

	// wallets emit V as 27/28, secp256k1 recovery wants 0/1
	sig = append([]byte(nil), sig...)
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(personalSignHash(message), sig)
	if err != nil {
		return "", ErrBadSignature
	}

	return strings.ToLower(crypto.PubkeyToAddress(*pub).Hex()), nil
}

// personalSignHash applies the EIP-191 personal message prefix before
// hashing, mirroring what personal_sign does on the wallet side.
func personalSignHash(message string) []byte {
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	return crypto.Keccak256([]byte(prefixed))
}

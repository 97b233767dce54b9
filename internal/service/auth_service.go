package service

import (
	"context"
	"math/rand"
	"strings"

	"gamefi_backend/internal/domain"
	"gamefi_backend/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AuthService implements the nonce-based wallet signature login protocol.
type AuthService struct {
	users *repository.UserRepository
}

func NewAuthService(db *pgxpool.Pool) *AuthService {
	return &AuthService{users: repository.NewUserRepository(db)}
}

func newNonce() int {
	return rand.Intn(10000)
}

// Register creates a user for a public address with a fresh nonce.
// The address is stored lowercase; duplicates are rejected.
func (s *AuthService) Register(ctx context.Context, publicAddress, walletID string) (*domain.User, error) {
	publicAddress = strings.ToLower(publicAddress)

	existing, err := s.users.GetByPublicAddress(ctx, publicAddress)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAddressTaken
	}

	user := &domain.User{
		PublicAddress: publicAddress,
		Nonce:         newNonce(),
		WalletID:      walletID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies a signature over the current nonce challenge, rotates the
// nonce, and issues a session token. The nonce is persisted before the token
// is issued so a used challenge can never be replayed.
func (s *AuthService) Login(ctx context.Context, publicAddress, signature string) (string, *domain.User, error) {
	publicAddress = strings.ToLower(publicAddress)

	user, err := s.users.GetByPublicAddress(ctx, publicAddress)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrUnknownAddress
	}

	recovered, err := RecoverPersonalSignature(LoginMessage(user.Nonce), signature)
	if err != nil {
		return "", nil, err
	}
	if recovered != publicAddress {
		return "", nil, ErrBadSignature
	}

	user.Nonce = newNonce()
	if err := s.users.UpdateNonce(ctx, user.ID, user.Nonce); err != nil {
		return "", nil, err
	}

	token, err := GenerateToken(user.ID, publicAddress)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Check looks up a user so the caller can build the current nonce challenge.
// Returns (nil, nil) when the address is unknown; never mutates.
func (s *AuthService) Check(ctx context.Context, publicAddress string) (*domain.User, error) {
	return s.users.GetByPublicAddress(ctx, strings.ToLower(publicAddress))
}

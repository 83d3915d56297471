package services

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"heartchain_server/models"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang-jwt/jwt/v5"
)

// UserAccounts is the slice of the user store the auth service needs.
type UserAccounts interface {
	GetUserByWallet(ctx context.Context, walletAddress string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	TouchLastLogin(ctx context.Context, userID string) error
}

// AuthService handles wallet-signature authentication and session tokens.
type AuthService struct {
	Users    UserAccounts
	Secret   []byte
	TokenTTL time.Duration
}

// AuthMessage is the exact text a wallet must sign to authenticate. Binding
// the address into the message stops a captured signature being replayed for
// a different account.
func AuthMessage(walletAddress string) string {
	return "Sign this message to authenticate with Heartchain: " + models.NormalizeWallet(walletAddress)
}

// VerifyWalletSignature checks that signatureHex is a personal_sign of the
// auth message by the key behind walletAddress.
func VerifyWalletSignature(walletAddress, signatureHex string) error {
	if !common.IsHexAddress(walletAddress) {
		return fmt.Errorf("invalid wallet address %q: %w", walletAddress, ErrValidation)
	}

	signature, err := hex.DecodeString(strings.TrimPrefix(signatureHex, "0x"))
	if err != nil {
		return fmt.Errorf("malformed signature: %w", ErrValidation)
	}
	if len(signature) != crypto.SignatureLength {
		return fmt.Errorf("signature must be %d bytes: %w", crypto.SignatureLength, ErrValidation)
	}

	// Wallets return V as 27/28; go-ethereum expects 0/1.
	if signature[crypto.RecoveryIDOffset] >= 27 {
		signature[crypto.RecoveryIDOffset] -= 27
	}

	hash := accounts.TextHash([]byte(AuthMessage(walletAddress)))
	pubKey, err := crypto.SigToPub(hash, signature)
	if err != nil {
		return fmt.Errorf("failed to recover signer: %w", ErrUnauthorized)
	}

	recovered := crypto.PubkeyToAddress(*pubKey)
	if recovered != common.HexToAddress(walletAddress) {
		return fmt.Errorf("signature does not match wallet address: %w", ErrUnauthorized)
	}
	return nil
}

// Connect registers a new user from a signed wallet message and returns a
// session token with the created user. The profile is created together with
// the user, hidden until the owner fills it in.
func (as *AuthService) Connect(ctx context.Context, walletAddress, signatureHex, username string) (string, *models.User, error) {
	username = strings.TrimSpace(username)
	if walletAddress == "" || signatureHex == "" || username == "" {
		return "", nil, fmt.Errorf("walletAddress, signature and username are required: %w", ErrValidation)
	}

	if err := VerifyWalletSignature(walletAddress, signatureHex); err != nil {
		return "", nil, err
	}

	// The GSI lookups only exist for precise error messages. Uniqueness is
	// enforced by CreateUser's transactional write, which still returns
	// ErrConflict when two Connect calls race past these reads.
	if _, err := as.Users.GetUserByWallet(ctx, walletAddress); err == nil {
		return "", nil, fmt.Errorf("user already exists for this wallet: %w", ErrConflict)
	} else if !errors.Is(err, ErrNotFound) {
		return "", nil, err
	}

	if _, err := as.Users.GetUserByUsername(ctx, username); err == nil {
		return "", nil, fmt.Errorf("username already taken: %w", ErrConflict)
	} else if !errors.Is(err, ErrNotFound) {
		return "", nil, err
	}

	user := &models.User{
		WalletAddress: models.NormalizeWallet(walletAddress),
		Username:      username,
		Profile:       &models.Profile{IsVisible: false},
	}
	if err := as.Users.CreateUser(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := as.IssueToken(user.UserID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login authenticates an existing wallet, stamps last login and returns a
// session token with the user.
func (as *AuthService) Login(ctx context.Context, walletAddress, signatureHex string) (string, *models.User, error) {
	if walletAddress == "" || signatureHex == "" {
		return "", nil, fmt.Errorf("walletAddress and signature are required: %w", ErrValidation)
	}

	if err := VerifyWalletSignature(walletAddress, signatureHex); err != nil {
		return "", nil, err
	}

	user, err := as.Users.GetUserByWallet(ctx, walletAddress)
	if err != nil {
		return "", nil, err
	}

	if err := as.Users.TouchLastLogin(ctx, user.UserID); err != nil {
		return "", nil, err
	}

	token, err := as.IssueToken(user.UserID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// IssueToken signs a session token for the user.
func (as *AuthService) IssueToken(userID string) (string, error) {
	ttl := as.TokenTTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString(as.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken validates a session token and returns the user id it carries.
func (as *AuthService) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return as.Secret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token: %w", ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims: %w", ErrUnauthorized)
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", fmt.Errorf("token carries no user id: %w", ErrUnauthorized)
	}
	return userID, nil
}

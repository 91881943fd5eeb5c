package server

import (
	"context"
	"strings"
	"time"

	"innkeep/internal/auth"
	"innkeep/internal/models"
	"innkeep/internal/store"
)

// AuthService registers accounts and issues session tokens. It never
// exposes password hashes to callers.
type AuthService struct {
	users  store.CredentialStore
	tokens *auth.TokenIssuer
}

// AuthResult pairs an account's public fields with a freshly minted
// token.
type AuthResult struct {
	User  *models.User
	Token string
}

// NewAuthService constructs an AuthService.
func NewAuthService(users store.CredentialStore, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register validates both fields, hashes the password, persists the
// credential, and mints a token for the new identity. A taken username
// surfaces as a conflict, not a storage failure.
func (a *AuthService) Register(ctx context.Context, username, password string) (*AuthResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, validationError("Username and password required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, storageError("Error registering user", err)
	}

	user, err := a.users.CreateUser(ctx, username, hash, time.Now().UTC())
	if err != nil {
		if store.IsUniqueConstraint(err) {
			return nil, conflict("Username already taken")
		}
		return nil, storageError("Error registering user", err)
	}

	token, err := a.tokens.Mint(user.ID, user.Username)
	if err != nil {
		return nil, storageError("Error registering user", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies the credential and mints a token. Unknown username and
// wrong password are indistinguishable to the caller.
func (a *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := a.users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, storageError("Error logging in", err)
	}
	if user == nil || !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, invalidCredentials()
	}

	token, err := a.tokens.Mint(user.ID, user.Username)
	if err != nil {
		return nil, storageError("Error logging in", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

// VerifyToken validates a bearer session token. Expired, malformed, and
// badly-signed tokens all fail the same way.
func (a *AuthService) VerifyToken(token string) (*auth.Claims, error) {
	claims, err := a.tokens.Verify(token)
	if err != nil {
		return nil, invalidCredentials()
	}
	return claims, nil
}

package auth

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/retropixel/storefront/internal/domain"
	"github.com/retropixel/storefront/pkg/errors"
)

// Verifier checks credentials and records new accounts. Swap the stub for
// a real identity provider; nothing else depends on how accounts are kept.
type Verifier interface {
	Verify(ctx context.Context, username, password string) (*domain.User, error)
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
}

type account struct {
	user         domain.User
	passwordHash []byte
}

// stubVerifier keeps demo accounts in memory. It is not a security boundary.
type stubVerifier struct {
	mu       sync.RWMutex
	accounts map[string]account
}

// NewStubVerifier seeds the demo admin and user accounts
func NewStubVerifier() (*stubVerifier, error) {
	v := &stubVerifier{accounts: make(map[string]account)}

	seed := []struct {
		user     domain.User
		password string
	}{
		{domain.User{ID: "1", Username: "admin", Email: "admin@retropixel.com", Role: domain.RoleAdmin}, "admin123"},
		{domain.User{ID: "2", Username: "user", Email: "user@retropixel.com", Role: domain.RoleUser}, "user123"},
	}
	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		v.accounts[s.user.Username] = account{user: s.user, passwordHash: hash}
	}

	return v, nil
}

func (v *stubVerifier) Verify(_ context.Context, username, password string) (*domain.User, error) {
	v.mu.RLock()
	acc, ok := v.accounts[username]
	v.mu.RUnlock()

	if !ok || bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)) != nil {
		return nil, &errors.ErrUnauthorized{Message: "invalid credentials"}
	}

	user := acc.user
	return &user, nil
}

func (v *stubVerifier) Register(_ context.Context, username, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if _, taken := v.accounts[username]; taken {
		return nil, errors.NewValidation("username", "username is already taken")
	}

	user := domain.User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    strings.ToLower(email),
		Role:     domain.RoleUser,
	}
	v.accounts[username] = account{user: user, passwordHash: hash}
	return &user, nil
}

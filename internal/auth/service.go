package auth

import (
	"context"
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/retropixel/storefront/internal/domain"
	"github.com/retropixel/storefront/pkg/errors"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterInput is a sign-up form submission
type RegisterInput struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Session is a signed-in user together with the bearer token for it
type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      domain.User `json:"user"`
}

// Claims is the JWT payload issued on sign-in
type Claims struct {
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	verifier Verifier
	secret   []byte
	expiry   time.Duration
	logger   *zap.Logger
	now      func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time
}

// NewService creates an auth service signing tokens with secret
func NewService(verifier Verifier, secret string, expiry time.Duration, logger *zap.Logger) *Service {
	return &Service{
		verifier: verifier,
		secret:   []byte(secret),
		expiry:   expiry,
		logger:   logger,
		now:      time.Now,
		revoked:  make(map[string]time.Time),
	}
}

// Login validates the form, checks credentials and issues a token
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return nil, errors.NewValidation("credentials", "username and password are required")
	}
	if len(username) < minUsernameLength {
		return nil, errors.NewValidation("username", fmt.Sprintf("username must be at least %d characters", minUsernameLength))
	}
	if len(password) < minPasswordLength {
		return nil, errors.NewValidation("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	user, err := s.verifier.Verify(ctx, username, password)
	if err != nil {
		s.logger.Info("Login rejected", zap.String("username", username))
		return nil, err
	}

	return s.issue(*user)
}

// Register validates the sign-up form, records the account and signs it in
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	if in.Username == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, errors.NewValidation("form", "all fields are required")
	}
	if len(in.Username) < minUsernameLength {
		return nil, errors.NewValidation("username", fmt.Sprintf("username must be at least %d characters", minUsernameLength))
	}
	if !emailPattern.MatchString(in.Email) {
		return nil, errors.NewValidation("email", "email is not valid")
	}
	if len(in.Password) < minPasswordLength {
		return nil, errors.NewValidation("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}
	if in.Password != in.ConfirmPassword {
		return nil, errors.NewValidation("confirm_password", "passwords do not match")
	}

	user, err := s.verifier.Register(ctx, in.Username, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID))
	return s.issue(*user)
}

// Logout revokes the token until it would have expired anyway
func (s *Service) Logout(token string) error {
	claims, err := s.ParseToken(token)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.revoked[claims.ID] = claims.ExpiresAt.Time
	s.pruneLocked()
	return nil
}

// ParseToken verifies signature, expiry and revocation
func (s *Service) ParseToken(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, &errors.ErrUnauthorized{Message: "token expired"}
		}
		return nil, &errors.ErrUnauthorized{Message: "invalid token"}
	}

	s.mu.Lock()
	_, revoked := s.revoked[claims.ID]
	s.mu.Unlock()
	if revoked {
		return nil, &errors.ErrUnauthorized{Message: "token revoked"}
	}

	return claims, nil
}

// UserFromClaims rebuilds the user a token was issued for
func UserFromClaims(c *Claims) domain.User {
	return domain.User{
		ID:       c.Subject,
		Username: c.Username,
		Email:    c.Email,
		Role:     c.Role,
	}
}

func (s *Service) issue(user domain.User) (*Session, error) {
	now := s.now()
	expiresAt := now.Add(s.expiry)

	claims := Claims{
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &Session{Token: signed, ExpiresAt: expiresAt, User: user}, nil
}

// pruneLocked forgets revocations whose tokens have expired
func (s *Service) pruneLocked() {
	now := s.now()
	for id, exp := range s.revoked {
		if exp.Before(now) {
			delete(s.revoked, id)
		}
	}
}

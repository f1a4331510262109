package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

const (
	minPasswordLength = 6
	bcryptCost        = 10
	bearerPrefix      = "Bearer "
)

// IdentityService registers accounts, authenticates credentials, and issues
// and verifies bearer tokens.
type IdentityService struct {
	storage       *storage.Storage
	jwtSecret     []byte
	tokenLifetime time.Duration
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(store *storage.Storage, jwtSecret []byte, tokenLifetime time.Duration) *IdentityService {
	return &IdentityService{
		storage:       store,
		jwtSecret:     jwtSecret,
		tokenLifetime: tokenLifetime,
	}
}

// Register creates an account with a bcrypt-hashed password and returns a
// signed token for it.
func (s *IdentityService) Register(ctx context.Context, email, password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", ErrInvalidCredentialFormat
	}

	_, err := s.storage.Users.FindByEmail(ctx, email)
	if err == nil {
		return "", ErrDuplicateAccount
	}
	if !errors.Is(err, sqlconfig.ErrRecordNotFound) {
		logrus.WithError(err).Error("IdentityService.Register.findByEmail")
		return "", ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		logrus.WithError(err).Error("IdentityService.Register.hash")
		return "", ErrInternal
	}

	user, err := s.storage.Users.Insert(ctx, &sqlconfig.UserCreate{
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		// The unique index is the authority; the FindByEmail pre-check only
		// narrows the race window.
		if errors.Is(err, sqlconfig.ErrUniqueViolation) {
			return "", ErrDuplicateAccount
		}
		logrus.WithError(err).Error("IdentityService.Register.insert")
		return "", ErrInternal
	}

	return s.issueToken(user)
}

// Login authenticates credentials and returns a signed token. Unknown email
// and wrong password are deliberately indistinguishable.
func (s *IdentityService) Login(ctx context.Context, email, password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", ErrInvalidCredentialFormat
	}

	user, err := s.storage.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sqlconfig.ErrRecordNotFound) {
			return "", ErrAuthenticationFailed
		}
		logrus.WithError(err).Error("IdentityService.Login.findByEmail")
		return "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrAuthenticationFailed
	}

	return s.issueToken(user)
}

// VerifyToken validates the Authorization header and resolves the token
// subject against the store, so a since-deleted account stops authenticating
// the moment the row is gone.
func (s *IdentityService) VerifyToken(ctx context.Context, authorization string) (*Identity, error) {
	if !strings.HasPrefix(authorization, bearerPrefix) {
		return nil, ErrAuthenticationFailed
	}
	tokenString := strings.TrimPrefix(authorization, bearerPrefix)

	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrAuthenticationFailed
	}

	subject, err := uuid.FromString(claims.Subject)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	user, err := s.storage.Users.FindByID(ctx, subject)
	if err != nil {
		if errors.Is(err, sqlconfig.ErrRecordNotFound) {
			return nil, ErrAuthenticationFailed
		}
		logrus.WithError(err).Error("IdentityService.VerifyToken.findByID")
		return nil, ErrInternal
	}

	return &Identity{ID: user.ID, Email: user.Email}, nil
}

func (s *IdentityService) issueToken(user *sqlconfig.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
		},
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		logrus.WithError(err).Error("IdentityService.issueToken.sign")
		return "", ErrInternal
	}
	return signed, nil
}

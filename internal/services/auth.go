package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-translator/internal/auth"
	"github.com/sbilibin2017/gw-translator/internal/jwt"
	"github.com/sbilibin2017/gw-translator/internal/logger"
	"github.com/sbilibin2017/gw-translator/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
)

const maxUsernameLength = 64

// bcrypt ignores everything past this many bytes.
const maxPasswordBytes = 72

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, userID uuid.UUID, username string, passwordHash string) (bool, error)
}

// SessionStore keeps server-side session records.
type SessionStore interface {
	Save(ctx context.Context, sessionID uuid.UUID, userID uuid.UUID, ttl time.Duration) error
	Get(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, bool, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

// TokenManager issues and parses session tokens.
type TokenManager interface {
	Generate(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (string, error)
	GetClaims(ctx context.Context, token string) (*jwt.Claims, error)
	Expiration() time.Duration
}

// AuthService handles registration, login and sessions.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionStore
	tokens   TokenManager
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionStore, tokens TokenManager) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Register registers a new user.
func (svc *AuthService) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}
	if len(username) > maxUsernameLength {
		return fmt.Errorf("%w: username is longer than %d characters", ErrInvalidInput, maxUsernameLength)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	created, err := svc.writer.Save(ctx, uuid.New(), username, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}
	if !created {
		logger.Log.Infow("user already exists", "username", username)
		return ErrUserAlreadyExists
	}

	return nil
}

// Login checks the credentials, opens a session and returns its token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" || len(password) > maxPasswordBytes {
		return "", ErrInvalidCredentials
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Infow("login for unknown user", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	sessionID := uuid.New()
	if err := svc.sessions.Save(ctx, sessionID, user.UserID, svc.tokens.Expiration()); err != nil {
		logger.Log.Errorw("failed to save session", "err", err)
		return "", err
	}

	token, err := svc.tokens.Generate(ctx, user.UserID, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// Authenticate resolves a token into the identity of a live session.
func (svc *AuthService) Authenticate(ctx context.Context, token string) (auth.Identity, error) {
	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		return auth.Identity{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	userID, ok, err := svc.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		logger.Log.Errorw("failed to load session", "err", err)
		return auth.Identity{}, err
	}
	if !ok || userID != claims.UserID {
		return auth.Identity{}, fmt.Errorf("%w: session is closed", ErrUnauthorized)
	}

	return auth.Identity{UserID: userID, SessionID: claims.SessionID}, nil
}

// Logout closes the session.
func (svc *AuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := svc.sessions.Delete(ctx, sessionID); err != nil {
		logger.Log.Errorw("failed to delete session", "err", err)
		return err
	}
	return nil
}

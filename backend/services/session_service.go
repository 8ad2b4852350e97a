package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/fitquest/fitquest-api/backend/config"
	"github.com/fitquest/fitquest-api/backend/models"
	fqconfig "github.com/fitquest/fitquest-api/fitquest/config"
)

const (
	SessionCookieName = "fitquest_session"
	StateCookieName   = "oauth_state"
)

var (
	ErrNoSession      = errors.New("no session cookie found")
	ErrSessionExpired = errors.New("session expired")
)

// SessionService handles user session management
type SessionService struct {
	config *config.WebAppConfig
	now    func() time.Time
}

// NewSessionService creates a new session service
func NewSessionService(cfg *config.WebAppConfig) *SessionService {
	return &SessionService{
		config: cfg,
		now:    time.Now,
	}
}

// NewUserSession builds a session for a signed-in user, valid for the standard session duration.
func (s *SessionService) NewUserSession(userID uuid.UUID, email, username string) *models.UserSession {
	return &models.UserSession{
		UserID:    userID,
		Email:     email,
		Username:  username,
		ExpiresAt: s.now().Add(fqconfig.SessionDuration),
	}
}

// EncodeSession signs a session into its cookie value.
func (s *SessionService) EncodeSession(userSession *models.UserSession) (string, error) {
	sessionData, err := json.Marshal(userSession)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	signedSession, err := s.signData(sessionData)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signedSession, nil
}

// DecodeSession verifies a cookie value and returns the unexpired session it carries.
func (s *SessionService) DecodeSession(value string) (*models.UserSession, error) {
	sessionData, err := s.verifyAndDecodeData(value)
	if err != nil {
		return nil, fmt.Errorf("invalid session signature: %w", err)
	}

	var userSession models.UserSession
	if err := json.Unmarshal(sessionData, &userSession); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if userSession.Expired(s.now()) {
		return nil, ErrSessionExpired
	}
	return &userSession, nil
}

// CreateSession creates a new user session and sets the session cookie
func (s *SessionService) CreateSession(c *fiber.Ctx, userSession *models.UserSession) error {
	signedSession, err := s.EncodeSession(userSession)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    signedSession,
		Path:     "/",
		MaxAge:   int(fqconfig.SessionDuration / time.Second),
		Secure:   s.config.IsProduction(),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	slog.Info("Session created for user",
		slog.String("user_id", userSession.UserID.String()),
		slog.String("username", userSession.Username))

	return nil
}

// GetSession retrieves and validates the user session from the request
func (s *SessionService) GetSession(c *fiber.Ctx) (*models.UserSession, error) {
	sessionCookie := c.Cookies(SessionCookieName)
	if sessionCookie == "" {
		return nil, ErrNoSession
	}

	userSession, err := s.DecodeSession(sessionCookie)
	if errors.Is(err, ErrSessionExpired) {
		s.DestroySession(c)
	}
	if err != nil {
		return nil, err
	}
	return userSession, nil
}

// DestroySession removes the session cookie and invalidates the session
func (s *SessionService) DestroySession(c *fiber.Ctx) {
	s.clearCookie(c, SessionCookieName)

	slog.Info("Session destroyed for request",
		slog.String("ip", c.IP()),
		slog.String("user_agent", c.Get("User-Agent")))
}

// SetState sets the OAuth state parameter in a secure cookie
func (s *SessionService) SetState(c *fiber.Ctx, state string) error {
	signedState, err := s.signData([]byte(state))
	if err != nil {
		return fmt.Errorf("failed to sign state: %w", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     StateCookieName,
		Value:    signedState,
		Path:     "/",
		MaxAge:   int(fqconfig.OAuthStateMaxAge / time.Second),
		Secure:   s.config.IsProduction(),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return nil
}

// GetAndClearState retrieves and clears the OAuth state parameter
func (s *SessionService) GetAndClearState(c *fiber.Ctx) (string, error) {
	stateCookie := c.Cookies(StateCookieName)
	if stateCookie == "" {
		return "", fmt.Errorf("no state cookie found")
	}

	// Single use: clear before verifying.
	s.clearCookie(c, StateCookieName)

	stateData, err := s.verifyAndDecodeData(stateCookie)
	if err != nil {
		return "", fmt.Errorf("invalid state signature: %w", err)
	}

	return string(stateData), nil
}

// RefreshSession extends the session expiration time
func (s *SessionService) RefreshSession(c *fiber.Ctx, userSession *models.UserSession) error {
	userSession.ExpiresAt = s.now().Add(fqconfig.SessionDuration)
	return s.CreateSession(c, userSession)
}

func (s *SessionService) clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  s.now().Add(-time.Hour),
		Secure:   s.config.IsProduction(),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// signData signs data using HMAC-SHA256
func (s *SessionService) signData(data []byte) (string, error) {
	key := s.config.Config.Web.SessionKey
	if key == "" {
		return "", fmt.Errorf("session key not configured")
	}

	h := hmac.New(sha256.New, []byte(key))
	h.Write(data)
	signature := h.Sum(nil)

	combined := append(data, signature...)
	return base64.URLEncoding.EncodeToString(combined), nil
}

// verifyAndDecodeData verifies the signature and returns the original data
func (s *SessionService) verifyAndDecodeData(encodedData string) ([]byte, error) {
	key := s.config.Config.Web.SessionKey
	if key == "" {
		return nil, fmt.Errorf("session key not configured")
	}

	combined, err := base64.URLEncoding.DecodeString(encodedData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode data: %w", err)
	}

	// Signature is the trailing sha256.Size bytes.
	if len(combined) < sha256.Size {
		return nil, fmt.Errorf("invalid data length")
	}

	data := combined[:len(combined)-sha256.Size]
	receivedSignature := combined[len(combined)-sha256.Size:]

	h := hmac.New(sha256.New, []byte(key))
	h.Write(data)
	expectedSignature := h.Sum(nil)

	if !hmac.Equal(receivedSignature, expectedSignature) {
		return nil, fmt.Errorf("signature verification failed")
	}

	return data, nil
}

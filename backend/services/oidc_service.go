package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/fitquest/fitquest-api/fitquest"
)

// Identity is the verified subject returned by the sign-in provider.
type Identity struct {
	Subject  string
	Email    string
	Username string
}

// IdentityProvider runs the authorization code flow against the sign-in provider.
type IdentityProvider interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code, state string) (*Identity, error)
}

var ErrEmailNotVerified = errors.New("provider reports the email address as unverified")

// OIDCService handles OpenID Connect authentication
type OIDCService struct {
	oauth    oauth2.Config
	verifier *oidc.IDTokenVerifier
}

// NewOIDCService discovers the provider at cfg.IssuerURL.
func NewOIDCService(ctx context.Context, cfg fitquest.AuthConfig) (*OIDCService, error) {
	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider %s: %w", cfg.IssuerURL, err)
	}

	slog.Info("OIDC provider discovered",
		slog.String("issuer", cfg.IssuerURL),
		slog.String("client_id", cfg.ClientID))

	return &OIDCService{
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
	}, nil
}

// AuthURL builds the provider redirect. The state doubles as the ID token nonce.
func (o *OIDCService) AuthURL(state string) string {
	return o.oauth.AuthCodeURL(state, oidc.Nonce(state))
}

// Exchange trades an authorization code for a verified identity.
func (o *OIDCService) Exchange(ctx context.Context, code, state string) (*Identity, error) {
	token, err := o.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, fmt.Errorf("token response did not include an id_token")
	}

	idToken, err := o.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify id_token: %w", err)
	}
	if idToken.Nonce != state {
		return nil, fmt.Errorf("id_token nonce mismatch")
	}

	var claims struct {
		Email             string `json:"email"`
		EmailVerified     *bool  `json:"email_verified"`
		PreferredUsername string `json:"preferred_username"`
		Name              string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("failed to decode id_token claims: %w", err)
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("id_token has no email claim")
	}
	if claims.EmailVerified != nil && !*claims.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	username := claims.PreferredUsername
	if username == "" {
		username = strings.TrimSpace(claims.Name)
	}
	return &Identity{Subject: idToken.Subject, Email: claims.Email, Username: username}, nil
}

// GenerateState generates a random state parameter for OAuth2
func GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

package handlers

import (
	"log/slog"
	"net/url"

	"github.com/gofiber/fiber/v2"

	webmodels "github.com/fitquest/fitquest-api/backend/models"
	webservices "github.com/fitquest/fitquest-api/backend/services"
	"github.com/fitquest/fitquest-api/backend/utils"
)

// loginRedirect sends the browser back to the frontend with an error code.
func loginRedirect(c *fiber.Ctx, webApp *WebApp, reason string) error {
	target := webApp.Config.GetWebConfig().FrontendURL + "/login?error=" + url.QueryEscape(reason)
	return c.Redirect(target, fiber.StatusFound)
}

func Login(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if webApp.Identity == nil {
			return utils.SendNotFound(c, "Single sign-on is not configured")
		}

		state, err := webservices.GenerateState()
		if err != nil {
			slog.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to initiate authentication")
		}

		if err := webApp.SessionService.SetState(c, state); err != nil {
			slog.Error("Failed to set OAuth state", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to initiate authentication")
		}

		return c.Redirect(webApp.Identity.AuthURL(state), fiber.StatusFound)
	}
}

func OAuthCallback(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if webApp.Identity == nil {
			return utils.SendNotFound(c, "Single sign-on is not configured")
		}

		expectedState, err := webApp.SessionService.GetAndClearState(c)
		if err != nil {
			slog.Warn("OAuth callback: invalid or missing state", slog.String("error", err.Error()))
			return loginRedirect(c, webApp, "invalid_state")
		}
		if c.Query("state") != expectedState {
			slog.Warn("OAuth callback: state mismatch")
			return loginRedirect(c, webApp, "state_mismatch")
		}

		if errorParam := c.Query("error"); errorParam != "" {
			slog.Warn("OAuth callback: provider returned error",
				slog.String("error", errorParam),
				slog.String("description", c.Query("error_description")))
			return loginRedirect(c, webApp, "oauth_error")
		}

		code := c.Query("code")
		if code == "" {
			slog.Warn("OAuth callback: missing authorization code")
			return loginRedirect(c, webApp, "missing_code")
		}

		identity, err := webApp.Identity.Exchange(c.UserContext(), code, expectedState)
		if err != nil {
			slog.Error("OAuth callback: failed to verify identity", slog.String("error", err.Error()))
			return loginRedirect(c, webApp, "token_exchange_failed")
		}

		user, err := webApp.Users.FindOrCreate(c.UserContext(), identity.Email, identity.Username)
		if err != nil {
			slog.Error("OAuth callback: failed to load user",
				slog.String("subject", identity.Subject),
				slog.String("error", err.Error()))
			return loginRedirect(c, webApp, "user_creation_failed")
		}

		session := webApp.SessionService.NewUserSession(user.ID, user.Email, user.Username)
		if err := webApp.SessionService.CreateSession(c, session); err != nil {
			slog.Error("OAuth callback: failed to create session cookie",
				slog.String("user_id", user.ID.String()),
				slog.String("error", err.Error()))
			return loginRedirect(c, webApp, "session_creation_failed")
		}

		return c.Redirect(webApp.Config.GetWebConfig().FrontendURL, fiber.StatusFound)
	}
}

// LocalLogin signs in by email without a provider. It only exists when enabled in config.
func LocalLogin(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !webApp.Config.GetAuthConfig().AllowLocalLogin {
			return utils.SendNotFound(c, "Local sign-in is disabled")
		}

		var req webmodels.LocalLoginRequest
		if err := utils.ParseBody(c, &req); err != nil {
			return respondError(c, err)
		}
		if err := utils.ValidateEmail(req.Email); err != nil {
			return utils.SendBadRequest(c, err.Error(), map[string]string{"email": "must be a valid email address"})
		}

		user, err := webApp.Users.FindOrCreate(c.UserContext(), req.Email, req.Username)
		if err != nil {
			return respondError(c, err)
		}

		session := webApp.SessionService.NewUserSession(user.ID, user.Email, user.Username)
		if err := webApp.SessionService.CreateSession(c, session); err != nil {
			return respondError(c, err)
		}
		return utils.SendSuccess(c, webmodels.SessionStatus{Authenticated: true, User: session}, "Signed in")
	}
}

func Logout(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		webApp.SessionService.DestroySession(c)
		return utils.SendSuccess(c, nil, "Signed out")
	}
}

// SessionInfo reports whether the caller holds a valid session. It never fails with 401.
func SessionInfo(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := webApp.GetSession(c)
		if err != nil {
			return utils.SendSuccess(c, webmodels.SessionStatus{Authenticated: false}, "")
		}
		return utils.SendSuccess(c, webmodels.SessionStatus{Authenticated: true, User: session}, "")
	}
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	webmodels "github.com/fitquest/fitquest-api/backend/models"
	"github.com/fitquest/fitquest-api/backend/utils"
	"github.com/fitquest/fitquest-api/fitquest/economy"
	"github.com/fitquest/fitquest-api/fitquest/services"
)

func GetUser(webApp *WebApp) fiber.Handler {
	return authed(func(c *fiber.Ctx, session *webmodels.UserSession) error {
		profile, err := webApp.Users.Profile(c.UserContext(), session.UserID)
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendSuccess(c, profile, "")
	})
}

// DeleteUser removes the account with everything it owns and ends the session.
func DeleteUser(webApp *WebApp) fiber.Handler {
	return authed(func(c *fiber.Ctx, session *webmodels.UserSession) error {
		if err := webApp.Users.Delete(c.UserContext(), session.UserID); err != nil {
			return respondError(c, err)
		}
		webApp.SessionService.DestroySession(c)
		return utils.SendSuccess(c, nil, "Account deleted")
	})
}

func Dashboard(webApp *WebApp) fiber.Handler {
	return authed(func(c *fiber.Ctx, session *webmodels.UserSession) error {
		dashboard, err := webApp.Dashboard.Load(c.UserContext(), session.UserID)
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendSuccess(c, dashboard, "")
	})
}

func GetCharacter(webApp *WebApp) fiber.Handler {
	return authed(func(c *fiber.Ctx, session *webmodels.UserSession) error {
		character, err := webApp.Characters.Get(c.UserContext(), session.UserID)
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendSuccess(c, character, "")
	})
}

func UpdateCharacter(webApp *WebApp) fiber.Handler {
	return authed(func(c *fiber.Ctx, session *webmodels.UserSession) error {
		var req webmodels.CharacterUpdateRequest
		if err := utils.ParseBody(c, &req); err != nil {
			return respondError(c, err)
		}

		character, err := webApp.Characters.Update(c.UserContext(), session.UserID, services.CharacterUpdate{
			Name:      req.Name,
			Strength:  req.Strength,
			Endurance: req.Endurance,
			Agility:   req.Agility,
		})
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendSuccess(c, character, "Character updated")
	})
}

func UpgradeCharacter(webApp *WebApp) fiber.Handler {
	return authed(func(c *fiber.Ctx, session *webmodels.UserSession) error {
		var req webmodels.UpgradeRequest
		if err := utils.ParseBody(c, &req); err != nil {
			return respondError(c, err)
		}

		result, err := webApp.Characters.Upgrade(c.UserContext(), session.UserID, economy.StatDelta{
			Strength:  intOrZero(req.Strength),
			Endurance: intOrZero(req.Endurance),
			Agility:   intOrZero(req.Agility),
		})
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendSuccess(c, result, "Character upgraded")
	})
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

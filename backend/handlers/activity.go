package handlers

import (
	"github.com/gofiber/fiber/v2"

	webmodels "github.com/fitquest/fitquest-api/backend/models"
	"github.com/fitquest/fitquest-api/backend/utils"
	"github.com/fitquest/fitquest-api/fitquest/services"
)

func ListFitness(webApp *WebApp) fiber.Handler {
	return authed(func(c *fiber.Ctx, session *webmodels.UserSession) error {
		entries, err := webApp.Fitness.List(c.UserContext(), session.UserID)
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendSuccess(c, entries, "")
	})
}

func LogFitness(webApp *WebApp) fiber.Handler {
	return authed(func(c *fiber.Ctx, session *webmodels.UserSession) error {
		var req webmodels.FitnessRequest
		if err := utils.ParseBody(c, &req); err != nil {
			return respondError(c, err)
		}

		result, err := webApp.Fitness.Log(c.UserContext(), session.UserID, services.FitnessInput{
			Calories:        req.Calories,
			Steps:           req.Steps,
			ExerciseMinutes: req.ExerciseMinutes,
			ActivityType:    req.ActivityType,
		})
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendSuccess(c, result, "Activity logged")
	})
}

func ListQuests(webApp *WebApp) fiber.Handler {
	return authed(func(c *fiber.Ctx, session *webmodels.UserSession) error {
		quests, err := webApp.Quests.List(c.UserContext(), session.UserID)
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendSuccess(c, quests, "")
	})
}

func CompleteQuest(webApp *WebApp) fiber.Handler {
	return authed(func(c *fiber.Ctx, session *webmodels.UserSession) error {
		questID, err := utils.ParseIDParam(c, "id")
		if err != nil {
			return respondError(c, err)
		}

		result, err := webApp.Quests.Complete(c.UserContext(), session.UserID, questID)
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendSuccess(c, result, "Quest completed")
	})
}

func ListBattles(webApp *WebApp) fiber.Handler {
	return authed(func(c *fiber.Ctx, session *webmodels.UserSession) error {
		battles, err := webApp.Battles.List(c.UserContext(), session.UserID)
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendSuccess(c, battles, "")
	})
}

func Fight(webApp *WebApp) fiber.Handler {
	return authed(func(c *fiber.Ctx, session *webmodels.UserSession) error {
		var req webmodels.BattleRequest
		if err := utils.ParseBody(c, &req); err != nil {
			return respondError(c, err)
		}

		result, err := webApp.Battles.Fight(c.UserContext(), session.UserID, services.BattleRequest{
			EnemyType:    req.EnemyType,
			PlayerAction: req.PlayerAction,
		})
		if err != nil {
			return respondError(c, err)
		}

		message := "Defeated"
		if result.Victory {
			message = "Victory"
		}
		return utils.SendSuccess(c, result, message)
	})
}

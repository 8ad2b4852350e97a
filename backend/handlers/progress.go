package handlers

import (
	"github.com/gofiber/fiber/v2"

	webmodels "github.com/fitquest/fitquest-api/backend/models"
	"github.com/fitquest/fitquest-api/backend/utils"
	"github.com/fitquest/fitquest-api/fitquest/services"
)

// Leaderboard is public; it needs no session.
func Leaderboard(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := webApp.Leaderboard.Top(c.UserContext(), c.Query("period"), c.Query("q"))
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendSuccess(c, entries, "")
	}
}

func GetStory(webApp *WebApp) fiber.Handler {
	return authed(func(c *fiber.Ctx, session *webmodels.UserSession) error {
		progress, err := webApp.Story.Get(c.UserContext(), session.UserID)
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendSuccess(c, progress, "")
	})
}

func UpdateStory(webApp *WebApp) fiber.Handler {
	return authed(func(c *fiber.Ctx, session *webmodels.UserSession) error {
		var req webmodels.StoryRequest
		if err := utils.ParseBody(c, &req); err != nil {
			return respondError(c, err)
		}
		if req.CurrentChapter == nil {
			return utils.SendBadRequest(c, "currentChapter is required", map[string]string{"currentChapter": "is required"})
		}

		progress, err := webApp.Story.Update(c.UserContext(), session.UserID, services.StoryUpdate{
			CurrentChapter:    *req.CurrentChapter,
			CompletedChapters: req.CompletedChapters,
		})
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendSuccess(c, progress, "Story progress saved")
	})
}

func DailyRewardStatus(webApp *WebApp) fiber.Handler {
	return authed(func(c *fiber.Ctx, session *webmodels.UserSession) error {
		status, err := webApp.Rewards.DailyStatus(c.UserContext(), session.UserID)
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendSuccess(c, status, "")
	})
}

func ClaimDailyReward(webApp *WebApp) fiber.Handler {
	return authed(func(c *fiber.Ctx, session *webmodels.UserSession) error {
		result, err := webApp.Rewards.ClaimDaily(c.UserContext(), session.UserID)
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendSuccess(c, result, "Daily reward claimed")
	})
}

func ListAchievements(webApp *WebApp) fiber.Handler {
	return authed(func(c *fiber.Ctx, session *webmodels.UserSession) error {
		achievements, err := webApp.Rewards.Achievements(c.UserContext(), session.UserID)
		if err != nil {
			return respondError(c, err)
		}
		return utils.SendSuccess(c, achievements, "")
	})
}

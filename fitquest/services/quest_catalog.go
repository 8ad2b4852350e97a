package services

import (
	"github.com/google/uuid"

	"github.com/fitquest/fitquest-api/fitquest/database/models"
	"github.com/fitquest/fitquest-api/fitquest/economy"
)

type questTemplate struct {
	Title       string
	Description string
	Type        string
	Metric      string
	Target      int
	XPReward    int64
	CoinReward  int64
}

var starterQuests = []questTemplate{
	{
		Title:       "Morning Walk",
		Description: "Take 5,000 steps today",
		Type:        models.QuestTypeDaily,
		Metric:      models.MetricSteps,
		Target:      5000,
		XPReward:    economy.DefaultQuestXP,
		CoinReward:  economy.DefaultQuestCoins,
	},
	{
		Title:       "Burn It Up",
		Description: "Burn 300 calories",
		Type:        models.QuestTypeDaily,
		Metric:      models.MetricCalories,
		Target:      300,
		XPReward:    economy.DefaultQuestXP,
		CoinReward:  economy.DefaultQuestCoins,
	},
	{
		Title:       "Weekly Warrior",
		Description: "Exercise for 150 minutes this week",
		Type:        models.QuestTypeWeekly,
		Metric:      models.MetricExerciseMinutes,
		Target:      150,
		XPReward:    200,
		CoinReward:  100,
	},
	{
		Title:       "Monster Hunter",
		Description: "Win 5 battles",
		Type:        models.QuestTypeWeekly,
		Metric:      models.MetricBattlesWon,
		Target:      5,
		XPReward:    150,
		CoinReward:  75,
	},
	{
		Title:       "First Steps",
		Description: "Log your first workout",
		Type:        models.QuestTypeAchievement,
		Metric:      models.MetricExerciseMinutes,
		Target:      1,
		XPReward:    economy.DefaultQuestXP,
		CoinReward:  economy.DefaultQuestCoins,
	},
}

// newStarterQuests builds the quest set assigned to a freshly created user.
func newStarterQuests(userID uuid.UUID) []*models.Quest {
	quests := make([]*models.Quest, 0, len(starterQuests))
	for _, tpl := range starterQuests {
		quests = append(quests, &models.Quest{
			UserID:      userID,
			Title:       tpl.Title,
			Description: tpl.Description,
			Type:        tpl.Type,
			Metric:      tpl.Metric,
			Target:      tpl.Target,
			XPReward:    tpl.XPReward,
			CoinReward:  tpl.CoinReward,
		})
	}
	return quests
}

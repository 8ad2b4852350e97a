package economy

const (
	DailyRewardXP    = 100
	DailyRewardCoins = 50

	DefaultQuestXP    = 50
	DefaultQuestCoins = 25
)

// Reward types understood by the client reward popup.
const (
	RewardXP          = "xp"
	RewardCoins       = "coins"
	RewardAchievement = "achievement"
)

// Reward is one line of the reward payload rendered by clients.
type Reward struct {
	Type        string `json:"type"`
	Amount      int64  `json:"amount,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func DailyRewards() []Reward {
	return []Reward{
		{Type: RewardXP, Amount: DailyRewardXP, Name: "Daily Login XP"},
		{Type: RewardCoins, Amount: DailyRewardCoins, Name: "Daily Login Bonus"},
	}
}

func BattleRewards(o BattleOutcome) []Reward {
	if o.Victory {
		return []Reward{
			{Type: RewardXP, Amount: o.XP, Name: "Battle Victory XP"},
			{Type: RewardCoins, Amount: o.Coins, Name: "Battle Reward"},
		}
	}
	return []Reward{
		{Type: RewardXP, Amount: o.XP, Name: "Battle Experience"},
		{Type: RewardCoins, Amount: o.Coins, Name: "Consolation Coins"},
	}
}

func QuestRewards(title string, xp, coins int64) []Reward {
	return []Reward{
		{Type: RewardXP, Amount: xp, Name: "Quest XP", Description: title},
		{Type: RewardCoins, Amount: coins, Name: "Quest Reward", Description: title},
	}
}

func WorkoutRewards(xp int64) []Reward {
	if xp <= 0 {
		return []Reward{}
	}
	return []Reward{{Type: RewardXP, Amount: xp, Name: "Workout XP"}}
}

// LevelUpReward announces a reached level as an achievement line.
func LevelUpReward(title, description string) Reward {
	return Reward{Type: RewardAchievement, Name: title, Description: description}
}

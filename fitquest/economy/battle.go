package economy

import "math/rand/v2"

const (
	EnemyPowerMin  = 20
	EnemyPowerSpan = 50 // enemy power is drawn from [20, 70)

	VictoryXP    = 50
	VictoryCoins = 25
	DefeatXP     = 10
	DefeatCoins  = 5
)

// RandomSource yields uniform integers in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// GlobalSource is the unseeded process-wide generator, safe for concurrent use.
func GlobalSource() RandomSource {
	return globalSource{}
}

type BattleOutcome struct {
	PlayerPower int
	EnemyPower  int
	Victory     bool
	XP          int64
	Coins       int64
}

type BattleResolver struct {
	src RandomSource
}

func NewBattleResolver(src RandomSource) *BattleResolver {
	if src == nil {
		src = GlobalSource()
	}
	return &BattleResolver{src: src}
}

// Resolve pits strength+agility against a random enemy. Ties go to the enemy.
func (r *BattleResolver) Resolve(strength, agility int) BattleOutcome {
	player := strength + agility
	enemy := EnemyPowerMin + r.src.IntN(EnemyPowerSpan)

	out := BattleOutcome{PlayerPower: player, EnemyPower: enemy}
	if player > enemy {
		out.Victory = true
		out.XP, out.Coins = VictoryXP, VictoryCoins
	} else {
		out.XP, out.Coins = DefeatXP, DefeatCoins
	}
	return out
}

package economy

import (
	"errors"
	"fmt"

	"github.com/fitquest/fitquest-api/fitquest/config"
)

const CoinsPerStatPoint = 50

var (
	ErrNegativeDelta = errors.New("stat increments must be non-negative")
	ErrDeltaTooLarge = fmt.Errorf("stat increments must be at most %d per stat", config.MaxStatUpgrade)
)

// StatDelta is a requested increase of each base stat.
type StatDelta struct {
	Strength  int
	Endurance int
	Agility   int
}

func (d StatDelta) Validate() error {
	if d.Strength < 0 || d.Endurance < 0 || d.Agility < 0 {
		return ErrNegativeDelta
	}
	if d.Strength > config.MaxStatUpgrade || d.Endurance > config.MaxStatUpgrade || d.Agility > config.MaxStatUpgrade {
		return ErrDeltaTooLarge
	}
	return nil
}

func (d StatDelta) Points() int {
	return d.Strength + d.Endurance + d.Agility
}

// UpgradeCost returns the coin price of d.
func UpgradeCost(d StatDelta) int64 {
	return int64(d.Points()) * CoinsPerStatPoint
}

// CheckAffordable returns the cost of d, or an INSUFFICIENT_FUNDS rule error when
// coins cannot cover it.
func CheckAffordable(coins int64, d StatDelta) (int64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	cost := UpgradeCost(d)
	if coins < cost {
		return cost, insufficientFunds(coins, cost)
	}
	return cost, nil
}

// Package progression maps activity to experience and experience to level.
package progression

import "errors"

// ErrNegativeGain is returned by Apply; xp and level only move up.
var ErrNegativeGain = errors.New("xp gain must be non-negative")

const (
	XPPerLevel = 1000

	caloriesPerXP = 10
	stepsPerXP    = 100
	xpPerMinute   = 2
)

// Activity is one fitness submission. Zero values stand for absent fields.
type Activity struct {
	Calories        int
	Steps           int
	ExerciseMinutes int
}

// XPForActivity returns floor(calories/10) + floor(steps/100) + 2*minutes.
// Negative inputs contribute nothing.
func XPForActivity(a Activity) int64 {
	var xp int64
	if a.Calories > 0 {
		xp += int64(a.Calories / caloriesPerXP)
	}
	if a.Steps > 0 {
		xp += int64(a.Steps / stepsPerXP)
	}
	if a.ExerciseMinutes > 0 {
		xp += int64(a.ExerciseMinutes) * xpPerMinute
	}
	return xp
}

// LevelForXP returns floor(xp/1000) + 1.
func LevelForXP(xp int64) int {
	if xp < 0 {
		return 1
	}
	return int(xp/XPPerLevel) + 1
}

// XPToNextLevel returns how much xp is still needed to reach the next level.
func XPToNextLevel(xp int64) int64 {
	if xp < 0 {
		xp = 0
	}
	return XPPerLevel - xp%XPPerLevel
}

// Result describes a grant applied to a running xp total.
type Result struct {
	XP           int64
	Level        int
	LevelsGained int
}

// Apply adds gain to total and recomputes the level from the new total.
// The level never drops below previousLevel.
func Apply(total int64, previousLevel int, gain int64) (Result, error) {
	if gain < 0 {
		return Result{}, ErrNegativeGain
	}
	next := total + gain
	if next < total {
		return Result{}, ErrNegativeGain
	}
	level := LevelForXP(next)
	if level < previousLevel {
		return Result{XP: next, Level: previousLevel}, nil
	}
	return Result{XP: next, Level: level, LevelsGained: level - previousLevel}, nil
}

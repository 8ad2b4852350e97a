package progression

import (
	"errors"
	"math"
	"testing"
)

func TestXPForActivity(t *testing.T) {
	tests := []struct {
		name string
		in   Activity
		want int64
	}{
		{"empty", Activity{}, 0},
		{"calories only", Activity{Calories: 300}, 30},
		{"calories floor", Activity{Calories: 19}, 1},
		{"steps floor", Activity{Steps: 9999}, 99},
		{"minutes doubled", Activity{ExerciseMinutes: 45}, 90},
		{"combined", Activity{Calories: 250, Steps: 5000, ExerciseMinutes: 30}, 25 + 50 + 60},
		{"negatives ignored", Activity{Calories: -100, Steps: -5, ExerciseMinutes: -1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := XPForActivity(tt.in); got != tt.want {
				t.Errorf("XPForActivity(%+v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestXPForActivityMatchesFormula(t *testing.T) {
	for c := 0; c <= 2000; c += 37 {
		for s := 0; s <= 20000; s += 913 {
			for m := 0; m <= 120; m += 17 {
				want := int64(c/10 + s/100 + 2*m)
				if got := XPForActivity(Activity{c, s, m}); got != want {
					t.Fatalf("XPForActivity(%d, %d, %d) = %d, want %d", c, s, m, got, want)
				}
			}
		}
	}
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int64
		want int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{1999, 2},
		{2000, 3},
		{123456, 124},
		{-5, 1},
	}
	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelForXPMonotonic(t *testing.T) {
	prev := LevelForXP(0)
	for xp := int64(1); xp <= 50000; xp += 7 {
		level := LevelForXP(xp)
		if level < prev {
			t.Fatalf("LevelForXP(%d) = %d dropped below %d", xp, level, prev)
		}
		prev = level
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name          string
		total         int64
		previousLevel int
		gain          int64
		want          Result
		wantErr       error
	}{
		{name: "no level change", total: 100, previousLevel: 1, gain: 50, want: Result{XP: 150, Level: 1}},
		{name: "crosses boundary", total: 990, previousLevel: 1, gain: 10, want: Result{XP: 1000, Level: 2, LevelsGained: 1}},
		{name: "several levels", total: 500, previousLevel: 1, gain: 2600, want: Result{XP: 3100, Level: 4, LevelsGained: 3}},
		{name: "stale level is corrected", total: 1500, previousLevel: 1, gain: 0, want: Result{XP: 1500, Level: 2, LevelsGained: 1}},
		{name: "level is kept", total: 500, previousLevel: 3, gain: 10, want: Result{XP: 510, Level: 3}},
		{name: "negative gain", total: 5000, previousLevel: 6, gain: -1, wantErr: ErrNegativeGain},
		{name: "wrapped gain", total: 5500, previousLevel: 6, gain: math.MinInt64, wantErr: ErrNegativeGain},
		{name: "total would overflow", total: math.MaxInt64 - 5, previousLevel: 1, gain: 10, wantErr: ErrNegativeGain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.total, tt.previousLevel, tt.gain)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Apply() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Apply() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestXPToNextLevel(t *testing.T) {
	if got := XPToNextLevel(0); got != 1000 {
		t.Errorf("XPToNextLevel(0) = %d, want 1000", got)
	}
	if got := XPToNextLevel(1999); got != 1 {
		t.Errorf("XPToNextLevel(1999) = %d, want 1", got)
	}
}

package economy

import (
	"errors"
	"math"
	"testing"
)

func TestCheckAffordable(t *testing.T) {
	tests := []struct {
		name     string
		coins    int64
		delta    StatDelta
		wantCost int64
		wantErr  error
	}{
		{"exact balance", 100, StatDelta{Strength: 1, Endurance: 1}, 100, nil},
		{"nothing requested", 0, StatDelta{}, 0, nil},
		{"one point short", 0, StatDelta{Agility: 1}, 50, ErrInsufficientFunds},
		{"all three stats", 1000, StatDelta{Strength: 2, Endurance: 3, Agility: 4}, 450, nil},
		{"negative delta", 1000, StatDelta{Strength: -1}, 0, ErrNegativeDelta},
		{"largest allowed", 150000, StatDelta{Strength: 1000, Endurance: 1000, Agility: 1000}, 150000, nil},
		{"above per-stat cap", 1 << 40, StatDelta{Agility: 1001}, 0, ErrDeltaTooLarge},
		{"sum would wrap", 0, StatDelta{Strength: math.MaxInt64 - 10, Endurance: 11}, 0, ErrDeltaTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, err := CheckAffordable(tt.coins, tt.delta)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CheckAffordable() error = %v, want %v", err, tt.wantErr)
			}
			if cost != tt.wantCost {
				t.Errorf("CheckAffordable() cost = %d, want %d", cost, tt.wantCost)
			}
		})
	}
}

func TestInsufficientFundsMessage(t *testing.T) {
	_, err := CheckAffordable(30, StatDelta{Strength: 1})
	var rule *RuleError
	if !errors.As(err, &rule) {
		t.Fatalf("expected RuleError, got %T", err)
	}
	if rule.Code != "INSUFFICIENT_FUNDS" {
		t.Errorf("code = %s", rule.Code)
	}
	if rule.Message != "insufficient coins (has 30, needs 50)" {
		t.Errorf("message = %q", rule.Message)
	}
}

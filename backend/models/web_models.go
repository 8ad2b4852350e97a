package models

import (
	"time"

	"github.com/google/uuid"
)

// UserSession is the signed identity carried in the session cookie
type UserSession struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at now.
func (s *UserSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// LocalLoginRequest is the development sign-in body
type LocalLoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// CharacterUpdateRequest is a partial character edit; absent fields stay unchanged.
type CharacterUpdateRequest struct {
	Name      *string `json:"name"`
	Strength  *int    `json:"strength"`
	Endurance *int    `json:"endurance"`
	Agility   *int    `json:"agility"`
}

// UpgradeRequest buys stat points; absent fields count as zero.
type UpgradeRequest struct {
	Strength  *int `json:"strength"`
	Endurance *int `json:"endurance"`
	Agility   *int `json:"agility"`
}

type FitnessRequest struct {
	Calories        *int   `json:"calories"`
	Steps           *int   `json:"steps"`
	ExerciseMinutes *int   `json:"exerciseMinutes"`
	ActivityType    string `json:"activityType"`
}

type BattleRequest struct {
	EnemyType    string `json:"enemyType"`
	PlayerAction string `json:"playerAction"`
}

type StoryRequest struct {
	CurrentChapter    *int  `json:"currentChapter"`
	CompletedChapters []int `json:"completedChapters"`
}

// SessionStatus answers GET /auth/session
type SessionStatus struct {
	Authenticated bool         `json:"authenticated"`
	User          *UserSession `json:"user,omitempty"`
}

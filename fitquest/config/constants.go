package config

import "time"

// Database and performance constants
const (
	DefaultQueryTimeout = 10 * time.Second
	DefaultTxTimeout    = 10 * time.Second
	SchemaInitTimeout   = time.Minute
	ShutdownTimeout     = 15 * time.Second
)

// Listing limits
const (
	RecentFitnessLimit     = 30
	RecentBattlesLimit     = 10
	RecentAchievementLimit = 50
	LeaderboardLimit       = 100
)

// Session settings
const (
	SessionDuration  = 24 * time.Hour
	OAuthStateMaxAge = 10 * time.Minute
)

// Rate limiting
const (
	APIRateLimit       = 120
	AuthRateLimit      = 20
	RateLimitWindow    = time.Minute
	RateLimiterMaxKeys = 10000
)

// Character defaults applied at creation
const (
	StartingStat      = 10
	StartingHealth    = 100
	StartingCoins     = 100
	MaxNameLength     = 64
	MaxLabelLength    = 64
	DefaultEnemyType  = "Goblin"
	DefaultPlayerMove = "attack"
)

// Per-request input ceilings
const (
	MaxStatUpgrade      = 1000
	MaxCalories         = 20000
	MaxSteps            = 200000
	MaxExerciseMinutes  = 24 * 60
	DefaultActivityType = "general"
)

// DashboardConcurrency bounds parallel section loads for one dashboard request.
const DashboardConcurrency = 4

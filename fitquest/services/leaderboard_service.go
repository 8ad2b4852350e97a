package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"

	"github.com/fitquest/fitquest-api/fitquest/config"
	"github.com/fitquest/fitquest-api/fitquest/database/repositories"
)

const (
	PeriodAll     = "all"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

type LeaderboardEntry struct {
	Rank          int       `json:"rank"`
	UserID        uuid.UUID `json:"userId"`
	Username      string    `json:"username"`
	CharacterName string    `json:"characterName"`
	Level         int       `json:"level"`
	XP            int64     `json:"xp"`
}

// LeaderboardCache stores ranked boards per period. A miss is reported with ok=false.
type LeaderboardCache interface {
	Get(ctx context.Context, period string) (entries []LeaderboardEntry, ok bool, err error)
	Set(ctx context.Context, period string, entries []LeaderboardEntry) error
}

type LeaderboardService interface {
	// Top returns up to 100 characters ranked by level then xp. A non-empty
	// query narrows the ranked board by fuzzy name match; ranks are kept.
	Top(ctx context.Context, period, query string) ([]LeaderboardEntry, error)
}

type leaderboardService struct {
	repo  repositories.LeaderboardRepository
	cache LeaderboardCache
	now   func() time.Time
}

// NewLeaderboardService creates the ranker. cache may be nil.
func NewLeaderboardService(repo repositories.LeaderboardRepository, cache LeaderboardCache) LeaderboardService {
	return &leaderboardService{repo: repo, cache: cache, now: time.Now}
}

// periodCutoff maps a period to the oldest updated_at still ranked; nil means no filter.
func periodCutoff(period string, now time.Time) (*time.Time, error) {
	var window time.Duration
	switch period {
	case PeriodAll:
		return nil, nil
	case PeriodWeekly:
		window = 7 * 24 * time.Hour
	case PeriodMonthly:
		window = 30 * 24 * time.Hour
	default:
		return nil, invalid("period", "must be one of all, weekly, monthly")
	}
	cutoff := now.Add(-window)
	return &cutoff, nil
}

func (s *leaderboardService) Top(ctx context.Context, period, query string) ([]LeaderboardEntry, error) {
	period = strings.ToLower(strings.TrimSpace(period))
	if period == "" {
		period = PeriodAll
	}
	cutoff, err := periodCutoff(period, s.now().UTC())
	if err != nil {
		return nil, err
	}

	entries, err := s.ranked(ctx, period, cutoff)
	if err != nil {
		return nil, err
	}
	return filterEntries(entries, query), nil
}

func (s *leaderboardService) ranked(ctx context.Context, period string, cutoff *time.Time) ([]LeaderboardEntry, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, period)
		if err != nil {
			slog.Warn("Leaderboard cache read failed",
				slog.String("period", period),
				slog.Any("error", err))
		} else if ok {
			return cached, nil
		}
	}

	rows, err := s.repo.Top(ctx, cutoff, config.LeaderboardLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, LeaderboardEntry{
			Rank:          i + 1,
			UserID:        row.UserID,
			Username:      row.Username,
			CharacterName: row.CharacterName,
			Level:         row.Level,
			XP:            row.XP,
		})
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, period, entries); err != nil {
			slog.Warn("Leaderboard cache write failed",
				slog.String("period", period),
				slog.Any("error", err))
		}
	}
	return entries, nil
}

// searchSource adapts entries to fuzzy.Source, matching on "username character".
type searchSource []LeaderboardEntry

func (s searchSource) String(i int) string {
	return s[i].Username + " " + s[i].CharacterName
}

func (s searchSource) Len() int {
	return len(s)
}

func filterEntries(entries []LeaderboardEntry, query string) []LeaderboardEntry {
	query = strings.TrimSpace(query)
	if query == "" {
		return entries
	}

	matches := fuzzy.FindFrom(query, searchSource(entries))
	picked := make(map[int]bool, len(matches))
	for _, m := range matches {
		picked[m.Index] = true
	}

	// Keep leaderboard order rather than match score order.
	out := make([]LeaderboardEntry, 0, len(matches))
	for i, e := range entries {
		if picked[i] {
			out = append(out, e)
		}
	}
	return out
}

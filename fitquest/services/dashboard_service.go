package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fitquest/fitquest-api/fitquest/config"
	"github.com/fitquest/fitquest-api/fitquest/database/models"
)

type Dashboard struct {
	User          *models.User           `json:"user"`
	Character     *models.Character      `json:"character"`
	RecentFitness []*models.FitnessEntry `json:"recentFitness"`
	Quests        []*models.Quest        `json:"quests"`
	RecentBattles []*models.Battle       `json:"recentBattles"`
	Story         *models.StoryProgress  `json:"story"`
}

type DashboardService interface {
	Load(ctx context.Context, userID uuid.UUID) (*Dashboard, error)
}

type dashboardService struct {
	users   UserService
	fitness FitnessService
	quests  QuestService
	battles BattleService
	story   StoryService
}

func NewDashboardService(users UserService, fitness FitnessService, quests QuestService, battles BattleService, story StoryService) DashboardService {
	return &dashboardService{users: users, fitness: fitness, quests: quests, battles: battles, story: story}
}

// Load reads every dashboard section concurrently; the first failure cancels the rest.
func (s *dashboardService) Load(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	d := &Dashboard{}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(config.DashboardConcurrency)

	g.Go(func() error {
		profile, err := s.users.Profile(ctx, userID)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		d.User, d.Character = profile.User, profile.Character
		return nil
	})
	g.Go(func() (err error) {
		d.RecentFitness, err = s.fitness.List(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		d.Quests, err = s.quests.List(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		d.RecentBattles, err = s.battles.List(ctx, userID)
		return err
	})
	g.Go(func() (err error) {
		d.Story, err = s.story.Get(ctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return d, nil
}

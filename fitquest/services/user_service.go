package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fitquest/fitquest-api/fitquest/config"
	"github.com/fitquest/fitquest-api/fitquest/database/models"
	"github.com/fitquest/fitquest-api/fitquest/database/repositories"
	"github.com/fitquest/fitquest-api/fitquest/progression"
)

type Profile struct {
	User          *models.User      `json:"user"`
	Character     *models.Character `json:"character"`
	XPToNextLevel int64             `json:"xpToNextLevel"`
}

type UserService interface {
	// FindOrCreate returns the user registered under email, creating the user,
	// their character and starter quests on first sign-in.
	FindOrCreate(ctx context.Context, email, username string) (*models.User, error)
	Get(ctx context.Context, userID uuid.UUID) (*models.User, error)
	Profile(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type userService struct {
	tx         Transactor
	users      repositories.UserRepository
	characters repositories.CharacterRepository
	quests     repositories.QuestRepository
}

func NewUserService(tx Transactor, users repositories.UserRepository, characters repositories.CharacterRepository, quests repositories.QuestRepository) UserService {
	return &userService{tx: tx, users: users, characters: characters, quests: quests}
}

func (s *userService) FindOrCreate(ctx context.Context, email, username string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, invalid("email", "a valid email address is required")
	}
	username = strings.TrimSpace(username)
	if username == "" {
		username = email[:strings.Index(email, "@")]
	}
	if runes := []rune(username); len(runes) > config.MaxNameLength {
		username = string(runes[:config.MaxNameLength])
	}

	var user *models.User
	err := s.tx.WithTransaction(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		candidate := &models.User{ID: uuid.New(), Email: email, Username: username}
		inserted, err := s.users.Create(ctx, tx, candidate)
		if err != nil {
			return err
		}
		if !inserted {
			user, err = s.users.GetByEmail(ctx, tx, email)
			return err
		}

		user = candidate
		return s.provision(ctx, tx, user)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find or create user: %w", err)
	}
	return user, nil
}

// provision creates the character and starter quests owned by a new user.
func (s *userService) provision(ctx context.Context, db bun.IDB, user *models.User) error {
	character := &models.Character{
		UserID:    user.ID,
		Name:      fmt.Sprintf("%s's Character", user.Username),
		Level:     1,
		Strength:  config.StartingStat,
		Endurance: config.StartingStat,
		Agility:   config.StartingStat,
		Health:    config.StartingHealth,
		MaxHealth: config.StartingHealth,
		Coins:     config.StartingCoins,
	}
	if err := s.characters.Create(ctx, db, character); err != nil {
		return err
	}
	if err := s.quests.CreateBatch(ctx, db, newStarterQuests(user.ID)); err != nil {
		return err
	}

	slog.Info("Provisioned new player",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
		slog.String("character", character.Name))
	return nil
}

func (s *userService) Get(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *userService) Profile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	character, err := s.characters.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Profile{
		User:          user,
		Character:     character,
		XPToNextLevel: progression.XPToNextLevel(character.XP),
	}, nil
}

func (s *userService) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.users.Delete(ctx, userID)
}

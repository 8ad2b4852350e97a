package services

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fitquest/fitquest-api/fitquest/database/models"
	"github.com/fitquest/fitquest-api/fitquest/database/repositories"
)

var today = time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)

func newFitnessService(repos *repoMocks) *fitnessService {
	return &fitnessService{
		tx:      &inlineTx{},
		ledger:  repos.ledger(),
		fitness: repos.fitness,
		quests:  repos.quests,
		now:     clock,
	}
}

func TestFitnessService_Log_CreatesTodaysEntry(t *testing.T) {
	repos := newRepoMocks(t)
	userID := uuid.New()
	character := newCharacter(userID)

	repos.expectLocked(userID, character)
	repos.fitness.EXPECT().
		GetByDate(gomock.Any(), gomock.Any(), userID, today).
		Return(nil, &repositories.NotFoundError{Entity: "fitness_entry", ID: userID})
	repos.fitness.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, e *models.FitnessEntry) error {
			assert.Equal(t, today, e.EntryDate)
			assert.Equal(t, 300, e.Calories)
			assert.Equal(t, 5000, e.Steps)
			assert.Equal(t, 30, e.ExerciseMinutes)
			assert.Equal(t, "running", e.ActivityType)
			return nil
		})
	repos.quests.EXPECT().AdvanceProgress(gomock.Any(), gomock.Any(), userID, models.MetricSteps, 5000).Return(int64(1), nil)
	repos.quests.EXPECT().AdvanceProgress(gomock.Any(), gomock.Any(), userID, models.MetricCalories, 300).Return(int64(1), nil)
	repos.quests.EXPECT().AdvanceProgress(gomock.Any(), gomock.Any(), userID, models.MetricExerciseMinutes, 30).Return(int64(2), nil)
	repos.expectSaved()

	got, err := newFitnessService(repos).Log(context.Background(), userID, FitnessInput{
		Calories:        intPtr(300),
		Steps:           intPtr(5000),
		ExerciseMinutes: intPtr(30),
		ActivityType:    "running",
	})
	require.NoError(t, err)
	// 300/10 + 5000/100 + 30*2
	assert.EqualValues(t, 140, got.XPGained)
	assert.EqualValues(t, 140, got.Character.XP)
	assert.EqualValues(t, 100, got.Character.Coins)
	assert.Equal(t, 1, got.Character.Level)
}

func TestFitnessService_Log_DefaultsActivityType(t *testing.T) {
	repos := newRepoMocks(t)
	userID := uuid.New()
	character := newCharacter(userID)
	character.XP, character.Level = 5500, 6

	repos.expectLocked(userID, character)
	repos.fitness.EXPECT().
		GetByDate(gomock.Any(), gomock.Any(), userID, today).
		Return(nil, &repositories.NotFoundError{Entity: "fitness_entry", ID: userID})
	repos.fitness.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, e *models.FitnessEntry) error {
			assert.Equal(t, "general", e.ActivityType)
			return nil
		})
	repos.quests.EXPECT().AdvanceProgress(gomock.Any(), gomock.Any(), userID, models.MetricExerciseMinutes, 1440).Return(int64(0), nil)
	repos.expectSaved()
	repos.achievements.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, a *models.Achievement) error {
			assert.Equal(t, "Level 9", a.Title)
			return nil
		})

	got, err := newFitnessService(repos).Log(context.Background(), userID, FitnessInput{ExerciseMinutes: intPtr(1440)})
	require.NoError(t, err)
	assert.EqualValues(t, 2880, got.XPGained)
	assert.EqualValues(t, 8380, got.Character.XP)
	assert.Equal(t, 9, got.Character.Level)
}

func TestFitnessService_Log_MergesIntoExistingEntry(t *testing.T) {
	repos := newRepoMocks(t)
	userID := uuid.New()
	character := newCharacter(userID)
	existing := &models.FitnessEntry{
		ID:              uuid.New(),
		UserID:          userID,
		EntryDate:       today,
		Calories:        200,
		Steps:           1000,
		ExerciseMinutes: 10,
		ActivityType:    "walking",
	}

	repos.expectLocked(userID, character)
	repos.fitness.EXPECT().
		GetByDate(gomock.Any(), gomock.Any(), userID, today).
		Return(existing, nil)
	repos.fitness.EXPECT().
		Update(gomock.Any(), gomock.Any(), existing).
		Return(nil)
	repos.quests.EXPECT().AdvanceProgress(gomock.Any(), gomock.Any(), userID, models.MetricSteps, 3000).Return(int64(1), nil)
	repos.expectSaved()

	got, err := newFitnessService(repos).Log(context.Background(), userID, FitnessInput{
		Calories: intPtr(0),
		Steps:    intPtr(3000),
	})
	require.NoError(t, err)
	assert.Same(t, existing, got.Entry)
	assert.Equal(t, 200, got.Entry.Calories, "zero keeps the stored value")
	assert.Equal(t, 3000, got.Entry.Steps)
	assert.Equal(t, 10, got.Entry.ExerciseMinutes)
	assert.Equal(t, "walking", got.Entry.ActivityType)
	assert.EqualValues(t, 30, got.XPGained)
}

func TestFitnessService_Log_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input FitnessInput
		field string
	}{
		{name: "negative steps", input: FitnessInput{Steps: intPtr(-1)}, field: "steps"},
		{name: "negative calories", input: FitnessInput{Calories: intPtr(-20)}, field: "calories"},
		{name: "minutes beyond a day", input: FitnessInput{ExerciseMinutes: intPtr(1441)}, field: "exerciseMinutes"},
		{name: "minutes that would wrap xp", input: FitnessInput{ExerciseMinutes: intPtr(math.MaxInt/2 + 1)}, field: "exerciseMinutes"},
		{name: "too many steps", input: FitnessInput{Steps: intPtr(200001)}, field: "steps"},
		{name: "too many calories", input: FitnessInput{Calories: intPtr(20001)}, field: "calories"},
		{name: "long activity", input: FitnessInput{ActivityType: string(make([]rune, 65))}, field: "activityType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newFitnessService(newRepoMocks(t))
			_, err := s.Log(context.Background(), uuid.New(), tt.input)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestMergeFitness(t *testing.T) {
	entry := &models.FitnessEntry{Calories: 100, Steps: 200, ExerciseMinutes: 5, ActivityType: "yoga"}
	mergeFitness(entry, FitnessInput{ExerciseMinutes: intPtr(45), ActivityType: "  cycling "})

	assert.Equal(t, 100, entry.Calories)
	assert.Equal(t, 200, entry.Steps)
	assert.Equal(t, 45, entry.ExerciseMinutes)
	assert.Equal(t, "cycling", entry.ActivityType)
}

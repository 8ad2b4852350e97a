package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/fitquest/fitquest-api/fitquest/database/models"
	"github.com/fitquest/fitquest-api/fitquest/database/repositories"
)

type StoryUpdate struct {
	CurrentChapter    int
	CompletedChapters []int
}

type StoryService interface {
	// Get returns stored progress, or chapter 1 with nothing completed.
	Get(ctx context.Context, userID uuid.UUID) (*models.StoryProgress, error)
	Update(ctx context.Context, userID uuid.UUID, update StoryUpdate) (*models.StoryProgress, error)
}

type storyService struct {
	story repositories.StoryRepository
}

func NewStoryService(story repositories.StoryRepository) StoryService {
	return &storyService{story: story}
}

func defaultStory(userID uuid.UUID) *models.StoryProgress {
	return &models.StoryProgress{UserID: userID, CurrentChapter: 1, CompletedChapters: []int{}}
}

func (s *storyService) Get(ctx context.Context, userID uuid.UUID) (*models.StoryProgress, error) {
	progress, err := s.story.GetByUserID(ctx, userID)
	if repositories.IsNotFound(err) {
		return defaultStory(userID), nil
	}
	if err != nil {
		return nil, err
	}
	if progress.CompletedChapters == nil {
		progress.CompletedChapters = []int{}
	}
	return progress, nil
}

// dedupeChapters drops repeats, keeping the first occurrence so completion order survives.
func dedupeChapters(chapters []int) ([]int, error) {
	seen := make(map[int]bool, len(chapters))
	out := make([]int, 0, len(chapters))
	for _, c := range chapters {
		if c < 1 {
			return nil, invalid("completedChapters", "chapters start at 1")
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out, nil
}

func (s *storyService) Update(ctx context.Context, userID uuid.UUID, update StoryUpdate) (*models.StoryProgress, error) {
	if update.CurrentChapter < 1 {
		return nil, invalid("currentChapter", "must be at least 1")
	}
	chapters, err := dedupeChapters(update.CompletedChapters)
	if err != nil {
		return nil, err
	}

	progress := &models.StoryProgress{
		UserID:            userID,
		CurrentChapter:    update.CurrentChapter,
		CompletedChapters: chapters,
	}
	if err := s.story.Upsert(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

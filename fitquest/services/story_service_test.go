package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fitquest/fitquest-api/fitquest/database/models"
	"github.com/fitquest/fitquest-api/fitquest/database/repositories"
)

func TestStoryService_GetDefaults(t *testing.T) {
	repos := newRepoMocks(t)
	userID := uuid.New()
	repos.story.EXPECT().
		GetByUserID(gomock.Any(), userID).
		Return(nil, &repositories.NotFoundError{Entity: "story_progress", ID: userID})

	got, err := NewStoryService(repos.story).Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentChapter)
	assert.NotNil(t, got.CompletedChapters)
	assert.Empty(t, got.CompletedChapters)
}

func TestStoryService_Update(t *testing.T) {
	tests := []struct {
		name      string
		update    StoryUpdate
		want      []int
		wantField string
	}{
		{name: "dedupes keeping order", update: StoryUpdate{CurrentChapter: 4, CompletedChapters: []int{2, 1, 2, 3, 1}}, want: []int{2, 1, 3}},
		{name: "nil chapters", update: StoryUpdate{CurrentChapter: 1}, want: []int{}},
		{name: "chapter zero", update: StoryUpdate{CurrentChapter: 0}, wantField: "currentChapter"},
		{name: "bad completed chapter", update: StoryUpdate{CurrentChapter: 2, CompletedChapters: []int{1, -1}}, wantField: "completedChapters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := newRepoMocks(t)
			userID := uuid.New()
			s := NewStoryService(repos.story)

			if tt.wantField != "" {
				_, err := s.Update(context.Background(), userID, tt.update)
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantField, verr.Field)
				return
			}

			repos.story.EXPECT().
				Upsert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p *models.StoryProgress) error {
					assert.Equal(t, userID, p.UserID)
					return nil
				})

			got, err := s.Update(context.Background(), userID, tt.update)
			require.NoError(t, err)
			assert.Equal(t, tt.update.CurrentChapter, got.CurrentChapter)
			assert.Equal(t, tt.want, got.CompletedChapters)
		})
	}
}

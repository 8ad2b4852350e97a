package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fitquest/fitquest-api/backend/config"
	"github.com/fitquest/fitquest-api/backend/handlers"
	webservices "github.com/fitquest/fitquest-api/backend/services"
	authmock "github.com/fitquest/fitquest-api/backend/services/mock"
	"github.com/fitquest/fitquest-api/fitquest"
	"github.com/fitquest/fitquest-api/fitquest/database/models"
	"github.com/fitquest/fitquest-api/fitquest/database/repositories"
	"github.com/fitquest/fitquest-api/fitquest/economy"
	"github.com/fitquest/fitquest-api/fitquest/services"
	"github.com/fitquest/fitquest-api/fitquest/services/mock"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

type testEnv struct {
	app         *fiber.App
	web         *handlers.WebApp
	identity    *authmock.MockIdentityProvider
	users       *mock.MockUserService
	characters  *mock.MockCharacterService
	fitness     *mock.MockFitnessService
	quests      *mock.MockQuestService
	battles     *mock.MockBattleService
	rewards     *mock.MockRewardService
	leaderboard *mock.MockLeaderboardService
	story       *mock.MockStoryService
	dashboard   *mock.MockDashboardService
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newTestEnv(t *testing.T, mutate ...func(*fitquest.Config)) *testEnv {
	t.Helper()
	cfg := &fitquest.Config{
		Web: fitquest.WebConfig{
			SessionKey:     "test-session-secret",
			Environment:    "development",
			FrontendURL:    "http://localhost:5173",
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Auth: fitquest.AuthConfig{AllowLocalLogin: true},
	}
	for _, m := range mutate {
		m(cfg)
	}

	ctrl := gomock.NewController(t)
	webCfg := config.NewWebAppConfig(cfg)
	env := &testEnv{
		identity:    authmock.NewMockIdentityProvider(ctrl),
		users:       mock.NewMockUserService(ctrl),
		characters:  mock.NewMockCharacterService(ctrl),
		fitness:     mock.NewMockFitnessService(ctrl),
		quests:      mock.NewMockQuestService(ctrl),
		battles:     mock.NewMockBattleService(ctrl),
		rewards:     mock.NewMockRewardService(ctrl),
		leaderboard: mock.NewMockLeaderboardService(ctrl),
		story:       mock.NewMockStoryService(ctrl),
		dashboard:   mock.NewMockDashboardService(ctrl),
	}
	env.web = &handlers.WebApp{
		Config:         webCfg,
		DB:             fakePinger{},
		SessionService: webservices.NewSessionService(webCfg),
		Identity:       env.identity,
		Users:          env.users,
		Characters:     env.characters,
		Fitness:        env.fitness,
		Quests:         env.quests,
		Battles:        env.battles,
		Rewards:        env.rewards,
		Leaderboard:    env.leaderboard,
		Story:          env.story,
		Dashboard:      env.dashboard,
		Version:        "test",
	}
	env.app = NewApp(env.web)
	return env
}

// login returns a signed session cookie for a fresh user.
func (e *testEnv) login(t *testing.T) (uuid.UUID, *http.Cookie) {
	t.Helper()
	userID := uuid.New()
	session := e.web.SessionService.NewUserSession(userID, "player@example.com", "player")
	value, err := e.web.SessionService.EncodeSession(session)
	require.NoError(t, err)
	return userID, &http.Cookie{Name: webservices.SessionCookieName, Value: value}
}

func (e *testEnv) do(t *testing.T, method, target, body string, cookies ...*http.Cookie) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp, env
}

func cookieNamed(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, body.Success)

	env.web.DB = fakePinger{err: errors.New("connection refused")}
	resp, body = env.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.False(t, body.Success)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/user"},
		{http.MethodDelete, "/api/user"},
		{http.MethodGet, "/api/dashboard"},
		{http.MethodGet, "/api/character"},
		{http.MethodPut, "/api/character"},
		{http.MethodPost, "/api/character/upgrade"},
		{http.MethodGet, "/api/fitness"},
		{http.MethodPost, "/api/fitness"},
		{http.MethodGet, "/api/quests"},
		{http.MethodPost, "/api/quests/" + uuid.NewString() + "/complete"},
		{http.MethodGet, "/api/battles"},
		{http.MethodPost, "/api/battles"},
		{http.MethodGet, "/api/story"},
		{http.MethodPut, "/api/story"},
		{http.MethodGet, "/api/rewards/daily"},
		{http.MethodPost, "/api/rewards/daily"},
		{http.MethodGet, "/api/achievements"},
	}

	env := newTestEnv(t)
	forged := &http.Cookie{Name: webservices.SessionCookieName, Value: "bm90LWEtc2Vzc2lvbg=="}

	for _, r := range routes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			resp, body := env.do(t, r.method, r.path, "")
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			require.NotNil(t, body.Error)
			assert.Equal(t, "UNAUTHORIZED", body.Error.Code)

			resp, _ = env.do(t, r.method, r.path, "", forged)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestLeaderboard(t *testing.T) {
	env := newTestEnv(t)
	entries := []services.LeaderboardEntry{{Rank: 2, Username: "bob", Level: 5, XP: 4300}}

	env.leaderboard.EXPECT().Top(gomock.Any(), "weekly", "bo").Return(entries, nil)
	resp, body := env.do(t, http.MethodGet, "/api/leaderboard?period=weekly&q=bo", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got []services.LeaderboardEntry
	require.NoError(t, json.Unmarshal(body.Data, &got))
	assert.Equal(t, entries, got)

	env.leaderboard.EXPECT().Top(gomock.Any(), "yearly", "").
		Return(nil, &services.ValidationError{Field: "period", Message: "must be one of all, weekly, monthly"})
	resp, body = env.do(t, http.MethodGet, "/api/leaderboard?period=yearly", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_REQUEST", body.Error.Code)
	assert.Contains(t, body.Error.Details, "period")
}

func TestClaimDailyReward(t *testing.T) {
	env := newTestEnv(t)
	userID, cookie := env.login(t)

	gomock.InOrder(
		env.rewards.EXPECT().ClaimDaily(gomock.Any(), userID).Return(&services.DailyRewardResult{
			XPReward:   economy.DailyRewardXP,
			CoinReward: economy.DailyRewardCoins,
			Character:  &models.Character{UserID: userID, XP: 100, Coins: 150, Level: 1},
			Rewards:    economy.DailyRewards(),
		}, nil),
		env.rewards.EXPECT().ClaimDaily(gomock.Any(), userID).Return(nil, economy.ErrAlreadyClaimed),
	)

	resp, body := env.do(t, http.MethodPost, "/api/rewards/daily", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result services.DailyRewardResult
	require.NoError(t, json.Unmarshal(body.Data, &result))
	assert.EqualValues(t, 150, result.Character.Coins)
	require.Len(t, result.Rewards, 2)

	resp, body = env.do(t, http.MethodPost, "/api/rewards/daily", "", cookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "ALREADY_CLAIMED", body.Error.Code)
}

func TestUpgradeCharacter(t *testing.T) {
	env := newTestEnv(t)
	userID, cookie := env.login(t)

	env.characters.EXPECT().
		Upgrade(gomock.Any(), userID, economy.StatDelta{Strength: 1, Agility: 1}).
		Return(&services.UpgradeResult{Character: &models.Character{Strength: 11, Agility: 11}, Cost: 100}, nil)
	resp, _ := env.do(t, http.MethodPost, "/api/character/upgrade", `{"strength":1,"agility":1}`, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env.characters.EXPECT().
		Upgrade(gomock.Any(), userID, economy.StatDelta{Endurance: 1}).
		Return(nil, fmt.Errorf("upgrade: %w", &economy.RuleError{Code: "INSUFFICIENT_FUNDS", Message: "insufficient coins (has 0, needs 50)"}))
	resp, body := env.do(t, http.MethodPost, "/api/character/upgrade", `{"endurance":1}`, cookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INSUFFICIENT_FUNDS", body.Error.Code)
	assert.Equal(t, "insufficient coins (has 0, needs 50)", body.Error.Message)
}

func TestCompleteQuest(t *testing.T) {
	env := newTestEnv(t)
	userID, cookie := env.login(t)
	questID := uuid.New()

	tests := []struct {
		name     string
		path     string
		setup    func()
		status   int
		wantCode string
		wantMsg  string
	}{
		{
			name:     "malformed id",
			path:     "/api/quests/not-a-uuid/complete",
			setup:    func() {},
			status:   http.StatusBadRequest,
			wantCode: "INVALID_REQUEST",
		},
		{
			name: "missing quest",
			path: "/api/quests/" + questID.String() + "/complete",
			setup: func() {
				env.quests.EXPECT().Complete(gomock.Any(), userID, questID).
					Return(nil, &repositories.NotFoundError{Entity: "quest", ID: questID})
			},
			status:   http.StatusNotFound,
			wantCode: "NOT_FOUND",
			wantMsg:  "Quest not found",
		},
		{
			name: "already completed",
			path: "/api/quests/" + questID.String() + "/complete",
			setup: func() {
				env.quests.EXPECT().Complete(gomock.Any(), userID, questID).
					Return(nil, economy.ErrQuestAlreadyCompleted)
			},
			status:   http.StatusBadRequest,
			wantCode: "QUEST_ALREADY_COMPLETED",
		},
		{
			name: "completed",
			path: "/api/quests/" + questID.String() + "/complete",
			setup: func() {
				env.quests.EXPECT().Complete(gomock.Any(), userID, questID).
					Return(&services.QuestCompletion{Quest: &models.Quest{ID: questID, Completed: true}}, nil)
			},
			status: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			resp, body := env.do(t, http.MethodPost, tt.path, "", cookie)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.wantCode != "" {
				require.NotNil(t, body.Error)
				assert.Equal(t, tt.wantCode, body.Error.Code)
				assert.NotContains(t, body.Error.Message, questID.String())
			}
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body.Error.Message)
			}
		})
	}
}

func TestUpdateCharacter_Conflict(t *testing.T) {
	env := newTestEnv(t)
	userID, cookie := env.login(t)

	env.characters.EXPECT().Update(gomock.Any(), userID, gomock.Any()).
		Return(nil, fmt.Errorf("update: %w", &repositories.ConflictError{Entity: "character", Field: "characters_user_id_key", Value: userID}))
	resp, body := env.do(t, http.MethodPut, "/api/character", `{"name":"Rival"}`, cookie)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "CONFLICT", body.Error.Code)
	assert.Equal(t, "Character already exists", body.Error.Message)
}

func TestMissingCharacter_ShortMessage(t *testing.T) {
	env := newTestEnv(t)
	userID, cookie := env.login(t)

	env.characters.EXPECT().Get(gomock.Any(), userID).
		Return(nil, &repositories.NotFoundError{Entity: "character", ID: userID})
	resp, body := env.do(t, http.MethodGet, "/api/character", "", cookie)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "Character not found", body.Error.Message)
	assert.NotContains(t, body.Error.Message, userID.String())
}

func TestLogFitness(t *testing.T) {
	env := newTestEnv(t)
	userID, cookie := env.login(t)

	env.fitness.EXPECT().
		Log(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, in services.FitnessInput) (*services.FitnessLogResult, error) {
			if assert.NotNil(t, in.Steps) {
				assert.Equal(t, 5000, *in.Steps)
			}
			assert.Nil(t, in.Calories)
			return &services.FitnessLogResult{XPGained: 50}, nil
		})
	resp, _ := env.do(t, http.MethodPost, "/api/fitness", `{"steps":5000}`, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := env.do(t, http.MethodPost, "/api/fitness", `{"steps":`, cookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_REQUEST", body.Error.Code)
}

func TestUpdateStory_RequiresChapter(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.login(t)

	resp, body := env.do(t, http.MethodPut, "/api/story", `{"completedChapters":[1]}`, cookie)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Contains(t, body.Error.Details, "currentChapter")
}

func TestUnexpectedErrorIsHidden(t *testing.T) {
	env := newTestEnv(t)
	userID, cookie := env.login(t)

	env.characters.EXPECT().Get(gomock.Any(), userID).Return(nil, errors.New("pq: relation does not exist"))
	resp, body := env.do(t, http.MethodGet, "/api/character", "", cookie)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Error.Code)
	assert.NotContains(t, body.Error.Message, "pq:")
}

func TestDeleteUser_EndsSession(t *testing.T) {
	env := newTestEnv(t)
	userID, cookie := env.login(t)

	env.users.EXPECT().Delete(gomock.Any(), userID).Return(nil)
	resp, _ := env.do(t, http.MethodDelete, "/api/user", "", cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cleared := cookieNamed(resp, webservices.SessionCookieName)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestLocalLogin(t *testing.T) {
	env := newTestEnv(t)
	user := &models.User{ID: uuid.New(), Email: "dana@example.com", Username: "dana"}
	env.users.EXPECT().FindOrCreate(gomock.Any(), "dana@example.com", "dana").Return(user, nil)

	resp, body := env.do(t, http.MethodPost, "/auth/local", `{"email":"dana@example.com","username":"dana"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, body.Error)
	cookie := cookieNamed(resp, webservices.SessionCookieName)
	require.NotNil(t, cookie)

	resp, body = env.do(t, http.MethodGet, "/auth/session", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status struct {
		Authenticated bool `json:"authenticated"`
		User          struct {
			UserID uuid.UUID `json:"user_id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &status))
	assert.True(t, status.Authenticated)
	assert.Equal(t, user.ID, status.User.UserID)

	resp, body = env.do(t, http.MethodPost, "/auth/local", `{"email":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Contains(t, body.Error.Details, "email")
}

func TestLocalLogin_Disabled(t *testing.T) {
	env := newTestEnv(t, func(cfg *fitquest.Config) { cfg.Auth.AllowLocalLogin = false })

	resp, _ := env.do(t, http.MethodPost, "/auth/local", `{"email":"dana@example.com"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOIDCFlow(t *testing.T) {
	env := newTestEnv(t)
	var state string
	env.identity.EXPECT().AuthURL(gomock.Any()).DoAndReturn(func(s string) string {
		state = s
		return "https://idp.example/authorize?state=" + url.QueryEscape(s)
	})

	resp, _ := env.do(t, http.MethodGet, "/auth/login", "")
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://idp.example/authorize?state="+url.QueryEscape(state), resp.Header.Get("Location"))
	stateCookie := cookieNamed(resp, webservices.StateCookieName)
	require.NotNil(t, stateCookie)
	require.NotEmpty(t, state)

	user := &models.User{ID: uuid.New(), Email: "eve@example.com", Username: "eve"}
	env.identity.EXPECT().
		Exchange(gomock.Any(), "auth-code", state).
		Return(&webservices.Identity{Subject: "sub-1", Email: "eve@example.com", Username: "eve"}, nil)
	env.users.EXPECT().FindOrCreate(gomock.Any(), "eve@example.com", "eve").Return(user, nil)

	callback := "/auth/callback?code=auth-code&state=" + url.QueryEscape(state)
	resp, _ = env.do(t, http.MethodGet, callback, "", stateCookie)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Location"))
	assert.NotNil(t, cookieNamed(resp, webservices.SessionCookieName))
}

func TestOAuthCallback_StateMismatch(t *testing.T) {
	env := newTestEnv(t)
	env.identity.EXPECT().AuthURL(gomock.Any()).Return("https://idp.example/authorize")

	resp, _ := env.do(t, http.MethodGet, "/auth/login", "")
	stateCookie := cookieNamed(resp, webservices.StateCookieName)
	require.NotNil(t, stateCookie)

	resp, _ = env.do(t, http.MethodGet, "/auth/callback?code=x&state=forged", "", stateCookie)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "http://localhost:5173/login?error=state_mismatch", resp.Header.Get("Location"))
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t)
	resp, body := env.do(t, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"vibevoyager/internal/models"
	"vibevoyager/pkg/utils"
)

// fakeChatClient replays canned replies and records what it was asked.
type fakeChatClient struct {
	replies []string
	err     error
	calls   int

	lastSystem string
	lastUser   string
}

func (f *fakeChatClient) Complete(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	f.lastSystem = systemPrompt
	f.lastUser = userPrompt
	if f.err != nil {
		return "", f.err
	}
	reply := f.replies[f.calls%len(f.replies)]
	f.calls++
	return reply, nil
}

func (f *fakeChatClient) Ping(context.Context) bool { return f.err == nil }

// MockQlooService is a testify mock of the resolver.
type MockQlooService struct {
	mock.Mock
}

func (m *MockQlooService) SearchEntities(ctx context.Context, query, entityType string, limit int) []models.QlooSearchHit {
	args := m.Called(ctx, query, entityType, limit)
	return args.Get(0).([]models.QlooSearchHit)
}

func (m *MockQlooService) SearchTags(ctx context.Context, query string, limit int) []models.QlooTagHit {
	args := m.Called(ctx, query, limit)
	return args.Get(0).([]models.QlooTagHit)
}

func (m *MockQlooService) InsightsByEntities(ctx context.Context, ids []string, entityType string, limit int) []models.QlooInsight {
	args := m.Called(ctx, ids, entityType, limit)
	return args.Get(0).([]models.QlooInsight)
}

func (m *MockQlooService) DestinationsFromVibes(ctx context.Context, vibes []string, max int) []models.QlooInsight {
	args := m.Called(ctx, vibes, max)
	return args.Get(0).([]models.QlooInsight)
}

func (m *MockQlooService) TestConnection(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func insight(name string) models.QlooInsight {
	var ins models.QlooInsight
	ins.Entity.ID = "urn:entity:destination:" + name
	ins.Entity.Name = name
	ins.Affinity.Score = 0.9
	return ins
}

const goodVibeReply = `{
  "vibe": "Neon Nomad",
  "vibeDescription": "You chase city lights and late-night counters.",
  "destination": "Tokyo",
  "activities": [
    {"id":"1","title":"Jazz Kissa Crawl","description":"Vinyl bars in Shibuya","time":"8 PM","category":"Music","rating":4.8},
    {"id":"2","title":"Tsukiji Breakfast","description":"Omakase sushi","time":"7 AM","category":"Food","rating":4.9},
    {"id":"3","title":"TeamLab Planets","description":"Immersive art","time":"1 PM","category":"Art","rating":4.7},
    {"id":"4","title":"Golden Gai","description":"Tiny bars","time":"10 PM","category":"Nightlife","rating":4.5}
  ]
}`

func TestValidateTastes(t *testing.T) {
	assert.NoError(t, ValidateTastes([]string{"Jazz Music", "Sushi"}))
	assert.NoError(t, ValidateTastes([]string{"Jazz", "Sushi", "Street Art"}))
	assert.ErrorIs(t, ValidateTastes([]string{"Jazz"}), utils.ErrInvalidTasteCount)
	assert.ErrorIs(t, ValidateTastes([]string{"a", "b", "c", "d"}), utils.ErrInvalidTasteCount)
	assert.ErrorIs(t, ValidateTastes([]string{"Jazz", "  "}), utils.ErrInvalidTasteCount)
}

func TestGenerateVibeSuccessWithHints(t *testing.T) {
	tastes := []string{"Jazz Music", "Sushi"}

	chat := &fakeChatClient{replies: []string{goodVibeReply}}
	qloo := new(MockQlooService)
	qloo.On("DestinationsFromVibes", mock.Anything, tastes, 3).
		Return([]models.QlooInsight{insight("Tokyo"), insight("Osaka")})

	svc := NewVibeService(chat, qloo, zap.NewNop())
	resp := svc.GenerateVibe(context.Background(), tastes)

	assert.True(t, resp.Success)
	assert.True(t, resp.QlooUsed)
	assert.Equal(t, "Tokyo", resp.Data.Destination)
	assert.Len(t, resp.Data.Activities, 4)
	assert.Equal(t, []string{"Tokyo", "Osaka"}, resp.Data.QlooDestinations)

	// Hints feed the user prompt, and the initial call carries the schema
	// system instruction.
	assert.Contains(t, chat.lastUser, "Destinations that match: Tokyo, Osaka")
	assert.Contains(t, chat.lastSystem, "single, valid JSON object")
	qloo.AssertExpectations(t)
}

func TestGenerateVibeWithoutHints(t *testing.T) {
	tastes := []string{"Jazz Music", "Sushi"}

	chat := &fakeChatClient{replies: []string{goodVibeReply}}
	qloo := new(MockQlooService)
	// The resolver degrading to zero hints must not fail the flow.
	qloo.On("DestinationsFromVibes", mock.Anything, tastes, 3).
		Return([]models.QlooInsight{})

	svc := NewVibeService(chat, qloo, zap.NewNop())
	resp := svc.GenerateVibe(context.Background(), tastes)

	assert.True(t, resp.Success)
	assert.False(t, resp.QlooUsed)
	assert.Empty(t, resp.Data.QlooDestinations)
	assert.NotContains(t, chat.lastUser, "Destinations that match")
}

func TestGenerateVibeProseWrappedReply(t *testing.T) {
	chat := &fakeChatClient{replies: []string{"Here is your plan: " + goodVibeReply + " Enjoy!"}}
	qloo := new(MockQlooService)
	qloo.On("DestinationsFromVibes", mock.Anything, mock.Anything, 3).
		Return([]models.QlooInsight{})

	svc := NewVibeService(chat, qloo, zap.NewNop())
	resp := svc.GenerateVibe(context.Background(), []string{"Jazz Music", "Sushi"})

	assert.True(t, resp.Success)
	assert.Equal(t, "Tokyo", resp.Data.Destination)
}

func TestGenerateVibeFailures(t *testing.T) {
	tests := []struct {
		name    string
		chat    *fakeChatClient
		wantErr string
	}{
		{
			name:    "model call fails",
			chat:    &fakeChatClient{err: errors.New("upstream 503")},
			wantErr: "upstream 503",
		},
		{
			name:    "no JSON in reply",
			chat:    &fakeChatClient{replies: []string{"I cannot help with that."}},
			wantErr: utils.ErrNoJSONPayload.Error(),
		},
		{
			name: "wrong activity count",
			chat: &fakeChatClient{replies: []string{
				`{"vibe":"x","vibeDescription":"y","destination":"z","activities":[{"id":"1"}]}`,
			}},
			wantErr: utils.ErrSchemaMismatch.Error(),
		},
		{
			name: "missing string field",
			chat: &fakeChatClient{replies: []string{
				`{"vibe":"x","destination":"z","activities":[{},{},{},{}]}`,
			}},
			wantErr: utils.ErrSchemaMismatch.Error(),
		},
		{
			name: "object-typed string field",
			chat: &fakeChatClient{replies: []string{
				`{"vibe":{"nested":true},"vibeDescription":"y","destination":"z","activities":[{},{},{},{}]}`,
			}},
			wantErr: utils.ErrSchemaMismatch.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qloo := new(MockQlooService)
			qloo.On("DestinationsFromVibes", mock.Anything, mock.Anything, 3).
				Return([]models.QlooInsight{})

			svc := NewVibeService(tt.chat, qloo, zap.NewNop())
			resp := svc.GenerateVibe(context.Background(), []string{"Jazz Music", "Sushi"})

			assert.False(t, resp.Success)
			assert.Nil(t, resp.Data)
			assert.Contains(t, resp.Error, tt.wantErr)
		})
	}
}

func TestExtendByOneDay(t *testing.T) {
	previous := []models.DayPlan{
		{Day: 1, Activities: []models.Activity{
			{ID: "1", Title: "Jazz Kissa Crawl"},
			{ID: "2", Title: "Tsukiji Breakfast"},
			{ID: "3", Title: "TeamLab Planets"},
			{ID: "4", Title: "Golden Gai"},
		}},
	}

	chat := &fakeChatClient{replies: []string{
		`[{"id":"5","title":"Meiji Shrine","description":"Morning walk","time":"9 AM","category":"Culture"},
		  {"id":"6","title":"Harajuku Crepes","description":"Street food","time":"12 PM","category":"Food"},
		  {"id":"7","title":"Shimokita Vintage","description":"Record stores","time":"3 PM","category":"Lifestyle"},
		  {"id":"8","title":"Yokocho Dinner","description":"Alley izakaya","time":"7 PM","category":"Food"}]`,
	}}
	qloo := new(MockQlooService)

	svc := NewVibeService(chat, qloo, zap.NewNop())
	acts, err := svc.ExtendByOneDay(context.Background(), "Tokyo", previous, []string{"Jazz Music", "Sushi"})

	assert.NoError(t, err)
	assert.Len(t, acts, 4)
	assert.Equal(t, "Meiji Shrine", acts[0].Title)

	// The extension call suppresses the system message entirely and
	// summarizes prior days for the model.
	assert.Empty(t, chat.lastSystem)
	assert.Contains(t, chat.lastUser, "Day 1: Jazz Kissa Crawl, Tsukiji Breakfast, TeamLab Planets, Golden Gai")
	assert.Contains(t, chat.lastUser, "Day 2")
}

func TestExtendByOneDayIsPermissiveAboutCount(t *testing.T) {
	// The day-extension path takes the parsed array as-is, even when the
	// model ignores the four-activity instruction.
	chat := &fakeChatClient{replies: []string{`[{"id":"5","title":"Only One"}]`}}
	svc := NewVibeService(chat, new(MockQlooService), zap.NewNop())

	acts, err := svc.ExtendByOneDay(context.Background(), "Tokyo", nil, []string{"Jazz", "Sushi"})
	assert.NoError(t, err)
	assert.Len(t, acts, 1)
}

func TestExtendByOneDayFailure(t *testing.T) {
	chat := &fakeChatClient{err: errors.New("timeout")}
	svc := NewVibeService(chat, new(MockQlooService), zap.NewNop())

	_, err := svc.ExtendByOneDay(context.Background(), "Tokyo", nil, []string{"Jazz", "Sushi"})
	assert.ErrorIs(t, err, utils.ErrGenerationFailed)
}

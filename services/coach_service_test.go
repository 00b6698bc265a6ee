package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGroq serves a canned completion and records what the service sent.
func fakeGroq(t *testing.T, reply string) (*CoachService, *map[string]any) {
	t.Helper()
	captured := &map[string]any{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		fmt.Fprintf(w, `{"choices":[{"message":{"role":"assistant","content":%q}}]}`, reply)
	}))
	t.Cleanup(srv.Close)
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("GROQ_BASE_URL", srv.URL)
	return NewCoachService(), captured
}

func TestDailyTipWithoutProfileIsCanned(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "chandra")
	svc, _ := fakeGroq(t, "unused")

	tip, err := svc.DailyTip(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stay consistent today!", tip)
}

func TestDailyTipUsesFastModelAndProfile(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "chandra")
	require.NoError(t, SaveOnboarding(user.ID, []string{"fitness"}, "7-8", []string{"time"}))
	svc, captured := fakeGroq(t, "Go get it!")

	tip, err := svc.DailyTip(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go get it!", tip)
	assert.Equal(t, coachModelFast, (*captured)["model"])

	msgs := (*captured)["messages"].([]any)
	userMsg := msgs[1].(map[string]any)["content"].(string)
	assert.Contains(t, userMsg, "fitness")
}

func TestChatRequiresMessage(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "chandra")
	svc, _ := fakeGroq(t, "unused")

	_, err := svc.Chat(user.ID, "   ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestChatUsesSmartModel(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "chandra")
	svc, captured := fakeGroq(t, "Small steps, every day.")

	reply, err := svc.Chat(user.ID, "How do I stop procrastinating?")
	require.NoError(t, err)
	assert.Equal(t, "Small steps, every day.", reply)
	assert.Equal(t, coachModelSmart, (*captured)["model"])
}

func TestSuggestHabitsStripsFences(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "chandra")
	svc, _ := fakeGroq(t, "```json\n[{\"name\": \"Drink 2L Water\", \"icon\": \"💧\"}]\n```")

	suggestions, err := svc.SuggestHabits(user.ID, "health")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Drink 2L Water", suggestions[0].Name)
	assert.Equal(t, "💧", suggestions[0].Icon)
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"rate limited"}}`)
	}))
	t.Cleanup(srv.Close)
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("GROQ_BASE_URL", srv.URL)

	svc := NewCoachService()
	_, err := svc.complete("", "hello", coachModelFast)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestCompleteWithoutKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	svc := NewCoachService()
	_, err := svc.complete("", "hello", coachModelFast)
	assert.Error(t, err)
}

package services

import (
	"testing"

	"github.com/StarDust130/Prime-Day/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGoalDefaults(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "chandra")

	goal, err := CreateGoal(user.ID, GoalInput{Title: "Ship the app"})
	require.NoError(t, err)
	assert.Equal(t, models.GoalTypeShort, goal.Type)
	assert.Equal(t, models.GoalStatusActive, goal.Status)
	assert.Equal(t, "🎯", goal.Icon)
	assert.Equal(t, "bg-[#38BDF8]", goal.Color)
	assert.Equal(t, 0, goal.Progress)
	assert.Empty(t, goal.Deadline)
}

func TestCreateGoalValidation(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "chandra")

	_, err := CreateGoal(user.ID, GoalInput{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = CreateGoal(user.ID, GoalInput{Title: "x", Type: "forever"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = CreateGoal(user.ID, GoalInput{Title: "x", Deadline: "soonish"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateGoalDeadlineFormats(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "chandra")

	plain, err := CreateGoal(user.ID, GoalInput{Title: "a", Deadline: "2026-12-31"})
	require.NoError(t, err)
	assert.Equal(t, "2026-12-31", plain.Deadline)

	stamped, err := CreateGoal(user.ID, GoalInput{Title: "b", Deadline: "2026-12-31T10:00:00Z"})
	require.NoError(t, err)
	assert.Equal(t, "2026-12-31", stamped.Deadline)
}

func TestUpdateGoalPartialAndProgressBounds(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "chandra")
	goal, err := CreateGoal(user.ID, GoalInput{Title: "Ship the app"})
	require.NoError(t, err)

	progress := 40
	updated, err := UpdateGoal(user.ID, goal.ID, GoalInput{Progress: &progress, Status: models.GoalStatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, 40, updated.Progress)
	assert.Equal(t, models.GoalStatusCompleted, updated.Status)
	// untouched fields survive a partial update
	assert.Equal(t, "Ship the app", updated.Title)

	over := 120
	_, err = UpdateGoal(user.ID, goal.ID, GoalInput{Progress: &over})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = UpdateGoal(user.ID, goal.ID, GoalInput{Status: "paused"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGoalOwnershipIsolation(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "chandra")
	stranger := createTestUser(t, "priya")
	goal, err := CreateGoal(owner.ID, GoalInput{Title: "Ship the app"})
	require.NoError(t, err)

	_, err = UpdateGoal(stranger.ID, goal.ID, GoalInput{Title: "mine now"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = DeleteGoal(stranger.ID, goal.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	goals, err := ListGoals(stranger.ID)
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestDeleteGoal(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "chandra")
	goal, err := CreateGoal(user.ID, GoalInput{Title: "Ship the app"})
	require.NoError(t, err)

	require.NoError(t, DeleteGoal(user.ID, goal.ID))
	goals, err := ListGoals(user.ID)
	require.NoError(t, err)
	assert.Empty(t, goals)
}

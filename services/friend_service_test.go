package services

import (
	"testing"
	"time"

	"github.com/StarDust130/Prime-Day/config"
	"github.com/StarDust130/Prime-Day/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestBetween(t *testing.T, a, b uint) *models.FriendRequest {
	t.Helper()
	req, err := findRequestBetween(a, b)
	require.NoError(t, err)
	return req
}

func TestFriendRequestLifecycle(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	require.NoError(t, SendFriendRequest(alice.ID, bob.ID))

	incoming, outgoing, err := PendingRequests(bob.ID)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, "alice", incoming[0].Username)
	assert.Empty(t, outgoing)

	status, err := RespondToRequest(bob.ID, incoming[0].ID, "accept")
	require.NoError(t, err)
	assert.Equal(t, models.RequestAccepted, status)

	friends, err := ListFriends(alice.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "bob", friends[0].Username)
}

func TestSendFriendRequestValidation(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	err := SendFriendRequest(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrValidation)

	err = SendFriendRequest(alice.ID, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, SendFriendRequest(alice.ID, bob.ID))

	// a second send in either direction while pending is rejected
	err = SendFriendRequest(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrValidation)
	err = SendFriendRequest(bob.ID, alice.ID)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestResendAfterRejectFlipsSender(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	require.NoError(t, SendFriendRequest(alice.ID, bob.ID))
	req := requestBetween(t, alice.ID, bob.ID)

	_, err := RespondToRequest(bob.ID, req.ID, "reject")
	require.NoError(t, err)

	// bob changes his mind: the rejected edge revives with bob as sender
	require.NoError(t, SendFriendRequest(bob.ID, alice.ID))
	req = requestBetween(t, alice.ID, bob.ID)
	assert.Equal(t, models.RequestPending, req.Status)
	assert.Equal(t, bob.ID, req.SenderID)
	assert.Equal(t, alice.ID, req.ReceiverID)
}

func TestRespondOnlyReceiverMay(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	carol := createTestUser(t, "carol")

	require.NoError(t, SendFriendRequest(alice.ID, bob.ID))
	req := requestBetween(t, alice.ID, bob.ID)

	_, err := RespondToRequest(alice.ID, req.ID, "accept")
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = RespondToRequest(carol.ID, req.ID, "accept")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = RespondToRequest(bob.ID, req.ID, "ignore")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCancelOnlySenderMay(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	require.NoError(t, SendFriendRequest(alice.ID, bob.ID))
	req := requestBetween(t, alice.ID, bob.ID)

	err := CancelRequest(bob.ID, req.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, CancelRequest(alice.ID, req.ID))
	_, err = findRequestBetween(alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLeaderboardAggregatesFriendStats(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	require.NoError(t, SendFriendRequest(alice.ID, bob.ID))
	req := requestBetween(t, alice.ID, bob.ID)
	_, err := RespondToRequest(bob.ID, req.ID, "accept")
	require.NoError(t, err)

	h1 := createTestHabit(t, bob.ID, "Run")
	h2 := createTestHabit(t, bob.ID, "Read")
	_, _, err = ToggleHabit(bob.ID, h1.ID, "")
	require.NoError(t, err)
	_, _, err = ToggleHabit(bob.ID, h2.ID, "")
	require.NoError(t, err)
	// yesterday bumps the streak but not today's completion count
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	_, _, err = ToggleHabit(bob.ID, h1.ID, yesterday)
	require.NoError(t, err)

	friends, err := ListFriends(alice.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, 2, friends[0].CompletedToday)
	assert.Equal(t, 2, friends[0].Streak)
}

func TestAcceptNotifiesSender(t *testing.T) {
	db := setupTestDB(t)
	InitNotifyDeps(db, nil, nil)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	require.NoError(t, SendFriendRequest(alice.ID, bob.ID))
	req := requestBetween(t, alice.ID, bob.ID)
	_, err := RespondToRequest(bob.ID, req.ID, "accept")
	require.NoError(t, err)

	var rows []models.Notification
	require.NoError(t, config.DB.Where("user_id = ?", alice.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "friend.accepted", rows[0].Type)
}

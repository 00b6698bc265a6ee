package controllers

import (
	"net/http"
	"strconv"

	"github.com/StarDust130/Prime-Day/services"

	"github.com/gin-gonic/gin"
)

// ListFriends returns the leaderboard rows for every accepted friend.
func ListFriends(c *gin.Context) {
	userID := c.GetUint("userID")
	friends, err := services.ListFriends(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"friends": friends})
}

type FriendRequestInput struct {
	TargetUserID uint `json:"targetUserId"`
}

func SendFriendRequest(c *gin.Context) {
	userID := c.GetUint("userID")

	var input FriendRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.SendFriendRequest(userID, input.TargetUserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": "pending"})
}

type RespondRequestInput struct {
	RequestID uint   `json:"requestId"`
	Action    string `json:"action"` // "accept" | "reject"
}

func RespondToFriendRequest(c *gin.Context) {
	userID := c.GetUint("userID")

	var input RespondRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := services.RespondToRequest(userID, input.RequestID, input.Action)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
}

func ListFriendRequests(c *gin.Context) {
	userID := c.GetUint("userID")
	incoming, outgoing, err := services.PendingRequests(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"incoming": incoming, "outgoing": outgoing})
}

func CancelFriendRequest(c *gin.Context) {
	userID := c.GetUint("userID")

	requestID, err := strconv.ParseUint(c.Query("requestId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request ID required"})
		return
	}

	if err := services.CancelRequest(userID, uint(requestID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type FollowInput struct {
	TargetUserID uint   `json:"targetUserId"`
	Action       string `json:"action"` // "follow" | "unfollow"
}

func Follow(c *gin.Context) {
	userID := c.GetUint("userID")

	var input FollowInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Action != "follow" && input.Action != "unfollow" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid action"})
		return
	}

	if err := services.SetFollow(userID, input.TargetUserID, input.Action == "follow"); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func SearchUsers(c *gin.Context) {
	userID := c.GetUint("userID")
	results, err := services.SearchUsers(userID, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": results})
}

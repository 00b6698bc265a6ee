package controllers

import (
	"net/http"

	"github.com/StarDust130/Prime-Day/services"
	"github.com/StarDust130/Prime-Day/utils"

	"github.com/gin-gonic/gin"
)

type AuthInput struct {
	Username string `json:"username" binding:"required"`
	Birthday string `json:"birthday" binding:"required"`
}

// Authenticate is the combined sign-in/sign-up endpoint. An unknown username
// creates the account; a known one must match on birthday.
func Authenticate(c *gin.Context) {
	var input AuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	user, hasOnboarded, isLogin, err := services.LoginOrSignup(input.Username, input.Birthday)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := utils.SetSessionCookie(c, user.ID, hasOnboarded); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		return
	}

	message := "Profile created!"
	if isLogin {
		message = "Welcome back!"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"userId":       user.ID,
		"hasOnboarded": hasOnboarded,
		"message":      message,
	})
}

func Logout(c *gin.Context) {
	utils.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me is the single source of truth for client auth state.
func Me(c *gin.Context) {
	userID := c.GetUint("userID")
	user, err := services.FindUserByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"userId":       user.ID,
		"username":     user.Username,
		"hasOnboarded": c.GetBool("hasOnboarded"),
	})
}

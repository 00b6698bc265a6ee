package controllers

import (
	"net/http"

	"github.com/StarDust130/Prime-Day/services"

	"github.com/gin-gonic/gin"
)

func GetAccount(c *gin.Context) {
	userID := c.GetUint("userID")
	account, err := services.GetAccount(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": account})
}

func UpdateAccount(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.AccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := services.UpdateAccount(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": account})
}

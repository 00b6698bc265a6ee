// controllers/dev_controller.go
package controllers

import (
	"net/http"

	"github.com/StarDust130/Prime-Day/services"
	"github.com/StarDust130/Prime-Day/utils"

	"github.com/gin-gonic/gin"
)

type DevController struct {
	Push *services.PushService
}

func NewDevController(ps *services.PushService) *DevController {
	return &DevController{Push: ps}
}

type pushTestInput struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
}

func (d *DevController) PushTest(c *gin.Context) {
	userID := c.GetUint("userID")

	if d.Push == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "push delivery unavailable"})
		return
	}

	var input pushTestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Title == "" {
		input.Title = "Test alert 🔔"
	}
	if input.Body == "" {
		input.Body = "This is only a test."
	}

	d.Push.PushToUser(userID, input.Title, input.Body, input.Data)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type devUploadInput struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

func DevUploadImage(c *gin.Context) {
	var input devUploadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	raw, contentType, err := utils.DecodeDataURL(input.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := utils.UploadImage(raw, contentType, "dev-upload")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

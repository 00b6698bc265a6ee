package routes

import (
	"github.com/StarDust130/Prime-Day/controllers"
	"github.com/StarDust130/Prime-Day/middlewares"
	"github.com/StarDust130/Prime-Day/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub, push *services.PushService) *gin.Engine {
	r := gin.Default()

	coachCtl := controllers.NewCoachController(services.NewCoachService())
	realtimeCtl := controllers.NewRealtimeController(hub)
	deviceCtl := controllers.NewDeviceController(push)
	devCtl := controllers.NewDevController(push)

	// Public auth routes
	r.POST("/auth", controllers.Authenticate)
	r.POST("/logout", controllers.Logout)

	// Everything else requires the session cookie
	authed := r.Group("/")
	authed.Use(middlewares.SessionMiddleware())
	{
		authed.GET("/me", controllers.Me)
		authed.GET("/account", controllers.GetAccount)
		authed.PUT("/account", controllers.UpdateAccount)
		authed.POST("/onboarding", controllers.CompleteOnboarding)

		authed.GET("/habits", controllers.ListHabits)
		authed.POST("/habits", controllers.CreateHabit)
		authed.PUT("/habits/:id", controllers.UpdateHabit)
		authed.DELETE("/habits/:id", controllers.DeleteHabit)
		authed.POST("/habits/toggle", controllers.ToggleHabit)
		authed.GET("/habits/history", controllers.HabitHistory)

		authed.GET("/goals", controllers.ListGoals)
		authed.POST("/goals", controllers.CreateGoal)
		authed.PUT("/goals/:id", controllers.UpdateGoal)
		authed.DELETE("/goals/:id", controllers.DeleteGoal)

		authed.GET("/friends", controllers.ListFriends)
		authed.POST("/friends/request", controllers.SendFriendRequest)
		authed.PUT("/friends/request", controllers.RespondToFriendRequest)
		authed.GET("/friends/requests", controllers.ListFriendRequests)
		authed.DELETE("/friends/requests", controllers.CancelFriendRequest)
		authed.POST("/friends/follow", controllers.Follow)
		authed.GET("/users/search", controllers.SearchUsers)

		authed.GET("/coach/daily-tip", coachCtl.DailyTip)
		authed.POST("/coach/chat", coachCtl.Chat)
		authed.GET("/coach/suggest-habits", coachCtl.SuggestHabits)

		authed.POST("/activity", controllers.LogActivity)
		authed.GET("/activity/today", controllers.TodayActivities)

		authed.GET("/dashboard", controllers.GetDashboard)
		authed.GET("/primescore", controllers.GetPrimeScore)
		authed.GET("/stats/weekly", controllers.GetWeeklyStats)

		authed.POST("/devices", deviceCtl.Register)
		authed.GET("/notifications", controllers.ListNotifications)
		authed.POST("/notifications/toggle", controllers.ToggleNotifications)
		authed.GET("/ws/feed", realtimeCtl.FeedWS)

		dev := authed.Group("/dev")
		{
			dev.POST("/push", devCtl.PushTest)
			dev.POST("/upload", controllers.DevUploadImage)
		}
	}

	return r
}

package main

import (
	"log"

	"github.com/StarDust130/Prime-Day/config"
	"github.com/StarDust130/Prime-Day/routes"
	"github.com/StarDust130/Prime-Day/services"
	"github.com/StarDust130/Prime-Day/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push delivery disabled: %v", err)
		push = nil
	}
	services.InitNotifyDeps(config.DB, hub, push)

	r := routes.SetupRouter(hub, push)
	r.Run(":8080")
}

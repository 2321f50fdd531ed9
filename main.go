package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/hctseng/formcraft-go/config"
	"github.com/hctseng/formcraft-go/db"
	"github.com/hctseng/formcraft-go/mail"
	"github.com/hctseng/formcraft-go/middleware"
	"github.com/hctseng/formcraft-go/repositories"
	"github.com/hctseng/formcraft-go/routes"
	"github.com/hctseng/formcraft-go/services"
)

func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	repos := repositories.New()
	sender := mail.NewSMTPSender()
	svc := services.New(repos, sender)
	defer svc.Notification.Close()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(r, svc)

	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

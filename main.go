package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/east-hides/eastbackend/controllers"
	"github.com/east-hides/eastbackend/mailer"
	"github.com/east-hides/eastbackend/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using system environment variables")
	}

	mailCfg := mailer.LoadConfig()
	dispatcher := mailer.NewSMTPDispatcher(mailCfg)

	r := gin.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := map[string]bool{}
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	log.Info("CORS configured", "origins", origins)
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/products", controllers.GetProducts())
		api.GET("/products/:slug", controllers.GetProduct())
		api.POST("/contact", controllers.CreateContactMessage(mailCfg, dispatcher))
		api.POST("/rfq", controllers.CreateQuoteRequest(mailCfg, dispatcher))
	}

	log.Info("Starting server", "smtpHost", mailCfg.Host, "salesInbox", mailCfg.SalesInbox)
	// Server listens on PORT, default 8080
	if err := r.Run(); err != nil {
		log.Fatal("server exited", "err", err)
	}
}

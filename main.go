package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"assessment-service/internal/cache"
	"assessment-service/internal/db"
	"assessment-service/internal/event"
	"assessment-service/internal/handlers"
	"assessment-service/internal/repository"
	"assessment-service/internal/service"
	"assessment-service/pkg/discovery"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(mongoURI)
	defer db.Disconnect()

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.EventPublisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, assessment events will not be published")
	}

	// Redis result cache
	var resultCache *cache.ResultCache
	if redisURI := os.Getenv("REDIS_URI"); redisURI != "" {
		opts, err := redis.ParseURL(redisURI)
		if err != nil {
			log.Fatalf("Invalid REDIS_URI: %v", err)
		}
		resultCache = cache.NewResultCache(redis.NewClient(opts), 24*time.Hour)
	} else {
		log.Println("Redis not configured, results will be served from Mongo only")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "6868"
	}

	// Consul service registration
	if consulAddress := os.Getenv("CONSUL_ADDRESS"); consulAddress != "" {
		registry, err := discovery.NewServiceRegistry(consulAddress)
		if err != nil {
			log.Fatalf("Failed to create Consul client: %v", err)
		}
		portNum, _ := strconv.Atoi(port)
		serviceAddress := os.Getenv("SERVICE_ADDRESS")
		if serviceAddress == "" {
			serviceAddress = "localhost"
		}
		if err := registry.Register("assessment-service-http", "assessment-service", serviceAddress, portNum); err != nil {
			log.Fatalf("Failed to register with Consul: %v", err)
		}
		defer registry.Deregister()
	} else {
		log.Println("Consul not configured, skipping service registration")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database("assessment_service")

	resultRepo := repository.NewResultRepository(database)
	assessmentService := service.NewAssessmentService(resultRepo, resultCache, publisher)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)
	questionHandler := handlers.NewQuestionHandler()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes - question banks and per-user result listings
	public := r.Group("/public/assessment")
	{
		public.GET("/:inventory/questions", func(c *gin.Context) {
			questionHandler.GetQuestions(c)
			if publisher != nil {
				publisher.Publish("assessment.questions.requested", gin.H{
					"inventory": c.Param("inventory"),
				})
			}
		})
		public.GET("/user/:id/results", func(c *gin.Context) {
			assessmentHandler.GetResultsByUser(c)
			if publisher != nil {
				publisher.Publish("assessment.results.listed", gin.H{
					"user_id":   c.Param("id"),
					"inventory": c.Query("inventory"),
				})
			}
		})
	}

	// Protected routes - evaluation and result retrieval
	protected := r.Group("/protected/assessment")
	protected.Use(func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	})
	{
		protected.POST("/:inventory/evaluate", func(c *gin.Context) {
			assessmentHandler.Evaluate(c)
			if publisher != nil {
				publisher.Publish("assessment.evaluation_requested", gin.H{
					"inventory": c.Param("inventory"),
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
		protected.GET("/result/:id", func(c *gin.Context) {
			assessmentHandler.GetResult(c)
			if publisher != nil {
				publisher.Publish("assessment.result.viewed", gin.H{
					"result_id": c.Param("id"),
					"user_id":   c.GetHeader("X-User-ID"),
				})
			}
		})
		protected.GET("/result/:id/summary", func(c *gin.Context) {
			assessmentHandler.GetSummary(c)
			if publisher != nil {
				publisher.Publish("assessment.report_summary_built", gin.H{
					"result_id": c.Param("id"),
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})
	}

	r.Run(":" + port)
}

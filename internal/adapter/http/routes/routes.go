package routes

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"quickbuild_estimate/internal/adapter/http/handlers"
	"quickbuild_estimate/internal/infrastructure/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Estimate *handlers.EstimateHandler
	Payment  *handlers.PaymentHandler
	Import   *handlers.ImportHandler
	Proposal *handlers.ProposalHandler
}

// Run will start the server
func Run(cfg config.Config, h Handlers) {
	router := NewRouter(cfg, h)
	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func NewRouter(cfg config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, h)
	addPaymentRoutes(v1, h.Payment)
	return router
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Proposal-URL"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

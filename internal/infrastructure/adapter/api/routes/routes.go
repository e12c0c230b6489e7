package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	coreport "github.com/skylar-games/case-opener/internal/domain/port/core"
	"github.com/skylar-games/case-opener/internal/infrastructure/adapter/api/handler"
	"github.com/skylar-games/case-opener/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	accountHandler *handler.AccountHandler,
	caseHandler *handler.CaseHandler,
	leaderboardHandler *handler.LeaderboardHandler,
) {
	// Account routes
	accountRoutes := router.Group("/account")
	{
		accountRoutes.POST("/register", accountHandler.Register)
		accountRoutes.POST("/login", accountHandler.Login)
		accountRoutes.POST("/logout", accountHandler.Logout)
		accountRoutes.GET("/current", accountHandler.Current)
		accountRoutes.PUT("/profile", accountHandler.UpdateProfile)
		accountRoutes.POST("/balance", accountHandler.UpdateBalance)
	}

	// DELETE /accounts?confirm=true wipes the whole ledger
	router.DELETE("/accounts", accountHandler.ClearAll)

	// Case routes
	caseRoutes := router.Group("/case")
	{
		caseRoutes.POST("/open", caseHandler.Open)
		caseRoutes.GET("/spins/:spinId", caseHandler.GetSpin)
	}

	router.GET("/leaderboard", leaderboardHandler.Top)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS())
}

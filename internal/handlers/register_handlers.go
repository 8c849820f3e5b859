package handlers

import (
	"github.com/SscSPs/my_bank_api/cmd/docs"
	portssvc "github.com/SscSPs/my_bank_api/internal/core/ports/services"
	"github.com/SscSPs/my_bank_api/internal/middleware"
	"github.com/SscSPs/my_bank_api/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// When mutationLimiter is not nil it guards every route that changes balances;
// readLimiter, when not nil, guards the read-only /accounts routes.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	mutationLimiter *limiter.Limiter,
	readLimiter *limiter.Limiter,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	mutating := []gin.HandlerFunc{}
	if mutationLimiter != nil {
		mutating = append(mutating, middleware.RateLimit(mutationLimiter))
	}

	reading := []gin.HandlerFunc{}
	if readLimiter != nil {
		reading = append(reading, middleware.GinMiddlewarize(readLimiter))
	}

	registerAccountRoutes(r, services, reading, mutating)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// registerAccountRoutes registers every /accounts route.
func registerAccountRoutes(r *gin.Engine, services *portssvc.ServiceContainer, reading, mutating []gin.HandlerFunc) {
	ah := newAccountHandler(services.Account)
	th := newTransactionHandler(services.Transaction)
	rh := newReportingHandler(services.Reporting)

	accounts := r.Group("/accounts")

	reads := accounts.Group("", reading...)
	{
		reads.GET("", ah.listAccounts)
		reads.GET("/balance/:agencia/:conta", ah.getBalance)
		reads.GET("/average/:agencia", rh.averageBalance)
		reads.GET("/poor/:quantity", rh.poorest)
		reads.GET("/rich/:quantity", rh.richest)
		reads.GET("/:agencia", rh.branchSummary)
	}

	writes := accounts.Group("", mutating...)
	{
		writes.DELETE("/:agencia/:conta", ah.deleteAccount)
		writes.GET("/transference/private", rh.promotePrivate)

		// Trailing-slash variants are registered explicitly.
		for _, suffix := range []string{"", "/"} {
			writes.PUT("/deposit"+suffix, th.deposit)
			writes.PUT("/withdraw"+suffix, th.withdraw)
			writes.PUT("/transference"+suffix, th.transfer)
		}
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

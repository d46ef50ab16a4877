package handler

import (
	"time"

	"pet-world-gateway/internal/adapter/http/middleware"
	redisStore "pet-world-gateway/internal/adapter/storage/redis"
	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/internal/core/ports"
	"pet-world-gateway/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const defaultIdempotencyTTL = 24 * time.Hour

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	World            ports.WorldService
	AddressBook      ports.AddressBookService
	TokenSvc         ports.TokenService
	RateLimitStore   *redisStore.RateLimitStore // nil = rate limiting disabled
	ReadsPerMinute   int64
	IdempotencyCache ports.IdempotencyCache // nil = no replay of write intents
	IdempotencyTTL   time.Duration
	HealthCheckers   []ports.HealthChecker
	AuditSvc         ports.AuditService // nil = audit logging disabled
	Background       *Background        // nil = a private runner is created
	Logger           zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(metrics.Middleware())
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules(deps.ReadsPerMinute)

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	ttl := deps.IdempotencyTTL
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	idem := func(action domain.Action) gin.HandlerFunc {
		if deps.IdempotencyCache == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.Idempotency(deps.IdempotencyCache, action, ttl, deps.Logger)
	}

	bg := deps.Background
	if bg == nil {
		bg = NewBackground(deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Public routes (no session token) ---
	sessionHandler := NewSessionHandler(deps.World, deps.TokenSvc)
	v1.POST("/session/connect", rl("session"), sessionHandler.Connect)
	v1.GET("/session", rl("reads"), sessionHandler.Current)

	// Addresses must be configurable before the first connect.
	contractHandler := NewContractHandler(deps.AddressBook)
	v1.GET("/contracts", rl("reads"), contractHandler.Get)
	v1.PUT("/contracts", rl("contracts"), contractHandler.Update)

	// --- Session-authenticated routes ---
	auth := v1.Group("", middleware.SessionAuth(deps.TokenSvc, deps.World, deps.Logger))
	auth.DELETE("/session", rl("session"), sessionHandler.Disconnect)
	auth.GET("/state", rl("reads"), sessionHandler.State)

	petHandler := NewPetHandler(deps.World, bg)
	pets := auth.Group("/pets")
	{
		pets.GET("", rl("reads"), petHandler.List)
		pets.POST("/refresh", rl("reads"), petHandler.Refresh)
		pets.GET("/:id", rl("reads"), petHandler.Detail)
		pets.POST("/:id/transfer", rl("writes"), idem(domain.ActionTransfer), petHandler.Transfer)
	}

	adoptionHandler := NewAdoptionHandler(deps.World, bg)
	adoption := auth.Group("/adoption")
	{
		adoption.GET("", rl("reads"), adoptionHandler.View)
		adoption.POST("", rl("writes"), idem(domain.ActionAdopt), adoptionHandler.Adopt)
	}

	breedingHandler := NewBreedingHandler(deps.World, bg)
	breeding := auth.Group("/breeding")
	{
		breeding.GET("", rl("reads"), breedingHandler.View)
		breeding.POST("", rl("writes"), idem(domain.ActionBreed), breedingHandler.Breed)
		breeding.POST("/selection", rl("reads"), breedingHandler.Toggle)
		breeding.DELETE("/selection", rl("reads"), breedingHandler.Clear)
	}

	coinHandler := NewCoinHandler(deps.World, bg)
	auth.GET("/coins/balance", rl("reads"), coinHandler.Balance)
	signIn := auth.Group("/sign-in")
	{
		signIn.GET("", rl("reads"), coinHandler.SignInStatus)
		signIn.POST("", rl("writes"), idem(domain.ActionSignIn), coinHandler.SignIn)
	}

	return r
}

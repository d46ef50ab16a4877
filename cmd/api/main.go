package main

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-world-gateway/config"
	"pet-world-gateway/internal/adapter/chain/evm"
	"pet-world-gateway/internal/adapter/chain/memory"
	httpHandler "pet-world-gateway/internal/adapter/http/handler"
	pgStorage "pet-world-gateway/internal/adapter/storage/postgres"
	redisStorage "pet-world-gateway/internal/adapter/storage/redis"
	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/internal/core/ports"
	"pet-world-gateway/internal/service"
	"pet-world-gateway/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const addressCacheTTL = 10 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("chain_driver", cfg.Chain.Driver).
		Msg("Starting Pet World Gateway")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare schema")
	}
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize the chain driver
	connector, chainHealth, seed, err := newChain(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize chain driver")
	}

	// Initialize repositories and stores
	addressRepo := pgStorage.NewAddressRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	addressCache := redisStorage.NewAddressCache(rdb, addressCacheTTL)
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)

	// Initialize core services
	jwtSecret := cfg.JWT.Secret
	if jwtSecret == "" {
		jwtSecret = uuid.NewString()
		log.Warn().Msg("jwt.secret not set, using a random secret; tokens will not survive a restart")
	}
	tokenSvc := service.NewJWTTokenService(jwtSecret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	auditSvc := service.NewAuditService(auditRepo, log)
	addressBook := service.NewAddressBook(addressRepo, addressCache, seed, log)

	loc, err := cfg.Sync.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid sync timezone")
	}
	sessions := service.NewSessionService(connector, log)
	world := service.NewWorld(sessions, addressBook, service.WorldConfig{
		BreedingCooldown: cfg.Sync.BreedingCooldown,
		BalanceInterval:  cfg.Sync.BalanceInterval,
		FetchConcurrency: cfg.Sync.FetchConcurrency,
		Location:         loc,
	}, log)

	// Initialize rate limit store
	var rateLimitStore *redisStorage.RateLimitStore
	if cfg.RateLimit.Enabled {
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
	}

	// Setup Gin router with all routes
	background := httpHandler.NewBackground(log)
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		World:            world,
		AddressBook:      addressBook,
		TokenSvc:         tokenSvc,
		RateLimitStore:   rateLimitStore,
		ReadsPerMinute:   int64(cfg.RateLimit.Limit),
		IdempotencyCache: idempotencyCache,
		HealthCheckers: []ports.HealthChecker{
			pgStorage.NewHealthCheck(pool),
			redisStorage.NewHealthCheck(rdb),
			chainHealth,
		},
		AuditSvc:   auditSvc,
		Background: background,
		Logger:     log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Submitted intents finish against the open session before it is torn
	// down; those still pending at the deadline are cancelled.
	if err := background.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Cancelled pending intents")
	}
	world.Close()
	auditSvc.Wait()

	log.Info().Msg("Server exited")
}

// newChain builds the wallet provider for the configured driver, its health
// checker, and the addresses that seed an empty address book.
func newChain(cfg *config.Config, log zerolog.Logger) (ports.ChainConnector, ports.HealthChecker, domain.ContractAddresses, error) {
	seed := domain.ContractAddresses{}
	for name, addr := range map[domain.ContractName]string{
		domain.ContractPet:         cfg.Contracts.Pet,
		domain.ContractPetCoin:     cfg.Contracts.PetCoin,
		domain.ContractPetAdoption: cfg.Contracts.PetAdoption,
		domain.ContractPetBreeding: cfg.Contracts.PetBreeding,
	} {
		if addr != "" {
			seed[name] = addr
		}
	}

	switch cfg.Chain.Driver {
	case "evm":
		connector, err := evm.NewConnector(evm.Config{
			RPCURL:       cfg.Chain.RPCURL,
			PrivateKey:   cfg.Chain.PrivateKey,
			ChainID:      cfg.Chain.ChainID,
			PollInterval: cfg.Chain.EventPollInterval,
		}, log)
		if err != nil {
			return nil, nil, nil, err
		}
		log.Info().Str("account", logger.ShortAccount(connector.Account())).Msg("evm signer loaded")
		return connector, evm.NewHealthCheck(connector), seed, nil

	default:
		ledger := memory.NewLedger(
			memory.WithChainID(cfg.Chain.ChainID),
			memory.WithCooldown(cfg.Sync.BreedingCooldown),
		)
		// Starter funds so the development account can adopt right away.
		ledger.Mint(memory.DefaultAccount, 500)
		ledger.Fund(memory.DefaultAccount, new(big.Int).Mul(big.NewInt(10), big.NewInt(1e18)))
		for name, addr := range memory.DefaultAddresses {
			if _, ok := seed[name]; !ok {
				seed[name] = addr
			}
		}
		log.Warn().Msg("using the in-memory ledger; state is lost on restart")
		return memory.NewConnector(ledger), memory.NewHealthCheck(ledger), seed, nil
	}
}

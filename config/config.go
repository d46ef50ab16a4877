package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
	Chain     ChainConfig     `mapstructure:"chain"`
	Contracts ContractsConfig `mapstructure:"contracts"`
	Sync      SyncConfig      `mapstructure:"sync"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// ChainConfig selects and configures the ledger backend.
type ChainConfig struct {
	Driver            string        `mapstructure:"driver"` // evm, memory
	RPCURL            string        `mapstructure:"rpc_url"`
	PrivateKey        string        `mapstructure:"private_key"` // hex, no 0x prefix required
	ChainID           int64         `mapstructure:"chain_id"`
	EventPollInterval time.Duration `mapstructure:"event_poll_interval"`
}

// ContractsConfig seeds the address book on first start.
type ContractsConfig struct {
	Pet         string `mapstructure:"pet"`
	PetCoin     string `mapstructure:"pet_coin"`
	PetAdoption string `mapstructure:"pet_adoption"`
	PetBreeding string `mapstructure:"pet_breeding"`
}

// SyncConfig tunes store reconciliation.
type SyncConfig struct {
	BalanceInterval  time.Duration `mapstructure:"balance_interval"`
	BreedingCooldown time.Duration `mapstructure:"breeding_cooldown"`
	FetchConcurrency int           `mapstructure:"fetch_concurrency"`
	Timezone         string        `mapstructure:"timezone"` // calendar day for sign-in
}

// Location resolves Timezone, falling back to UTC when empty.
func (s SyncConfig) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading sync.timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Limit   int  `mapstructure:"limit"` // requests per minute per session
}

// Validate checks settings that would otherwise fail late.
func (c *Config) Validate() error {
	switch c.Chain.Driver {
	case "memory":
	case "evm":
		if c.Chain.RPCURL == "" {
			return fmt.Errorf("chain.rpc_url is required for the evm driver")
		}
		if c.Chain.PrivateKey == "" {
			return fmt.Errorf("chain.private_key is required for the evm driver")
		}
	default:
		return fmt.Errorf("unknown chain.driver %q", c.Chain.Driver)
	}
	if c.Sync.BalanceInterval <= 0 {
		return fmt.Errorf("sync.balance_interval must be positive")
	}
	if c.Sync.FetchConcurrency <= 0 {
		return fmt.Errorf("sync.fetch_concurrency must be positive")
	}
	if _, err := c.Sync.Location(); err != nil {
		return err
	}
	return nil
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: PW_ (Pet World).
// Nested keys use underscore: PW_CHAIN_RPC_URL, PW_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "pet_world")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "pet-world-gateway")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("chain.driver", "memory")
	v.SetDefault("chain.rpc_url", "")
	v.SetDefault("chain.private_key", "")
	v.SetDefault("chain.chain_id", 31337)
	v.SetDefault("chain.event_poll_interval", "4s")
	v.SetDefault("contracts.pet", "")
	v.SetDefault("contracts.pet_coin", "")
	v.SetDefault("contracts.pet_adoption", "")
	v.SetDefault("contracts.pet_breeding", "")
	v.SetDefault("sync.balance_interval", "30s")
	v.SetDefault("sync.breeding_cooldown", "24h")
	v.SetDefault("sync.fetch_concurrency", 8)
	v.SetDefault("sync.timezone", "UTC")
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.limit", 120)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: PW_CHAIN_RPC_URL -> chain.rpc_url
	v.SetEnvPrefix("PW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

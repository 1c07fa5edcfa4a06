package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Crypto   CryptoConfig   `mapstructure:"crypto"`
	Verifier VerifierConfig `mapstructure:"verifier"`
	Webhook  WebhookConfig  `mapstructure:"webhook"`
	Log      LogConfig      `mapstructure:"log"`
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
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// CryptoConfig configures the versioned envelope key ring.
// Keys maps a version number ("1", "2", ...) to a secret. A secret that is
// a 64-character hex string is used directly as the AES-256 key; anything
// shorter is stretched through the key-derivation function.
type CryptoConfig struct {
	Keys          map[string]string `mapstructure:"keys"`
	ActiveVersion int               `mapstructure:"active_version"`
	TokenSecret   string            `mapstructure:"token_secret"` // HMAC key for confirmation tokens
}

// KeyRingSecrets converts the configured version map into the byte-keyed
// form the envelope cipher uses.
func (c CryptoConfig) KeyRingSecrets() (map[byte]string, byte, error) {
	secrets := make(map[byte]string, len(c.Keys))
	for ver, secret := range c.Keys {
		n, err := strconv.ParseUint(ver, 10, 8)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid key version %q: %w", ver, err)
		}
		secrets[byte(n)] = secret
	}
	if c.ActiveVersion < 1 || c.ActiveVersion > 255 {
		return nil, 0, fmt.Errorf("active key version %d out of range", c.ActiveVersion)
	}
	return secrets, byte(c.ActiveVersion), nil
}

// VerifierConfig points at the platform crypto service that performs
// signature recovery.
type VerifierConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// WebhookConfig points at the callback endpoint that receives
// verification events. An empty URL disables delivery.
type WebhookConfig struct {
	CallbackURL string        `mapstructure:"callback_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WVG_ (Wallet
// Verification Gateway). Nested keys use underscore: WVG_DATABASE_HOST,
// WVG_JWT_SECRET, etc.
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
	v.SetDefault("database.dbname", "wallet_verification")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "wallet-verification-gateway")
	v.SetDefault("crypto.keys", map[string]string{})
	v.SetDefault("crypto.active_version", 1)
	v.SetDefault("crypto.token_secret", "")
	v.SetDefault("verifier.url", "http://localhost:9090/verify")
	v.SetDefault("verifier.timeout", "5s")
	v.SetDefault("webhook.callback_url", "")
	v.SetDefault("webhook.timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: WVG_DATABASE_HOST -> database.host
	v.SetEnvPrefix("WVG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
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

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
// It is built once at startup and passed by value/pointer into components; nothing mutates it afterwards.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Gateway     GatewayConfig     `mapstructure:"gateway"`
	Marketplace MarketplaceConfig `mapstructure:"marketplace"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Log         LogConfig         `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// GatewayConfig carries the payment gateway identity and key material.
type GatewayConfig struct {
	BaseURL                string        `mapstructure:"base_url"`
	PartnerID              string        `mapstructure:"partner_id"`
	ChannelID              string        `mapstructure:"channel_id"`
	PrivateKey             string        `mapstructure:"private_key"` // PEM, optionally base64-wrapped
	PublicKey              string        `mapstructure:"public_key"`  // PEM, optionally base64-wrapped
	ClientSecret           string        `mapstructure:"client_secret"`
	AllowUnsignedCallbacks bool          `mapstructure:"allow_unsigned_callbacks"`
	Timeout                time.Duration `mapstructure:"timeout"`
	DefaultChannel         string        `mapstructure:"default_channel"`
	ExpiryHours            int           `mapstructure:"expiry_hours"`
}

// placeholderSecrets are sample values shipped in example env files.
var placeholderSecrets = map[string]struct{}{
	"your-client-secret": {},
	"YOUR_CLIENT_SECRET": {},
	"your_client_secret": {},
	"changeme":           {},
	"placeholder":        {},
}

// CallbackSecretConfigured reports whether a real callback HMAC secret is set.
// Empty and placeholder values count as not configured.
func (g GatewayConfig) CallbackSecretConfigured() bool {
	s := strings.TrimSpace(g.ClientSecret)
	if s == "" {
		return false
	}
	_, placeholder := placeholderSecrets[s]
	return !placeholder
}

type MarketplaceConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	Token    string        `mapstructure:"token"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
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
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: ASF_ (Account StoreFront).
// Nested keys use underscore: ASF_GATEWAY_PARTNER_ID, ASF_MARKETPLACE_TOKEN, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("gateway.base_url", "https://sandbox.gateway.example")
	v.SetDefault("gateway.partner_id", "")
	v.SetDefault("gateway.channel_id", "95221")
	v.SetDefault("gateway.private_key", "")
	v.SetDefault("gateway.public_key", "")
	v.SetDefault("gateway.client_secret", "")
	v.SetDefault("gateway.allow_unsigned_callbacks", false)
	v.SetDefault("gateway.timeout", "30s")
	v.SetDefault("gateway.default_channel", "BCA")
	v.SetDefault("gateway.expiry_hours", 24)
	v.SetDefault("marketplace.base_url", "")
	v.SetDefault("marketplace.token", "")
	v.SetDefault("marketplace.timeout", "15s")
	v.SetDefault("marketplace.cache_ttl", "60s")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "account_storefront")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
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

	// Environment variables: ASF_GATEWAY_PARTNER_ID -> gateway.partner_id
	v.SetEnvPrefix("ASF")
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

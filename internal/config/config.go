package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr     string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN    string        `env:"DATABASE_DSN" envDefault:""`
	JWTSecret      string        `env:"JWT_SECRET" envDefault:"secret"`
	AdminEmails    []string      `env:"ADMIN_EMAILS" envSeparator:","`
	RedisAddr      string        `env:"REDIS_ADDRESS" envDefault:""`
	RedisPassword  string        `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB        int           `env:"REDIS_DB" envDefault:"0"`
	SettingsTTL    time.Duration `env:"SETTINGS_TTL" envDefault:"1m"`
	BetRateLimit   int           `env:"BET_RATE_LIMIT" envDefault:"30"`
	SMSGatewayAddr string        `env:"SMS_GATEWAY_ADDRESS" envDefault:""`
	SMSGatewayKey  string        `env:"SMS_GATEWAY_KEY" envDefault:""`
	SMSSender      string        `env:"SMS_SENDER" envDefault:"LuckyTriple"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	JWTSecret   string
	DatabaseDSN string
	AdminEmails []string
}

// CacheConfig модель настроек кэша настроек игры и ограничения частоты ставок
type CacheConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SettingsTTL   time.Duration
	BetRateLimit  int
	BetRateWindow time.Duration
}

// SMSConfig модель настроек работы со шлюзом SMS
type SMSConfig struct {
	GatewayAddr  string
	APIKey       string
	Sender       string
	BatchSize    int
	PollInterval time.Duration
	MaxAttempts  int
}

// Config модель настроек сервиса
type Config struct {
	Server ServerConfig
	Cache  CacheConfig
	SMS    SMSConfig
}

func NewConfig() Config {
	// .env не обязателен
	_ = godotenv.Load()

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret   = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		admins   = pflag.StringSlice("admin", args.AdminEmails, "E-mails that receive administrator rights on signup")
		redis    = pflag.StringP("redis", "r", args.RedisAddr, "Redis address in a form host:port. Empty uses in-memory cache.")
		sms      = pflag.String("sms_gateway", args.SMSGatewayAddr, "SMS gateway base URL. Empty logs messages instead of sending.")
	)
	pflag.Parse()

	cfg := DefaultConfig()
	cfg.Server = ServerConfig{
		ListenAddr:  *server,
		LogLevel:    *logLevel,
		DatabaseDSN: *DSN,
		JWTSecret:   *secret,
		AdminEmails: *admins,
	}
	cfg.Cache.RedisAddr = *redis
	cfg.Cache.RedisPassword = args.RedisPassword
	cfg.Cache.RedisDB = args.RedisDB
	cfg.Cache.SettingsTTL = args.SettingsTTL
	cfg.Cache.BetRateLimit = args.BetRateLimit
	cfg.SMS.GatewayAddr = *sms
	cfg.SMS.APIKey = args.SMSGatewayKey
	cfg.SMS.Sender = args.SMSSender
	return cfg
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
		},
		Cache: CacheConfig{
			SettingsTTL:   time.Minute,
			BetRateLimit:  30,
			BetRateWindow: time.Minute,
		},
		SMS: SMSConfig{
			Sender:       "LuckyTriple",
			BatchSize:    10,
			PollInterval: 5 * time.Second,
			MaxAttempts:  3,
		},
	}
}

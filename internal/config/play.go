package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type PlayArguments struct {
	AuthorityAddr  string        `env:"AUTHORITY_ADDRESS" envDefault:"http://localhost:8080"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"warn"`
	TokenFile      string        `env:"TOKEN_FILE" envDefault:""`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// PlayConfig модель настроек клиента
type PlayConfig struct {
	AuthorityAddr  string
	LogLevel       string
	TokenFile      string
	RequestTimeout time.Duration
}

// NewPlayConfig - читает настройки клиента из окружения и флагов, возвращает оставшиеся аргументы
func NewPlayConfig(args []string) (PlayConfig, []string, error) {
	_ = godotenv.Load()

	var envArgs PlayArguments
	if err := env.Parse(&envArgs); err != nil {
		return PlayConfig{}, nil, fmt.Errorf("failed to parse enviroment var: %w", err)
	}
	if envArgs.TokenFile == "" {
		envArgs.TokenFile = DefaultTokenFile()
	}

	fs := pflag.NewFlagSet("luckyplay", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	var (
		addr     = fs.StringP("authority", "a", envArgs.AuthorityAddr, "Authority base URL.")
		logLevel = fs.StringP("log_level", "l", envArgs.LogLevel, "Log level.")
		token    = fs.StringP("token-file", "t", envArgs.TokenFile, "File that keeps the bearer credential.")
		timeout  = fs.Duration("timeout", envArgs.RequestTimeout, "Bound for every request to the authority.")
	)
	if err := fs.Parse(args); err != nil {
		return PlayConfig{}, nil, err
	}

	return PlayConfig{
		AuthorityAddr:  *addr,
		LogLevel:       *logLevel,
		TokenFile:      *token,
		RequestTimeout: *timeout,
	}, fs.Args(), nil
}

func DefaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".luckytriple-token"
	}
	return filepath.Join(dir, "luckytriple", "token")
}

func DefaultPlayConfig() PlayConfig {
	return PlayConfig{
		AuthorityAddr:  "http://localhost:8080",
		LogLevel:       "warn",
		TokenFile:      DefaultTokenFile(),
		RequestTimeout: 10 * time.Second,
	}
}

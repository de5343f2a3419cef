package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/denmor86/lucky-triple/internal/api"
	"github.com/denmor86/lucky-triple/internal/apperr"
	"github.com/denmor86/lucky-triple/internal/config"
	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/denmor86/lucky-triple/internal/session"
)

func main() {
	cfg, args, err := config.NewPlayConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()

	if len(args) == 0 {
		usage(os.Stderr)
		os.Exit(2)
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		usage(os.Stderr)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := api.NewClient(cfg.AuthorityAddr, &http.Client{}, cfg.RequestTimeout)
	cli := &CLI{
		Manager: session.NewManager(client, session.NewFileTokenStore(cfg.TokenFile), cfg.RequestTimeout),
		Out:     os.Stdout,
	}
	if err := cmd.Run(ctx, cli, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], err)
		os.Exit(exitCode(err))
	}
}

// exitCode - код завершения по виду ошибки
func exitCode(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindInsufficientFunds:
		return 3
	case apperr.KindAuth:
		return 4
	case apperr.KindTransient:
		return 5
	default:
		return 1
	}
}

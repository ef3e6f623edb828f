package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/light-bringer/freshmart/internal/pkg/config"
	"github.com/light-bringer/freshmart/internal/pkg/logger"
	"github.com/light-bringer/freshmart/internal/services"
)

var (
	configFile = flag.String("config", "", "Path to a freshmart.toml config file")
	dbPath     = flag.String("db", "", "SQLite file (overrides store.path)")
	driver     = flag.String("driver", "", "Catalog backend: sqlite or spanner (overrides store.driver)")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error (overrides log.level)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [command [args...]]\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Without a command an interactive session starts on stdin.")
		fmt.Fprintln(os.Stderr, "Run the \"help\" command for the command list.\n\nFlags:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "freshmart: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load configuration; flags win over file and environment
	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}
	applyFlags(cfg)

	log := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer logger.Sync(log)

	log.Info("starting",
		zap.String("driver", cfg.Store.Driver),
		zap.String("path", cfg.Store.Path),
	)

	// 2. Open the store and wire the shell
	opts, err := services.NewServiceOptions(ctx, cfg, os.Stdout, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := opts.Close(); err != nil {
			log.Warn("failed to close catalog", zap.Error(err))
		}
	}()

	// 3. One-shot command, or an interactive session
	if args := flag.Args(); len(args) > 0 {
		opts.Shell.Execute(ctx, quoteArgs(args))
		return nil
	}

	return opts.Shell.Run(ctx, os.Stdin, isTerminal(os.Stdin))
}

func applyFlags(cfg *config.Config) {
	if *dbPath != "" {
		cfg.Store.Path = *dbPath
	}
	if *driver != "" {
		cfg.Store.Driver = strings.ToLower(*driver)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
}

// quoteArgs rebuilds a command line from os.Args so that an argument with
// spaces stays one argument.
func quoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t") {
			a = `"` + a + `"`
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

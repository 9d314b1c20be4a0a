package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"techtrends/app"
	"techtrends/app/config"
	"techtrends/app/logger"
	"techtrends/app/repositories"
	"techtrends/app/services"
	"techtrends/app/telemetry"
)

const CliVersion = "1.0.0"

var exit = os.Exit

func main() {
	exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	if len(args) < 1 {
		printHelp(stdout)
		return 1
	}

	cmd := strings.ToLower(args[0])
	switch cmd {
	case "help":
		printHelp(stdout)
	case "version":
		fmt.Fprintf(stdout, "techtrends version %s\n", CliVersion)
	case "serve":
		return serve()
	case "init":
		return initDB(args[1:], stdout)
	case "backup":
		if len(args) < 2 {
			fmt.Fprintln(stdout, "Error: backup file path required for backup")
			return 1
		}
		return backup(args[1], stdout)
	default:
		fmt.Fprintf(stdout, "Unknown command: %s\n\n", args[0])
		printHelp(stdout)
		return 1
	}
	return 0
}

func printHelp(w io.Writer) {
	helpText := `Usage: techtrends <command> [options]
Commands:
  help                 Display this help message.
  version              Show version information.
  serve                Run the blog web server.
  init [--seed]        Create the posts store, optionally with example posts.
  backup <file>        Write a copy of the posts store to a new file.

Configuration is read from TECHTRENDS_* environment variables.
`
	fmt.Fprintln(w, helpText)
}

func loadConfig() (config.Config, bool) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	cfg, err := config.Load()
	if err != nil {
		logger.Errorf("Invalid configuration: %v", err)
		return config.Config{}, false
	}
	logger.SetDebug(cfg.LogDebug)
	return cfg, true
}

// serve runs the web server until SIGINT or SIGTERM.
func serve() int {
	cfg, ok := loadConfig()
	if !ok {
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTelEndpoint)
	if err != nil {
		logger.Errorf("Failed to set up tracing: %v", err)
		return 1
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warnf("Failed to flush traces: %v", err)
		}
	}()

	application, err := app.New(cfg)
	if err != nil {
		logger.Errorf("Failed to start application: %v", err)
		return 1
	}
	defer application.Close()

	logger.Infof("Starting TechTrends with the %s store", cfg.Store)
	if err := application.Run(ctx); err != nil {
		logger.Errorf("Server error: %v", err)
		return 1
	}
	return 0
}

// initDB creates the configured store and optionally seeds it.
func initDB(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(stdout)
	seed := fs.Bool("seed", false, "insert example posts")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, ok := loadConfig()
	if !ok {
		return 1
	}

	store, err := app.OpenStore(cfg, nil)
	if err != nil {
		logger.Errorf("Failed to open store: %v", err)
		return 1
	}
	defer store.Close()
	fmt.Fprintf(stdout, "Initialized %s store\n", cfg.Store)

	if *seed {
		n, err := app.Seed(context.Background(), services.NewPostService(store))
		if err != nil {
			logger.Errorf("Failed to seed posts: %v", err)
			return 1
		}
		fmt.Fprintf(stdout, "Seeded %d posts\n", n)
	}
	return 0
}

// backup copies the configured store into a new file.
func backup(path string, stdout io.Writer) int {
	cfg, ok := loadConfig()
	if !ok {
		return 1
	}

	store, err := app.OpenStore(cfg, nil)
	if err != nil {
		logger.Errorf("Failed to open store: %v", err)
		return 1
	}
	defer store.Close()

	b, ok := store.(repositories.Backuper)
	if !ok {
		fmt.Fprintf(stdout, "The %s store does not support backups\n", cfg.Store)
		return 1
	}
	if err := b.Backup(context.Background(), path); err != nil {
		logger.Errorf("Failed to back up store: %v", err)
		return 1
	}
	fmt.Fprintf(stdout, "Store backed up successfully to %s\n", path)
	return 0
}

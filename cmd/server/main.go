package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"chat-core/auth"
	"chat-core/internal"
	"chat-core/moderation"
	"chat-core/observability"
	"chat-core/runtime"
	"chat-core/runtime/workers"
	"chat-core/server"
	"chat-core/services"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so every defer executes before the process
// exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Credential store, loaded once; an unreadable file leaves an empty
	// store and every login fails, the server still serves.
	store := auth.Load(config.UsersFile, logger)
	logger.Info("Credentials loaded", "count", store.Len(), "path", config.UsersFile)

	// 3. Optional moderation
	var censor *moderation.Censor
	if config.CensoredWordsFile != "" {
		words, err := moderation.LoadWords(config.CensoredWordsFile)
		if err != nil {
			return exitConfig, fmt.Errorf("censored words: %w", err)
		}
		replacement, err := internal.CharacterRune(config.CensoredChar)
		if err != nil {
			return exitConfig, err
		}
		censor, err = moderation.New(words, replacement)
		if err != nil {
			return exitConfig, fmt.Errorf("censored words: %w", err)
		}
		logger.Info("Moderation enabled", "words", len(words))
	}

	// 4. Registries, router, supervision
	stats := observability.NewStats()
	clients := runtime.NewClientRegistry()
	groups := runtime.NewGroupRegistry()
	router := services.NewRouter(logger, clients, groups, censor, stats)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sup := workers.NewSupervisor(logger)
	sup.Add(workers.NewMonitorWorker(logger, config.MetricInterval, clients, groups, stats))

	// 5. Listener & control loop
	listener, err := net.Listen("tcp", config.Addr())
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", config.Addr(), err)
	}

	control := server.NewControlLoop(logger, sup, store, clients, groups, router, stats)

	errChan := make(chan error, 1)
	go sup.Run(ctx)
	go func() {
		if err := control.Serve(ctx, listener); err != nil {
			errChan <- fmt.Errorf("accept loop error: %w", err)
		}
	}()
	// The console blocks on stdin and lives as long as the process, like the
	// original operator thread. "exit" there halts immediately with no drain.
	go control.RunConsole(listener, os.Stdin, os.Stdout)

	// 6. Wait for a signal or a fatal runtime error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 7. Graceful path (signals only): stop accepting, cancel sessions.
	logger.Info("Shutting down gracefully...")
	_ = listener.Close()
	sup.Stop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/spalter/task-printer/internal/application/printjob"
	"github.com/spalter/task-printer/internal/infrastructure/config"
	"github.com/spalter/task-printer/internal/infrastructure/escpos"
	"github.com/spalter/task-printer/internal/infrastructure/logger"
	"github.com/spalter/task-printer/internal/infrastructure/printer"
	"github.com/spalter/task-printer/internal/interfaces/cli"
	"github.com/spalter/task-printer/internal/interfaces/http/handler"
	"github.com/spalter/task-printer/internal/interfaces/http/router"
)

const version = "0.2.1"

func main() {
	opts, err := cli.Parse("taskprinter", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	// Wire the print pipeline
	encoder := escpos.NewEncoder()
	netSender := &printer.NetSender{
		ConnectTimeout: cfg.Printer.ConnectTimeout,
		WriteTimeout:   cfg.Printer.WriteTimeout,
	}
	serialSender := &printer.SerialSender{BaudRate: cfg.Printer.BaudRate}
	service := printjob.NewService(encoder, netSender, serialSender, cfg.Defaults(), log)

	if opts.API {
		configuredPort, _ := strconv.Atoi(cfg.App.Port)
		runServer(cfg, log, service, opts.ListenPort(configuredPort))
		return
	}
	runOnce(log, service, opts)
}

// runOnce executes a single print job and exits.
func runOnce(log *zap.Logger, service *printjob.Service, opts *cli.Options) {
	if err := opts.ReadMessage(os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := service.Print(ctx, opts.ToRawRequest()); err != nil {
		_ = logger.Sync(log)
		fmt.Fprintln(os.Stderr, "Print job failed:", err)
		os.Exit(1)
	}
}

// runServer runs the HTTP API until SIGINT or SIGTERM.
func runServer(cfg *config.Config, log *zap.Logger, service *printjob.Service, port int) {
	log.Info("Starting taskprinter API",
		zap.String("env", cfg.App.Env),
		zap.Int("port", port),
		zap.String("version", version),
	)

	engine := router.Setup(cfg.App.Env, log,
		handler.NewHealthHandler(version),
		handler.NewPrintHandler(service),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
}

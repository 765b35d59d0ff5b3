package main

import (
	"context"
	"daily-task-scheduler/internal/config"
	"daily-task-scheduler/internal/demo"
	router "daily-task-scheduler/internal/http"
	"daily-task-scheduler/internal/http/handlers"
	"daily-task-scheduler/internal/logging"
	"daily-task-scheduler/internal/report"
	"daily-task-scheduler/internal/service"
	"daily-task-scheduler/internal/store/memory"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "fatal:", err)
		}
		os.Exit(1)
	}
}

// run parses flags, wires the schedule and either runs the demo against
// stdout or serves HTTP until SIGINT/SIGTERM. Logs go to logw.
func run(args []string, stdout, logw io.Writer) error {
	var (
		cfgPath string
		serve   bool
	)
	fs := flag.NewFlagSet("scheduler", flag.ContinueOnError)
	fs.SetOutput(logw)
	fs.StringVar(&cfgPath, "config", "", "path to yaml config (optional)")
	fs.BoolVar(&serve, "serve", false, "serve the schedule over HTTP instead of running the demo")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	log := logging.New(cfg.Log, logw)

	store := memory.New()

	service, err := service.New(store, log, service.Options{
		RejectInvertedRanges: cfg.Schedule.RejectInvertedRanges,
		UniqueDescriptions:   cfg.Schedule.UniqueDescriptions,
	})
	if err != nil {
		return fmt.Errorf("service initiation failed: %w", err)
	}

	if !serve {
		if err := demo.Run(service, report.New(stdout)); err != nil {
			return fmt.Errorf("demo aborted: %w", err)
		}
		return nil
	}

	return runServer(cfg, log, service)
}

func runServer(cfg config.Config, log zerolog.Logger, svc *service.ScheduleService) error {
	log = logging.Component(log, "http")

	handler := handlers.New(svc)

	router := router.New(handler)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case <-stop:
	}
	log.Info().Msg("shut down signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	log.Info().Msg("shut down gracefully")
	return nil
}

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"oldenera-wiki/internal/creatures"
	"oldenera-wiki/pkg/app"
	"oldenera-wiki/pkg/module"
	"oldenera-wiki/pkg/version"

	_ "go.uber.org/automaxprocs"
)

func main() {
	displayBanner()

	versionInfo := version.Get()
	log.Printf("🏷️  Version: %s | Build: %s", version.GetVersionString(), versionInfo.BuildDate)
	log.Printf("🖥️  CPUs: %d | GOMAXPROCS: %d", runtime.NumCPU(), runtime.GOMAXPROCS(0))

	// Initialize application with shared components
	appCtx, err := app.InitializeApp("oldenera-wiki")
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	cfg := appCtx.Config

	creaturesModule := creatures.New(appCtx.Store, appCtx.Cache, appCtx.Redis, creatures.Config{
		Preload: cfg.PreloadCatalog,
	})
	modules := []module.Module{creaturesModule}

	handler, _ := app.NewRouter(app.ServerOptions{
		ServiceName:     cfg.ServiceName,
		APIPrefix:       cfg.APIPrefix,
		EnableTelemetry: cfg.EnableTelemetry,
	}, modules...)

	// Start background services for all modules
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for _, mod := range modules {
		go mod.StartBackgroundTasks(ctx)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if cfg.Host == "0.0.0.0" {
		log.Printf("🚀 Server: http://localhost:%s%s | OpenAPI: %s/openapi.json", cfg.Port, cfg.APIPrefix, cfg.APIPrefix)
	} else {
		log.Printf("🚀 Server: http://%s%s | OpenAPI: %s/openapi.json", srv.Addr, cfg.APIPrefix, cfg.APIPrefix)
	}

	go func() {
		slog.Info("Starting creature wiki server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Received shutdown signal, initiating graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	// Stop modules after the server so pending cache writes can finish
	cancel()
	for _, mod := range modules {
		mod.Stop()
	}

	appCtx.Shutdown(shutdownCtx)

	slog.Info("Creature wiki shutdown completed successfully")
}

func displayBanner() {
	fmt.Print("\033[38;5;136m")
	fmt.Print("OLDEN ERA Creature Wiki\n")
	fmt.Print("\033[0m")
}

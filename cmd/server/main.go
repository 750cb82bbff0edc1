// Command server runs the GlassOS assumption extraction service.
//
// Configuration is layered: built-in defaults, then an optional YAML
// file (GLASSOS_CONFIG, ./config.yaml, or /etc/glassos/config.yaml),
// then environment variables. The most commonly used variables:
//
//	GLASSOS_PORT            - Listen port (default: 8080)
//	GLASSOS_OPENAI_API_KEY  - OpenAI credential (OPENAI_API_KEY also accepted)
//	GLASSOS_OPENAI_MODEL    - Extraction model (default: gpt-4.1-mini)
//	GLASSOS_ALLOWED_ORIGINS - Comma-separated CORS allow-list
//	GLASSOS_DEBUG           - Debug categories (providers, extract, transport, config, all)
//	GLASSOS_LOG_LEVEL       - ERROR, WARN, INFO, DEBUG, TRACE
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/glassos/glassos/pkg/config"
	"github.com/glassos/glassos/pkg/debug"
	"github.com/glassos/glassos/pkg/extract"
	"github.com/glassos/glassos/pkg/provider/registry"
	transporthttp "github.com/glassos/glassos/pkg/transport/http"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	debug.Init(cfg.Logging.Debug, cfg.Logging.Level)
	logger := slog.Default()

	// Providers are built eagerly so a missing credential fails startup
	// instead of surfacing on the first request.
	reg, err := registry.New(cfg)
	if err != nil {
		return fmt.Errorf("building provider registry: %w", err)
	}
	defer reg.Close()

	logger.Info("providers registered", "providers", reg.Names())

	svc := extract.NewService(logger)

	opts := []transporthttp.ServerOption{
		transporthttp.WithAddr(":" + strconv.Itoa(cfg.Server.Port)),
		transporthttp.WithMaxBodySize(cfg.Server.MaxBodySize),
		transporthttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout),
		transporthttp.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		transporthttp.WithAllowedOrigins(cfg.CORS.AllowedOrigins),
		transporthttp.WithLogger(logger),
	}
	if cfg.Observability.Metrics.Enabled {
		opts = append(opts, transporthttp.WithMetrics(cfg.Observability.Metrics.Path))
	}

	srv := transporthttp.NewServer(reg, svc, opts...)

	logger.Info("starting extraction server",
		"port", cfg.Server.Port,
		"model", cfg.Providers.OpenAI.Model,
		"allowed_origins", cfg.CORS.AllowedOrigins,
		"metrics", cfg.Observability.Metrics.Enabled)

	return srv.ListenAndServe()
}

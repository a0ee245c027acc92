package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/riskgate-ai/riskgate/internal/audit"
	"github.com/riskgate-ai/riskgate/internal/config"
	"github.com/riskgate-ai/riskgate/internal/logging"
	"github.com/riskgate-ai/riskgate/internal/risk"
	"github.com/riskgate-ai/riskgate/internal/server"
)

func main() {
	addrFlag := flag.String("addr", "", "HTTP listen address (overrides config)")
	configPath := flag.String("config", "riskgate.yaml", "Path to riskgate config file")
	flag.Parse()

	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	addr := cfg.Server.Addr
	if *addrFlag != "" {
		addr = *addrFlag
	}
	if env := os.Getenv("RISKGATE_ADDR"); env != "" && *addrFlag == "" {
		addr = env
	}

	engine := risk.New(risk.Thresholds{
		Medium: cfg.Scoring.MediumThreshold,
		High:   cfg.Scoring.HighThreshold,
	})

	var sinks []audit.Sink
	if cfg.Audit.Stdout {
		sinks = append(sinks, audit.NewStdoutSink())
	}
	if cfg.Audit.FilePath != "" {
		fileSink, err := audit.NewFileSink(cfg.Audit.FilePath)
		if err != nil {
			logger.Fatal("failed to open audit file sink", zap.Error(err))
		}
		sinks = append(sinks, fileSink)
	}

	var emitter *audit.Emitter
	if len(sinks) > 0 {
		emitter = audit.NewEmitter(audit.EmitterConfig{
			QueueSize:       cfg.Audit.QueueSize,
			Workers:         cfg.Audit.Workers,
			ShutdownTimeout: time.Duration(cfg.Audit.ShutdownTimeoutSeconds) * time.Second,
		}, sinks, logger)
	}

	srv := server.New(cfg, engine, emitter, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown error", zap.Error(err))
		}
	}
}

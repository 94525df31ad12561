package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/ckbpulse/ckbpulse-backend/internal/ckb"
	"github.com/ckbpulse/ckbpulse-backend/internal/metrics"
	"github.com/ckbpulse/ckbpulse-backend/internal/rpc"
	"github.com/ckbpulse/ckbpulse-backend/internal/service"
	"github.com/ckbpulse/ckbpulse-backend/internal/transport"
)

type config struct {
	Addr            string        `long:"addr" env:"CKBPULSE_ADDR" description:"HTTP listen address" default:":8120"`
	NodeURL         string        `long:"node-url" env:"CKBPULSE_NODE_URL" description:"CKB node JSON-RPC URL" default:"http://127.0.0.1:8114"`
	Network         string        `long:"network" env:"CKBPULSE_NETWORK" description:"network label for metrics" default:"mainnet"`
	RPCTimeout      time.Duration `long:"rpc-timeout" env:"CKBPULSE_RPC_TIMEOUT" description:"timeout for node RPC requests" default:"10s"`
	CacheTTL        time.Duration `long:"cache-ttl" env:"CKBPULSE_CACHE_TTL" description:"history snapshot freshness window" default:"15s"`
	RefreshInterval time.Duration `long:"refresh-interval" env:"CKBPULSE_REFRESH_INTERVAL" description:"background refresh period, 0 disables the loop" default:"0"`
	ProxyRPS        int           `long:"proxy-rps" env:"CKBPULSE_PROXY_RPS" description:"proxied node calls per second" default:"10"`
	ProxyMaxBody    int64         `long:"proxy-max-body" env:"CKBPULSE_PROXY_MAX_BODY" description:"max proxied request body in bytes" default:"1048576"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("monitor failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	nodeURL, err := url.Parse(cfg.NodeURL)
	if err != nil {
		return fmt.Errorf("parse node url: %w", err)
	}
	if nodeURL.Scheme != "http" && nodeURL.Scheme != "https" {
		return fmt.Errorf("node url scheme %q not supported, use http", nodeURL.Scheme)
	}
	if nodeURL.Host == "" {
		return errors.New("node url missing host")
	}

	node := ckb.NewClient(rpc.NewClient(cfg.NodeURL, cfg.RPCTimeout), metrics.NewRPCClient(cfg.Network))

	historyMetrics := metrics.NewHistory(cfg.Network)
	history, err := service.NewHistoryService(node, historyMetrics, logger.Named("history"), cfg.CacheTTL)
	if err != nil {
		return fmt.Errorf("init history service: %w", err)
	}

	refresher, err := service.NewRefresher(history, logger.Named("refresher"), cfg.RefreshInterval)
	if err != nil {
		return fmt.Errorf("init refresher: %w", err)
	}

	historyHandler, err := transport.NewHistoryHandler(history, historyMetrics, logger.Named("history_handler"))
	if err != nil {
		return fmt.Errorf("init history handler: %w", err)
	}

	proxyHandler, err := transport.NewProxyHandler(
		cfg.NodeURL,
		cfg.RPCTimeout,
		cfg.ProxyRPS,
		cfg.ProxyMaxBody,
		metrics.NewProxy(cfg.Network),
		logger.Named("proxy"),
	)
	if err != nil {
		return fmt.Errorf("init proxy handler: %w", err)
	}

	healthHandler, err := transport.NewHealthHandler(history)
	if err != nil {
		return fmt.Errorf("init health handler: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/history", historyHandler)
	mux.Handle("/rpc", proxyHandler)
	mux.Handle("/health", healthHandler)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	go func() {
		if err := refresher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("refresher stopped", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server",
		zap.String("addr", cfg.Addr),
		zap.String("node_url", cfg.NodeURL),
		zap.String("network", cfg.Network),
	)
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}

	return nil
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/p2pvps/openbazaar-node/internal/config"
	"github.com/p2pvps/openbazaar-node/internal/logger"
	"github.com/p2pvps/openbazaar-node/internal/storage"
	"github.com/p2pvps/openbazaar-node/internal/watcher"
	"github.com/p2pvps/openbazaar-node/pkg/openbazaar"
	"github.com/p2pvps/openbazaar-node/pkg/publishers"
)

// Watcher is the notification watcher runtime. It owns the poll loop, the
// publishers fan-out, the seen-notification store and the optional metrics endpoint.
type Watcher struct {
	cfg          *config.Config
	fanout       *publishers.Fanout
	service      *watcher.Service
	pollInterval time.Duration
	log          logger.Logger
	store        storage.Store
	metrics      *http.Server
}

// NewWatcher builds a watcher runtime from config.
func NewWatcher(ctx context.Context, cfg *config.Config, log logger.Logger) (*Watcher, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	clientCfg, err := cfg.ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("openbazaar client config: %w", err)
	}
	return newWatcher(ctx, cfg, clientCfg, log)
}

func newWatcher(ctx context.Context, cfg *config.Config, clientCfg openbazaar.ClientConfig, log logger.Logger) (*Watcher, error) {
	if log == nil {
		log = logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := openbazaar.New(clientCfg, openbazaar.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("create openbazaar client: %w", err)
	}
	log.InfoObj("openbazaar client configured", "openbazaar_client", map[string]any{
		"endpoint": client.Config().Endpoint(""),
		"timeout":  clientCfg.Timeout.String(),
	})

	publisherReg, err := publishers.LoadRegistry(cfg.PublishersFile)
	if err != nil {
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}

	enabledPublishers := publisherReg.Enabled()
	if len(enabledPublishers) == 0 {
		return nil, fmt.Errorf("no publishers configured")
	}

	pubClients, err := publishers.BuildAll(ctx, publishers.DefaultRegistry(), enabledPublishers, log)
	if err != nil {
		return nil, fmt.Errorf("build publishers: %w", err)
	}
	fanout := publishers.NewFanout(pubClients)
	publisherSummaries := make([]map[string]string, 0, len(enabledPublishers))
	for _, pubCfg := range enabledPublishers {
		publisherSummaries = append(publisherSummaries, map[string]string{
			"id":   pubCfg.ID,
			"type": pubCfg.Type,
		})
	}
	log.InfoObj("publishers registry loaded", "publishers_meta", map[string]any{
		"count":      len(publisherSummaries),
		"publishers": publisherSummaries,
	})

	storeOpts := storage.Options{
		NotificationTTL: cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	}
	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storeOpts)
	if err != nil {
		_ = fanout.Close()
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.InfoObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.StorageType,
		"path":                     cfg.BBoltPath,
		"notification_ttl_seconds": int(cfg.StorageTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.StorageCleanupInterval.Seconds()),
	})

	service := watcher.NewService(client, watcher.NewEnricher(client), fanout, store, cfg.MarkRead)

	w := &Watcher{
		cfg:          cfg,
		fanout:       fanout,
		service:      service,
		pollInterval: cfg.PollInterval,
		log:          log,
		store:        store,
	}
	if cfg.MetricsAddr != "" {
		w.metrics = newMetricsServer(cfg.MetricsAddr)
	}
	return w, nil
}

func newMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Run starts the poll loop until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if w == nil || w.service == nil {
		return fmt.Errorf("watcher is not initialized")
	}
	defer w.shutdown()

	if w.metrics != nil {
		go w.serveMetrics()
	}

	w.log.InfoObj("watcher loop starting", "watcher_state", map[string]any{
		"publishers_count": w.fanout.Size(),
		"poll_interval":    w.pollInterval.String(),
		"mark_read":        w.cfg.MarkRead,
		"metrics_addr":     w.cfg.MetricsAddr,
	})

	if err := w.runOnce(ctx); err != nil {
		w.log.ErrorObj("initial poll failed", "error", err.Error())
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.InfoObj("watcher loop exiting", "reason", ctx.Err().Error())
			return nil
		case <-ticker.C:
			if err := w.runOnce(ctx); err != nil {
				w.log.ErrorObj("scheduled poll failed", "error", err.Error())
			}
		}
	}
}

// runOnce performs a single notification poll.
func (w *Watcher) runOnce(ctx context.Context) error {
	start := time.Now()
	res, err := w.service.Poll(ctx)
	w.log.DebugObj("poll finished", "poll_meta", map[string]any{
		"fetched":    res.Fetched,
		"fresh":      res.Fresh,
		"published":  res.Published,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return err
}

func (w *Watcher) serveMetrics() {
	w.log.InfoObj("metrics endpoint listening", "metrics_addr", w.metrics.Addr)
	if err := w.metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		w.log.ErrorObj("metrics endpoint failed", "error", err.Error())
	}
}

// shutdown releases the metrics server, publishers and store, logging any errors.
func (w *Watcher) shutdown() {
	if w.metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := w.metrics.Shutdown(ctx); err != nil {
			w.log.ErrorObj("metrics shutdown failed", "error", err.Error())
		}
	}
	if err := w.fanout.Close(); err != nil {
		w.log.ErrorObj("publishers close failed", "error", err.Error())
	}
	if w.store != nil {
		if err := w.store.Close(); err != nil {
			w.log.ErrorObj("storage close failed", "error", err.Error())
		}
	}
}

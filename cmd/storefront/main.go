package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"beverage-storefront/internal/catalog"
	"beverage-storefront/internal/checkout"
	"beverage-storefront/internal/common/httpx"
	"beverage-storefront/internal/common/logger"
	"beverage-storefront/internal/config"
	"beverage-storefront/internal/connections/rabbitmq"
	"beverage-storefront/internal/handlers"
	"beverage-storefront/internal/notify"
	"beverage-storefront/internal/storeapi"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to YAML config")
	port := flag.Int("port", 0, "http port (overrides config)")
	storeURL := flag.String("store-api", "", "base URL of the catalog/order service (overrides config)")
	flag.Parse()

	lg := logger.New("storefront")

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		if *storeURL == "" {
			lg.Error("config_load_failed", err, map[string]any{"path": *cfgPath})
			os.Exit(1)
		}
		cfg = config.Default()
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *storeURL != "" {
		cfg.StoreAPI.BaseURL = *storeURL
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var notifier checkout.Notifier
	if cfg.RabbitMQ.Enabled() {
		mq, err := rabbitmq.Dial(cfg.RabbitMQ)
		if err != nil {
			lg.Error("rabbitmq_connect_failed", err, map[string]any{"host": cfg.RabbitMQ.Host})
			os.Exit(1)
		}
		defer mq.Close()
		notifier = notify.NewPublisher(mq)
		lg.Info("rabbitmq_connected", map[string]any{"host": cfg.RabbitMQ.Host, "port": cfg.RabbitMQ.Port})
	}

	api := storeapi.NewHTTP(cfg.StoreAPI.BaseURL)
	h := handlers.New(lg, catalog.New(api), api, notifier)

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	lg.Info("service_started", map[string]any{
		"addr": addr, "store_api": cfg.StoreAPI.BaseURL, "events_enabled": notifier != nil,
	})
	if err := httpx.New(addr, h.Routes()).Run(ctx); err != nil {
		lg.Error("fatal", err, nil)
		os.Exit(1)
	}
	lg.Info("service_stopped", nil)
}

package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"beverage-storefront/internal/connections/rabbitmq"
)

type Config struct {
	Server   ServerConfig
	StoreAPI StoreAPIConfig
	RabbitMQ rabbitmq.Config
}

type ServerConfig struct {
	Port int
}

type StoreAPIConfig struct {
	BaseURL string
}

func Default() Config {
	return Config{
		Server:   ServerConfig{Port: 4000},
		StoreAPI: StoreAPIConfig{BaseURL: "http://localhost:8080"},
	}
}

// Load reads the simple two-level YAML-ish config the deploy tooling writes:
// top-level sections `server:`, `store_api:` and `rabbitmq:` with k: v pairs.
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	cfg := Default()
	scanner := bufio.NewScanner(file)

	var section string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasSuffix(line, ":") {
			section = strings.TrimSuffix(line, ":")
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)

		switch section {
		case "server":
			if key == "port" {
				cfg.Server.Port, _ = strconv.Atoi(value)
			}
		case "store_api":
			if key == "base_url" {
				cfg.StoreAPI.BaseURL = value
			}
		case "rabbitmq":
			switch key {
			case "host":
				cfg.RabbitMQ.Host = value
			case "port":
				cfg.RabbitMQ.Port, _ = strconv.Atoi(value)
			case "user":
				cfg.RabbitMQ.User = value
			case "password":
				cfg.RabbitMQ.Password = value
			case "vhost":
				cfg.RabbitMQ.VHost = value
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if cfg.StoreAPI.BaseURL == "" {
		return Config{}, fmt.Errorf("invalid config: store_api.base_url is required")
	}
	return cfg, nil
}

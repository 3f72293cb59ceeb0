package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"3000"`
	GinMode     string `env:"GIN_MODE" envDefault:"debug"`
	RedisAddr   string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	KafkaBroker string `env:"KAFKA_BROKER"`
	EventsTopic string `env:"EVENTS_TOPIC" envDefault:"storefront.events"`

	// Simulated payment-processing delay before an order is confirmed.
	OrderProcessingDelay time.Duration `env:"ORDER_PROCESSING_DELAY" envDefault:"2s"`

	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

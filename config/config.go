package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/evstation/rental-service/pkg/logger"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"GATEWAY_HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"GATEWAY_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration
}

// Backend is the authoritative rental API every mutation is delegated to.
type Backend struct {
	Host string `envconfig:"BACKEND_HTTP_HOST" default:"localhost"`
	Port string `envconfig:"BACKEND_HTTP_PORT" default:"8000"`
}

type Redis struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" json:"-"`
	DB       int    `envconfig:"REDIS_DB"`
}

type Kafka struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"KAFKA_BOOKING_TOPIC" default:"booking-events"`
}

type Auth struct {
	JWTSecret string `envconfig:"JWT_SECRET" json:"-"`
}

// Sync holds the offline-cache and action-queue tuning knobs.
type Sync struct {
	CacheTTL        time.Duration `envconfig:"BOOKINGS_CACHE_TTL" default:"5m"`
	QueueMaxRetries int           `envconfig:"QUEUE_MAX_RETRIES" default:"3"`
	ProbeInterval   time.Duration `envconfig:"NET_PROBE_INTERVAL" default:"15s"`
}

type Config struct {
	Server  HTTPServer `yaml:"server"`
	Backend Backend
	Redis   Redis
	Kafka   Kafka
	Auth    Auth
	Sync    Sync
	Log     logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}

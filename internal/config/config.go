package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

type Mongo struct {
	URI             string        `yaml:"MONGODB_URI" env:"MONGODB_URI" env-default:"mongodb://localhost:27017"`
	Database        string        `yaml:"MONGODB_DATABASE" env:"MONGODB_DATABASE" env-default:"product_inventory"`
	MaxPoolSize     uint64        `yaml:"MAX_POOL_SIZE" env:"MONGODB_MAX_POOL_SIZE" env-default:"100"`
	MinPoolSize     uint64        `yaml:"MIN_POOL_SIZE" env:"MONGODB_MIN_POOL_SIZE" env-default:"0"`
	MaxConnIdleTime time.Duration `yaml:"MAX_CONN_IDLE_TIME" env:"MONGODB_MAX_CONN_IDLE_TIME" env-default:"30s"`
	ConnectTimeout  time.Duration `yaml:"CONNECT_TIMEOUT" env:"MONGODB_CONNECT_TIMEOUT" env-default:"45s"`
	SocketTimeout   time.Duration `yaml:"SOCKET_TIMEOUT" env:"MONGODB_SOCKET_TIMEOUT" env-default:"45s"`
}

type Telemetry struct {
	OTLPEndpoint string `yaml:"OTLP_ENDPOINT" env:"OTLP_ENDPOINT" env-default:""`
	ServiceName  string `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"product-inventory-platform"`
}

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer `yaml:"http_server"`
	Mongo      Mongo     `yaml:"mongo"`
	Telemetry  Telemetry `yaml:"telemetry"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg
}

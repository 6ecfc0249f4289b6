package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"mappins/internal/application/usecase"
	"mappins/internal/infrastructure/broker"
	"mappins/internal/infrastructure/database"
	"mappins/internal/infrastructure/grpcserver"
	"mappins/internal/infrastructure/minio"
	"mappins/internal/infrastructure/postgres"
	"mappins/internal/infrastructure/redis"
	"mappins/internal/presentation/server"
	"mappins/pkg/logger"
)

const (
	DefaultSiteID = "default"

	StorageMinIO    = "minio"
	StorageMongo    = "mongo"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
	StorageMemory   = "memory"
)

type StorageConfig struct {
	Driver string `yaml:"driver"`
}

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	SiteID          string                 `yaml:"site_id"`
	HTTP            server.Config          `yaml:"http"`
	Pins            usecase.Config         `yaml:"pins"`
	Storage         StorageConfig          `yaml:"storage"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOStore      minio.StoreConfig      `yaml:"minio_store"`
	DBConfig        database.Config        `yaml:"db_config"`
	PostgresConfig  postgres.Config        `yaml:"postgres_config"`
	RedisStore      redis.Config           `yaml:"redis_store"`
	BrokerConfig    broker.Config          `yaml:"broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	GRPCServer      grpcserver.Config      `yaml:"grpc_server"`
	Logger          logger.Config          `yaml:"logger"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	if siteID := os.Getenv("SITE_ID"); siteID != "" {
		config.SiteID = siteID
	}
	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.PostgresConfig.URI = os.Getenv("POSTGRES_URI")
	config.RedisStore.URI = os.Getenv("REDIS_URI")
	if uri := os.Getenv("BROKER_URI"); uri != "" {
		config.BrokerConfig.URI = uri
	}

	config.setDefaults()

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

func (c *Config) setDefaults() {
	if c.SiteID == "" {
		c.SiteID = DefaultSiteID
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = StorageMinIO
	}
	if c.BrokerConfig.Driver == "" {
		c.BrokerConfig.Driver = broker.DriverNone
	}

	c.Pins = c.Pins.WithDefaults()
	c.HTTP = c.HTTP.WithDefaults()
	c.MinIOStore = c.MinIOStore.WithDefaults()
	c.DBConfig = c.DBConfig.WithDefaults()
	c.PostgresConfig = c.PostgresConfig.WithDefaults()
	c.RedisStore = c.RedisStore.WithDefaults()
	c.PublisherConfig = c.PublisherConfig.WithDefaults()
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	switch c.Storage.Driver {
	case StorageMinIO:
		if c.MinIOStore.Bucket == "" {
			return errors.New("minio_store.bucket is required")
		}
	case StorageMongo, StoragePostgres, StorageRedis, StorageMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	switch c.BrokerConfig.Driver {
	case broker.DriverRedis, broker.DriverKafka, broker.DriverNone:
	default:
		return fmt.Errorf("unknown broker driver %q", c.BrokerConfig.Driver)
	}

	return nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultStorageRoot        = "uploads"
	defaultMaxUploadSize      = 10_000_000
	defaultMaxFilesPerRequest = 10
	defaultPublicPrefix       = "/uploads/"
	bodyLimitHeadroom         = 1 << 20
	defaultPageSize           = 20
	defaultMaxPageSize        = 100
	defaultGormSlowThreshold  = 200 * time.Millisecond
	defaultPoolMonitor        = 5 * time.Second
	defaultCacheTTL           = 5 * time.Minute
)

// EnvDevelop is the env.env value of a local development setup.
const EnvDevelop = "develop"

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database tuning that the connection library does not own
	Database DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Storage configuration for advertisement attachments
	Storage StorageConfig `json:"storage" yaml:"storage"`

	// Search configuration for paginated listings
	Search SearchConfig `json:"search" yaml:"search"`

	// QRCode configuration for advertisement share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Redis configuration for the advertisement view cache
	Redis RedisConfig `json:"redis" yaml:"redis"`

	Metrics struct {
		Enabled bool `json:"enabled" yaml:"enabled"`
	} `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines query logging and pool monitoring thresholds
type DatabaseConfig struct {
	SlowQueryThreshold  time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
	PoolMonitorInterval time.Duration `json:"poolMonitorInterval" yaml:"poolMonitorInterval"`
}

// StorageConfig defines where attachments are kept and how large they may be
type StorageConfig struct {
	// Directory of the local file bucket, used when BucketURL is empty
	Root string `json:"root" yaml:"root"`

	// Optional bucket URL (file://, gs://, s3://)
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Maximum size of a single upload in bytes
	MaxUploadSize int64 `json:"maxUploadSize" yaml:"maxUploadSize"`

	// Maximum number of files in one create or update request
	MaxFilesPerRequest int `json:"maxFilesPerRequest" yaml:"maxFilesPerRequest"`

	// Path prefix of the public attachment URL
	PublicPrefix string `json:"publicPrefix" yaml:"publicPrefix"`
}

// SearchConfig defines pagination bounds
type SearchConfig struct {
	DefaultPageSize int `json:"defaultPageSize" yaml:"defaultPageSize"`
	MaxPageSize     int `json:"maxPageSize" yaml:"maxPageSize"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Audience of the push identity token. Empty means the URL the request arrived on.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// RedisConfig defines the optional view cache. An empty URL disables it.
type RedisConfig struct {
	URL string        `json:"url" yaml:"url"`
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

// New loads config.yaml from the first config directory found, applies
// environment overrides and fills every unset tunable.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.LookupEnv)
	}

	return cfg, nil
}

// applyDefaults fills zero values. A default page size above the cap is
// lowered to the cap. An unset body limit admits a full batch of
// maximum-size files plus the form fields.
func applyDefaults(cfg *Config) {
	setIfBlank(&cfg.Storage.Root, defaultStorageRoot)
	setIfBlank(&cfg.Storage.PublicPrefix, defaultPublicPrefix)

	setIfNotPositive(&cfg.Database.SlowQueryThreshold, defaultGormSlowThreshold)
	setIfNotPositive(&cfg.Database.PoolMonitorInterval, defaultPoolMonitor)
	setIfNotPositive(&cfg.Storage.MaxUploadSize, defaultMaxUploadSize)
	setIfNotPositive(&cfg.Storage.MaxFilesPerRequest, defaultMaxFilesPerRequest)
	setIfNotPositive(&cfg.Search.MaxPageSize, defaultMaxPageSize)
	setIfNotPositive(&cfg.Search.DefaultPageSize, defaultPageSize)
	setIfNotPositive(&cfg.Redis.TTL, defaultCacheTTL)

	cfg.Search.DefaultPageSize = min(cfg.Search.DefaultPageSize, cfg.Search.MaxPageSize)

	setIfBlank(&cfg.HTTP.MaxRequestBodySize, uploadBodyLimit(cfg.Storage))
}

// uploadBodyLimit renders the body limit in the KB unit echo parses (1024 bytes).
func uploadBodyLimit(storage StorageConfig) string {
	total := storage.MaxUploadSize*int64(storage.MaxFilesPerRequest) + bodyLimitHeadroom

	return fmt.Sprintf("%dKB", (total+1023)/1024)
}

func setIfBlank(field *string, value string) {
	if strings.TrimSpace(*field) == "" {
		*field = value
	}
}

func setIfNotPositive[T int | int64 | time.Duration](field *T, value T) {
	if *field <= 0 {
		*field = value
	}
}

// replicasFromEnv reads POSTGRES_REPLICAS_{n}_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... and stops at the first index without a host and port.
func replicasFromEnv(lookup func(string) (string, bool)) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for n := 0; ; n++ {
		get := func(field string) string {
			v, _ := lookup("POSTGRES_REPLICAS_" + strconv.Itoa(n) + "_" + field)

			return v
		}

		replica := postgres.ConnectionConfig{
			Host:     get("HOST"),
			Port:     get("PORT"),
			UserName: get("USERNAME"),
			Password: get("PASSWORD"),
		}
		if replica.Host == "" || replica.Port == "" {
			return replicas
		}

		replicas = append(replicas, replica)
	}
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, table, bucket, credentials)
// - default: Values common across all environments (region, CORS, log format)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	AWS    AWSConfig
	Store  StoreConfig
	Blob   BlobConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// AWSConfig covers both the table service and the blob store. Endpoint is
// left empty in real deployments; set it to target dynamodb-local or MinIO.
type AWSConfig struct {
	Region    string `envconfig:"AWS_REGION" default:"sa-east-1"`
	Endpoint  string `envconfig:"AWS_ENDPOINT" default:""`
	AccessKey string `envconfig:"AWS_ACCESS_KEY_ID" required:"true"`
	SecretKey string `envconfig:"AWS_SECRET_ACCESS_KEY" required:"true"`
}

type StoreConfig struct {
	Table string `envconfig:"STORE_TABLE" default:"locadora"`
}

type BlobConfig struct {
	Bucket string `envconfig:"BLOB_BUCKET" default:"locadora-imagens"`
	// Base URL for public object links; falls back to the AWS virtual-hosted
	// style when empty.
	PublicBaseURL string `envconfig:"BLOB_PUBLIC_BASE_URL" default:""`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

func (b *BlobConfig) ObjectURL(region, endpoint, key string) string {
	if b.PublicBaseURL != "" {
		return strings.TrimRight(b.PublicBaseURL, "/") + "/" + key
	}
	if endpoint != "" {
		return strings.TrimRight(endpoint, "/") + "/" + b.Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", b.Bucket, region, key)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		AWS: AWSConfig{
			Region:    "sa-east-1",
			Endpoint:  "http://localhost:8000",
			AccessKey: "test",
			SecretKey: "test",
		},
		Store: StoreConfig{
			Table: "locadora_test",
		},
		Blob: BlobConfig{
			Bucket:        "locadora-imagens-test",
			PublicBaseURL: "http://localhost:9000/locadora-imagens-test",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
	}
}

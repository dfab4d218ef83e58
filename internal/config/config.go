package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr          string
	DefaultWindowSize int
	HistoryLimit      int
	SSEHeartbeat      time.Duration
	SeedDemoClicks    bool

	CategoryRootPath string
	Firebase         FirebaseConfig
	MySQLDSN         string

	RedisAddr        string
	RedisDB          int
	RedisPassword    string
	CategoryCacheTTL time.Duration

	RabbitMQURL         string
	RabbitExchange      string
	RabbitQueue         string
	RabbitRoutingKey    string
	RabbitConsumerTag   string
	RabbitPublishPrefix string

	OTELServiceName string
	OTLPEndpoint    string
	OTLPInsecure    bool
}

// FirebaseConfig mirrors the fields of a service account key file.
type FirebaseConfig struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
	DatabaseURL             string `json:"-"`
}

// Enabled reports whether enough settings are present to reach the database.
func (f FirebaseConfig) Enabled() bool {
	return f.DatabaseURL != "" && f.PrivateKey != "" && f.ClientEmail != ""
}

func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:            ":8080",
		DefaultWindowSize:   5,
		HistoryLimit:        20,
		SSEHeartbeat:        15 * time.Second,
		CategoryRootPath:    "category",
		CategoryCacheTTL:    5 * time.Minute,
		RabbitExchange:      "clicks",
		RabbitQueue:         "clicks.ingest",
		RabbitRoutingKey:    "click.*",
		RabbitConsumerTag:   "click-consumer",
		RabbitPublishPrefix: "click",
		OTELServiceName:     "clickrec",
		OTLPInsecure:        true,
	}

	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		cfg.HTTPAddr = addr
	} else if port := os.Getenv("PORT"); port != "" {
		cfg.HTTPAddr = ":" + port
	}

	if v := os.Getenv("DEFAULT_WINDOW_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DefaultWindowSize = n
		}
	}
	if v := os.Getenv("HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HistoryLimit = n
		}
	}
	if v := os.Getenv("SSE_HEARTBEAT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SSEHeartbeat = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("SEED_DEMO_CLICKS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SeedDemoClicks = b
		}
	}

	if v := os.Getenv("CATEGORY_ROOT_PATH"); v != "" {
		cfg.CategoryRootPath = strings.Trim(v, "/")
	}
	cfg.Firebase = FirebaseConfig{
		Type:         os.Getenv("FIREBASE_TYPE"),
		ProjectID:    os.Getenv("FIREBASE_PROJECT_ID"),
		PrivateKeyID: os.Getenv("FIREBASE_PRIVATE_KEY_ID"),
		// keys pasted into .env files carry literal \n sequences
		PrivateKey:              strings.ReplaceAll(os.Getenv("FIREBASE_PRIVATE_KEY"), `\n`, "\n"),
		ClientEmail:             os.Getenv("FIREBASE_CLIENT_EMAIL"),
		ClientID:                os.Getenv("FIREBASE_CLIENT_ID"),
		AuthURI:                 os.Getenv("FIREBASE_AUTH_URI"),
		TokenURI:                os.Getenv("FIREBASE_TOKEN_URI"),
		AuthProviderX509CertURL: os.Getenv("FIREBASE_AUTH_PROVIDER_X509_CERT_URL"),
		ClientX509CertURL:       os.Getenv("FIREBASE_CLIENT_X509_CERT_URL"),
		DatabaseURL:             os.Getenv("FIREBASE_DATABASE_URL"),
	}
	cfg.MySQLDSN = os.Getenv("MYSQL_DSN")

	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.RedisDB = n
		}
	}
	if v := os.Getenv("CATEGORY_CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CategoryCacheTTL = time.Duration(n) * time.Second
		}
	}

	cfg.RabbitMQURL = os.Getenv("RABBITMQ_URL")
	if v := os.Getenv("RABBITMQ_EXCHANGE"); v != "" {
		cfg.RabbitExchange = v
	}
	if v := os.Getenv("RABBITMQ_QUEUE"); v != "" {
		cfg.RabbitQueue = v
	}
	if v := os.Getenv("RABBITMQ_ROUTING_KEY"); v != "" {
		cfg.RabbitRoutingKey = v
	}
	if v := os.Getenv("RABBITMQ_CONSUMER_TAG"); v != "" {
		cfg.RabbitConsumerTag = v
	}
	if v := os.Getenv("RABBITMQ_PUBLISH_PREFIX"); v != "" {
		cfg.RabbitPublishPrefix = v
	}

	if v := os.Getenv("OTEL_SERVICE_NAME"); v != "" {
		cfg.OTELServiceName = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTLPEndpoint = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_INSECURE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.OTLPInsecure = b
		}
	}

	return cfg
}

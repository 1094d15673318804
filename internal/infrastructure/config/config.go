package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type DatabaseConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"insight"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME"     envDefault:"insight_catalog"`
	SSLMode  string `env:"SSLMODE"  envDefault:"require"`
	MaxConns int32  `env:"MAX_CONNS" envDefault:"10"`
}

type KafkaConfig struct {
	Brokers       []string `env:"BROKERS"        envDefault:"localhost:9092" envSeparator:","`
	Topic         string   `env:"TOPIC"          envDefault:"insight-pricing-events"`
	OutcomeTopic  string   `env:"OUTCOME_TOPIC"  envDefault:"insight-submission-outcomes"`
	ConsumerGroup string   `env:"CONSUMER_GROUP" envDefault:"pricing-service"`
	TLS           bool     `env:"TLS"            envDefault:"false"`
	SASLMechanism string   `env:"SASL_MECHANISM"`
	SASLUsername  string   `env:"SASL_USERNAME"`
	SASLPassword  string   `env:"SASL_PASSWORD"`
}

type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB"       envDefault:"0"`
}

type TracingConfig struct {
	Endpoint string  `env:"ENDPOINT"`
	Insecure bool    `env:"INSECURE" envDefault:"true"`
	Ratio    float64 `env:"SAMPLE_RATIO" envDefault:"1"`
}

// PricingConfig is the policy applied when a caller omits a figure.
type PricingConfig struct {
	BaseRatePercent       float64 `env:"BASE_RATE_PERCENT"                envDefault:"8.5"`
	OriginationFeePercent float64 `env:"DEFAULT_ORIGINATION_FEE_PERCENT"  envDefault:"2.5"`
	Currency              string  `env:"CURRENCY"                         envDefault:"USD"`
	IdentityMediumMin     float64 `env:"IDENTITY_MEDIUM_MIN"              envDefault:"60"`
	IdentityLowMin        float64 `env:"IDENTITY_LOW_MIN"                 envDefault:"75"`
}

// IngestionDefaults enumerates every fallback applied to catalog records
// when a descriptive field is absent. They are applied once, when records
// are loaded, and never on a display path.
type IngestionDefaults struct {
	Location       string `env:"LOCATION"         envDefault:"Unknown"`
	Platform       string `env:"PLATFORM"         envDefault:"Independent"`
	TimeOnPlatform string `env:"TIME_ON_PLATFORM" envDefault:"n/a"`
	LenderType     string `env:"LENDER_TYPE"      envDefault:"Personal Loans"`
	// An empty risk category is always derived from the lending score.
}

type Config struct {
	ServiceName   string        `env:"SERVICE_NAME"    envDefault:"pricing-service"`
	GRPCPort      int           `env:"GRPC_PORT"       envDefault:"9095"`
	HTTPPort      int           `env:"HTTP_PORT"       envDefault:"8095"`
	LogLevel      string        `env:"LOG_LEVEL"       envDefault:"info"`
	LogFormat     string        `env:"LOG_FORMAT"      envDefault:"json"`
	GRPCReflect   bool          `env:"GRPC_REFLECTION" envDefault:"false"`
	TLSCertFile   string        `env:"TLS_CERT_FILE"`
	TLSKeyFile    string        `env:"TLS_KEY_FILE"`
	ShutdownGrace time.Duration `env:"SHUTDOWN_GRACE"  envDefault:"15s"`
	HTTPMaxBody   int64         `env:"HTTP_MAX_BODY_BYTES" envDefault:"1048576"`
	HTTPRateLimit int           `env:"HTTP_RATE_LIMIT_RPS" envDefault:"0"`
	GinMode       string        `env:"GIN_MODE"        envDefault:"release"`

	CatalogBackend    string        `env:"CATALOG_BACKEND"    envDefault:"memory"`
	CatalogSeed       bool          `env:"CATALOG_SEED"       envDefault:"false"`
	SubmissionBackend string        `env:"SUBMISSION_BACKEND" envDefault:"memory"`
	EventsBackend     string        `env:"EVENTS_BACKEND"     envDefault:"log"`
	SubmissionTTL     time.Duration `env:"SUBMISSION_TTL"     envDefault:"24h"`

	DB        DatabaseConfig    `envPrefix:"DB_"`
	Kafka     KafkaConfig       `envPrefix:"KAFKA_"`
	Redis     RedisConfig       `envPrefix:"REDIS_"`
	Tracing   TracingConfig     `envPrefix:"OTEL_TRACING_"`
	Pricing   PricingConfig     `envPrefix:"PRICING_"`
	Ingestion IngestionDefaults `envPrefix:"INGESTION_DEFAULT_"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the cross-field rules env tags cannot express.
func (c Config) Validate() error {
	var errs []error

	switch c.CatalogBackend {
	case "memory":
	case "postgres":
		if c.DB.Password == "" {
			errs = append(errs, errors.New("DB_PASSWORD is required when CATALOG_BACKEND=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CATALOG_BACKEND %q", c.CatalogBackend))
	}

	switch c.SubmissionBackend {
	case "memory", "redis":
	default:
		errs = append(errs, fmt.Errorf("unknown SUBMISSION_BACKEND %q", c.SubmissionBackend))
	}

	switch c.EventsBackend {
	case "log":
	case "kafka":
		if len(c.Kafka.Brokers) == 0 {
			errs = append(errs, errors.New("KAFKA_BROKERS is required when EVENTS_BACKEND=kafka"))
		}
		switch c.Kafka.SASLMechanism {
		case "", "PLAIN", "SCRAM-SHA-256", "SCRAM-SHA-512":
		default:
			errs = append(errs, fmt.Errorf("unknown KAFKA_SASL_MECHANISM %q", c.Kafka.SASLMechanism))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown EVENTS_BACKEND %q", c.EventsBackend))
	}

	if c.Pricing.IdentityMediumMin > c.Pricing.IdentityLowMin {
		errs = append(errs, fmt.Errorf("PRICING_IDENTITY_MEDIUM_MIN (%v) exceeds PRICING_IDENTITY_LOW_MIN (%v)",
			c.Pricing.IdentityMediumMin, c.Pricing.IdentityLowMin))
	}
	if c.Pricing.BaseRatePercent < 0 || c.Pricing.OriginationFeePercent < 0 {
		errs = append(errs, errors.New("pricing defaults must not be negative"))
	}
	if c.SubmissionTTL <= 0 {
		errs = append(errs, errors.New("SUBMISSION_TTL must be positive"))
	}
	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		errs = append(errs, errors.New("TLS_CERT_FILE and TLS_KEY_FILE must be set together"))
	}

	return errors.Join(errs...)
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

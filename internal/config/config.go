package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`

	CassoAPIAddress    string `env:"CASSO_API_ADDRESS"`
	CassoAPIKey        string `env:"CASSO_API_KEY"`
	WebhookSecureToken string `env:"WEBHOOK_SECURE_TOKEN"`
	JWTOperatorSecret  string `env:"JWT_OPERATOR_SECRET"`
	AMQPAddress        string `env:"AMQP_ADDRESS"`

	// параметры движка цен; должны совпадать с параметрами чекаута,
	// иначе пересчет total при сверке разойдется с сохраненным.
	TaxRate               float64 `env:"TAX_RATE"                envDefault:"0.08"`
	FlatDeliveryFee       int64   `env:"FLAT_DELIVERY_FEE"       envDefault:"30000"`
	FreeDeliveryThreshold int64   `env:"FREE_DELIVERY_THRESHOLD" envDefault:"500000"`
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.WebhookSecureToken == "" {
		return nil, errors.New("webhook secure token is not set")
	}
	if conf.JWTOperatorSecret == "" {
		return nil, errors.New("operator JWT secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.CassoAPIAddress, "c", "https://oauth.casso.vn", "Casso API base address")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	merged := *envConfig
	merged.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	merged.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	merged.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	merged.CassoAPIAddress = defaultIfBlank(envConfig.CassoAPIAddress, flagsConfig.CassoAPIAddress)
	return &merged
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, policy defaults, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	Store      StoreConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Settlement SettlementConfig
	Quota      QuotaConfig
	Sweep      SweepConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// StoreConfig selects the document store driver. The memory driver keeps all
// records in-process and is intended for development and tests.
type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
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
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

// SettlementConfig carries the policy tables consulted by the settlement
// engine. DefaultFeePercent seeds the global fee configuration record on
// first read; later changes go through the fee config store, never through
// already-frozen bookings.
type SettlementConfig struct {
	DefaultFeePercent string        `envconfig:"SETTLEMENT_FEE_PERCENT" default:"0.10"`
	AutoConfirmWindow time.Duration `envconfig:"SETTLEMENT_AUTO_CONFIRM_WINDOW" default:"48h"`
	MaxRetries        int           `envconfig:"SETTLEMENT_MAX_RETRIES" default:"3"`
	RetryBaseWait     time.Duration `envconfig:"SETTLEMENT_RETRY_BASE_WAIT" default:"100ms"`

	RefundFreeCancelDays   int    `envconfig:"REFUND_FREE_CANCEL_DAYS" default:"7"`
	RefundLateCancelDays   int    `envconfig:"REFUND_LATE_CANCEL_DAYS" default:"1"`
	RefundCancelFeePercent string `envconfig:"REFUND_CANCEL_FEE_PERCENT" default:"0.20"`
	RefundLateFeePercent   string `envconfig:"REFUND_LATE_FEE_PERCENT" default:"0.50"`
	RefundAdminPercent     string `envconfig:"REFUND_ADMIN_PERCENT" default:"0.10"`
}

// QuotaConfig sets the default listing allowance for new hosts and the
// price of each purchased slot. A listing limit of -1 means unlimited.
type QuotaConfig struct {
	DefaultListingLimit int    `envconfig:"QUOTA_DEFAULT_LISTING_LIMIT" default:"1"`
	SlotPriceAmount     string `envconfig:"QUOTA_SLOT_PRICE_AMOUNT" default:"50.00"`
	SlotPriceCurrency   string `envconfig:"QUOTA_SLOT_PRICE_CURRENCY" default:"USD"`
}

type SweepConfig struct {
	Interval      time.Duration `envconfig:"SWEEP_INTERVAL" default:"5m"`
	BatchSize     int           `envconfig:"SWEEP_BATCH_SIZE" default:"100"`
	AutoConfirm   bool          `envconfig:"SWEEP_AUTO_CONFIRM" default:"true"`
	AutoComplete  bool          `envconfig:"SWEEP_AUTO_COMPLETE" default:"true"`
	ProcessPayout bool          `envconfig:"SWEEP_PROCESS_PAYOUT" default:"false"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
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
		Store: StoreConfig{
			Driver: "memory",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Settlement: SettlementConfig{
			DefaultFeePercent:      "0.10",
			AutoConfirmWindow:      48 * time.Hour,
			MaxRetries:             3,
			RetryBaseWait:          time.Millisecond,
			RefundFreeCancelDays:   7,
			RefundLateCancelDays:   1,
			RefundCancelFeePercent: "0.20",
			RefundLateFeePercent:   "0.50",
			RefundAdminPercent:     "0.10",
		},
		Quota: QuotaConfig{
			DefaultListingLimit: 1,
			SlotPriceAmount:     "50.00",
			SlotPriceCurrency:   "USD",
		},
		Sweep: SweepConfig{
			Interval:     time.Minute,
			BatchSize:    100,
			AutoConfirm:  true,
			AutoComplete: true,
		},
	}
}

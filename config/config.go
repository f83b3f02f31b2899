package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"launchpad/pkg/money"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Internal   InternalConfig
	Referral   ReferralConfig
	Payout     PayoutConfig
	Reconciler ReconcilerConfig
	Log        LogConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func (s ServerConfig) Production() bool { return s.Env == "production" }

type DatabaseConfig struct {
	Driver          string // mysql | postgres | sqlite
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	AccessSecret string
	AccessExpiry time.Duration
	Issuer       string
}

type LogConfig struct {
	Level string // debug | info | warn | error
}

// InternalConfig authenticates service-to-service calls (fee pipeline, vault webhooks).
type InternalConfig struct {
	ServiceToken string
}

// ReferralConfig holds the referral program knobs. Enabled and SharePercent
// are defaults; admins can override them at runtime through system settings.
type ReferralConfig struct {
	Enabled         bool
	SharePercent    int
	MinClaimAmount  money.Lamports
	ClaimCooldown   time.Duration
	ClaimLockTTL    time.Duration // lease on the per-user claim lock
	TransferTimeout time.Duration // caller-side bound on one payout call
	InstanceID      string        // identifies this process as claim lock owner
}

// SettleTimeout bounds the store writes that settle a claim once its
// transfer has returned.
const SettleTimeout = 15 * time.Second

// MaxInstanceIDLen caps INSTANCE_ID; it prefixes the claim lock owner.
const MaxInstanceIDLen = 64

// ClaimBudget is the longest one claim can take: the transfer, a status
// lookup after an uncertain outcome, then settlement.
func (r ReferralConfig) ClaimBudget() time.Duration {
	return 2*r.TransferTimeout + SettleTimeout
}

type PayoutConfig struct {
	Mode          string // stub | http
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	RatePerSecond int
}

type ReconcilerConfig struct {
	Enabled    bool
	Interval   time.Duration
	StaleAfter time.Duration
	BatchSize  int
}

// Load reads .env (if present) and the environment on top of defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	minClaim, err := money.Parse(getEnv("REFERRAL_MIN_CLAIM_AMOUNT", "0.01"))
	if err != nil {
		return nil, fmt.Errorf("REFERRAL_MIN_CLAIM_AMOUNT: %w", err)
	}
	hostname, _ := os.Hostname()

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8099"),
			Env:          getEnv("APP_ENV", "development"),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 2*time.Minute),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "mysql"),
			DSN:             getEnv("DATABASE_URL", "launchpad:launchpad@tcp(localhost:3306)/launchpad?charset=utf8mb4&parseTime=True&loc=UTC"),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: time.Hour,
		},
		JWT: JWTConfig{
			AccessSecret: getEnv("JWT_ACCESS_SECRET", "change-me-in-production"),
			AccessExpiry: getEnvDuration("JWT_ACCESS_EXPIRY", 24*time.Hour),
			Issuer:       getEnv("JWT_ISSUER", "launchpad"),
		},
		Internal: InternalConfig{
			ServiceToken: getEnv("SERVICE_TOKEN", ""),
		},
		Referral: ReferralConfig{
			Enabled:         getEnvBool("REFERRAL_ENABLED", true),
			SharePercent:    getEnvInt("REFERRAL_SHARE_PERCENT", 50),
			MinClaimAmount:  minClaim,
			ClaimCooldown:   time.Duration(getEnvInt("REFERRAL_CLAIM_COOLDOWN_SECONDS", 3600)) * time.Second,
			ClaimLockTTL:    getEnvDuration("REFERRAL_CLAIM_LOCK_TTL", 2*time.Minute),
			TransferTimeout: getEnvDuration("REFERRAL_TRANSFER_TIMEOUT", 45*time.Second),
			InstanceID:      getEnv("INSTANCE_ID", hostname),
		},
		Payout: PayoutConfig{
			Mode:          getEnv("PAYOUT_MODE", "stub"),
			BaseURL:       getEnv("PAYOUT_VAULT_URL", "http://localhost:8700"),
			APIKey:        getEnv("PAYOUT_VAULT_API_KEY", ""),
			Timeout:       getEnvDuration("PAYOUT_HTTP_TIMEOUT", 30*time.Second),
			RatePerSecond: getEnvInt("PAYOUT_RATE_PER_SECOND", 5),
		},
		Reconciler: ReconcilerConfig{
			Enabled:    getEnvBool("RECONCILER_ENABLED", true),
			Interval:   getEnvDuration("RECONCILER_INTERVAL", time.Minute),
			StaleAfter: getEnvDuration("RECONCILER_STALE_AFTER", 5*time.Minute),
			BatchSize:  getEnvInt("RECONCILER_BATCH_SIZE", 50),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
	return cfg, cfg.Validate()
}

// Validate checks the ranges the referral engine relies on.
func (c *Config) Validate() error {
	var errs []error
	r := c.Referral
	if r.SharePercent < 0 || r.SharePercent > 100 {
		errs = append(errs, fmt.Errorf("referral share percent %d outside 0-100", r.SharePercent))
	}
	if r.MinClaimAmount <= 0 {
		errs = append(errs, errors.New("referral min claim amount must be > 0"))
	}
	if r.ClaimCooldown < 0 {
		errs = append(errs, errors.New("referral claim cooldown must be >= 0"))
	}
	if r.ClaimLockTTL <= r.ClaimBudget() {
		errs = append(errs, fmt.Errorf("claim lock ttl %s must exceed claim budget %s (2 x transfer timeout + %s)",
			r.ClaimLockTTL, r.ClaimBudget(), SettleTimeout))
	}
	if c.Server.WriteTimeout > 0 && c.Server.WriteTimeout <= r.ClaimBudget() {
		errs = append(errs, fmt.Errorf("server write timeout %s must exceed claim budget %s", c.Server.WriteTimeout, r.ClaimBudget()))
	}
	switch {
	case r.InstanceID == "":
		errs = append(errs, errors.New("instance id is required"))
	case len(r.InstanceID) > MaxInstanceIDLen:
		errs = append(errs, fmt.Errorf("instance id is %d bytes, max %d", len(r.InstanceID), MaxInstanceIDLen))
	}
	if c.Reconciler.Enabled && c.Reconciler.StaleAfter <= r.ClaimLockTTL {
		errs = append(errs, fmt.Errorf("reconciler stale-after %s must exceed claim lock ttl %s", c.Reconciler.StaleAfter, r.ClaimLockTTL))
	}
	switch c.Payout.Mode {
	case "stub":
		if c.Server.Production() {
			errs = append(errs, errors.New("stub payout mode is not allowed in production"))
		}
	case "http":
		if c.Payout.BaseURL == "" || c.Payout.APIKey == "" {
			errs = append(errs, errors.New("http payout mode needs PAYOUT_VAULT_URL and PAYOUT_VAULT_API_KEY"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown payout mode %q", c.Payout.Mode))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return d
}

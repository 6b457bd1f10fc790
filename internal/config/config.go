package config

import (
	"slices"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	WhatsApp WhatsAppConfig `yaml:"whatsapp"`
	Approval ApprovalConfig `yaml:"approval"`
	Webhook  WebhookConfig  `yaml:"webhook"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"3000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// LockTimeout bounds waits on row locks, such as the item lock taken per reaction.
type DatabaseConfig struct {
	DSN              string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns         int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns         int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime  time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate      bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
	ConnectTimeout   time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"10s"`
	LockTimeout      time.Duration `yaml:"lock_timeout"       env:"DATABASE_LOCK_TIMEOUT"       env-default:"5s"`
	StatementTimeout time.Duration `yaml:"statement_timeout"  env:"DATABASE_STATEMENT_TIMEOUT"  env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// WhatsAppConfig holds Cloud API credentials and the sending identity.
type WhatsAppConfig struct {
	BaseURL       string        `yaml:"base_url"        env:"WHATSAPP_BASE_URL"     env-default:"https://graph.facebook.com"`
	APIVersion    string        `yaml:"api_version"     env:"WHATSAPP_API_VERSION"  env-default:"v20.0"`
	AccessToken   string        `yaml:"access_token"    env:"WHATSAPP_TOKEN"        env-required:"true"`
	PhoneNumberID string        `yaml:"phone_number_id" env:"PHONE_NUMBER_ID"       env-required:"true"`
	VerifyToken   string        `yaml:"verify_token"    env:"VERIFY_TOKEN"          env-required:"true"`
	HTTPTimeout   time.Duration `yaml:"http_timeout"    env:"WHATSAPP_HTTP_TIMEOUT" env-default:"30s"`
}

// ApprovalConfig holds the approval panel and the destination group.
type ApprovalConfig struct {
	// GroupID is the destination group; empty means finalize is aborted.
	GroupID        string `yaml:"group_id"        env:"GROUP_JID"`
	ApproversRaw   string `yaml:"approvers"       env:"APPROVER_NUMBERS"`
	RequiredHearts int    `yaml:"required_hearts" env:"REQUIRED_HEARTS" env-default:"4"`

	// Approvers is parsed from ApproversRaw during validation.
	Approvers []string `yaml:"-" env:"-"`
}

// WebhookConfig holds the asynchronous delivery processing settings.
type WebhookConfig struct {
	Workers        int           `yaml:"workers"         env:"WEBHOOK_WORKERS"          env-default:"4"`
	QueueSize      int           `yaml:"queue_size"      env:"WEBHOOK_QUEUE_SIZE"       env-default:"256"`
	EnqueueTimeout time.Duration `yaml:"enqueue_timeout" env:"WEBHOOK_ENQUEUE_TIMEOUT"  env-default:"5s"`
	MaxBodyBytes   int64         `yaml:"max_body_bytes"  env:"WEBHOOK_MAX_BODY_BYTES"   env-default:"8388608"`
	EventTimeout   time.Duration `yaml:"event_timeout"   env:"WEBHOOK_EVENT_TIMEOUT"    env-default:"2m"`
}

// MetricsConfig holds the Prometheus endpoint settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// IsApprover reports whether id is on the approver allow-list.
func (c ApprovalConfig) IsApprover(id string) bool {
	return slices.Contains(c.Approvers, id)
}

// HasGroup reports whether a destination group is configured.
func (c ApprovalConfig) HasGroup() bool {
	return c.GroupID != ""
}

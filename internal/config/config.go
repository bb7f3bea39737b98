package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/ottoncsilva/fluxo-mobili-sub002/internal/domain"
)

// Config is the full service configuration, loaded once at startup. Nothing
// downstream reads configuration ambiently; values are passed explicitly.
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	TeamService TeamServiceConfig `toml:"team_service"`
	Alerts      AlertsConfig      `toml:"alerts"`
	Workflow    WorkflowConfig    `toml:"workflow"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the lib/pq connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type TeamServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

type AlertsConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"` // cron spec for the SLA sweeper
}

// WorkflowConfig carries the static workflow step table. Steps are read-only
// application configuration, never edited at runtime.
type WorkflowConfig struct {
	Steps []StepConfig `toml:"steps"`
}

type StepConfig struct {
	ID              string `toml:"id"`
	Name            string `toml:"name"`
	OwnerRole       string `toml:"owner_role"`
	SLABusinessDays int    `toml:"sla_business_days"`
	Stage           int    `toml:"stage"`
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "fluxo-scheduling"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Alerts.Schedule == "" {
		cfg.Alerts.Schedule = "*/15 * * * *"
	}
	if cfg.TeamService.Timeout == 0 {
		cfg.TeamService.Timeout = 5
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}

	seen := make(map[string]struct{}, len(cfg.Workflow.Steps))
	for _, step := range cfg.Workflow.Steps {
		if step.ID == "" {
			return fmt.Errorf("config: workflow step with empty id")
		}
		if _, dup := seen[step.ID]; dup {
			return fmt.Errorf("config: duplicate workflow step id %q", step.ID)
		}
		seen[step.ID] = struct{}{}
		if step.SLABusinessDays < 0 {
			return fmt.Errorf("config: workflow step %q has negative SLA", step.ID)
		}
	}
	return nil
}

// WorkflowSteps converts the configured step table into domain values.
func (c *Config) WorkflowSteps() []domain.WorkflowStep {
	steps := make([]domain.WorkflowStep, len(c.Workflow.Steps))
	for i, s := range c.Workflow.Steps {
		steps[i] = domain.WorkflowStep{
			ID:              s.ID,
			Name:            s.Name,
			OwnerRole:       s.OwnerRole,
			SLABusinessDays: s.SLABusinessDays,
			Stage:           s.Stage,
		}
	}
	return steps
}

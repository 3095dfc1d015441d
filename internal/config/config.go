// Package config provides configuration management for the Gridiron Edge engine.
package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Engine    EngineConfig    `mapstructure:"engine" validate:"required"`
	Staking   StakingConfig   `mapstructure:"staking" validate:"required"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Metrics   MetricsConfig   `mapstructure:"metrics" validate:"required"`
	Health    HealthConfig    `mapstructure:"health"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host               string `mapstructure:"host" validate:"required"`
	Port               int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Name               string `mapstructure:"name" validate:"required"`
	User               string `mapstructure:"user" validate:"required"`
	Password           string `mapstructure:"password" validate:"required"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"required,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections" validate:"required,gt=0"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections" validate:"required,gt=0"`
}

// EngineConfig represents evaluation engine configuration
type EngineConfig struct {
	Workers               int `mapstructure:"workers" validate:"required,gt=0"`
	InjuryCacheTTLSeconds int `mapstructure:"injury_cache_ttl_seconds" validate:"gte=0"`
	// PositionValues overrides individual position table rows, keyed
	// "SPORT.POSITION.TIER", e.g. "NFL.QB.1": 7.5.
	PositionValues map[string]float64 `mapstructure:"position_values"`
}

// StakingConfig represents stake sizing configuration
type StakingConfig struct {
	KellyMultiplier float64 `mapstructure:"kelly_multiplier" validate:"required,gt=0,lte=1"`
	MaxStakePercent float64 `mapstructure:"max_stake_percent" validate:"required,gt=0,lte=0.1"`
	AmericanOdds    int     `mapstructure:"american_odds" validate:"required"`
	InitialBankroll float64 `mapstructure:"initial_bankroll" validate:"required,gt=0"`
}

// SchedulerConfig represents cron schedules for the long-running mode
type SchedulerConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	EvaluationCron string `mapstructure:"evaluation_cron"`
	RatingSyncCron string `mapstructure:"rating_sync_cron"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// HealthConfig represents the health check server configuration
type HealthConfig struct {
	Port string `mapstructure:"port"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string        `mapstructure:"environment"`
	Server      ServerConfig  `mapstructure:"server"`
	Storage     StorageConfig `mapstructure:"storage"`
	Logger      LoggerConfig  `mapstructure:"logger"`
	Game        GameConfig    `mapstructure:"game"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`
}

// StorageConfig contains durable store settings. The sqlite driver keeps
// everything in a single local file; postgres is for hosted deployments.
type StorageConfig struct {
	Driver          string        `mapstructure:"driver"`
	Path            string        `mapstructure:"path"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// GameConfig contains the fixed wager parameters. Amounts are whole coins.
type GameConfig struct {
	BaseCost         int           `mapstructure:"baseCost"`
	MaxMultiplier    int           `mapstructure:"maxMultiplier"`
	StartingBalance  int           `mapstructure:"startingBalance"`
	RevealDuration   time.Duration `mapstructure:"revealDuration"`
	LeaderboardLimit int           `mapstructure:"leaderboardLimit"`
}

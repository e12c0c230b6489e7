package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
	"../.env",
	"../../.env",
}

// LoadConfig loads configuration from the environment-named YAML file, with
// SKYLAR_-prefixed environment variables overriding individual keys.
func LoadConfig() (*Config, error) {
	loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine, the defaults describe a working
		// local setup; a malformed file is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("SKYLAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	config.Environment = env

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in the search paths
func loadDotEnvFile() {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

func getEnvironment() string {
	env := os.Getenv("SKYLAR_ENVIRONMENT")
	switch env {
	case Development, Production, Test:
		return env
	default:
		return Development
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", "15s")
	v.SetDefault("server.writeTimeout", "15s")
	v.SetDefault("server.idleTimeout", "60s")
	v.SetDefault("server.readHeaderTimeout", "10s")
	v.SetDefault("server.shutdownTimeout", "10s")

	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.path", "skylar.db")
	v.SetDefault("storage.port", 5432)
	v.SetDefault("storage.sslMode", "disable")
	v.SetDefault("storage.maxOpenConns", 10)
	v.SetDefault("storage.maxIdleConns", 5)
	v.SetDefault("storage.connMaxLifetime", "30m")

	v.SetDefault("logger.level", "info")

	v.SetDefault("game.baseCost", 10)
	v.SetDefault("game.maxMultiplier", 5)
	v.SetDefault("game.startingBalance", 1000)
	v.SetDefault("game.revealDuration", "5s")
	v.SetDefault("game.leaderboardLimit", 100)
}

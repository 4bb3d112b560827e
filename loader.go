package rediskit

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	rediserrors "github.com/kbukum/rediskit/errors"
)

// Environment variable names read by FromEnv and Load.
const (
	EnvAddr     = "REDIS_ADDR"
	EnvPort     = "REDIS_PORT"
	EnvPassword = "REDIS_PASSWORD"
	EnvDB       = "REDIS_DB"
)

// FromEnv builds a validated Config from environment variables. When envFile
// names an existing .env file it is loaded first; variables already set in
// the process environment win over the file.
//
// REDIS_ADDR and REDIS_PORT are required; REDIS_PASSWORD and REDIS_DB are
// optional. No connection attempt is made.
func FromEnv(envFile string) (Config, error) {
	loadEnvFile(envFile)

	host := os.Getenv(EnvAddr)
	if host == "" {
		return Config{}, rediserrors.MissingConfig(EnvAddr)
	}

	portStr := os.Getenv(EnvPort)
	if portStr == "" {
		return Config{}, rediserrors.MissingConfig(EnvPort)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return Config{}, rediserrors.InvalidConfig(EnvPort, fmt.Sprintf("must be a valid integer, got %q", portStr))
	}

	cfg := Config{
		Host:     host,
		Port:     port,
		Password: os.Getenv(EnvPassword),
	}

	if dbStr := os.Getenv(EnvDB); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return Config{}, rediserrors.InvalidConfig(EnvDB, fmt.Sprintf("must be a valid integer, got %q", dbStr))
		}
		cfg.DB = db
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load builds a validated Config from an optional YAML config file layered
// under the environment. File values act as the base, environment variables
// override them.
func Load(configFile, envFile string) (Config, error) {
	loadEnvFile(envFile)

	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, rediserrors.InvalidConfig("config_file", err.Error()).WithCause(err)
		}
	}

	bindEnv(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, rediserrors.InvalidConfig("config_file", "failed to unmarshal").WithCause(err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadEnvFile(envFile string) {
	if envFile == "" {
		return
	}
	if _, err := os.Stat(envFile); err != nil {
		return
	}
	// godotenv never overrides variables already present in the environment
	_ = godotenv.Load(envFile)
}

func bindEnv(v *viper.Viper) {
	// explicit bindings: the env surface predates this module and does not
	// follow a single prefix convention
	_ = v.BindEnv("host", EnvAddr)
	_ = v.BindEnv("port", EnvPort)
	_ = v.BindEnv("password", EnvPassword)
	_ = v.BindEnv("db", EnvDB)
}

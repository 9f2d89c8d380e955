package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type EnvConfig map[string]string

var defaults = EnvConfig{
	"DB_DRIVER":    "pgx",
	"DATABASE_URL": "postgresql://localhost/learnapp?sslmode=disable",
	"REDIS_ADDR":   "redis://localhost:6379/0",
	"MONGODB_URI":  "mongodb://localhost:27017",
	"MONGODB_DB":   "learnapp",
	"SECRET_KEY":   "",
	"LOG_LEVEL":    "info",
	"LISTEN_ADDR":  ":8080",
	"PUBLIC_URL":   "http://localhost:8080",
	"ACCESS_TTL":   "1h",
	"SESSION_TTL":  "2160h",
	"BLOB_TIMEOUT": "10s",
}

// readConfig merges the defaults, the .env file and the process environment,
// later sources winning.
func readConfig(envFile string) EnvConfig {
	cfg := EnvConfig{}
	for k, v := range defaults {
		cfg[k] = v
	}

	env, err := godotenv.Read(envFile)
	if err != nil {
		log.Printf("config: no %s file, using environment only", envFile)
	}
	for k, v := range env {
		cfg[k] = v
	}

	for k := range cfg {
		if v, ok := os.LookupEnv(k); ok {
			cfg[k] = v
		}
	}
	return cfg
}

// Duration reads a duration key, falling back to the default on bad input.
func (cfg EnvConfig) Duration(key string) time.Duration {
	d, err := time.ParseDuration(cfg[key])
	if err != nil {
		log.Printf("config: bad %s %q, using %s", key, cfg[key], defaults[key])
		d, _ = time.ParseDuration(defaults[key])
	}
	return d
}

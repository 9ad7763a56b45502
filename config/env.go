package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvConfig holds settings read from the environment (and an optional .env file)
type EnvConfig struct {
	LogLevel   string
	LogFile    string // empty = default sink for the binary
	WordsPath  string // empty = embedded vocabulary
	StartLevel int    // 0 = not set
	Seed       uint64
	HasSeed    bool
}

// LoadEnv reads .env (if present) and the TYPEFALL_* variables.
func LoadEnv() EnvConfig {
	_ = godotenv.Load()

	env := EnvConfig{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFile:   os.Getenv("TYPEFALL_LOG_FILE"),
		WordsPath: os.Getenv("TYPEFALL_WORDS"),
	}
	if lvl, err := strconv.Atoi(os.Getenv("TYPEFALL_LEVEL")); err == nil {
		env.StartLevel = lvl
	}
	if seed, err := strconv.ParseUint(os.Getenv("TYPEFALL_SEED"), 10, 64); err == nil {
		env.Seed = seed
		env.HasSeed = true
	}
	return env
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
	EnvLocale    = "FORMCHECK_LOCALE"
	EnvPretty    = "FORMCHECK_PRETTY"
)

// DefaultEnvFiles are read in order when present; a later file never
// overrides a variable that is already set.
var DefaultEnvFiles = []string{".env", ".env.local"}

// LoadEnv loads the env files that exist and returns how many were read.
func LoadEnv(files []string) (int, error) {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if info, err := os.Stat(f); err == nil && !info.IsDir() {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads .env.local first, then .env. godotenv never overrides
// a variable that is already set, so the OS environment always wins and
// .env.local shadows .env. Returns the files that were applied.
func LoadDotEnv() []string {
	var applied []string
	for _, name := range []string{".env.local", ".env"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err == nil {
			applied = append(applied, name)
		}
	}
	return applied
}

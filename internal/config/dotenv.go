package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads the newsroom env files, .env.local before .env.
// godotenv never overwrites variables that are already set, so real OS
// environment wins over both files and .env.local wins over .env.
// Returns the files that were found and loaded.
func LoadDotEnv() []string {
	var found []string
	for _, name := range []string{".env.local", ".env"} {
		if _, err := os.Stat(name); err == nil {
			found = append(found, name)
		}
	}
	if len(found) > 0 {
		_ = godotenv.Load(found...)
	}
	return found
}

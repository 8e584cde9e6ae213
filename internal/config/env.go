package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads the first existing .env file. Variables already set in
// the process environment win.
func loadEnvFile() error {
	for _, path := range envFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		fmt.Fprintf(os.Stderr, "Loaded environment variables from %s\n", path)
		return nil
	}
	return errors.New("no .env file found")
}

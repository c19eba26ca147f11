package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config reads an environment variable, loading .env on first use.
func Config(key string) string {
	loadOnce.Do(func() {
		godotenv.Load(".env")
	})
	return os.Getenv(key)
}

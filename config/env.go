package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from .env files without overriding ones already
// set. With no paths it tries ".env" in the working directory. Missing
// files are skipped; unreadable or malformed ones are errors.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Debug("env file not found", slog.String("path", p))
				continue
			}
			return fmt.Errorf("load env %s: %w", p, err)
		}
		slog.Debug("loaded env file", slog.String("path", p))
	}
	return nil
}

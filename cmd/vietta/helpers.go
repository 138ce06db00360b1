package main

import (
	"fmt"
	"os"

	"github.com/at-ishikawa/vietta/internal/config"
)

// configFileEnv names the environment variable holding an explicit config file path
const configFileEnv = "VIETTA_CONFIG"

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(os.Getenv(configFileEnv))
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

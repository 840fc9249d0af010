package config

import (
	"errors"
	"fmt"
	"io/fs"
	"messageboard/internal/models"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads an optional .env file, then fills the config from the process
// environment. Variables already set in the environment win over .env.
func Load() (*models.ConfigFile, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return FromEnviron()
}

func FromEnviron() (*models.ConfigFile, error) {
	var cfg models.ConfigFile
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return &cfg, nil
}

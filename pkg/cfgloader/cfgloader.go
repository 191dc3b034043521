// Package cfgloader loads and validates service configuration at startup.
package cfgloader

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvProduction = "production"
	EnvStaging    = "staging"
	EnvDev        = "dev"
	EnvLocal      = "local"
	EnvTest       = "test"
)

// MustLoad loads configuration from ./config/${ENVIRONMENT}.yaml, expands
// environment variable references in the file, applies `default` struct tags
// and validates the result with `validate` struct tags.
//
// The process exits with a diagnostic message on any failure: configuration
// problems are never recoverable at runtime.
func MustLoad[T any]() T {
	var config T

	if reflect.ValueOf(config).Kind() == reflect.Ptr {
		fail("config type must not be a pointer")
	}

	_ = godotenv.Load()

	env := os.Getenv("ENVIRONMENT")
	if !slices.Contains([]string{EnvProduction, EnvStaging, EnvDev, EnvLocal, EnvTest}, env) {
		fail("ENVIRONMENT env variable is not set or invalid. Choices are: production, staging, dev, local, test")
	}

	path := fmt.Sprintf("./config/%s.yaml", env)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		fail(fmt.Sprintf("config file not found at %s - a yaml file must exist for each environment", path))
	}
	if err != nil {
		fail(fmt.Sprintf("failed to read config file %s: %v", path, err))
	}

	data = []byte(os.ExpandEnv(string(data)))

	if err := yaml.Unmarshal(data, &config); err != nil {
		fail(fmt.Sprintf("failed to unmarshal %s config file: %v", env, err))
	}

	if err := defaults.Set(&config); err != nil {
		fail(fmt.Sprintf("failed to set default config values: %v", err))
	}

	validate(&config, env)

	return config
}

func validate(config any, env string) {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.Struct(config)
	if err == nil {
		return
	}

	failedFields := make([]string, 0)
	if errs, ok := err.(validator.ValidationErrors); ok { //nolint:errorlint // validator returns its own error slice
		for _, fieldErr := range errs {
			tagErr := fieldErr.Tag()
			if fieldErr.Param() != "" {
				tagErr += fmt.Sprintf("=%s", fieldErr.Param())
			}
			failedFields = append(failedFields, fmt.Sprintf("%s: %s", fieldErr.Namespace(), tagErr))
		}
	}

	if len(failedFields) > 0 {
		fail(fmt.Sprintf("invalid fields in %s config -> %s", env, strings.Join(failedFields, ",  ")))
	}
}

func fail(msg string) {
	slog.Error("[cfgloader]: " + msg)
	os.Exit(1)
}

// Package config defines the service configuration.
package config

import (
	"github.com/rise-and-shine/filevault/internal/bucketstore"
	"github.com/rise-and-shine/filevault/pkg/logger"
	"github.com/rise-and-shine/filevault/pkg/pg"
	"github.com/rise-and-shine/filevault/pkg/server"
)

// Config is the root configuration loaded from ./config/${ENVIRONMENT}.yaml.
type Config struct {
	ServiceName    string `yaml:"service_name"    default:"filevault"`
	ServiceVersion string `yaml:"service_version" default:"0.1.0"`

	Logger  logger.Config      `yaml:"logger"`
	HTTP    server.Config      `yaml:"http_server"`
	PG      pg.Config          `yaml:"postgres"`
	Storage bucketstore.Config `yaml:"storage"`
}

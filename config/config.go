// Package config provide process configuration and named package loggers.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config contains basic process configuration.
type Config struct {
	// BackendPort is the HTTP service listen port.
	BackendPort int64

	// WorkDir hosts per-request output directories of the HTTP service.
	// Empty means the system temporary directory.
	WorkDir string

	LoggingLevel string
}

// SetupConfig read config from environment, falling back to defaults.
func SetupConfig() *Config {
	conf := getDefaultConfig()

	port := os.Getenv("VOXPHANTOM_PORT")
	if port != "" {
		portNumber, numberErr := strconv.ParseInt(port, 10, 64)
		if numberErr != nil {
			log.Errorf("[config] Port is not a number. %s", numberErr.Error())
		} else {
			conf.BackendPort = portNumber
		}
	}

	workDir := os.Getenv("VOXPHANTOM_WORKDIR")
	if workDir != "" {
		conf.WorkDir = workDir
	}

	level := os.Getenv("VOXPHANTOM_LOGGING_LEVEL")
	if level != "" {
		conf.LoggingLevel = level
	}

	return conf
}

// Validate checks configuration values.
func (c *Config) Validate() error {
	level := strings.ToLower(c.LoggingLevel)
	if !validLoggingLevel(level) {
		return fmt.Errorf(
			"invalid logging level %q, expected one of: %s",
			c.LoggingLevel, availableLoggingLevelsString,
		)
	}
	c.LoggingLevel = level

	if c.BackendPort < 1000 || c.BackendPort > 65535 {
		return fmt.Errorf("invalid port number %d", c.BackendPort)
	}
	return nil
}

func getDefaultConfig() *Config {
	return &Config{
		BackendPort:  3001,
		WorkDir:      "",
		LoggingLevel: "info",
	}
}

var availableLoggingLevels = []string{"panic", "fatal", "error", "warn", "info", "debug"}
var availableLoggingLevelsString = strings.Join(availableLoggingLevels, ", ")

func validLoggingLevel(loggingLevel string) bool {
	for _, level := range availableLoggingLevels {
		if level == loggingLevel {
			return true
		}
	}
	return false
}

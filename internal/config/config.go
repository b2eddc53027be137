// Package config wires viper-backed configuration for the otq CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/tskir/opentargets-test/internal/debug"
	"github.com/tskir/opentargets-test/internal/opentargets"
	"github.com/tskir/opentargets-test/internal/retry"
)

var v *viper.Viper

// Initialize sets up the viper configuration singleton.
// Should be called once at application startup.
func Initialize() error {
	v = viper.New()
	v.SetConfigType("yaml")

	// Explicitly locate config.yaml.
	// Precedence: ~/.config/otq/config.yaml > ~/.otq/config.yaml
	configFileSet := false
	if configDir, err := os.UserConfigDir(); err == nil {
		configPath := filepath.Join(configDir, "otq", "config.yaml")
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			configFileSet = true
		}
	}
	if !configFileSet {
		if homeDir, err := os.UserHomeDir(); err == nil {
			configPath := filepath.Join(homeDir, ".otq", "config.yaml")
			if _, err := os.Stat(configPath); err == nil {
				v.SetConfigFile(configPath)
				configFileSet = true
			}
		}
	}

	// Automatic environment variable binding.
	// Environment variables take precedence over the config file,
	// e.g. OT_API_ENDPOINT, OT_RETRY_ATTEMPTS, OT_HTTP_TIMEOUT.
	v.SetEnvPrefix("OT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("api-endpoint", opentargets.DefaultAPIEndpoint)
	v.SetDefault("http-timeout", "30s")
	v.SetDefault("page-size", opentargets.DefaultPageSize)

	v.SetDefault("retry.attempts", retry.DefaultAttempts)
	v.SetDefault("retry.initial-delay", "5s")
	v.SetDefault("retry.multiplier", retry.DefaultMultiplier)
	v.SetDefault("retry.jitter-min", "1s")
	v.SetDefault("retry.jitter-max", "3s")

	if configFileSet {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
		debug.Logf("loaded config from %s", v.ConfigFileUsed())
	} else {
		debug.Logf("no config.yaml found; using defaults and environment variables")
	}

	return nil
}

// APIEndpoint returns the association filter endpoint URL.
func APIEndpoint() string {
	if v == nil {
		return opentargets.DefaultAPIEndpoint
	}
	return v.GetString("api-endpoint")
}

// HTTPTimeout returns the per-request HTTP timeout.
func HTTPTimeout() time.Duration {
	if v == nil {
		return opentargets.DefaultTimeout
	}
	return v.GetDuration("http-timeout")
}

// PageSize returns how many records to request per API page.
func PageSize() int {
	if v == nil {
		return opentargets.DefaultPageSize
	}
	return v.GetInt("page-size")
}

// RetryPolicy builds the retry policy from configuration.
func RetryPolicy() retry.Policy {
	if v == nil {
		return retry.DefaultPolicy()
	}
	return retry.Policy{
		Attempts:     v.GetInt("retry.attempts"),
		InitialDelay: v.GetDuration("retry.initial-delay"),
		Multiplier:   v.GetFloat64("retry.multiplier"),
		JitterMin:    v.GetDuration("retry.jitter-min"),
		JitterMax:    v.GetDuration("retry.jitter-max"),
	}
}

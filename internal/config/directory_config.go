package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
	"strings"
)

// DirectoryConfig points the app at the hosted account directory that owns
// credentials, sessions and password resets.
type DirectoryConfig struct {
	URL                  string  `mapstructure:"url"`
	APIKey               string  `mapstructure:"api_key"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second"`
	OAuthRedirectURL     string  `mapstructure:"oauth_redirect_url"`
}

func (config DirectoryConfig) validate() error {

	var missingFields []string

	if config.URL == "" {
		missingFields = append(missingFields, "url")
	}

	if config.APIKey == "" {
		missingFields = append(missingFields, "api_key")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingFields, ", "))
	}

	return nil
}

func (config DirectoryConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("directory.url", "DIRECTORY_URL"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("directory.api_key", "DIRECTORY_API_KEY"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("directory.oauth_redirect_url", "DIRECTORY_OAUTH_REDIRECT_URL"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}

func createMultiError(errs []error) error {
	return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
}

package config

import (
	"fmt"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	Mode        string `mapstructure:"mode"`
}

func (config ServerConfig) validate() error {

	if config.Port == 0 {
		return fmt.Errorf("missing variable: server port")
	}

	if config.Port == config.MetricsPort {
		return fmt.Errorf("server port and metrics port must differ")
	}

	return nil
}

func (config ServerConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("server.port", "PORT"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("server.metrics_port", "METRICS_PORT"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("server.mode", "GIN_MODE"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}

// Package config wires viper defaults, GOLODASH_* environment variables and
// an optional golodash.toml file.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dlshle/golodash/errors"
	"github.com/dlshle/golodash/logging"
	"github.com/dlshle/golodash/logging/contrib"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	Name      = "golodash"
	EnvPrefix = "GOLODASH"
)

var EnvKeyReplacer = strings.NewReplacer(".", "_")

func Setup() error {
	viper.SetConfigName(Name)
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", Name))
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.AutomaticEnv()

	viper.SetTypeByDefaultValue(true)
	for name, value := range Default {
		viper.SetDefault(name, value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return errors.WrapWithStackTrace(err)
	}
	return nil
}

// Logger builds the logger described by the current configuration. An
// unknown level falls back to INFO, an unknown backend to console.
func Logger(out io.Writer) logging.Logger {
	level, err := logging.ParseLevel(viper.GetString(LogLevel))
	if err != nil {
		level = logging.INFO
	}
	return logging.CreateLevelLogger(writer(out), "["+Name+"]", level)
}

func writer(out io.Writer) logging.LogWriter {
	asJSON := viper.GetBool(LogJSON)
	if viper.GetString(LogBackend) == BackendLogrus {
		l := logrus.New()
		l.SetOutput(out)
		l.SetLevel(logrus.TraceLevel)
		if asJSON {
			l.SetFormatter(&logrus.JSONFormatter{})
		} else {
			l.SetFormatter(&logrus.TextFormatter{DisableColors: true})
		}
		return contrib.NewLogrusWriter(l)
	}
	if asJSON {
		return logging.NewlineSeparatedJSONWriter(out)
	}
	return logging.NewConsoleLogWriter(out)
}

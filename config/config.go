// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vodo-app/vodo/constant"
	"github.com/vodo-app/vodo/filesystem"
	"github.com/vodo-app/vodo/key"
	"github.com/vodo-app/vodo/where"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// ServerModes lists the accepted values of the server.mode key.
var ServerModes = []string{"debug", "release", "test"}

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	viper.SetConfigName(constant.Vodo)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Vodo)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return Validate()
}

// Validate reports the first configured value that the application cannot run with.
func Validate() error {
	if u, err := url.Parse(viper.GetString(key.CatalogBaseURL)); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s: invalid catalog url %q", key.CatalogBaseURL, viper.GetString(key.CatalogBaseURL))
	}

	if mode := viper.GetString(key.ServerMode); !lo.Contains(ServerModes, mode) {
		return fmt.Errorf("%s: unknown mode %q, expected one of %s", key.ServerMode, mode, strings.Join(ServerModes, ", "))
	}

	if viper.GetInt(key.NetworkTimeout) < 0 {
		return fmt.Errorf("%s: timeout must not be negative", key.NetworkTimeout)
	}

	return nil
}

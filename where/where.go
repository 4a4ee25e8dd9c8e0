// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/vodo-app/vodo/constant"
	"github.com/vodo-app/vodo/filesystem"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "VODO_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// The path can be overridden with the VODO_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Vodo))
}

// Cache resolves the absolute path to the application's cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Vodo))
}

// Logs resolves the absolute path to the directory used for application logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// ConfigFile resolves the path of the TOML configuration file inside Config.
func ConfigFile() string {
	return filepath.Join(Config(), constant.Vodo+".toml")
}

// Version resolves the path of the cached latest-release lookup.
func Version() string {
	return filepath.Join(Cache(), "version.json")
}

// Queries resolves the path of the search history.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

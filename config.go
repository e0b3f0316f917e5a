package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	c "git.cmcode.dev/cmcode/finance-manager-tui/constants"
	m "git.cmcode.dev/cmcode/finance-manager-tui/models"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Attempts to load from a specific location, if possible.
//
// The first return value is the populated config, if one was found and parsed.
// The second return value is a string that indicates the properly loaded path
// that successfully loaded the config (if it didn't succeed, it will be an
// empty string). The third return value is an error, if present.
//
// The "t" parameter is the map of translations.
func loadConfFrom(file string, t map[string]string) (m.Config, string, error) {
	conf := m.Config{}

	b, err := os.ReadFile(file)
	if err != nil {
		return conf, "", fmt.Errorf("%v %v: %w", t["ConfigFailedToLoadConfig"], file, err)
	}

	err = yaml.Unmarshal(b, &conf)
	if err != nil {
		return conf, "", fmt.Errorf("%v %v: %w", t["ConfigFailedToUnmarshalConfig"], file, err)
	}

	return conf, file, nil
}

func loadConfFromEmbed(file string, emb fs.FS, t map[string]string) (m.Config, string, error) {
	conf := m.Config{}

	b, err := fs.ReadFile(emb, file)
	if err != nil {
		return conf, "", fmt.Errorf("%v %v: %w", t["ConfigFailedToLoadEmbeddedConfig"], file, err)
	}

	err = yaml.Unmarshal(b, &conf)
	if err != nil {
		return conf, "", fmt.Errorf("%v %v: %w", t["ConfigFailedToUnmarshalEmbeddedConfig"], file, err)
	}

	return conf, file, nil
}

func fileExists(name string) (bool, error) {
	_, err := os.Stat(name)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// Attempts to load from the "file" path provided - if not successful,
// attempts to load from the xdg config dir, and finally falls back to the
// embedded example config.
//
// The first return value is the populated config. The second return value is
// the path the config was loaded from; when the embedded example is used it is
// the xdg config path, where the user is expected to put their own. The third
// return value is an error, if present.
//
// The "t" parameter is the map of translations.
func loadConfig(file string, t map[string]string, exampleConf fs.FS) (m.Config, string, error) {
	if file == "" {
		file = c.DefaultConfig
	}

	var conf m.Config

	// create the XDG config dir for this application once upon startup
	xdgConfigDir := path.Join(xdg.ConfigHome, c.DefaultConfigParentDir)

	err := os.MkdirAll(xdgConfigDir, 0o755)
	if err != nil {
		return conf, file, fmt.Errorf("failed to make all directories %v: %w", xdgConfigDir, err)
	}

	xdgConfig := path.Join(xdgConfigDir, c.DefaultConfig)

	for _, candidate := range []string{file, xdgConfig} {
		exists, err := fileExists(candidate)
		if err != nil {
			return conf, candidate, fmt.Errorf("failed to check if file %v exists: %w", candidate, err)
		}

		if !exists {
			continue
		}

		loaded, from, err := loadConfFrom(candidate, t)
		if err != nil {
			return loaded, candidate, fmt.Errorf("failed to load config from existing config file %v: %w", candidate, err)
		}

		return loaded, from, nil
	}

	conf, _, err = loadConfFromEmbed("example.yml", exampleConf, t)
	if err != nil {
		return conf, xdgConfig, fmt.Errorf("failed to load config from template config: %w", err)
	}

	return conf, xdgConfig, nil
}

// applyFlags lets command line flags override values from the config file.
func applyFlags(conf *m.Config, f Flags) {
	if f.DatabaseFile != "" {
		conf.DatabaseFile = f.DatabaseFile
	}

	if f.Theme != "" {
		conf.Theme = f.Theme
	}
}

// processConfig rejects out of range values and fills in defaults for
// anything the config leaves empty. Use it after loadConfig and applyFlags.
func processConfig(conf *m.Config) error {
	if conf == nil {
		return errors.New("config is nil")
	}

	err := validator.New().Struct(conf)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if conf.Version == "" {
		conf.Version = c.ConfigVersion
	}

	if conf.CurrencySymbol == "" {
		conf.CurrencySymbol = c.DefaultCurrencySymbol
	}

	if conf.LogLevel == "" {
		conf.LogLevel = c.DefaultLogLevel
	}

	if conf.DatabaseFile == "" {
		conf.DatabaseFile, err = xdg.DataFile(path.Join(c.DefaultConfigParentDir, c.DefaultDatabaseFile))
		if err != nil {
			return fmt.Errorf("failed to resolve database path: %w", err)
		}
	}

	if conf.LogFile == "" {
		conf.LogFile, err = xdg.StateFile(path.Join(c.DefaultConfigParentDir, c.DefaultLogFile))
		if err != nil {
			return fmt.Errorf("failed to resolve log path: %w", err)
		}
	}

	if conf.Keybindings == nil {
		conf.Keybindings = make(map[string][]string)
	}

	return nil
}

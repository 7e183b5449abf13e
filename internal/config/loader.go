package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/gatectl"
	projectConfigDir = ".gatectl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the gatectl configuration by layering default, user, and
// project settings. Missing files are not errors; malformed ones are.
func LoadConfig() (GatectlConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return GatectlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return GatectlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func loadConfigFromFile(filePath string) (GatectlConfig, error) {
	var config GatectlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return GatectlConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return GatectlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Only fields the
// overlay actually sets override the base.
func mergeConfigs(base, overlay GatectlConfig) GatectlConfig {
	merged := base

	if overlay.Gateway.Address != "" {
		merged.Gateway.Address = overlay.Gateway.Address
	}
	if overlay.Launch.DelayMillis != 0 {
		merged.Launch.DelayMillis = overlay.Launch.DelayMillis
	}
	if overlay.Launch.DefaultBackend != "" {
		merged.Launch.DefaultBackend = overlay.Launch.DefaultBackend
	}
	if overlay.Launch.BrowserCommand != "" {
		merged.Launch.BrowserCommand = overlay.Launch.BrowserCommand
	}
	if overlay.History.Path != "" {
		merged.History.Path = overlay.History.Path
	}
	if overlay.History.Disabled {
		merged.History.Disabled = true
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path.
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// DefaultHistoryPath returns where the launch history database lives when
// the config does not name one.
func DefaultHistoryPath() (string, error) {
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

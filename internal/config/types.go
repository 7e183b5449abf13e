package config

import "time"

// GatectlConfig is the top-level configuration structure for gatectl.
type GatectlConfig struct {
	Gateway GatewaySettings `yaml:"gateway"`
	Launch  LaunchSettings  `yaml:"launch"`
	History HistorySettings `yaml:"history"`
}

// GatewaySettings describes the proxy gateway targets are opened through.
type GatewaySettings struct {
	// Address is the base address of the gateway, e.g. "http://localhost:8080".
	Address string `yaml:"address,omitempty"`
}

// LaunchSettings controls how submissions are turned into navigations.
type LaunchSettings struct {
	// DelayMillis is the pause between accepting a submission and
	// launching it, in milliseconds.
	DelayMillis int `yaml:"delayMillis,omitempty"`
	// DefaultBackend selects the backend preselected at startup:
	// "scramjet" or "ultraviolet".
	DefaultBackend string `yaml:"defaultBackend,omitempty"`
	// BrowserCommand overrides the platform browser launcher, e.g. "firefox".
	BrowserCommand string `yaml:"browserCommand,omitempty"`
}

// HistorySettings controls the launch history store.
type HistorySettings struct {
	// Path is the SQLite database file. Empty means the default location
	// under the user config dir.
	Path string `yaml:"path,omitempty"`
	// Disabled turns off history recording entirely.
	Disabled bool `yaml:"disabled,omitempty"`
}

// Delay returns the launch delay as a duration.
func (l LaunchSettings) Delay() time.Duration {
	return time.Duration(l.DelayMillis) * time.Millisecond
}

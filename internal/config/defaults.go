package config

// GetDefaultConfig returns the configuration gatectl starts from before any
// config file is layered on top.
func GetDefaultConfig() GatectlConfig {
	return GatectlConfig{
		Gateway: GatewaySettings{
			Address: "http://localhost:8080",
		},
		Launch: LaunchSettings{
			DelayMillis:    450,
			DefaultBackend: "scramjet",
		},
	}
}

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gatectl/internal/config"
	"gatectl/internal/gateway"
	"gatectl/internal/history"
	"gatectl/internal/nav"
	"gatectl/internal/submit"
	"gatectl/internal/tui"
	"gatectl/pkg/logging"
)

var (
	launchGatewayAddr string
	launchBackend     string
	launchDelayMillis int
	launchNoHistory   bool
	launchDebug       bool
)

func newLaunchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Open the interactive launcher",
		Long: `Opens the interactive launcher TUI. Type a destination URL, switch
between the ScramJet and Ultraviolet backends with tab, and press enter to
open the destination through the gateway. Destinations without a scheme get
https:// prepended.

Flags override the config file (~/.config/gatectl/config.yaml, then
./.gatectl/config.yaml), which overrides built-in defaults.`,
		Args: cobra.NoArgs,
		RunE: runLaunch,
	}

	cmd.Flags().StringVar(&launchGatewayAddr, "gateway", "", "base address of the proxy gateway (e.g. http://localhost:8080)")
	cmd.Flags().StringVar(&launchBackend, "backend", "", "backend selected at startup: scramjet or ultraviolet")
	cmd.Flags().IntVar(&launchDelayMillis, "delay", 0, "launch delay in milliseconds")
	cmd.Flags().BoolVar(&launchNoHistory, "no-history", false, "do not record launches")
	cmd.Flags().BoolVar(&launchDebug, "debug", false, "show debug entries in the activity log")

	return cmd
}

func runLaunch(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyLaunchFlags(&cfg)

	backend, err := gateway.ParseBackend(cfg.Launch.DefaultBackend)
	if err != nil {
		return err
	}

	level := logging.LevelInfo
	if launchDebug {
		level = logging.LevelDebug
	}
	logChan := logging.InitForTUI(level)
	defer logging.CloseTUIChannel()

	var store *history.Store
	if !cfg.History.Disabled {
		path := cfg.History.Path
		if path == "" {
			path, err = config.DefaultHistoryPath()
			if err != nil {
				return fmt.Errorf("resolving history path: %w", err)
			}
		}
		store, err = history.Open(path)
		if err != nil {
			// A broken history file should not keep the launcher from
			// starting.
			logging.Warn("Launch", "history disabled: %v", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	navigator := &nav.Desktop{
		GatewayAddr:    cfg.Gateway.Address,
		BrowserCommand: cfg.Launch.BrowserCommand,
	}
	ctrl := submit.New(navigator,
		submit.WithBackend(backend),
		submit.WithDelay(cfg.Launch.Delay()),
	)

	p := tui.NewProgram(cfg, ctrl, store, logChan)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running launcher: %w", err)
	}
	return nil
}

func applyLaunchFlags(cfg *config.GatectlConfig) {
	if launchGatewayAddr != "" {
		cfg.Gateway.Address = launchGatewayAddr
	}
	if launchBackend != "" {
		cfg.Launch.DefaultBackend = launchBackend
	}
	if launchDelayMillis > 0 {
		cfg.Launch.DelayMillis = launchDelayMillis
	}
	if launchNoHistory {
		cfg.History.Disabled = true
	}
	if cfg.Launch.DelayMillis <= 0 {
		cfg.Launch.DelayMillis = int(submit.DefaultDelay / time.Millisecond)
	}
}

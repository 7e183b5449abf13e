package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gatectl/internal/config"
	"gatectl/internal/history"
	"gatectl/pkg/logging"
)

var historyLimit int

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent launches",
		Long:  `Lists launches recorded by the interactive launcher, newest first.`,
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}
	cmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of launches to show (0 = all)")
	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	logging.InitForCLI(logging.LevelInfo, os.Stderr)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	path := cfg.History.Path
	if path == "" {
		path, err = config.DefaultHistoryPath()
		if err != nil {
			return fmt.Errorf("resolving history path: %w", err)
		}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintln(cmd.OutOrStdout(), "No launches recorded yet.")
		return nil
	}

	store, err := history.Open(path)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer store.Close()

	launches, err := store.Recent(historyLimit)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}
	if len(launches) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No launches recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tBACKEND\tURL")
	for _, l := range launches {
		fmt.Fprintf(w, "%s\t%s\t%s\n", l.LaunchedAt, l.Backend, l.URL)
	}
	return w.Flush()
}

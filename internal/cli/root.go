// Package cli provides the command-line interface for issh.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/smk762/issh/internal/appconfig"
	"github.com/smk762/issh/internal/config"
	"github.com/smk762/issh/internal/doctor"
	"github.com/smk762/issh/internal/editor"
	"github.com/smk762/issh/internal/history"
	"github.com/smk762/issh/internal/sshclient"
	"github.com/smk762/issh/internal/ui"
	"github.com/smk762/issh/internal/util"
)

// NewRootCommand creates the root cobra command. Invoked without a
// subcommand it launches the interactive picker.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "issh",
		Short: "Interactive SSH host picker",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ResolvePath()
			if err != nil {
				return err
			}
			hosts, err := config.Load(path)
			if err != nil {
				return err
			}
			cfg, err := appconfig.Load()
			if err != nil {
				cfg = appconfig.Default()
			}
			if err := sshclient.New(cfg.SSHCommand).EnsureBinary(); err != nil {
				return err
			}
			return ui.Run(path, hosts, cfg)
		},
	}

	root.AddCommand(newListCmd(), newConnectCmd(), newEditCmd(), newDoctorCmd())
	return root
}

func newListCmd() *cobra.Command {
	var recent bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List host aliases parsed from the SSH config",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ResolvePath()
			if err != nil {
				return err
			}
			hosts, err := config.Load(path)
			if err != nil {
				return err
			}
			lastUsed, err := history.LastUsed()
			if err != nil {
				lastUsed = map[string]int64{}
			}
			if recent {
				hosts = history.SortRecent(hosts, lastUsed)
			}
			now := time.Now()
			fmt.Printf("%-32s %s\n", "ALIAS", "LAST")
			for _, h := range hosts {
				fmt.Printf("%-32s %s\n", h, util.EmptyDash(util.TimeAgo(lastUsed[h], now)))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&recent, "recent", false, "sort by most recent connection")
	return cmd
}

func newConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect <host>",
		Short: "Open an interactive session to a host without the picker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alias := args[0]
			path, err := config.ResolvePath()
			if err != nil {
				return err
			}
			hosts, err := config.Load(path)
			if err != nil {
				return err
			}
			if !contains(hosts, alias) {
				return fmt.Errorf("host not found: %s", alias)
			}
			cfg, err := appconfig.Load()
			if err != nil {
				cfg = appconfig.Default()
			}
			client := sshclient.New(cfg.SSHCommand)
			if err := client.EnsureBinary(); err != nil {
				return err
			}
			// Long timeout: interactive sessions may stay open for hours.
			ctx, cancel := context.WithTimeout(context.Background(), 24*time.Hour)
			defer cancel()
			if err := client.RunInteractive(ctx, alias); err != nil {
				return err
			}
			return history.Touch(alias)
		},
	}
}

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the SSH config in the resolved editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ResolvePath()
			if err != nil {
				return err
			}
			cfg, err := appconfig.Load()
			if err != nil {
				cfg = appconfig.Default()
			}
			ed, err := editor.Command(cfg.Editor, path)
			if err != nil {
				return err
			}
			ed.Stdin = os.Stdin
			ed.Stdout = os.Stdout
			ed.Stderr = os.Stderr
			return ed.Run()
		},
	}
}

func newDoctorCmd() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the picker environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := doctor.Run()
			if err != nil {
				return err
			}
			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}
			if len(rep.Issues) == 0 {
				fmt.Println("no issues found")
				return nil
			}
			fmt.Printf("%-8s %-16s %-32s %s\n", "SEV", "CHECK", "TARGET", "MESSAGE")
			for _, is := range rep.Issues {
				fmt.Printf("%-8s %-16s %-32s %s\n", is.Severity, is.Check, is.Target, is.Message)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output JSON")
	return cmd
}

func contains(hosts []string, alias string) bool {
	for _, h := range hosts {
		if h == alias {
			return true
		}
	}
	return false
}

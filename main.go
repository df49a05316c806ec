package main

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bidtools/commands"
	"bidtools/config"
)

var rootCmd = &cobra.Command{
	Use:   "bidtools",
	Short: "Create bid folders and keep the bid list workbook in sync",
	Long: `Bid Tools keeps a construction office's bid folders and its bid list
workbook in step: every standardized bid folder under the bid root gets a
row in the workbook, and updates still land somewhere useful when the
workbook is open on someone else's desk.

Running without a subcommand opens the interactive menu.

Examples:
  # Interactive menu with the office defaults
  bidtools

  # One-shot sync against a different share
  bidtools sync --bid-root "T:\Bid Documents 2026"

  # Update a bid's status fields
  bidtools status --workbook "C:\temp\Bid List.xlsx"
`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Log format with a leading full timestamp.
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp: true,
		})
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return commands.RunMenu(cfg)
	},
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new bid folder and add it to the bid list",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return commands.RunNewBid(cfg)
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the bid list workbook with the bid folders",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return commands.RunSync(cfg)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Update a bid's status fields in the workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return commands.RunStatus(cfg)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the bid list report next to the workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return commands.RunReport(cfg)
	},
}

func init() {
	registerFlags(rootCmd)
	rootCmd.AddCommand(newCmd, syncCmd, statusCmd, reportCmd)
}

// registerFlags attaches the shared configuration flags.
func registerFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "TOML config file (default "+config.DefaultFileName+" when present)")
	cmd.PersistentFlags().String("bid-root", "", "Folder holding the bid folders")
	cmd.PersistentFlags().String("template-root", "", "Folder structure copied into new bid folders")
	cmd.PersistentFlags().String("workbook", "", "Path to the bid list workbook")
	cmd.PersistentFlags().String("worksheet", "", "Worksheet name inside the workbook")
	cmd.PersistentFlags().String("header-policy", "", "Header reconciliation policy: append or canonical")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// resolveConfig layers the configuration: built-in defaults, then the
// config file when one exists, then any flag the user set. A config file
// named explicitly must exist; the default file may be absent.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	explicit := flags.Changed("config")
	if path == "" {
		path = config.DefaultFileName
	}

	cfg := config.Default()
	loaded, err := config.Load(path)
	switch {
	case err == nil:
		cfg = loaded
	case explicit || !errors.Is(err, os.ErrNotExist):
		return config.Config{}, err
	}

	overrides := []struct {
		name  string
		field *string
	}{
		{"bid-root", &cfg.BidRoot},
		{"template-root", &cfg.TemplateRoot},
		{"workbook", &cfg.Workbook},
		{"worksheet", &cfg.Worksheet},
		{"header-policy", &cfg.HeaderPolicy},
	}
	for _, o := range overrides {
		if flags.Changed(o.name) {
			*o.field, _ = flags.GetString(o.name)
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package commands

import (
	"github.com/fatih/color"

	"bidtools/config"
	"bidtools/services"
)

// RunSync brings the bid list workbook in line with the bid folders and
// prints the outcome.
func RunSync(cfg config.Config) error {
	result, err := syncOnce(cfg)
	if err != nil {
		return err
	}
	printSyncResult(result)
	return nil
}

func syncOnce(cfg config.Config) (*services.SyncResult, error) {
	policy, err := services.ParseHeaderPolicy(cfg.HeaderPolicy)
	if err != nil {
		return nil, err
	}
	return services.SyncWorkbook(services.SyncOptions{
		BidRoot:   cfg.BidRoot,
		Workbook:  cfg.Workbook,
		Worksheet: cfg.Worksheet,
		Policy:    policy,
	})
}

func printSyncResult(result *services.SyncResult) {
	color.Green("Bid list updated: %d added, %d updated, %d skipped.",
		result.Added, result.Updated, result.Skipped)
	if result.ReadOnly {
		color.Yellow("Workbook is open by another user; updates saved to:")
		color.Yellow("  %s", result.SavedTo)
	}
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"bidtools/config"
	"bidtools/services"
)

// RunNewBid drives the create-bid-folder flow: sync the workbook, prompt
// for the four bid fields, derive the next bid number, create the folder,
// then optionally copy the template tree and sync again.
func RunNewBid(cfg config.Config) error {
	if _, err := os.Stat(cfg.BidRoot); err != nil {
		return fmt.Errorf("bid root not found: %s", cfg.BidRoot)
	}
	if _, err := os.Stat(cfg.TemplateRoot); err != nil {
		return fmt.Errorf("template root not found: %s", cfg.TemplateRoot)
	}

	// Sync first so the next bid number accounts for every folder that
	// already exists.
	result, err := syncOnce(cfg)
	if err != nil {
		return err
	}
	printSyncResult(result)

	initials, err := promptRequired("Estimator initials (ex: MD)", "MD")
	if err != nil {
		return err
	}
	dueDate, err := promptDueDate()
	if err != nil {
		return err
	}
	customer, err := promptRequired("Customer/GC", "Acme Builders")
	if err != nil {
		return err
	}
	bidName, err := promptRequired("Bid name", "Warehouse Expansion")
	if err != nil {
		return err
	}

	folders, err := services.ListBidFolders(cfg.BidRoot)
	if err != nil {
		return err
	}
	number, err := services.NextBidNumber(folders)
	if err != nil {
		return err
	}

	folder := services.BuildFolderName(number, initials, dueDate, customer, bidName)
	dest := filepath.Join(cfg.BidRoot, folder)
	if err := os.Mkdir(dest, 0755); err != nil {
		return fmt.Errorf("create bid folder: %w", err)
	}

	copyTemplate, err := confirmDefaultNo("Copy subfolder structure from the template?")
	if err != nil {
		return err
	}
	if copyTemplate {
		if err := services.CopyTemplate(cfg.TemplateRoot, dest); err != nil {
			return err
		}
	}

	color.Green("Created new bid folder:")
	fmt.Println(dest)

	resync, err := confirmDefaultNo("Update the bid list workbook now?")
	if err != nil {
		return err
	}
	if resync {
		return RunSync(cfg)
	}
	return nil
}

package commands

import (
	"github.com/fatih/color"

	"bidtools/config"
	"bidtools/services"
)

// RunStatus prompts for a bid number and its status fields, then applies
// the non-blank ones to the bid's row. Overwriting a cell that already
// holds a value requires an interactive confirm.
func RunStatus(cfg config.Config) error {
	policy, err := services.ParseHeaderPolicy(cfg.HeaderPolicy)
	if err != nil {
		return err
	}

	bidNumber, err := promptRequired("Bid number to update", "26101")
	if err != nil {
		return err
	}
	status, err := promptOptional("Bid Status (leave blank to keep current)")
	if err != nil {
		return err
	}
	proposalDate, err := promptOptional("Proposal Date (leave blank to keep current)")
	if err != nil {
		return err
	}
	proposalAmount, err := promptOptional("Proposal Amount (leave blank to keep current)")
	if err != nil {
		return err
	}
	award, err := promptOptional("Award (leave blank to keep current)")
	if err != nil {
		return err
	}

	result, err := services.UpdateBidStatus(services.StatusOptions{
		Workbook:  cfg.Workbook,
		Worksheet: cfg.Worksheet,
		Policy:    policy,
		Update: services.StatusUpdate{
			BidNumber:      bidNumber,
			Status:         status,
			ProposalDate:   proposalDate,
			ProposalAmount: proposalAmount,
			Award:          award,
		},
		Confirm: confirmOverwrite,
	})
	if err != nil {
		return err
	}

	if result.ReadOnly {
		color.Yellow("Workbook is open by another user; updates saved to:")
		color.Yellow("  %s", result.SavedTo)
		return nil
	}
	color.Green("Workbook status updated.")
	return nil
}

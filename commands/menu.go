// Package commands implements the interactive layer: the menu loop, the
// prompt helpers, and one entry point per action.
package commands

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"

	"bidtools/config"
)

// RunMenu loops the interactive menu until the user exits. An action that
// fails reports its error and returns to the menu; an aborted prompt
// returns to the menu silently.
func RunMenu(cfg config.Config) error {
	for {
		var choice string
		err := huh.NewSelect[string]().
			Title("Bid Tools").
			Options(
				huh.NewOption("Create new bid folder", "new"),
				huh.NewOption("Sync bid list workbook with folders", "sync"),
				huh.NewOption("Update bid status in workbook", "status"),
				huh.NewOption("Write bid list report", "report"),
				huh.NewOption("Exit", "exit"),
			).
			Value(&choice).
			Run()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		var actionErr error
		switch choice {
		case "new":
			actionErr = RunNewBid(cfg)
		case "sync":
			actionErr = RunSync(cfg)
		case "status":
			actionErr = RunStatus(cfg)
		case "report":
			actionErr = RunReport(cfg)
		case "exit":
			return nil
		}
		if actionErr != nil {
			if errors.Is(actionErr, huh.ErrUserAborted) {
				continue
			}
			color.Red("Error: %v", actionErr)
		}
	}
}

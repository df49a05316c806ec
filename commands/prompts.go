package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"bidtools/services"
)

// promptRequired asks for one free-text field until its sanitized form is
// non-empty, and returns the sanitized value.
func promptRequired(title, placeholder string) (string, error) {
	var value string
	err := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Validate(func(s string) error {
			if services.SanitizeName(s) == "" {
				return errors.New("a value is required")
			}
			return nil
		}).
		Value(&value).
		Run()
	if err != nil {
		return "", err
	}
	return services.SanitizeName(value), nil
}

// promptOptional asks for a value that may stay blank.
func promptOptional(title string) (string, error) {
	var value string
	err := huh.NewInput().
		Title(title).
		Value(&value).
		Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// promptDueDate keeps asking until the date normalizes and returns the
// zero-padded MM-DD form.
func promptDueDate() (string, error) {
	var value string
	err := huh.NewInput().
		Title("Bid due date (MM-DD, ex: 12-5)").
		Placeholder("12-05").
		Validate(func(s string) error {
			_, err := services.NormalizeDueDate(s)
			return err
		}).
		Value(&value).
		Run()
	if err != nil {
		return "", err
	}
	return services.NormalizeDueDate(value)
}

// confirmDefaultNo asks a yes/no question that defaults to No.
func confirmDefaultNo(title string) (bool, error) {
	ok := false
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	return ok, err
}

// confirmOverwrite backs services.ConfirmFunc with an interactive confirm.
// Aborting the prompt keeps the current value.
func confirmOverwrite(field, current string) bool {
	ok, err := confirmDefaultNo(fmt.Sprintf("%s is %q. Overwrite it?", field, current))
	if err != nil {
		return false
	}
	return ok
}

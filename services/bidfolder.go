package services

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Folder name patterns. The illegal characters are the ones Windows
// rejects in file names; the share the bid folders live on is
// Windows-backed.
var (
	illegalNameChars = regexp.MustCompile(`[\\/:*?"<>|]`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
	dueDatePattern   = regexp.MustCompile(`^(0?[1-9]|1[0-2])-(0?[1-9]|[12][0-9]|3[01])$`)
	leadingNumber    = regexp.MustCompile(`^\s*([0-9]+)\b`)
)

// ErrNoNumberedFolders is returned by NextBidNumber when no folder under
// the bid root starts with a bid number.
var ErrNoNumberedFolders = errors.New("no numbered bid folders found")

// InvalidDueDateError reports a due date that is not in M-D through MM-DD
// form with a month of 1-12 and a day of 1-31.
type InvalidDueDateError struct {
	Input string
}

func (e *InvalidDueDateError) Error() string {
	return fmt.Sprintf("due date must be MM-DD (ex: 12-5 or 12-05), got %q", e.Input)
}

// BidFolderInfo is one bid as encoded in its folder name. Folder holds the
// on-disk folder name the fields came from or were built into. BidNumber
// stays a string so leading zeros and other formatting survive round trips.
type BidFolderInfo struct {
	BidNumber string
	Initials  string
	DueDate   string
	Customer  string
	BidName   string
	Folder    string
}

// SanitizeName strips characters that are illegal in filesystem names,
// collapses whitespace runs to single spaces, and trims the result.
func SanitizeName(value string) string {
	value = illegalNameChars.ReplaceAllString(value, " ")
	value = whitespaceRuns.ReplaceAllString(value, " ")
	return strings.TrimSpace(value)
}

// NormalizeDueDate converts a due date in M-D, MM-D, M-DD, or MM-DD form
// to zero-padded MM-DD. The day is range-checked (1-31) but not validated
// against the month's calendar.
func NormalizeDueDate(raw string) (string, error) {
	m := dueDatePattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", &InvalidDueDateError{Input: raw}
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("%02d-%02d", month, day), nil
}

// BuildFolderName joins a bid's five fields with " - " and sanitizes the
// result into a legal folder name.
func BuildFolderName(number int, initials, dueDate, customer, bidName string) string {
	name := fmt.Sprintf("%d - %s - %s - %s - %s", number, initials, dueDate, customer, bidName)
	return SanitizeName(name)
}

// ParseFolderName splits a folder name into its five bid fields. The split
// caps at five segments, so a bid name may itself contain " - ". Folder
// names with fewer than five segments are not bid folders; those return
// nil and callers skip them.
func ParseFolderName(folderName string) *BidFolderInfo {
	parts := strings.SplitN(folderName, " - ", 5)
	if len(parts) < 5 {
		return nil
	}
	return &BidFolderInfo{
		BidNumber: strings.TrimSpace(parts[0]),
		Initials:  strings.TrimSpace(parts[1]),
		DueDate:   strings.TrimSpace(parts[2]),
		Customer:  strings.TrimSpace(parts[3]),
		BidName:   strings.TrimSpace(parts[4]),
		Folder:    folderName,
	}
}

// NextBidNumber returns one more than the highest leading bid number among
// the given folder names. Folders that do not start with a number are
// ignored; if none do, ErrNoNumberedFolders is returned.
func NextBidNumber(folders []string) (int, error) {
	highest := 0
	for _, name := range folders {
		m := leadingNumber.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		number, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if number > highest {
			highest = number
		}
	}
	if highest == 0 {
		return 0, ErrNoNumberedFolders
	}
	return highest + 1, nil
}

// ListBidFolders returns the names of the immediate subdirectories of
// root, ordered by name.
func ListBidFolders(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read bid root: %w", err)
	}

	var folders []string
	for _, entry := range entries {
		if entry.IsDir() {
			folders = append(folders, entry.Name())
		}
	}
	return folders, nil
}
